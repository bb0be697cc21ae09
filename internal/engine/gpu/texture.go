package gpu

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/internal/engine/texture"
)

// CubeFaces lists cube map face file names in GL face order (+X, -X, +Y,
// -Y, +Z, -Z).
var CubeFaces = [6]string{"right", "left", "top", "bottom", "front", "back"}

// LoadTexture2D loads an image file into a mipmapped 2D texture.
func LoadTexture2D(path string) (scene.TextureHandle, error) {
	img, err := texture.Load(path)
	if err != nil {
		return 0, err
	}
	texture.FlipVertical(img)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return scene.TextureHandle(tex), nil
}

// LoadCubemap loads dir/<face>.<ext> for each of CubeFaces. Faces are
// scaled to the size of the first one.
func LoadCubemap(dir, ext string) (scene.TextureHandle, error) {
	var faces [6]*image.RGBA
	for i, name := range CubeFaces {
		img, err := texture.Load(filepath.Join(dir, name+"."+ext))
		if err != nil {
			return 0, fmt.Errorf("cube map face %s: %w", name, err)
		}
		if i > 0 {
			img = texture.Resize(img, faces[0].Rect.Dx(), faces[0].Rect.Dy())
		}
		faces[i] = img
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for i, img := range faces {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return scene.TextureHandle(tex), nil
}

// DestroyTexture releases a texture.
func DestroyTexture(h scene.TextureHandle) {
	if h != 0 {
		t := uint32(h)
		gl.DeleteTextures(1, &t)
	}
}
