package debug

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

func fixedClock(sc *ScreenshotCapture) {
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	sc.now = func() time.Time { return at }
}

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "wgmi")
	fixedClock(sc)

	// 1x2, bottom row red, top row blue as read back by OpenGL
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wgmi_2024-05-01_12-30-00.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, color.RGBAModel.Convert(img.At(0, 1)))
}

func TestCaptureDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "wgmi")
	fixedClock(sc)

	pixels := make([]byte, 4)
	first, err := sc.CaptureFromPixels(pixels, 1, 1)
	require.NoError(t, err)
	second, err := sc.CaptureFromPixels(make([]byte, 4), 1, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(dir, "wgmi_2024-05-01_12-30-00_1.png"), second)
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "wgmi")
	_, err := sc.CaptureFromPixels(make([]byte, 3), 1, 1)
	assert.ErrorContains(t, err, "size mismatch")
}

func TestBoundsTemplateCoversBounds(t *testing.T) {
	b := mesh.Bounds{Min: math.Vec3{X: -1, Y: 0, Z: 2}, Max: math.Vec3{X: 3, Y: 1, Z: 4}}
	tmpl, err := BoundsTemplate(b)
	require.NoError(t, err)
	got := tmpl.Bounds()

	assert.InDelta(t, b.Min.X, got.Min.X, 1e-5)
	assert.InDelta(t, b.Min.Y, got.Min.Y, 1e-5)
	assert.InDelta(t, b.Min.Z, got.Min.Z, 1e-5)
	assert.InDelta(t, b.Max.X, got.Max.X, 1e-5)
	assert.InDelta(t, b.Max.Y, got.Max.Y, 1e-5)
	assert.InDelta(t, b.Max.Z, got.Max.Z, 1e-5)
}

func TestBoundsTemplateFlatNormals(t *testing.T) {
	b := mesh.Bounds{Min: math.Vec3{X: -1, Y: -2, Z: -3}, Max: math.Vec3{X: 1, Y: 2, Z: 3}}
	tmpl, err := BoundsTemplate(b)
	require.NoError(t, err)

	assert.False(t, tmpl.Indexed())
	require.Len(t, tmpl.Positions, 36)
	require.Len(t, tmpl.Normals, 36)
	for i := 0; i < 36; i += 3 {
		n := tmpl.Normals[i]
		assert.InDelta(t, 1, n.Length(), 1e-5, "triangle %d", i/3)
		assert.Equal(t, n, tmpl.Normals[i+1])
		assert.Equal(t, n, tmpl.Normals[i+2])
		// face normals of a box are axis aligned
		axes := 0
		for _, c := range [3]float32{n.X, n.Y, n.Z} {
			if c > 0.5 || c < -0.5 {
				axes++
			}
		}
		assert.Equal(t, 1, axes, "triangle %d", i/3)
	}
}

type fakeMesh uint32

func (m fakeMesh) ID() uint32 { return uint32(m) }

type fakeFactory struct {
	uploads int
	err     error
}

func (f *fakeFactory) Upload(t *mesh.Template) (scene.MeshHandle, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploads++
	return fakeMesh(f.uploads), nil
}

func (f *fakeFactory) Release(scene.MeshHandle) error { return nil }

func TestBoundsNode(t *testing.T) {
	f := &fakeFactory{}
	n, err := BoundsNode(f, mesh.Bounds{Max: math.Vec3{X: 1, Y: 1, Z: 1}})
	require.NoError(t, err)

	assert.Equal(t, BoundsName, n.Name)
	assert.True(t, n.ShowLineMesh)
	assert.Len(t, n.Model.Meshes, 1)
	assert.Len(t, n.Model.Materials, 1)

	f.err = errors.New("no gpu")
	_, err = BoundsNode(f, mesh.Bounds{})
	assert.Error(t, err)
}
