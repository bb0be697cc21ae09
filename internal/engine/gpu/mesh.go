package gpu

import (
	"errors"
	"slices"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
)

// ErrUnknownMesh is returned by Release for handles the factory does not own.
var ErrUnknownMesh = errors.New("mesh not owned by this factory")

// Mesh is a template uploaded into a vertex array object.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

var _ scene.MeshHandle = (*Mesh)(nil)

// ID returns the vertex array name.
func (m *Mesh) ID() uint32 { return m.vao }

func (m *Mesh) draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) destroy() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// MeshFactory uploads templates and owns the resulting buffers.
type MeshFactory struct {
	meshes []*Mesh
}

var _ scene.MeshFactory = (*MeshFactory)(nil)

// Upload copies t into GPU buffers. Templates without indices are drawn
// as a flat triangle list.
func (f *MeshFactory) Upload(t *mesh.Template) (scene.MeshHandle, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	vertices := t.Interleave()
	m := &Mesh{indexed: t.Indexed()}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	}

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)
	// Color
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, int32(vertexSize), 8*4)
	gl.EnableVertexAttribArray(3)

	if m.indexed {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(t.Indices)*4, unsafe.Pointer(&t.Indices[0]), gl.STATIC_DRAW)
		m.count = int32(len(t.Indices))
	} else {
		m.count = int32(len(vertices))
	}

	gl.BindVertexArray(0)
	f.meshes = append(f.meshes, m)
	return m, nil
}

// Release frees one mesh uploaded through f. Releasing the same handle
// twice returns ErrUnknownMesh.
func (f *MeshFactory) Release(h scene.MeshHandle) error {
	m, ok := h.(*Mesh)
	if !ok {
		return ErrUnknownMesh
	}
	i := slices.Index(f.meshes, m)
	if i < 0 {
		return ErrUnknownMesh
	}
	m.destroy()
	f.meshes = slices.Delete(f.meshes, i, i+1)
	return nil
}

// Destroy releases every mesh uploaded through f.
func (f *MeshFactory) Destroy() {
	for _, m := range f.meshes {
		m.destroy()
	}
	f.meshes = nil
}
