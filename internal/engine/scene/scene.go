// Package scene holds the node tree the renderer walks each frame and the
// builders that assemble the demo's heads from generated meshes.
//
// Nodes own their children by value. A subtree copied with Clone shares
// mesh and texture handles with the original but nothing else.
package scene

import (
	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// Kind selects the shading path for a node's meshes.
type Kind int

const (
	KindEmpty Kind = iota
	KindStaticMesh
	KindReflective
	KindWaterSurface
	KindWater
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindStaticMesh:
		return "static-mesh"
	case KindReflective:
		return "reflective"
	case KindWaterSurface:
		return "water-surface"
	case KindWater:
		return "water"
	default:
		return "unknown"
	}
}

// IsWater reports whether the kind is shaded as water (surface or body).
func (k Kind) IsWater() bool {
	return k == KindWater || k == KindWaterSurface
}

// TextureHandle names a texture owned by the GPU layer. Zero means none.
type TextureHandle uint32

// MeshHandle is a mesh uploaded to the GPU. The scene only stores and
// compares handles; the render context draws them.
type MeshHandle interface {
	ID() uint32
}

// MeshFactory uploads templates and returns handles to the results.
// Release frees a single handle returned by Upload.
type MeshFactory interface {
	Upload(t *mesh.Template) (MeshHandle, error)
	Release(h MeshHandle) error
}

// Model pairs meshes with the material each is drawn with.
// Meshes[i] uses Materials[i].
type Model struct {
	Meshes    []MeshHandle
	Materials []Material
}

// Add appends a mesh with its material.
func (m *Model) Add(h MeshHandle, mat Material) {
	m.Meshes = append(m.Meshes, h)
	m.Materials = append(m.Materials, mat)
}

// Node is one element of the scene tree.
type Node struct {
	Name  string
	Kind  Kind
	Model Model

	// Local transform, composed as T * Rz * Ry * Rx * S.
	Translation math.Vec3
	Rotation    math.Vec3 // Euler angles in radians
	Scale       math.Vec3

	Children []Node

	// PolygonOffset accumulates down the tree as (factor, units).
	PolygonOffset math.Vec2
	Visible       bool
	Clipping      bool

	// Rainbow shading
	RainbowColors bool
	ColorRotation math.Vec3 // Euler angles in radians
	ColorOffset   float32

	ShowLineMesh bool
}

// NewNode returns a visible node with unit scale.
func NewNode(name string) Node {
	return Node{
		Name:    name,
		Scale:   math.Vec3{X: 1, Y: 1, Z: 1},
		Visible: true,
	}
}

// AddChild appends a copy of child.
func (n *Node) AddChild(child Node) {
	n.Children = append(n.Children, child)
}

// Clone returns a deep copy of the subtree rooted at n.
func (n Node) Clone() Node {
	out := n
	out.Model = Model{
		Meshes:    append([]MeshHandle(nil), n.Model.Meshes...),
		Materials: append([]Material(nil), n.Model.Materials...),
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i := range n.Children {
			out.Children[i] = n.Children[i].Clone()
		}
	}
	return out
}

// Find returns the first node named name in depth-first pre-order, or nil.
// The pointer stays valid until a Children slice on its path is appended to.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for i := range n.Children {
		if found := n.Children[i].Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for every node of the subtree in depth-first pre-order.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) {
	fn(n, depth)
	for i := range n.Children {
		n.Children[i].walk(fn, depth+1)
	}
}

// LocalTransform returns T * Rz * Ry * Rx * S for the node.
func (n *Node) LocalTransform() math.Mat4 {
	return math.TRS(n.Translation, n.Rotation, n.Scale)
}

// ColorTransform returns Rz * Ry * Rx for the node's color rotation.
func (n *Node) ColorTransform() math.Mat4 {
	return math.EulerZYX(n.ColorRotation)
}
