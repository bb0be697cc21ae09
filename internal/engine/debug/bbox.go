package debug

import (
	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/internal/engine/shapes"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// BoundsName is the name of nodes created by BoundsNode.
const BoundsName = "debug-bounds"

// BoundsTemplate returns a flat-shaded box mesh covering b.
func BoundsTemplate(b mesh.Bounds) (*mesh.Template, error) {
	size := b.Max.Sub(b.Min).Scale(0.5)
	center := b.Min.Add(b.Max).Scale(0.5)
	box := shapes.Cube(2)
	box.Transform(math.Translate(center.X, center.Y, center.Z).Mul(math.Scale(size.X, size.Y, size.Z)))

	t, err := mesh.ExpandIndices(box)
	if err != nil {
		return nil, err
	}
	if err := mesh.ComputeFaceNormals(t); err != nil {
		return nil, err
	}
	return t, nil
}

// BoundsNode uploads a box around b and returns a node that draws it as
// lines.
func BoundsNode(f scene.MeshFactory, b mesh.Bounds) (scene.Node, error) {
	t, err := BoundsTemplate(b)
	if err != nil {
		return scene.Node{}, err
	}
	h, err := f.Upload(t)
	if err != nil {
		return scene.Node{}, err
	}
	n := scene.NewNode(BoundsName)
	n.Kind = scene.KindStaticMesh
	n.Model.Add(h, scene.DefaultMaterial())
	n.ShowLineMesh = true
	return n, nil
}
