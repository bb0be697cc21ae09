package mesh

// Vertex is the interleaved GPU vertex layout. Attribute locations are
// 0 position, 1 normal, 2 texcoord, 3 color.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	Color    [3]float32
}

// Interleave packs the template's attribute arrays into one vertex
// slice. Missing attributes are left zero.
func (t *Template) Interleave() []Vertex {
	out := make([]Vertex, len(t.Positions))
	for i, p := range t.Positions {
		v := &out[i]
		v.Position = p.Array()
		if len(t.Normals) > 0 {
			v.Normal = t.Normals[i].Array()
		}
		if len(t.TexCoords) > 0 {
			v.TexCoord = [2]float32{t.TexCoords[i].X, t.TexCoords[i].Y}
		}
		if len(t.Colors) > 0 {
			v.Color = t.Colors[i].Array()
		}
	}
	return out
}
