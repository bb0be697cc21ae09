package mesh

// Stitch concatenates parts into one template. Each part's indices are
// re-emitted offset by the number of vertices appended before it, so they
// keep pointing at the same vertices. Positions and normals are always
// concatenated; tex coords and colors only when every part has them.
func Stitch(parts ...*Template) *Template {
	out := &Template{}
	withTex, withColor := true, true
	for _, p := range parts {
		withTex = withTex && len(p.TexCoords) > 0
		withColor = withColor && len(p.Colors) > 0
	}

	for _, p := range parts {
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, p.Positions...)
		out.Normals = append(out.Normals, p.Normals...)
		if withTex {
			out.TexCoords = append(out.TexCoords, p.TexCoords...)
		}
		if withColor {
			out.Colors = append(out.Colors, p.Colors...)
		}
		for _, idx := range p.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}
