package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes t as a Wavefront OBJ object. Face indices are 1-based
// and reference the texture and normal arrays when present.
func WriteOBJ(w io.Writer, name string, t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)
	for _, p := range t.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, uv := range t.TexCoords {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for _, n := range t.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}

	hasUV, hasN := len(t.TexCoords) > 0, len(t.Normals) > 0
	vertex := func(i uint32) string {
		i++
		switch {
		case hasUV && hasN:
			return fmt.Sprintf("%d/%d/%d", i, i, i)
		case hasUV:
			return fmt.Sprintf("%d/%d", i, i)
		case hasN:
			return fmt.Sprintf("%d//%d", i, i)
		default:
			return fmt.Sprintf("%d", i)
		}
	}

	indices := t.Indices
	if !t.Indexed() {
		indices = make([]uint32, len(t.Positions)/3*3)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	for i := 0; i+2 < len(indices); i += 3 {
		fmt.Fprintf(bw, "f %s %s %s\n", vertex(indices[i]), vertex(indices[i+1]), vertex(indices[i+2]))
	}
	return bw.Flush()
}
