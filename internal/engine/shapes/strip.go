package shapes

// appendStrip connects two vertex loops a and b of segments+1 vertices
// each with two triangles per segment: (a+j, b+j, b+j+1) and
// (b+j+1, a+j+1, a+j). Swapping a and b reverses the winding.
func appendStrip(indices []uint32, a, b uint32, segments int) []uint32 {
	for j := uint32(0); j < uint32(segments); j++ {
		indices = append(indices,
			a+j, b+j, b+j+1,
			b+j+1, a+j+1, a+j,
		)
	}
	return indices
}

// flipSign returns -1 when flip is set and 1 otherwise.
func flipSign(flip bool) float32 {
	if flip {
		return -1
	}
	return 1
}
