package meshing

// QuadIndices builds the index buffer for quads independent quads: quad i
// draws triangles (4i, 4i+1, 4i+2) and (4i, 4i+2, 4i+3). The buffer does
// not depend on chunk contents and is uploaded once.
func QuadIndices(quads int) []uint32 {
	if quads <= 0 {
		return nil
	}
	indices := make([]uint32, quads*6)
	var base uint32
	for i := 0; i < len(indices); i += 6 {
		indices[i+0] = base + 0
		indices[i+1] = base + 1
		indices[i+2] = base + 2
		indices[i+3] = base + 0
		indices[i+4] = base + 2
		indices[i+5] = base + 3
		base += 4
	}
	return indices
}

// IndexCount returns the number of indices needed to draw vertexCount
// vertices worth of quads.
func IndexCount(vertexCount int) int {
	return vertexCount / 4 * 6
}
