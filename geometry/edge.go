package geometry

// Sentinel returned by SharedEdge when the two triangles share no edge.
const NoSharedEdge int32 = -1

// An order independent 64 bit key for the edge between two vertex indices.
// The smaller index occupies the low half, so the key ignores winding.
func edgeKey(v0, v1 uint32) uint64 {
	if v0 < v1 {
		return uint64(v1)<<32 | uint64(v0)
	}
	return uint64(v0)<<32 | uint64(v1)
}

// Pack a rotation of triangle 0's vertex slots together with the slot of
// triangle 1's vertex opposite the shared edge, one byte per field.
func PairOrder(tri0Slot0, tri0Slot1, tri0Slot2, tri1Slot uint32) int32 {
	return int32(tri0Slot0<<0 | tri0Slot1<<8 | tri0Slot2<<16 | tri1Slot<<24)
}

// Test whether two triangles share an edge. On a match the result packs
// triangle 0's vertex slots rotated so the shared edge runs between the
// last and first slot of the rotated order, plus the slot of triangle 1's
// opposite vertex. Triangles are assumed to share at most one edge.
func SharedEdge(tri0, tri1 Triangle) int32 {
	tri0Edges := [3]uint64{
		edgeKey(tri0.V[0], tri0.V[1]),
		edgeKey(tri0.V[1], tri0.V[2]),
		edgeKey(tri0.V[2], tri0.V[0]),
	}
	tri1Edges := [3]uint64{
		edgeKey(tri1.V[0], tri1.V[1]),
		edgeKey(tri1.V[1], tri1.V[2]),
		edgeKey(tri1.V[2], tri1.V[0]),
	}

	// Rotation that moves tri0's k'th edge between the last and first slot,
	// and the tri1 vertex slot opposite its j'th edge.
	rotation := [3][3]uint32{{1, 2, 0}, {2, 0, 1}, {0, 1, 2}}
	opposite := [3]uint32{2, 0, 1}

	for j := 0; j < 3; j++ {
		for k := 0; k < 3; k++ {
			if tri0Edges[k] == tri1Edges[j] {
				return PairOrder(rotation[k][0], rotation[k][1], rotation[k][2], opposite[j])
			}
		}
	}

	return NoSharedEdge
}
