package geometry

import "testing"

func TestPairOrderPacking(t *testing.T) {
	packed := PairOrder(1, 2, 0, 2)
	exp := int32(1 | 2<<8 | 0<<16 | 2<<24)
	if packed != exp {
		t.Fatalf("expected packed pair order %#x; got %#x", exp, packed)
	}
}

func TestSharedEdgeOppositeVertex(t *testing.T) {
	tri0 := Triangle{V: [3]uint32{0, 1, 2}}
	tri1 := Triangle{V: [3]uint32{1, 2, 3}}

	res := SharedEdge(tri0, tri1)
	if res == NoSharedEdge {
		t.Fatal("expected triangles sharing edge (1,2) to match")
	}

	oppSlot := uint32(res>>24) & 0xff
	if tri1.V[oppSlot] != 3 {
		t.Fatalf("expected opposite vertex of second triangle to be 3; got %d", tri1.V[oppSlot])
	}

	// The rotated order must place the shared edge between the last and
	// first rotated vertex.
	slot0 := uint32(res) & 0xff
	slot2 := uint32(res>>16) & 0xff
	edgeA := tri0.V[slot2]
	edgeB := tri0.V[slot0]
	sharesEdge := (edgeA == 1 && edgeB == 2) || (edgeA == 2 && edgeB == 1)
	if !sharesEdge {
		t.Fatalf("expected rotated order to end on shared edge (1,2); got (%d,%d)", edgeA, edgeB)
	}
}

func TestSharedEdgeWindingIndependent(t *testing.T) {
	tri0 := Triangle{V: [3]uint32{0, 1, 2}}
	tri1 := Triangle{V: [3]uint32{1, 2, 3}}
	tri1Reversed := Triangle{V: [3]uint32{2, 1, 3}}

	res := SharedEdge(tri0, tri1)
	resReversed := SharedEdge(tri0, tri1Reversed)
	if resReversed == NoSharedEdge {
		t.Fatal("expected reversed winding to still match the shared edge")
	}
	if res != resReversed {
		t.Fatalf("expected winding-independent match; got %#x and %#x", res, resReversed)
	}
}

func TestSharedEdgeDisjoint(t *testing.T) {
	tri0 := Triangle{V: [3]uint32{0, 1, 2}}
	tri1 := Triangle{V: [3]uint32{3, 4, 5}}

	if res := SharedEdge(tri0, tri1); res != NoSharedEdge {
		t.Fatalf("expected disjoint triangles to yield the sentinel; got %#x", res)
	}
}

func TestSharedEdgeSingleVertexOnly(t *testing.T) {
	tri0 := Triangle{V: [3]uint32{0, 1, 2}}
	tri1 := Triangle{V: [3]uint32{2, 5, 6}}

	if res := SharedEdge(tri0, tri1); res != NoSharedEdge {
		t.Fatalf("expected triangles sharing a single vertex to yield the sentinel; got %#x", res)
	}
}
