package types

import "testing"

func TestEmptyBoxExtend(t *testing.T) {
	bbox := EmptyBox()
	bbox = bbox.ExtendPoint(Vec3{1, 2, 3})
	bbox = bbox.ExtendPoint(Vec3{-1, 0, 5})

	expMin := Vec3{-1, 0, 3}
	expMax := Vec3{1, 2, 5}
	if bbox.Min != expMin {
		t.Fatalf("expected box min to be %v; got %v", expMin, bbox.Min)
	}
	if bbox.Max != expMax {
		t.Fatalf("expected box max to be %v; got %v", expMax, bbox.Max)
	}
}

func TestBoxUnion(t *testing.T) {
	b1 := Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b2 := Box{Min: Vec3{-1, 0.5, 0}, Max: Vec3{0.5, 2, 1}}

	union := b1.Union(b2)
	expMin := Vec3{-1, 0, 0}
	expMax := Vec3{1, 2, 1}
	if union.Min != expMin || union.Max != expMax {
		t.Fatalf("expected union to be [%v %v]; got [%v %v]", expMin, expMax, union.Min, union.Max)
	}
}

func TestBoxContains(t *testing.T) {
	outer := Box{Min: Vec3{0, 0, 0}, Max: Vec3{2, 2, 2}}
	inner := Box{Min: Vec3{0.5, 0.5, 0.5}, Max: Vec3{1, 1, 1}}
	if !outer.ContainsBox(inner) {
		t.Fatal("expected outer box to contain inner box")
	}
	if outer.ContainsBox(Box{Min: Vec3{0.5, 0.5, 0.5}, Max: Vec3{3, 1, 1}}) {
		t.Fatal("expected box sticking out on +X to not be contained")
	}
}

func TestLerpBoxEndpoints(t *testing.T) {
	b1 := Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b2 := Box{Min: Vec3{2, 2, 2}, Max: Vec3{4, 4, 4}}

	if got := LerpBox(b1, b2, 0); got != b1 {
		t.Fatalf("expected lerp at 0 to yield the first box; got %v", got)
	}
	if got := LerpBox(b1, b2, 1); got != b2 {
		t.Fatalf("expected lerp at 1 to yield the second box; got %v", got)
	}

	mid := LerpBox(b1, b2, 0.5)
	expMid := Box{Min: Vec3{1, 1, 1}, Max: Vec3{2.5, 2.5, 2.5}}
	if mid != expMid {
		t.Fatalf("expected lerp at 0.5 to yield %v; got %v", expMid, mid)
	}
}

func TestLBBoxInterpolate(t *testing.T) {
	lb := LBBox{
		Bounds0: Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}},
		Bounds1: Box{Min: Vec3{1, 0, 0}, Max: Vec3{2, 1, 1}},
	}
	mid := lb.Interpolate(0.5)
	expMin := Vec3{0.5, 0, 0}
	expMax := Vec3{1.5, 1, 1}
	if mid.Min != expMin || mid.Max != expMax {
		t.Fatalf("expected interpolated box [%v %v]; got [%v %v]", expMin, expMax, mid.Min, mid.Max)
	}
}

func TestRangeSize(t *testing.T) {
	r := Range{Lower: 0.25, Upper: 0.75}
	if r.Size() != 0.5 {
		t.Fatalf("expected range size 0.5; got %f", r.Size())
	}
}
