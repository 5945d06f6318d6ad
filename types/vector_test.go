package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestMinMaxVec3(t *testing.T) {
	v1 := Vec3{1, 5, -2}
	v2 := Vec3{3, 0, -1}

	expMin := Vec3{1, 0, -2}
	if got := MinVec3(v1, v2); got != expMin {
		t.Fatalf("expected component min to be %v; got %v", expMin, got)
	}
	expMax := Vec3{3, 5, -1}
	if got := MaxVec3(v1, v2); got != expMax {
		t.Fatalf("expected component max to be %v; got %v", expMax, got)
	}
}

func TestLerpVec4Endpoints(t *testing.T) {
	v1 := XYZW(0, 1, 2, 3)
	v2 := XYZW(4, 5, 6, 7)

	if got := LerpVec4(v1, v2, 0); got != v1 {
		t.Fatalf("expected lerp at 0 to yield %v; got %v", v1, got)
	}
	if got := LerpVec4(v1, v2, 1); got != v2 {
		t.Fatalf("expected lerp at 1 to yield %v; got %v", v2, got)
	}
	expMid := XYZW(2, 3, 4, 5)
	if got := LerpVec4(v1, v2, 0.5); got != expMid {
		t.Fatalf("expected lerp at 0.5 to yield %v; got %v", expMid, got)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1.5) {
		t.Fatal("expected 1.5 to be finite")
	}
	if Finite(math32.NaN()) {
		t.Fatal("expected NaN to not be finite")
	}
	if Finite(math32.Inf(1)) || Finite(math32.Inf(-1)) {
		t.Fatal("expected infinities to not be finite")
	}
}

func TestFiniteVec3(t *testing.T) {
	if !FiniteVec3(Vec3{0, -1, 2}) {
		t.Fatal("expected finite vector to be reported finite")
	}
	for axis := 0; axis < 3; axis++ {
		v := Vec3{0, 0, 0}
		v[axis] = math32.NaN()
		if FiniteVec3(v) {
			t.Fatalf("expected NaN in component %d to be caught", axis)
		}
		v[axis] = math32.Inf(1)
		if FiniteVec3(v) {
			t.Fatalf("expected Inf in component %d to be caught", axis)
		}
	}
}
