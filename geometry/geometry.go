// Package geometry holds the time-sampled geometry stores of the kernel:
// triangle meshes and bicubic/Hermite curves, together with the bounds,
// validity and gather queries the acceleration structure builder runs
// against them. All queries are pure reads of committed buffers; mutation
// and commit must not overlap with reader activity.
package geometry

import (
	"github.com/chewxy/math32"

	"github.com/BigBearFalmouth/embree/types"
)

type Kind uint32

const (
	KindTriangleMesh Kind = iota
	KindCurve
)

// Geometry is implemented by every time-sampled geometry store.
type Geometry interface {
	// Get the geometry kind.
	Kind() Kind

	// Get the number of primitives held by the store.
	NumPrimitives() int

	// Get the number of discrete time samples per primitive.
	NumTimeSteps() int

	// Verify buffer invariants and refresh cached derived state.
	Commit() error
}

// Boundable is implemented by geometries that can produce per-primitive
// build bounds for a static build.
type Boundable interface {
	BuildBounds(i int) (types.Box, bool)
}

// MotionBoundable is implemented by geometries that can produce validated
// linear motion bounds over a time range.
type MotionBoundable interface {
	LinearBoundsValid(i int, timeRange types.Range) (types.LBBox, bool)
}

// Map a continuous time in [0,1] to the lower keyframe of the segment that
// contains it plus the fractional position toward the next keyframe. The
// scaled time is clamped into [0, fnumSegments-1] so time=1.0 maps to the
// last segment with fraction 1.0.
func TimeSegment(time, fnumSegments float32) (int, float32) {
	scaled := time * fnumSegments
	lower := math32.Max(math32.Min(math32.Floor(scaled), fnumSegments-1), 0)
	return int(lower), scaled - lower
}

// Derive the build bounds for a global time segment when the geometry
// carries its own local time-step count. boundsAt yields the box of a
// single local keyframe and whether that keyframe is valid. When the local
// and global counts differ, the global segment is resampled onto the local
// time axis and every touched local keyframe must be valid; the returned
// box is the one of the first bracketing local keyframe.
func buildBoundsResampled(itimeGlobal, numTimeStepsGlobal, numTimeSteps int, boundsAt func(itime int) (types.Box, bool)) (types.Box, bool) {
	if numTimeStepsGlobal == numTimeSteps {
		if _, ok := boundsAt(itimeGlobal + 1); !ok {
			return types.Box{}, false
		}
		return boundsAt(itimeGlobal)
	}

	localSegments := float32(numTimeSteps - 1)
	globalSegments := float32(numTimeStepsGlobal - 1)
	tLower := float32(itimeGlobal) / globalSegments
	tUpper := float32(itimeGlobal+1) / globalSegments

	ilower := int(math32.Floor(tLower * localSegments))
	iupper := int(math32.Ceil(tUpper * localSegments))
	if iupper > numTimeSteps-1 {
		iupper = numTimeSteps - 1
	}

	var bbox types.Box
	for itime := ilower; itime <= iupper; itime++ {
		b, ok := boundsAt(itime)
		if !ok {
			return types.Box{}, false
		}
		if itime == ilower {
			bbox = b
		}
	}
	return bbox, true
}
