package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/BigBearFalmouth/embree/types"
)

// Triangle connectivity. The triple order defines the winding.
type Triangle struct {
	V [3]uint32
}

// A triangle mesh with one vertex position buffer per time sample.
// Vertex buffers are externally owned views; the mesh caches an alias to
// the time-sample 0 buffer at commit for the static-geometry fast path.
type TriangleMesh struct {
	triangles     []Triangle
	vertices      []VertexView
	vertices0     VertexView
	vertexAttribs []AttrView

	numTimeSteps     int
	fnumTimeSegments float32
}

// Create a triangle mesh with the given number of time samples.
func NewTriangleMesh(numTimeSteps int) *TriangleMesh {
	if numTimeSteps < 1 {
		numTimeSteps = 1
	}
	return &TriangleMesh{
		vertices:     make([]VertexView, numTimeSteps),
		numTimeSteps: numTimeSteps,
	}
}

// Implements Geometry.
func (m *TriangleMesh) Kind() Kind {
	return KindTriangleMesh
}

// Implements Geometry.
func (m *TriangleMesh) NumPrimitives() int {
	return len(m.triangles)
}

// Implements Geometry.
func (m *TriangleMesh) NumTimeSteps() int {
	return m.numTimeSteps
}

// Get the number of triangles.
func (m *TriangleMesh) NumTriangles() int {
	return len(m.triangles)
}

// Get the number of vertices per time sample.
func (m *TriangleMesh) NumVertices() int {
	return m.vertices[0].Count()
}

// Attach the triangle index buffer.
func (m *TriangleMesh) SetTriangles(triangles []Triangle) {
	m.triangles = triangles
}

// Attach the vertex position buffer for a time sample.
func (m *TriangleMesh) SetVertices(itime int, view VertexView) {
	m.vertices[itime] = view
}

// Attach a generic per-vertex attribute buffer.
func (m *TriangleMesh) AttachVertexAttrib(view AttrView) {
	m.vertexAttribs = append(m.vertexAttribs, view)
}

// Get the i'th attached vertex attribute buffer.
func (m *TriangleMesh) VertexAttrib(i int) AttrView {
	return m.vertexAttribs[i]
}

// Verify that all vertex buffers share one element count, then refresh the
// keyframe 0 alias and the derived segment count. The mesh must be
// re-committed after any buffer is replaced.
func (m *TriangleMesh) Commit() error {
	if m.vertices[0].Empty() {
		return fmt.Errorf("trianglemesh: no vertex buffer attached for time step 0")
	}
	count := m.vertices[0].Count()
	for t := 1; t < m.numTimeSteps; t++ {
		if m.vertices[t].Empty() {
			return fmt.Errorf("trianglemesh: no vertex buffer attached for time step %d", t)
		}
		if m.vertices[t].Count() != count {
			return fmt.Errorf("trianglemesh: vertex buffer for time step %d holds %d elements; want %d", t, m.vertices[t].Count(), count)
		}
	}

	m.vertices0 = m.vertices[0]
	m.fnumTimeSegments = float32(m.numTimeSteps - 1)
	return nil
}

// Get the i'th triangle.
func (m *TriangleMesh) TriangleAt(i int) Triangle {
	return m.triangles[i]
}

// Get the i'th vertex of the first time sample.
func (m *TriangleMesh) Vertex(i uint32) types.Vec4 {
	return m.vertices0.At(int(i))
}

// Get the i'th vertex of the itime'th time sample.
func (m *TriangleMesh) VertexAt(i uint32, itime int) types.Vec4 {
	return m.vertices[itime].At(int(i))
}

func triangleBox(v0, v1, v2 types.Vec4) types.Box {
	return types.Box{
		Min: types.MinVec3(types.MinVec3(v0.Vec3(), v1.Vec3()), v2.Vec3()),
		Max: types.MaxVec3(types.MaxVec3(v0.Vec3(), v1.Vec3()), v2.Vec3()),
	}
}

// Calc the bounds of the i'th triangle at the first time sample.
func (m *TriangleMesh) Bounds(i int) types.Box {
	tri := m.triangles[i]
	return triangleBox(m.Vertex(tri.V[0]), m.Vertex(tri.V[1]), m.Vertex(tri.V[2]))
}

// Calc the bounds of the i'th triangle at the itime'th time sample.
func (m *TriangleMesh) BoundsAt(i, itime int) types.Box {
	tri := m.triangles[i]
	return triangleBox(m.VertexAt(tri.V[0], itime), m.VertexAt(tri.V[1], itime), m.VertexAt(tri.V[2], itime))
}

// Calc the interpolated bounds of the i'th triangle at a continuous time.
// The two keyframe boxes bracketing the time are interpolated at box
// level; this approximates the true swept box between keyframes.
func (m *TriangleMesh) BoundsAtTime(i int, time float32) types.Box {
	itime, f := TimeSegment(time, m.fnumTimeSegments)
	return types.LerpBox(m.BoundsAt(i, itime), m.BoundsAt(i, itime+1), f)
}

// Check if the i'th triangle is valid at the itime'th time sample.
func (m *TriangleMesh) Valid(i, itime int) bool {
	return m.ValidRange(i, itime, itime)
}

// Check if the i'th triangle is valid across an inclusive keyframe range.
// A triangle is valid iff its three indices are in range and every
// referenced vertex position is finite at every keyframe of the range.
func (m *TriangleMesh) ValidRange(i, itimeLower, itimeUpper int) bool {
	tri := m.triangles[i]
	numVertices := uint32(m.NumVertices())
	if tri.V[0] >= numVertices || tri.V[1] >= numVertices || tri.V[2] >= numVertices {
		return false
	}

	for itime := itimeLower; itime <= itimeUpper; itime++ {
		if !types.FiniteVec3(m.VertexAt(tri.V[0], itime).Vec3()) ||
			!types.FiniteVec3(m.VertexAt(tri.V[1], itime).Vec3()) ||
			!types.FiniteVec3(m.VertexAt(tri.V[2], itime).Vec3()) {
			return false
		}
	}

	return true
}

// Calc the build bounds of the i'th triangle. The triangle must be valid
// at every time sample; on success the returned box covers the first time
// sample only.
func (m *TriangleMesh) BuildBounds(i int) (types.Box, bool) {
	if !m.ValidRange(i, 0, m.numTimeSteps-1) {
		return types.Box{}, false
	}
	return m.Bounds(i), true
}

// Calc the build bounds of the i'th triangle for the time segment starting
// at the itime'th sample. Validity covers the two bracketing samples; the
// returned box covers the itime'th sample only, downstream code merges
// per-segment boxes when it needs a union.
func (m *TriangleMesh) BuildBoundsAt(i, itime int) (types.Box, bool) {
	if !m.ValidRange(i, itime, itime+1) {
		return types.Box{}, false
	}
	return m.BoundsAt(i, itime), true
}

// Calc the build bounds of the i'th triangle for a global time segment,
// resampling onto the mesh's own time axis when the counts differ.
func (m *TriangleMesh) BuildBoundsGlobal(i, itimeGlobal, numTimeStepsGlobal int) (types.Box, bool) {
	return buildBoundsResampled(itimeGlobal, numTimeStepsGlobal, m.numTimeSteps, func(itime int) (types.Box, bool) {
		if !m.Valid(i, itime) {
			return types.Box{}, false
		}
		return m.BoundsAt(i, itime), true
	})
}

// Calc a box pair whose linear interpolation over the time range
// conservatively contains the i'th triangle's discrete keyframe boxes
// inside that range. Interior keyframes are visited in ascending order and
// any excess of the exact keyframe box over the interpolated prediction is
// accumulated onto both ends of the pair.
func (m *TriangleMesh) LinearBounds(i int, timeRange types.Range) types.LBBox {
	// A static mesh has no motion; the pair degenerates to the one box.
	if m.numTimeSteps == 1 {
		bbox := m.Bounds(i)
		return types.LBBox{Bounds0: bbox, Bounds1: bbox}
	}

	b0 := m.BoundsAtTime(i, timeRange.Lower)
	b1 := m.BoundsAtTime(i, timeRange.Upper)

	ilower := int(math32.Ceil(timeRange.Lower * m.fnumTimeSegments))
	iupper := int(math32.Floor(timeRange.Upper * m.fnumTimeSegments))
	for k := ilower; k <= iupper; k++ {
		f := (float32(k)/m.fnumTimeSegments - timeRange.Lower) / timeRange.Size()
		predicted := types.LerpBox(b0, b1, f)
		exact := m.BoundsAt(i, k)

		dlower := types.MinVec3(exact.Min.Sub(predicted.Min), types.Vec3{})
		dupper := types.MaxVec3(exact.Max.Sub(predicted.Max), types.Vec3{})
		b0.Min = b0.Min.Add(dlower)
		b1.Min = b1.Min.Add(dlower)
		b0.Max = b0.Max.Add(dupper)
		b1.Max = b1.Max.Add(dupper)
	}

	return types.LBBox{Bounds0: b0, Bounds1: b1}
}

// Calc the linear bounds of the i'th triangle if it is valid over the time
// range. The validity check pads the touched keyframe range slightly to
// absorb rounding at segment boundaries.
func (m *TriangleMesh) LinearBoundsValid(i int, timeRange types.Range) (types.LBBox, bool) {
	itimeLower := int(math32.Floor(1.0001 * timeRange.Lower * m.fnumTimeSegments))
	itimeUpper := int(math32.Ceil(0.9999 * timeRange.Upper * m.fnumTimeSegments))
	if !m.ValidRange(i, itimeLower, itimeUpper) {
		return types.LBBox{}, false
	}
	return m.LinearBounds(i, timeRange), true
}

// Calc the linear bounds of the i'th triangle for a global time segment.
func (m *TriangleMesh) LinearBoundsGlobal(i, itimeGlobal, numTimeStepsGlobal int) types.LBBox {
	if m.numTimeSteps == 1 {
		bbox := m.Bounds(i)
		return types.LBBox{Bounds0: bbox, Bounds1: bbox}
	}
	if numTimeStepsGlobal == m.numTimeSteps {
		return types.LBBox{Bounds0: m.BoundsAt(i, itimeGlobal), Bounds1: m.BoundsAt(i, itimeGlobal+1)}
	}
	globalSegments := float32(numTimeStepsGlobal - 1)
	return m.LinearBounds(i, types.Range{
		Lower: float32(itimeGlobal) / globalSegments,
		Upper: float32(itimeGlobal+1) / globalSegments,
	})
}
