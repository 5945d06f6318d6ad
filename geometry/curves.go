package geometry

import (
	"fmt"

	"github.com/BigBearFalmouth/embree/types"
)

// Default downstream tessellation density for curve segments.
const defaultTessellationRate = 4

// Flag bits stored per curve segment.
const (
	segmentStartBit = 0x1
	segmentEndBit   = 0x2
)

// A store of degree 3 curve segments. Each entry of the curve buffer is the
// start offset of a 4 control point window into the per-time-sample vertex
// buffers. Hermite curves read 2 endpoints from the vertex buffers and 2
// tangents from the tangent buffers; ribbon style curves additionally carry
// per-vertex normals. The position w component holds the curve radius.
type CurveGeometry struct {
	curves []uint32
	flags  []uint8

	vertices []VertexView
	normals  []VertexView
	tangents []VertexView

	vertices0 VertexView
	normals0  VertexView
	tangents0 VertexView

	vertexAttribs    []AttrView
	tessellationRate int

	numTimeSteps     int
	fnumTimeSegments float32
}

// Create a curve store with the given number of time samples.
func NewCurveGeometry(numTimeSteps int) *CurveGeometry {
	if numTimeSteps < 1 {
		numTimeSteps = 1
	}
	return &CurveGeometry{
		vertices:         make([]VertexView, numTimeSteps),
		normals:          make([]VertexView, numTimeSteps),
		tangents:         make([]VertexView, numTimeSteps),
		tessellationRate: defaultTessellationRate,
		numTimeSteps:     numTimeSteps,
	}
}

// Implements Geometry.
func (g *CurveGeometry) Kind() Kind {
	return KindCurve
}

// Implements Geometry.
func (g *CurveGeometry) NumPrimitives() int {
	return len(g.curves)
}

// Implements Geometry.
func (g *CurveGeometry) NumTimeSteps() int {
	return g.numTimeSteps
}

// Get the number of control points per time sample.
func (g *CurveGeometry) NumVertices() int {
	return g.vertices[0].Count()
}

// Attach the curve start index buffer.
func (g *CurveGeometry) SetCurves(curves []uint32) {
	g.curves = curves
}

// Attach the optional per-segment start/end flag buffer.
func (g *CurveGeometry) SetFlags(flags []uint8) {
	g.flags = flags
}

// Attach the control point buffer for a time sample.
func (g *CurveGeometry) SetVertices(itime int, view VertexView) {
	g.vertices[itime] = view
}

// Attach the normal buffer for a time sample.
func (g *CurveGeometry) SetNormals(itime int, view VertexView) {
	g.normals[itime] = view
}

// Attach the tangent buffer for a time sample.
func (g *CurveGeometry) SetTangents(itime int, view VertexView) {
	g.tangents[itime] = view
}

// Attach a generic per-vertex attribute buffer.
func (g *CurveGeometry) AttachVertexAttrib(view AttrView) {
	g.vertexAttribs = append(g.vertexAttribs, view)
}

// Get the i'th attached vertex attribute buffer.
func (g *CurveGeometry) VertexAttrib(i int) AttrView {
	return g.vertexAttribs[i]
}

// Set the downstream tessellation density.
func (g *CurveGeometry) SetTessellationRate(rate int) {
	g.tessellationRate = rate
}

// Get the downstream tessellation density.
func (g *CurveGeometry) TessellationRate() int {
	return g.tessellationRate
}

// Verify that every attached buffer set shares one element count per time
// sample, then refresh the keyframe 0 aliases and the derived segment
// count. Normal and tangent buffers are optional, but when one time sample
// carries such a buffer every time sample must.
func (g *CurveGeometry) Commit() error {
	if g.vertices[0].Empty() {
		return fmt.Errorf("curves: no vertex buffer attached for time step 0")
	}
	count := g.vertices[0].Count()
	for t := 1; t < g.numTimeSteps; t++ {
		if g.vertices[t].Empty() {
			return fmt.Errorf("curves: no vertex buffer attached for time step %d", t)
		}
		if g.vertices[t].Count() != count {
			return fmt.Errorf("curves: vertex buffer for time step %d holds %d elements; want %d", t, g.vertices[t].Count(), count)
		}
	}
	if err := g.verifyOptional("normal", g.normals, count); err != nil {
		return err
	}
	if err := g.verifyOptional("tangent", g.tangents, count); err != nil {
		return err
	}
	if g.flags != nil && len(g.flags) != len(g.curves) {
		return fmt.Errorf("curves: flag buffer holds %d entries; want %d", len(g.flags), len(g.curves))
	}

	g.vertices0 = g.vertices[0]
	g.normals0 = g.normals[0]
	g.tangents0 = g.tangents[0]
	g.fnumTimeSegments = float32(g.numTimeSteps - 1)
	return nil
}

func (g *CurveGeometry) verifyOptional(name string, views []VertexView, count int) error {
	attached := false
	for t := 0; t < g.numTimeSteps; t++ {
		if !views[t].Empty() {
			attached = true
			break
		}
	}
	if !attached {
		return nil
	}
	for t := 0; t < g.numTimeSteps; t++ {
		if views[t].Empty() {
			return fmt.Errorf("curves: no %s buffer attached for time step %d", name, t)
		}
		if views[t].Count() != count {
			return fmt.Errorf("curves: %s buffer for time step %d holds %d elements; want %d", name, t, views[t].Count(), count)
		}
	}
	return nil
}

// Get the start offset of the i'th curve segment.
func (g *CurveGeometry) Curve(i int) uint32 {
	return g.curves[i]
}

// Map the two low flag bits of the i'th segment into bits 30-31 of the
// returned mask. Without a flag buffer the mask is 0.
func (g *CurveGeometry) StartEndBitMask(i int) uint32 {
	var mask uint32
	if g.flags != nil {
		mask |= uint32(g.flags[i]&(segmentStartBit|segmentEndBit)) << 30
	}
	return mask
}

// Get the i'th control point of the first time sample.
func (g *CurveGeometry) Vertex(i int) types.Vec4 {
	return g.vertices0.At(i)
}

// Get the i'th normal of the first time sample.
func (g *CurveGeometry) Normal(i int) types.Vec4 {
	return g.normals0.At(i)
}

// Get the i'th tangent of the first time sample.
func (g *CurveGeometry) Tangent(i int) types.Vec4 {
	return g.tangents0.At(i)
}

// Get the i'th radius of the first time sample.
func (g *CurveGeometry) Radius(i int) float32 {
	return g.vertices0.At(i)[3]
}

// Get the i'th control point of the itime'th time sample.
func (g *CurveGeometry) VertexAt(i, itime int) types.Vec4 {
	return g.vertices[itime].At(i)
}

// Get the i'th normal of the itime'th time sample.
func (g *CurveGeometry) NormalAt(i, itime int) types.Vec4 {
	return g.normals[itime].At(i)
}

// Get the i'th tangent of the itime'th time sample.
func (g *CurveGeometry) TangentAt(i, itime int) types.Vec4 {
	return g.tangents[itime].At(i)
}

// Get the i'th radius of the itime'th time sample.
func (g *CurveGeometry) RadiusAt(i, itime int) float32 {
	return g.vertices[itime].At(i)[3]
}

// Gather the 4 control points starting at offset i from the first time
// sample.
func (g *CurveGeometry) Gather(i int) (p0, p1, p2, p3 types.Vec4) {
	return g.Vertex(i + 0), g.Vertex(i + 1), g.Vertex(i + 2), g.Vertex(i + 3)
}

// Gather the 4 control points starting at offset i from the itime'th time
// sample.
func (g *CurveGeometry) GatherAt(i, itime int) (p0, p1, p2, p3 types.Vec4) {
	return g.VertexAt(i+0, itime), g.VertexAt(i+1, itime), g.VertexAt(i+2, itime), g.VertexAt(i+3, itime)
}

// Gather the 4 control points starting at offset i at a continuous time.
// The two bracketing keyframe gathers are blended component-wise; the
// blend is a linear approximation of the in-between motion, not a
// reconstruction of the true trajectory.
func (g *CurveGeometry) GatherAtTime(i int, time float32) (p0, p1, p2, p3 types.Vec4) {
	itime, f := TimeSegment(time, g.fnumTimeSegments)

	a0, a1, a2, a3 := g.GatherAt(i, itime)
	b0, b1, b2, b3 := g.GatherAt(i, itime+1)
	p0 = types.LerpVec4(a0, b0, f)
	p1 = types.LerpVec4(a1, b1, f)
	p2 = types.LerpVec4(a2, b2, f)
	p3 = types.LerpVec4(a3, b3, f)
	return p0, p1, p2, p3
}

// Gather the 4 control points and the 2 endpoint normals starting at
// offset i from the first time sample.
func (g *CurveGeometry) GatherWithNormals(i int) (p0, p1, p2, p3, n0, n1 types.Vec4) {
	p0, p1, p2, p3 = g.Gather(i)
	return p0, p1, p2, p3, g.Normal(i + 0), g.Normal(i + 1)
}

// Gather the 4 control points and the 2 endpoint normals starting at
// offset i from the itime'th time sample.
func (g *CurveGeometry) GatherWithNormalsAt(i, itime int) (p0, p1, p2, p3, n0, n1 types.Vec4) {
	p0, p1, p2, p3 = g.GatherAt(i, itime)
	return p0, p1, p2, p3, g.NormalAt(i+0, itime), g.NormalAt(i+1, itime)
}

// Gather the 4 control points and the 2 endpoint normals starting at
// offset i at a continuous time. Positions and normals share the same
// keyframe pair and blend fraction.
func (g *CurveGeometry) GatherWithNormalsAtTime(i int, time float32) (p0, p1, p2, p3, n0, n1 types.Vec4) {
	itime, f := TimeSegment(time, g.fnumTimeSegments)

	a0, a1, a2, a3, an0, an1 := g.GatherWithNormalsAt(i, itime)
	b0, b1, b2, b3, bn0, bn1 := g.GatherWithNormalsAt(i, itime+1)
	p0 = types.LerpVec4(a0, b0, f)
	p1 = types.LerpVec4(a1, b1, f)
	p2 = types.LerpVec4(a2, b2, f)
	p3 = types.LerpVec4(a3, b3, f)
	n0 = types.LerpVec4(an0, bn0, f)
	n1 = types.LerpVec4(an1, bn1, f)
	return p0, p1, p2, p3, n0, n1
}

// Gather the 2 endpoints and 2 tangents of the hermite segment starting at
// offset i from the first time sample.
func (g *CurveGeometry) GatherHermite(i int) (p0, t0, p1, t1 types.Vec4) {
	return g.Vertex(i + 0), g.Tangent(i + 0), g.Vertex(i + 1), g.Tangent(i + 1)
}

// Gather the 2 endpoints and 2 tangents of the hermite segment starting at
// offset i from the itime'th time sample.
func (g *CurveGeometry) GatherHermiteAt(i, itime int) (p0, t0, p1, t1 types.Vec4) {
	return g.VertexAt(i+0, itime), g.TangentAt(i+0, itime), g.VertexAt(i+1, itime), g.TangentAt(i+1, itime)
}

// Gather the hermite segment starting at offset i at a continuous time.
func (g *CurveGeometry) GatherHermiteAtTime(i int, time float32) (p0, t0, p1, t1 types.Vec4) {
	itime, f := TimeSegment(time, g.fnumTimeSegments)

	ap0, at0, ap1, at1 := g.GatherHermiteAt(i, itime)
	bp0, bt0, bp1, bt1 := g.GatherHermiteAt(i, itime+1)
	p0 = types.LerpVec4(ap0, bp0, f)
	t0 = types.LerpVec4(at0, bt0, f)
	p1 = types.LerpVec4(ap1, bp1, f)
	t1 = types.LerpVec4(at1, bt1, f)
	return p0, t0, p1, t1
}

// Gather the hermite segment and its endpoint normals starting at offset i
// from the first time sample.
func (g *CurveGeometry) GatherHermiteWithNormals(i int) (p0, t0, n0, p1, t1, n1 types.Vec4) {
	p0, t0, p1, t1 = g.GatherHermite(i)
	return p0, t0, g.Normal(i + 0), p1, t1, g.Normal(i + 1)
}

// Gather the hermite segment and its endpoint normals starting at offset i
// from the itime'th time sample.
func (g *CurveGeometry) GatherHermiteWithNormalsAt(i, itime int) (p0, t0, n0, p1, t1, n1 types.Vec4) {
	p0, t0, p1, t1 = g.GatherHermiteAt(i, itime)
	return p0, t0, g.NormalAt(i+0, itime), p1, t1, g.NormalAt(i+1, itime)
}

// Gather the hermite segment and its endpoint normals starting at offset i
// at a continuous time. All six values share the same keyframe pair and
// blend fraction.
func (g *CurveGeometry) GatherHermiteWithNormalsAtTime(i int, time float32) (p0, t0, n0, p1, t1, n1 types.Vec4) {
	itime, f := TimeSegment(time, g.fnumTimeSegments)

	ap0, at0, an0, ap1, at1, an1 := g.GatherHermiteWithNormalsAt(i, itime)
	bp0, bt0, bn0, bp1, bt1, bn1 := g.GatherHermiteWithNormalsAt(i, itime+1)
	p0 = types.LerpVec4(ap0, bp0, f)
	t0 = types.LerpVec4(at0, bt0, f)
	n0 = types.LerpVec4(an0, bn0, f)
	p1 = types.LerpVec4(ap1, bp1, f)
	t1 = types.LerpVec4(at1, bt1, f)
	n1 = types.LerpVec4(an1, bn1, f)
	return p0, t0, n0, p1, t1, n1
}
