package types

import "github.com/chewxy/math32"

// An axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// Create an empty box. Any point or box extends it.
func EmptyBox() Box {
	return Box{
		Min: Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

// Extend the box to include a point.
func (b Box) ExtendPoint(p Vec3) Box {
	return Box{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

// Calc the union of two boxes.
func (b Box) Union(b2 Box) Box {
	return Box{Min: MinVec3(b.Min, b2.Min), Max: MaxVec3(b.Max, b2.Max)}
}

// Get the box extent along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Return true if b2 lies fully inside the box.
func (b Box) ContainsBox(b2 Box) bool {
	for axis := 0; axis < 3; axis++ {
		if b2.Min[axis] < b.Min[axis] || b2.Max[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Interpolate between two boxes. f=0 yields b1, f=1 yields b2.
func LerpBox(b1, b2 Box, f float32) Box {
	return Box{Min: LerpVec3(b1.Min, b2.Min, f), Max: LerpVec3(b1.Max, b2.Max, f)}
}

// A one dimensional range.
type Range struct {
	Lower float32
	Upper float32
}

// Get the range length.
func (r Range) Size() float32 {
	return r.Upper - r.Lower
}

// A pair of boxes whose linear interpolation over a time range bounds a
// moving primitive.
type LBBox struct {
	Bounds0 Box
	Bounds1 Box
}

// Interpolate the box pair. f=0 yields Bounds0, f=1 yields Bounds1.
func (lb LBBox) Interpolate(f float32) Box {
	return LerpBox(lb.Bounds0, lb.Bounds1, f)
}
