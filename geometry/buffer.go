package geometry

import "github.com/BigBearFalmouth/embree/types"

// A non-owning view over a buffer of vertex data. The view aliases memory
// owned by the caller and stays valid only for as long as the backing
// buffer does.
type VertexView struct {
	elems []types.Vec4
}

// Create a vertex view over the supplied elements.
func NewVertexView(elems []types.Vec4) VertexView {
	return VertexView{elems: elems}
}

// Get the number of elements in the view.
func (v VertexView) Count() int {
	return len(v.elems)
}

// Get the i'th element.
func (v VertexView) At(i int) types.Vec4 {
	return v.elems[i]
}

// Return true if no buffer is attached to the view.
func (v VertexView) Empty() bool {
	return v.elems == nil
}

// A non-owning view over raw per-vertex attribute data with an explicit
// offset and stride. Attribute buffers are not time-varying.
type AttrView struct {
	data   []byte
	offset int
	stride int
	count  int
}

// Create an attribute view over the supplied bytes.
func NewAttrView(data []byte, offset, stride, count int) AttrView {
	return AttrView{data: data, offset: offset, stride: stride, count: count}
}

// Get the number of elements in the view.
func (v AttrView) Count() int {
	return v.count
}

// Get the raw bytes of the i'th element.
func (v AttrView) Elem(i int) []byte {
	base := v.offset + i*v.stride
	return v.data[base : base+v.stride]
}
