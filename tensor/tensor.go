package tensor

// ElementOffset returns the linear element offset of logical index
// (b, f, y, x) within l, including l's view offset and per-axis padding:
//
//	offset = view_offset + Σ_axis (index_axis + pad_before_axis) * pitch_axis
func ElementOffset(l Layout, b, f, y, x int) int {
	idx := [numAxes]int{AxisBatch: b, AxisFeature: f, AxisY: y, AxisX: x, AxisROI: 0}

	offset := l.ViewOffset
	for a := Axis(0); a < numAxes; a++ {
		offset += (idx[a] + l.Dims.Pad[a].Before) * l.Dims.Pitch[a]
	}
	return offset
}

// LogicalSize returns the product of sizes across axes (the element count of
// the logical region, excluding padding).
func LogicalSize(l Layout) int {
	n := 1
	for a := Axis(0); a < numAxes; a++ {
		if l.Dims.Size[a] > 0 {
			n *= l.Dims.Size[a]
		}
	}
	return n
}

// PhysicalSize returns the total addressable element count, including
// padding: the buffer must be at least this large.
func PhysicalSize(l Layout) int {
	max := 0
	for a := Axis(0); a < numAxes; a++ {
		extent := l.Dims.Size[a] + l.Dims.Pad[a].Before + l.Dims.Pad[a].After
		if extent <= 0 {
			continue
		}
		span := l.Dims.Pitch[a] * extent
		if span > max {
			max = span
		}
	}
	if max == 0 {
		return 0
	}
	return max + l.ViewOffset
}

// ChannelIndex returns the physical axis index of the named channel in l's
// ordering, or absent (-1) if the layout does not carry that axis.
func ChannelIndex(l Layout, a Axis) int {
	return l.Format.ChannelIndex(a)
}

// Transform returns the equivalent logical shape of l expressed in
// target's axis ordering. Padding is not preserved; the result has zero
// padding on every axis — callers that need padding to survive a transform
// must reapply it via WithOutputPadding.
func Transform(l Layout, target DataLayout) Layout {
	b := l.Dims.Size[AxisBatch]
	f := l.Dims.Size[AxisFeature]
	y := l.Dims.Size[AxisY]
	x := l.Dims.Size[AxisX]
	return NewSimpleLayout(target, b, f, y, x)
}

// Tensor is a logical n-D array described by a Layout and a DataType; it
// does not itself own storage (see Memory for the backing buffer).
type Tensor struct {
	Layout Layout
	Type   DataType
}

// Batch, Feature, Y, X are convenience accessors for the tensor's logical
// sizes along the four always-present axes.
func (t Tensor) Batch() int   { return t.Layout.Dims.Size[AxisBatch] }
func (t Tensor) Feature() int { return t.Layout.Dims.Size[AxisFeature] }
func (t Tensor) Y() int       { return t.Layout.Dims.Size[AxisY] }
func (t Tensor) X() int       { return t.Layout.Dims.Size[AxisX] }

// New builds a Tensor with a simple (unpadded) layout in the given format.
func New(format DataLayout, dtype DataType, b, f, y, x int) Tensor {
	return Tensor{Layout: NewSimpleLayout(format, b, f, y, x), Type: dtype}
}
