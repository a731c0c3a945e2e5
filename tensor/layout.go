// Package tensor implements the tensor, layout, and memory algebra: element
// offset computation, logical/physical size queries, and layout transforms.
package tensor

// Axis names a logical tensor axis independent of physical ordering.
type Axis int

const (
	AxisBatch Axis = iota
	AxisFeature
	AxisY
	AxisX
	AxisROI // optional 5th axis, nominally region-of-interest index
	numAxes
)

func (a Axis) String() string {
	switch a {
	case AxisBatch:
		return "b"
	case AxisFeature:
		return "f"
	case AxisY:
		return "y"
	case AxisX:
		return "x"
	case AxisROI:
		return "r"
	default:
		return "?"
	}
}

// absent is the sentinel channel_index result for an axis not present in a
// given layout's ordering.
const absent = -1

// DataLayout identifies the physical axis permutation (and any blocking) used
// for an activation/IO tensor.
type DataLayout int

const (
	Bfyx DataLayout = iota
	Yxfb
	Byxf
	Fyxb
	Bf
	Fb
	Brfyx
	Bf8Xy16
	BsFBsv8Af8
	BsFBsv16Af8
	Winograd2x3S1Data
)

// dataChannelOrder maps a DataLayout to the physical position of each logical
// axis, or absent if the layout does not carry that axis at all. Grounded on
// original_source/kernel_selector/common/tensor_type.h's dataChannelMap.
var dataChannelOrder = map[DataLayout][numAxes]int{
	Bf:                {AxisBatch: 0, AxisFeature: 1, AxisY: absent, AxisX: absent, AxisROI: absent},
	Fb:                {AxisBatch: 1, AxisFeature: 0, AxisY: absent, AxisX: absent, AxisROI: absent},
	Bfyx:              {AxisBatch: 0, AxisFeature: 1, AxisY: 2, AxisX: 3, AxisROI: absent},
	Yxfb:              {AxisBatch: 3, AxisFeature: 2, AxisY: 0, AxisX: 1, AxisROI: absent},
	Byxf:              {AxisBatch: 0, AxisFeature: 3, AxisY: 1, AxisX: 2, AxisROI: absent},
	Fyxb:              {AxisBatch: 3, AxisFeature: 0, AxisY: 1, AxisX: 2, AxisROI: absent},
	BsFBsv8Af8:        {AxisBatch: 0, AxisFeature: 1, AxisY: absent, AxisX: absent, AxisROI: absent},
	BsFBsv16Af8:       {AxisBatch: 0, AxisFeature: 1, AxisY: absent, AxisX: absent, AxisROI: absent},
	Bf8Xy16:           {AxisBatch: 0, AxisFeature: 1, AxisY: 2, AxisX: 3, AxisROI: absent},
	Brfyx:             {AxisBatch: 0, AxisFeature: 1, AxisY: 2, AxisX: 3, AxisROI: 4},
	Winograd2x3S1Data: {AxisBatch: 2, AxisFeature: 1, AxisY: 0, AxisX: 3, AxisROI: absent},
}

func (l DataLayout) String() string {
	switch l {
	case Bfyx:
		return "bfyx"
	case Yxfb:
		return "yxfb"
	case Byxf:
		return "byxf"
	case Fyxb:
		return "fyxb"
	case Bf:
		return "bf"
	case Fb:
		return "fb"
	case Brfyx:
		return "brfyx"
	case Bf8Xy16:
		return "bf8_xy16"
	case BsFBsv8Af8:
		return "bs_f_bsv8_af8"
	case BsFBsv16Af8:
		return "bs_f_bsv16_af8"
	case Winograd2x3S1Data:
		return "winograd_2x3_s1_data"
	default:
		return "unknown"
	}
}

// ChannelIndex returns the physical axis position of the named channel in
// this layout's ordering, or absent.
func (l DataLayout) ChannelIndex(a Axis) int {
	order, ok := dataChannelOrder[l]
	if !ok {
		return absent
	}
	return order[a]
}

// NumChannels returns how many physical axes this layout uses.
func (l DataLayout) NumChannels() int {
	order, ok := dataChannelOrder[l]
	if !ok {
		return 0
	}
	n := 0
	for _, idx := range order {
		if idx != absent {
			n++
		}
	}
	return n
}

// simpleDataLayouts are canonical permutations for which a single pitch
// product suffices (no blocking/tiling).
var simpleDataLayouts = map[DataLayout]bool{
	Bf: true, Fb: true, Bfyx: true, Yxfb: true, Byxf: true, Fyxb: true,
}

// SimpleLayout reports whether l is a canonical permutation layout.
func SimpleLayout(l DataLayout) bool {
	return simpleDataLayouts[l]
}

// WeightsLayout identifies the physical arrangement of a filter tensor's
// OFM/IFM/Y/X axes.
type WeightsLayout int

const (
	WOi WeightsLayout = iota
	WIo
	WOiyx
	WOyxi
	WIyxo
	WYxio
	WOsIyxOsv16
	WOsIyxOsv16Rotate180
	WOsIOsv8Ai8
	WOsIOsv16Ai8
	WOsIOsv16
	WIyXsOsYxsv2Osv16
	WWinograd2x3S1Weights
	WWinograd2x3S1FusedWeights
	WWinograd6x3S1FusedWeights
)

func (l WeightsLayout) String() string {
	switch l {
	case WOi:
		return "oi"
	case WIo:
		return "io"
	case WOiyx:
		return "oiyx"
	case WOyxi:
		return "oyxi"
	case WIyxo:
		return "iyxo"
	case WYxio:
		return "yxio"
	case WOsIyxOsv16:
		return "os_iyx_osv16"
	case WOsIyxOsv16Rotate180:
		return "os_iyx_osv16_rotate_180"
	case WOsIOsv8Ai8:
		return "os_i_osv8__ai8"
	case WOsIOsv16Ai8:
		return "os_i_osv16__ai8"
	case WOsIOsv16:
		return "os_i_osv16"
	case WIyXsOsYxsv2Osv16:
		return "i_yxs_os_yxsv2_osv16"
	case WWinograd2x3S1Weights:
		return "winograd_2x3_s1_weights"
	case WWinograd2x3S1FusedWeights:
		return "winograd_2x3_s1_fused_weights"
	case WWinograd6x3S1FusedWeights:
		return "winograd_6x3_s1_fused_weights"
	default:
		return "unknown"
	}
}

// simpleWeightsLayouts mirrors tensor_type.h's SimpleLayout(WeightsLayout).
var simpleWeightsLayouts = map[WeightsLayout]bool{
	WOi: true, WIo: true, WOiyx: true, WOyxi: true, WIyxo: true, WYxio: true,
}

// SimpleWeightsLayout reports whether l is a canonical weights permutation.
func SimpleWeightsLayout(l WeightsLayout) bool {
	return simpleWeightsLayouts[l]
}

// Pad describes the unused padding elements surrounding the logical region
// of one axis.
type Pad struct {
	Before int
	After  int
}

// Dims holds the per-axis size/pitch/pad triples for up to 5 logical axes
// (batch, feature, y, x, roi).
type Dims struct {
	Size  [numAxes]int
	Pitch [numAxes]int
	Pad   [numAxes]Pad
}

// Layout is a fully resolved tensor layout: a physical axis permutation
// (DataLayout) plus the per-axis sizes/pitches/pads that describe one
// concrete tensor using it.
type Layout struct {
	Format DataLayout
	Dims   Dims
	// ViewOffset is the linear element offset of the first logical element,
	// used by in-place aliasing (concat/crop/reshape) to point into a
	// sub-window of a shared buffer.
	ViewOffset int
}

// NewSimpleLayout builds a Layout with no padding and canonical pitches
// computed from sizes in the format's physical axis order (innermost axis
// pitch = 1), the common case used by calc_output_layout implementations.
func NewSimpleLayout(format DataLayout, b, f, y, x int) Layout {
	sizes := [numAxes]int{AxisBatch: b, AxisFeature: f, AxisY: y, AxisX: x, AxisROI: 1}

	// Determine physical order: a slice of axes sorted by their channel
	// index, ascending (position 0 is the outermost in the tables above,
	// position len-1 is innermost / unit pitch). We assign pitches from the innermost axis (highest physical
	// index) outward.
	order := dataChannelOrder[format]
	type axisPos struct {
		axis Axis
		pos  int
	}
	var used []axisPos
	for a := Axis(0); a < numAxes; a++ {
		if order[a] != absent {
			used = append(used, axisPos{a, order[a]})
		}
	}
	// sort descending by physical position so the innermost (highest pos)
	// axis gets pitch 1 first.
	for i := 0; i < len(used); i++ {
		for j := i + 1; j < len(used); j++ {
			if used[j].pos > used[i].pos {
				used[i], used[j] = used[j], used[i]
			}
		}
	}

	var d Dims
	for a := Axis(0); a < numAxes; a++ {
		d.Size[a] = sizes[a]
	}
	pitch := 1
	for _, ap := range used {
		d.Pitch[ap.axis] = pitch
		pitch *= d.Size[ap.axis]
	}
	// axes this layout does not carry (e.g. ROI in 4D layouts) get pitch 0,
	// size 1: they contribute nothing to offset computation.
	for a := Axis(0); a < numAxes; a++ {
		if order[a] == absent {
			d.Size[a] = 1
			d.Pitch[a] = 0
		}
	}

	return Layout{Format: format, Dims: d}
}

// WithOutputPadding returns a copy of l with the given per-axis pad applied,
// recomputing pitches so that pitch_next >= pitch_cur * (v_cur + pad_before +
// pad_after) holds. Axes absent from pad keep no
// padding.
func (l Layout) WithOutputPadding(pad map[Axis]Pad) Layout {
	order := dataChannelOrder[l.Format]
	type axisPos struct {
		axis Axis
		pos  int
	}
	var used []axisPos
	for a := Axis(0); a < numAxes; a++ {
		if order[a] != absent {
			used = append(used, axisPos{a, order[a]})
		}
	}
	for i := 0; i < len(used); i++ {
		for j := i + 1; j < len(used); j++ {
			if used[j].pos > used[i].pos {
				used[i], used[j] = used[j], used[i]
			}
		}
	}

	var padArr [numAxes]Pad
	for a, p := range pad {
		padArr[a] = p
	}

	out := l
	out.Dims.Pad = padArr
	pitch := 1
	for _, ap := range used {
		out.Dims.Pitch[ap.axis] = pitch
		extent := out.Dims.Size[ap.axis] + padArr[ap.axis].Before + padArr[ap.axis].After
		pitch *= extent
	}
	return out
}
