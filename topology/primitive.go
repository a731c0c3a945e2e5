// Package topology implements the declarative primitive/topology DAG: the
// user-facing description of a compute graph before it is compiled into a
// Program (see package program).
package topology

import "github.com/cldnngo/cldnn/tensor"

// Kind is the closed tag identifying which operator a PrimitiveDescription
// describes: primitive variation is a tagged-variant dispatch, not an
// inheritance hierarchy.
type Kind int

const (
	KindInputLayout Kind = iota
	KindData
	KindActivation
	KindArgExtremum // unifies arg_max/arg_max_min into one primitive
	KindBatchNorm
	KindConcatenation
	KindConvolution
	KindCrop
	KindCustomGPU
	KindDeconvolution
	KindEltwise
	KindFullyConnected
	KindIndexSelect
	KindLookupTable
	KindLRN
	KindMeanSubtract
	KindNormalize
	KindPermute
	KindPooling
	KindPriorBox
	KindRegionYolo
	KindReorder
	KindReshape
	KindROIPooling
	KindScale
	KindSimplerNMS
	KindSoftmax
	KindUpsampling
)

func (k Kind) String() string {
	names := [...]string{
		"input_layout", "data", "activation", "arg_extremum", "batch_norm",
		"concatenation", "convolution", "crop", "custom_gpu_primitive",
		"deconvolution", "eltwise", "fully_connected", "index_select",
		"lookup_table", "lrn", "mean_subtract", "normalize", "permute",
		"pooling", "prior_box", "region_yolo", "reorder", "reshape",
		"roi_pooling", "scale", "simpler_nms", "softmax", "upsampling",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// ActivationFunc is the closed set of pointwise activation functions usable
// standalone (KindActivation) or fused into convolution/fully_connected/
// eltwise.
type ActivationFunc int

const (
	ActivationNone ActivationFunc = iota
	ActivationReLU
	ActivationReLUNegativeSlope // parameterised family: leaky ReLU
	ActivationClamp
	ActivationLogistic
	ActivationTanh
)

// ActivationDesc is embeddable by any primitive kind that supports a fused
// activation epilogue (convolution, fully_connected, eltwise).
type ActivationDesc struct {
	Func   ActivationFunc
	Param0 float32
	Param1 float32
}

// EltwiseMode is the closed set of elementwise combination modes.
type EltwiseMode int

const (
	EltwiseSum EltwiseMode = iota
	EltwiseSub
	EltwiseMax
	EltwiseProd
)

// PoolMode selects max or average pooling.
type PoolMode int

const (
	PoolMax PoolMode = iota
	PoolAvg
)

// SoftmaxDim selects the axis group normalization is computed over.
type SoftmaxDim int

const (
	SoftmaxNormalizeX SoftmaxDim = iota
	SoftmaxNormalizeYX
	SoftmaxNormalizeFYX
	SoftmaxNormalizeBFYX
)

// ArgMode selects maximum- or minimum-seeking for KindArgExtremum.
type ArgMode int

const (
	ArgMax ArgMode = iota
	ArgMin
)

// UpsamplingMode selects the interpolation kernel.
type UpsamplingMode int

const (
	UpsamplingNearest UpsamplingMode = iota
	UpsamplingBilinear
)

// Spatial2D is a (y, x) pair, used for strides/kernel sizes/dilation/padding.
type Spatial2D struct{ Y, X int }

// Offset4D is a (b, f, y, x) pair, used for crop/convolution input_offset.
type Offset4D struct{ B, F, Y, X int }

// PrimitiveDescription is the immutable description of one node in a
// Topology: an id, a kind, the ids of primitives it depends on, kind-specific
// parameters, and an optional explicit output padding.
type PrimitiveDescription struct {
	ID     string
	Kind   Kind
	Inputs []string

	// Params holds exactly one of the kind-specific param structs below,
	// matching Kind. BuildPrimitive constructors set this for callers so the
	// field is rarely touched directly.
	Params interface{}

	// OutputPadding is an optional explicit padding override; nil means "no explicit padding requested".
	OutputPadding map[tensor.Axis]tensor.Pad
}

// --- kind-specific parameter structs -------------------------------------

type InputLayoutParams struct {
	Layout tensor.Layout
	Type   tensor.DataType
}

type DataParams struct {
	Layout tensor.Layout
	Type   tensor.DataType
	Bytes  []byte // constant contents, physical-size bytes
}

type ActivationParams struct {
	ActivationDesc
}

type ArgExtremumParams struct {
	Mode   ArgMode
	TopK   int
	Axis   tensor.Axis
}

type BatchNormParams struct {
	Epsilon float32
}

type ConcatenationParams struct {
	Axis tensor.Axis
}

type ConvolutionParams struct {
	Stride      Spatial2D
	Dilation    Spatial2D // (1,1) = no dilation
	InputOffset Offset4D  // negative Y/X = implicit zero padding
	Split       int       // grouped convolution factor; 1 = no grouping
	Activation  ActivationDesc
	WeightsID   string // primitive id of the Data node holding weights
	BiasID      string // primitive id of the Data node holding bias, or ""
}

type CropParams struct {
	ReferenceShape tensor.Dims
	Offset         Offset4D
}

type CustomGPUParams struct {
	Sources       []string
	EntryPoint    string
	Defines       map[string]string
	OutputLayout  tensor.Layout
}

type DeconvolutionParams struct {
	Stride      Spatial2D
	InputOffset Offset4D
	Split       int
	WeightsID   string
	BiasID      string
}

type EltwiseParams struct {
	Mode       EltwiseMode
	Activation ActivationDesc
}

type FullyConnectedParams struct {
	Activation ActivationDesc
	WeightsID  string
	BiasID     string
}

type IndexSelectParams struct {
	Axis    tensor.Axis
	IndexID string
}

type LookupTableParams struct {
	TableID string
}

type LRNParams struct {
	Size  int
	Alpha float32
	Beta  float32
	K     float32
}

type MeanSubtractParams struct {
	MeanID string
}

type NormalizeParams struct {
	AcrossSpatial bool
	ScaleID       string
	Epsilon       float32
}

type PermuteParams struct {
	Order [4]tensor.Axis
}

type PoolingParams struct {
	Mode   PoolMode
	Kernel Spatial2D
	Stride Spatial2D
	Pad    Spatial2D
}

type PriorBoxParams struct {
	ImageSize  Spatial2D
	MinSize    []float32
	MaxSize    []float32
	AspectRatio []float32
	Variance   [4]float32
	Flip       bool
	Clip       bool
}

type RegionYoloParams struct {
	Classes int
	Coords  int
	Num     int
	MaskSize int
	DoSoftmax bool
}

type ReorderParams struct {
	TargetLayout tensor.DataLayout
	TargetType   tensor.DataType
	MeanID       string // optional per-feature subtract/mean memory
	SubtractMean bool
}

type ReshapeParams struct {
	OutputShape tensor.Dims
}

type ROIPoolingParams struct {
	PooledHeight int
	PooledWidth  int
	SpatialScale float32
}

type ScaleParams struct {
	ScaleID string
	BiasID  string // "" = no bias
}

type SimplerNMSParams struct {
	PreNMSTopN  int
	PostNMSTopN int
	MinBoxSize  int
	IOUThreshold float32
}

type SoftmaxParams struct {
	Dimension SoftmaxDim
}

type UpsamplingParams struct {
	Mode   UpsamplingMode
	Factor int
}
