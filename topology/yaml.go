package topology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
)

// yamlDoc is the on-disk shape of a topology file: a flat list of primitive
// entries, each naming its kind and a handful of kind-specific scalar
// fields. This intentionally only covers the common subset of parameters
// (no weights bytes, no custom kernel sources) — it is meant for quick
// benchmark/sample topologies (see cmd/cldnn-bench), not full serialization
// of an arbitrary Topology. Grounded on core/program.go's
// YAMLCoreProgram/YAMLEntry tagging style.
type yamlDoc struct {
	Primitives []yamlPrimitive `yaml:"primitives"`
}

type yamlPrimitive struct {
	ID     string   `yaml:"id"`
	Kind   string   `yaml:"kind"`
	Inputs []string `yaml:"inputs"`

	// shape, for input_layout/data
	Batch, Feature, Y, X int
	Format               string `yaml:"format"`
	DType                string `yaml:"dtype"`

	// eltwise
	Mode string `yaml:"mode"`

	// softmax
	Dimension string `yaml:"dimension"`

	// convolution / pooling
	StrideY   int    `yaml:"stride_y"`
	StrideX   int    `yaml:"stride_x"`
	KernelY   int    `yaml:"kernel_y"`
	KernelX   int    `yaml:"kernel_x"`
	PadY      int    `yaml:"pad_y"`
	PadX      int    `yaml:"pad_x"`
	WeightsID string `yaml:"weights_id"`
	BiasID    string `yaml:"bias_id"`

	// crop
	RefB, RefF, RefY, RefX int
	OffB, OffF, OffY, OffX int

	// activation
	Activation string `yaml:"activation"`
}

func parseDataLayout(s string) (tensor.DataLayout, error) {
	switch s {
	case "", "bfyx":
		return tensor.Bfyx, nil
	case "yxfb":
		return tensor.Yxfb, nil
	case "byxf":
		return tensor.Byxf, nil
	case "fyxb":
		return tensor.Fyxb, nil
	case "bf":
		return tensor.Bf, nil
	case "fb":
		return tensor.Fb, nil
	default:
		return 0, fmt.Errorf("unknown data layout %q", s)
	}
}

func parseDataType(s string) (tensor.DataType, error) {
	switch s {
	case "", "f32":
		return tensor.F32, nil
	case "f16":
		return tensor.F16, nil
	case "f64":
		return tensor.F64, nil
	case "i8":
		return tensor.I8, nil
	case "i16":
		return tensor.I16, nil
	case "i32":
		return tensor.I32, nil
	case "i64":
		return tensor.I64, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", s)
	}
}

func parseEltwiseMode(s string) (EltwiseMode, error) {
	switch s {
	case "", "sum":
		return EltwiseSum, nil
	case "sub":
		return EltwiseSub, nil
	case "max":
		return EltwiseMax, nil
	case "prod":
		return EltwiseProd, nil
	default:
		return 0, fmt.Errorf("unknown eltwise mode %q", s)
	}
}

func parseSoftmaxDim(s string) (SoftmaxDim, error) {
	switch s {
	case "", "normalize_fyx":
		return SoftmaxNormalizeFYX, nil
	case "normalize_x":
		return SoftmaxNormalizeX, nil
	case "normalize_yx":
		return SoftmaxNormalizeYX, nil
	case "normalize_bfyx":
		return SoftmaxNormalizeBFYX, nil
	default:
		return 0, fmt.Errorf("unknown softmax dimension %q", s)
	}
}

func parseActivation(s string) ActivationFunc {
	switch s {
	case "relu":
		return ActivationReLU
	case "logistic":
		return ActivationLogistic
	case "tanh":
		return ActivationTanh
	case "clamp":
		return ActivationClamp
	default:
		return ActivationNone
	}
}

// toDescription converts one yamlPrimitive into a PrimitiveDescription,
// dispatching on Kind the way core/program.go's LoadProgramFileFromYAML
// dispatches on YAMLEntry.Type.
func (p yamlPrimitive) toDescription() (PrimitiveDescription, error) {
	desc := PrimitiveDescription{ID: p.ID, Inputs: p.Inputs}

	format, err := parseDataLayout(p.Format)
	if err != nil {
		return desc, err
	}
	dtype, err := parseDataType(p.DType)
	if err != nil {
		return desc, err
	}

	switch p.Kind {
	case "input_layout":
		desc.Kind = KindInputLayout
		desc.Params = InputLayoutParams{
			Layout: tensor.NewSimpleLayout(format, p.Batch, p.Feature, p.Y, p.X),
			Type:   dtype,
		}
	case "data":
		desc.Kind = KindData
		layout := tensor.NewSimpleLayout(format, p.Batch, p.Feature, p.Y, p.X)
		desc.Params = DataParams{
			Layout: layout,
			Type:   dtype,
			Bytes:  make([]byte, tensor.PhysicalSize(layout)*dtype.ElementSize()),
		}
	case "eltwise":
		mode, err := parseEltwiseMode(p.Mode)
		if err != nil {
			return desc, err
		}
		desc.Kind = KindEltwise
		desc.Params = EltwiseParams{Mode: mode}
	case "softmax":
		dim, err := parseSoftmaxDim(p.Dimension)
		if err != nil {
			return desc, err
		}
		desc.Kind = KindSoftmax
		desc.Params = SoftmaxParams{Dimension: dim}
	case "activation":
		desc.Kind = KindActivation
		desc.Params = ActivationParams{ActivationDesc{Func: parseActivation(p.Activation)}}
	case "convolution":
		desc.Kind = KindConvolution
		desc.Params = ConvolutionParams{
			Stride:    Spatial2D{Y: max1(p.StrideY), X: max1(p.StrideX)},
			Dilation:  Spatial2D{Y: 1, X: 1},
			WeightsID: p.WeightsID,
			BiasID:    p.BiasID,
			Split:     1,
		}
	case "pooling":
		desc.Kind = KindPooling
		desc.Params = PoolingParams{
			Mode:   PoolMax,
			Kernel: Spatial2D{Y: p.KernelY, X: p.KernelX},
			Stride: Spatial2D{Y: max1(p.StrideY), X: max1(p.StrideX)},
			Pad:    Spatial2D{Y: p.PadY, X: p.PadX},
		}
	case "crop":
		desc.Kind = KindCrop
		desc.Params = CropParams{
			ReferenceShape: simpleDims(p.RefB, p.RefF, p.RefY, p.RefX),
			Offset:         Offset4D{B: p.OffB, F: p.OffF, Y: p.OffY, X: p.OffX},
		}
	case "reshape":
		desc.Kind = KindReshape
		desc.Params = ReshapeParams{OutputShape: simpleDims(p.Batch, p.Feature, p.Y, p.X)}
	default:
		return desc, fmt.Errorf("unsupported topology-file primitive kind %q", p.Kind)
	}
	return desc, nil
}

func max1(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}

func simpleDims(b, f, y, x int) tensor.Dims {
	l := tensor.NewSimpleLayout(tensor.Bfyx, b, f, y, x)
	return l.Dims
}

// LoadYAML loads a topology-file (see yamlDoc) from path and converts it into
// a Topology. Grounded on core/program.go's LoadProgramFileFromYAML.
func LoadYAML(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cldnnerr.Wrap(cldnnerr.InvalidArgument, "", "reading topology file", err)
	}

	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, cldnnerr.Wrap(cldnnerr.InvalidArgument, "", "parsing topology YAML", err)
	}

	top := New()
	for _, p := range doc.Primitives {
		desc, err := p.toDescription()
		if err != nil {
			return nil, cldnnerr.Wrap(cldnnerr.InvalidArgument, p.ID, "converting topology-file entry", err)
		}
		if err := top.Add(desc); err != nil {
			return nil, err
		}
	}
	if err := top.Validate(); err != nil {
		return nil, err
	}
	return top, nil
}
