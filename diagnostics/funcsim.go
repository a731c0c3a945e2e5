// Package diagnostics implements structural checks and a pure-Go reference
// interpreter used to validate a Program's numeric behaviour independent of
// any device backend. Grounded on the
// offline checking tools this codebase already shipped and on
// original_source/src/gpu/*_cpu.cpp reference-kernel style: straightforward
// nested loops over logical indices, no blocking or vectorisation.
package diagnostics

import (
	"math"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// Args bundles the memories a reference kernel operates over: every
// resolved input, the output, and any constant side-inputs by role.
type Args struct {
	Inputs  []*tensor.Memory
	Output  *tensor.Memory
	Weights *tensor.Memory
	Bias    *tensor.Memory
}

// RefKernel is a pure function implementing one primitive family's numeric
// behaviour directly against f32 element access.
type RefKernel func(desc topology.PrimitiveDescription, args Args) error

var refKernels = map[topology.Kind]RefKernel{}

func registerRef(k topology.Kind, fn RefKernel) {
	refKernels[k] = fn
}

// Run executes the registered reference kernel for desc.Kind, or returns
// NotImplemented if no functional (value-level) simulation is registered
// for that kind — shape/compile-time handling is unaffected; this only
// gates runtime numeric execution through the pure-Go interpreter.
func Run(desc topology.PrimitiveDescription, args Args) error {
	fn, ok := refKernels[desc.Kind]
	if !ok {
		return cldnnerr.New(cldnnerr.NetworkNotImplemented, desc.ID,
			"no functional reference kernel registered for "+desc.Kind.String())
	}
	return fn(desc, args)
}

func forEach4D(t tensor.Tensor, fn func(b, f, y, x int)) {
	for b := 0; b < t.Batch(); b++ {
		for f := 0; f < t.Feature(); f++ {
			for y := 0; y < t.Y(); y++ {
				for x := 0; x < t.X(); x++ {
					fn(b, f, y, x)
				}
			}
		}
	}
}

func outputTensor(m *tensor.Memory) tensor.Tensor {
	return tensor.Tensor{Layout: m.Layout(), Type: m.DataType()}
}

func init() {
	registerRef(topology.KindEltwise, func(desc topology.PrimitiveDescription, args Args) error {
		p := desc.Params.(topology.EltwiseParams)
		out := outputTensor(args.Output)
		forEach4D(out, func(b, f, y, x int) {
			acc := tensor.ReadF32(args.Inputs[0], b, f, y, x)
			for i := 1; i < len(args.Inputs); i++ {
				v := tensor.ReadF32(args.Inputs[i], b, f, y, x)
				switch p.Mode {
				case topology.EltwiseSum:
					acc += v
				case topology.EltwiseSub:
					acc -= v
				case topology.EltwiseProd:
					acc *= v
				case topology.EltwiseMax:
					if v > acc {
						acc = v
					}
				}
			}
			tensor.WriteF32(args.Output, b, f, y, x, acc)
		})
		return nil
	})

	registerRef(topology.KindMeanSubtract, func(desc topology.PrimitiveDescription, args Args) error {
		in, mean := args.Inputs[0], args.Weights
		out := outputTensor(args.Output)
		forEach4D(out, func(b, f, y, x int) {
			v := tensor.ReadF32(in, b, f, y, x) - tensor.ReadF32(mean, 0, f, y, x)
			tensor.WriteF32(args.Output, b, f, y, x, v)
		})
		return nil
	})

	registerRef(topology.KindScale, func(desc topology.PrimitiveDescription, args Args) error {
		p := desc.Params.(topology.ScaleParams)
		in, scale, bias := args.Inputs[0], args.Weights, args.Bias
		out := outputTensor(args.Output)
		forEach4D(out, func(b, f, y, x int) {
			v := tensor.ReadF32(in, b, f, y, x) * tensor.ReadF32(scale, b, f, y, x)
			if p.BiasID != "" && bias != nil {
				v += tensor.ReadF32(bias, b, f, y, x)
			}
			tensor.WriteF32(args.Output, b, f, y, x, v)
		})
		return nil
	})

	registerRef(topology.KindCrop, func(desc topology.PrimitiveDescription, args Args) error {
		p := desc.Params.(topology.CropParams)
		in := args.Inputs[0]
		out := outputTensor(args.Output)
		forEach4D(out, func(b, f, y, x int) {
			v := tensor.ReadF32(in, b+p.Offset.B, f+p.Offset.F, y+p.Offset.Y, x+p.Offset.X)
			tensor.WriteF32(args.Output, b, f, y, x, v)
		})
		return nil
	})

	registerRef(topology.KindSoftmax, func(desc topology.PrimitiveDescription, args Args) error {
		return softmaxRef(desc.Params.(topology.SoftmaxParams), args)
	})

	registerRef(topology.KindActivation, func(desc topology.PrimitiveDescription, args Args) error {
		p := desc.Params.(topology.ActivationParams)
		in := args.Inputs[0]
		out := outputTensor(args.Output)
		forEach4D(out, func(b, f, y, x int) {
			v := tensor.ReadF32(in, b, f, y, x)
			tensor.WriteF32(args.Output, b, f, y, x, applyActivation(p.ActivationDesc, v))
		})
		return nil
	})
}

func applyActivation(a topology.ActivationDesc, v float32) float32 {
	switch a.Func {
	case topology.ActivationNone:
		return v
	case topology.ActivationReLU:
		if v < 0 {
			return 0
		}
		return v
	case topology.ActivationReLUNegativeSlope:
		if v < 0 {
			return v * a.Param0
		}
		return v
	case topology.ActivationClamp:
		if v < a.Param0 {
			return a.Param0
		}
		if v > a.Param1 {
			return a.Param1
		}
		return v
	default:
		return v
	}
}

// softmaxRef normalizes each group along the dimensions named by dim,
// grouping over (f,y,x), (y,x) or (x) for each fixed outer index, and
// treating SoftmaxNormalizeBFYX as one group spanning every batch index.
func softmaxRef(p topology.SoftmaxParams, args Args) error {
	in := args.Inputs[0]
	out := outputTensor(args.Output)

	// normalizeGroup normalizes one group across batch indices [b0, b1).
	normalizeGroup := func(b0, b1, fFixed, yFixed int) {
		each := func(fn func(b, f, y, x int)) {
			for b := b0; b < b1; b++ {
				iterGroup(p.Dimension, out, fFixed, yFixed, func(f, y, x int) { fn(b, f, y, x) })
			}
		}
		max := float32(math.Inf(-1))
		each(func(b, f, y, x int) {
			if v := tensor.ReadF32(in, b, f, y, x); v > max {
				max = v
			}
		})
		var sum float32
		each(func(b, f, y, x int) {
			sum += expf(tensor.ReadF32(in, b, f, y, x) - max)
		})
		each(func(b, f, y, x int) {
			v := expf(tensor.ReadF32(in, b, f, y, x)-max) / sum
			tensor.WriteF32(args.Output, b, f, y, x, v)
		})
	}

	if p.Dimension == topology.SoftmaxNormalizeBFYX {
		normalizeGroup(0, out.Batch(), -1, -1)
		return nil
	}
	for b := 0; b < out.Batch(); b++ {
		switch p.Dimension {
		case topology.SoftmaxNormalizeX:
			for f := 0; f < out.Feature(); f++ {
				for y := 0; y < out.Y(); y++ {
					normalizeGroup(b, b+1, f, y)
				}
			}
		case topology.SoftmaxNormalizeYX:
			for f := 0; f < out.Feature(); f++ {
				normalizeGroup(b, b+1, f, -1)
			}
		case topology.SoftmaxNormalizeFYX:
			normalizeGroup(b, b+1, -1, -1)
		}
	}
	return nil
}

// iterGroup visits every (f,y,x) in the normalization group named by dim,
// holding fFixed/yFixed constant when dim doesn't group over that axis
// (-1 means "grouped", i.e. iterate the full extent).
func iterGroup(dim topology.SoftmaxDim, t tensor.Tensor, fFixed, yFixed int, fn func(f, y, x int)) {
	fStart, fEnd := 0, t.Feature()
	if dim == topology.SoftmaxNormalizeX && fFixed >= 0 {
		fStart, fEnd = fFixed, fFixed+1
	}
	yStart, yEnd := 0, t.Y()
	if (dim == topology.SoftmaxNormalizeX || dim == topology.SoftmaxNormalizeYX) && yFixed >= 0 {
		yStart, yEnd = yFixed, yFixed+1
	}
	for f := fStart; f < fEnd; f++ {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < t.X(); x++ {
				fn(f, y, x)
			}
		}
	}
}

// expf wraps math.Exp with a float32 round-trip, matching the precision a
// single-precision kernel would compute at.
func expf(v float32) float32 {
	return float32(math.Exp(float64(v)))
}
