package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func dimOf(t tensor.Tensor, a tensor.Axis) int {
	switch a {
	case tensor.AxisBatch:
		return t.Batch()
	case tensor.AxisFeature:
		return t.Feature()
	case tensor.AxisY:
		return t.Y()
	case tensor.AxisX:
		return t.X()
	default:
		return 0
	}
}

func init() {
	register(topology.KindConcatenation, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			if len(ctx.Inputs) == 0 {
				return tensor.Tensor{}, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "concatenation requires at least one input")
			}
			p := ctx.Desc.Params.(topology.ConcatenationParams)
			first := ctx.Inputs[0]
			dims := map[tensor.Axis]int{
				tensor.AxisBatch:   first.Batch(),
				tensor.AxisFeature: first.Feature(),
				tensor.AxisY:       first.Y(),
				tensor.AxisX:       first.X(),
			}
			dims[p.Axis] = 0

			for _, in := range ctx.Inputs {
				for ax := range dims {
					d := dimOf(in, ax)
					if ax == p.Axis {
						dims[ax] += d
						continue
					}
					if d != dims[ax] {
						return tensor.Tensor{}, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "concatenation inputs disagree on a non-concat axis")
					}
				}
			}
			return tensor.New(first.Layout.Format, first.Type,
				dims[tensor.AxisBatch], dims[tensor.AxisFeature], dims[tensor.AxisY], dims[tensor.AxisX]), nil
		},
		// Concatenation along the outermost (batch) axis can place each
		// input directly into its slice of the shared output buffer instead
		// of copying.
		CanBeOptimized: func(ctx Context, output tensor.Tensor) bool {
			p := ctx.Desc.Params.(topology.ConcatenationParams)
			return p.Axis == tensor.AxisBatch
		},
	})
}
