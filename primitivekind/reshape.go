package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindReshape, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.ReshapeParams)
			if tensor.LogicalSize(tensor.Layout{Dims: p.OutputShape}) != in.Layout.Dims.Size[tensor.AxisBatch]*in.Layout.Dims.Size[tensor.AxisFeature]*in.Layout.Dims.Size[tensor.AxisY]*in.Layout.Dims.Size[tensor.AxisX] {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "reshape output element count does not match input")
			}
			out := tensor.New(in.Layout.Format, in.Type,
				p.OutputShape.Size[tensor.AxisBatch], p.OutputShape.Size[tensor.AxisFeature],
				p.OutputShape.Size[tensor.AxisY], p.OutputShape.Size[tensor.AxisX])
			return out, nil
		},
		// A reshape on an input with no padding is a pure reinterpretation
		// of the same bytes.
		CanBeOptimized: func(ctx Context, output tensor.Tensor) bool {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return false
			}
			for a := tensor.Axis(0); a < 4; a++ {
				if in.Layout.Dims.Pad[a].Before != 0 || in.Layout.Dims.Pad[a].After != 0 {
					return false
				}
			}
			return true
		},
	})
}
