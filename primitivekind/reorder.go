package primitivekind

import (
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindReorder, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.ReorderParams)
			out := tensor.Transform(in.Layout, p.TargetLayout)
			return tensor.Tensor{Layout: out, Type: p.TargetType}, nil
		},
		// A reorder to the same format and dtype, with no mean subtraction
		// requested, is the identity op.
		CanBeOptimized: func(ctx Context, output tensor.Tensor) bool {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return false
			}
			p := ctx.Desc.Params.(topology.ReorderParams)
			return !p.SubtractMean && in.Layout.Format == p.TargetLayout && in.Type == p.TargetType
		},
	})
}
