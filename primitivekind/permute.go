package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindPermute, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.PermuteParams)
			seen := map[tensor.Axis]bool{}
			dims := [4]int{}
			for i, ax := range p.Order {
				if seen[ax] {
					return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "permute order repeats an axis")
				}
				seen[ax] = true
				dims[i] = dimOf(in, ax)
			}
			return tensor.New(in.Layout.Format, in.Type, dims[0], dims[1], dims[2], dims[3]), nil
		},
	})
}
