package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindUpsampling, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.UpsamplingParams)
			if p.Factor <= 0 {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "upsampling requires a positive factor")
			}
			return tensor.New(in.Layout.Format, in.Type, in.Batch(), in.Feature(), in.Y()*p.Factor, in.X()*p.Factor), nil
		},
	})
}
