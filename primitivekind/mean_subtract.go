package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindMeanSubtract, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.MeanSubtractParams)
			if _, err := ctx.ConstantTensor(p.MeanID); err != nil {
				return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "mean_subtract requires a valid mean constant", err)
			}
			return in, nil
		},
	})
}
