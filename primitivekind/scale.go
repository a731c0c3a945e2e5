package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindScale, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.ScaleParams)
			if _, err := ctx.ConstantTensor(p.ScaleID); err != nil {
				return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "scale requires a valid scale constant", err)
			}
			if p.BiasID != "" {
				if _, err := ctx.ConstantTensor(p.BiasID); err != nil {
					return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "scale bias references an invalid constant", err)
				}
			}
			return in, nil
		},
	})
}
