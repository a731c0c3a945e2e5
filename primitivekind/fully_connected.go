package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindFullyConnected, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.FullyConnectedParams)
			weights, err := ctx.ConstantTensor(p.WeightsID)
			if err != nil {
				return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "fully_connected requires valid weights", err)
			}
			if p.BiasID != "" {
				if _, err := ctx.ConstantTensor(p.BiasID); err != nil {
					return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "fully_connected bias references an invalid constant", err)
				}
			}
			// Weights are (OFM, IFM, 1, 1); output collapses all spatial
			// extent into a single (b, ofm, 1, 1) tensor.
			return tensor.New(in.Layout.Format, in.Type, in.Batch(), weights.Batch(), 1, 1), nil
		},
	})
}
