package primitivekind

import (
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindRegionYolo, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.RegionYoloParams)
			// Feature extent becomes num * (classes + coords + 1); the
			// spatial grid is kept as is, and DoSoftmax does not change
			// the output shape.
			features := p.Num * (p.Classes + p.Coords + 1)
			return tensor.New(in.Layout.Format, in.Type, in.Batch(), features, in.Y(), in.X()), nil
		},
	})
}
