package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindPooling, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.PoolingParams)
			stride := p.Stride
			if stride.Y == 0 {
				stride.Y = 1
			}
			if stride.X == 0 {
				stride.X = 1
			}
			outY := convOutputExtent(in.Y(), p.Kernel.Y, stride.Y, p.Pad.Y, 1)
			outX := convOutputExtent(in.X(), p.Kernel.X, stride.X, p.Pad.X, 1)
			if outY <= 0 || outX <= 0 {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "pooling parameters produce a non-positive output extent")
			}
			return tensor.New(in.Layout.Format, in.Type, in.Batch(), in.Feature(), outY, outX), nil
		},
	})
}
