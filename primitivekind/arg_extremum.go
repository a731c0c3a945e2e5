package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// init registers KindArgExtremum, a single primitive unifying the separate
// arg_max/arg_min primitives of the original clDNN: ArgMode picks the
// direction, TopK picks the reduced extent.
func init() {
	register(topology.KindArgExtremum, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.ArgExtremumParams)
			if p.TopK <= 0 {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "arg_extremum requires a positive top_k")
			}
			dims := map[tensor.Axis]int{
				tensor.AxisBatch:   in.Batch(),
				tensor.AxisFeature: in.Feature(),
				tensor.AxisY:       in.Y(),
				tensor.AxisX:       in.X(),
			}
			if dims[p.Axis] < p.TopK {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "arg_extremum top_k exceeds the reduced axis extent")
			}
			dims[p.Axis] = p.TopK
			return tensor.New(in.Layout.Format, in.Type,
				dims[tensor.AxisBatch], dims[tensor.AxisFeature], dims[tensor.AxisY], dims[tensor.AxisX]), nil
		},
	})
}
