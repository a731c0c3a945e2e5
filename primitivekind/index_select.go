package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindIndexSelect, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.IndexSelectParams)
			idx, err := ctx.ConstantTensor(p.IndexID)
			if err != nil {
				return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "index_select requires a valid index constant", err)
			}
			dims := map[tensor.Axis]int{
				tensor.AxisBatch:   in.Batch(),
				tensor.AxisFeature: in.Feature(),
				tensor.AxisY:       in.Y(),
				tensor.AxisX:       in.X(),
			}
			dims[p.Axis] = tensor.LogicalSize(idx.Layout)
			return tensor.New(in.Layout.Format, in.Type,
				dims[tensor.AxisBatch], dims[tensor.AxisFeature], dims[tensor.AxisY], dims[tensor.AxisX]), nil
		},
	})
}
