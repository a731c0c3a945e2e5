package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindCrop, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.CropParams)
			ref := p.ReferenceShape
			if ref.Size[tensor.AxisBatch] > in.Batch() || ref.Size[tensor.AxisFeature] > in.Feature() ||
				ref.Size[tensor.AxisY] > in.Y() || ref.Size[tensor.AxisX] > in.X() {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "crop reference shape exceeds input extent")
			}
			return tensor.New(in.Layout.Format, in.Type,
				ref.Size[tensor.AxisBatch], ref.Size[tensor.AxisFeature],
				ref.Size[tensor.AxisY], ref.Size[tensor.AxisX]), nil
		},
		// A crop whose reference shape matches the input exactly and whose
		// offset is all-zero is the identity op: no bytes move, only the
		// view changes.
		CanBeOptimized: func(ctx Context, output tensor.Tensor) bool {
			p := ctx.Desc.Params.(topology.CropParams)
			in, err := ctx.InputTensor(0)
			if err != nil {
				return false
			}
			zeroOffset := p.Offset == topology.Offset4D{}
			return zeroOffset && sameShape4D(in, output)
		},
	})
}
