package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindROIPooling, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			rois, err := ctx.InputTensor(1)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.ROIPoolingParams)
			if p.PooledHeight <= 0 || p.PooledWidth <= 0 {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "roi_pooling requires positive pooled dimensions")
			}
			numROIs := rois.Batch()
			return tensor.New(in.Layout.Format, in.Type, numROIs, in.Feature(), p.PooledHeight, p.PooledWidth), nil
		},
	})
}
