package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindSimplerNMS, OpTable{
		// Output is a fixed (post_nms_top_n, 5, 1, 1) proposal list: one
		// row per surviving region (batch index + box coordinates).
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.SimplerNMSParams)
			if p.PostNMSTopN <= 0 {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "simpler_nms requires a positive post_nms_topn")
			}
			return tensor.New(in.Layout.Format, tensor.F32, p.PostNMSTopN, 5, 1, 1), nil
		},
	})
}
