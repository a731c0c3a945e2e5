package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindCustomGPU, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			p := ctx.Desc.Params.(topology.CustomGPUParams)
			if len(p.Sources) == 0 || p.EntryPoint == "" {
				return tensor.Tensor{}, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "custom_gpu_primitive requires source and an entry point")
			}
			return tensor.Tensor{Layout: p.OutputLayout}, nil
		},
	})
}
