package primitivekind

import (
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindInputLayout, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			p := ctx.Desc.Params.(topology.InputLayoutParams)
			return tensor.Tensor{Layout: p.Layout, Type: p.Type}, nil
		},
	})
}
