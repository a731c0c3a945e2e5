package primitivekind

import (
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// pointwise builds a CalcOutputLayout that passes the first input's layout
// and dtype straight through unchanged, the common shape for per-element
// operators (activation, batch_norm, lrn, mean_subtract, normalize, scale,
// lookup_table).
func pointwise() func(Context) (tensor.Tensor, error) {
	return func(ctx Context) (tensor.Tensor, error) {
		return ctx.InputTensor(0)
	}
}

func init() {
	register(topology.KindActivation, OpTable{
		CalcOutputLayout: pointwise(),
		CanBeOptimized: func(ctx Context, output tensor.Tensor) bool {
			p := ctx.Desc.Params.(topology.ActivationParams)
			return p.Func == topology.ActivationNone
		},
	})
}
