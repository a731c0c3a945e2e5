package primitivekind

import (
	"fmt"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindEltwise, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			first, err := ctx.InputTensor(0)
			if err != nil {
				return first, err
			}
			for i := 1; i < len(ctx.Inputs); i++ {
				other, err := ctx.InputTensor(i)
				if err != nil {
					return first, err
				}
				if !sameShape4D(first, other) {
					return first, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID,
						fmt.Sprintf("eltwise inputs 0 and %d have mismatched shapes", i))
				}
			}
			return first, nil
		},
	})
}
