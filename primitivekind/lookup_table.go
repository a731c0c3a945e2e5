package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindLookupTable, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.LookupTableParams)
			if _, err := ctx.ConstantTensor(p.TableID); err != nil {
				return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "lookup_table requires a valid table constant", err)
			}
			return in, nil
		},
	})
}
