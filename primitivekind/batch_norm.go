package primitivekind

import "github.com/cldnngo/cldnn/topology"

func init() {
	register(topology.KindBatchNorm, OpTable{
		CalcOutputLayout: pointwise(),
	})
}
