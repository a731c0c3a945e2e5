package primitivekind

import "github.com/cldnngo/cldnn/topology"

func init() {
	register(topology.KindSoftmax, OpTable{
		CalcOutputLayout: pointwise(),
	})
}
