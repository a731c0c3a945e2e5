package primitivekind

import "github.com/cldnngo/cldnn/topology"

func init() {
	register(topology.KindLRN, OpTable{
		CalcOutputLayout: pointwise(),
	})
}
