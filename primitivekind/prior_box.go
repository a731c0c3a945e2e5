package primitivekind

import (
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func init() {
	register(topology.KindPriorBox, OpTable{
		// Output is the flat (1, 2, N*4, 1) prior-box list: two planes (box coordinates, variances), N priors
		// per feature-map cell times the feature map's cell count. Unit
		// aspect ratios are excluded from N since the per-min-size default
		// box already covers the 1:1 case.
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.PriorBoxParams)
			nonUnitRatios := 0
			for _, r := range p.AspectRatio {
				if r != 1 {
					nonUnitRatios++
				}
			}
			perRatio := 1
			if p.Flip {
				perRatio = 2
			}
			priorsPerCell := len(p.MinSize) + len(p.MaxSize) + len(p.MinSize)*nonUnitRatios*perRatio
			cells := in.Y() * in.X()
			n := priorsPerCell * cells
			return tensor.New(in.Layout.Format, tensor.F32, 1, 2, n*4, 1), nil
		},
	})
}
