package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// deconvOutputExtent inverts convOutputExtent: the transposed-convolution
// output grows with stride instead of shrinking.
func deconvOutputExtent(in, kernel, stride, pad int) int {
	return (in-1)*stride + kernel - 2*pad
}

func init() {
	register(topology.KindDeconvolution, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.DeconvolutionParams)
			weights, err := ctx.ConstantTensor(p.WeightsID)
			if err != nil {
				return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "deconvolution requires valid weights", err)
			}
			if p.BiasID != "" {
				if _, err := ctx.ConstantTensor(p.BiasID); err != nil {
					return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "deconvolution bias references an invalid constant", err)
				}
			}
			stride := p.Stride
			if stride.Y == 0 {
				stride.Y = 1
			}
			if stride.X == 0 {
				stride.X = 1
			}
			ofm := weights.Feature()
			kernelY, kernelX := weights.Y(), weights.X()

			outY := deconvOutputExtent(in.Y(), kernelY, stride.Y, p.InputOffset.Y)
			outX := deconvOutputExtent(in.X(), kernelX, stride.X, p.InputOffset.X)
			if outY <= 0 || outX <= 0 {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "deconvolution parameters produce a non-positive output extent")
			}
			return tensor.New(in.Layout.Format, in.Type, in.Batch(), ofm, outY, outX), nil
		},
	})
}
