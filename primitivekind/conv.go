package primitivekind

import (
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// convOutputExtent computes one spatial output extent from clDNN's standard
// convolution/pooling formula:
//
//	out = floor((in + 2*pad - ((kernel-1)*dilation + 1)) / stride) + 1
func convOutputExtent(in, kernel, stride, pad, dilation int) int {
	effectiveKernel := (kernel-1)*dilation + 1
	return (in+2*pad-effectiveKernel)/stride + 1
}

func init() {
	register(topology.KindConvolution, OpTable{
		CalcOutputLayout: func(ctx Context) (tensor.Tensor, error) {
			in, err := ctx.InputTensor(0)
			if err != nil {
				return in, err
			}
			p := ctx.Desc.Params.(topology.ConvolutionParams)
			weights, err := ctx.ConstantTensor(p.WeightsID)
			if err != nil {
				return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "convolution requires valid weights", err)
			}
			if p.BiasID != "" {
				if _, err := ctx.ConstantTensor(p.BiasID); err != nil {
					return in, cldnnerr.Wrap(cldnnerr.InvalidArgument, ctx.Desc.ID, "convolution bias references an invalid constant", err)
				}
			}
			stride, dilation := p.Stride, p.Dilation
			if stride.Y == 0 {
				stride.Y = 1
			}
			if stride.X == 0 {
				stride.X = 1
			}
			if dilation.Y == 0 {
				dilation.Y = 1
			}
			if dilation.X == 0 {
				dilation.X = 1
			}
			// Weights are stored bfyx-like: feature-count(OFM) in batch,
			// kernel extent in y/x (clDNN's weights_layout convention).
			ofm := weights.Batch()
			kernelY, kernelX := weights.Y(), weights.X()

			outY := convOutputExtent(in.Y(), kernelY, stride.Y, -p.InputOffset.Y, dilation.Y)
			outX := convOutputExtent(in.X(), kernelX, stride.X, -p.InputOffset.X, dilation.X)
			if outY <= 0 || outX <= 0 {
				return in, cldnnerr.New(cldnnerr.InvalidArgument, ctx.Desc.ID, "convolution parameters produce a non-positive output extent")
			}
			return tensor.New(in.Layout.Format, in.Type, in.Batch(), ofm, outY, outX), nil
		},
	})
}
