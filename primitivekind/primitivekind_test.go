package primitivekind_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cldnngo/cldnn/primitivekind"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func mustTable(k topology.Kind) primitivekind.OpTable {
	t, ok := primitivekind.Lookup(k)
	ExpectWithOffset(1, ok).To(BeTrue(), "no OpTable registered for %s", k)
	return t
}

var _ = Describe("Eltwise", func() {
	It("rejects mismatched input shapes", func() {
		table := mustTable(topology.KindEltwise)
		top := topology.New()
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "e", Kind: topology.KindEltwise,
				Params: topology.EltwiseParams{Mode: topology.EltwiseSum}},
			Inputs: []tensor.Tensor{
				tensor.New(tensor.Yxfb, tensor.F32, 2, 2, 2, 2),
				tensor.New(tensor.Yxfb, tensor.F32, 2, 2, 2, 3),
			},
			Topology: top,
		}
		_, err := table.CalcOutputLayout(ctx)
		Expect(err).To(HaveOccurred())
	})

	It("preserves shape for the 2x2x2x2 sum scenario", func() {
		table := mustTable(topology.KindEltwise)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "e", Kind: topology.KindEltwise,
				Params: topology.EltwiseParams{Mode: topology.EltwiseSum}},
			Inputs: []tensor.Tensor{
				tensor.New(tensor.Yxfb, tensor.F32, 2, 2, 2, 2),
				tensor.New(tensor.Yxfb, tensor.F32, 2, 2, 2, 2),
			},
			Topology: topology.New(),
		}
		out, err := table.CalcOutputLayout(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Batch()).To(Equal(2))
		Expect(out.Feature()).To(Equal(2))
		Expect(out.Y()).To(Equal(2))
		Expect(out.X()).To(Equal(2))
	})
})

var _ = Describe("Softmax", func() {
	It("is pointwise over the input shape", func() {
		table := mustTable(topology.KindSoftmax)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "s", Kind: topology.KindSoftmax,
				Params: topology.SoftmaxParams{Dimension: topology.SoftmaxNormalizeFYX}},
			Inputs:   []tensor.Tensor{tensor.New(tensor.Bfyx, tensor.F32, 1, 1, 1, 10)},
			Topology: topology.New(),
		}
		out, err := table.CalcOutputLayout(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.X()).To(Equal(10))
	})
})

func withDataConstant(top *topology.Topology, id string, shape tensor.Tensor) *topology.Topology {
	Expect(top.Add(topology.PrimitiveDescription{
		ID: id, Kind: topology.KindData,
		Params: topology.DataParams{Layout: shape.Layout, Type: shape.Type},
	})).To(Succeed())
	return top
}

var _ = Describe("MeanSubtract", func() {
	It("requires a resolvable mean constant and preserves input shape", func() {
		top := topology.New()
		withDataConstant(top, "mean", tensor.New(tensor.Bfyx, tensor.F32, 1, 2, 2, 2))
		table := mustTable(topology.KindMeanSubtract)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "ms", Kind: topology.KindMeanSubtract,
				Params: topology.MeanSubtractParams{MeanID: "mean"}},
			Inputs:   []tensor.Tensor{tensor.New(tensor.Yxfb, tensor.F32, 2, 2, 2, 2)},
			Topology: top,
		}
		out, err := table.CalcOutputLayout(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Batch()).To(Equal(2))
		Expect(out.Feature()).To(Equal(2))
	})

	It("rejects an unresolvable mean reference", func() {
		table := mustTable(topology.KindMeanSubtract)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "ms", Kind: topology.KindMeanSubtract,
				Params: topology.MeanSubtractParams{MeanID: "missing"}},
			Inputs:   []tensor.Tensor{tensor.New(tensor.Yxfb, tensor.F32, 2, 2, 2, 2)},
			Topology: topology.New(),
		}
		_, err := table.CalcOutputLayout(ctx)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Crop", func() {
	It("computes the cropped output shape for scenario 4", func() {
		table := mustTable(topology.KindCrop)
		input := tensor.New(tensor.Yxfb, tensor.F32, 2, 2, 2, 3)
		refShape := tensor.New(tensor.Yxfb, tensor.F32, 1, 2, 1, 2).Layout.Dims
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "c", Kind: topology.KindCrop,
				Params: topology.CropParams{
					ReferenceShape: refShape,
					Offset:         topology.Offset4D{B: 1, F: 0, Y: 1, X: 1},
				}},
			Inputs:   []tensor.Tensor{input},
			Topology: topology.New(),
		}
		out, err := table.CalcOutputLayout(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Batch()).To(Equal(1))
		Expect(out.Feature()).To(Equal(2))
		Expect(out.Y()).To(Equal(1))
		Expect(out.X()).To(Equal(2))
	})
})

var _ = Describe("Scale", func() {
	It("broadcasts elementwise and preserves the input shape for scenario 5", func() {
		top := topology.New()
		withDataConstant(top, "scale", tensor.New(tensor.Bfyx, tensor.F32, 2, 1, 1, 3))
		withDataConstant(top, "bias", tensor.New(tensor.Bfyx, tensor.F32, 2, 1, 1, 3))
		table := mustTable(topology.KindScale)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "sc", Kind: topology.KindScale,
				Params: topology.ScaleParams{ScaleID: "scale", BiasID: "bias"}},
			Inputs:   []tensor.Tensor{tensor.New(tensor.Bfyx, tensor.F32, 2, 1, 1, 3)},
			Topology: top,
		}
		out, err := table.CalcOutputLayout(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Batch()).To(Equal(2))
		Expect(out.X()).To(Equal(3))
	})
})

var _ = Describe("PriorBox", func() {
	It("matches scenario 6's (1,2,800,1) output", func() {
		table := mustTable(topology.KindPriorBox)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "pb", Kind: topology.KindPriorBox,
				Params: topology.PriorBoxParams{
					ImageSize:   topology.Spatial2D{Y: 100, X: 100},
					MinSize:     []float32{4},
					MaxSize:     []float32{9},
					AspectRatio: []float32{1},
				}},
			Inputs:   []tensor.Tensor{tensor.New(tensor.Bfyx, tensor.F32, 10, 10, 10, 10)},
			Topology: topology.New(),
		}
		out, err := table.CalcOutputLayout(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Batch()).To(Equal(1))
		Expect(out.Feature()).To(Equal(2))
		Expect(out.Y()).To(Equal(800))
		Expect(out.X()).To(Equal(1))
	})
})

var _ = Describe("Convolution", func() {
	It("computes output extent with the standard formula", func() {
		top := topology.New()
		withDataConstant(top, "w", tensor.New(tensor.Bfyx, tensor.F32, 8, 3, 3, 3))
		table := mustTable(topology.KindConvolution)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "conv", Kind: topology.KindConvolution,
				Params: topology.ConvolutionParams{
					Stride:    topology.Spatial2D{Y: 1, X: 1},
					Dilation:  topology.Spatial2D{Y: 1, X: 1},
					WeightsID: "w",
				}},
			Inputs:   []tensor.Tensor{tensor.New(tensor.Bfyx, tensor.F32, 1, 3, 10, 10)},
			Topology: top,
		}
		out, err := table.CalcOutputLayout(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Feature()).To(Equal(8))
		Expect(out.Y()).To(Equal(8))
		Expect(out.X()).To(Equal(8))
	})
})

var _ = Describe("Reshape", func() {
	It("rejects an element-count mismatch", func() {
		table := mustTable(topology.KindReshape)
		ctx := primitivekind.Context{
			Desc: topology.PrimitiveDescription{ID: "r", Kind: topology.KindReshape,
				Params: topology.ReshapeParams{OutputShape: tensor.New(tensor.Bfyx, tensor.F32, 1, 1, 1, 5).Layout.Dims}},
			Inputs:   []tensor.Tensor{tensor.New(tensor.Bfyx, tensor.F32, 1, 1, 2, 2)},
			Topology: topology.New(),
		}
		_, err := table.CalcOutputLayout(ctx)
		Expect(err).To(HaveOccurred())
	})
})
