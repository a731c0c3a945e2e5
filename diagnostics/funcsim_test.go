package diagnostics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cldnngo/cldnn/diagnostics"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func fillSequential(m *tensor.Memory, t tensor.Tensor, start float32) {
	v := start
	for b := 0; b < t.Batch(); b++ {
		for f := 0; f < t.Feature(); f++ {
			for y := 0; y < t.Y(); y++ {
				for x := 0; x < t.X(); x++ {
					tensor.WriteF32(m, b, f, y, x, v)
					v++
				}
			}
		}
	}
}

var _ = Describe("Eltwise reference kernel", func() {
	It("sums two tensors elementwise", func() {
		shape := tensor.New(tensor.Bfyx, tensor.F32, 1, 1, 2, 2)
		a := tensor.Allocate(shape.Layout, tensor.F32)
		b := tensor.Allocate(shape.Layout, tensor.F32)
		out := tensor.Allocate(shape.Layout, tensor.F32)
		fillSequential(a, shape, 1)
		fillSequential(b, shape, 10)

		desc := topology.PrimitiveDescription{ID: "e", Kind: topology.KindEltwise,
			Params: topology.EltwiseParams{Mode: topology.EltwiseSum}}
		Expect(diagnostics.Run(desc, diagnostics.Args{
			Inputs: []*tensor.Memory{a, b}, Output: out,
		})).To(Succeed())

		Expect(tensor.ReadF32(out, 0, 0, 0, 0)).To(BeNumerically("~", 11, 1e-6))
		Expect(tensor.ReadF32(out, 0, 0, 1, 1)).To(BeNumerically("~", 17, 1e-6))
	})

	It("max mode is idempotent", func() {
		shape := tensor.New(tensor.Bfyx, tensor.F32, 1, 1, 1, 1)
		a := tensor.Allocate(shape.Layout, tensor.F32)
		out := tensor.Allocate(shape.Layout, tensor.F32)
		tensor.WriteF32(a, 0, 0, 0, 0, 3.5)

		desc := topology.PrimitiveDescription{ID: "e", Kind: topology.KindEltwise,
			Params: topology.EltwiseParams{Mode: topology.EltwiseMax}}
		Expect(diagnostics.Run(desc, diagnostics.Args{
			Inputs: []*tensor.Memory{a, a}, Output: out,
		})).To(Succeed())
		Expect(tensor.ReadF32(out, 0, 0, 0, 0)).To(BeNumerically("~", 3.5, 1e-6))
	})
})

var _ = Describe("Softmax reference kernel", func() {
	It("matches scenario 2's normalize_fyx 10-element vector", func() {
		shape := tensor.New(tensor.Bfyx, tensor.F32, 1, 1, 1, 10)
		in := tensor.Allocate(shape.Layout, tensor.F32)
		out := tensor.Allocate(shape.Layout, tensor.F32)
		values := []float32{2, 2, 2, 3, 5, 4, 3, 2, 2, 2}
		for i, v := range values {
			tensor.WriteF32(in, 0, 0, 0, i, v)
		}

		desc := topology.PrimitiveDescription{ID: "s", Kind: topology.KindSoftmax,
			Params: topology.SoftmaxParams{Dimension: topology.SoftmaxNormalizeFYX}}
		Expect(diagnostics.Run(desc, diagnostics.Args{Inputs: []*tensor.Memory{in}, Output: out})).To(Succeed())

		expected := []float32{0.025700, 0.025700, 0.025700, 0.069859, 0.516190, 0.189896, 0.069859, 0.025700, 0.025700, 0.025700}
		var sum float32
		for i, exp := range expected {
			got := tensor.ReadF32(out, 0, 0, 0, i)
			Expect(got).To(BeNumerically("~", exp, 1e-5))
			sum += got
		}
		Expect(sum).To(BeNumerically("~", 1.0, 1e-6))
	})
})

var _ = Describe("Crop reference kernel", func() {
	It("reads from the offset region of the input", func() {
		inShape := tensor.New(tensor.Bfyx, tensor.F32, 2, 3, 2, 2)
		in := tensor.Allocate(inShape.Layout, tensor.F32)
		fillSequential(in, inShape, 0)

		outShape := tensor.New(tensor.Bfyx, tensor.F32, 1, 2, 1, 2)
		out := tensor.Allocate(outShape.Layout, tensor.F32)

		desc := topology.PrimitiveDescription{ID: "c", Kind: topology.KindCrop,
			Params: topology.CropParams{Offset: topology.Offset4D{B: 1, F: 0, Y: 1, X: 0}}}
		Expect(diagnostics.Run(desc, diagnostics.Args{Inputs: []*tensor.Memory{in}, Output: out})).To(Succeed())

		for f := 0; f < 2; f++ {
			for x := 0; x < 2; x++ {
				Expect(tensor.ReadF32(out, 0, f, 0, x)).To(Equal(tensor.ReadF32(in, 1, f, 1, x)))
			}
		}
	})
})

var _ = Describe("Scale reference kernel", func() {
	It("matches scenario 5's broadcast scale+bias", func() {
		shape := tensor.New(tensor.Bfyx, tensor.F32, 2, 1, 1, 3)
		in := tensor.Allocate(shape.Layout, tensor.F32)
		scale := tensor.Allocate(shape.Layout, tensor.F32)
		bias := tensor.Allocate(shape.Layout, tensor.F32)
		out := tensor.Allocate(shape.Layout, tensor.F32)

		inputVals := []float32{1, 2, 3, 4, 5, 6}
		scaleVals := []float32{3.1, 0.2, 0.17, 10, -3, 1}
		biasVals := []float32{-0.1, 3.2, 7, 0, 1, -1}
		i := 0
		for b := 0; b < 2; b++ {
			for x := 0; x < 3; x++ {
				tensor.WriteF32(in, b, 0, 0, x, inputVals[i])
				tensor.WriteF32(scale, b, 0, 0, x, scaleVals[i])
				tensor.WriteF32(bias, b, 0, 0, x, biasVals[i])
				i++
			}
		}

		desc := topology.PrimitiveDescription{ID: "sc", Kind: topology.KindScale,
			Params: topology.ScaleParams{ScaleID: "scale", BiasID: "bias"}}
		Expect(diagnostics.Run(desc, diagnostics.Args{
			Inputs: []*tensor.Memory{in}, Output: out, Weights: scale, Bias: bias,
		})).To(Succeed())

		i = 0
		for b := 0; b < 2; b++ {
			for x := 0; x < 3; x++ {
				expected := inputVals[i]*scaleVals[i] + biasVals[i]
				Expect(tensor.ReadF32(out, b, 0, 0, x)).To(BeNumerically("~", expected, 1e-4))
				i++
			}
		}
	})
})
