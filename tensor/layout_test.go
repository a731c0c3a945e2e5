package tensor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cldnngo/cldnn/tensor"
)

var _ = Describe("Layout", func() {
	It("keeps every logical index within physical size (shape conservation)", func() {
		for _, format := range []tensor.DataLayout{tensor.Bfyx, tensor.Yxfb, tensor.Byxf, tensor.Fyxb} {
			l := tensor.NewSimpleLayout(format, 2, 3, 4, 5)
			phys := tensor.PhysicalSize(l)
			for b := 0; b < 2; b++ {
				for f := 0; f < 3; f++ {
					for y := 0; y < 4; y++ {
						for x := 0; x < 5; x++ {
							Expect(tensor.ElementOffset(l, b, f, y, x)).To(BeNumerically("<", phys))
						}
					}
				}
			}
		}
	})

	It("round-trips bfyx -> yxfb -> bfyx to the identity shape", func() {
		l1 := tensor.NewSimpleLayout(tensor.Bfyx, 2, 3, 4, 5)
		l2 := tensor.Transform(l1, tensor.Yxfb)
		l3 := tensor.Transform(l2, tensor.Bfyx)

		Expect(l3.Dims.Size).To(Equal(l1.Dims.Size))
	})

	It("reports SimpleLayout only for canonical permutations", func() {
		Expect(tensor.SimpleLayout(tensor.Bfyx)).To(BeTrue())
		Expect(tensor.SimpleLayout(tensor.Yxfb)).To(BeTrue())
		Expect(tensor.SimpleLayout(tensor.Winograd2x3S1Data)).To(BeFalse())
	})

	It("computes distinct offsets for each logical index in a layout with padding", func() {
		l := tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 2, 2)
		padded := l.WithOutputPadding(map[tensor.Axis]tensor.Pad{
			tensor.AxisY: {Before: 1, After: 1},
			tensor.AxisX: {Before: 1, After: 1},
		})

		seen := map[int]bool{}
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				off := tensor.ElementOffset(padded, 0, 0, y, x)
				Expect(seen[off]).To(BeFalse())
				seen[off] = true
				Expect(off).To(BeNumerically("<", tensor.PhysicalSize(padded)))
			}
		}
	})

	DescribeTable("channel index lookups",
		func(format tensor.DataLayout, axis tensor.Axis, want int) {
			Expect(format.ChannelIndex(axis)).To(Equal(want))
		},
		Entry("bfyx batch", tensor.Bfyx, tensor.AxisBatch, 0),
		Entry("bfyx x", tensor.Bfyx, tensor.AxisX, 3),
		Entry("yxfb y", tensor.Yxfb, tensor.AxisY, 0),
		Entry("bf has no y", tensor.Bf, tensor.AxisY, -1),
	)
})
