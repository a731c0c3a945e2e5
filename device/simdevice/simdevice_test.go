package simdevice_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/cldnngo/cldnn/device"
	"github.com/cldnngo/cldnn/device/simdevice"
	"github.com/cldnngo/cldnn/kernelselector"
	"github.com/cldnngo/cldnn/primitivekind"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

var _ = Describe("Device", func() {
	It("allocates buffers, compiles a selection, and runs an eltwise kernel", func() {
		engine := sim.NewSerialEngine()
		dev := simdevice.NewBuilder().WithEngine(engine).WithFreq(1 * sim.GHz).Build("Device")

		shape := tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 1, 2)
		a, err := dev.AllocateBuffer(shape, tensor.F32)
		Expect(err).NotTo(HaveOccurred())
		b, err := dev.AllocateBuffer(shape, tensor.F32)
		Expect(err).NotTo(HaveOccurred())
		out, err := dev.AllocateBuffer(shape, tensor.F32)
		Expect(err).NotTo(HaveOccurred())

		tensor.WriteF32(a, 0, 0, 0, 0, 1)
		tensor.WriteF32(a, 0, 0, 0, 1, 2)
		tensor.WriteF32(b, 0, 0, 0, 0, 10)
		tensor.WriteF32(b, 0, 0, 0, 1, 20)

		outTensor := tensor.Tensor{Layout: shape, Type: tensor.F32}
		params := primitivekind.LoweredParams{
			Kind: topology.KindEltwise, ID: "e",
			Inputs: []tensor.Tensor{outTensor, outTensor}, Output: outTensor,
		}
		sel, err := kernelselector.Select("eltwise", params)
		Expect(err).NotTo(HaveOccurred())

		ck, err := dev.CompileProgram(sel)
		Expect(err).NotTo(HaveOccurred())

		desc := topology.PrimitiveDescription{ID: "e", Kind: topology.KindEltwise,
			Params: topology.EltwiseParams{Mode: topology.EltwiseSum}}
		evt, err := dev.Enqueue(ck, desc, device.BindingSources{Inputs: []*tensor.Memory{a, b}, Output: out})
		Expect(err).NotTo(HaveOccurred())
		Expect(evt.Ready()).To(BeTrue())

		Expect(tensor.ReadF32(out, 0, 0, 0, 0)).To(BeNumerically("~", 11, 1e-6))
		Expect(tensor.ReadF32(out, 0, 0, 0, 1)).To(BeNumerically("~", 22, 1e-6))
	})

	It("rejects Enqueue for a kernel with no selection", func() {
		engine := sim.NewSerialEngine()
		dev := simdevice.NewBuilder().WithEngine(engine).Build("Device")

		desc := topology.PrimitiveDescription{ID: "e", Kind: topology.KindEltwise}
		_, err := dev.Enqueue(device.CompiledKernel{}, desc, device.BindingSources{})
		Expect(err).To(HaveOccurred())
	})
})
