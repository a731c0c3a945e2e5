package network_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/cldnngo/cldnn/device/simdevice"
	"github.com/cldnngo/cldnn/network"
	"github.com/cldnngo/cldnn/program"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func newTestDevice() *simdevice.Device {
	return simdevice.NewBuilder().WithEngine(sim.NewSerialEngine()).Build("Device")
}

var _ = Describe("Network", func() {
	It("executes an eltwise-sum graph end to end", func() {
		top := topology.New()
		shape := tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 1, 2)
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "a", Kind: topology.KindInputLayout,
			Params: topology.InputLayoutParams{Layout: shape, Type: tensor.F32},
		})).To(Succeed())
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "b", Kind: topology.KindInputLayout,
			Params: topology.InputLayoutParams{Layout: shape, Type: tensor.F32},
		})).To(Succeed())
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "sum", Kind: topology.KindEltwise, Inputs: []string{"a", "b"},
			Params: topology.EltwiseParams{Mode: topology.EltwiseSum},
		})).To(Succeed())

		ctx := newTestDevice()
		prog, err := program.Build(ctx, top, program.BuildOptions{})
		Expect(err).NotTo(HaveOccurred())

		net, err := network.New(ctx, prog, top)
		Expect(err).NotTo(HaveOccurred())

		aMem := tensor.Allocate(shape, tensor.F32)
		bMem := tensor.Allocate(shape, tensor.F32)
		tensor.WriteF32(aMem, 0, 0, 0, 0, 1)
		tensor.WriteF32(aMem, 0, 0, 0, 1, 2)
		tensor.WriteF32(bMem, 0, 0, 0, 0, 10)
		tensor.WriteF32(bMem, 0, 0, 0, 1, 20)

		out, err := net.Execute([]network.ExternalInput{
			{ID: "a", Memory: aMem},
			{ID: "b", Memory: bMem},
		})
		Expect(err).NotTo(HaveOccurred())

		sumOut, ok := out["sum"]
		Expect(ok).To(BeTrue())
		Expect(sumOut.Event.Ready()).To(BeTrue())
		Expect(tensor.ReadF32(sumOut.Memory, 0, 0, 0, 0)).To(BeNumerically("~", 11, 1e-6))
		Expect(tensor.ReadF32(sumOut.Memory, 0, 0, 0, 1)).To(BeNumerically("~", 22, 1e-6))
	})

	It("aliases memory across a can_be_optimized reorder with a marker event", func() {
		top := topology.New()
		shape := tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 1, 2)
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "in", Kind: topology.KindInputLayout,
			Params: topology.InputLayoutParams{Layout: shape, Type: tensor.F32},
		})).To(Succeed())
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "r", Kind: topology.KindReorder, Inputs: []string{"in"},
			Params: topology.ReorderParams{TargetLayout: tensor.Bfyx, TargetType: tensor.F32},
		})).To(Succeed())

		ctx := newTestDevice()
		prog, err := program.Build(ctx, top, program.BuildOptions{OptimizeData: true})
		Expect(err).NotTo(HaveOccurred())

		net, err := network.New(ctx, prog, top)
		Expect(err).NotTo(HaveOccurred())

		inMem := tensor.Allocate(shape, tensor.F32)
		tensor.WriteF32(inMem, 0, 0, 0, 0, 7)

		out, err := net.Execute([]network.ExternalInput{{ID: "in", Memory: inMem}})
		Expect(err).NotTo(HaveOccurred())

		rOut, ok := out["r"]
		Expect(ok).To(BeTrue())
		Expect(rOut.Memory).To(BeIdenticalTo(inMem))
		Expect(rOut.Event.Ready()).To(BeTrue())
	})
})
