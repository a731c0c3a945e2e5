package abi_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cldnngo/cldnn/abi"
	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

var _ = Describe("Handle", func() {
	It("unwraps to the concrete type it was constructed with", func() {
		top := topology.New()
		h := abi.NewTopologyHandle(top)

		got, err := h.Topology()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeIdenticalTo(top))
	})

	It("rejects unwrapping as the wrong kind", func() {
		top := topology.New()
		h := abi.NewTopologyHandle(top)

		_, err := h.Network()
		Expect(err).To(HaveOccurred())
	})

	It("rejects use after the last reference is released", func() {
		mem := tensor.Allocate(tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 1, 1), tensor.F32)
		h := abi.NewMemoryHandle(mem)

		h.Retain()
		Expect(h.Release()).To(BeFalse())
		Expect(h.Release()).To(BeTrue())

		_, err := h.Memory()
		Expect(err).To(HaveOccurred())
	})

	It("gives each handle a distinct, stable id", func() {
		top := topology.New()
		h1 := abi.NewTopologyHandle(top)
		h2 := abi.NewTopologyHandle(top)
		Expect(h1.ID()).NotTo(Equal(h2.ID()))
		Expect(h1.ID()).To(Equal(h1.ID()))
	})
})

var _ = Describe("StatusFromError", func() {
	It("maps nil to Success without touching the last error", func() {
		before := abi.LastError()
		Expect(abi.StatusFromError(nil)).To(Equal(abi.Success))
		Expect(abi.LastError()).To(Equal(before))
	})

	It("maps InvalidArgument to InvalidArg and records the message", func() {
		err := cldnnerr.New(cldnnerr.InvalidArgument, "n1", "bad thing")
		Expect(abi.StatusFromError(err)).To(Equal(abi.InvalidArg))
		Expect(abi.LastError()).To(ContainSubstring("bad thing"))
	})

	It("maps UnsupportedConfiguration to Unsupported", func() {
		err := cldnnerr.New(cldnnerr.UnsupportedConfiguration, "n1", "no candidate")
		Expect(abi.StatusFromError(err)).To(Equal(abi.Unsupported))
	})

	It("maps an untyped error to NetworkError", func() {
		Expect(abi.StatusFromError(assertErr{})).To(Equal(abi.NetworkError))
	})
})

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
