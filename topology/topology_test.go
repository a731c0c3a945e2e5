package topology_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

var _ = Describe("Topology", func() {
	It("rejects a duplicate primitive id", func() {
		top := topology.New()
		Expect(top.Add(topology.PrimitiveDescription{ID: "a", Kind: topology.KindInputLayout})).To(Succeed())

		err := top.Add(topology.PrimitiveDescription{ID: "a", Kind: topology.KindInputLayout})
		Expect(err).To(HaveOccurred())

		var cerr *cldnnerr.Error
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Kind).To(Equal(cldnnerr.InvalidArgument))
	})

	It("rejects an empty id", func() {
		top := topology.New()
		err := top.Add(topology.PrimitiveDescription{ID: "", Kind: topology.KindInputLayout})
		Expect(err).To(HaveOccurred())
	})

	It("validates that every referenced input id is defined", func() {
		top := topology.New()
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "b", Kind: topology.KindActivation, Inputs: []string{"missing"},
		})).To(Succeed())

		err := top.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("missing"))
	})

	It("accepts a well-formed two-node graph", func() {
		top := topology.New()
		Expect(top.Add(topology.PrimitiveDescription{
			ID:   "in",
			Kind: topology.KindInputLayout,
			Params: topology.InputLayoutParams{
				Layout: tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 2, 2),
				Type:   tensor.F32,
			},
		})).To(Succeed())
		Expect(top.Add(topology.PrimitiveDescription{
			ID:     "act",
			Kind:   topology.KindActivation,
			Inputs: []string{"in"},
			Params: topology.ActivationParams{ActivationDesc: topology.ActivationDesc{Func: topology.ActivationReLU}},
		})).To(Succeed())

		Expect(top.Validate()).To(Succeed())
		Expect(top.Len()).To(Equal(2))
		Expect(top.IDs()).To(Equal([]string{"in", "act"}))
	})
})
