package diagnostics_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cldnngo/cldnn/diagnostics"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

var _ = Describe("Lint", func() {
	It("flags an eltwise primitive with fewer than two inputs", func() {
		top := topology.New()
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "in", Kind: topology.KindInputLayout,
			Params: topology.InputLayoutParams{Layout: tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 1, 1), Type: tensor.F32},
		})).To(Succeed())
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "e", Kind: topology.KindEltwise, Inputs: []string{"in"},
			Params: topology.EltwiseParams{Mode: topology.EltwiseSum},
		})).To(Succeed())

		issues := diagnostics.Lint(top)
		found := false
		for _, issue := range issues {
			if issue.PrimitiveID == "e" && issue.Type == diagnostics.IssueConfig {
				found = true
			}
		}
		Expect(found).To(BeTrue())
	})

	It("reports no issues for a well-formed graph", func() {
		top := topology.New()
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "in", Kind: topology.KindInputLayout,
			Params: topology.InputLayoutParams{Layout: tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 1, 1), Type: tensor.F32},
		})).To(Succeed())
		Expect(top.Add(topology.PrimitiveDescription{
			ID: "act", Kind: topology.KindActivation, Inputs: []string{"in"},
			Params: topology.ActivationParams{},
		})).To(Succeed())

		Expect(diagnostics.Lint(top)).To(BeEmpty())
	})
})

var _ = Describe("Report", func() {
	It("renders lint and profile tables without error", func() {
		report := &diagnostics.Report{
			LintIssues: []diagnostics.Issue{{Type: diagnostics.IssueConfig, PrimitiveID: "x", Message: "bad"}},
			Profile:    []diagnostics.NodeProfile{{PrimitiveID: "x", Kind: "eltwise", Candidate: "ref"}},
		}
		var buf bytes.Buffer
		report.WriteReport(&buf)
		Expect(buf.String()).To(ContainSubstring("Lint Issues"))
		Expect(buf.String()).To(ContainSubstring("Execution Profile"))
	})
})
