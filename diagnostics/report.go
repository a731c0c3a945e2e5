package diagnostics

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// NodeProfile is one ProgramNode's measured execution cost, as collected by
// an Engine's profiling clock.
type NodeProfile struct {
	PrimitiveID string
	Kind        string
	Candidate   string
	Duration    time.Duration
}

// Report bundles lint findings and a profiling run into one renderable
// summary, the diagnostics-package analogue of verify.VerificationReport.
type Report struct {
	LintIssues []Issue
	Profile    []NodeProfile
}

// WriteReport renders r as two go-pretty tables to w: lint issues first,
// then per-node profiling. Grounded on core/util.go's PrintState table
// construction (table.NewWriter/AppendHeader/AppendRow/Render).
func (r *Report) WriteReport(w io.Writer) {
	if len(r.LintIssues) > 0 {
		lintTable := table.NewWriter()
		lintTable.SetOutputMirror(w)
		lintTable.SetTitle("Lint Issues")
		lintTable.AppendHeader(table.Row{"Type", "Primitive", "Message"})
		for _, issue := range r.LintIssues {
			lintTable.AppendRow(table.Row{issue.Type, issue.PrimitiveID, issue.Message})
		}
		lintTable.Render()
		fmt.Fprintln(w)
	}

	if len(r.Profile) > 0 {
		profTable := table.NewWriter()
		profTable.SetOutputMirror(w)
		profTable.SetTitle("Execution Profile")
		profTable.AppendHeader(table.Row{"Primitive", "Kind", "Candidate", "Duration"})
		var total time.Duration
		for _, p := range r.Profile {
			profTable.AppendRow(table.Row{p.PrimitiveID, p.Kind, p.Candidate, p.Duration})
			total += p.Duration
		}
		profTable.AppendFooter(table.Row{"", "", "Total", total})
		profTable.Render()
	}
}
