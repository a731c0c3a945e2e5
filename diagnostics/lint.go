package diagnostics

import (
	"fmt"

	"github.com/cldnngo/cldnn/topology"
)

// IssueType categorizes a lint finding. Grounded on verify/verify.go's
// IssueStruct/IssueTiming split — here STRUCT covers graph-shape problems
// (cycles, dangling references) and CONFIG covers primitive-parameter
// problems caught before kernel selection runs.
type IssueType string

const (
	IssueStruct IssueType = "STRUCT"
	IssueConfig IssueType = "CONFIG"
)

// Issue is one structural or configuration finding against a Topology,
// produced before a Program attempts to compile it.
type Issue struct {
	Type        IssueType
	PrimitiveID string
	Message     string
}

// Lint runs every structural/config check against top and returns every
// issue found (an empty slice means the topology is clean). This runs
// before kernel selection, matching verify/lint.go's role as a
// pre-execution static check.
func Lint(top *topology.Topology) []Issue {
	var issues []Issue

	if err := top.Validate(); err != nil {
		issues = append(issues, Issue{Type: IssueStruct, Message: err.Error()})
	}

	issues = append(issues, checkCycles(top)...)
	issues = append(issues, checkKindSpecific(top)...)

	return issues
}

func checkCycles(top *topology.Topology) []Issue {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	var issues []Issue

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		desc, ok := top.Get(id)
		if ok {
			for _, dep := range desc.Inputs {
				switch color[dep] {
				case gray:
					issues = append(issues, Issue{Type: IssueStruct, PrimitiveID: id,
						Message: fmt.Sprintf("cycle detected through predecessor %q", dep)})
					return false
				case white:
					if !visit(dep) {
						return false
					}
				}
			}
		}
		color[id] = black
		return true
	}

	for _, id := range top.IDs() {
		if color[id] == white {
			visit(id)
		}
	}
	return issues
}

func checkKindSpecific(top *topology.Topology) []Issue {
	var issues []Issue
	for _, id := range top.IDs() {
		desc, _ := top.Get(id)
		switch desc.Kind {
		case topology.KindEltwise:
			if len(desc.Inputs) < 2 {
				issues = append(issues, Issue{Type: IssueConfig, PrimitiveID: id,
					Message: "eltwise requires at least two inputs"})
			}
		case topology.KindConvolution:
			p, ok := desc.Params.(topology.ConvolutionParams)
			if ok && p.WeightsID == "" {
				issues = append(issues, Issue{Type: IssueConfig, PrimitiveID: id,
					Message: "convolution requires weights_id"})
			}
		case topology.KindReshape:
			p, ok := desc.Params.(topology.ReshapeParams)
			if ok {
				n := p.OutputShape.Size[0] * p.OutputShape.Size[1] * p.OutputShape.Size[2] * p.OutputShape.Size[3]
				if n <= 0 {
					issues = append(issues, Issue{Type: IssueConfig, PrimitiveID: id,
						Message: "reshape output shape has a non-positive element count"})
				}
			}
		}
	}
	return issues
}
