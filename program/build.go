package program

import (
	"sort"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/device"
	"github.com/cldnngo/cldnn/kernelselector"
	"github.com/cldnngo/cldnn/primitivekind"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// BuildOptions governs the optional passes of the build pipeline.
type BuildOptions struct {
	// OptimizeData enables pass 6 (concat/reshape/reorder/crop in-place
	// aliasing). Disabled, every node gets its own kernel.
	OptimizeData bool

	// Outputs names the primitives whose output the caller wants to read
	// back. Nil means "every sink node" (any primitive with no consumer in
	// the topology).
	Outputs []string
}

// Build runs the ordered pass pipeline over top and returns a compiled
// Program, or a typed error from the first failing pass. No
// partial Program is ever returned on error: every pass operates on a
// private working set and the result is only assembled once every pass has
// succeeded, matching the "Program is only published if all passes
// succeed" rule.
func Build(ctx device.Context, top *topology.Topology, opts BuildOptions) (*Program, error) {
	if err := top.Validate(); err != nil {
		return nil, err
	}

	nodes, err := materialize(top)
	if err != nil {
		return nil, err
	}

	order, err := topoSort(nodes)
	if err != nil {
		return nil, err
	}

	if err := propagateLayouts(nodes, order, top); err != nil {
		return nil, err
	}

	// Pass 4, reorder insertion: every registered kernel family in this
	// build exposes exactly one candidate with no declared format
	// preference (see kernelselector/families.go), so no consumer ever
	// disagrees with its producer's chosen format and no implicit reorder
	// is ever synthesised. Explicit KindReorder nodes already present in
	// the topology still flow through passes 5-7 normally, including the
	// identity-reorder optimisation below.

	// Pass 5, padding propagation: folded into propagateLayouts above,
	// since OutputPadding is applied as part of each node's
	// CalcOutputLayout/WithOutputPadding step rather than as a distinct
	// mutation pass.

	if opts.OptimizeData {
		applyInPlaceOptimizations(nodes, order)
	}

	if err := selectKernels(ctx, nodes, order, opts.OptimizeData); err != nil {
		return nil, err
	}

	finalOrder, err := topoSort(nodes)
	if err != nil {
		return nil, err
	}

	outputs := opts.Outputs
	if len(outputs) == 0 {
		outputs = sinkNodes(nodes, finalOrder)
	}

	return &Program{nodes: nodes, order: finalOrder, Output: outputs}, nil
}

// materialize is pass 1: create one ProgramNode per description and wire
// predecessor/successor edges.
func materialize(top *topology.Topology) (map[string]*ProgramNode, error) {
	nodes := make(map[string]*ProgramNode, top.Len())
	for _, id := range top.IDs() {
		desc, _ := top.Get(id)
		nodes[id] = &ProgramNode{ID: id, Desc: desc}
	}
	for _, id := range top.IDs() {
		desc, _ := top.Get(id)
		n := nodes[id]
		for _, dep := range desc.Inputs {
			pred, ok := nodes[dep]
			if !ok {
				return nil, cldnnerr.New(cldnnerr.InvalidArgument, id, "references unknown input id \""+dep+"\"")
			}
			n.addDependency(pred)
		}
	}
	return nodes, nil
}

// topoSort is pass 2 (and the re-run for pass 8): a DFS-based topological
// sort that fails with InvalidArgument on the first back-edge it finds.
func topoSort(nodes map[string]*ProgramNode) ([]string, error) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(nodes))
	var order []string
	var cycleErr error

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var visit func(n *ProgramNode) bool
	visit = func(n *ProgramNode) bool {
		color[n.ID] = gray
		for _, pred := range n.predecessors {
			switch color[pred.ID] {
			case gray:
				cycleErr = cldnnerr.New(cldnnerr.InvalidArgument, n.ID,
					"cycle detected through predecessor \""+pred.ID+"\"")
				return false
			case white:
				if !visit(pred) {
					return false
				}
			}
		}
		color[n.ID] = black
		order = append(order, n.ID)
		return true
	}

	for _, id := range ids {
		if color[id] == white {
			if !visit(nodes[id]) {
				return nil, cycleErr
			}
		}
	}
	return order, nil
}

// propagateLayouts is pass 3: compute each node's output tensor, in
// topological order, then fold in any explicit OutputPadding override
// (pass 5).
func propagateLayouts(nodes map[string]*ProgramNode, order []string, top *topology.Topology) error {
	for _, id := range order {
		n := nodes[id]
		table, ok := primitivekind.Lookup(n.Desc.Kind)
		if !ok {
			return cldnnerr.New(cldnnerr.NotImplemented, id, "no operation table registered for kind \""+n.Desc.Kind.String()+"\"")
		}
		if table.CalcOutputLayout == nil {
			return cldnnerr.New(cldnnerr.NotImplemented, id, "kind \""+n.Desc.Kind.String()+"\" has no calc_output_layout")
		}

		inputs := make([]tensor.Tensor, len(n.predecessors))
		for i, pred := range n.predecessors {
			inputs[i] = pred.OutputLayout
		}

		out, err := table.CalcOutputLayout(primitivekind.Context{Desc: n.Desc, Inputs: inputs, Topology: top})
		if err != nil {
			return err
		}

		if len(n.Desc.OutputPadding) > 0 {
			out.Layout = out.Layout.WithOutputPadding(n.Desc.OutputPadding)
		}

		n.OutputLayout = out
	}
	return nil
}

// applyInPlaceOptimizations is pass 6: mark nodes whose kind reports
// can_be_optimized as aliasing their predecessor instead of running a
// kernel. Marking only touches the flag; memory aliasing itself is a
// network-execution concern.
func applyInPlaceOptimizations(nodes map[string]*ProgramNode, order []string) {
	for _, id := range order {
		n := nodes[id]
		table, ok := primitivekind.Lookup(n.Desc.Kind)
		if !ok || table.CanBeOptimized == nil {
			continue
		}
		inputs := make([]tensor.Tensor, len(n.predecessors))
		for i, pred := range n.predecessors {
			inputs[i] = pred.OutputLayout
		}
		ctx := primitivekind.Context{Desc: n.Desc, Inputs: inputs}
		n.CanBeOptimized = table.CanBeOptimized(ctx, n.OutputLayout)
	}
}

// selectKernels is pass 7: for every node not optimised away, invoke the
// kernel selector and compile the winning candidate against ctx.
func selectKernels(ctx device.Context, nodes map[string]*ProgramNode, order []string, optimizeData bool) error {
	for _, id := range order {
		n := nodes[id]
		if n.Desc.Kind == topology.KindInputLayout || n.Desc.Kind == topology.KindData {
			continue
		}
		if optimizeData && n.CanBeOptimized {
			continue
		}

		table, ok := primitivekind.Lookup(n.Desc.Kind)
		if !ok {
			return cldnnerr.New(cldnnerr.NotImplemented, id, "no operation table registered for kind \""+n.Desc.Kind.String()+"\"")
		}

		lower := table.BuildKernelParams
		inputs := make([]tensor.Tensor, len(n.predecessors))
		for i, pred := range n.predecessors {
			inputs[i] = pred.OutputLayout
		}
		params := primitivekind.LoweredParams{
			Kind: n.Desc.Kind, ID: id, Inputs: inputs, Output: n.OutputLayout, Desc: n.Desc,
		}
		if lower != nil {
			var err error
			params, err = lower(primitivekind.Context{Desc: n.Desc, Inputs: inputs}, n.OutputLayout)
			if err != nil {
				return err
			}
		}

		sel, err := kernelselector.Select(n.Desc.Kind.String(), params)
		if err != nil {
			return err
		}
		n.Selection = sel

		if ctx != nil {
			if _, err := ctx.CompileProgram(sel); err != nil {
				return err
			}
		}
	}
	return nil
}

// sinkNodes returns every node with no successor, in finalized topological
// order, as the default output set.
func sinkNodes(nodes map[string]*ProgramNode, order []string) []string {
	var out []string
	for _, id := range order {
		if len(nodes[id].successors) == 0 {
			out = append(out, id)
		}
	}
	return out
}
