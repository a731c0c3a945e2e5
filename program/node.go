// Package program builds a compiled Program from a topology.Topology via an
// ordered pass pipeline (graph materialisation, cycle check, layout
// propagation, reorder insertion, padding propagation, in-place
// optimisation, kernel selection, order finalisation).
package program

import (
	"github.com/cldnngo/cldnn/kernelselector"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// ProgramNode is one compiled node of a Program. Ownership runs downstream:
// a node holds a strong reference to each of its predecessors (keeping them
// reachable for as long as the node itself is reachable), while the reverse
// successor links are maintained purely for traversal convenience and are
// never relied upon to keep anything alive. This lets an optimisation pass
// splice a node out of the graph (insert a reorder, alias a crop in place)
// by rewriting one node's predecessor list without having to chase down and
// repair every other node's bookkeeping, and without ever producing a
// reference cycle a pass has to unwind by hand.
type ProgramNode struct {
	ID           string
	Desc         topology.PrimitiveDescription
	OutputLayout tensor.Tensor

	// CanBeOptimized is set by the in-place-optimisation pass: true means this node contributes no kernel of its own and
	// its output aliases a predecessor's memory.
	CanBeOptimized bool

	// Selection is the winning kernel for this node, set by the
	// kernel-selection pass. Zero value for nodes that never reach kernel
	// selection (KindInputLayout, KindData, or any CanBeOptimized node).
	Selection kernelselector.Selection

	predecessors []*ProgramNode
	successors   []*ProgramNode
}

// Predecessors returns the nodes this node directly depends on, in the
// order declared by the originating PrimitiveDescription.Inputs.
func (n *ProgramNode) Predecessors() []*ProgramNode { return n.predecessors }

// Successors returns the nodes that directly depend on this node. This
// list is advisory only (see the ownership note on ProgramNode); callers
// that need a durable reference should hold the node itself.
func (n *ProgramNode) Successors() []*ProgramNode { return n.successors }

// addDependency records pred as a predecessor of n and n as a successor of
// pred.
func (n *ProgramNode) addDependency(pred *ProgramNode) {
	n.predecessors = append(n.predecessors, pred)
	pred.successors = append(pred.successors, n)
}

// spliceDependency replaces n's predecessor at position idx with replacement,
// unlinking the old predecessor's successor entry for n, rewiring a single
// edge without touching any other node. None of Build's passes call it: the
// reorder-insertion pass adds no nodes and the in-place-optimisation pass
// only sets CanBeOptimized.
func (n *ProgramNode) spliceDependency(idx int, replacement *ProgramNode) {
	old := n.predecessors[idx]
	old.removeSuccessor(n)
	n.predecessors[idx] = replacement
	replacement.successors = append(replacement.successors, n)
}

// removeSuccessor drops n from succ's successor list, if present.
func (n *ProgramNode) removeSuccessor(succ *ProgramNode) {
	for i, s := range n.successors {
		if s == succ {
			n.successors = append(n.successors[:i], n.successors[i+1:]...)
			return
		}
	}
}

// Program is the compiled, executable form of a Topology: every node has a
// resolved output layout and, unless optimised away, a selected kernel.
type Program struct {
	nodes  map[string]*ProgramNode
	order  []string // topological order, finalised by the last build pass
	Output []string // BuildOptions.Outputs, or every sink node when that is empty
}

// Node returns the compiled node for id, or ok=false if id is unknown.
func (p *Program) Node(id string) (*ProgramNode, bool) {
	n, ok := p.nodes[id]
	return n, ok
}

// Order returns the finalised topological execution order.
func (p *Program) Order() []string { return p.order }

// Len returns the number of nodes in the compiled program.
func (p *Program) Len() int { return len(p.order) }
