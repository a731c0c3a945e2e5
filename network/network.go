// Package network turns a compiled program.Program into a runnable
// instance: it owns per-node device memory and event slots and drives
// topological execution. Grounded on api/driver.go's
// Driver.FeedIn/Collect/Run task-queue shape, generalized from a fixed
// feed-in/collect task list to a Program's node order.
package network

import (
	"context"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/device"
	"github.com/cldnngo/cldnn/program"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// ExternalInput binds a caller-provided Memory to a KindInputLayout node for
// one Execute call, plus the event the caller will use to signal readiness.
// A nil Event means the Memory is already valid (pre-signalled).
type ExternalInput struct {
	ID     string
	Memory *tensor.Memory
	Event  device.Event
}

// Output is one entry of an Execute result: the node's memory and the event
// that signals its completion.
type Output struct {
	Memory *tensor.Memory
	Event  device.Event
}

// markerEvent is the always-ready Event assigned to CanBeOptimized nodes:
// such a node runs no kernel, so its "completion" is just the completion
// of whichever dependency produced the aliased memory.
type markerEvent struct{ deps []device.Event }

func (m markerEvent) Ready() bool {
	for _, e := range m.deps {
		if e != nil && !e.Ready() {
			return false
		}
	}
	return true
}

func (m markerEvent) Wait(ctx context.Context) error {
	for _, e := range m.deps {
		if e == nil {
			continue
		}
		if err := e.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Network is one executable instance of a compiled Program against a
// device.Context. A Network is not safe for concurrent Execute calls: the
// per-node event/memory slots are rewritten on every call.
type Network struct {
	ctx      device.Context
	prog     *program.Program
	top      *topology.Topology
	compiled map[string]device.CompiledKernel
	constant map[string]*tensor.Memory // KindData nodes, materialized once
	memory   map[string]*tensor.Memory
	events   map[string]device.Event
}

// New allocates device buffers for every non-input node of prog (input
// nodes are bound per Execute call) and materializes every KindData
// constant's bytes into device memory. It recompiles each node's selected
// kernel against ctx so the Network owns device-resident compiled units
// independent of whatever context Build itself ran against.
func New(ctx device.Context, prog *program.Program, top *topology.Topology) (*Network, error) {
	n := &Network{
		ctx:      ctx,
		prog:     prog,
		top:      top,
		compiled: make(map[string]device.CompiledKernel),
		constant: make(map[string]*tensor.Memory),
		memory:   make(map[string]*tensor.Memory),
		events:   make(map[string]device.Event),
	}

	for _, id := range prog.Order() {
		node, _ := prog.Node(id)
		switch node.Desc.Kind {
		case topology.KindInputLayout:
			continue
		case topology.KindData:
			p := node.Desc.Params.(topology.DataParams)
			mem, err := ctx.AllocateBuffer(p.Layout, p.Type)
			if err != nil {
				return nil, err
			}
			view := mem.Lock()
			copy(view, p.Bytes)
			mem.Unlock()
			n.constant[id] = mem
			n.memory[id] = mem
			continue
		}

		if !node.CanBeOptimized {
			mem, err := ctx.AllocateBuffer(node.OutputLayout.Layout, node.OutputLayout.Type)
			if err != nil {
				return nil, err
			}
			n.memory[id] = mem

			if node.Selection.Family != "" {
				ck, err := ctx.CompileProgram(node.Selection)
				if err != nil {
					return nil, err
				}
				n.compiled[id] = ck
			}
		}
	}
	return n, nil
}

// Execute binds inputs, walks the program in topological order, and
// enqueues one kernel per non-optimized node. It returns a
// map of every id named in prog.Output to its resulting memory/event.
func (n *Network) Execute(inputs []ExternalInput) (map[string]Output, error) {
	inputMem := make(map[string]*tensor.Memory, len(inputs))
	inputEvt := make(map[string]device.Event, len(inputs))
	for _, in := range inputs {
		node, ok := n.prog.Node(in.ID)
		if !ok {
			return nil, cldnnerr.New(cldnnerr.InvalidArgument, in.ID, "not a node of this program")
		}
		if !sameShape(node.OutputLayout, in.Memory) {
			return nil, cldnnerr.New(cldnnerr.InvalidArgument, in.ID, "external input memory layout does not match the bound node")
		}
		inputMem[in.ID] = in.Memory
		inputEvt[in.ID] = in.Event
	}

	for _, id := range n.prog.Order() {
		node, _ := n.prog.Node(id)

		switch node.Desc.Kind {
		case topology.KindInputLayout:
			mem, ok := inputMem[id]
			if !ok {
				return nil, cldnnerr.New(cldnnerr.InvalidArgument, id, "no external input bound for this input node")
			}
			n.memory[id] = mem
			n.events[id] = inputEvt[id]
			continue
		case topology.KindData:
			n.events[id] = nil // constants are always ready; nil is treated as pre-signalled below
			continue
		}

		deps := make([]device.Event, len(node.Predecessors()))
		for i, pred := range node.Predecessors() {
			deps[i] = n.events[pred.ID]
		}

		if node.CanBeOptimized {
			// Aliases its sole predecessor's memory; no kernel runs.
			n.memory[id] = n.memory[node.Predecessors()[0].ID]
			n.events[id] = markerEvent{deps: deps}
			continue
		}

		src, err := n.bindingSources(node)
		if err != nil {
			return nil, err
		}

		ck, ok := n.compiled[id]
		if !ok {
			return nil, cldnnerr.New(cldnnerr.NotImplemented, id, "node has no compiled kernel")
		}
		evt, err := n.ctx.Enqueue(ck, node.Desc, src)
		if err != nil {
			return nil, err
		}
		n.events[id] = evt
	}

	out := make(map[string]Output, len(n.prog.Output))
	for _, id := range n.prog.Output {
		out[id] = Output{Memory: n.memory[id], Event: n.events[id]}
	}
	return out, nil
}

// bindingSources assembles one node's BindingSources from its predecessors'
// memory and any resolved weights/bias constant references.
func (n *Network) bindingSources(node *program.ProgramNode) (device.BindingSources, error) {
	src := device.BindingSources{Output: n.memory[node.ID]}
	for _, pred := range node.Predecessors() {
		src.Inputs = append(src.Inputs, n.memory[pred.ID])
	}

	weightsID, biasID := constantRefs(node.Desc)
	if weightsID != "" {
		mem, ok := n.constant[weightsID]
		if !ok {
			return src, cldnnerr.New(cldnnerr.InvalidArgument, node.ID, "references unresolved constant \""+weightsID+"\"")
		}
		src.Weights = mem
	}
	if biasID != "" {
		mem, ok := n.constant[biasID]
		if !ok {
			return src, cldnnerr.New(cldnnerr.InvalidArgument, node.ID, "references unresolved constant \""+biasID+"\"")
		}
		src.Bias = mem
	}
	return src, nil
}

// constantRefs extracts the weights-slot and bias-slot constant ids (if
// any) from desc's kind-specific parameters. Kinds whose only secondary
// operand is conceptually a "scale table" or "mean" or "lookup table"
// still bind it through the Weights slot, the same overloaded-secondary-
// operand convention diagnostics.Args uses.
func constantRefs(desc topology.PrimitiveDescription) (weights, bias string) {
	switch p := desc.Params.(type) {
	case topology.ConvolutionParams:
		return p.WeightsID, p.BiasID
	case topology.DeconvolutionParams:
		return p.WeightsID, p.BiasID
	case topology.FullyConnectedParams:
		return p.WeightsID, p.BiasID
	case topology.ScaleParams:
		return p.ScaleID, p.BiasID
	case topology.NormalizeParams:
		return p.ScaleID, ""
	case topology.MeanSubtractParams:
		return p.MeanID, ""
	case topology.LookupTableParams:
		return p.TableID, ""
	case topology.IndexSelectParams:
		return p.IndexID, ""
	default:
		return "", ""
	}
}

func sameShape(layout tensor.Tensor, mem *tensor.Memory) bool {
	return layout.Layout.Format == mem.Layout().Format && layout.Type == mem.DataType() &&
		layout.Batch() == dimAt(mem, tensor.AxisBatch) &&
		layout.Feature() == dimAt(mem, tensor.AxisFeature) &&
		layout.Y() == dimAt(mem, tensor.AxisY) &&
		layout.X() == dimAt(mem, tensor.AxisX)
}

func dimAt(mem *tensor.Memory, axis tensor.Axis) int {
	return mem.Layout().Dims.Size[axis]
}
