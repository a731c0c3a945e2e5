// Package device defines the capability surface a compiled Program executes
// against: compiling a kernel selection into a runnable unit, allocating
// buffers, and enqueueing work. Grounded on
// original_source/src/gpu/ocl_toolkit.h's context_holder (the single
// per-process object owning the command queue and compiled-kernel cache).
package device

import (
	"context"
	"strconv"

	"github.com/cldnngo/cldnn/kernelselector"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// ArgKind tags one entry of a kernel's argument descriptor: which
// BindingSources field a given argument position pulls from.
type ArgKind int

const (
	ArgInput ArgKind = iota
	ArgOutput
	ArgWeights
	ArgBias
	ArgScalar
)

// ArgDescriptor is one (kind, index) pair identifying where a kernel
// argument's value comes from at bind time.
type ArgDescriptor struct {
	Kind  ArgKind
	Index int
}

// BindingSources holds every object kind a kernel's arguments might be
// pulled from. Binding iterates a kernel's []ArgDescriptor and resolves
// each position against this struct instead of constructing a bespoke
// argument-class hierarchy per primitive.
type BindingSources struct {
	Inputs  []*tensor.Memory
	Output  *tensor.Memory
	Weights *tensor.Memory
	Bias    *tensor.Memory
	Scalars []float64
}

// Bind resolves descs against src, in order, producing the flat argument
// list a kernel invocation receives.
func Bind(descs []ArgDescriptor, src BindingSources) ([]interface{}, error) {
	args := make([]interface{}, 0, len(descs))
	for _, d := range descs {
		switch d.Kind {
		case ArgInput:
			if d.Index >= len(src.Inputs) {
				return nil, errArgOutOfRange("input", d.Index)
			}
			args = append(args, src.Inputs[d.Index])
		case ArgOutput:
			args = append(args, src.Output)
		case ArgWeights:
			args = append(args, src.Weights)
		case ArgBias:
			args = append(args, src.Bias)
		case ArgScalar:
			if d.Index >= len(src.Scalars) {
				return nil, errArgOutOfRange("scalar", d.Index)
			}
			args = append(args, src.Scalars[d.Index])
		}
	}
	return args, nil
}

// Event abstracts host-observable completion of an enqueued unit of work.
// UserEvent is the host-settable subtype.
type Event interface {
	Ready() bool
	Wait(ctx context.Context) error
}

// UserEvent is an Event a caller can mark ready explicitly, used to thread
// host-side synchronization into a device's otherwise device-driven event
// graph.
type UserEvent interface {
	Event
	Set()
}

// CompiledKernel is a kernel selection bound to its source and jit
// preamble, ready to enqueue.
type CompiledKernel struct {
	Family    string
	Candidate string
	Source    string
	Jit       *kernelselector.Table
}

// Context is the capability surface an Engine drives a Program's execution
// through. A device package (e.g. simdevice) implements this once per
// backend.
type Context interface {
	// CompileProgram turns a kernel-selector Selection into a
	// device-resident compiled unit, going through the context's own
	// compiled-kernel cache.
	CompileProgram(sel kernelselector.Selection) (CompiledKernel, error)

	// AllocateBuffer reserves device-resident storage sized for layout and
	// dtype.
	AllocateBuffer(layout tensor.Layout, dtype tensor.DataType) (*tensor.Memory, error)

	// Enqueue submits kernel for execution against desc and src, returning
	// an Event signalling completion.
	Enqueue(kernel CompiledKernel, desc topology.PrimitiveDescription, src BindingSources) (Event, error)

	// CreateUserEvent creates a host-settable Event.
	CreateUserEvent() UserEvent
}

type argRangeError struct {
	kind  string
	index int
}

func (e *argRangeError) Error() string {
	return "binding: " + e.kind + " argument index out of range: " + strconv.Itoa(e.index)
}

func errArgOutOfRange(kind string, index int) error {
	return &argRangeError{kind: kind, index: index}
}
