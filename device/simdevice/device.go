// Package simdevice is the host-CPU reference device.Context: it compiles
// nothing and executes every kernel by calling straight into
// diagnostics.Run, but still wraps a sim.TickingComponent so it plugs into
// an akita engine the same way every other component in this codebase
// does. Grounded on core/builder.go's Builder (WithEngine/WithFreq/Build)
// and config/config.go's DeviceBuilder, generalized from a CGRA tile mesh
// to a single compute device.
package simdevice

import (
	"context"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/device"
	"github.com/cldnngo/cldnn/diagnostics"
	"github.com/cldnngo/cldnn/kernelselector"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// readyEvent is an always-complete device.Event; every Device.Enqueue runs
// its kernel to completion before returning.
type readyEvent struct{}

func (readyEvent) Ready() bool                  { return true }
func (readyEvent) Wait(_ context.Context) error { return nil }

// hostEvent is a settable device.UserEvent the embedder can mark ready.
type hostEvent struct{ set bool }

func (e *hostEvent) Ready() bool { return e.set }
func (e *hostEvent) Wait(ctx context.Context) error {
	if e.set {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}
func (e *hostEvent) Set() { e.set = true }

// Device is the reference device.Context: a sim.TickingComponent that owns
// no actual device resources and executes every enqueued kernel
// synchronously against diagnostics' pure-Go reference kernels.
type Device struct {
	*sim.TickingComponent

	cycles uint64
}

// Tick advances the device's logical cycle counter. The reference device
// does no per-cycle work of its own (every kernel runs to completion inside
// Enqueue); Tick exists so Device satisfies sim.Ticker and can be scheduled
// onto an engine the way every other component here is.
func (d *Device) Tick(_ sim.VTimeInSec) (madeProgress bool) {
	d.cycles++
	return false
}

// Builder constructs a Device, following the WithX(...) Builder chain +
// Build(name) idiom of core/builder.go and config/config.go.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
}

func NewBuilder() Builder { return Builder{freq: 1 * sim.GHz} }

func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

func (b Builder) Build(name string) *Device {
	d := &Device{}
	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)
	return d
}

// CompileProgram is a no-op: the reference device has no separate
// compilation step, so the returned CompiledKernel just carries sel's
// fields forward for Enqueue to look up the right diagnostics kernel by
// PrimitiveDescription.Kind.
func (d *Device) CompileProgram(sel kernelselector.Selection) (device.CompiledKernel, error) {
	return device.CompiledKernel{Family: sel.Family, Candidate: sel.Candidate, Source: sel.Source, Jit: sel.Jit}, nil
}

// AllocateBuffer returns a host-backed tensor.Memory; the reference device
// has no distinct device-resident storage.
func (d *Device) AllocateBuffer(layout tensor.Layout, dtype tensor.DataType) (*tensor.Memory, error) {
	return tensor.Allocate(layout, dtype), nil
}

// Enqueue runs kernel's primitive to completion against diagnostics.Run and
// returns an already-complete Event.
func (d *Device) Enqueue(kernel device.CompiledKernel, desc topology.PrimitiveDescription, src device.BindingSources) (device.Event, error) {
	if kernel.Family == "" {
		return nil, cldnnerr.New(cldnnerr.NotImplemented, desc.ID, "no kernel selection for this node")
	}
	err := diagnostics.Run(desc, diagnostics.Args{
		Inputs: src.Inputs, Output: src.Output, Weights: src.Weights, Bias: src.Bias,
	})
	if err != nil {
		return nil, err
	}
	return readyEvent{}, nil
}

// CreateUserEvent returns a host-settable Event.
func (d *Device) CreateUserEvent() device.UserEvent { return &hostEvent{} }
