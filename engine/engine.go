// Package engine wraps a device.Context with a dependency/submission-mode
// bookkeeping layer and profiling clock, plus the compiled-kernel
// cache of engine/cache.go. Grounded on config/config.go's Builder pattern
// (WithX(...) Builder chain + Build) generalized from device construction
// to engine construction.
package engine

import (
	"time"

	"github.com/cldnngo/cldnn/device"
	"github.com/cldnngo/cldnn/diagnostics"
	"github.com/cldnngo/cldnn/kernelselector"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// Engine owns a device.Context and adds a queue-stamp/barrier model and
// per-event profiling intervals on top of it, while still satisfying
// device.Context itself so a Network can drive it exactly like a bare
// device.
type Engine struct {
	inner     device.Context
	cache     *Cache
	mode      SubmissionMode
	profiling bool

	stamp            uint64
	lastBarrierStamp uint64

	records []record
}

type record struct {
	id, kind, candidate        string
	queued, started, completed time.Time
}

// Builder constructs an Engine, following the WithX(...) Builder chain +
// Build() idiom used throughout this codebase's device/core construction.
type Builder struct {
	ctx   device.Context
	cache *Cache
	opts  Options
}

func NewBuilder() Builder { return Builder{} }

func (b Builder) WithContext(ctx device.Context) Builder {
	b.ctx = ctx
	return b
}

func (b Builder) WithCache(c *Cache) Builder {
	b.cache = c
	return b
}

func (b Builder) WithOptions(opts Options) Builder {
	b.opts = opts
	return b
}

// Build finalizes the Engine. ctx must be set via WithContext; cache may be
// nil to disable compiled-kernel deduplication.
func (b Builder) Build() *Engine {
	return &Engine{
		inner:     b.ctx,
		cache:     b.cache,
		mode:      b.opts.Mode,
		profiling: b.opts.Profiling,
	}
}

// CompileProgram consults the compiled-kernel cache before delegating to
// the wrapped device.Context, so an identical (source, family, candidate)
// triple is never compiled twice against the same Engine.
func (e *Engine) CompileProgram(sel kernelselector.Selection) (device.CompiledKernel, error) {
	if e.cache != nil {
		hit, err := e.cache.Lookup(sel.Source, sel.Family, sel.Candidate)
		if err == nil && hit {
			return device.CompiledKernel{Family: sel.Family, Candidate: sel.Candidate, Source: sel.Source, Jit: sel.Jit}, nil
		}
	}

	ck, err := e.inner.CompileProgram(sel)
	if err != nil {
		return ck, err
	}
	if e.cache != nil {
		_ = e.cache.Store(sel.Source, sel.Family, sel.Candidate)
	}
	return ck, nil
}

// AllocateBuffer delegates to the wrapped device.Context.
func (e *Engine) AllocateBuffer(layout tensor.Layout, dtype tensor.DataType) (*tensor.Memory, error) {
	return e.inner.AllocateBuffer(layout, dtype)
}

// CreateUserEvent delegates to the wrapped device.Context.
func (e *Engine) CreateUserEvent() device.UserEvent {
	return e.inner.CreateUserEvent()
}

// Enqueue submits kernel to the wrapped device.Context, recording the
// queue-stamp/barrier bookkeeping and, when profiling is enabled, the
// queued/started/completed timestamps behind it.
func (e *Engine) Enqueue(kernel device.CompiledKernel, desc topology.PrimitiveDescription, src device.BindingSources) (device.Event, error) {
	queuedAt := time.Now()

	e.stamp++
	if e.mode == OutOfOrderWithBarrier {
		// A real out-of-order queue would only insert a device barrier
		// when a dependency's stamp exceeds the last recorded barrier;
		// this reference engine executes every kernel synchronously in
		// topological order, so every enqueue already postdates the
		// previous barrier and each one becomes the new barrier.
		e.lastBarrierStamp = e.stamp
	}

	startedAt := time.Now()
	evt, err := e.inner.Enqueue(kernel, desc, src)
	completedAt := time.Now()
	if err != nil {
		return nil, err
	}

	if e.profiling {
		e.records = append(e.records, record{
			id: desc.ID, kind: desc.Kind.String(), candidate: kernel.Candidate,
			queued: queuedAt, started: startedAt, completed: completedAt,
		})
	}

	return evt, nil
}

// Profile renders the profiling records collected so far (empty if
// profiling was not enabled) as diagnostics.NodeProfile entries, ready to
// hand to a diagnostics.Report.
func (e *Engine) Profile() []diagnostics.NodeProfile {
	out := make([]diagnostics.NodeProfile, len(e.records))
	for i, r := range e.records {
		out[i] = diagnostics.NodeProfile{
			PrimitiveID: r.id, Kind: r.kind, Candidate: r.candidate,
			Duration: r.completed.Sub(r.queued),
		}
	}
	return out
}
