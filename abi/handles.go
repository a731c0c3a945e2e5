// Package abi models the embedder-facing surface: opaque handles over the
// internal Context/Engine/Topology/Program/Network/Event/Memory types, a
// closed Status code, and a last-error diagnostic slot. It is the seam a
// future cgo export layer would sit behind; nothing here assumes a C
// caller, but the shape — out-parameter status codes, retain/release, one
// human-readable last error — mirrors a typical C ABI. Grounded on
// tensor.Memory's own Retain/Release reference counting, generalized to
// every handle kind, and on api/driver.go's Builder-constructed,
// single-purpose API object shape.
package abi

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/device"
	"github.com/cldnngo/cldnn/engine"
	"github.com/cldnngo/cldnn/network"
	"github.com/cldnngo/cldnn/program"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// Status is the closed set of embedder-facing result codes.
type Status int

const (
	Success Status = iota
	InvalidArg
	OutOfResources
	DeviceError
	NetworkError
	NetworkNotImplemented
	Unsupported
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case InvalidArg:
		return "InvalidArg"
	case OutOfResources:
		return "OutOfResources"
	case DeviceError:
		return "DeviceError"
	case NetworkError:
		return "NetworkError"
	case NetworkNotImplemented:
		return "NetworkNotImplemented"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unsupported"
	}
}

// StatusFromError maps an internal cldnnerr.Kind (or any other error) onto
// the closed embedder Status set, recording err's message as the last
// error before returning. A nil err yields Success without touching the
// last-error slot.
func StatusFromError(err error) Status {
	if err == nil {
		return Success
	}
	setLastError(err.Error())

	var cerr *cldnnerr.Error
	if !errors.As(err, &cerr) {
		return NetworkError
	}
	switch cerr.Kind {
	case cldnnerr.InvalidArgument:
		return InvalidArg
	case cldnnerr.ResourceExhausted:
		return OutOfResources
	case cldnnerr.DeviceError, cldnnerr.CompileError:
		return DeviceError
	case cldnnerr.UnsupportedConfiguration:
		return Unsupported
	case cldnnerr.NotImplemented:
		return Unsupported
	case cldnnerr.NetworkNotImplemented:
		return NetworkNotImplemented
	default:
		return NetworkError
	}
}

var lastError atomic.Value // string

func setLastError(msg string) { lastError.Store(msg) }

// LastError returns the most recently recorded failure's diagnostic
// message, or "" if none has been recorded yet. Spec.md §6 describes this
// as thread-local; since every caller-visible operation here already runs
// single-threaded with respect to a given Network, a single
// atomic slot is sufficient and avoids faking goroutine-local storage Go
// has no native support for.
func LastError() string {
	v, _ := lastError.Load().(string)
	return v
}

// Kind identifies which internal type a Handle wraps.
type Kind int

const (
	KindContext Kind = iota
	KindEngine
	KindTopology
	KindProgram
	KindNetwork
	KindEvent
	KindMemory
)

// Handle is a reference-counted, opaque wrapper around one internal
// runtime object. Handle.ID is stable for the handle's lifetime and is
// the only thing an embedder needs to hold onto.
type Handle struct {
	kind Kind
	id   xid.ID

	mu       sync.Mutex
	refCount int
	value    interface{}
}

func newHandle(kind Kind, value interface{}) *Handle {
	return &Handle{kind: kind, id: xid.New(), refCount: 1, value: value}
}

// ID returns the handle's stable opaque identifier.
func (h *Handle) ID() string { return h.id.String() }

// Kind returns which internal type this handle wraps.
func (h *Handle) Kind() Kind { return h.kind }

// Retain increments the handle's reference count.
func (h *Handle) Retain() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refCount++
}

// Release decrements the reference count and drops the wrapped value once
// it reaches zero, returning true the call that did so.
func (h *Handle) Release() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refCount--
	if h.refCount <= 0 {
		h.value = nil
		return true
	}
	return false
}

var errReleased = cldnnerr.New(cldnnerr.InvalidArgument, "", "handle has already been released")

func wrongKind(want, got Kind) error {
	return cldnnerr.New(cldnnerr.InvalidArgument, "",
		"handle kind mismatch: expected "+kindName(want)+", got "+kindName(got))
}

func kindName(k Kind) string {
	switch k {
	case KindContext:
		return "Context"
	case KindEngine:
		return "Engine"
	case KindTopology:
		return "Topology"
	case KindProgram:
		return "Program"
	case KindNetwork:
		return "Network"
	case KindEvent:
		return "Event"
	case KindMemory:
		return "Memory"
	default:
		return "Unknown"
	}
}

// NewContextHandle wraps a device.Context.
func NewContextHandle(ctx device.Context) *Handle { return newHandle(KindContext, ctx) }

// NewEngineHandle wraps an *engine.Engine.
func NewEngineHandle(e *engine.Engine) *Handle { return newHandle(KindEngine, e) }

// NewTopologyHandle wraps a *topology.Topology.
func NewTopologyHandle(t *topology.Topology) *Handle { return newHandle(KindTopology, t) }

// NewProgramHandle wraps a *program.Program.
func NewProgramHandle(p *program.Program) *Handle { return newHandle(KindProgram, p) }

// NewNetworkHandle wraps a *network.Network.
func NewNetworkHandle(n *network.Network) *Handle { return newHandle(KindNetwork, n) }

// NewEventHandle wraps a device.Event.
func NewEventHandle(e device.Event) *Handle { return newHandle(KindEvent, e) }

// NewMemoryHandle wraps a *tensor.Memory.
func NewMemoryHandle(m *tensor.Memory) *Handle { return newHandle(KindMemory, m) }

// Context unwraps h as a device.Context.
func (h *Handle) Context() (device.Context, error) {
	v, err := h.unwrap(KindContext)
	if err != nil {
		return nil, err
	}
	return v.(device.Context), nil
}

// Engine unwraps h as an *engine.Engine.
func (h *Handle) Engine() (*engine.Engine, error) {
	v, err := h.unwrap(KindEngine)
	if err != nil {
		return nil, err
	}
	return v.(*engine.Engine), nil
}

// Topology unwraps h as a *topology.Topology.
func (h *Handle) Topology() (*topology.Topology, error) {
	v, err := h.unwrap(KindTopology)
	if err != nil {
		return nil, err
	}
	return v.(*topology.Topology), nil
}

// Program unwraps h as a *program.Program.
func (h *Handle) Program() (*program.Program, error) {
	v, err := h.unwrap(KindProgram)
	if err != nil {
		return nil, err
	}
	return v.(*program.Program), nil
}

// Network unwraps h as a *network.Network.
func (h *Handle) Network() (*network.Network, error) {
	v, err := h.unwrap(KindNetwork)
	if err != nil {
		return nil, err
	}
	return v.(*network.Network), nil
}

// Event unwraps h as a device.Event.
func (h *Handle) Event() (device.Event, error) {
	v, err := h.unwrap(KindEvent)
	if err != nil {
		return nil, err
	}
	return v.(device.Event), nil
}

// Memory unwraps h as a *tensor.Memory.
func (h *Handle) Memory() (*tensor.Memory, error) {
	v, err := h.unwrap(KindMemory)
	if err != nil {
		return nil, err
	}
	return v.(*tensor.Memory), nil
}

func (h *Handle) unwrap(want Kind) (interface{}, error) {
	if h.kind != want {
		return nil, wrongKind(want, h.kind)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.value == nil {
		return nil, errReleased
	}
	return h.value, nil
}
