// Package primitivekind holds the per-primitive-kind operation table:
// calc_output_layout, build_kernel_params and can_be_optimized, keyed by
// topology.Kind. There is no per-kind pre-build fixup hook. This replaces per-kind virtual dispatch with a
// flat registry, generalizing the opcode switch in core/emu.go.
package primitivekind

import (
	"fmt"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

// Context is the pure-function input available to a kind's operations: the
// primitive's own description, its resolved input tensors (in Desc.Inputs
// order), and read-only access to sibling primitives (e.g. a convolution
// reading its weights' Data description by id).
type Context struct {
	Desc     topology.PrimitiveDescription
	Inputs   []tensor.Tensor
	Topology *topology.Topology
}

// InputTensor returns the i'th resolved input tensor, or an error if fewer
// than i+1 inputs are present.
func (c Context) InputTensor(i int) (tensor.Tensor, error) {
	if i >= len(c.Inputs) {
		return tensor.Tensor{}, cldnnerr.New(cldnnerr.InvalidArgument, c.Desc.ID,
			fmt.Sprintf("expected at least %d input(s)", i+1))
	}
	return c.Inputs[i], nil
}

// ConstantTensor resolves a sibling KindData primitive by id and returns its
// declared tensor shape/type, as needed by e.g. convolution to read its
// weights' dimensions without materializing the bytes.
func (c Context) ConstantTensor(id string) (tensor.Tensor, error) {
	if id == "" {
		return tensor.Tensor{}, cldnnerr.New(cldnnerr.InvalidArgument, c.Desc.ID, "missing required constant reference")
	}
	desc, ok := c.Topology.Get(id)
	if !ok {
		return tensor.Tensor{}, cldnnerr.New(cldnnerr.InvalidArgument, c.Desc.ID,
			"references unknown constant id \""+id+"\"")
	}
	if desc.Kind != topology.KindData {
		return tensor.Tensor{}, cldnnerr.New(cldnnerr.InvalidArgument, c.Desc.ID,
			"id \""+id+"\" is not a data constant")
	}
	dp := desc.Params.(topology.DataParams)
	return tensor.Tensor{Layout: dp.Layout, Type: dp.Type}, nil
}

// LoweredParams is the layout-neutral, kind-specific-field-preserving
// representation fed to the kernel selector: tensor shapes/dtypes plus the
// original kind-specific parameters, with no layout decisions baked in
// beyond what calc_output_layout already resolved.
type LoweredParams struct {
	Kind   topology.Kind
	ID     string
	Inputs []tensor.Tensor
	Output tensor.Tensor
	Desc   topology.PrimitiveDescription
}

// OpTable is the set of pure functions implementing one primitive kind.
type OpTable struct {
	// CalcOutputLayout computes the output tensor (shape + dtype + layout)
	// as a pure function of the primitive's dependencies' output layouts and
	// its own parameters.
	CalcOutputLayout func(ctx Context) (tensor.Tensor, error)

	// BuildKernelParams lowers ctx into the selector-facing representation.
	// Nil means "use the package-level default lowering" (most kinds).
	BuildKernelParams func(ctx Context, output tensor.Tensor) (LoweredParams, error)

	// CanBeOptimized reports whether, given ctx and the already-resolved
	// output layout, this node can alias its predecessor instead of running
	// a kernel. Nil means "never".
	CanBeOptimized func(ctx Context, output tensor.Tensor) bool
}

var registry = map[topology.Kind]OpTable{}

func register(k topology.Kind, t OpTable) {
	registry[k] = t
}

// Lookup returns the operation table for k, or ok=false if no table is
// registered (the NotImplemented case).
func Lookup(k topology.Kind) (OpTable, bool) {
	t, ok := registry[k]
	return t, ok
}

func defaultLower(ctx Context, output tensor.Tensor) (LoweredParams, error) {
	return LoweredParams{
		Kind:   ctx.Desc.Kind,
		ID:     ctx.Desc.ID,
		Inputs: ctx.Inputs,
		Output: output,
		Desc:   ctx.Desc,
	}, nil
}

// sameShape4D reports whether two tensors have identical logical b/f/y/x
// extents (used by eltwise/reorder-identity/crop-in-place checks).
func sameShape4D(a, b tensor.Tensor) bool {
	return a.Batch() == b.Batch() && a.Feature() == b.Feature() &&
		a.Y() == b.Y() && a.X() == b.X()
}
