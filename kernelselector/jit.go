// Package kernelselector implements the JIT constant model and the
// candidate-kernel selection policy: translating a
// primitive's lowered parameters plus the target device's capabilities into
// a concrete kernel source plus a `#define` preamble.
package kernelselector

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cldnngo/cldnn/tensor"
)

// Definition is one "#define NAME VALUE" pair, preserving emission order.
type Definition struct {
	Name  string
	Value string
}

// JitConstant is one named compile-time constant, expandable to one or more
// preprocessor definitions. Grounded on original_source's jit_constant
// class hierarchy (jitter.h): simple/vector/padding/memory/memories, unified
// here behind a single interface instead of a shared_ptr-of-base hierarchy.
type JitConstant interface {
	Definitions() []Definition
}

// Simple is a single scalar "#define NAME VALUE" (jitter.h's
// simple_jit_constant).
type Simple struct {
	Name  string
	Value string
}

func (s Simple) Definitions() []Definition {
	return []Definition{{Name: s.Name, Value: s.Value}}
}

// MakeSimple formats v the way to_code_string<T> does: floats/float64s get a
// decimal literal suitable for an OpenCL-style kernel source, everything
// else via its natural string form.
func MakeSimple(name string, v interface{}) Simple {
	switch val := v.(type) {
	case float32:
		return Simple{Name: name, Value: formatFloat(float64(val)) + "f"}
	case float64:
		return Simple{Name: name, Value: formatFloat(val)}
	case string:
		return Simple{Name: name, Value: val}
	default:
		return Simple{Name: name, Value: fmt.Sprintf("%v", val)}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Vector expands a tensor shape into BATCH_NUM/FEATURE_NUM/SIZE_X/SIZE_Y
// definitions (jitter.h's vector_jit_constant), one constant family per
// tensor rather than per scalar.
type Vector struct {
	Name  string
	Batch int
	Feature int
	Y, X  int
}

func (v Vector) Definitions() []Definition {
	return []Definition{
		{Name: v.Name + "_BATCH_NUM", Value: strconv.Itoa(v.Batch)},
		{Name: v.Name + "_FEATURE_NUM", Value: strconv.Itoa(v.Feature)},
		{Name: v.Name + "_SIZE_Y", Value: strconv.Itoa(v.Y)},
		{Name: v.Name + "_SIZE_X", Value: strconv.Itoa(v.X)},
	}
}

// VectorFromTensor builds a Vector constant describing t's logical shape.
func VectorFromTensor(name string, t tensor.Tensor) Vector {
	return Vector{Name: name, Batch: t.Batch(), Feature: t.Feature(), Y: t.Y(), X: t.X()}
}

// Padding expands a tensor's lower/upper output padding into
// NAME_LOWER_SIZE_*/NAME_UPPER_SIZE_* definitions (jitter.h's
// padding_jit_constant).
type Padding struct {
	Name   string
	Layout tensor.Layout
}

func (p Padding) Definitions() []Definition {
	lower := Vector{Name: p.Name + "_LOWER",
		Batch:   p.Layout.Dims.Pad[tensor.AxisBatch].Before,
		Feature: p.Layout.Dims.Pad[tensor.AxisFeature].Before,
		Y:       p.Layout.Dims.Pad[tensor.AxisY].Before,
		X:       p.Layout.Dims.Pad[tensor.AxisX].Before,
	}
	upper := Vector{Name: p.Name + "_UPPER",
		Batch:   p.Layout.Dims.Pad[tensor.AxisBatch].After,
		Feature: p.Layout.Dims.Pad[tensor.AxisFeature].After,
		Y:       p.Layout.Dims.Pad[tensor.AxisY].After,
		X:       p.Layout.Dims.Pad[tensor.AxisX].After,
	}
	return append(lower.Definitions(), upper.Definitions()...)
}

// Memory embeds a constant's element count alongside its shape, for kernels
// that inline a small constant buffer directly into the source (jitter.h's
// memory_jit_constant): NAME_BATCH_NUM.. plus a NAME_LENGTH convenience.
type Memory struct {
	Name   string
	Shape  tensor.Tensor
	Length int
}

func (m Memory) Definitions() []Definition {
	defs := VectorFromTensor(m.Name, m.Shape).Definitions()
	return append(defs, Definition{Name: m.Name + "_LENGTH", Value: strconv.Itoa(m.Length)})
}

// Table aggregates an ordered set of JitConstants into one flattened
// definition list, mirroring jitter.h's jit_constants aggregator.
type Table struct {
	constants []JitConstant
}

// NewTable builds a Table from an initial constant set.
func NewTable(constants ...JitConstant) *Table {
	t := &Table{}
	t.constants = append(t.constants, constants...)
	return t
}

// Add appends one more constant to the table.
func (t *Table) Add(c JitConstant) {
	t.constants = append(t.constants, c)
}

// Definitions flattens every constant's definitions, in insertion order.
func (t *Table) Definitions() []Definition {
	defs := make([]Definition, 0, len(t.constants)*4)
	for _, c := range t.constants {
		defs = append(defs, c.Definitions()...)
	}
	return defs
}

// Preamble renders the table as a block of "#define NAME VALUE" lines ready
// to prepend to a kernel source, sorted by name for reproducible output.
func (t *Table) Preamble() string {
	defs := t.Definitions()
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	var b strings.Builder
	for _, d := range defs {
		b.WriteString("#define ")
		b.WriteString(d.Name)
		b.WriteByte(' ')
		b.WriteString(d.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
