package kernelselector

import (
	"sort"

	"github.com/cldnngo/cldnn/cldnnerr"
	"github.com/cldnngo/cldnn/primitivekind"
)

// Candidate is one concrete kernel implementation competing within a
// family (e.g. "softmax/ref" vs "softmax/opt_1_dim"). Grounded on
// original_source's per-family KernelBase subclasses (SoftmaxKernelRef,
// SoftmaxKernelOpt1Dim), attached to a family selector in registration
// order (softmax_kernel_selector.cpp's Attach<>() calls).
type Candidate interface {
	// Name identifies this candidate within its family; also the key it
	// was registered under via RegisterSource.
	Name() string

	// Supports reports whether this candidate can execute params at all
	// (e.g. a blocked-layout kernel that requires a specific DataLayout).
	Supports(params primitivekind.LoweredParams) bool

	// EstimateCost returns a lower-is-better cost estimate used to rank
	// supporting candidates against one another; ties break on
	// registration order.
	EstimateCost(params primitivekind.LoweredParams) float64
}

// Selection is the outcome of selecting a Candidate for one primitive: the
// chosen candidate's name, its compiled-kernel source, and the jit
// definitions to prepend before compilation.
type Selection struct {
	Family    string
	Candidate string
	Source    string
	Jit       *Table
}

// Family is the ordered set of candidates attached for one primitive
// family, plus the function building each candidate's jit constants.
type Family struct {
	name       string
	candidates []Candidate
	buildJit   func(primitivekind.LoweredParams, Candidate) *Table
}

var families = map[string]*Family{}

// NewFamily registers family under name with an empty candidate list and a
// jit-building function, returning it for Attach calls. Intended to be
// called once from a package init().
func NewFamily(name string, buildJit func(primitivekind.LoweredParams, Candidate) *Table) *Family {
	f := &Family{name: name, buildJit: buildJit}
	families[name] = f
	return f
}

// Attach appends c to the family's candidate list, in priority order:
// earlier attachments win cost ties.
func (f *Family) Attach(c Candidate) *Family {
	f.candidates = append(f.candidates, c)
	return f
}

// Select runs the supports → estimate-cost → tie-break policy over
// family's attached candidates and returns the winning Selection.
func Select(family string, params primitivekind.LoweredParams) (Selection, error) {
	f, ok := families[family]
	if !ok {
		return Selection{}, cldnnerr.New(cldnnerr.NotImplemented, params.ID, "no kernel family \""+family+"\" registered")
	}

	type scored struct {
		idx  int
		cost float64
		c    Candidate
	}
	var supporting []scored
	for i, c := range f.candidates {
		if c.Supports(params) {
			supporting = append(supporting, scored{idx: i, cost: c.EstimateCost(params), c: c})
		}
	}
	if len(supporting) == 0 {
		return Selection{}, cldnnerr.New(cldnnerr.UnsupportedConfiguration, params.ID,
			"no candidate in family \""+family+"\" supports this configuration")
	}

	sort.SliceStable(supporting, func(i, j int) bool {
		if supporting[i].cost != supporting[j].cost {
			return supporting[i].cost < supporting[j].cost
		}
		return supporting[i].idx < supporting[j].idx
	})
	winner := supporting[0].c

	src, err := Source(family, winner.Name())
	if err != nil {
		return Selection{}, err
	}

	jit := f.buildJit(params, winner)
	return Selection{Family: family, Candidate: winner.Name(), Source: src, Jit: jit}, nil
}
