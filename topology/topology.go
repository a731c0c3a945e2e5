package topology

import "github.com/cldnngo/cldnn/cldnnerr"

// Topology is a mapping from primitive id to PrimitiveDescription; ids
// referenced as inputs must be defined in the same topology (checked lazily,
// at Build time, as each primitive's inputs are resolved, but Add rejects a
// duplicate id immediately and Build rejects unknown ids eagerly before any
// pass runs).
type Topology struct {
	order       []string
	primitives  map[string]PrimitiveDescription
}

// New returns an empty Topology.
func New() *Topology {
	return &Topology{primitives: make(map[string]PrimitiveDescription)}
}

// Add inserts desc into the topology. It fails with InvalidArgument if
// desc.ID duplicates an existing id.
func (t *Topology) Add(desc PrimitiveDescription) error {
	if desc.ID == "" {
		return cldnnerr.New(cldnnerr.InvalidArgument, desc.ID, "primitive id must not be empty")
	}
	if _, exists := t.primitives[desc.ID]; exists {
		return cldnnerr.New(cldnnerr.InvalidArgument, desc.ID, "duplicate primitive id")
	}
	t.primitives[desc.ID] = desc
	t.order = append(t.order, desc.ID)
	return nil
}

// Get returns the primitive with the given id.
func (t *Topology) Get(id string) (PrimitiveDescription, bool) {
	p, ok := t.primitives[id]
	return p, ok
}

// IDs returns primitive ids in insertion order.
func (t *Topology) IDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of primitives in the topology.
func (t *Topology) Len() int { return len(t.primitives) }

// Validate checks that every input id referenced by every primitive is
// defined in this topology. It returns an InvalidArgument naming the first
// offending primitive id found.
func (t *Topology) Validate() error {
	for _, id := range t.order {
		desc := t.primitives[id]
		for _, in := range desc.Inputs {
			if _, ok := t.primitives[in]; !ok {
				return cldnnerr.New(cldnnerr.InvalidArgument, id,
					"references unknown input id \""+in+"\"")
			}
		}
	}
	return nil
}
