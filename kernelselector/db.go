package kernelselector

import (
	"sync"

	"github.com/cldnngo/cldnn/cldnnerr"
)

// source is one named kernel implementation's body, keyed by its candidate
// name within a primitive's family.
type source struct {
	body string
}

// sourceDB is the process-wide immutable table of known kernel sources, one
// entry per (family, candidate) pair. Grounded on
// original_source/src/gpu/cache/primitive_db.h's primitive_db, which holds a
// multimap from primitive id to compiled source strings; here a family may
// register more than one candidate (e.g. "naive" and "blocked"), matching
// the multimap's one-to-many shape. This table is populated once at init
// time and never mutated afterward — no mutable globals.
type sourceDB struct {
	mu      sync.RWMutex
	entries map[string]map[string]source
}

var db = &sourceDB{entries: map[string]map[string]source{}}

// RegisterSource adds one named candidate's source body to family. Intended
// to be called from package-level init() functions only, before any
// selection takes place.
func RegisterSource(family, candidate, body string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.entries[family] == nil {
		db.entries[family] = map[string]source{}
	}
	db.entries[family][candidate] = source{body: body}
}

// Source returns the registered body for (family, candidate).
func Source(family, candidate string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fam, ok := db.entries[family]
	if !ok {
		return "", cldnnerr.New(cldnnerr.NotImplemented, family, "no kernel family registered")
	}
	s, ok := fam[candidate]
	if !ok {
		return "", cldnnerr.New(cldnnerr.NotImplemented, family, "no candidate \""+candidate+"\" registered")
	}
	return s.body, nil
}

// Candidates lists the candidate names registered for family, in no
// particular order.
func Candidates(family string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fam := db.entries[family]
	names := make([]string, 0, len(fam))
	for name := range fam {
		names = append(names, name)
	}
	return names
}
