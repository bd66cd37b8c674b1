// Package keyindex maps keys to their positions in an ordered store.
//
// # Overview
//
// An Index records key -> position for every entry of an ordered store and
// must be renumbered whenever the store shifts entries. Keys are stored in the
// canonical form produced by a keycmp.Comparer, so "System" and "SYSTEM" share
// one slot under a case-insensitive strategy.
//
// # Renumbering
//
// ShiftUpFrom and ShiftDownFrom visit every mapping, O(n) regardless of where
// the shift happens. Each mapping is adjusted exactly once per pass: Go's map
// range yields every present key once, and the passes never add keys: they
// only rewrite values of existing keys or, in ShiftDownFrom, delete the key
// currently being visited. This holds only for canonical keys equal to
// themselves, so InsertNew rejects any other key and Put must not be given one.
//
// # Thread Safety
//
// Index instances are not thread-safe. Callers must synchronize access
// externally.
package keyindex

import (
	"fmt"

	"github.com/joshuapare/ordkit/pkg/keycmp"
)

const (
	// defaultCapacity is the map size hint used when none is given.
	defaultCapacity = 16

	// estimatedBytesPerEntry approximates Go map overhead plus one int value,
	// excluding the key itself.
	estimatedBytesPerEntry = 40
)

// Index is a key -> position mapping under a pluggable equality strategy.
type Index[K comparable] struct {
	cmp       keycmp.Comparer[K]
	positions map[K]int // canonical key → position
	shifts    int       // renumbering passes since creation
}

// Stats reports index metrics.
type Stats struct {
	Count       int    // Number of mapped keys
	ShiftPasses int    // Number of ShiftUpFrom/ShiftDownFrom passes performed
	BytesApprox int    // Approximate memory usage (best effort, keys excluded)
	Impl        string // Implementation name
}

// New creates an Index using cmp for key equality. A nil cmp means native
// equality. capacity is a size hint.
func New[K comparable](cmp keycmp.Comparer[K], capacity int) *Index[K] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Index[K]{
		cmp:       keycmp.OrDefault(cmp),
		positions: make(map[K]int, capacity),
	}
}

// Comparer returns the equality strategy.
func (x *Index[K]) Comparer() keycmp.Comparer[K] {
	return x.cmp
}

// Canonical returns key's canonical form under the index's strategy.
func (x *Index[K]) Canonical(key K) K {
	return x.cmp.Canonical(key)
}

// Equal reports whether a and b are the same key under the index's strategy.
func (x *Index[K]) Equal(a, b K) bool {
	return x.cmp.Canonical(a) == x.cmp.Canonical(b)
}

// Len returns the number of mapped keys.
func (x *Index[K]) Len() int {
	return len(x.positions)
}

// Valid reports whether key can be mapped: its canonical form must equal
// itself under ==. A NaN float fails.
func (x *Index[K]) Valid(key K) bool {
	ck := x.cmp.Canonical(key)
	return ck == ck
}

// InsertNew records key at pos. It fails with ErrDuplicateKey if an equal
// key is already present, or ErrInvalidKey if key is not Valid, leaving the
// index unchanged.
func (x *Index[K]) InsertNew(key K, pos int) error {
	ck := x.cmp.Canonical(key)
	if ck != ck {
		return fmt.Errorf("%w: %v", ErrInvalidKey, key)
	}
	if prev, exists := x.positions[ck]; exists {
		return fmt.Errorf("%w: %v (at position %d)", ErrDuplicateKey, key, prev)
	}
	x.positions[ck] = pos
	return nil
}

// Put records key at pos, replacing any mapping for an equal key. Callers
// that need duplicate detection use InsertNew or check Contains first, and
// must check Valid.
func (x *Index[K]) Put(key K, pos int) {
	x.positions[x.cmp.Canonical(key)] = pos
}

// Lookup returns key's position.
func (x *Index[K]) Lookup(key K) (int, bool) {
	pos, ok := x.positions[x.cmp.Canonical(key)]
	return pos, ok
}

// Contains reports whether key is mapped.
func (x *Index[K]) Contains(key K) bool {
	_, ok := x.positions[x.cmp.Canonical(key)]
	return ok
}

// Remove deletes key's mapping. Safe to call for absent keys.
// Positions of other keys are not adjusted; use ShiftDownFrom for that.
func (x *Index[K]) Remove(key K) {
	delete(x.positions, x.cmp.Canonical(key))
}

// ShiftUpFrom increments every position >= p. Call it after inserting into
// the store at p and before recording the inserted key.
func (x *Index[K]) ShiftUpFrom(p int) {
	x.shifts++
	for k, pos := range x.positions {
		if pos >= p {
			x.positions[k] = pos + 1
		}
	}
}

// ShiftDownFrom removes the mapping at exactly p and decrements every
// position > p. Call it after removing the store entry at p.
func (x *Index[K]) ShiftDownFrom(p int) {
	x.shifts++
	for k, pos := range x.positions {
		switch {
		case pos == p:
			delete(x.positions, k)
		case pos > p:
			x.positions[k] = pos - 1
		}
	}
}

// Clear removes all mappings.
func (x *Index[K]) Clear() {
	clear(x.positions)
}

// Each calls fn for every (canonical key, position) pair in unspecified
// order until fn returns false.
func (x *Index[K]) Each(fn func(canonical K, pos int) bool) {
	for k, pos := range x.positions {
		if !fn(k, pos) {
			return
		}
	}
}

// Stats returns index statistics.
func (x *Index[K]) Stats() Stats {
	return Stats{
		Count:       len(x.positions),
		ShiftPasses: x.shifts,
		BytesApprox: len(x.positions) * estimatedBytesPerEntry,
		Impl:        "MapIndex(" + keycmp.Name(x.cmp) + ")",
	}
}
