package omap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"

	"github.com/joshuapare/ordkit/internal/keyindex"
	"github.com/joshuapare/ordkit/internal/store"
	"github.com/joshuapare/ordkit/pkg/keycmp"
)

// Entry is a key/value pair held at a position.
type Entry[K comparable, V any] = store.Entry[K, V]

// Map is an insertion-ordered map with positional access.
//
// The zero value is an empty map with ordinal key equality.
type Map[K comparable, V any] struct {
	entries *store.Store[K, V]
	index   *keyindex.Index[K]
	valueEq func(a, b V) bool
}

// New creates an empty Map with ordinal key equality.
func New[K comparable, V any]() *Map[K, V] {
	return NewWithOptions(Options[K, V]{})
}

// NewWithComparer creates an empty Map using cmp for key equality.
// A nil cmp means ordinal equality.
func NewWithComparer[K comparable, V any](cmp keycmp.Comparer[K]) *Map[K, V] {
	return NewWithOptions(Options[K, V]{Comparer: cmp})
}

// NewWithOptions creates an empty Map configured by opts.
func NewWithOptions[K comparable, V any](opts Options[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		entries: store.New[K, V](opts.Capacity),
		index:   keyindex.New(opts.Comparer, opts.Capacity),
		valueEq: opts.ValueEqual,
	}
	if m.valueEq == nil {
		m.valueEq = defaultValueEqual[V]
	}
	return m
}

func (m *Map[K, V]) lazyInit() {
	if m.entries == nil {
		m.entries = store.New[K, V](0)
		m.index = keyindex.New[K](nil, 0)
		m.valueEq = defaultValueEqual[V]
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.lazyInit()
	return m.entries.Len()
}

// Comparer returns the key equality strategy.
func (m *Map[K, V]) Comparer() keycmp.Comparer[K] {
	m.lazyInit()
	return m.index.Comparer()
}

// Add appends key and value. It fails with ErrDuplicateKey, leaving the map
// unchanged, when an equal key is present, and with ErrInvalidArgument when
// key is not equal to itself under the comparer.
func (m *Map[K, V]) Add(key K, value V) error {
	m.lazyInit()
	if !m.index.Valid(key) {
		return invalidKey(key)
	}
	if pos, exists := m.index.Lookup(key); exists {
		return duplicateKey(key, pos)
	}
	m.push(key, value)
	return nil
}

// AddEntry is Add for an Entry.
func (m *Map[K, V]) AddEntry(e Entry[K, V]) error {
	return m.Add(e.Key, e.Value)
}

// push appends an entry for a key known to be absent.
func (m *Map[K, V]) push(key K, value V) {
	m.index.Put(key, m.entries.Len())
	m.entries.Append(Entry[K, V]{Key: key, Value: value})
}

// Insert places key and value at pos, moving the entries at pos and later
// one position up. pos may equal Len(), which appends.
//
// It fails with ErrIndexOutOfRange, ErrInvalidArgument or ErrDuplicateKey
// and leaves the map unchanged in every case.
func (m *Map[K, V]) Insert(pos int, key K, value V) error {
	m.lazyInit()
	n := m.entries.Len()
	if pos < 0 || pos > n {
		return outOfRange(pos, n+1)
	}
	if !m.index.Valid(key) {
		return invalidKey(key)
	}
	if prev, exists := m.index.Lookup(key); exists {
		return duplicateKey(key, prev)
	}
	if pos == n {
		m.push(key, value)
		return nil
	}
	if err := m.entries.InsertAt(pos, Entry[K, V]{Key: key, Value: value}); err != nil {
		return outOfRange(pos, n+1)
	}
	m.index.ShiftUpFrom(pos)
	m.index.Put(key, pos)
	return nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.TryGet(key)
	if !ok {
		return v, keyNotFound(key)
	}
	return v, nil
}

// TryGet returns the value stored under key and whether it was present.
func (m *Map[K, V]) TryGet(key K) (V, bool) {
	m.lazyInit()
	pos, ok := m.index.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries.Entries()[pos].Value, true
}

// Set stores value under key. An existing entry keeps its position and its
// original key; an absent key is appended. Like Add, it rejects a key that is
// not equal to itself with ErrInvalidArgument.
func (m *Map[K, V]) Set(key K, value V) error {
	m.lazyInit()
	if pos, ok := m.index.Lookup(key); ok {
		// pos comes from the index, so it is in range.
		_ = m.entries.SetValue(pos, value)
		return nil
	}
	if !m.index.Valid(key) {
		return invalidKey(key)
	}
	m.push(key, value)
	return nil
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	m.lazyInit()
	return m.index.Contains(key)
}

// IndexOf returns key's position, or -1 when key is absent.
func (m *Map[K, V]) IndexOf(key K) int {
	m.lazyInit()
	if pos, ok := m.index.Lookup(key); ok {
		return pos
	}
	return -1
}

// ContainsValue reports whether any entry holds a value equal to v under the
// map's value equality. O(n).
func (m *Map[K, V]) ContainsValue(v V) bool {
	m.lazyInit()
	return lo.ContainsBy(m.entries.Entries(), func(e Entry[K, V]) bool {
		return m.valueEq(e.Value, v)
	})
}

// Remove deletes key and reports whether it was present. Later entries move
// one position down.
func (m *Map[K, V]) Remove(key K) bool {
	m.lazyInit()
	pos, ok := m.index.Lookup(key)
	if !ok {
		return false
	}
	return m.RemoveAt(pos) == nil
}

// RemoveAt deletes the entry at pos. Later entries move one position down.
func (m *Map[K, V]) RemoveAt(pos int) error {
	m.lazyInit()
	if _, err := m.entries.RemoveAt(pos); err != nil {
		return outOfRange(pos, m.entries.Len())
	}
	m.index.ShiftDownFrom(pos)
	return nil
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.lazyInit()
	m.entries.Clear()
	m.index.Clear()
}

// AddRange adds every pair of seq in order. It stops at the first key that
// is already present and returns ErrDuplicateKey; pairs added before it stay
// in the map.
func (m *Map[K, V]) AddRange(seq iter.Seq2[K, V]) error {
	if seq == nil {
		return invalidArgument("source sequence")
	}
	m.lazyInit()
	for k, v := range seq {
		if err := m.Add(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Merge adds every entry of other in position order, with AddRange's
// duplicate policy.
func (m *Map[K, V]) Merge(other *Map[K, V]) error {
	if other == nil {
		return invalidArgument("source map")
	}
	return m.AddRange(other.All())
}

// ByIndex returns a view for reading and replacing values by position.
func (m *Map[K, V]) ByIndex() Positions[K, V] {
	m.lazyInit()
	return Positions[K, V]{m: m}
}

// String formats the map as omap.Map[k1:v1 k2:v2] in position order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("omap.Map[")
	for i, e := range m.Entries() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", e.Key, e.Value)
	}
	b.WriteByte(']')
	return b.String()
}
