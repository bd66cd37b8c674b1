// Package omap provides an ordered map: a key/value map that is also a
// positionally indexable sequence.
//
// # Overview
//
// A Map keeps two structures in step: an ordered sequence of entries, which
// owns order and positions, and a key index mapping each key to its current
// position. Every operation leaves both structures consistent:
//
//   - Len of the sequence equals Len of the index
//   - each indexed key addresses an entry holding an equal key
//   - indexed positions are exactly 0..Len()-1
//   - no two entries hold equal keys
//
// Check verifies these invariants and is intended for tests.
//
// # Usage Example
//
//	m := omap.New[string, int]()
//	_ = m.Add("a", 1)
//	_ = m.Add("b", 2)
//	_ = m.Insert(0, "x", 9) // x, a, b
//
//	v, err := m.Get("a")       // 1, nil
//	pos := m.IndexOf("b")      // 2
//	first, _ := m.ByIndex().Get(0) // 9
//
//	for k, v := range m.All() {
//	    fmt.Println(k, v)
//	}
//
// # Key Equality
//
// Keys are compared through a keycmp.Comparer supplied at construction
// (ordinal by default). The strategy governs Add, Insert, Get, Set, TryGet,
// ContainsKey, IndexOf and Remove uniformly:
//
//	m := omap.NewWithComparer[string, int](keycmp.CaseInsensitive())
//	_ = m.Add("Abc", 1)
//	m.ContainsKey("abc")  // true
//	err := m.Add("abc", 2) // errors.Is(err, omap.ErrDuplicateKey)
//
// The map stores the key exactly as it was first added.
//
// # Reads and Writes by Key
//
// Get requires the key to exist and returns ErrKeyNotFound otherwise. Set
// never fails: it replaces the value in place when the key exists and appends
// a new entry when it does not. TryGet reports absence with a boolean.
//
// # Positional Access
//
// ByIndex returns a Positions view that reads and replaces values by
// position. It never changes order or keys, so it never touches the key
// index. A Positions view is only valid while its Map is.
//
// # Error Handling
//
// Single-entry operations validate their arguments before the first mutation:
// a failed Add, Insert or RemoveAt leaves the map unchanged. Bulk operations
// (AddRange, Merge, the FromSeq helpers) add entries one at a time and stop
// at the first duplicate; entries added before it stay in the map.
//
// Errors wrap the package sentinels and are tested with errors.Is:
// ErrIndexOutOfRange, ErrDuplicateKey, ErrKeyNotFound, ErrInvalidArgument,
// ErrInsufficientCapacity and ErrCorrupt.
//
// # Performance Characteristics
//
//   - Add, Set, Get, TryGet, ContainsKey, IndexOf: O(1) expected
//   - Insert and Remove/RemoveAt at interior positions: O(n), every index
//     entry is renumbered
//   - RemoveAt(Len()-1): still O(n) for the index pass
//   - ContainsValue: O(n) scan
//
// Workloads that mostly append and read suit this structure; frequent interior
// inserts on large maps do not.
//
// # Iteration
//
// All, Keys, Values and Backward return lazy, restartable iterators in
// position order. Mutating the map while iterating is not supported.
// Entries, KeyList and ValueList return copies.
//
// # Thread Safety
//
// Map instances are not thread-safe. Callers must serialize access
// externally, including iteration concurrent with mutation.
package omap
