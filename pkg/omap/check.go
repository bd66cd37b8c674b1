package omap

import "fmt"

// Check verifies that the entry sequence and the key index agree:
//
//   - both hold the same number of entries
//   - every indexed position is in range and used once
//   - every indexed key addresses an entry with an equal key
//   - every entry's key is indexed at that entry's position
//
// It returns the first violation as a *ValidationError wrapping ErrCorrupt,
// or nil. Check is O(n) and meant for tests and debugging.
func (m *Map[K, V]) Check() error {
	m.lazyInit()
	entries := m.entries.Entries()
	n := len(entries)

	if got := m.index.Len(); got != n {
		return &ValidationError{
			Type:     "Count",
			Message:  fmt.Sprintf("sequence holds %d entries, index holds %d keys", n, got),
			Position: -1,
			Details:  map[string]any{"sequence": n, "index": got},
		}
	}

	seen := make([]bool, n)
	var verr *ValidationError
	m.index.Each(func(canonical K, pos int) bool {
		switch {
		case pos < 0 || pos >= n:
			verr = &ValidationError{
				Type:     "Position",
				Message:  fmt.Sprintf("key %v indexed at %d, outside [0, %d)", canonical, pos, n),
				Position: pos,
			}
		case seen[pos]:
			verr = &ValidationError{
				Type:     "Position",
				Message:  fmt.Sprintf("position used by more than one key (again by %v)", canonical),
				Position: pos,
			}
		case m.index.Canonical(entries[pos].Key) != canonical:
			verr = &ValidationError{
				Type:     "Key",
				Message:  fmt.Sprintf("index maps %v here but the entry holds %v", canonical, entries[pos].Key),
				Position: pos,
				Details:  map[string]any{"indexed": canonical, "stored": entries[pos].Key},
			}
		default:
			seen[pos] = true
			return true
		}
		return false
	})
	if verr != nil {
		return verr
	}

	for i, e := range entries {
		if pos, ok := m.index.Lookup(e.Key); !ok || pos != i {
			return &ValidationError{
				Type:     "Key",
				Message:  fmt.Sprintf("entry key %v is indexed at %d (found=%v)", e.Key, pos, ok),
				Position: i,
			}
		}
	}
	return nil
}
