package omap

// Positions reads and replaces values by position. It does not own the
// entries: it is a view of its Map and must not outlive it.
//
// Only ByIndex returns a bound view. The zero Positions has no map: Len
// reports 0 and every other method fails with ErrInvalidArgument.
//
// Positions never changes keys or order, so it never consults the key index.
type Positions[K comparable, V any] struct {
	m *Map[K, V]
}

func (p Positions[K, V]) bound() error {
	if p.m == nil {
		return invalidArgument("positions map")
	}
	return nil
}

// Len returns the number of positions.
func (p Positions[K, V]) Len() int {
	if p.m == nil {
		return 0
	}
	return p.m.entries.Len()
}

// Get returns the value at i.
func (p Positions[K, V]) Get(i int) (V, error) {
	e, err := p.Entry(i)
	return e.Value, err
}

// Set replaces the value at i. The key and position are unchanged.
func (p Positions[K, V]) Set(i int, v V) error {
	if err := p.bound(); err != nil {
		return err
	}
	if err := p.m.entries.SetValue(i, v); err != nil {
		return outOfRange(i, p.m.entries.Len())
	}
	return nil
}

// Key returns the key at i as it was added.
func (p Positions[K, V]) Key(i int) (K, error) {
	e, err := p.Entry(i)
	return e.Key, err
}

// Entry returns the entry at i.
func (p Positions[K, V]) Entry(i int) (Entry[K, V], error) {
	if err := p.bound(); err != nil {
		return Entry[K, V]{}, err
	}
	e, err := p.m.entries.At(i)
	if err != nil {
		return e, outOfRange(i, p.m.entries.Len())
	}
	return e, nil
}
