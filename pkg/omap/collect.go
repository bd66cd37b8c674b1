package omap

import "iter"

// Collect builds a Map from the pairs of seq in order.
//
// On a duplicate key it returns the map built so far together with an error
// wrapping ErrDuplicateKey.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) (*Map[K, V], error) {
	return CollectWith(seq, Options[K, V]{})
}

// CollectWith is Collect with construction options.
func CollectWith[K comparable, V any](seq iter.Seq2[K, V], opts Options[K, V]) (*Map[K, V], error) {
	if seq == nil {
		return nil, invalidArgument("source sequence")
	}
	m := NewWithOptions(opts)
	return m, m.AddRange(seq)
}

// FromSeq builds a Map whose values are the elements of src, keyed by key(s).
//
//	users, err := omap.FromSeq(slices.Values(list), func(u User) string { return u.Name })
//
// On a duplicate key it returns the map built so far together with an error
// wrapping ErrDuplicateKey.
func FromSeq[S any, K comparable](src iter.Seq[S], key func(S) K) (*Map[K, S], error) {
	return FromSeqWith(src, key, identity[S], Options[K, S]{})
}

// FromSeqFunc builds a Map of key(s) -> value(s) for each element s of src.
func FromSeqFunc[S any, K comparable, V any](src iter.Seq[S], key func(S) K, value func(S) V) (*Map[K, V], error) {
	return FromSeqWith(src, key, value, Options[K, V]{})
}

// FromSeqWith is FromSeqFunc with construction options, typically to supply
// a key comparer.
func FromSeqWith[S any, K comparable, V any](src iter.Seq[S], key func(S) K, value func(S) V, opts Options[K, V]) (*Map[K, V], error) {
	switch {
	case src == nil:
		return nil, invalidArgument("source sequence")
	case key == nil:
		return nil, invalidArgument("key selector")
	case value == nil:
		return nil, invalidArgument("value selector")
	}

	m := NewWithOptions(opts)
	for s := range src {
		if err := m.Add(key(s), value(s)); err != nil {
			return m, err
		}
	}
	return m, nil
}

func identity[S any](s S) S { return s }
