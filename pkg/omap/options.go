package omap

import (
	"reflect"

	"github.com/joshuapare/ordkit/pkg/keycmp"
)

// Options controls Map construction. The zero value is valid.
type Options[K comparable, V any] struct {
	// Comparer is the key equality strategy.
	// If nil, keys use native (ordinal) equality.
	Comparer keycmp.Comparer[K]

	// Capacity preallocates room for this many entries.
	// Values <= 0 mean no preallocation.
	Capacity int

	// ValueEqual is used by ContainsValue.
	// If nil, reflect.DeepEqual is used.
	ValueEqual func(a, b V) bool
}

func defaultValueEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}
