// Package keycmp provides key equality strategies for ordered maps.
//
// # Overview
//
// A Comparer maps a key to the canonical representative of its equivalence
// class. Two keys are equal under a Comparer when their canonical forms are
// equal under ==. Because canonical forms are ordinary comparable values, an
// index built on a Comparer stays a plain Go map with O(1) expected lookups.
//
// # Strategies
//
//   - Ordinal: native equality, the default
//   - CaseInsensitive: Unicode case folding ("Abc" == "aBC")
//   - ASCIICaseInsensitive: strings.ToLower, the registry-name convention
//   - Normalized: Unicode NFC, so composed and decomposed forms compare equal
//   - NormalizedCaseInsensitive: NFC followed by case folding
//   - Func: any caller-supplied canonicalization
//
// Callers keep the original key; only the index stores canonical forms.
//
// # Thread Safety
//
// All Comparers in this package are safe for concurrent use.
package keycmp

// Comparer is a key equality strategy.
//
// Canonical must be deterministic: equal keys must always map to the same
// canonical value, and Canonical(Canonical(k)) must equal Canonical(k).
// Canonical values must also be equal to themselves under ==; maps reject
// keys whose canonical form is not, such as a float NaN.
type Comparer[K comparable] interface {
	// Canonical returns the representative key of key's equivalence class.
	Canonical(key K) K
}

type ordinal[K comparable] struct{}

func (ordinal[K]) Canonical(key K) K { return key }

// Ordinal returns the native-equality Comparer.
func Ordinal[K comparable]() Comparer[K] {
	return ordinal[K]{}
}

// Func adapts a canonicalization function to a Comparer.
type Func[K comparable] func(key K) K

// Canonical implements Comparer.
func (f Func[K]) Canonical(key K) K { return f(key) }

// Equal reports whether a and b are equal under c.
// A nil Comparer means native equality.
func Equal[K comparable](c Comparer[K], a, b K) bool {
	if c == nil {
		return a == b
	}
	return c.Canonical(a) == c.Canonical(b)
}

// OrDefault returns c, or Ordinal when c is nil.
func OrDefault[K comparable](c Comparer[K]) Comparer[K] {
	if c == nil {
		return Ordinal[K]()
	}
	return c
}

// Name returns a short description of the strategy for diagnostics.
func Name[K comparable](c Comparer[K]) string {
	switch c.(type) {
	case nil, ordinal[K]:
		return "ordinal"
	case Func[K]:
		return "func"
	}
	if n, ok := c.(interface{ String() string }); ok {
		return n.String()
	}
	return "custom"
}
