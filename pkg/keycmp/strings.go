package keycmp

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// A cases.Caser keeps transform state between calls, so each goroutine
// borrows its own from the pool.
var folderPool = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

func fold(s string) string {
	c := folderPool.Get().(*cases.Caser)
	out := c.String(s)
	folderPool.Put(c)
	return out
}

type caseFold struct{}

func (caseFold) Canonical(key string) string { return fold(key) }
func (caseFold) String() string              { return "case-insensitive" }

// CaseInsensitive returns a Comparer that applies Unicode case folding.
//
// Folding is locale independent, so "Abc", "ABC" and "abc" are equal and so
// are "ΣΑΣ" and "σας".
func CaseInsensitive() Comparer[string] {
	return caseFold{}
}

type asciiLower struct{}

func (asciiLower) Canonical(key string) string { return strings.ToLower(key) }
func (asciiLower) String() string              { return "lowercase" }

// ASCIICaseInsensitive returns a Comparer that lowercases keys with
// strings.ToLower. It is cheaper than CaseInsensitive and matches it for ASCII
// keys, but does not handle special folds such as the final sigma.
func ASCIICaseInsensitive() Comparer[string] {
	return asciiLower{}
}

type nfc struct{}

func (nfc) Canonical(key string) string { return norm.NFC.String(key) }
func (nfc) String() string              { return "nfc" }

// Normalized returns a Comparer that treats canonically equivalent Unicode
// strings as equal (for example "é" as one code point or as "e" plus a
// combining acute accent).
func Normalized() Comparer[string] {
	return nfc{}
}

type nfcFold struct{}

func (nfcFold) Canonical(key string) string { return fold(norm.NFC.String(key)) }
func (nfcFold) String() string              { return "nfc-case-insensitive" }

// NormalizedCaseInsensitive combines Normalized and CaseInsensitive.
func NormalizedCaseInsensitive() Comparer[string] {
	return nfcFold{}
}

// ByName returns the string Comparer registered under name. Accepted names
// are "ordinal", "case-insensitive", "lowercase", "nfc" and
// "nfc-case-insensitive".
func ByName(name string) (Comparer[string], bool) {
	switch name {
	case "", "ordinal":
		return Ordinal[string](), true
	case "case-insensitive", "ignore-case":
		return CaseInsensitive(), true
	case "lowercase":
		return ASCIICaseInsensitive(), true
	case "nfc":
		return Normalized(), true
	case "nfc-case-insensitive":
		return NormalizedCaseInsensitive(), true
	}
	return nil, false
}
