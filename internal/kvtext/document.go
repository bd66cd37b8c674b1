// Package kvtext reads and writes sectioned name=value text documents.
//
// A document looks like:
//
//	; comment
//	top=level
//
//	[Server]
//	Host=example.org
//	"Port Number"="8080"
//	@=default value
//
// Sections and the names inside them keep file order and compare
// case-insensitively, so [server] and [SERVER] address the same section.
// Names that appear before the first header belong to the unnamed section "".
package kvtext

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/joshuapare/ordkit/pkg/keycmp"
	"github.com/joshuapare/ordkit/pkg/omap"
)

// Section maps names to values in file order.
type Section = omap.Map[string, string]

// Document maps section names to sections in file order.
type Document = omap.Map[string, *Section]

// NewDocument returns an empty document.
func NewDocument() *Document {
	return omap.NewWithComparer[string, *Section](keycmp.CaseInsensitive())
}

// NewSection returns an empty section.
func NewSection() *Section {
	return omap.NewWithComparer[string, string](keycmp.CaseInsensitive())
}

// EnsureSection returns the section called name, appending an empty one
// when it is absent.
func EnsureSection(doc *Document, name string) *Section {
	if sec, ok := doc.TryGet(name); ok {
		return sec
	}
	sec := NewSection()
	// Folded strings always equal themselves, so Set cannot fail.
	_ = doc.Set(name, sec)
	return sec
}

// Lookup returns the value of name in section.
func Lookup(doc *Document, section, name string) (string, bool) {
	sec, ok := doc.TryGet(section)
	if !ok {
		return "", false
	}
	return sec.TryGet(name)
}

// Count returns the number of sections and the number of values across them.
func Count(doc *Document) (sections, values int) {
	return doc.Len(), lo.SumBy(doc.ValueList(), func(s *Section) int { return s.Len() })
}

// Merge appends the sections of src to dst. A section present in both has
// src's names added after dst's; it stops at the first name dst already holds
// and returns an error wrapping omap.ErrDuplicateKey.
func Merge(dst, src *Document) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: merge needs two documents", omap.ErrInvalidArgument)
	}
	for name, sec := range src.All() {
		if err := EnsureSection(dst, name).Merge(sec); err != nil {
			return fmt.Errorf("section [%s]: %w", name, err)
		}
	}
	return nil
}

// Verify checks the internal consistency of doc and each of its sections.
func Verify(doc *Document) error {
	if err := doc.Check(); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	for name, sec := range doc.All() {
		if sec == nil {
			return fmt.Errorf("section [%s]: %w", name, omap.ErrInvalidArgument)
		}
		if err := sec.Check(); err != nil {
			return fmt.Errorf("section [%s]: %w", name, err)
		}
	}
	return nil
}
