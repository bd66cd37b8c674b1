package omap

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a position outside [0, Len()), or
	// outside [0, Len()] for Insert.
	ErrIndexOutOfRange = errors.New("omap: index out of range")

	// ErrDuplicateKey indicates an Add or Insert of a key that is already
	// present under the map's comparer.
	ErrDuplicateKey = errors.New("omap: duplicate key")

	// ErrKeyNotFound indicates a keyed read of an absent key.
	ErrKeyNotFound = errors.New("omap: key not found")

	// ErrInvalidArgument indicates a nil source, selector, map or buffer, a
	// key whose canonical form is not equal to itself, or an unbound view.
	ErrInvalidArgument = errors.New("omap: invalid argument")

	// ErrInsufficientCapacity indicates a copy destination too small for the map.
	ErrInsufficientCapacity = errors.New("omap: insufficient destination capacity")

	// ErrCorrupt indicates the sequence and the key index disagree.
	ErrCorrupt = errors.New("omap: sequence and key index out of sync")
)

func outOfRange(p, limit int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p, limit)
}

func duplicateKey[K comparable](key K, pos int) error {
	return fmt.Errorf("%w: %v (at position %d)", ErrDuplicateKey, key, pos)
}

func keyNotFound[K comparable](key K) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

func invalidKey[K comparable](key K) error {
	return fmt.Errorf("%w: key %v is not equal to itself", ErrInvalidArgument, key)
}

func invalidArgument(what string) error {
	return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, what)
}

// ValidationError describes a broken invariant found by Check.
type ValidationError struct {
	Type     string         // Invariant category, e.g. "Count" or "Position"
	Message  string         // Human-readable description
	Position int            // Sequence position involved (-1 if N/A)
	Details  map[string]any // Additional context
}

func (e *ValidationError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Type, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap makes every ValidationError match ErrCorrupt.
func (e *ValidationError) Unwrap() error {
	return ErrCorrupt
}
