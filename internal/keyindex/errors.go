package keyindex

import "errors"

var (
	// ErrDuplicateKey indicates a key equal to an already mapped key.
	ErrDuplicateKey = errors.New("keyindex: duplicate key")

	// ErrInvalidKey indicates a key whose canonical form is not equal to itself.
	ErrInvalidKey = errors.New("keyindex: key not equal to itself")
)
