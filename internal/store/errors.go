package store

import "errors"

// ErrOutOfRange indicates a position outside the valid range for the call.
var ErrOutOfRange = errors.New("store: position out of range")
