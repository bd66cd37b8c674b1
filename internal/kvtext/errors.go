package kvtext

import "errors"

var (
	// ErrSyntax indicates a line that is neither a header, a comment nor an
	// assignment.
	ErrSyntax = errors.New("kvtext: syntax error")

	// ErrDuplicateName indicates a name repeated within one section while
	// parsing in strict mode.
	ErrDuplicateName = errors.New("kvtext: duplicate name")

	// ErrUnsupportedEncoding indicates an unknown encoding name.
	ErrUnsupportedEncoding = errors.New("kvtext: unsupported encoding")

	// ErrUnencodable indicates a name or value that cannot be written on a
	// single line.
	ErrUnencodable = errors.New("kvtext: unencodable text")
)
