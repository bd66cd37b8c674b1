package kvtext

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// SectionOpen marks the start of a section header.
	SectionOpen = "["

	// SectionClose marks the end of a section header.
	SectionClose = "]"

	// Assignment separates a name from its value.
	Assignment = "="

	// DefaultNamePrefix marks the default (empty-name) value: @=value.
	DefaultNamePrefix = "@="

	// CommentPrefix and HashCommentPrefix mark comment lines.
	CommentPrefix     = ";"
	HashCommentPrefix = "#"

	// ============================================================================
	// Quoting
	// ============================================================================

	// Quote delimits quoted names and values.
	Quote = "\""

	// Backslash escapes a quote or another backslash inside quotes.
	Backslash = "\\"

	// EscapedQuote is the escaped double-quote sequence.
	EscapedQuote = "\\\""

	// EscapedBackslash is the escaped backslash sequence.
	EscapedBackslash = "\\\\"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CRLF is the Windows line ending.
	CRLF = "\r\n"

	// LF is the Unix line ending.
	LF = "\n"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is UTF-8; a UTF-8 or UTF-16 BOM on input overrides it.
	EncodingUTF8 = "utf-8"

	// EncodingUTF16LE is UTF-16 little-endian. Output carries a BOM.
	EncodingUTF16LE = "utf-16le"

	// EncodingWindows1252 is the Windows Latin-1 code page.
	EncodingWindows1252 = "windows-1252"

	// ============================================================================
	// Scanner Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial line buffer size.
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the longest accepted line.
	ScannerMaxLineSize = 1024 * 1024 // 1MB
)
