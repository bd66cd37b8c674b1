package kvtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseOptions controls Parse.
type ParseOptions struct {
	// Encoding names the input encoding. Empty means utf-8.
	Encoding string

	// Strict rejects a name repeated within a section. Otherwise the later
	// value replaces the earlier one in place.
	Strict bool
}

// decoder returns the transformer that turns input in the named encoding
// into UTF-8.
func decoder(name string) (transform.Transformer, error) {
	switch strings.ToLower(name) {
	case "", EncodingUTF8, "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case EncodingUTF16LE, "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case EncodingWindows1252, "cp1252", "latin1":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// Parse reads a document from r.
//
// A header repeated later in the file reopens the earlier section; names
// added there go after the ones already in it.
func Parse(r io.Reader, opts ParseOptions) (*Document, error) {
	dec, err := decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(transform.NewReader(r, dec))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	doc := NewDocument()
	var (
		current     *Section
		currentName string
		lineNo      int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, CommentPrefix) || strings.HasPrefix(line, HashCommentPrefix) {
			continue
		}

		// Section: [Name]
		if strings.HasPrefix(line, SectionOpen) {
			if !strings.HasSuffix(line, SectionClose) {
				return nil, fmt.Errorf("%w: line %d: unterminated section header %q", ErrSyntax, lineNo, line)
			}
			currentName = strings.TrimSuffix(strings.TrimPrefix(line, SectionOpen), SectionClose)
			current = EnsureSection(doc, currentName)
			continue
		}

		name, value, err := parseAssignment(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrSyntax, lineNo, err.Error())
		}
		if current == nil {
			current = EnsureSection(doc, "")
		}
		if opts.Strict {
			if err := current.Add(name, value); err != nil {
				return nil, fmt.Errorf("%w: %q in section [%s] at line %d", ErrDuplicateName, name, currentName, lineNo)
			}
			continue
		}
		if err := current.Set(name, value); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return doc, nil
}

// parseAssignment splits one of
//
//	@=value
//	"quoted name"=value
//	name=value
//
// into its name and value.
func parseAssignment(line string) (name, value string, err error) {
	switch {
	case strings.HasPrefix(line, DefaultNamePrefix):
		return "", parseValue(line[len(DefaultNamePrefix):]), nil

	case strings.HasPrefix(line, Quote):
		end := findClosingQuote(line)
		if end == -1 {
			return "", "", fmt.Errorf("unterminated quoted name in %q", line)
		}
		rest := strings.TrimSpace(line[end+1:])
		if !strings.HasPrefix(rest, Assignment) {
			return "", "", fmt.Errorf("missing %q after quoted name in %q", Assignment, line)
		}
		return unescape(line[1:end]), parseValue(rest[len(Assignment):]), nil

	default:
		name, value, ok := strings.Cut(line, Assignment)
		if !ok {
			return "", "", fmt.Errorf("expected name=value, got %q", line)
		}
		return strings.TrimSpace(name), parseValue(value), nil
	}
}

// parseValue unquotes a value written as "...", and otherwise returns it
// trimmed.
func parseValue(raw string) string {
	v := strings.TrimSpace(raw)
	if len(v) >= 2 && strings.HasPrefix(v, Quote) && strings.HasSuffix(v, Quote) && findClosingQuote(v) == len(v)-1 {
		return unescape(v[1 : len(v)-1])
	}
	return v
}

// findClosingQuote returns the position of the quote closing the one at
// position 0, skipping quotes preceded by an odd number of backslashes.
// It returns -1 when there is none.
func findClosingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 1 && s[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return i
		}
	}
	return -1
}

// unescape resolves \\ and \" in one pass. Other backslashes are kept.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '"') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
