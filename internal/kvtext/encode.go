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

// EncodeOptions controls EncodeWith.
type EncodeOptions struct {
	// Encoding names the output encoding. Empty means utf-8.
	Encoding string

	// CRLF ends lines with \r\n instead of \n.
	CRLF bool
}

// encoder returns the transformer that turns UTF-8 into the named encoding.
// A nil transformer means UTF-8 output.
func encoder(name string) (transform.Transformer, error) {
	switch strings.ToLower(name) {
	case "", EncodingUTF8, "utf8":
		return nil, nil
	case EncodingUTF16LE, "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder(), nil
	case EncodingWindows1252, "cp1252", "latin1":
		return charmap.Windows1252.NewEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// Encode writes doc to w as UTF-8 with \n line endings.
func Encode(w io.Writer, doc *Document) error {
	return EncodeWith(w, doc, EncodeOptions{})
}

// EncodeWith writes doc to w. Sections and names are written in order.
// The unnamed section is written without a header when it comes first, and
// as [] otherwise.
func EncodeWith(w io.Writer, doc *Document, opts EncodeOptions) error {
	enc, err := encoder(opts.Encoding)
	if err != nil {
		return err
	}
	var tw io.WriteCloser
	if enc != nil {
		tw = transform.NewWriter(w, enc)
		w = tw
	}

	bw := bufio.NewWriter(w)
	eol := LF
	if opts.CRLF {
		eol = CRLF
	}

	i := 0
	for name, sec := range doc.All() {
		if err := emitSection(bw, name, sec, i == 0, eol); err != nil {
			return err
		}
		i++
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
	}
	return nil
}

func emitSection(w *bufio.Writer, name string, sec *Section, first bool, eol string) error {
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: section name %q", ErrUnencodable, name)
	}
	if !first {
		w.WriteString(eol)
	}
	if name != "" || !first {
		w.WriteString(SectionOpen + name + SectionClose + eol)
	}
	if sec == nil {
		return nil
	}
	for k, v := range sec.All() {
		if strings.ContainsAny(k, "\r\n") || strings.ContainsAny(v, "\r\n") {
			return fmt.Errorf("%w: [%s] %q", ErrUnencodable, name, k)
		}
		w.WriteString(formatName(k))
		w.WriteString(Assignment)
		w.WriteString(formatValue(v))
		w.WriteString(eol)
	}
	return nil
}

// formatName writes @ for the default name, the bare name when it reads back
// unchanged, and a quoted name otherwise.
func formatName(name string) string {
	if name == "" {
		return "@"
	}
	if needsQuoting(name) || strings.Contains(name, Assignment) ||
		strings.HasPrefix(name, "@") || strings.HasPrefix(name, SectionOpen) ||
		strings.HasPrefix(name, CommentPrefix) || strings.HasPrefix(name, HashCommentPrefix) {
		return quote(name)
	}
	return name
}

func formatValue(v string) string {
	if needsQuoting(v) {
		return quote(v)
	}
	return v
}

func needsQuoting(s string) bool {
	return s != strings.TrimSpace(s) || strings.HasPrefix(s, Quote)
}

func quote(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return Quote + s + Quote
}
