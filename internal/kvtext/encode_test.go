package kvtext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func encodeString(t *testing.T, doc *Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	return buf.String()
}

// flatten lists (section, name, value) triples in document order.
func flatten(doc *Document) [][3]string {
	var out [][3]string
	for sn, sec := range doc.All() {
		for k, v := range sec.All() {
			out = append(out, [3]string{sn, k, v})
		}
	}
	return out
}

func TestEncode(t *testing.T) {
	doc := NewDocument()
	EnsureSection(doc, "").Set("top", "level")
	server := EnsureSection(doc, "Server")
	server.Set("Host", "example.org")
	server.Set("", "default")
	server.Set("Port Number", " padded ")

	want := "top=level\n" +
		"\n[Server]\n" +
		"Host=example.org\n" +
		"@=default\n" +
		"Port Number=\" padded \"\n"
	require.Equal(t, want, encodeString(t, doc))
}

func TestEncode_UnnamedSectionNotFirst(t *testing.T) {
	doc := NewDocument()
	EnsureSection(doc, "A").Set("x", "1")
	EnsureSection(doc, "").Set("y", "2")

	out := encodeString(t, doc)
	require.Equal(t, "[A]\nx=1\n\n[]\ny=2\n", out)

	back, err := Parse(strings.NewReader(out), ParseOptions{Strict: true})
	require.NoError(t, err)
	require.Equal(t, []string{"A", ""}, back.KeyList())
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := NewDocument()
	sec := EnsureSection(doc, "Tricky")
	for _, kv := range [][2]string{
		{"a=b", "1"},
		{"@home", "2"},
		{"[bracket", "3"},
		{";semi", "4"},
		{"#hash", "5"},
		{" spaced ", "6"},
		{`"quoted"`, `"quoted value"`},
		{`back\slash`, `C:\dir\`},
		{"Zoë", "naïve"},
		{"empty", ""},
		{"", "default"},
		{"eq", "x=y"},
	} {
		require.NoError(t, sec.Add(kv[0], kv[1]))
	}
	EnsureSection(doc, " Spaced Section ").Set("k", "v")
	EnsureSection(doc, "a]b").Set("k", "v")

	out := encodeString(t, doc)
	back, err := Parse(strings.NewReader(out), ParseOptions{Strict: true})
	require.NoError(t, err, "output:\n%s", out)

	if diff := cmp.Diff(flatten(doc), flatten(back)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s\noutput:\n%s", diff, out)
	}
}

func TestEncode_PreservesCaseAndOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample), ParseOptions{})
	require.NoError(t, err)

	back, err := Parse(strings.NewReader(encodeString(t, doc)), ParseOptions{Strict: true})
	require.NoError(t, err)
	require.Equal(t, flatten(doc), flatten(back))
	require.Equal(t, doc.KeyList(), back.KeyList())
}

func TestEncodeWith_Encodings(t *testing.T) {
	doc := NewDocument()
	EnsureSection(doc, "Café").Set("clé", "valeur")

	for _, enc := range []string{EncodingUTF8, EncodingUTF16LE, EncodingWindows1252} {
		t.Run(enc, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeWith(&buf, doc, EncodeOptions{Encoding: enc, CRLF: true}))

			back, err := Parse(bytes.NewReader(buf.Bytes()), ParseOptions{Encoding: enc})
			require.NoError(t, err)
			v, ok := Lookup(back, "CAFÉ", "CLÉ")
			require.True(t, ok)
			require.Equal(t, "valeur", v)
		})
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeWith(&buf, doc, EncodeOptions{Encoding: EncodingWindows1252}))
	require.Equal(t, "[Caf\xe9]\ncl\xe9=valeur\n", buf.String())
}

func TestEncode_Errors(t *testing.T) {
	doc := NewDocument()
	EnsureSection(doc, "A").Set("multi", "line\nvalue")

	var buf bytes.Buffer
	require.ErrorIs(t, Encode(&buf, doc), ErrUnencodable)
	require.ErrorIs(t, EncodeWith(&buf, doc, EncodeOptions{Encoding: "ebcdic"}), ErrUnsupportedEncoding)

	doc = NewDocument()
	EnsureSection(doc, "A").Set("k", "日本")
	err := EncodeWith(&bytes.Buffer{}, doc, EncodeOptions{Encoding: EncodingWindows1252})
	require.Error(t, err, "windows-1252 cannot represent CJK text")
}
