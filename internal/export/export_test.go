package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adey/inkwell/internal/writer"
)

func TestFilenameSanitizes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Climate Change":        "Climate-Change.txt",
		"a/b\\c:d*e?f\"g<h>i|j": "abcdefghij.txt",
		"  trimmed  ":           "trimmed.txt",
		"":                      "generated.txt",
		"...":                   "generated.txt",
	}
	for in, want := range cases {
		require.Equal(t, want, Filename(in, ".txt"), "topic %q", in)
	}
}

func TestFilenameBoundsPrefix(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 200)
	name := Filename(long, ".txt")
	require.Equal(t, filenamePrefixLen+len(".txt"), len(name))
	require.NotContains(t, name, string(os.PathSeparator))
}

func TestWriteTextRoundTrip(t *testing.T) {
	t.Parallel()

	body := "First paragraph.\n\nSecond paragraph with unicode: résumé ☀\n"
	dir := t.TempDir()

	path, err := WriteText(dir, "Round Trip", body)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "Round-Trip.txt"), path)

	read, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte(body), read, "export must be byte-identical")
}

func TestWritePDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	payload := []byte("%PDF-1.4 fake document")

	path, err := WritePDF(dir, "Embedded Doc", payload)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".pdf"))

	read, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, payload, read)
}

func TestRenderPrintable(t *testing.T) {
	t.Parallel()

	doc, err := RenderPrintable(Printable{
		Topic:       "Climate Change",
		LengthLabel: "Medium",
		Tone:        writer.ToneAcademic,
		Result: writer.GenerationResult{
			Body:      "First paragraph of the essay.\n\nSecond paragraph, distinct.",
			WordCount: 650,
			Sources:   []string{"Reference Source 1", "Reference Source 2"},
		},
	})
	require.NoError(t, err)

	html := string(doc)
	require.Contains(t, html, "<h1>Climate Change</h1>")
	require.Contains(t, html, "650 words · Medium · academic")
	// paragraph breaks preserved as separate <p> blocks
	require.Contains(t, html, "<p>First paragraph of the essay.</p>")
	require.Contains(t, html, "<p>Second paragraph, distinct.</p>")
	require.Contains(t, html, "<ol class=\"sources\">")
	require.Contains(t, html, "<li>Reference Source 1</li>")
}

func TestRenderPrintableNoSources(t *testing.T) {
	t.Parallel()

	doc, err := RenderPrintable(Printable{
		Topic:  "No Sources",
		Result: writer.GenerationResult{Body: "Body."},
	})
	require.NoError(t, err)
	require.NotContains(t, string(doc), "<h2>Sources</h2>")
}

func TestWritePrintablePrefersEmbeddedPDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := WritePrintable(dir, Printable{
		Topic:  "Embedded",
		Result: writer.GenerationResult{Body: "ignored", PDF: []byte("%PDF-1.4 x")},
	}, nil)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".pdf"))

	read, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 x"), read)
}
