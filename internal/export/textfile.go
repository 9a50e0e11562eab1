package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const filenamePrefixLen = 40

// Filename derives a safe base name from the topic: bounded prefix,
// path-unsafe characters stripped, whitespace collapsed to dashes.
func Filename(topic, ext string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(topic) {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|' || r == 0:
			// skip
		case r == ' ' || r == '\t' || r == '\n':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	name := strings.Trim(b.String(), "-.")
	runes := []rune(name)
	if len(runes) > filenamePrefixLen {
		name = string(runes[:filenamePrefixLen])
	}
	if name == "" {
		name = "generated"
	}
	return name + ext
}

// WriteText saves the generated text byte-identically as <topic>.txt in dir
// and returns the written path.
func WriteText(dir, topic, body string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, Filename(topic, ".txt"))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write text export: %w", err)
	}
	return path, nil
}

// WritePDF saves an embedded document returned by the service.
func WritePDF(dir, topic string, pdf []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, Filename(topic, ".pdf"))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write pdf export: %w", err)
	}
	return path, nil
}
