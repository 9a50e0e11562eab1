package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/adey/inkwell/internal/writer"
)

// Printable holds everything the document template needs.
type Printable struct {
	Topic       string
	LengthLabel string
	Tone        writer.Tone
	Result      writer.GenerationResult
}

var docTemplate = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Topic}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; max-width: 42em; margin: 2em auto; color: #1f2933; }
h1 { font-size: 1.6em; margin-bottom: 0.2em; }
.meta { color: #6b7280; font-size: 0.85em; margin-bottom: 1.6em; }
p { line-height: 1.6; }
ol.sources { font-size: 0.9em; color: #4b5563; }
@media print { body { margin: 0.5in; } }
</style>
</head>
<body>
<h1>{{.Topic}}</h1>
<p class="meta">{{.Words}} words · {{.Length}} · {{.Tone}}</p>
{{.Body}}
{{if .Sources}}<h2>Sources</h2>
<ol class="sources">{{range .Sources}}<li>{{.}}</li>{{end}}</ol>{{end}}
</body>
</html>
`))

// RenderPrintable builds a self-contained HTML document for print-to-PDF.
// The body is run through goldmark so markdown from the service renders as
// structure and plain prose with blank lines keeps its paragraph breaks.
func RenderPrintable(p Printable) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(p.Result.Body), &body); err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}
	var out bytes.Buffer
	err := docTemplate.Execute(&out, struct {
		Topic   string
		Words   int
		Length  string
		Tone    writer.Tone
		Body    template.HTML
		Sources []string
	}{
		Topic:   p.Topic,
		Words:   p.Result.WordCount,
		Length:  p.LengthLabel,
		Tone:    p.Tone,
		Body:    template.HTML(body.String()),
		Sources: p.Result.Sources,
	})
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return out.Bytes(), nil
}

// WritePrintable saves the document and hands it to the platform opener for
// print-to-PDF. When the service already supplied an embedded PDF, that is
// saved directly instead of re-rendering. A missing opener is a logged
// no-op, not an error.
func WritePrintable(dir string, p Printable, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(p.Result.PDF) > 0 {
		return WritePDF(dir, p.Topic, p.Result.PDF)
	}

	doc, err := RenderPrintable(p)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, Filename(p.Topic, ".html"))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("write printable export: %w", err)
	}

	if err := openDocument(path); err != nil {
		logger.Info("no print surface available", zap.String("path", path), zap.Error(err))
	}
	return path, nil
}

func openDocument(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
