package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/adey/inkwell/internal/writer"
)

// Generator performs the single network call for one generation request.
type Generator interface {
	Submit(ctx context.Context, req writer.GenerationRequest) (writer.GenerationResult, error)
}

// PayloadShape selects the wire payload a backend expects.
type PayloadShape string

const (
	// ShapeWriter is the canonical multi-tool payload:
	// {"topic","length","tone","tool"}.
	ShapeWriter PayloadShape = "writer"
	// ShapeEssay targets the legacy single-tool backend:
	// {"topic","pdf","word_length"}.
	ShapeEssay PayloadShape = "essay"
)

const maxErrBody = 500

// HTTP is the real Generator. Single attempt, no retry; cancellation of the
// context aborts the call (the machine cancels superseded attempts).
type HTTP struct {
	BaseURL    string
	Path       string
	Shape      PayloadShape
	WantPDF    bool // essay shape only: ask the service for an embedded PDF
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewHTTP builds a client against baseURL with the given call timeout.
func NewHTTP(baseURL, path string, shape PayloadShape, timeout time.Duration, logger *zap.Logger) *HTTP {
	if path == "" {
		path = "/generate-essay"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTP{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Path:       path,
		Shape:      shape,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

type writerPayload struct {
	Topic  string `json:"topic"`
	Length string `json:"length"`
	Tone   string `json:"tone"`
	Tool   string `json:"tool"`
}

type essayPayload struct {
	Topic      string `json:"topic"`
	PDF        bool   `json:"pdf"`
	WordLength *int   `json:"word_length"`
}

type wireResponse struct {
	Content   string   `json:"content"`
	Essay     string   `json:"essay"`
	WordCount int      `json:"word_count"`
	ToolUsed  string   `json:"tool_used"`
	Sources   []string `json:"sources"`
	PDFBase64 string   `json:"pdf_base64"`
}

func (c *HTTP) payload(req writer.GenerationRequest) any {
	if c.Shape == ShapeEssay {
		var words *int
		if l, ok := writer.LengthByID(req.Tool, req.LengthID); ok {
			w := l.Words
			words = &w
		}
		return essayPayload{Topic: req.Topic, PDF: c.WantPDF, WordLength: words}
	}
	return writerPayload{
		Topic:  req.Topic,
		Length: req.LengthID,
		Tone:   string(req.Tone),
		Tool:   string(req.Tool),
	}
}

// Submit serializes the request, issues exactly one POST and normalizes the
// outcome. A missing body field yields an empty result body, not an error.
func (c *HTTP) Submit(ctx context.Context, req writer.GenerationRequest) (writer.GenerationResult, error) {
	body, err := json.Marshal(c.payload(req))
	if err != nil {
		return writer.GenerationResult{}, &writer.ServiceError{Kind: writer.Transport, Msg: fmt.Sprintf("encode request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+c.Path, bytes.NewReader(body))
	if err != nil {
		return writer.GenerationResult{}, &writer.ServiceError{Kind: writer.Transport, Msg: fmt.Sprintf("build request: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Logger.Warn("generation call failed",
			zap.String("request_id", req.ID), zap.Error(err))
		return writer.GenerationResult{}, &writer.ServiceError{Kind: writer.Transport, Msg: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return writer.GenerationResult{}, &writer.ServiceError{Kind: writer.Transport, Msg: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Warn("generation call rejected",
			zap.String("request_id", req.ID), zap.Int("status", resp.StatusCode))
		return writer.GenerationResult{}, &writer.ServiceError{
			Kind:   writer.HTTPStatus,
			Status: resp.StatusCode,
			Body:   truncate(string(raw), maxErrBody),
		}
	}

	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return writer.GenerationResult{}, &writer.ServiceError{Kind: writer.Transport, Msg: fmt.Sprintf("decode response: %v", err)}
	}

	out := writer.GenerationResult{
		Body:     wire.Content,
		Sources:  wire.Sources,
		ToolUsed: req.Tool,
	}
	if out.Body == "" {
		out.Body = wire.Essay
	}
	if wire.ToolUsed != "" {
		out.ToolUsed = writer.Tool(wire.ToolUsed)
	}
	out.WordCount = wire.WordCount
	if out.WordCount <= 0 {
		out.WordCount = writer.CountWords(out.Body)
	}
	if wire.PDFBase64 != "" {
		pdf, err := base64.StdEncoding.DecodeString(wire.PDFBase64)
		if err == nil {
			out.PDF = pdf
		} else {
			c.Logger.Warn("discarding undecodable pdf payload",
				zap.String("request_id", req.ID), zap.Error(err))
		}
	}

	c.Logger.Info("generation complete",
		zap.String("request_id", req.ID),
		zap.String("tool", string(req.Tool)),
		zap.Int("words", out.WordCount),
		zap.Duration("took", time.Since(start)))
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
