package writer

import "strings"

// GenerationResult is the normalized outcome of one successful call.
// The state machine owns it and replaces it wholesale on each success.
type GenerationResult struct {
	Body      string
	WordCount int
	ToolUsed  Tool     // echoed by the service; may differ if it normalized the tool
	Sources   []string // optional citations
	PDF       []byte   // decoded embedded document, when the service returned one
}

// CountWords mirrors the service's whitespace-split word count, used when
// the response omits word_count.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
