package writer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTopicLen bounds the topic in runes; topics are user prose.
const MaxTopicLen = 1000

// GenerationRequest is a validated, single-use request payload.
// Build constructs a fresh one per submission.
type GenerationRequest struct {
	ID       string // correlation id for logs
	Topic    string
	Tool     Tool
	Tone     Tone
	LengthID string
}

// Build validates the current selections into a request. Rules apply in
// order and the first failure wins. The length id is re-checked here, not
// only at selection time, to guard against stale state after a tool switch.
func Build(topic string, tool Tool, tone Tone, lengthID string) (GenerationRequest, error) {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return GenerationRequest{}, &ValidationError{Kind: EmptyTopic, Msg: "topic is empty"}
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxTopicLen {
		return GenerationRequest{}, &ValidationError{
			Kind: TopicTooLong,
			Msg:  fmt.Sprintf("topic is %d characters, max %d", n, MaxTopicLen),
		}
	}
	if !HasLength(tool, lengthID) {
		return GenerationRequest{}, &ValidationError{
			Kind: LengthMismatch,
			Msg:  fmt.Sprintf("length %q is not valid for tool %q", lengthID, tool),
		}
	}
	return GenerationRequest{
		ID:       uuid.NewString(),
		Topic:    trimmed,
		Tool:     tool,
		Tone:     tone,
		LengthID: lengthID,
	}, nil
}
