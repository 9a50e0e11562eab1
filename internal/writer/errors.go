package writer

import "fmt"

// ErrUnknownTool signals a tool value outside the closed enumeration.
// Reaching it means a programming defect, not bad user input; the CLI
// resolves free-text names through ResolveTool before touching the registry.
var ErrUnknownTool = fmt.Errorf("writer: unknown tool")

// ValidationKind identifies which build rule rejected the input.
type ValidationKind string

const (
	EmptyTopic     ValidationKind = "empty_topic"
	TopicTooLong   ValidationKind = "topic_too_long"
	LengthMismatch ValidationKind = "length_mismatch"
)

// ValidationError is always locally recoverable; the user fixes the
// input and resubmits.
type ValidationError struct {
	Kind ValidationKind
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

// ServiceKind distinguishes wire-level failures from transport ones.
type ServiceKind string

const (
	HTTPStatus ServiceKind = "http_status"
	Transport  ServiceKind = "transport"
)

// ServiceError reports a failed generation call. No automatic retry;
// the user resubmits manually.
type ServiceError struct {
	Kind   ServiceKind
	Status int    // set for HTTPStatus
	Body   string // truncated response body for HTTPStatus
	Msg    string
}

func (e *ServiceError) Error() string {
	if e.Kind == HTTPStatus {
		return fmt.Sprintf("service returned %d: %s", e.Status, e.Body)
	}
	return e.Msg
}
