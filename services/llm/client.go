package llm

import "context"

// Roles used when composing completion input.
const (
	RoleSystem    = "system"
	RoleDeveloper = "developer"
	RoleUser      = "user"
)

// Message is a single input message for a streamed completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// EventType tags the variants of Event.
type EventType string

const (
	// EventDelta carries one incremental text fragment.
	EventDelta EventType = "delta"
	// EventCompleted signals the provider finished the response. Carries the
	// model that actually produced the output and the finish reason, which
	// may be empty when the provider does not report one.
	EventCompleted EventType = "completed"
	// EventError signals a provider-reported failure on the stream.
	EventError EventType = "error"
)

// Event is one tagged provider event observed on a completion stream.
type Event struct {
	Type         EventType
	Text         string
	Model        string
	FinishReason string
	Err          string
}

// FinishReasonLength is the provider signal for output cut off at the
// token budget.
const FinishReasonLength = "length"

// StreamRequest describes one streamed completion call.
type StreamRequest struct {
	Model           string
	Input           []Message
	MaxOutputTokens int
	ReasoningEffort string
}

// CompletionStream is a handle to one in-flight streamed completion.
// Recv returns io.EOF once the provider closes the stream. Close aborts
// the underlying connection and is safe to call more than once.
type CompletionStream interface {
	Recv() (Event, error)
	Close()
}

// CompletionStreamer issues streamed completion requests against a
// language-model provider.
type CompletionStreamer interface {
	Stream(ctx context.Context, req StreamRequest) (CompletionStream, error)
}
