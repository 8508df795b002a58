package transcript

import (
	"encoding/json"
	"time"
)

// Transcript is the canonical, schema-independent form of one recorded
// conversation. Both on-disk shapes normalize into this before anything
// else looks at them.
type Transcript struct {
	ID        string
	StartedAt time.Time
	UpdatedAt time.Time
	Turns     []Turn
}

// Turn is a single participant contribution.
type Turn struct {
	Role      string    // pass-through label, e.g. "user", "model", "gemini"
	Timestamp time.Time // zero when the source value did not parse
	Content   []string  // ordered text fragments, at least one
	ToolCalls []ToolCall
}

// ToolCall records an external capability invocation made during a turn.
// Args stays raw so pretty-printing preserves the stored key order.
// Result may itself be a JSON-encoded document; decoding it is a display
// concern (see PrettyResult), the stored value is never rewritten.
type ToolCall struct {
	Name   string          `json:"name"`
	Args   json.RawMessage `json:"args,omitempty"`
	Result string          `json:"result,omitempty"`
}
