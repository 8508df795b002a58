package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

var (
	// ErrMalformedJSON means the file content is not parseable JSON at all.
	ErrMalformedJSON = fmt.Errorf("malformed JSON")
	// ErrInvalidSchema means the document matched neither known session shape.
	ErrInvalidSchema = fmt.Errorf("invalid session schema")
)

// probe holds just enough of a session document to pick a shape.
// The two known shapes are detected exactly once here; after Normalize
// returns, nothing branches on the source format again.
type probe struct {
	ID           string          `json:"id"`
	StartedAt    string          `json:"startedAt"`
	UpdatedAt    string          `json:"updatedAt"`
	Messages     json.RawMessage `json:"messages"`
	Conversation struct {
		Turns json.RawMessage `json:"turns"`
	} `json:"conversation"`
}

// messageDoc is one element of the "messages" shape: role in "type",
// content as a single string, tool calls inline.
type messageDoc struct {
	Type      string     `json:"type"`
	Timestamp string     `json:"timestamp"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
}

// turnDoc is one element of the "conversation.turns" shape: role in
// "role", content split across parts.
type turnDoc struct {
	Role      string `json:"role"`
	Timestamp string `json:"timestamp"`
	Parts     []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

// Normalize converts raw session file content into a canonical Transcript.
// Returns ErrMalformedJSON for unparseable content and ErrInvalidSchema
// when the document matches neither known shape.
func Normalize(data []byte) (*Transcript, error) {
	var p probe
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var turns []Turn
	switch {
	case isArray(p.Messages):
		var docs []messageDoc
		if err := json.Unmarshal(p.Messages, &docs); err != nil {
			return nil, fmt.Errorf("%w: bad \"messages\" element: %v", ErrInvalidSchema, err)
		}
		for _, d := range docs {
			turns = append(turns, messageTurn(d))
		}
	case isArray(p.Conversation.Turns):
		var docs []turnDoc
		if err := json.Unmarshal(p.Conversation.Turns, &docs); err != nil {
			return nil, fmt.Errorf("%w: bad \"conversation.turns\" element: %v", ErrInvalidSchema, err)
		}
		for _, d := range docs {
			turns = append(turns, conversationTurn(d))
		}
	default:
		return nil, fmt.Errorf("%w: document has neither \"messages\" nor \"conversation.turns\"", ErrInvalidSchema)
	}

	t := &Transcript{
		ID:        p.ID,
		StartedAt: parseInstant(p.StartedAt),
		UpdatedAt: parseInstant(p.UpdatedAt),
		Turns:     turns,
	}
	fillSpan(t)
	return t, nil
}

// messageTurn maps a "messages" element to a canonical Turn.
// Role values pass through unchanged; there is no allow-list.
func messageTurn(d messageDoc) Turn {
	return Turn{
		Role:      d.Type,
		Timestamp: parseInstant(d.Timestamp),
		Content:   []string{d.Content},
		ToolCalls: d.ToolCalls,
	}
}

// conversationTurn maps a "conversation.turns" element to a canonical Turn,
// one content fragment per part, in stored order.
func conversationTurn(d turnDoc) Turn {
	content := make([]string, 0, len(d.Parts))
	for _, part := range d.Parts {
		content = append(content, part.Text)
	}
	if len(content) == 0 {
		content = []string{""}
	}
	return Turn{
		Role:      d.Role,
		Timestamp: parseInstant(d.Timestamp),
		Content:   content,
	}
}

// parseInstant parses an RFC3339 timestamp, returning the zero time on
// failure. A bad timestamp is never fatal to the whole transcript; the
// renderer shows "Invalid Date" for zero times.
func parseInstant(s string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// fillSpan derives StartedAt/UpdatedAt from turn timestamps when the
// document did not carry them.
func fillSpan(t *Transcript) {
	for _, turn := range t.Turns {
		if turn.Timestamp.IsZero() {
			continue
		}
		if t.StartedAt.IsZero() || turn.Timestamp.Before(t.StartedAt) {
			t.StartedAt = turn.Timestamp
		}
		if t.UpdatedAt.IsZero() || turn.Timestamp.After(t.UpdatedAt) {
			t.UpdatedAt = turn.Timestamp
		}
	}
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Marshal encodes a Transcript in the "messages" shape for storage.
func Marshal(t *Transcript) ([]byte, error) {
	doc := struct {
		ID        string       `json:"id"`
		StartedAt string       `json:"startedAt"`
		UpdatedAt string       `json:"updatedAt"`
		Messages  []messageDoc `json:"messages"`
	}{
		ID:        t.ID,
		StartedAt: t.StartedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	for _, turn := range t.Turns {
		doc.Messages = append(doc.Messages, messageDoc{
			Type:      turn.Role,
			Timestamp: turn.Timestamp.Format(time.RFC3339),
			Content:   joinFragments(turn.Content),
			ToolCalls: turn.ToolCalls,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

func joinFragments(fragments []string) string {
	if len(fragments) == 1 {
		return fragments[0]
	}
	var buf bytes.Buffer
	for i, f := range fragments {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(f)
	}
	return buf.String()
}
