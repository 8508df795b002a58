package transcript

import (
	"bytes"
	"encoding/json"
	"iter"
	"strings"
	"time"
)

const (
	turnSeparator = "────────────────────────────────────────────────────────────"
	turnRule      = "------------------------------------------------------------"
)

// Render produces the display lines for a transcript as a lazy, restartable
// sequence. It performs no I/O and is deterministic for a fixed timezone.
func Render(t *Transcript, sourceName string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield("=== "+sourceName+" ===") {
			return
		}
		for _, turn := range t.Turns {
			if !yield(turnSeparator) {
				return
			}
			if !yield(strings.ToUpper(turn.Role) + "  " + formatInstant(turn.Timestamp)) {
				return
			}
			if !yield(turnRule) {
				return
			}
			for line := range strings.SplitSeq(joinFragments(turn.Content), "\n") {
				if !yield(line) {
					return
				}
			}
			for _, call := range turn.ToolCalls {
				if !yieldToolCall(yield, call) {
					return
				}
			}
		}
		yield("=== end of " + sourceName + " ===")
	}
}

// RenderString joins the rendered line sequence into one string.
func RenderString(t *Transcript, sourceName string) string {
	var sb strings.Builder
	for line := range Render(t, sourceName) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func yieldToolCall(yield func(string) bool, call ToolCall) bool {
	if !yield("[tool call] " + call.Name) {
		return false
	}
	if len(call.Args) > 0 {
		if !yield("args:") {
			return false
		}
		if !yieldMultiline(yield, indentJSON(call.Args)) {
			return false
		}
	}
	if call.Result != "" {
		if !yield("result:") {
			return false
		}
		if !yieldMultiline(yield, PrettyResult(call.Result)) {
			return false
		}
	}
	return true
}

func yieldMultiline(yield func(string) bool, s string) bool {
	for line := range strings.SplitSeq(s, "\n") {
		if !yield(line) {
			return false
		}
	}
	return true
}

// PrettyResult attempts to decode a tool-call result as JSON and render it
// indented; anything that is not valid JSON comes back unmodified. This is
// best-effort by contract and never fails.
func PrettyResult(result string) string {
	if !json.Valid([]byte(result)) {
		return result
	}
	return indentJSON([]byte(result))
}

// indentJSON pretty-prints raw JSON preserving the stored key order.
// json.Indent reformats the encoded bytes in place, so keys are never
// re-sorted the way a map round-trip would.
func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// formatInstant renders a turn timestamp in local time. The zero time marks
// a source value that did not parse.
func formatInstant(ts time.Time) string {
	if ts.IsZero() {
		return "Invalid Date"
	}
	return ts.Local().Format("2006-01-02 15:04:05")
}
