package recorder

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// newTestRecorder fixes time and ID generation so assertions are stable.
func newTestRecorder(input string) *Recorder {
	r := New(strings.NewReader(input), io.Discard)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	r.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	r.newID = func() string { return "test-id" }
	return r
}

func TestRun_TwoTurns(t *testing.T) {
	r := newTestRecorder("hello\nhi back\nDONE\n")

	tr, err := r.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(tr.Turns) != 2 {
		t.Fatalf("Expected 2 turns, got %d", len(tr.Turns))
	}
	if tr.Turns[0].Role != RoleOperator {
		t.Errorf("Turn 0: expected role %q, got %q", RoleOperator, tr.Turns[0].Role)
	}
	if tr.Turns[1].Role != RoleCounterpart {
		t.Errorf("Turn 1: expected role %q, got %q", RoleCounterpart, tr.Turns[1].Role)
	}
	if tr.Turns[0].Content[0] != "hello" || tr.Turns[1].Content[0] != "hi back" {
		t.Errorf("Content lost: %v / %v", tr.Turns[0].Content, tr.Turns[1].Content)
	}
	if tr.ID != "test-id" {
		t.Errorf("Expected generated ID, got %q", tr.ID)
	}
}

func TestRun_SentinelFirst(t *testing.T) {
	r := newTestRecorder("DONE\n")

	_, err := r.Run()
	if !errors.Is(err, ErrNoTurns) {
		t.Fatalf("Expected ErrNoTurns, got %v", err)
	}
}

func TestRun_SentinelCaseInsensitive(t *testing.T) {
	for _, sentinel := range []string{"done", "Done", "DONE", "  done  "} {
		t.Run(sentinel, func(t *testing.T) {
			r := newTestRecorder("hello\n" + sentinel + "\n")
			tr, err := r.Run()
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if len(tr.Turns) != 1 {
				t.Errorf("Expected 1 turn, got %d", len(tr.Turns))
			}
		})
	}
}

func TestRun_EndOfInputFinalizes(t *testing.T) {
	r := newTestRecorder("hello\n")

	tr, err := r.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(tr.Turns) != 1 {
		t.Errorf("Expected 1 turn on EOF, got %d", len(tr.Turns))
	}
}

func TestRun_RoleAlternation(t *testing.T) {
	r := newTestRecorder("a\nb\nc\nd\ne\nDONE\n")

	tr, err := r.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if tr.Turns[0].Role != RoleOperator {
		t.Errorf("First turn must be operator, got %q", tr.Turns[0].Role)
	}
	for i := 1; i < len(tr.Turns); i++ {
		if tr.Turns[i].Role == tr.Turns[i-1].Role {
			t.Errorf("Adjacent turns %d/%d share role %q", i-1, i, tr.Turns[i].Role)
		}
	}
}

func TestRun_TimestampSpan(t *testing.T) {
	r := newTestRecorder("a\nb\nDONE\n")

	tr, err := r.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !tr.StartedAt.Equal(tr.Turns[0].Timestamp) {
		t.Errorf("StartedAt should be the first turn's timestamp")
	}
	if !tr.UpdatedAt.Equal(tr.Turns[len(tr.Turns)-1].Timestamp) {
		t.Errorf("UpdatedAt should be the last turn's timestamp")
	}
	if tr.StartedAt.After(tr.UpdatedAt) {
		t.Errorf("StartedAt %v after UpdatedAt %v", tr.StartedAt, tr.UpdatedAt)
	}
}

func TestRunScript(t *testing.T) {
	r := newTestRecorder("")

	tr, err := r.RunScript([]ScriptedTurn{
		{Role: RoleOperator, Text: "ping"},
		{Role: RoleCounterpart, Text: "pong"},
	})
	if err != nil {
		t.Fatalf("RunScript() error: %v", err)
	}

	if len(tr.Turns) != 2 {
		t.Fatalf("Expected 2 turns, got %d", len(tr.Turns))
	}
	if tr.Turns[1].Content[0] != "pong" {
		t.Errorf("Expected scripted text preserved, got %q", tr.Turns[1].Content[0])
	}
}

func TestRunScript_Empty(t *testing.T) {
	r := newTestRecorder("")

	_, err := r.RunScript(nil)
	if !errors.Is(err, ErrNoTurns) {
		t.Fatalf("Expected ErrNoTurns, got %v", err)
	}
}
