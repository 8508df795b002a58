// Package recorder collects alternating two-party turns from a line source
// and materializes them into a canonical transcript.
package recorder

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chatreplay/chatreplay/internal/transcript"
)

const (
	// Sentinel ends turn collection; matched case-insensitively.
	Sentinel = "DONE"

	RoleOperator    = "operator"
	RoleCounterpart = "counterpart"
)

// ErrNoTurns means the sentinel arrived before any turn was collected.
// Nothing is written in that case.
var ErrNoTurns = fmt.Errorf("no turns collected")

// Recorder drives the interactive turn-collection loop. Single-threaded
// and cooperative: one outstanding line read at a time.
type Recorder struct {
	in    *bufio.Scanner
	out   io.Writer
	now   func() time.Time
	newID func() string
}

// New builds a Recorder reading lines from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Recorder {
	return &Recorder{
		in:    bufio.NewScanner(in),
		out:   out,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Run collects turns until the sentinel or end-of-input, alternating
// between operator and counterpart, operator first. Returns ErrNoTurns
// when nothing was collected; otherwise a frozen transcript ready for a
// single write.
func (r *Recorder) Run() (*transcript.Transcript, error) {
	var turns []transcript.Turn
	role := RoleOperator

	for {
		fmt.Fprintf(r.out, "%s> ", role)
		if !r.in.Scan() {
			break // end-of-input finalizes like the sentinel
		}
		line := r.in.Text()
		if strings.EqualFold(strings.TrimSpace(line), Sentinel) {
			break
		}
		turns = append(turns, transcript.Turn{
			Role:      role,
			Timestamp: r.now(),
			Content:   []string{line},
		})
		role = flip(role)
	}
	if err := r.in.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return r.finalize(turns)
}

// ScriptedTurn is one pre-built (role, text) pair for the non-interactive
// recording path.
type ScriptedTurn struct {
	Role string
	Text string
}

// RunScript materializes a transcript from a pre-built turn sequence,
// following the same finalizing contract as the interactive loop.
func (r *Recorder) RunScript(script []ScriptedTurn) (*transcript.Transcript, error) {
	var turns []transcript.Turn
	for _, s := range script {
		turns = append(turns, transcript.Turn{
			Role:      s.Role,
			Timestamp: r.now(),
			Content:   []string{s.Text},
		})
	}
	return r.finalize(turns)
}

// finalize freezes collected turns into a transcript. An empty turn list
// is the cancelled-recording signal and never reaches storage.
func (r *Recorder) finalize(turns []transcript.Turn) (*transcript.Transcript, error) {
	if len(turns) == 0 {
		return nil, ErrNoTurns
	}
	return &transcript.Transcript{
		ID:        r.newID(),
		StartedAt: turns[0].Timestamp,
		UpdatedAt: turns[len(turns)-1].Timestamp,
		Turns:     turns,
	}, nil
}

func flip(role string) string {
	if role == RoleOperator {
		return RoleCounterpart
	}
	return RoleOperator
}
