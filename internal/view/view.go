// Package view displays a rendered transcript, either as plain text or in
// an interactive TUI.
package view

import (
	"fmt"
	"io"

	"github.com/chatreplay/chatreplay/internal/transcript"
)

// WritePlain streams the rendered transcript lines to w. Used for
// non-interactive output (pipes, redirects).
func WritePlain(w io.Writer, t *transcript.Transcript, sourceName string) error {
	for line := range transcript.Render(t, sourceName) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
