package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/chatreplay/chatreplay/internal/transcript"
	"github.com/chatreplay/chatreplay/internal/view"
)

var noInteractiveFlag bool

var loadCmd = &cobra.Command{
	Use:   "load <filename>",
	Short: "Render a session transcript",
	Long: `Load a session file from the configured directory and render it.

By default, opens an interactive TUI viewer when running in a terminal.
Use --no-interactive for plain text output (useful for piping).

Examples:
  chatreplay load chat-20240101-090000-ab12cd34.json
  chatreplay load session.json --no-interactive | less`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := loadSession(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "chatreplay: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	loadCmd.Flags().BoolVar(&noInteractiveFlag, "no-interactive", false, "Disable interactive TUI, use plain text output")
	rootCmd.AddCommand(loadCmd)
}

func loadSession(name string) error {
	s, err := openStore()
	if err != nil || s == nil {
		return err
	}

	data, err := s.Read(name)
	if err != nil {
		return err
	}
	tr, err := transcript.Normalize(data)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}

	sourceName := filepath.Base(name)
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if isTTY && !noInteractiveFlag {
		return view.RunTUI(tr, sourceName)
	}
	return view.WritePlain(os.Stdout, tr, sourceName)
}
