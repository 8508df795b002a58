package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatreplay/chatreplay/internal/recorder"
	"github.com/chatreplay/chatreplay/internal/store"
	"github.com/chatreplay/chatreplay/internal/transcript"
)

var chatSaveCmd = &cobra.Command{
	Use:   "chat-save",
	Short: "Record a new chat session interactively",
	Long: `Record a chat session turn by turn, alternating between the
operator and the counterpart. Type DONE to finish. Nothing is written
until recording finishes with at least one turn.

Examples:
  chatreplay chat-save`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := saveChat(); err != nil {
			fmt.Fprintf(os.Stderr, "chatreplay: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatSaveCmd)
}

func saveChat() error {
	s, err := openStore()
	if err != nil || s == nil {
		return err
	}

	fmt.Printf("Recording chat session. Type %s to finish.\n", recorder.Sentinel)
	r := recorder.New(os.Stdin, os.Stdout)
	tr, err := r.Run()
	if errors.Is(err, recorder.ErrNoTurns) {
		fmt.Println("No turns collected, nothing saved")
		return nil
	}
	if err != nil {
		return err
	}

	data, err := transcript.Marshal(tr)
	if err != nil {
		return err
	}
	name := store.GenerateName(time.Now())
	if err := s.Write(name, data); err != nil {
		return err
	}

	fmt.Printf("Saved %d turns to %s\n", len(tr.Turns), name)
	return nil
}
