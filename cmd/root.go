package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatreplay/chatreplay/internal/config"
	"github.com/chatreplay/chatreplay/internal/store"
)

var version = "dev"

func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "chatreplay",
	Short: "Record, list and replay chat session transcripts",
	Long: `chatreplay records chat sessions as JSON files in a configured
directory and replays them as readable transcripts.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore resolves the configured session directory and opens the store.
// When the directory was never set it prints guidance and returns (nil, nil);
// callers treat a nil store as "command already handled".
func openStore() (*store.Store, error) {
	cfg, err := config.Default()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.SessionDir()
	if errors.Is(err, config.ErrNotConfigured) {
		fmt.Println("Session directory not configured. Run: chatreplay dir <path>")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return store.New(dir)
}
