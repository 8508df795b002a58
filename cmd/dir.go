package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatreplay/chatreplay/internal/config"
)

var dirCmd = &cobra.Command{
	Use:   "dir <path>",
	Short: "Set the session directory",
	Long: `Set the directory where session files are stored and looked up.

The setting is persisted in the per-user configuration area.

Examples:
  chatreplay dir ~/chats`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setDir(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "chatreplay: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func setDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("session directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("session directory %s: not a directory", path)
	}

	cfg, err := config.Default()
	if err != nil {
		return err
	}
	if err := cfg.SetSessionDir(path); err != nil {
		return err
	}

	fmt.Printf("Session directory set to %s\n", path)
	return nil
}
