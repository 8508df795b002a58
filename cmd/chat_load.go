package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// chat-load is kept as a separate spelling of load for recorded chats;
// the contract is identical.
var chatLoadCmd = &cobra.Command{
	Use:   "chat-load <filename>",
	Short: "Render a recorded chat session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := loadSession(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "chatreplay: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatLoadCmd)
}
