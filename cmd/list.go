package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List session files",
	Long: `List session files in the configured directory, oldest first.

Examples:
  chatreplay list`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "chatreplay: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSessions() error {
	s, err := openStore()
	if err != nil || s == nil {
		return err
	}

	files, err := s.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No session files found")
		return nil
	}

	for _, f := range files {
		fmt.Printf("%s  %s\n", f.Modified.Local().Format("2006-01-02 15:04"), f.Name)
	}
	return nil
}
