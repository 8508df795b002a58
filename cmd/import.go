package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatreplay/chatreplay/internal/importer/cursor"
	"github.com/chatreplay/chatreplay/internal/store"
	"github.com/chatreplay/chatreplay/internal/transcript"
)

var cursorDBFlag string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import sessions from external tools",
}

var importCursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Import chat sessions from Cursor",
	Long: `Read Cursor's state database and convert each composer
conversation into a session file in the configured directory.

Examples:
  chatreplay import cursor
  chatreplay import cursor --db /path/to/state.vscdb`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := importCursorSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "chatreplay: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	importCursorCmd.Flags().StringVar(&cursorDBFlag, "db", "", "Path to Cursor's state.vscdb (default: platform location)")
	importCmd.AddCommand(importCursorCmd)
	rootCmd.AddCommand(importCmd)
}

func importCursorSessions() error {
	s, err := openStore()
	if err != nil || s == nil {
		return err
	}

	dbPath := cursorDBFlag
	if dbPath == "" {
		dbPath = cursor.DefaultDBPath()
	}

	sessions, err := cursor.Import(dbPath)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No Cursor sessions found")
		return nil
	}

	imported := 0
	for _, sess := range sessions {
		data, err := transcript.Marshal(sess.Transcript)
		if err != nil {
			fmt.Printf("Warning: could not convert session %s: %v\n", sess.ID, err)
			continue
		}
		name := store.GenerateName(sess.Modified)
		if err := s.Write(name, data); err != nil {
			return err
		}
		imported++
	}

	fmt.Printf("Imported %d Cursor sessions\n", imported)
	return nil
}
