// Package cursor imports chat sessions from Cursor's state database and
// converts them into canonical transcripts for the session store.
package cursor

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chatreplay/chatreplay/internal/transcript"
)

// ComposerData represents the structure of Cursor's composerData entries
type ComposerData struct {
	ComposerID    string   `json:"composerId"`
	CreatedAt     int64    `json:"createdAt"`     // epoch ms
	LastUpdatedAt int64    `json:"lastUpdatedAt"` // epoch ms
	Conversation  []Bubble `json:"conversation"`
}

// Bubble represents a single message in a Cursor conversation
type Bubble struct {
	Type       int        `json:"type"` // 1=user, 2=AI
	BubbleID   string     `json:"bubbleId"`
	Text       string     `json:"text"`
	TimingInfo TimingInfo `json:"timingInfo,omitempty"`
}

// TimingInfo contains timing information for a bubble
type TimingInfo struct {
	ClientStartTime int64 `json:"clientStartTime"` // epoch ms
}

// Session is one imported conversation, already in canonical form.
type Session struct {
	ID         string
	Modified   time.Time
	Transcript *transcript.Transcript
}

// DefaultDBPath returns the platform-specific path to Cursor's state.vscdb
func DefaultDBPath() string {
	homeDir, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "Cursor", "User", "globalStorage", "state.vscdb")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Cursor", "User", "globalStorage", "state.vscdb")
	default: // linux
		return filepath.Join(homeDir, ".config", "Cursor", "User", "globalStorage", "state.vscdb")
	}
}

// Import reads all composer conversations from the database and converts
// each to a canonical transcript. Conversations without any text are
// skipped.
func Import(dbPath string) ([]Session, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("cursor database not found at %s", dbPath)
	}

	// Open database in read-only mode
	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT key, value FROM cursorDiskKV WHERE key LIKE 'composerData:%'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			continue
		}

		var data ComposerData
		if err := json.Unmarshal(value, &data); err != nil {
			continue // Skip entries we can't parse
		}

		tr := Convert(&data)
		if tr == nil {
			continue
		}
		sessions = append(sessions, Session{
			ID:         data.ComposerID,
			Modified:   tr.UpdatedAt,
			Transcript: tr,
		})
	}

	return sessions, rows.Err()
}

// Convert maps one composer conversation to a canonical transcript.
// Returns nil when the conversation holds no text bubbles.
func Convert(data *ComposerData) *transcript.Transcript {
	created := time.UnixMilli(data.CreatedAt)

	var turns []transcript.Turn
	for _, bubble := range data.Conversation {
		if bubble.Text == "" {
			continue
		}
		ts := created
		if bubble.TimingInfo.ClientStartTime > 0 {
			ts = time.UnixMilli(bubble.TimingInfo.ClientStartTime)
		}
		turns = append(turns, transcript.Turn{
			Role:      bubbleRole(bubble.Type),
			Timestamp: ts,
			Content:   []string{bubble.Text},
		})
	}
	if len(turns) == 0 {
		return nil
	}

	tr := &transcript.Transcript{
		ID:        data.ComposerID,
		StartedAt: created,
		UpdatedAt: created,
		Turns:     turns,
	}
	if data.LastUpdatedAt > 0 {
		tr.UpdatedAt = time.UnixMilli(data.LastUpdatedAt)
	} else if last := turns[len(turns)-1].Timestamp; last.After(tr.UpdatedAt) {
		tr.UpdatedAt = last
	}
	return tr
}

func bubbleRole(bubbleType int) string {
	if bubbleType == 1 {
		return "user"
	}
	return "model"
}
