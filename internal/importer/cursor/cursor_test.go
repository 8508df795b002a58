package cursor

import (
	"testing"
	"time"
)

func TestConvert(t *testing.T) {
	data := &ComposerData{
		ComposerID:    "comp-1",
		CreatedAt:     time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC).UnixMilli(),
		LastUpdatedAt: time.Date(2024, 2, 1, 9, 10, 0, 0, time.UTC).UnixMilli(),
		Conversation: []Bubble{
			{Type: 1, Text: "fix the bug", TimingInfo: TimingInfo{ClientStartTime: time.Date(2024, 2, 1, 9, 1, 0, 0, time.UTC).UnixMilli()}},
			{Type: 2, Text: "done, see the diff"},
			{Type: 2, Text: ""}, // empty bubbles dropped
		},
	}

	tr := Convert(data)
	if tr == nil {
		t.Fatal("Convert() returned nil for conversation with text")
	}

	if tr.ID != "comp-1" {
		t.Errorf("Expected ID 'comp-1', got %q", tr.ID)
	}
	if len(tr.Turns) != 2 {
		t.Fatalf("Expected 2 turns, got %d", len(tr.Turns))
	}
	if tr.Turns[0].Role != "user" || tr.Turns[1].Role != "model" {
		t.Errorf("Bubble types mapped wrong: %q, %q", tr.Turns[0].Role, tr.Turns[1].Role)
	}
	if tr.Turns[0].Content[0] != "fix the bug" {
		t.Errorf("Content lost: %v", tr.Turns[0].Content)
	}
	if !tr.UpdatedAt.Equal(time.UnixMilli(data.LastUpdatedAt)) {
		t.Errorf("Expected UpdatedAt from lastUpdatedAt, got %v", tr.UpdatedAt)
	}
	if tr.StartedAt.After(tr.UpdatedAt) {
		t.Errorf("StartedAt %v after UpdatedAt %v", tr.StartedAt, tr.UpdatedAt)
	}
}

func TestConvert_EmptyConversation(t *testing.T) {
	data := &ComposerData{ComposerID: "comp-2", CreatedAt: time.Now().UnixMilli()}

	if tr := Convert(data); tr != nil {
		t.Errorf("Expected nil for conversation without text, got %+v", tr)
	}
}

func TestConvert_BubbleTimestampFallback(t *testing.T) {
	created := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	data := &ComposerData{
		ComposerID:   "comp-3",
		CreatedAt:    created.UnixMilli(),
		Conversation: []Bubble{{Type: 1, Text: "hello"}},
	}

	tr := Convert(data)
	if tr == nil {
		t.Fatal("Convert() returned nil")
	}
	if !tr.Turns[0].Timestamp.Equal(created) {
		t.Errorf("Expected creation time fallback, got %v", tr.Turns[0].Timestamp)
	}
}
