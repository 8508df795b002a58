// Package display provides shared display utilities for list output and
// the TUI viewer.
package display

import "strings"

// RoleSymbol maps known role labels to their display symbols.
var RoleSymbol = map[string]string{
	"user":        "💬",
	"operator":    "💬",
	"gemini":      "🤖",
	"model":       "🤖",
	"counterpart": "🤖",
}

// GetRoleSymbol returns a symbol for the given role label.
// Returns "•" for unknown roles.
func GetRoleSymbol(role string) string {
	if symbol, ok := RoleSymbol[strings.ToLower(role)]; ok {
		return symbol
	}
	return "•"
}

// TruncateText truncates text to maxLen characters, replacing newlines with spaces.
// If truncated, adds "..." suffix.
func TruncateText(s string, maxLen int) string {
	// Replace newlines with spaces
	text := s
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' || text[i] == '\r' {
			text = text[:i] + " " + text[i+1:]
		}
	}

	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}
