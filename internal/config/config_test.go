package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSessionDir_NeverSet(t *testing.T) {
	c := &Config{Path: filepath.Join(t.TempDir(), "config.yaml")}

	_, err := c.SessionDir()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestSetSessionDir_RoundTrip(t *testing.T) {
	c := &Config{Path: filepath.Join(t.TempDir(), "chatreplay", "config.yaml")}

	if err := c.SetSessionDir("/tmp/sessions"); err != nil {
		t.Fatalf("SetSessionDir() error: %v", err)
	}
	dir, err := c.SessionDir()
	if err != nil {
		t.Fatalf("SessionDir() error: %v", err)
	}
	if dir != "/tmp/sessions" {
		t.Errorf("Expected '/tmp/sessions', got %q", dir)
	}
}

func TestSetSessionDir_Overwrite(t *testing.T) {
	c := &Config{Path: filepath.Join(t.TempDir(), "config.yaml")}

	if err := c.SetSessionDir("/first"); err != nil {
		t.Fatal(err)
	}
	if err := c.SetSessionDir("/second"); err != nil {
		t.Fatal(err)
	}

	dir, err := c.SessionDir()
	if err != nil {
		t.Fatalf("SessionDir() error: %v", err)
	}
	if dir != "/second" {
		t.Errorf("Expected '/second' after overwrite, got %q", dir)
	}
}
