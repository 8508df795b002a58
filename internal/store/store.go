// Package store performs existence, listing, read and write of session
// files inside the configured directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extension recognized for session files.
const Extension = ".json"

var (
	// ErrNotFound means the named session file is absent.
	ErrNotFound = fmt.Errorf("session file not found")
	// ErrWrite wraps persistence failures.
	ErrWrite = fmt.Errorf("write failed")
)

// FileInfo describes one session file.
type FileInfo struct {
	Name     string
	Modified time.Time
}

// Store accesses session files under a single directory.
type Store struct {
	Dir string
}

// New builds a Store for dir, verifying the directory exists.
func New(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("session directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("session directory %s: not a directory", dir)
	}
	return &Store{Dir: dir}, nil
}

// List returns session files sorted by modification time, oldest first.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // Skip files we can't stat
		}
		files = append(files, FileInfo{Name: e.Name(), Modified: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.Before(files[j].Modified)
	})

	return files, nil
}

// Read returns the raw content of the named session file.
func (s *Store) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write persists a new session file. Session files are write-once; the
// caller is expected to hand over a fully built document exactly once.
func (s *Store) Write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// GenerateName builds a sortable, filesystem-safe file name from the given
// instant. Lexical order matches chronological order; the uuid suffix
// keeps same-second recordings from colliding.
func GenerateName(now time.Time) string {
	return fmt.Sprintf("chat-%s-%s%s",
		now.Format("20060102-150405"),
		uuid.NewString()[:8],
		Extension)
}
