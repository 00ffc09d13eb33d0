// Package storage persists the access token across runs.
//
// The token file is the only durable artifact the CLI keeps besides its
// home directory itself. All writes go through the session store; no
// other component touches the slot directly.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Slot is a durable single-value credential slot.
type Slot interface {
	// Load returns the stored token, or "" when the slot is empty.
	Load() (string, error)
	// Store writes the token, replacing any previous value.
	Store(token string) error
	// Clear removes the stored token. Clearing an empty slot is a no-op.
	Clear() error
}

// FileSlot stores the token in a single file with restrictive permissions.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed token slot at path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Load reads the token from disk. A missing file means an empty slot.
func (s *FileSlot) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Store writes the token with restrictive permissions.
func (s *FileSlot) Store(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// Clear removes the token file.
func (s *FileSlot) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}
