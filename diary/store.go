package diary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultPath is where FileStore writes when no path is configured.
const DefaultPath = "diary_entry.txt"

// Store persists the diary entry. There is only ever one entry; saving
// replaces it.
type Store interface {
	Save(entry string) error
	Load() (string, error)
}

// FileStore keeps the entry in a single text file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing to path, or DefaultPath if empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{Path: path}
}

// Save writes the entry with surrounding whitespace trimmed, overwriting any
// previous entry.
func (s *FileStore) Save(entry string) error {
	if err := os.WriteFile(s.Path, []byte(strings.TrimSpace(entry)), 0o644); err != nil {
		return fmt.Errorf("diary: save %s: %w", s.Path, err)
	}
	return nil
}

// Load returns the saved entry. A missing file is an empty entry.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("diary: load %s: %w", s.Path, err)
	}
	return string(data), nil
}
