package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as one JSON file under a base directory.
type FileStore struct {
	basePath string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(basePath string) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("store base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Get reads the document for key from disk.
func (f *FileStore) Get(key string) ([]byte, bool, error) {
	doc, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read key %q: %w", key, err)
	}
	return doc, true, nil
}

// Set writes the document to a temp file and renames it into place, so a
// reader never observes a partially written document.
func (f *FileStore) Set(key string, doc []byte) error {
	target := f.path(key)
	tmp, err := os.CreateTemp(f.basePath, safeKey(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write key %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes the file for key, if any.
func (f *FileStore) Remove(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove key %q: %w", key, err)
	}
	return nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.basePath, safeKey(key)+".json")
}

func safeKey(key string) string {
	key = filepath.Base(key)
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	key = strings.TrimSpace(key)
	if key == "" {
		return "doc"
	}
	return key
}
