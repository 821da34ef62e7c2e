// Package cache provides persistent memoization of round results keyed by
// an opaque string identifier.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists raw round artifacts by key. Entries never expire; stale
// artifacts require manual removal.
type Store interface {
	// Get returns the artifact for key, and whether one exists.
	Get(key string) ([]byte, bool, error)
	// Put persists the artifact for key, overwriting any previous one.
	Put(key string, data []byte) error
}

// DefaultDir returns the default cache directory path.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir not available.
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "accent"), nil
	}
	return filepath.Join(cacheDir, "accent"), nil
}

// FileStore persists artifacts as one JSON file per key under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating the directory
// if needed. An empty dir selects DefaultDir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the artifact file for key. A missing file is a miss, not an
// error.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the artifact file for key.
func (s *FileStore) Put(key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// MemStore is an in-memory Store for tests and cache-disabled runs.
type MemStore struct {
	entries map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]byte)}
}

// Get returns the stored artifact for key, if any.
func (s *MemStore) Get(key string) ([]byte, bool, error) {
	data, ok := s.entries[key]
	return data, ok, nil
}

// Put stores the artifact for key.
func (s *MemStore) Put(key string, data []byte) error {
	s.entries[key] = data
	return nil
}
