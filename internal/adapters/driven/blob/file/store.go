// Package file provides a file-backed implementation of driven.BlobStore.
// Each key maps to one file under the repolens data directory; writes are
// atomic (temp file + rename) so a crash mid-write never corrupts the
// previous snapshot.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BlobStore = (*Store)(nil)

// Store is a file-based blob store rooted at a single directory.
type Store struct {
	dir string
}

// NewStore creates a file blob store rooted at dir.
// If dir is empty, defaults to ~/.repolens/data.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".repolens", "data")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// path maps a blob key to a file path. Keys may contain separators
// ("repolens/index"); they are flattened so every blob lives directly in
// the root directory.
func (s *Store) path(key string) string {
	name := strings.ReplaceAll(key, "/", "_") + ".blob"
	return filepath.Join(s.dir, name)
}

// Get returns the blob stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %q: %w", key, err)
	}
	return data, nil
}

// Put stores data under key, overwriting any previous value. The write goes
// to a temp file first and is renamed into place.
func (s *Store) Put(_ context.Context, key string, data []byte) error {
	target := s.path(key)

	tmp, err := os.CreateTemp(s.dir, ".blob-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing blob %q: %w", key, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing blob %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob under key. Deleting an absent key is a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting blob %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *Store) Close() error {
	return nil
}
