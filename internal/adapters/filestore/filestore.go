// Package filestore stores banner assets as files in a single flat directory.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"volunteernetwork/internal/domain"
)

// Store implements domain.AssetStore on top of a local directory. Keys are
// plain file names; anything that could escape the directory is rejected.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create asset dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Put writes content to a temp file, fsyncs, and renames it into place under a
// freshly generated key. The rename is atomic, so a key never holds partially
// written bytes and an existing key is never overwritten.
func (s *Store) Put(content io.Reader, suggestedName string) (string, error) {
	key := generateKey(suggestedName)
	fullPath := filepath.Join(s.dir, key)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write asset: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("sync asset: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close asset: %w", err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("rename asset: %w", err)
	}
	return key, nil
}

// Get opens the asset for reading. The caller must close the returned reader.
func (s *Store) Get(key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("open asset %s: %w", key, err)
	}
	return f, nil
}

// Delete removes the asset. Returns domain.ErrNotFound if the key is absent;
// callers that want idempotent deletes treat that as success.
func (s *Store) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete asset %s: %w", key, err)
	}
	return nil
}

// Exists reports whether the key is present.
func (s *Store) Exists(key string) bool {
	if err := validateKey(key); err != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, key))
	return err == nil
}

// validateKey rejects keys that are empty or could resolve outside the store
// directory. Keys are always flat file names.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return domain.ErrInvalidInput
	}
	if strings.ContainsAny(key, "/\\") {
		return domain.ErrInvalidInput
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// generateKey derives a unique storage key from the uploaded file name.
// Format: {sanitized-base}_{uuid}{.ext}. The uuid makes concurrent uploads of
// the same file name collision-free regardless of clock resolution.
func generateKey(suggestedName string) string {
	ext := filepath.Ext(suggestedName)
	base := strings.TrimSuffix(filepath.Base(suggestedName), ext)

	base = unsafeChars.ReplaceAllString(base, "")
	if len(base) > 50 {
		base = base[:50]
	}
	if base == "" {
		base = "banner"
	}
	ext = unsafeChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")

	key := base + "_" + uuid.New().String()
	if ext != "" {
		key += "." + ext
	}
	return key
}
