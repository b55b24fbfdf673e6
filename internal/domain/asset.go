package domain

import "io"

// AssetStore is durable key-to-bytes storage for banner images. Keys are
// generated on Put and are unique under concurrent uploads. Each operation is
// atomic for its own key only; there is no guarantee across keys.
type AssetStore interface {
	// Put persists the content under a newly generated key derived from
	// suggestedName and returns the key. Existing keys are never overwritten.
	Put(content io.Reader, suggestedName string) (key string, err error)
	// Get opens the asset for reading. Returns ErrNotFound if key is absent.
	Get(key string) (io.ReadCloser, error)
	// Delete removes the asset. Returns ErrNotFound if key is absent.
	Delete(key string) error
	// Exists reports whether the key is present.
	Exists(key string) bool
}
