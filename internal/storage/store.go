// Package storage is a local string key-value store, the stand-in for a
// browser's localStorage.
package storage

import "errors"

// Storage is a string key-value store. Implementations are safe for
// concurrent use.
type Storage interface {
	// GetItem returns the value stored under key and whether it exists.
	GetItem(key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error

	// Close releases the store. Later calls fail with ErrClosed.
	Close() error
}

var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("storage: store is closed")

	// ErrCorrupt is returned when a data file cannot be decoded.
	ErrCorrupt = errors.New("storage: data file is corrupt")
)
