// Package storage wraps a key/value string storage medium with
// failure-tolerant read/write/delete. Every implementation catches and
// swallows underlying storage failures (medium unavailable, write
// rejected), logging a warning and returning a safe default instead of
// propagating an error. The application degrades to an ephemeral
// in-memory-only mode when the medium is unusable; it never crashes on a
// storage fault.
package storage

// Store is the persistent store adapter contract. Get reports absence via
// the second return value; Set and Remove have no error return because
// failures are swallowed by contract.
type Store interface {
	// Get returns the value stored under key, or ("", false) when the key
	// is absent or the medium is unreadable.
	Get(key string) (string, bool)

	// Set writes value under key. A rejected write is logged and dropped.
	Set(key, value string)

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}
