// Package keyvalue provides the string key-value store used for all
// client-side persistence, with in-memory and file-backed implementations.
package keyvalue

// Store is a persistent string key-value store.
type Store interface {
	// Get returns value stored under key and whether the key exists.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Clear removes all keys.
	Clear() error
	// Keys returns all stored keys.
	Keys() ([]string, error)
}
