// Package securestorage is the defensive typed layer over the key-value
// store. Every operation degrades to the caller's default instead of
// returning an error, so call sites can treat persistence as best-effort.
package securestorage

import (
	"encoding/json"

	"github.com/origintiles/storefront/internal/platform/keyvalue"
	"github.com/rs/zerolog"
)

// Storage serializes values to JSON and stores them in a keyvalue.Store.
type Storage struct {
	store  keyvalue.Store
	logger *zerolog.Logger
}

// New returns new Storage over provided store.
func New(store keyvalue.Store, logger *zerolog.Logger) *Storage {
	return &Storage{
		store:  store,
		logger: logger,
	}
}

// SetItem serializes value and stores it under key.
// Returns false instead of an error on invalid key, serialization failure
// or backend failure.
func (s *Storage) SetItem(key string, value any) bool {
	if key == "" {
		s.logger.Warn().Msg("can't set item: empty key")
		return false
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("can't serialize value")
		return false
	}

	if err := s.store.Set(key, string(raw)); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("can't store value")
		return false
	}

	return true
}

// GetItem returns the value stored under key deserialized into T.
// It returns defaultValue when the key is invalid or absent, when the
// backend fails and when the stored value is corrupted. It never fails.
func GetItem[T any](s *Storage, key string, defaultValue T) T {
	if key == "" {
		s.logger.Warn().Msg("can't get item: empty key")
		return defaultValue
	}

	raw, ok, err := s.store.Get(key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("can't read value")
		return defaultValue
	}
	if !ok {
		return defaultValue
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("stored value is corrupted")
		return defaultValue
	}

	return value
}

// RemoveItem removes key. Returns false on invalid key or backend failure.
func (s *Storage) RemoveItem(key string) bool {
	if key == "" {
		s.logger.Warn().Msg("can't remove item: empty key")
		return false
	}

	if err := s.store.Delete(key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("can't remove value")
		return false
	}

	return true
}

// Clear removes all stored keys. Returns false on backend failure.
func (s *Storage) Clear() bool {
	if err := s.store.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("can't clear storage")
		return false
	}

	return true
}

// Keys returns all stored keys, or nil on backend failure.
func (s *Storage) Keys() []string {
	keys, err := s.store.Keys()
	if err != nil {
		s.logger.Warn().Err(err).Msg("can't list keys")
		return nil
	}

	return keys
}
