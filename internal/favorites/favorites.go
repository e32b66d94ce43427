// Package favorites tracks per-item favorite flags. Each favorite is its
// own storage entry under a derived key, toggled on and off.
package favorites

import (
	"strings"

	"github.com/origintiles/storefront/internal/securestorage"
	"github.com/rs/zerolog"
)

// Manager toggles and reads favorite flags.
type Manager struct {
	storage *securestorage.Storage
	logger  *zerolog.Logger
}

// NewManager returns new Manager over provided storage.
func NewManager(storage *securestorage.Storage, logger *zerolog.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  logger,
	}
}

// Toggle flips the favorite flag of an item and returns the new state.
// Toggling off removes the storage entry instead of storing false.
func (m *Manager) Toggle(itemType, itemID string) bool {
	key := securestorage.FavoriteKey(itemType, itemID)

	if securestorage.GetItem(m.storage, key, false) {
		m.storage.RemoveItem(key)
		m.logger.Debug().Str("key", key).Msg("favorite removed")
		return false
	}

	m.storage.SetItem(key, true)
	m.logger.Debug().Str("key", key).Msg("favorite added")
	return true
}

// IsFavorite reports whether an item is currently favorited.
func (m *Manager) IsFavorite(itemType, itemID string) bool {
	return securestorage.GetItem(m.storage, securestorage.FavoriteKey(itemType, itemID), false)
}

// Clear removes every favorite entry, leaving other stored state intact.
func (m *Manager) Clear() {
	for _, key := range m.storage.Keys() {
		if strings.HasPrefix(key, securestorage.FavoritesKeyPrefix+"_") {
			m.storage.RemoveItem(key)
		}
	}
}
