// Package compare maintains the persisted product comparison list: an
// ordered, de-duplicated list of product ids capped at four entries.
package compare

import (
	"errors"
	"sync"

	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/origintiles/storefront/internal/securestorage"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// MaxProducts is the maximum number of products in the comparison list.
const MaxProducts = 4

var (
	// ErrListFull is returned when adding to a full comparison list.
	ErrListFull = errors.New("comparison list is full")
	// ErrAlreadyListed is returned when adding an id that is already listed.
	ErrAlreadyListed = errors.New("product is already in comparison list")
)

// Manager owns the persisted comparison list. The length bound and the
// no-duplicates invariant are enforced here, not at call sites.
type Manager struct {
	storage *securestorage.Storage
	logger  *zerolog.Logger

	mu  sync.Mutex
	ids []string
}

// NewManager returns a Manager loaded from storage. A corrupted or
// oversized stored list is normalized instead of rejected.
func NewManager(storage *securestorage.Storage, logger *zerolog.Logger) *Manager {
	ids := securestorage.GetItem(storage, securestorage.CompareKey, []string{})

	ids = lo.Uniq(ids)
	if len(ids) > MaxProducts {
		ids = ids[:MaxProducts]
	}

	return &Manager{
		storage: storage,
		logger:  logger,
		ids:     ids,
	}
}

// Add appends id to the list. Returns ErrAlreadyListed for a duplicate
// and ErrListFull when the list already holds MaxProducts ids.
func (m *Manager) Add(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lo.Contains(m.ids, id) {
		return ErrAlreadyListed
	}
	if len(m.ids) >= MaxProducts {
		return ErrListFull
	}

	m.ids = append(m.ids, id)
	m.persist()

	m.logger.Debug().Str("productId", id).Msg("product added to comparison")

	return nil
}

// Remove drops id from the list. Returns true when the id was present.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !lo.Contains(m.ids, id) {
		return false
	}

	m.ids = lo.Without(m.ids, id)
	m.persist()

	m.logger.Debug().Str("productId", id).Msg("product removed from comparison")

	return true
}

// Clear empties the list and deletes the persisted key.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids = []string{}
	m.storage.RemoveItem(securestorage.CompareKey)
}

// IDs returns a copy of the listed product ids in insertion order.
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Hydrate resolves the listed ids against the catalog, preserving list
// order. Ids without a catalog entry are dropped silently, a stale id is
// not an error.
func (m *Manager) Hydrate(products []models.Product) []models.Product {
	ids := m.IDs()

	hydrated := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		product, found := lo.Find(products, func(p models.Product) bool {
			return p.ID == id
		})
		if !found {
			continue
		}
		hydrated = append(hydrated, product)
	}

	return hydrated
}

// persist is called with the mutex held.
func (m *Manager) persist() {
	m.storage.SetItem(securestorage.CompareKey, m.ids)
}
