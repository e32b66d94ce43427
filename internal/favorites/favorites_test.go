package favorites_test

import (
	"testing"

	"github.com/origintiles/storefront/internal/favorites"
	"github.com/origintiles/storefront/internal/platform/keyvalue"
	"github.com/origintiles/storefront/internal/securestorage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*favorites.Manager, *securestorage.Storage) {
	t.Helper()
	logger := zerolog.Nop()
	storage := securestorage.New(keyvalue.NewMemory(), &logger)
	return favorites.NewManager(storage, &logger), storage
}

func TestUnitToggle(t *testing.T) {
	manager, storage := newManager(t)

	assert.True(t, manager.Toggle("product", "17"), "first toggle should favorite the item")
	assert.True(t, manager.IsFavorite("product", "17"), "item should be favorited")
	assert.Contains(t, storage.Keys(), "origin-tiles-favorites_product_17",
		"favorite should live under its own derived key",
	)

	assert.False(t, manager.Toggle("product", "17"), "second toggle should unfavorite the item")
	assert.False(t, manager.IsFavorite("product", "17"), "item should no longer be favorited")
	assert.NotContains(t, storage.Keys(), "origin-tiles-favorites_product_17",
		"toggle-off should remove the key instead of storing false",
	)
}

func TestUnitItemsAreIndependent(t *testing.T) {
	manager, _ := newManager(t)

	require.True(t, manager.Toggle("product", "1"), "should favorite product 1")
	require.True(t, manager.Toggle("dealer", "1"), "should favorite dealer 1")

	assert.True(t, manager.IsFavorite("product", "1"), "product favorite should be independent")
	assert.True(t, manager.IsFavorite("dealer", "1"), "dealer favorite should be independent")
	assert.False(t, manager.IsFavorite("product", "2"), "unrelated item should not be favorited")
}

func TestUnitClearRemovesOnlyFavorites(t *testing.T) {
	manager, storage := newManager(t)

	require.True(t, manager.Toggle("product", "1"), "should favorite item")
	require.True(t, storage.SetItem(securestorage.CompareKey, []string{"1"}), "should store unrelated entry")

	manager.Clear()

	assert.False(t, manager.IsFavorite("product", "1"), "favorites should be gone")
	assert.Contains(t, storage.Keys(), securestorage.CompareKey, "unrelated entries should survive")
}
