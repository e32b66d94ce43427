package securestorage

import "fmt"

// Storage keys for persisted visitor state.
const (
	// CompareKey stores the comparison list as an array of product ids.
	CompareKey = "origin-tiles-compare"
	// FavoritesKeyPrefix is the prefix of derived per-item favorite keys.
	FavoritesKeyPrefix = "origin-tiles-favorites"
	// RecentlyViewedKey stores the recently-viewed page entries.
	RecentlyViewedKey = "recentlyViewed"
	// ThemeKey is reserved for the site theme preference.
	ThemeKey = "origin-tiles-theme"
	// ChatHistoryKey stores the full chat message history.
	ChatHistoryKey = "originTilesChatHistory"
)

// FavoriteKey returns the storage key of a single favorite entry.
// Each favorite lives under its own key, not in one aggregate value.
func FavoriteKey(itemType, itemID string) string {
	return fmt.Sprintf("%s_%s_%s", FavoritesKeyPrefix, itemType, itemID)
}
