package catalog

import (
	"sort"

	"github.com/origintiles/storefront/internal/platform/models"
)

// SortKey selects the product ordering. Exactly one key is active at a time.
type SortKey string

// Sort keys.
const (
	// SortByName orders by name ascending.
	SortByName SortKey = "name"
	// SortByCategory orders by category ascending.
	SortByCategory SortKey = "category"
	// SortByNewest orders by id descending. Ids are not true timestamps,
	// so this is an approximation of recency, not a guaranteed order.
	SortByNewest SortKey = "newest"
)

// Sort returns a copy of products ordered by key. An unknown key keeps
// the original order.
func Sort(products []models.Product, key SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case SortByCategory:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Category < sorted[j].Category
		})
	case SortByNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID > sorted[j].ID
		})
	}

	return sorted
}
