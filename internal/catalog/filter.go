// Package catalog implements filtering and sorting of the static product
// catalog. All functions are pure, the catalog itself is never mutated.
package catalog

import (
	"sort"
	"strings"

	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/samber/lo"
)

// Filter is the set of active product filter criteria. A product must
// satisfy every non-empty dimension; values inside one dimension are
// alternatives.
type Filter struct {
	// Query is matched case-insensitively against name and description.
	Query string
	// Categories the product category must be an element of.
	Categories []string
	// Finishes the product finish must be an element of.
	Finishes []string
	// Sizes are size tokens matched as substrings of the product size.
	Sizes []string
}

// Apply returns the products satisfying all active criteria, preserving
// catalog order.
func (f Filter) Apply(products []models.Product) []models.Product {
	return lo.Filter(products, func(p models.Product, _ int) bool {
		return f.matches(p)
	})
}

// IsEmpty reports whether no criteria are active.
func (f Filter) IsEmpty() bool {
	return f.Query == "" && len(f.Categories) == 0 && len(f.Finishes) == 0 && len(f.Sizes) == 0
}

// Reset clears the query and every filter dimension. This is the
// "clear all filters" action shown with an empty result.
func (f *Filter) Reset() {
	*f = Filter{}
}

// ToggleCategory flips membership of value in the category dimension.
// Returns true when the value was added.
func (f *Filter) ToggleCategory(value string) bool {
	var added bool
	f.Categories, added = toggle(f.Categories, value)
	return added
}

// ToggleFinish flips membership of value in the finish dimension.
// Returns true when the value was added.
func (f *Filter) ToggleFinish(value string) bool {
	var added bool
	f.Finishes, added = toggle(f.Finishes, value)
	return added
}

// ToggleSize flips membership of value in the size dimension.
// Returns true when the value was added.
func (f *Filter) ToggleSize(value string) bool {
	var added bool
	f.Sizes, added = toggle(f.Sizes, value)
	return added
}

func (f Filter) matches(p models.Product) bool {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query != "" &&
		!strings.Contains(strings.ToLower(p.Name), query) &&
		!strings.Contains(strings.ToLower(p.Description), query) {
		return false
	}

	if len(f.Categories) > 0 && !lo.Contains(f.Categories, p.Category) {
		return false
	}

	if len(f.Finishes) > 0 && !lo.Contains(f.Finishes, p.Finish) {
		return false
	}

	if len(f.Sizes) > 0 {
		matched := lo.SomeBy(f.Sizes, func(size string) bool {
			return strings.Contains(p.Size, size)
		})
		if !matched {
			return false
		}
	}

	return true
}

func toggle(values []string, value string) ([]string, bool) {
	if lo.Contains(values, value) {
		return lo.Without(values, value), false
	}
	return append(values, value), true
}

// SizeToken returns the filterable token of a size label: the part before
// the first space, or the whole label when there is none. Tokens match
// product sizes by substring, so "600x600" covers "600x600mm".
func SizeToken(size string) string {
	token, _, _ := strings.Cut(size, " ")
	return token
}

func uniqueSorted(products []models.Product, field func(models.Product) string) []string {
	values := lo.Uniq(lo.Map(products, func(p models.Product, _ int) string {
		return field(p)
	}))
	sort.Strings(values)
	return values
}

// Categories returns the sorted unique category values of the catalog.
func Categories(products []models.Product) []string {
	return uniqueSorted(products, func(p models.Product) string { return p.Category })
}

// Finishes returns the sorted unique finish values of the catalog.
func Finishes(products []models.Product) []string {
	return uniqueSorted(products, func(p models.Product) string { return p.Finish })
}

// Sizes returns the sorted unique size values of the catalog.
func Sizes(products []models.Product) []string {
	return uniqueSorted(products, func(p models.Product) string { return p.Size })
}
