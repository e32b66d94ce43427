// Package dealers implements the dealer locator filter: free-text search
// plus exact matching over the country/state/district hierarchy and the
// category and type enums. District options cascade from the selected
// state.
package dealers

import (
	"sort"
	"strings"

	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/samber/lo"
)

// All is the sentinel meaning "no restriction" for a selection field.
const All = "all"

// Selection is the active locator filter state. Zero values of the
// hierarchy fields are not valid, use NewSelection.
type Selection struct {
	// Query is matched case-insensitively against name, address, city,
	// district and state. A hit in any one field is enough.
	Query    string
	Country  string
	State    string
	District string
	Category string
	Type     string
}

// NewSelection returns a Selection with every field unrestricted.
func NewSelection() Selection {
	return Selection{
		Country:  All,
		State:    All,
		District: All,
		Category: All,
		Type:     All,
	}
}

// SetState changes the selected state and resets the district to All.
// A district chosen under the previous state is not valid under the new
// one and would silently match nothing.
func (s *Selection) SetState(state string) {
	s.State = state
	s.District = All
}

// Apply returns the dealers satisfying every active field.
func (s Selection) Apply(dealers []models.Dealer) []models.Dealer {
	return lo.Filter(dealers, func(d models.Dealer, _ int) bool {
		return s.matches(d)
	})
}

func (s Selection) matches(d models.Dealer) bool {
	query := strings.ToLower(strings.TrimSpace(s.Query))
	if query != "" {
		fields := []string{d.Name, d.Address, d.City, d.District, d.State}
		hit := lo.SomeBy(fields, func(field string) bool {
			return strings.Contains(strings.ToLower(field), query)
		})
		if !hit {
			return false
		}
	}

	if s.Country != All && d.Country != s.Country {
		return false
	}
	if s.State != All && d.State != s.State {
		return false
	}
	if s.District != All && d.District != s.District {
		return false
	}
	if s.Category != All && string(d.Category) != s.Category {
		return false
	}
	if s.Type != All && string(d.Type) != s.Type {
		return false
	}

	return true
}

// Countries returns the sorted unique countries of the dealer list.
func Countries(dealers []models.Dealer) []string {
	return uniqueSorted(dealers, func(d models.Dealer) string { return d.Country })
}

// States returns the sorted unique states of the dealer list.
func States(dealers []models.Dealer) []string {
	return uniqueSorted(dealers, func(d models.Dealer) string { return d.State })
}

// Districts returns the sorted unique districts of dealers within state,
// or of all dealers when state is All.
func Districts(dealers []models.Dealer, state string) []string {
	scoped := dealers
	if state != All {
		scoped = lo.Filter(dealers, func(d models.Dealer, _ int) bool {
			return d.State == state
		})
	}

	return uniqueSorted(scoped, func(d models.Dealer) string { return d.District })
}

// Categories returns the fixed dealer category enum.
func Categories() []models.DealerCategory {
	return []models.DealerCategory{
		models.CategoryShowroom,
		models.CategoryDealer,
		models.CategoryDistributor,
	}
}

// Types returns the fixed dealer type enum.
func Types() []models.DealerType {
	return []models.DealerType{
		models.TypeFlagshipShowroom,
		models.TypeExclusiveShowroom,
		models.TypeAuthorizedDealer,
		models.TypeDistributor,
		models.TypePartnerStore,
		models.TypeExperienceCenter,
	}
}

func uniqueSorted(dealers []models.Dealer, field func(models.Dealer) string) []string {
	values := lo.Uniq(lo.Map(dealers, func(d models.Dealer, _ int) string {
		return field(d)
	}))
	sort.Strings(values)
	return values
}
