package dealers_test

import (
	"testing"

	"github.com/origintiles/storefront/internal/dealers"
	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/origintiles/storefront/internal/platform/models/modelstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locatorDealers() []models.Dealer {
	pune := modelstesting.FakeDealer(func(d *models.Dealer) {
		d.ID = "1"
		d.Name = "Origin Tiles Pune"
		d.Country = "India"
		d.State = "Maharashtra"
		d.District = "Pune"
		d.City = "Pune"
		d.Address = "12 FC Road"
		d.Category = models.CategoryShowroom
		d.Type = models.TypeFlagshipShowroom
	})
	delhi := modelstesting.FakeDealer(func(d *models.Dealer) {
		d.ID = "2"
		d.Name = "Capital Ceramics"
		d.Country = "India"
		d.State = "Delhi"
		d.District = "South Delhi"
		d.City = "New Delhi"
		d.Address = "44 Lajpat Nagar"
		d.Category = models.CategoryDealer
		d.Type = models.TypeAuthorizedDealer
	})
	mumbai := modelstesting.FakeDealer(func(d *models.Dealer) {
		d.ID = "3"
		d.Name = "Westline Distributors"
		d.Country = "India"
		d.State = "Maharashtra"
		d.District = "Mumbai Suburban"
		d.City = "Mumbai"
		d.Address = "8 Link Road, Andheri"
		d.Category = models.CategoryDistributor
		d.Type = models.TypeDistributor
	})
	return []models.Dealer{pune, delhi, mumbai}
}

func TestUnitSelectionApply(t *testing.T) {
	list := locatorDealers()

	tests := map[string]struct {
		change  func(s *dealers.Selection)
		wantIDs []string
	}{
		"unrestricted selection returns everything": {
			change:  func(_ *dealers.Selection) {},
			wantIDs: []string{"1", "2", "3"},
		},
		"query matches any text field": {
			change:  func(s *dealers.Selection) { s.Query = "andheri" },
			wantIDs: []string{"3"},
		},
		"query matches state name": {
			change:  func(s *dealers.Selection) { s.Query = "maharashtra" },
			wantIDs: []string{"1", "3"},
		},
		"state filter": {
			change:  func(s *dealers.Selection) { s.SetState("Maharashtra") },
			wantIDs: []string{"1", "3"},
		},
		"state and district": {
			change: func(s *dealers.Selection) {
				s.SetState("Maharashtra")
				s.District = "Pune"
			},
			wantIDs: []string{"1"},
		},
		"category filter": {
			change:  func(s *dealers.Selection) { s.Category = string(models.CategoryDealer) },
			wantIDs: []string{"2"},
		},
		"type filter": {
			change:  func(s *dealers.Selection) { s.Type = string(models.TypeFlagshipShowroom) },
			wantIDs: []string{"1"},
		},
		"query conjoined with state": {
			change: func(s *dealers.Selection) {
				s.Query = "origin"
				s.SetState("Maharashtra")
			},
			wantIDs: []string{"1"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			selection := dealers.NewSelection()
			tt.change(&selection)

			got := selection.Apply(list)

			gotIDs := make([]string, 0, len(got))
			for _, d := range got {
				gotIDs = append(gotIDs, d.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs, "should keep exactly the matching dealers")
		})
	}
}

func TestUnitCascadingDistrictReset(t *testing.T) {
	list := locatorDealers()

	selection := dealers.NewSelection()
	selection.SetState("Maharashtra")
	selection.District = "Pune"

	require.Equal(t, []string{"1"}, applyIDs(selection, list), "Pune dealer should match before the state change")

	// changing the state must drop the stale district
	selection.SetState("Delhi")

	assert.Equal(t, dealers.All, selection.District, "district should reset to all on state change")
	assert.Equal(t, []string{"2"}, applyIDs(selection, list),
		"Delhi dealers should match instead of silently returning nothing",
	)
}

func TestUnitDistrictOptionsScopedByState(t *testing.T) {
	list := locatorDealers()

	t.Run("scoped to state", func(t *testing.T) {
		got := dealers.Districts(list, "Maharashtra")

		assert.Equal(t, []string{"Mumbai Suburban", "Pune"}, got, "should list only Maharashtra districts")
		assert.NotContains(t, got, "South Delhi", "districts of other states should be excluded")
	})

	t.Run("unscoped", func(t *testing.T) {
		got := dealers.Districts(list, dealers.All)

		assert.Equal(t, []string{"Mumbai Suburban", "Pune", "South Delhi"}, got, "should list every district")
	})
}

func TestUnitLookups(t *testing.T) {
	list := locatorDealers()

	assert.Equal(t, []string{"India"}, dealers.Countries(list), "should return unique countries")
	assert.Equal(t, []string{"Delhi", "Maharashtra"}, dealers.States(list), "should return sorted unique states")
	assert.Len(t, dealers.Categories(), 3, "category enum should have three values")
	assert.Len(t, dealers.Types(), 6, "type enum should have six values")
}

func applyIDs(selection dealers.Selection, list []models.Dealer) []string {
	got := selection.Apply(list)
	ids := make([]string, 0, len(got))
	for _, d := range got {
		ids = append(ids, d.ID)
	}
	return ids
}
