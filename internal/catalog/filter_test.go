package catalog_test

import (
	"testing"

	"github.com/origintiles/storefront/internal/catalog"
	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/origintiles/storefront/internal/platform/models/modelstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitFilterByCategory(t *testing.T) {
	products := []models.Product{
		{ID: "1", Category: "Floor"},
		{ID: "2", Category: "Wall"},
	}

	filter := catalog.Filter{Categories: []string{"Floor"}}
	got := filter.Apply(products)

	require.Len(t, got, 1, "should keep only matching category")
	assert.Equal(t, "1", got[0].ID, "should keep the floor tile")
}

func TestUnitFilterConjunction(t *testing.T) {
	marble := modelstesting.FakeProduct(func(p *models.Product) {
		p.ID = "1"
		p.Name = "Carrara Marble"
		p.Description = "Classic white marble look."
		p.Category = "Floor Tiles"
		p.Finish = "Glossy"
		p.Size = "600x600mm"
	})
	slate := modelstesting.FakeProduct(func(p *models.Product) {
		p.ID = "2"
		p.Name = "Slate Grey"
		p.Description = "Rustic stone texture."
		p.Category = "Floor Tiles"
		p.Finish = "Matt"
		p.Size = "800x800mm"
	})
	subway := modelstesting.FakeProduct(func(p *models.Product) {
		p.ID = "3"
		p.Name = "Subway White"
		p.Description = "Glossy white marble style wall tile."
		p.Category = "Wall Tiles"
		p.Finish = "Glossy"
		p.Size = "300x600mm"
	})
	products := []models.Product{marble, slate, subway}

	tests := map[string]struct {
		filter  catalog.Filter
		wantIDs []string
	}{
		"empty filter matches everything": {
			filter:  catalog.Filter{},
			wantIDs: []string{"1", "2", "3"},
		},
		"query matches name or description": {
			filter:  catalog.Filter{Query: "marble"},
			wantIDs: []string{"1", "3"},
		},
		"query is case-insensitive": {
			filter:  catalog.Filter{Query: "SLATE"},
			wantIDs: []string{"2"},
		},
		"query conjoined with category": {
			filter:  catalog.Filter{Query: "marble", Categories: []string{"Wall Tiles"}},
			wantIDs: []string{"3"},
		},
		"values inside one dimension are alternatives": {
			filter:  catalog.Filter{Categories: []string{"Floor Tiles", "Wall Tiles"}},
			wantIDs: []string{"1", "2", "3"},
		},
		"finish dimension": {
			filter:  catalog.Filter{Finishes: []string{"Matt"}},
			wantIDs: []string{"2"},
		},
		"size token matches by substring": {
			filter:  catalog.Filter{Sizes: []string{"600x600"}},
			wantIDs: []string{"1"},
		},
		"all dimensions conjoined": {
			filter: catalog.Filter{
				Query:      "white",
				Categories: []string{"Wall Tiles"},
				Finishes:   []string{"Glossy"},
				Sizes:      []string{"300x600"},
			},
			wantIDs: []string{"3"},
		},
		"conflicting dimensions match nothing": {
			filter:  catalog.Filter{Categories: []string{"Wall Tiles"}, Finishes: []string{"Matt"}},
			wantIDs: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.filter.Apply(products)

			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs, "should keep exactly the matching products")
		})
	}
}

func TestUnitFilterQueryAgainstMissingDescription(t *testing.T) {
	products := []models.Product{{ID: "1", Name: "Terra"}}

	filter := catalog.Filter{Query: "rustic"}

	assert.Empty(t, filter.Apply(products), "empty description should never match a query")
}

func TestUnitToggle(t *testing.T) {
	var filter catalog.Filter

	assert.True(t, filter.ToggleCategory("Floor Tiles"), "first toggle should add the value")
	assert.True(t, filter.ToggleCategory("Wall Tiles"), "second value should be added too")
	assert.False(t, filter.ToggleCategory("Floor Tiles"), "repeated toggle should remove the value")
	assert.Equal(t, []string{"Wall Tiles"}, filter.Categories, "only the remaining value should stay active")

	assert.True(t, filter.ToggleFinish("Matt"), "finish toggle should add the value")
	assert.True(t, filter.ToggleSize("600x600"), "size toggle should add the value")
}

func TestUnitReset(t *testing.T) {
	filter := catalog.Filter{
		Query:      "marble",
		Categories: []string{"Floor Tiles"},
		Finishes:   []string{"Glossy"},
		Sizes:      []string{"600x600"},
	}

	filter.Reset()

	assert.True(t, filter.IsEmpty(), "reset should clear the query and every dimension")
}

func TestUnitSort(t *testing.T) {
	products := []models.Product{
		{ID: "2", Name: "Beta", Category: "Wall"},
		{ID: "10", Name: "Alpha", Category: "Floor"},
		{ID: "3", Name: "Gamma", Category: "Floor"},
	}

	t.Run("by name", func(t *testing.T) {
		got := catalog.Sort(products, catalog.SortByName)

		assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(got), "should order by name ascending")
	})

	t.Run("by category", func(t *testing.T) {
		got := catalog.Sort(products, catalog.SortByCategory)

		assert.Equal(t, []string{"10", "3", "2"}, ids(got), "should order by category, keeping input order inside one category")
	})

	t.Run("by newest", func(t *testing.T) {
		got := catalog.Sort(products, catalog.SortByNewest)

		// lexicographic id comparison: "3" > "2" > "10"
		assert.Equal(t, []string{"3", "2", "10"}, ids(got), "should order by id descending lexicographically")
	})

	t.Run("unknown key keeps order", func(t *testing.T) {
		got := catalog.Sort(products, "popularity")

		assert.Equal(t, []string{"2", "10", "3"}, ids(got), "unknown sort key should keep input order")
	})

	t.Run("does not mutate input", func(t *testing.T) {
		_ = catalog.Sort(products, catalog.SortByName)

		assert.Equal(t, []string{"2", "10", "3"}, ids(products), "sorting should not reorder the catalog")
	})
}

func TestUnitSizeToken(t *testing.T) {
	assert.Equal(t, "600x600", catalog.SizeToken("600x600 mm"), "token should stop at the first space")
	assert.Equal(t, "600x600mm", catalog.SizeToken("600x600mm"), "label without spaces should be its own token")
}

func TestUnitLookups(t *testing.T) {
	products := []models.Product{
		{Category: "Wall Tiles", Finish: "Matt", Size: "300x600mm"},
		{Category: "Floor Tiles", Finish: "Glossy", Size: "600x600mm"},
		{Category: "Floor Tiles", Finish: "Matt", Size: "600x600mm"},
	}

	assert.Equal(t, []string{"Floor Tiles", "Wall Tiles"}, catalog.Categories(products), "should return sorted unique categories")
	assert.Equal(t, []string{"Glossy", "Matt"}, catalog.Finishes(products), "should return sorted unique finishes")
	assert.Equal(t, []string{"300x600mm", "600x600mm"}, catalog.Sizes(products), "should return sorted unique sizes")
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
