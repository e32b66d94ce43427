package api

import (
	"net/http"

	"github.com/origintiles/storefront/internal/dealers"
	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/samber/lo"
)

type dealersResponse struct {
	Dealers []models.Dealer `json:"dealers"`
	Total   int             `json:"total"`
}

type dealerOptionsResponse struct {
	Countries  []string                `json:"countries"`
	States     []string                `json:"states"`
	Districts  []string                `json:"districts"`
	Categories []models.DealerCategory `json:"categories"`
	Types      []models.DealerType     `json:"types"`
}

// listDealers filters the dealer network. The district parameter is
// honored only when it is valid under the requested state, so a stale
// district from a previous state selection can't zero out the results.
func (a *API) listDealers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	selection := dealers.NewSelection()
	selection.Query = params.Get("query")

	if country := params.Get("country"); country != "" {
		selection.Country = country
	}
	if state := params.Get("state"); state != "" {
		selection.SetState(state)
	}
	if district := params.Get("district"); district != "" && district != dealers.All {
		valid := lo.Contains(dealers.Districts(a.data.Dealers, selection.State), district)
		if valid {
			selection.District = district
		}
	}
	if category := params.Get("category"); category != "" {
		selection.Category = category
	}
	if dealerType := params.Get("type"); dealerType != "" {
		selection.Type = dealerType
	}

	matched := selection.Apply(a.data.Dealers)

	a.respond(w, http.StatusOK, dealersResponse{
		Dealers: matched,
		Total:   len(matched),
	})
}

// dealerOptions returns the locator option lists. District options are
// scoped to the requested state.
func (a *API) dealerOptions(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		state = dealers.All
	}

	a.respond(w, http.StatusOK, dealerOptionsResponse{
		Countries:  dealers.Countries(a.data.Dealers),
		States:     dealers.States(a.data.Dealers),
		Districts:  dealers.Districts(a.data.Dealers, state),
		Categories: dealers.Categories(),
		Types:      dealers.Types(),
	})
}
