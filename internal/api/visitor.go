package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/origintiles/storefront/internal/compare"
	"github.com/origintiles/storefront/internal/platform/models"
)

type compareResponse struct {
	IDs      []string         `json:"ids"`
	Products []models.Product `json:"products"`
}

type addToCompareRequest struct {
	ProductID string `json:"productId"`
}

type favoriteResponse struct {
	Favorited bool `json:"favorited"`
}

type trackRecentRequest struct {
	Page string `json:"page"`
}

func (a *API) getCompare(w http.ResponseWriter, _ *http.Request) {
	a.respond(w, http.StatusOK, compareResponse{
		IDs:      a.compare.IDs(),
		Products: a.compare.Hydrate(a.data.Products),
	})
}

func (a *API) addToCompare(w http.ResponseWriter, r *http.Request) {
	var req addToCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, found := a.data.Product(req.ProductID); !found {
		a.respondError(w, http.StatusNotFound, "product not found")
		return
	}

	err := a.compare.Add(req.ProductID)
	switch {
	case errors.Is(err, compare.ErrListFull):
		a.respondError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, compare.ErrAlreadyListed):
		a.respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		a.respondError(w, http.StatusInternalServerError, "can't add product to comparison")
		return
	}

	a.respond(w, http.StatusCreated, compareResponse{
		IDs:      a.compare.IDs(),
		Products: a.compare.Hydrate(a.data.Products),
	})
}

func (a *API) removeFromCompare(w http.ResponseWriter, r *http.Request) {
	if removed := a.compare.Remove(chi.URLParam(r, "id")); !removed {
		a.respondError(w, http.StatusNotFound, "product is not in comparison list")
		return
	}

	a.respond(w, http.StatusNoContent, nil)
}

func (a *API) clearCompare(w http.ResponseWriter, _ *http.Request) {
	a.compare.Clear()
	a.respond(w, http.StatusNoContent, nil)
}

func (a *API) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	favorited := a.favorites.Toggle(chi.URLParam(r, "type"), chi.URLParam(r, "id"))

	a.respond(w, http.StatusOK, favoriteResponse{Favorited: favorited})
}

func (a *API) getFavorite(w http.ResponseWriter, r *http.Request) {
	favorited := a.favorites.IsFavorite(chi.URLParam(r, "type"), chi.URLParam(r, "id"))

	a.respond(w, http.StatusOK, favoriteResponse{Favorited: favorited})
}

func (a *API) listRecent(w http.ResponseWriter, _ *http.Request) {
	a.respond(w, http.StatusOK, a.recent.List())
}

func (a *API) trackRecent(w http.ResponseWriter, r *http.Request) {
	var req trackRecentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a.recent.Track(req.Page)
	a.respond(w, http.StatusNoContent, nil)
}
