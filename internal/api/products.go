package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/origintiles/storefront/internal/catalog"
	"github.com/origintiles/storefront/internal/platform/models"
)

type productsResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

type productOptionsResponse struct {
	Categories []string `json:"categories"`
	Finishes   []string `json:"finishes"`
	Sizes      []string `json:"sizes"`
}

// listProducts filters and sorts the catalog. Filter dimensions are
// repeatable query parameters, sort is a single key.
func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	filter := catalog.Filter{
		Query:      params.Get("query"),
		Categories: params["category"],
		Finishes:   params["finish"],
		Sizes:      params["size"],
	}

	products := filter.Apply(a.data.Products)
	products = catalog.Sort(products, catalog.SortKey(params.Get("sort")))

	a.respond(w, http.StatusOK, productsResponse{
		Products: products,
		Total:    len(products),
	})
}

func (a *API) getProduct(w http.ResponseWriter, r *http.Request) {
	product, found := a.data.Product(chi.URLParam(r, "id"))
	if !found {
		a.respondError(w, http.StatusNotFound, "product not found")
		return
	}

	a.respond(w, http.StatusOK, product)
}

func (a *API) productOptions(w http.ResponseWriter, _ *http.Request) {
	a.respond(w, http.StatusOK, productOptionsResponse{
		Categories: catalog.Categories(a.data.Products),
		Finishes:   catalog.Finishes(a.data.Products),
		Sizes:      catalog.Sizes(a.data.Products),
	})
}

func (a *API) listFAQ(w http.ResponseWriter, _ *http.Request) {
	a.respond(w, http.StatusOK, a.data.FAQ)
}
