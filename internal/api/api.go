// Package api exposes the storefront engine over a JSON HTTP API.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/origintiles/storefront/internal/catalogdata"
	"github.com/origintiles/storefront/internal/chat"
	"github.com/origintiles/storefront/internal/compare"
	"github.com/origintiles/storefront/internal/favorites"
	"github.com/origintiles/storefront/internal/recent"
	"github.com/rs/zerolog"
)

// API holds the handlers over the storefront engine.
type API struct {
	logger    *zerolog.Logger
	data      *catalogdata.Data
	compare   *compare.Manager
	favorites *favorites.Manager
	recent    *recent.Tracker
	chat      *chat.Session
}

// New returns new API over the provided managers.
func New(
	logger *zerolog.Logger,
	data *catalogdata.Data,
	compareManager *compare.Manager,
	favoritesManager *favorites.Manager,
	recentTracker *recent.Tracker,
	chatSession *chat.Session,
) *API {
	return &API{
		logger:    logger,
		data:      data,
		compare:   compareManager,
		favorites: favoritesManager,
		recent:    recentTracker,
		chat:      chatSession,
	}
}

// Router returns the HTTP router with all storefront routes registered.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", a.listProducts)
		r.Get("/products/options", a.productOptions)
		r.Get("/products/{id}", a.getProduct)

		r.Get("/dealers", a.listDealers)
		r.Get("/dealers/options", a.dealerOptions)

		r.Get("/compare", a.getCompare)
		r.Post("/compare", a.addToCompare)
		r.Delete("/compare", a.clearCompare)
		r.Delete("/compare/{id}", a.removeFromCompare)

		r.Post("/favorites/{type}/{id}/toggle", a.toggleFavorite)
		r.Get("/favorites/{type}/{id}", a.getFavorite)

		r.Get("/recent", a.listRecent)
		r.Post("/recent", a.trackRecent)

		r.Get("/faq", a.listFAQ)

		r.Get("/chat", a.getChat)
		r.Post("/chat/open", a.openChat)
		r.Post("/chat/minimize", a.minimizeChat)
		r.Post("/chat/close", a.closeChat)
		r.Post("/chat/messages", a.sendChatMessage)
		r.Delete("/chat", a.clearChat)
	})

	return r
}
