// Package http exposes the storefront state over a JSON API. The handlers
// are a thin presentation layer: they decode and validate requests, call the
// state containers, and render the shared response envelope.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/health"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/middleware"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/cart"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/session"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/wishlist"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	products []domain.Product,
	cartContainer *cart.Container,
	wishlistContainer *wishlist.Container,
	sessionFacade *session.Facade,
	tokens TokenSource,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	catalogHandler := NewCatalogHandler(products, logger)
	cartHandler := NewCartHandler(cartContainer, products, logger)
	wishlistHandler := NewWishlistHandler(wishlistContainer, products, logger)
	authHandler := NewAuthHandler(sessionFacade, tokens, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/catalog", catalogHandler.Query)
		r.Get("/catalog/sizes", catalogHandler.Sizes)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Put("/open", cartHandler.SetOpen)

			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productId}/{size}", cartHandler.UpdateItemQuantity)
			r.Delete("/items/{productId}/{size}", cartHandler.RemoveItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.Get)
			r.Delete("/", wishlistHandler.Clear)
			r.Put("/open", wishlistHandler.SetOpen)

			r.Post("/items", wishlistHandler.AddItem)
			r.Delete("/items/{productId}", wishlistHandler.RemoveItem)
			r.Post("/items/{productId}/toggle", wishlistHandler.ToggleItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.SignUp)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)

			r.With(middleware.Auth(authHandler.validateToken)).
				Get("/me", authHandler.Me)
		})
	})

	return r
}

// ContentTypeJSON sets the response content type for all API routes.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
