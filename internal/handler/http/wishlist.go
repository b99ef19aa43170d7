package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/httputil"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/validator"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/wishlist"
)

// WishlistHandler handles HTTP requests for the wishlist endpoints.
type WishlistHandler struct {
	container *wishlist.Container
	byID      map[string]domain.Product
	logger    *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler over the given
// container and catalog.
func NewWishlistHandler(container *wishlist.Container, products []domain.Product, logger *slog.Logger) *WishlistHandler {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &WishlistHandler{container: container, byID: byID, logger: logger}
}

// AddWishlistItemRequest is the JSON request body for adding a product.
type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// WishlistResponse is the JSON payload describing the full wishlist state.
type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
	Count      int      `json:"count"`
	Open       bool     `json:"open"`
}

// Get handles GET /api/v1/wishlist
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeWishlist(w)
}

// AddItem handles POST /api/v1/wishlist/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddWishlistItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if _, ok := h.byID[req.ProductID]; !ok {
		httputil.WriteError(w, r, apperrors.NotFound("product", req.ProductID), h.logger)
		return
	}

	h.container.Add(r.Context(), req.ProductID)
	h.writeWishlist(w)
}

// RemoveItem handles DELETE /api/v1/wishlist/items/{productId}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("productId is required"), h.logger)
		return
	}

	h.container.Remove(r.Context(), productID)
	h.writeWishlist(w)
}

// ToggleItem handles POST /api/v1/wishlist/items/{productId}/toggle
func (h *WishlistHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("productId is required"), h.logger)
		return
	}

	if _, ok := h.byID[productID]; !ok {
		httputil.WriteError(w, r, apperrors.NotFound("product", productID), h.logger)
		return
	}

	h.container.Toggle(r.Context(), productID)
	h.writeWishlist(w)
}

// Clear handles DELETE /api/v1/wishlist
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.container.Clear(r.Context())
	h.writeWishlist(w)
}

// SetOpen handles PUT /api/v1/wishlist/open
func (h *WishlistHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	var req SetOpenRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	h.container.SetOpen(req.Open)
	h.writeWishlist(w)
}

func (h *WishlistHandler) writeWishlist(w http.ResponseWriter) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: WishlistResponse{
			ProductIDs: h.container.IDs(),
			Count:      h.container.Count(),
			Open:       h.container.IsOpen(),
		},
	})
}
