package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/httputil"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/validator"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/cart"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
)

// CartHandler handles HTTP requests for the cart endpoints.
type CartHandler struct {
	container *cart.Container
	byID      map[string]domain.Product
	logger    *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler over the given container
// and catalog.
func NewCartHandler(container *cart.Container, products []domain.Product, logger *slog.Logger) *CartHandler {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CartHandler{container: container, byID: byID, logger: logger}
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      int    `json:"size" validate:"required,gte=1"`
}

// UpdateQuantityRequest is the JSON request body for setting a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// SetOpenRequest is the JSON request body for the UI open-flag setters.
type SetOpenRequest struct {
	Open bool `json:"open"`
}

// CartResponse is the JSON payload describing the full cart state.
type CartResponse struct {
	Items     domain.CartItems `json:"items"`
	ItemCount int              `json:"item_count"`
	Subtotal  int64            `json:"subtotal"`
	Open      bool             `json:"open"`
}

// --- Handlers ---

// Get handles GET /api/v1/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w)
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, ok := h.byID[req.ProductID]
	if !ok {
		httputil.WriteError(w, r, apperrors.NotFound("product", req.ProductID), h.logger)
		return
	}

	if err := h.container.Add(r.Context(), product, req.Size); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.writeCart(w)
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{productId}/{size}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	productID, size, err := cartItemParams(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	h.container.UpdateQuantity(r.Context(), productID, size, req.Quantity)
	h.writeCart(w)
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}/{size}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, size, err := cartItemParams(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.container.Remove(r.Context(), productID, size)
	h.writeCart(w)
}

// Clear handles DELETE /api/v1/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.container.Clear(r.Context())
	h.writeCart(w)
}

// SetOpen handles PUT /api/v1/cart/open
func (h *CartHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	var req SetOpenRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	h.container.SetOpen(req.Open)
	h.writeCart(w)
}

func (h *CartHandler) writeCart(w http.ResponseWriter) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: CartResponse{
			Items:     h.container.Items(),
			ItemCount: h.container.ItemCount(),
			Subtotal:  h.container.Subtotal(),
			Open:      h.container.IsOpen(),
		},
	})
}

func cartItemParams(r *http.Request) (string, int, error) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		return "", 0, apperrors.InvalidInput("productId is required")
	}

	size, err := strconv.Atoi(chi.URLParam(r, "size"))
	if err != nil {
		return "", 0, apperrors.InvalidInput("size must be an integer")
	}

	return productID, size, nil
}
