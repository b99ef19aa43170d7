package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/httputil"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/catalog"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
)

// CatalogHandler serves filtered views of the seed catalog.
type CatalogHandler struct {
	products []domain.Product
	logger   *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(products []domain.Product, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{products: products, logger: logger}
}

// CatalogResponse is the JSON payload of a catalog query.
type CatalogResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// SizesResponse lists the distinct sizes across the catalog.
type SizesResponse struct {
	Sizes []int `json:"sizes"`
}

// Query handles GET /api/v1/catalog
func (h *CatalogHandler) Query(w http.ResponseWriter, r *http.Request) {
	spec := specFromRequest(r.URL.Query())
	result := catalog.Apply(h.products, spec)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: CatalogResponse{Products: result, Total: len(result)},
	})
}

// Sizes handles GET /api/v1/catalog/sizes
func (h *CatalogHandler) Sizes(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: SizesResponse{Sizes: catalog.AllSizes(h.products)},
	})
}

// specFromRequest extends the shareable URL parameter mapping with the
// filter-sidebar parameters that never appear in shared links: repeated size
// values and the price ceiling. Unparsable values are ignored.
func specFromRequest(query url.Values) catalog.FilterSpec {
	spec := catalog.SpecFromQuery(query)

	for _, raw := range query["size"] {
		if size, err := strconv.Atoi(raw); err == nil {
			spec.Sizes = append(spec.Sizes, size)
		}
	}

	if raw := query.Get("max_price"); raw != "" {
		if ceiling, err := strconv.ParseInt(raw, 10, 64); err == nil && ceiling >= 0 {
			spec.MaxPrice = ceiling
		}
	}

	return spec
}
