package catalog

import (
	"net/url"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
)

// Query parameter names shared with the storefront URLs.
const (
	paramCategory = "category"
	paramType     = "type"
	paramSearch   = "search"
	paramSort     = "sort"
)

// SpecFromQuery builds a filter spec from shareable URL parameters. The
// category and type parameters seed single-element filter sets when they name
// valid enum members; unrecognized values are ignored rather than rejected,
// so a stale link still renders the unfiltered catalog.
func SpecFromQuery(values url.Values) FilterSpec {
	spec := DefaultSpec()

	if c := values.Get(paramCategory); domain.IsValidCategory(c) {
		spec.Categories = []domain.Category{domain.Category(c)}
	}
	if t := values.Get(paramType); domain.IsValidProductType(t) {
		spec.Types = []domain.ProductType{domain.ProductType(t)}
	}
	if s := values.Get(paramSearch); s != "" {
		spec.Search = s
	}
	if o := values.Get(paramSort); domain.IsValidSortOption(o) {
		spec.Sort = domain.SortOption(o)
	}

	return spec
}

// Query writes the shareable subset of a filter spec back to URL parameters:
// a single-category filter and the search term. Multi-value filter sets,
// sizes, and the price ceiling stay local state and are never serialized.
func Query(spec FilterSpec) url.Values {
	values := url.Values{}

	if len(spec.Categories) == 1 {
		values.Set(paramCategory, string(spec.Categories[0]))
	}
	if spec.Search != "" {
		values.Set(paramSearch, spec.Search)
	}

	return values
}
