package catalog

import (
	"sort"
	"strings"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
)

// DefaultMaxPrice is the inclusive price ceiling applied when no filter is
// set, in whole rupees. The floor is always zero.
const DefaultMaxPrice int64 = 3000

// FilterSpec is the full set of user-chosen catalog narrowing criteria.
// Empty set fields mean "no restriction".
type FilterSpec struct {
	Categories []domain.Category
	Types      []domain.ProductType
	Sizes      []int
	MaxPrice   int64
	Search     string
	Sort       domain.SortOption
}

// DefaultSpec returns a spec with no restrictions: empty filter sets, the
// default price ceiling, and recommended order.
func DefaultSpec() FilterSpec {
	return FilterSpec{
		MaxPrice: DefaultMaxPrice,
		Sort:     domain.SortRecommended,
	}
}

// Reset restores all fields to their defaults.
func (s *FilterSpec) Reset() {
	*s = DefaultSpec()
}

// Apply filters and sorts the given products. It is a pure function: the
// input slice is never modified, the result is freshly allocated, and an
// empty result is a valid state, not an error.
//
// A product passes when all five predicates hold: category, type, price
// ceiling, size intersection, and case-insensitive search over name,
// description, and category. Recommended order preserves catalog input order;
// the price orderings are stable, so equal prices retain their relative
// input order.
func Apply(products []domain.Product, spec FilterSpec) []domain.Product {
	matched := make([]domain.Product, 0, len(products))
	term := strings.ToLower(spec.Search)

	for _, p := range products {
		if !matchCategory(p, spec.Categories) {
			continue
		}
		if !matchType(p, spec.Types) {
			continue
		}
		if p.Price > spec.MaxPrice {
			continue
		}
		if !matchSize(p, spec.Sizes) {
			continue
		}
		if !matchSearch(p, term) {
			continue
		}
		matched = append(matched, p)
	}

	switch spec.Sort {
	case domain.SortPriceLowHigh:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price < matched[j].Price
		})
	case domain.SortPriceHighLow:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price > matched[j].Price
		})
	}

	return matched
}

func matchCategory(p domain.Product, categories []domain.Category) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if p.Category == c {
			return true
		}
	}
	return false
}

func matchType(p domain.Product, types []domain.ProductType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if p.Type == t {
			return true
		}
	}
	return false
}

func matchSize(p domain.Product, sizes []int) bool {
	if len(sizes) == 0 {
		return true
	}
	for _, want := range sizes {
		if p.HasSize(want) {
			return true
		}
	}
	return false
}

func matchSearch(p domain.Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(string(p.Category)), term)
}

// AllSizes returns the distinct sizes available across the given products,
// ascending. This feeds the size filter control.
func AllSizes(products []domain.Product) []int {
	seen := make(map[int]struct{})
	for _, p := range products {
		for _, s := range p.AvailableSizes {
			seen[s] = struct{}{}
		}
	}

	sizes := make([]int, 0, len(seen))
	for s := range seen {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}
