package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
)

func TestSpecFromQuerySeedsFilters(t *testing.T) {
	values := url.Values{}
	values.Set("category", "Women")
	values.Set("type", "Slippers")
	values.Set("search", "beach")
	values.Set("sort", "priceLowHigh")

	spec := SpecFromQuery(values)

	require.Len(t, spec.Categories, 1)
	assert.Equal(t, domain.CategoryWomen, spec.Categories[0])
	require.Len(t, spec.Types, 1)
	assert.Equal(t, domain.TypeSlippers, spec.Types[0])
	assert.Equal(t, "beach", spec.Search)
	assert.Equal(t, domain.SortPriceLowHigh, spec.Sort)
	assert.Equal(t, DefaultMaxPrice, spec.MaxPrice)
}

func TestSpecFromQueryIgnoresUnknownValues(t *testing.T) {
	values := url.Values{}
	values.Set("category", "Aliens")
	values.Set("type", "Hovercraft")
	values.Set("sort", "alphabetical")

	spec := SpecFromQuery(values)

	assert.Empty(t, spec.Categories)
	assert.Empty(t, spec.Types)
	assert.Equal(t, domain.SortRecommended, spec.Sort)
}

func TestSpecFromQueryEmptyValuesYieldDefaults(t *testing.T) {
	spec := SpecFromQuery(url.Values{})

	assert.Equal(t, DefaultSpec(), spec)
}

func TestQueryWritesShareableSubset(t *testing.T) {
	spec := DefaultSpec()
	spec.Categories = []domain.Category{domain.CategoryKids}
	spec.Search = "velcro"
	spec.Sizes = []int{3}
	spec.MaxPrice = 1000

	values := Query(spec)

	assert.Equal(t, "Kids", values.Get("category"))
	assert.Equal(t, "velcro", values.Get("search"))
	assert.Empty(t, values.Get("type"))
	assert.Empty(t, values.Get("sort"))
	assert.Len(t, values, 2)
}

func TestQuerySkipsMultiCategorySelections(t *testing.T) {
	spec := DefaultSpec()
	spec.Categories = []domain.Category{domain.CategoryMen, domain.CategoryWomen}

	values := Query(spec)

	assert.Empty(t, values.Get("category"))
}

func TestQueryRoundTripsThroughSpecFromQuery(t *testing.T) {
	spec := DefaultSpec()
	spec.Categories = []domain.Category{domain.CategoryWomen}
	spec.Search = "runners"

	restored := SpecFromQuery(Query(spec))

	assert.Equal(t, spec.Categories, restored.Categories)
	assert.Equal(t, spec.Search, restored.Search)
}
