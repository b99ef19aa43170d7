package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// CartItems.Subtotal Tests
// ============================================================================

func TestSubtotal_SingleLine(t *testing.T) {
	items := CartItems{
		{Product: Product{Price: 1299}, SelectedSize: 8, Quantity: 2},
	}
	assert.Equal(t, int64(2598), items.Subtotal())
}

func TestSubtotal_MultipleLines(t *testing.T) {
	items := CartItems{
		{Product: Product{Price: 1000}, Quantity: 2},
		{Product: Product{Price: 500}, Quantity: 3},
		{Product: Product{Price: 2500}, Quantity: 1},
	}
	// 2000 + 1500 + 2500 = 6000
	assert.Equal(t, int64(6000), items.Subtotal())
}

func TestSubtotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), CartItems{}.Subtotal())
	assert.Equal(t, int64(0), CartItems(nil).Subtotal())
}

// ============================================================================
// CartItems.ItemCount Tests
// ============================================================================

func TestItemCount_MultipleLines(t *testing.T) {
	items := CartItems{
		{Quantity: 2},
		{Quantity: 3},
	}
	assert.Equal(t, 5, items.ItemCount())
}

func TestItemCount_Empty(t *testing.T) {
	assert.Equal(t, 0, CartItems(nil).ItemCount())
}

// ============================================================================
// CartItems.FindIndex Tests
// ============================================================================

func TestFindIndex_SameProductDifferentSizes(t *testing.T) {
	items := CartItems{
		{Product: Product{ID: "m1"}, SelectedSize: 8, Quantity: 1},
		{Product: Product{ID: "m1"}, SelectedSize: 9, Quantity: 1},
	}

	assert.Equal(t, 0, items.FindIndex(CartKey{ProductID: "m1", Size: 8}))
	assert.Equal(t, 1, items.FindIndex(CartKey{ProductID: "m1", Size: 9}))
	assert.Equal(t, -1, items.FindIndex(CartKey{ProductID: "m1", Size: 10}))
	assert.Equal(t, -1, items.FindIndex(CartKey{ProductID: "w1", Size: 8}))
}

// ============================================================================
// Product Tests
// ============================================================================

func validProduct() Product {
	orig := int64(1599)
	return Product{
		ID:             "m1",
		Name:           "Sporty Red Kicks",
		Price:          1299,
		OriginalPrice:  &orig,
		Category:       CategoryMen,
		Type:           TypeSports,
		ImageURL:       "https://img.example.com/m1.jpg",
		Description:    "High-performance sporty sneakers.",
		AvailableSizes: []int{7, 8, 9, 10, 11},
		Rating:         4.5,
		ReviewsCount:   120,
		IsNew:          true,
	}
}

func TestProductValidate_OK(t *testing.T) {
	p := validProduct()
	assert.NoError(t, p.Validate())
}

func TestProductValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product)
	}{
		{"missing id", func(p *Product) { p.ID = "" }},
		{"missing name", func(p *Product) { p.Name = "" }},
		{"negative price", func(p *Product) { p.Price = -1 }},
		{"original price not above price", func(p *Product) { op := p.Price; p.OriginalPrice = &op }},
		{"unknown category", func(p *Product) { p.Category = "Unisex" }},
		{"unknown type", func(p *Product) { p.Type = "Boots" }},
		{"empty sizes", func(p *Product) { p.AvailableSizes = nil }},
		{"rating above 5", func(p *Product) { p.Rating = 5.1 }},
		{"negative reviews", func(p *Product) { p.ReviewsCount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestProductHasSize(t *testing.T) {
	p := validProduct()
	assert.True(t, p.HasSize(8))
	assert.False(t, p.HasSize(13))
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, IsValidCategory("Kids"))
	assert.False(t, IsValidCategory("kids"))
	assert.True(t, IsValidProductType("Slippers"))
	assert.False(t, IsValidProductType("Loafers"))
	assert.True(t, IsValidSortOption("priceLowHigh"))
	assert.False(t, IsValidSortOption("newest"))
}
