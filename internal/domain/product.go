package domain

import "fmt"

// Category is the top-level catalog segment a product belongs to.
type Category string

const (
	CategoryMen   Category = "Men"
	CategoryWomen Category = "Women"
	CategoryKids  Category = "Kids"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryMen, CategoryWomen, CategoryKids}
}

// IsValidCategory checks whether the given string names a category.
func IsValidCategory(s string) bool {
	switch Category(s) {
	case CategoryMen, CategoryWomen, CategoryKids:
		return true
	}
	return false
}

// ProductType is the footwear style of a product.
type ProductType string

const (
	TypeCasual   ProductType = "Casual"
	TypeFormal   ProductType = "Formal"
	TypeSports   ProductType = "Sports"
	TypeSandals  ProductType = "Sandals"
	TypeSlippers ProductType = "Slippers"
)

// ProductTypes returns all valid product types in display order.
func ProductTypes() []ProductType {
	return []ProductType{TypeCasual, TypeFormal, TypeSports, TypeSandals, TypeSlippers}
}

// IsValidProductType checks whether the given string names a product type.
func IsValidProductType(s string) bool {
	switch ProductType(s) {
	case TypeCasual, TypeFormal, TypeSports, TypeSandals, TypeSlippers:
		return true
	}
	return false
}

// SortOption selects the ordering of catalog query results.
type SortOption string

const (
	SortRecommended  SortOption = "recommended"
	SortPriceLowHigh SortOption = "priceLowHigh"
	SortPriceHighLow SortOption = "priceHighLow"
)

// IsValidSortOption checks whether the given string names a sort option.
func IsValidSortOption(s string) bool {
	switch SortOption(s) {
	case SortRecommended, SortPriceLowHigh, SortPriceHighLow:
		return true
	}
	return false
}

// Product represents one read-only entry of the seeded catalog.
// Prices are whole rupees.
type Product struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Price          int64       `json:"price"`
	OriginalPrice  *int64      `json:"original_price,omitempty"`
	Category       Category    `json:"category"`
	Type           ProductType `json:"type"`
	ImageURL       string      `json:"image_url"`
	Description    string      `json:"description"`
	AvailableSizes []int       `json:"available_sizes"`
	Rating         float64     `json:"rating"`
	ReviewsCount   int         `json:"reviews_count"`
	IsNew          bool        `json:"is_new,omitempty"`
}

// Validate checks the product invariants: non-empty identity, a non-empty
// size list, an original price strictly above the sale price when present,
// and a rating within 0..5.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: price must not be negative", p.ID)
	}
	if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
		return fmt.Errorf("product %s: original price must be greater than price", p.ID)
	}
	if !IsValidCategory(string(p.Category)) {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if !IsValidProductType(string(p.Type)) {
		return fmt.Errorf("product %s: unknown type %q", p.ID, p.Type)
	}
	if len(p.AvailableSizes) == 0 {
		return fmt.Errorf("product %s: available sizes must not be empty", p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %s: rating must be within 0..5", p.ID)
	}
	if p.ReviewsCount < 0 {
		return fmt.Errorf("product %s: reviews count must not be negative", p.ID)
	}
	return nil
}

// HasSize reports whether the given size is one of the product's available sizes.
func (p *Product) HasSize(size int) bool {
	for _, s := range p.AvailableSizes {
		if s == size {
			return true
		}
	}
	return false
}
