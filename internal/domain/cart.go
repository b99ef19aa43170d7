package domain

// CartItem is one cart line: a full product snapshot captured at the moment
// it was added, plus the chosen size and quantity. A later change to the
// catalog's record for the product does not alter an existing line.
type CartItem struct {
	Product
	SelectedSize int `json:"selected_size"`
	Quantity     int `json:"quantity"`
}

// Key returns the line's identity within the cart. The same product in two
// different sizes is two distinct lines.
func (i *CartItem) Key() CartKey {
	return CartKey{ProductID: i.Product.ID, Size: i.SelectedSize}
}

// CartKey uniquely identifies a cart line.
type CartKey struct {
	ProductID string
	Size      int
}

// CartItems is an ordered list of cart lines.
type CartItems []CartItem

// ItemCount returns the sum of quantities across all lines.
func (items CartItems) ItemCount() int {
	var count int
	for i := range items {
		count += items[i].Quantity
	}
	return count
}

// Subtotal returns the sum of price*quantity across all lines, in whole rupees.
func (items CartItems) Subtotal() int64 {
	var total int64
	for i := range items {
		total += items[i].Price * int64(items[i].Quantity)
	}
	return total
}

// FindIndex returns the index of the line matching the given key, or -1.
func (items CartItems) FindIndex(key CartKey) int {
	for i := range items {
		if items[i].Product.ID == key.ProductID && items[i].SelectedSize == key.Size {
			return i
		}
	}
	return -1
}
