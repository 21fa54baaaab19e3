package cart

// Item is one cart line: a product reference plus quantity and an optional
// variant selection (size, color). Prices are minor currency units.
type Item struct {
	ProductID      string `json:"product_id"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	ImageURL       string `json:"image_url,omitempty"`
	Quantity       int    `json:"quantity"`
	Variant        *int   `json:"variant,omitempty"`
}

// LineKey identifies a cart line. Variant -1 means "no variant selected".
type LineKey struct {
	ProductID string
	Variant   int
}

// Key returns the merge key for the item.
func (i Item) Key() LineKey {
	return lineKey(i.ProductID, i.Variant)
}

func lineKey(productID string, variant *int) LineKey {
	v := -1
	if variant != nil {
		v = *variant
	}
	return LineKey{ProductID: productID, Variant: v}
}

// Cart is an ordered collection of items. Insertion order is preserved for
// display. The total is always derived, never stored.
type Cart struct {
	Items []Item `json:"items"`
}

// TotalCents sums unit price times quantity over all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}

// Currency returns the first line's currency; mixed-currency carts are not
// supported, so the first line is authoritative.
func (c *Cart) Currency() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].Currency
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
