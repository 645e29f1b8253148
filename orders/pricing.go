package orders

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/azazahmad08/kayesbackend/models"
)

// resolveUnitPrice returns the authoritative unit price for a product: the
// discounted price when one is set and non-negative, the regular price
// otherwise. Client-supplied prices are never consulted.
func resolveUnitPrice(p *models.Product) float64 {
	if p.PriceAfterDiscount != nil && *p.PriceAfterDiscount >= 0 {
		return *p.PriceAfterDiscount
	}
	return p.Price
}

// toNumber coerces a decoded JSON value to a float64. ok is false for absent
// and non-numeric values.
func toNumber(v any) (f float64, ok bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// normalizeQuantity coerces a requested quantity to an integer >= 1. Absent,
// non-numeric and values below 1 all fall back to 1.
func normalizeQuantity(v any) int {
	f, ok := toNumber(v)
	if !ok || f < 1 {
		return 1
	}
	return int(f)
}

// normalizeDeliveryCharge parses a delivery charge to a non-negative amount,
// defaulting to 0.
func normalizeDeliveryCharge(v any) float64 {
	f, ok := toNumber(v)
	if !ok || f < 0 {
		return 0
	}
	return f
}

// lineCategory picks the cart line's category override when present, falling
// back to the product's first category. Easy to get backward: the cart wins.
func lineCategory(line CartLine, p *models.Product) string {
	if c := strings.TrimSpace(line.Category); c != "" {
		return c
	}
	return p.FirstCategory()
}

// lineImageURL prefers the cart line's image override over the product image.
func lineImageURL(line CartLine, p *models.Product) string {
	if line.ImageURL != "" {
		return line.ImageURL
	}
	return p.ImageURL
}
