package orders

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/azazahmad08/kayesbackend/models"
)

// ProductRef is a product id as submitted by the client. Clients send either a
// JSON number or a string; the raw value is kept verbatim for error reporting.
type ProductRef string

func (r *ProductRef) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ProductRef(s)
		return nil
	}
	*r = ProductRef(b)
	return nil
}

// parseProductID turns a client product reference into a catalog id.
func parseProductID(ref ProductRef) (uint, error) {
	raw := strings.TrimSpace(string(ref))
	if raw == "" || raw == "null" {
		return 0, &ValidationError{Msg: "productId is required"}
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &ValidationError{Msg: "invalid product id: " + raw}
	}
	return uint(id), nil
}

// CartLine is one requested product line of a prospective order. It exists only
// for the duration of order creation and is never persisted as-is.
type CartLine struct {
	ProductID    ProductRef     `json:"productId"`
	Quantity     any            `json:"quantity"`
	Size         string         `json:"size"`
	Color        string         `json:"color"`
	Category     string         `json:"category"`
	ImageURL     string         `json:"imageUrl"`
	CustomFields models.JSONMap `json:"customFields"`
}

// CreateOrderRequest is the client-submitted cart plus customer contact fields.
// Prices and totals are intentionally absent: they are resolved server-side.
type CreateOrderRequest struct {
	Products       []CartLine     `json:"products"`
	CustomerName   string         `json:"customerName"`
	Phone          string         `json:"phone"`
	Division       string         `json:"division"`
	District       string         `json:"district"`
	Upazila        string         `json:"upazila"`
	Address        string         `json:"address"`
	Color          string         `json:"color"`
	DeliveryCharge any            `json:"deliveryCharge"`
	CustomFields   models.JSONMap `json:"customFields"`
}

// UpdateOrderRequest replaces the mutable part of a stored order. Line-items
// are immutable once created and cannot be changed here.
type UpdateOrderRequest struct {
	CustomerName   string         `json:"customerName"`
	Phone          string         `json:"phone"`
	Division       string         `json:"division"`
	District       string         `json:"district"`
	Upazila        string         `json:"upazila"`
	Address        string         `json:"address"`
	Color          string         `json:"color"`
	DeliveryCharge any            `json:"deliveryCharge"`
	Status         string         `json:"status"`
	CustomFields   models.JSONMap `json:"customFields"`
}
