package orders

import (
	"encoding/json"
	"testing"

	"github.com/azazahmad08/kayesbackend/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveUnitPrice(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
		want    float64
	}{
		{"no discount", models.Product{Price: 100}, 100},
		{"discount set", models.Product{Price: 100, PriceAfterDiscount: ptr(80)}, 80},
		{"zero discount", models.Product{Price: 100, PriceAfterDiscount: ptr(0)}, 0},
		{"negative discount ignored", models.Product{Price: 100, PriceAfterDiscount: ptr(-5)}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveUnitPrice(&tc.product))
		})
	}
}

func TestNormalizeQuantity(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"nil", nil, 1},
		{"zero", 0.0, 1},
		{"negative", -2.0, 1},
		{"fraction below one", 0.4, 1},
		{"float truncates", 2.9, 2},
		{"int", 5, 5},
		{"json number", json.Number("7"), 7},
		{"numeric string", " 3 ", 3},
		{"garbage string", "abc", 1},
		{"bool", true, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeQuantity(tc.in))
		})
	}
}

func TestNormalizeDeliveryCharge(t *testing.T) {
	assert.Equal(t, 0.0, normalizeDeliveryCharge(nil))
	assert.Equal(t, 0.0, normalizeDeliveryCharge("free"))
	assert.Equal(t, 0.0, normalizeDeliveryCharge(-20.0))
	assert.Equal(t, 60.0, normalizeDeliveryCharge(60.0))
	assert.Equal(t, 99.5, normalizeDeliveryCharge("99.5"))
}

func TestLineCategory(t *testing.T) {
	product := &models.Product{Categories: models.StringList{"men", "featured"}}
	bare := &models.Product{}

	assert.Equal(t, "kids", lineCategory(CartLine{Category: "kids"}, product), "cart override wins")
	assert.Equal(t, "men", lineCategory(CartLine{}, product), "first product category")
	assert.Equal(t, "men", lineCategory(CartLine{Category: "   "}, product), "blank override is absent")
	assert.Equal(t, "", lineCategory(CartLine{}, bare), "absent when nothing matches")
}

func TestLineImageURL(t *testing.T) {
	product := &models.Product{ImageURL: "/uploads/products/a.jpg"}

	assert.Equal(t, "/custom.jpg", lineImageURL(CartLine{ImageURL: "/custom.jpg"}, product))
	assert.Equal(t, "/uploads/products/a.jpg", lineImageURL(CartLine{}, product))
}

func TestParseProductID(t *testing.T) {
	id, err := parseProductID("12")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, bad := range []ProductRef{"", "null", "not-an-id", "0", "-4", "1.5"} {
		_, err := parseProductID(bad)
		assert.Error(t, err, "ref %q", bad)
		assert.True(t, IsValidation(err))
	}
}
