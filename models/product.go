package models

import (
	"time"

	"gorm.io/gorm"
)

// AllowedCategories is the fixed vocabulary product categories are drawn from.
var AllowedCategories = []string{
	"men",
	"women",
	"kids",
	"featured",
	"new-arrival",
	"accessories",
}

// CategoryAllowed reports whether name belongs to the allowed category vocabulary.
func CategoryAllowed(name string) bool {
	for _, c := range AllowedCategories {
		if c == name {
			return true
		}
	}
	return false
}

type Product struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code               string         `gorm:"uniqueIndex;not null" json:"code"` // immutable business key
	Title              string         `gorm:"not null" json:"title"`
	Price              float64        `gorm:"not null" json:"price"`
	PriceAfterDiscount *float64       `json:"priceAfterDiscount,omitempty"`
	ImageURL           string         `json:"imageUrl"`
	Categories         StringList     `json:"categories"`
	Sizes              StringList     `json:"sizes"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// FirstCategory returns the product's first category, or "" when it has none.
func (p *Product) FirstCategory() string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[0]
}
