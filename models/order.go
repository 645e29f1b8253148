package models

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // order captured, awaiting handling
	OrderStatusProcessing OrderStatus = "processing" // being prepared/shipped
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // order called off
)

// ParseOrderStatus maps a raw string onto the fixed status enum.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid order status: %q", s)
	}
}

// Order is a captured, fully priced customer order. TotalValue and the per-line
// prices are computed server-side at creation time and never taken from the client.
type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	OrderRef       string      `gorm:"uniqueIndex" json:"orderRef"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	CustomerName   string      `json:"customerName"`
	Phone          string      `json:"phone"`
	Division       string      `json:"division"`
	District       string      `json:"district"`
	Upazila        string      `json:"upazila"`
	Address        string      `json:"address"`
	Color          string      `json:"color"`
	DeliveryCharge float64     `json:"deliveryCharge"`
	TotalValue     float64     `json:"totalValue"`
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CustomFields   JSONMap     `json:"customFields,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// OrderItem snapshots one product line at order-creation time. It is immutable
// once the order is created; later catalog edits do not touch it.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    uint    `json:"productId"`
	Title        string  `json:"title"`
	Code         string  `json:"code"`
	Price        float64 `json:"price"` // resolved unit price
	Quantity     int     `json:"quantity"`
	Size         string  `json:"size,omitempty"`
	Color        string  `json:"color"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Category     string  `json:"category,omitempty"`
	CustomFields JSONMap `json:"customFields,omitempty"`
}
