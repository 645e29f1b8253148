// Package orders implements the order pricing and capture workflow: carts are
// validated and priced against the catalog, snapshotted into immutable
// line-items and persisted as a whole, or not at all.
package orders

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/azazahmad08/kayesbackend/models"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/google/uuid"
)

// CatalogStore is the read-only product lookup the pricing engine depends on.
type CatalogStore interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindByCode(ctx context.Context, code string) (*models.Product, error)
}

// OrderStore is the persistence the workflow writes through.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	Replace(ctx context.Context, o *models.Order) error
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

// Service is the order workflow. Both stores are passed in explicitly so tests
// can substitute fakes.
type Service struct {
	catalog CatalogStore
	orders  OrderStore
	log     *slog.Logger
}

func NewService(catalog CatalogStore, orders OrderStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{catalog: catalog, orders: orders, log: log}
}

// newOrderRef builds a unique human-readable order reference,
// e.g. 20250908130500-<uuid>.
func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CreateOrder validates and prices the cart, snapshots each line and persists
// the order. Unit prices come from the catalog at this instant, never from the
// client. Any invalid line aborts the whole request before anything is written.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if len(req.Products) == 0 {
		return nil, &ValidationError{Msg: "products are required"}
	}

	var total float64
	items := make([]models.OrderItem, 0, len(req.Products))
	for _, line := range req.Products {
		id, err := parseProductID(line.ProductID)
		if err != nil {
			return nil, err
		}

		product, err := s.catalog.FindByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Kind: "product", ID: strings.TrimSpace(string(line.ProductID))}
		}
		if err != nil {
			return nil, &StoreError{Op: "catalog lookup", Err: err}
		}

		unit := resolveUnitPrice(product)
		qty := normalizeQuantity(line.Quantity)
		total += unit * float64(qty)

		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			Title:        product.Title,
			Code:         product.Code,
			Price:        unit,
			Quantity:     qty,
			Size:         line.Size,
			Color:        strings.TrimSpace(line.Color),
			ImageURL:     lineImageURL(line, product),
			Category:     lineCategory(line, product),
			CustomFields: line.CustomFields,
		})
	}

	order := &models.Order{
		OrderRef:       newOrderRef(),
		Items:          items,
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Division:       req.Division,
		District:       req.District,
		Upazila:        req.Upazila,
		Address:        req.Address,
		Color:          strings.TrimSpace(req.Color),
		DeliveryCharge: normalizeDeliveryCharge(req.DeliveryCharge),
		TotalValue:     total,
		Status:         models.OrderStatusPending,
		CustomFields:   req.CustomFields,
		CreatedAt:      time.Now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, &StoreError{Op: "create order", Err: err}
	}

	s.log.Info("order created",
		"order_ref", order.OrderRef,
		"lines", len(order.Items),
		"total_value", order.TotalValue,
	)
	return order, nil
}

// SetStatus moves an order to a new status. Only enum membership is checked;
// any status may move to any other status.
func (s *Service) SetStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	order, err := s.orders.UpdateStatus(ctx, id, parsed)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Kind: "order", ID: strconv.FormatUint(uint64(id), 10)}
	}
	if err != nil {
		return nil, &StoreError{Op: "update order status", Err: err}
	}

	s.log.Info("order status updated", "order_id", id, "status", parsed)
	return order, nil
}

// ReplaceOrder overwrites the mutable part of a stored order: contact fields,
// top-level color, delivery charge, custom fields and status. Line-items and
// the computed total are untouched.
func (s *Service) ReplaceOrder(ctx context.Context, id uint, req UpdateOrderRequest) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Kind: "order", ID: strconv.FormatUint(uint64(id), 10)}
	}
	if err != nil {
		return nil, &StoreError{Op: "find order", Err: err}
	}

	status := order.Status
	if req.Status != "" {
		status, err = models.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, &ValidationError{Msg: err.Error()}
		}
	}

	order.CustomerName = req.CustomerName
	order.Phone = req.Phone
	order.Division = req.Division
	order.District = req.District
	order.Upazila = req.Upazila
	order.Address = req.Address
	order.Color = strings.TrimSpace(req.Color)
	order.DeliveryCharge = normalizeDeliveryCharge(req.DeliveryCharge)
	order.CustomFields = req.CustomFields
	order.Status = status

	if err := s.orders.Replace(ctx, order); err != nil {
		return nil, &StoreError{Op: "replace order", Err: err}
	}
	return order, nil
}
