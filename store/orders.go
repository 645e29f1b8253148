package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/azazahmad08/kayesbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderStore persists finalized orders. An order is written exactly once with
// all of its line-items; afterwards it only changes through Replace or
// UpdateStatus, and deletes are hard deletes.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (s *OrderStore) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}
	return &o, nil
}

func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Replace saves the order record as a whole. Line-items are immutable and are
// deliberately left untouched.
func (s *OrderStore) Replace(ctx context.Context, o *models.Order) error {
	res := s.db.WithContext(ctx).Omit(clause.Associations).Save(o)
	if res.Error != nil {
		return fmt.Errorf("replace order %d: %w", o.ID, res.Error)
	}
	return nil
}

// UpdateStatus moves the order to the given status and returns the updated
// record. Any status may move to any other status.
func (s *OrderStore) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}
	order.Status = status
	return order, nil
}

func (s *OrderStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order %d items: %w", id, err)
		}
		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete order %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
