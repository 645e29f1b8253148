package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/azazahmad08/kayesbackend/models"
	"gorm.io/gorm"
)

// CatalogStore is the authoritative source of product records. Lookups are
// point-in-time reads; the pricing engine resolves against whatever state the
// catalog holds at the moment of the call.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return &p, nil
}

func (s *CatalogStore) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product by code %q: %w", code, err)
	}
	return &p, nil
}

// Create inserts a new product. The product code is a unique business key;
// a second product with the same code is rejected with ErrDuplicate.
func (s *CatalogStore) Create(ctx context.Context, p *models.Product) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("code = ?", p.Code).Count(&count).Error; err != nil {
		return fmt.Errorf("check product code %q: %w", p.Code, err)
	}
	if count > 0 {
		return ErrDuplicate
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *CatalogStore) Update(ctx context.Context, p *models.Product) error {
	res := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"title":                p.Title,
			"price":                p.Price,
			"price_after_discount": p.PriceAfterDiscount,
			"image_url":            p.ImageURL,
			"categories":           p.Categories,
			"sizes":                p.Sizes,
		})
	if res.Error != nil {
		return fmt.Errorf("update product %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ProductFilter narrows and sorts a catalog listing.
type ProductFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string // created_at | price | title
	Order    string // asc | desc
}

func (s *CatalogStore) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("lower(title) LIKE ? OR lower(code) LIKE ?", pattern, pattern)
	}
	if f.Category != "" {
		// Categories is a serialized JSON array of strings.
		query = query.Where("categories LIKE ?", `%"`+f.Category+`"%`)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	sortBy := f.SortBy
	switch sortBy {
	case "price", "title", "created_at":
	default:
		sortBy = "created_at"
	}
	order := strings.ToLower(f.Order)
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	var products []models.Product
	if err := query.Order(sortBy + " " + order).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
