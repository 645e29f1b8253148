package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/azazahmad08/kayesbackend/models"
	"gorm.io/gorm"
)

// ColorStore maintains the color master list.
type ColorStore struct {
	db *gorm.DB
}

func NewColorStore(db *gorm.DB) *ColorStore {
	return &ColorStore{db: db}
}

func (s *ColorStore) List(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	return colors, nil
}

func (s *ColorStore) Create(ctx context.Context, color *models.Color) error {
	color.Name = strings.TrimSpace(color.Name)
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Color{}).
		Where("name = ?", color.Name).Count(&count).Error; err != nil {
		return fmt.Errorf("check color %q: %w", color.Name, err)
	}
	if count > 0 {
		return ErrDuplicate
	}
	if err := s.db.WithContext(ctx).Create(color).Error; err != nil {
		return fmt.Errorf("create color: %w", err)
	}
	return nil
}

func (s *ColorStore) Update(ctx context.Context, id uint, name string) (*models.Color, error) {
	var color models.Color
	if err := s.db.WithContext(ctx).First(&color, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find color %d: %w", id, err)
	}
	color.Name = strings.TrimSpace(name)
	if err := s.db.WithContext(ctx).Save(&color).Error; err != nil {
		return nil, fmt.Errorf("update color %d: %w", id, err)
	}
	return &color, nil
}

func (s *ColorStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Color{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete color %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
