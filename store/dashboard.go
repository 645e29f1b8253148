package store

import (
	"context"
	"fmt"

	"github.com/azazahmad08/kayesbackend/models"
	"gorm.io/gorm"
)

// DashboardStats is the read-only rollup served to the admin dashboard.
type DashboardStats struct {
	TotalOrders    int64            `json:"totalOrders"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
	TotalRevenue   float64          `json:"totalRevenue"`
	TotalProducts  int64            `json:"totalProducts"`
	TotalColors    int64            `json:"totalColors"`
}

// Dashboard computes sales aggregates over stored orders.
type Dashboard struct {
	db *gorm.DB
}

func NewDashboard(db *gorm.DB) *Dashboard {
	return &Dashboard{db: db}
}

func (d *Dashboard) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{OrdersByStatus: map[string]int64{}}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := d.db.WithContext(ctx).Model(&models.Order{}).
		Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("orders by status: %w", err)
	}
	for _, r := range rows {
		stats.OrdersByStatus[r.Status] = r.Count
		stats.TotalOrders += r.Count
	}

	row := d.db.WithContext(ctx).Model(&models.Order{}).
		Select("coalesce(sum(total_value), 0)").Row()
	if err := row.Scan(&stats.TotalRevenue); err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}
	if err := d.db.WithContext(ctx).Model(&models.Product{}).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if err := d.db.WithContext(ctx).Model(&models.Color{}).
		Count(&stats.TotalColors).Error; err != nil {
		return nil, fmt.Errorf("count colors: %w", err)
	}
	return stats, nil
}
