// Package store provides the gorm-backed persistence layer: the product
// catalog, the order store, the color master list and the dashboard rollups.
package store

import "errors"

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write would violate a unique business key.
	ErrDuplicate = errors.New("record already exists")
)
