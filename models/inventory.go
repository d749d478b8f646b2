package models

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Quantity          float64   `db:"quantity" json:"quantity"`
	Unit              string    `db:"unit" json:"unit"`
	LowStockThreshold float64   `db:"low_stock_threshold" json:"lowStockThreshold"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// IsLowStock reports whether the item needs restocking. The threshold is
// inclusive: quantity equal to the threshold counts as low.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
