package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalogue entry. Money-like columns use fixed-point decimals
// so Total is always exactly Quantity × Price, never a float approximation.
// Deletes are hard deletes, hence no gorm.Model / DeletedAt column.
type Product struct {
	ID          uint            `gorm:"primaryKey"              json:"id"`
	SKU         int64           `gorm:"uniqueIndex;not null"    json:"sku"`
	Name        string          `gorm:"size:255;not null;index" json:"name"`
	Description string          `gorm:"type:text"               json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
