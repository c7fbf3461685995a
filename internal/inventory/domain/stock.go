package domain

import (
	"context"
	"time"
)

// StockItem represents the on-hand quantity of a single raw material. Rows
// are seeded at startup and mutated only by consumption; quantity never goes
// below zero.
type StockItem struct {
	Item      string    `json:"item" gorm:"primaryKey;size:64"`
	Quantity  int       `json:"quantity" gorm:"not null;default:0"`
	Unit      string    `json:"unit" gorm:"size:16"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (StockItem) TableName() string {
	return "stock_items"
}

// ConsumptionRow is a single line of a consumption event
type ConsumptionRow struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// AppliedConsumption reports what a consumption row did to the ledger.
// Clamped is set when the requested quantity exceeded the on-hand quantity
// and the result was floored at zero; Created when the item was unknown and
// seeded at zero before applying.
type AppliedConsumption struct {
	Item      string `json:"item"`
	Consumed  int    `json:"consumed"`
	Remaining int    `json:"remaining"`
	Clamped   bool   `json:"clamped,omitempty"`
	Created   bool   `json:"created,omitempty"`
}

// StockRepository defines the contract for stock ledger data access
type StockRepository interface {
	FindByItem(ctx context.Context, item string) (*StockItem, error)
	FindAll(ctx context.Context) ([]StockItem, error)
	Save(ctx context.Context, item *StockItem) error
	Seed(ctx context.Context, items []StockItem) error

	// Transaction runs fn against a repository bound to a single database
	// transaction; all writes are committed together or not at all.
	Transaction(ctx context.Context, fn func(StockRepository) error) error
}
