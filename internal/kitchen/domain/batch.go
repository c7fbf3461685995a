package domain

import "time"

// BatchConsumptionRecord is one committed production row, append-only. A
// re-run of the same date appends new rows; idempotence is the caller's
// responsibility.
type BatchConsumptionRecord struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ProductionDate string    `json:"production_date" gorm:"not null;index;size:10"`
	Item           string    `json:"item" gorm:"not null;size:64"`
	Quantity       int       `json:"quantity" gorm:"not null"`
	Unit           string    `json:"unit" gorm:"not null;size:16"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name
func (BatchConsumptionRecord) TableName() string {
	return "batch_consumption"
}

// BatchRepository defines the contract for the append-only batch log
type BatchRepository interface {
	// AppendAll persists the records of one production run atomically:
	// either every row becomes visible or none do.
	AppendAll(records []BatchConsumptionRecord) error
	FindByDate(date string) ([]BatchConsumptionRecord, error)
}
