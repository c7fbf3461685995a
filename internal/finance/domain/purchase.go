package domain

import "time"

// Decision statuses for a purchase request. Every stored row carries a
// terminal decision; there is no pending state on the finance side.
const (
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// PurchaseRequest is one evaluated procurement request with its decision
type PurchaseRequest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrderID        string    `json:"order_id" gorm:"not null;index;size:128"`
	ItemName       string    `json:"item_name" gorm:"not null;size:64"`
	QuantityNeeded int       `json:"quantity_needed" gorm:"not null"`
	Unit           string    `json:"unit" gorm:"size:16"`
	CurrentStock   int       `json:"current_stock"`
	EstimatedCost  float64   `json:"estimated_cost" gorm:"not null"`
	Status         string    `json:"status" gorm:"not null;size:16"`
	DecisionNote   string    `json:"decision_note"`
	RequestDate    time.Time `json:"request_date" gorm:"not null;index"`
	DecisionDate   time.Time `json:"decision_date" gorm:"not null"`
}

// TableName specifies the table name
func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}

// PurchaseRepository defines the contract for the decision ledger
type PurchaseRepository interface {
	Create(request *PurchaseRequest) error
	FindAll(limit, offset int) ([]PurchaseRequest, error)
}
