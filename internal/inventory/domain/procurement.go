package domain

import (
	"context"
	"time"
)

// ProcurementRequest is one replenishment attempt and its outcome. Rows are
// append-only audit facts: a new attempt is always a new row, never an
// update of an existing one.
type ProcurementRequest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrderID        string    `json:"order_id" gorm:"not null;uniqueIndex;size:128"`
	Item           string    `json:"item" gorm:"not null;index;size:64"`
	QuantityNeeded int       `json:"quantity_needed" gorm:"not null"`
	Unit           string    `json:"unit" gorm:"size:16"`
	CurrentStock   int       `json:"current_stock"`
	EstimatedCost  float64   `json:"estimated_cost"`
	Status         string    `json:"status" gorm:"not null;index;size:16"`
	Payload        string    `json:"payload,omitempty"`
	Response       string    `json:"response,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name
func (ProcurementRequest) TableName() string {
	return "procurement_log"
}

// Procurement statuses. A request is "open" while pending or submitted;
// failed is terminal and is not retried.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// ProcurementLogRepository defines the contract for the append-only
// procurement log
type ProcurementLogRepository interface {
	Append(req *ProcurementRequest) error
	HasOpen(item string) (bool, error)
	FindAll(limit, offset int) ([]ProcurementRequest, error)
}

// PurchaseRequestPayload is the body sent to the finance approval endpoint
type PurchaseRequestPayload struct {
	OrderID        string  `json:"order_id"`
	ItemName       string  `json:"item_name"`
	QuantityNeeded int     `json:"quantity_needed"`
	Unit           string  `json:"unit"`
	CurrentStock   int     `json:"current_stock"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

// ApprovalResult carries the raw outcome of an approval call. Any non-2xx
// status is a rejection; the body is kept for the audit row.
type ApprovalResult struct {
	StatusCode int
	Body       string
}

// ApprovalGateway is the narrow capability the dispatcher needs from the
// finance service
type ApprovalGateway interface {
	SubmitPurchaseRequest(ctx context.Context, payload PurchaseRequestPayload) (*ApprovalResult, error)
}
