package command

import (
	"fmt"
	"time"

	"github.com/indago/supply-chain/internal/finance/domain"
)

// EvaluatePurchaseCommand carries a purchase request submitted by the
// inventory service
type EvaluatePurchaseCommand struct {
	OrderID        string  `json:"order_id"`
	ItemName       string  `json:"item_name"`
	QuantityNeeded int     `json:"quantity_needed"`
	Unit           string  `json:"unit"`
	CurrentStock   int     `json:"current_stock"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

// EvaluatePurchaseHandler decides purchase requests and records every
// decision in the ledger
type EvaluatePurchaseHandler struct {
	purchases domain.PurchaseRepository
	policy    domain.BudgetPolicy
}

func NewEvaluatePurchaseHandler(purchases domain.PurchaseRepository, policy domain.BudgetPolicy) *EvaluatePurchaseHandler {
	return &EvaluatePurchaseHandler{purchases: purchases, policy: policy}
}

// Handle validates, decides and persists a purchase request. Validation
// failures return before anything is written; approved and rejected
// requests are both recorded.
func (h *EvaluatePurchaseHandler) Handle(cmd EvaluatePurchaseCommand) (*domain.PurchaseRequest, error) {
	if err := h.validate(cmd); err != nil {
		return nil, err
	}

	status, note := h.policy.Evaluate(cmd.EstimatedCost)
	now := time.Now().UTC()

	request := &domain.PurchaseRequest{
		OrderID:        cmd.OrderID,
		ItemName:       cmd.ItemName,
		QuantityNeeded: cmd.QuantityNeeded,
		Unit:           cmd.Unit,
		CurrentStock:   cmd.CurrentStock,
		EstimatedCost:  cmd.EstimatedCost,
		Status:         status,
		DecisionNote:   note,
		RequestDate:    now,
		DecisionDate:   now,
	}

	if err := h.purchases.Create(request); err != nil {
		return nil, fmt.Errorf("failed to record purchase request: %w", err)
	}

	return request, nil
}

func (h *EvaluatePurchaseHandler) validate(cmd EvaluatePurchaseCommand) error {
	if cmd.OrderID == "" {
		return fmt.Errorf("order_id is required")
	}
	if cmd.ItemName == "" {
		return fmt.Errorf("item_name is required")
	}
	if cmd.QuantityNeeded <= 0 {
		return fmt.Errorf("quantity_needed must be positive")
	}
	if cmd.EstimatedCost <= 0 {
		return fmt.Errorf("estimated_cost must be positive")
	}
	return nil
}
