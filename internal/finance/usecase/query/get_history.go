package query

import (
	"fmt"

	"github.com/indago/supply-chain/internal/finance/domain"
)

// GetHistoryQuery represents a paged request for the decision ledger
type GetHistoryQuery struct {
	Limit  int
	Offset int
}

// GetHistoryHandler serves the audit trail, newest decisions first
type GetHistoryHandler struct {
	purchases domain.PurchaseRepository
}

func NewGetHistoryHandler(purchases domain.PurchaseRepository) *GetHistoryHandler {
	return &GetHistoryHandler{purchases: purchases}
}

func (h *GetHistoryHandler) Handle(q GetHistoryQuery) ([]domain.PurchaseRequest, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	requests, err := h.purchases.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase history: %w", err)
	}
	return requests, nil
}
