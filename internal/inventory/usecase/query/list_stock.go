package query

import (
	"context"
	"fmt"

	"github.com/indago/supply-chain/internal/inventory/domain"
)

// ListStockQuery represents the query to list the stock ledger
type ListStockQuery struct{}

// ListStockHandler handles list stock query
type ListStockHandler struct {
	repo domain.StockRepository
}

// NewListStockHandler creates a new list stock handler
func NewListStockHandler(repo domain.StockRepository) *ListStockHandler {
	return &ListStockHandler{repo: repo}
}

// Handle executes the list stock query
func (h *ListStockHandler) Handle(ctx context.Context, _ ListStockQuery) ([]domain.StockItem, error) {
	items, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	return items, nil
}
