package command

import (
	"fmt"

	"github.com/indago/supply-chain/internal/order/domain"
)

// AggregateOrdersHandler rebuilds the weekly rollup on demand
type AggregateOrdersHandler struct {
	orders domain.OrderRepository
}

func NewAggregateOrdersHandler(orders domain.OrderRepository) *AggregateOrdersHandler {
	return &AggregateOrdersHandler{orders: orders}
}

// Handle replaces the weekly rollup with a fresh grouped sum of all
// individual orders and returns the rebuilt rows.
func (h *AggregateOrdersHandler) Handle() ([]domain.WeeklyOrder, error) {
	if err := h.orders.Aggregate(); err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	weekly, err := h.orders.ListWeekly()
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly orders: %w", err)
	}

	return weekly, nil
}
