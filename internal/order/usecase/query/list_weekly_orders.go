package query

import (
	"fmt"

	"github.com/indago/supply-chain/internal/order/domain"
)

// ListWeeklyOrdersHandler serves the rollup consumed by production planning
type ListWeeklyOrdersHandler struct {
	orders domain.OrderRepository
}

func NewListWeeklyOrdersHandler(orders domain.OrderRepository) *ListWeeklyOrdersHandler {
	return &ListWeeklyOrdersHandler{orders: orders}
}

func (h *ListWeeklyOrdersHandler) Handle() ([]domain.WeeklyOrder, error) {
	weekly, err := h.orders.ListWeekly()
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly orders: %w", err)
	}
	return weekly, nil
}
