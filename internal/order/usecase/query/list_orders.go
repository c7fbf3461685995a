package query

import (
	"fmt"

	"github.com/indago/supply-chain/internal/order/domain"
)

// ListOrdersQuery represents a paged request for individual orders
type ListOrdersQuery struct {
	Limit  int
	Offset int
}

// ListOrdersHandler lists individual orders as entered at intake
type ListOrdersHandler struct {
	orders domain.OrderRepository
}

func NewListOrdersHandler(orders domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.IndividualOrder, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	orders, err := h.orders.ListIndividual(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
