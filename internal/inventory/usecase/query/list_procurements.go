package query

import (
	"fmt"

	"github.com/indago/supply-chain/internal/inventory/domain"
)

// ListProcurementsQuery represents the query to list procurement log entries
type ListProcurementsQuery struct {
	Limit  int
	Offset int
}

// ListProcurementsHandler handles list procurements query
type ListProcurementsHandler struct {
	repo domain.ProcurementLogRepository
}

// NewListProcurementsHandler creates a new list procurements handler
func NewListProcurementsHandler(repo domain.ProcurementLogRepository) *ListProcurementsHandler {
	return &ListProcurementsHandler{repo: repo}
}

// Handle executes the list procurements query
func (h *ListProcurementsHandler) Handle(query ListProcurementsQuery) ([]domain.ProcurementRequest, error) {
	if query.Limit == 0 {
		query.Limit = 50
	}

	if query.Limit > 200 {
		query.Limit = 200
	}

	requests, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list procurements: %w", err)
	}

	return requests, nil
}
