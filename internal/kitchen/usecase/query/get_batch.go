package query

import (
	"fmt"

	"github.com/indago/supply-chain/internal/kitchen/domain"
)

// GetBatchQuery represents the query to read committed batch consumption
type GetBatchQuery struct {
	Date string
}

// GetBatchHandler handles get batch query
type GetBatchHandler struct {
	repo domain.BatchRepository
}

// NewGetBatchHandler creates a new get batch handler
func NewGetBatchHandler(repo domain.BatchRepository) *GetBatchHandler {
	return &GetBatchHandler{repo: repo}
}

// Handle executes the get batch query
func (h *GetBatchHandler) Handle(query GetBatchQuery) ([]domain.BatchConsumptionRecord, error) {
	if query.Date == "" {
		return nil, fmt.Errorf("date is required")
	}

	records, err := h.repo.FindByDate(query.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch consumption: %w", err)
	}

	return records, nil
}
