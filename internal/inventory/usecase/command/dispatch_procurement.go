package command

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/indago/supply-chain/internal/inventory/domain"
	"github.com/indago/supply-chain/pkg/logger"
)

// DispatchProcurementCommand asks for a replenishment of one item given its
// post-consumption quantity
type DispatchProcurementCommand struct {
	Item      string
	Remaining int
}

// DispatchProcurementHandler checks the procurement log for an open request
// and, if none exists, submits a purchase request to finance and records the
// outcome. An approval failure is recorded, not raised: the triggering
// consumption must still succeed.
type DispatchProcurementHandler struct {
	log      domain.ProcurementLogRepository
	policy   *domain.ReplenishmentPolicy
	approval domain.ApprovalGateway
}

// NewDispatchProcurementHandler creates a new dispatch handler
func NewDispatchProcurementHandler(
	log domain.ProcurementLogRepository,
	policy *domain.ReplenishmentPolicy,
	approval domain.ApprovalGateway,
) *DispatchProcurementHandler {
	return &DispatchProcurementHandler{log: log, policy: policy, approval: approval}
}

// Handle executes the dispatch. It returns the appended log row, or nil when
// the dispatch was a no-op (open request already in flight, or nothing to
// request). The caller must hold the per-item lock so the open-request check
// and the insert cannot race with a concurrent dispatch for the same item.
func (h *DispatchProcurementHandler) Handle(ctx context.Context, cmd DispatchProcurementCommand) (*domain.ProcurementRequest, error) {
	open, err := h.log.HasOpen(cmd.Item)
	if err != nil {
		return nil, fmt.Errorf("failed to check open procurement: %w", err)
	}
	if open {
		logger.Debug(ctx).
			Str("item", cmd.Item).
			Msg("Open procurement exists, skipping dispatch")
		return nil, nil
	}

	quantity := h.policy.ReplenishmentQuantity(cmd.Item, cmd.Remaining)
	if quantity <= 0 {
		return nil, nil
	}

	payload := domain.PurchaseRequestPayload{
		OrderID:        newOrderID(cmd.Item),
		ItemName:       cmd.Item,
		QuantityNeeded: quantity,
		Unit:           h.policy.Unit(cmd.Item),
		CurrentStock:   cmd.Remaining,
		EstimatedCost:  h.policy.EstimatedCost(cmd.Item, quantity),
	}

	status := domain.StatusSubmitted
	responseBody := ""

	result, err := h.approval.SubmitPurchaseRequest(ctx, payload)
	if err != nil {
		status = domain.StatusFailed
		responseBody = err.Error()
	} else {
		responseBody = result.Body
		if result.StatusCode < http.StatusOK || result.StatusCode >= http.StatusMultipleChoices {
			status = domain.StatusFailed
		}
	}

	payloadJSON, _ := json.Marshal(payload)

	req := &domain.ProcurementRequest{
		OrderID:        payload.OrderID,
		Item:           cmd.Item,
		QuantityNeeded: quantity,
		Unit:           payload.Unit,
		CurrentStock:   cmd.Remaining,
		EstimatedCost:  payload.EstimatedCost,
		Status:         status,
		Payload:        string(payloadJSON),
		Response:       responseBody,
	}

	// Even failed attempts are recorded for audit
	if err := h.log.Append(req); err != nil {
		return nil, fmt.Errorf("failed to append procurement log: %w", err)
	}

	logEvent := logger.Info(ctx)
	if status == domain.StatusFailed {
		logEvent = logger.Warn(ctx)
	}
	logEvent.
		Str("order_id", payload.OrderID).
		Str("item", cmd.Item).
		Int("quantity_needed", quantity).
		Str("status", status).
		Msg("Procurement dispatched")

	return req, nil
}

// newOrderID builds a collision-resistant order id from the item name, the
// current time and a random suffix
func newOrderID(item string) string {
	return fmt.Sprintf("PR-%s-%d-%s", item, time.Now().Unix(), uuid.New().String()[:8])
}
