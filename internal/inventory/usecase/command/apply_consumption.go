package command

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/inventory/domain"
	"github.com/indago/supply-chain/pkg/lock"
	"github.com/indago/supply-chain/pkg/logger"
)

// ApplyConsumptionCommand applies a batch of consumption rows to the ledger
type ApplyConsumptionCommand struct {
	Rows []domain.ConsumptionRow
}

// ApplyConsumptionHandler updates the stock ledger for each consumed row and
// evaluates the replenishment trigger with the post-consumption quantity.
// All ledger writes for one command commit in a single transaction; per-item
// locks are held across update and dispatch so concurrent commands touching
// the same item cannot interleave, and so the dispatcher's open-request
// check cannot race.
type ApplyConsumptionHandler struct {
	stock      domain.StockRepository
	policy     *domain.ReplenishmentPolicy
	dispatcher *DispatchProcurementHandler
	locks      *lock.Keyed
}

// NewApplyConsumptionHandler creates a new consumption handler
func NewApplyConsumptionHandler(
	stock domain.StockRepository,
	policy *domain.ReplenishmentPolicy,
	dispatcher *DispatchProcurementHandler,
	locks *lock.Keyed,
) *ApplyConsumptionHandler {
	return &ApplyConsumptionHandler{
		stock:      stock,
		policy:     policy,
		dispatcher: dispatcher,
		locks:      locks,
	}
}

// Handle executes the consumption command
func (h *ApplyConsumptionHandler) Handle(ctx context.Context, cmd ApplyConsumptionCommand) ([]domain.AppliedConsumption, error) {
	for _, row := range cmd.Rows {
		if row.Item == "" {
			return nil, fmt.Errorf("item is required")
		}
		if row.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be greater than 0 for item %q", row.Item)
		}
	}

	// Acquire per-item locks in sorted order to avoid deadlock between
	// concurrent commands with overlapping item sets
	items := uniqueItems(cmd.Rows)
	for _, item := range items {
		h.locks.Lock(item)
	}
	defer func() {
		for _, item := range items {
			h.locks.Unlock(item)
		}
	}()

	applied := make([]domain.AppliedConsumption, 0, len(cmd.Rows))

	err := h.stock.Transaction(ctx, func(tx domain.StockRepository) error {
		for _, row := range cmd.Rows {
			result, err := applyRow(ctx, tx, row)
			if err != nil {
				return err
			}
			applied = append(applied, *result)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply consumption: %w", err)
	}

	// Trigger evaluation uses the post-consumption quantity recorded above.
	// The locks are still held, so no concurrent dispatch for the same item
	// can slip between the ledger write and the open-request check.
	for _, result := range applied {
		if !h.policy.ShouldReplenish(result.Item, result.Remaining) {
			continue
		}

		dispatchCmd := DispatchProcurementCommand{Item: result.Item, Remaining: result.Remaining}
		if _, err := h.dispatcher.Handle(ctx, dispatchCmd); err != nil {
			// The consumption itself has committed; a dispatch persistence
			// failure is logged and left for the procurement audit trail
			logger.Error(ctx).
				Err(err).
				Str("item", result.Item).
				Msg("Procurement dispatch failed after consumption")
		}
	}

	return applied, nil
}

// applyRow performs the clamped read-modify-write for one row
func applyRow(ctx context.Context, tx domain.StockRepository, row domain.ConsumptionRow) (*domain.AppliedConsumption, error) {
	stock, err := tx.FindByItem(ctx, row.Item)
	created := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Unknown item: treat current quantity as zero and create it
		stock = &domain.StockItem{Item: row.Item, Quantity: 0}
		created = true
	}

	newQty := stock.Quantity - row.Quantity
	clamped := false
	if newQty < 0 {
		newQty = 0
		clamped = true
	}

	stock.Quantity = newQty
	if err := tx.Save(ctx, stock); err != nil {
		return nil, err
	}

	return &domain.AppliedConsumption{
		Item:      row.Item,
		Consumed:  row.Quantity,
		Remaining: newQty,
		Clamped:   clamped,
		Created:   created,
	}, nil
}

func uniqueItems(rows []domain.ConsumptionRow) []string {
	seen := make(map[string]bool, len(rows))
	items := make([]string, 0, len(rows))
	for _, row := range rows {
		if !seen[row.Item] {
			seen[row.Item] = true
			items = append(items, row.Item)
		}
	}
	sort.Strings(items)
	return items
}
