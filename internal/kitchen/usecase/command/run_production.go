package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/indago/supply-chain/internal/kitchen/domain"
	"github.com/indago/supply-chain/pkg/logger"
)

// RunProductionCommand executes production for one date
type RunProductionCommand struct {
	Date string
}

// RunProductionHandler plans raw-material requirements for a date, gates
// them against live stock, and commits the batch log all-or-nothing. Every
// run ends in exactly one terminal outcome; a shortfall anywhere vetoes the
// whole batch.
type RunProductionHandler struct {
	orders  domain.OrdersFeed
	stock   domain.StockSnapshotProvider
	batches domain.BatchRepository
	recipes domain.RecipeBook
}

// NewRunProductionHandler creates a new production run handler
func NewRunProductionHandler(
	orders domain.OrdersFeed,
	stock domain.StockSnapshotProvider,
	batches domain.BatchRepository,
	recipes domain.RecipeBook,
) *RunProductionHandler {
	return &RunProductionHandler{
		orders:  orders,
		stock:   stock,
		batches: batches,
		recipes: recipes,
	}
}

// Handle executes the production run command
func (h *RunProductionHandler) Handle(ctx context.Context, cmd RunProductionCommand) (*domain.RunResult, error) {
	if cmd.Date == "" {
		return nil, fmt.Errorf("date is required")
	}

	orders, err := h.orders.FetchWeeklyOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: weekly orders: %v", domain.ErrUpstream, err)
	}

	plan := domain.ComputeRequirements(orders, cmd.Date, h.recipes)

	switch plan.Outcome {
	case domain.PlanNoOrders:
		// Short-circuit without consulting stock
		logger.Info(ctx).Str("date", cmd.Date).Msg("No orders for production date")
		return &domain.RunResult{Date: cmd.Date, Outcome: domain.RunNoOrders}, nil

	case domain.PlanNoRecipesMatched:
		logger.Warn(ctx).
			Str("date", cmd.Date).
			Strs("skipped_products", plan.SkippedProducts).
			Msg("No recipes matched any order")
		return &domain.RunResult{
			Date:            cmd.Date,
			Outcome:         domain.RunNoRecipesMatched,
			SkippedProducts: plan.SkippedProducts,
		}, nil
	}

	snapshot, err := h.stock.FetchStockSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: stock snapshot: %v", domain.ErrUpstream, err)
	}

	shortfalls := collectShortfalls(plan.Requirements, snapshot)
	if len(shortfalls) > 0 {
		// All-or-nothing: commit nothing, report every insufficient item
		logger.Warn(ctx).
			Str("date", cmd.Date).
			Int("shortfall_count", len(shortfalls)).
			Msg("Insufficient stock for production")
		return &domain.RunResult{
			Date:            cmd.Date,
			Outcome:         domain.RunInfeasible,
			Requirements:    plan.Requirements,
			Shortfalls:      shortfalls,
			SkippedProducts: plan.SkippedProducts,
		}, nil
	}

	records := make([]domain.BatchConsumptionRecord, 0, len(plan.Requirements))
	for _, item := range sortedItems(plan.Requirements) {
		req := plan.Requirements[item]
		records = append(records, domain.BatchConsumptionRecord{
			ProductionDate: cmd.Date,
			Item:           item,
			Quantity:       req.Quantity,
			Unit:           req.Unit,
		})
	}

	if err := h.batches.AppendAll(records); err != nil {
		return nil, fmt.Errorf("failed to commit batch consumption: %w", err)
	}

	logger.Info(ctx).
		Str("date", cmd.Date).
		Int("inserted", len(records)).
		Msg("Production committed")

	return &domain.RunResult{
		Date:            cmd.Date,
		Outcome:         domain.RunCommitted,
		InsertedCount:   len(records),
		Requirements:    plan.Requirements,
		SkippedProducts: plan.SkippedProducts,
	}, nil
}

// collectShortfalls compares every requirement against the snapshot and
// returns all insufficient items, not just the first
func collectShortfalls(requirements map[string]domain.Requirement, snapshot map[string]int) []domain.Shortfall {
	var shortfalls []domain.Shortfall
	for _, item := range sortedItems(requirements) {
		req := requirements[item]
		available := snapshot[item]
		if available < req.Quantity {
			shortfalls = append(shortfalls, domain.Shortfall{
				Item:      item,
				Required:  req.Quantity,
				Available: available,
				Unit:      req.Unit,
			})
		}
	}
	return shortfalls
}

func sortedItems(requirements map[string]domain.Requirement) []string {
	items := make([]string, 0, len(requirements))
	for item := range requirements {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
