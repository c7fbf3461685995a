package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/indago/supply-chain/internal/kitchen/domain"
)

type mockOrdersFeed struct {
	orders []domain.Order
	err    error
}

func (m *mockOrdersFeed) FetchWeeklyOrders(ctx context.Context) ([]domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.orders, nil
}

type mockStockSnapshot struct {
	snapshot map[string]int
	err      error
}

func (m *mockStockSnapshot) FetchStockSnapshot(ctx context.Context) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

type mockBatchRepository struct {
	mu      sync.Mutex
	records []domain.BatchConsumptionRecord
	err     error
}

func (m *mockBatchRepository) AppendAll(records []domain.BatchConsumptionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, records...)
	return nil
}

func (m *mockBatchRepository) FindByDate(date string) ([]domain.BatchConsumptionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.BatchConsumptionRecord
	for _, r := range m.records {
		if r.ProductionDate == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func weeklyOrders() []domain.Order {
	return []domain.Order{
		{Date: "2026-08-17", Product: "Latte", Quantity: 5, TotalPrice: 250},
		{Date: "2026-08-17", Product: "capucino", Quantity: 3, TotalPrice: 120},
	}
}

func TestRunProductionCommitsBatch(t *testing.T) {
	batches := &mockBatchRepository{}
	handler := NewRunProductionHandler(
		&mockOrdersFeed{orders: weeklyOrders()},
		&mockStockSnapshot{snapshot: map[string]int{"beans": 10000, "milk": 100000}},
		batches,
		domain.DefaultRecipeBook(),
	)

	result, err := handler.Handle(context.Background(), RunProductionCommand{Date: "2026-08-17"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Outcome != domain.RunCommitted {
		t.Fatalf("outcome = %q, want %q", result.Outcome, domain.RunCommitted)
	}
	if result.InsertedCount != 2 {
		t.Errorf("inserted = %d, want 2", result.InsertedCount)
	}

	rows, _ := batches.FindByDate("2026-08-17")
	if len(rows) != 2 {
		t.Fatalf("expected 2 batch rows, got %d", len(rows))
	}
	// Rows are appended in sorted item order
	if rows[0].Item != "beans" || rows[0].Quantity != 70 {
		t.Errorf("rows[0] = %+v, want beans 70", rows[0])
	}
	if rows[1].Item != "milk" || rows[1].Quantity != 1450 {
		t.Errorf("rows[1] = %+v, want milk 1450", rows[1])
	}
}

func TestRunProductionInfeasibleCommitsNothing(t *testing.T) {
	batches := &mockBatchRepository{}
	handler := NewRunProductionHandler(
		&mockOrdersFeed{orders: weeklyOrders()},
		&mockStockSnapshot{snapshot: map[string]int{"beans": 50, "milk": 100}},
		batches,
		domain.DefaultRecipeBook(),
	)

	result, err := handler.Handle(context.Background(), RunProductionCommand{Date: "2026-08-17"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Outcome != domain.RunInfeasible {
		t.Fatalf("outcome = %q, want %q", result.Outcome, domain.RunInfeasible)
	}

	// Every insufficient item is reported, not just the first
	if len(result.Shortfalls) != 2 {
		t.Fatalf("shortfalls = %+v, want both items", result.Shortfalls)
	}
	if result.Shortfalls[0].Item != "beans" || result.Shortfalls[0].Required != 70 || result.Shortfalls[0].Available != 50 {
		t.Errorf("unexpected beans shortfall %+v", result.Shortfalls[0])
	}
	if result.Shortfalls[1].Item != "milk" || result.Shortfalls[1].Required != 1450 || result.Shortfalls[1].Available != 100 {
		t.Errorf("unexpected milk shortfall %+v", result.Shortfalls[1])
	}

	rows, _ := batches.FindByDate("2026-08-17")
	if len(rows) != 0 {
		t.Errorf("infeasible run must write nothing, got %d rows", len(rows))
	}
}

func TestRunProductionNoOrdersSkipsStockFetch(t *testing.T) {
	// Stock provider that fails proves it was never consulted
	handler := NewRunProductionHandler(
		&mockOrdersFeed{orders: nil},
		&mockStockSnapshot{err: fmt.Errorf("must not be called")},
		&mockBatchRepository{},
		domain.DefaultRecipeBook(),
	)

	result, err := handler.Handle(context.Background(), RunProductionCommand{Date: "2026-08-17"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != domain.RunNoOrders {
		t.Errorf("outcome = %q, want %q", result.Outcome, domain.RunNoOrders)
	}
}

func TestRunProductionNoRecipesMatched(t *testing.T) {
	handler := NewRunProductionHandler(
		&mockOrdersFeed{orders: []domain.Order{{Date: "2026-08-17", Product: "espresso", Quantity: 2}}},
		&mockStockSnapshot{snapshot: map[string]int{}},
		&mockBatchRepository{},
		domain.DefaultRecipeBook(),
	)

	result, err := handler.Handle(context.Background(), RunProductionCommand{Date: "2026-08-17"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != domain.RunNoRecipesMatched {
		t.Errorf("outcome = %q, want %q", result.Outcome, domain.RunNoRecipesMatched)
	}
	if len(result.SkippedProducts) != 1 || result.SkippedProducts[0] != "espresso" {
		t.Errorf("skipped = %v, want [espresso]", result.SkippedProducts)
	}
}

func TestRunProductionUpstreamFailures(t *testing.T) {
	handler := NewRunProductionHandler(
		&mockOrdersFeed{err: fmt.Errorf("connection refused")},
		&mockStockSnapshot{},
		&mockBatchRepository{},
		domain.DefaultRecipeBook(),
	)

	_, err := handler.Handle(context.Background(), RunProductionCommand{Date: "2026-08-17"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("orders feed failure must wrap ErrUpstream, got %v", err)
	}

	handler = NewRunProductionHandler(
		&mockOrdersFeed{orders: weeklyOrders()},
		&mockStockSnapshot{err: fmt.Errorf("connection refused")},
		&mockBatchRepository{},
		domain.DefaultRecipeBook(),
	)

	_, err = handler.Handle(context.Background(), RunProductionCommand{Date: "2026-08-17"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("stock snapshot failure must wrap ErrUpstream, got %v", err)
	}
}

func TestRunProductionRequiresDate(t *testing.T) {
	handler := NewRunProductionHandler(
		&mockOrdersFeed{},
		&mockStockSnapshot{},
		&mockBatchRepository{},
		domain.DefaultRecipeBook(),
	)

	_, err := handler.Handle(context.Background(), RunProductionCommand{})
	if err == nil {
		t.Error("expected error for missing date")
	}
}

func TestRunProductionRerunAppendsAgain(t *testing.T) {
	batches := &mockBatchRepository{}
	handler := NewRunProductionHandler(
		&mockOrdersFeed{orders: weeklyOrders()},
		&mockStockSnapshot{snapshot: map[string]int{"beans": 10000, "milk": 100000}},
		batches,
		domain.DefaultRecipeBook(),
	)

	for i := 0; i < 2; i++ {
		if _, err := handler.Handle(context.Background(), RunProductionCommand{Date: "2026-08-17"}); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	// Re-running a date appends a second batch; the log is append-only
	rows, _ := batches.FindByDate("2026-08-17")
	if len(rows) != 4 {
		t.Errorf("expected 4 rows after rerun, got %d", len(rows))
	}
}
