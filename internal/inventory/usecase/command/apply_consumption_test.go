package command

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/inventory/domain"
	"github.com/indago/supply-chain/pkg/lock"
)

type mockStockRepository struct {
	mu    sync.Mutex
	items map[string]*domain.StockItem
}

func newMockStockRepository(seed map[string]int) *mockStockRepository {
	items := make(map[string]*domain.StockItem, len(seed))
	for name, qty := range seed {
		items[name] = &domain.StockItem{Item: name, Quantity: qty}
	}
	return &mockStockRepository{items: items}
}

func (m *mockStockRepository) FindByItem(ctx context.Context, item string) (*domain.StockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stock, ok := m.items[item]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *stock
	return &copied, nil
}

func (m *mockStockRepository) FindAll(ctx context.Context) ([]domain.StockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]domain.StockItem, 0, len(m.items))
	for _, stock := range m.items {
		all = append(all, *stock)
	}
	return all, nil
}

func (m *mockStockRepository) Save(ctx context.Context, item *domain.StockItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *item
	m.items[item.Item] = &copied
	return nil
}

func (m *mockStockRepository) Seed(ctx context.Context, items []domain.StockItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range items {
		if _, exists := m.items[item.Item]; !exists {
			copied := item
			m.items[item.Item] = &copied
		}
	}
	return nil
}

func (m *mockStockRepository) Transaction(ctx context.Context, fn func(domain.StockRepository) error) error {
	return fn(m)
}

func (m *mockStockRepository) quantity(item string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stock, ok := m.items[item]; ok {
		return stock.Quantity
	}
	return -1
}

type mockProcurementLog struct {
	mu   sync.Mutex
	rows []domain.ProcurementRequest
}

func (m *mockProcurementLog) Append(req *domain.ProcurementRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *req)
	return nil
}

func (m *mockProcurementLog) HasOpen(item string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Item == item && (row.Status == domain.StatusPending || row.Status == domain.StatusSubmitted) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProcurementLog) FindAll(limit, offset int) ([]domain.ProcurementRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ProcurementRequest(nil), m.rows...), nil
}

func (m *mockProcurementLog) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type mockApprovalGateway struct {
	mu       sync.Mutex
	result   domain.ApprovalResult
	err      error
	payloads []domain.PurchaseRequestPayload
}

func (m *mockApprovalGateway) SubmitPurchaseRequest(ctx context.Context, payload domain.PurchaseRequestPayload) (*domain.ApprovalResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, payload)
	if m.err != nil {
		return nil, m.err
	}
	result := m.result
	return &result, nil
}

func newTestHandler(stock *mockStockRepository, log *mockProcurementLog, gateway *mockApprovalGateway) *ApplyConsumptionHandler {
	policy := domain.NewReplenishmentPolicy(domain.DefaultReplenishmentConfig())
	dispatcher := NewDispatchProcurementHandler(log, policy, gateway)
	return NewApplyConsumptionHandler(stock, policy, dispatcher, lock.NewKeyed())
}

func TestApplyConsumptionDeductsStock(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"beans": 10000, "milk": 100000})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	handler := newTestHandler(stock, log, gateway)

	applied, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{
			{Item: "beans", Quantity: 400},
			{Item: "milk", Quantity: 6000},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(applied) != 2 {
		t.Fatalf("expected 2 applied rows, got %d", len(applied))
	}
	if stock.quantity("beans") != 9600 {
		t.Errorf("beans = %d, want 9600", stock.quantity("beans"))
	}
	if stock.quantity("milk") != 94000 {
		t.Errorf("milk = %d, want 94000", stock.quantity("milk"))
	}
	if log.count() != 0 {
		t.Errorf("no procurement expected above threshold, got %d rows", log.count())
	}
}

func TestApplyConsumptionClampsAtZero(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"milk": 100})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	handler := newTestHandler(stock, log, gateway)

	applied, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "milk", Quantity: 500}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !applied[0].Clamped {
		t.Error("expected row to be clamped")
	}
	if applied[0].Remaining != 0 {
		t.Errorf("remaining = %d, want 0", applied[0].Remaining)
	}
	if stock.quantity("milk") != 0 {
		t.Errorf("milk = %d, want 0", stock.quantity("milk"))
	}
}

func TestApplyConsumptionCreatesUnknownItem(t *testing.T) {
	stock := newMockStockRepository(map[string]int{})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	handler := newTestHandler(stock, log, gateway)

	applied, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "sugar", Quantity: 50}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !applied[0].Created {
		t.Error("expected unknown item to be created")
	}
	if !applied[0].Clamped {
		t.Error("expected consumption from zero to clamp")
	}
	if stock.quantity("sugar") != 0 {
		t.Errorf("sugar = %d, want 0", stock.quantity("sugar"))
	}
	// Unknown items have no baseline so no replenishment fires
	if log.count() != 0 {
		t.Errorf("no procurement expected for unknown item, got %d rows", log.count())
	}
}

func TestApplyConsumptionTriggersReplenishment(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"beans": 10000})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: `{"success":true}`}}
	handler := newTestHandler(stock, log, gateway)

	_, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "beans", Quantity: 9500}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if log.count() != 1 {
		t.Fatalf("expected 1 procurement row, got %d", log.count())
	}

	rows, _ := log.FindAll(0, 0)
	row := rows[0]
	if row.Status != domain.StatusSubmitted {
		t.Errorf("status = %q, want %q", row.Status, domain.StatusSubmitted)
	}
	if row.QuantityNeeded != 9500 {
		t.Errorf("quantity_needed = %d, want 9500", row.QuantityNeeded)
	}
	if row.CurrentStock != 500 {
		t.Errorf("current_stock = %d, want 500", row.CurrentStock)
	}
	if row.EstimatedCost != 760 {
		t.Errorf("estimated_cost = %v, want 760", row.EstimatedCost)
	}
	if !strings.HasPrefix(row.OrderID, "PR-beans-") {
		t.Errorf("unexpected order id %q", row.OrderID)
	}

	if len(gateway.payloads) != 1 {
		t.Fatalf("expected 1 approval call, got %d", len(gateway.payloads))
	}
	if gateway.payloads[0].EstimatedCost != 760 {
		t.Errorf("payload estimated_cost = %v, want 760", gateway.payloads[0].EstimatedCost)
	}
}

func TestApplyConsumptionSkipsDispatchWhenRequestOpen(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"beans": 900})
	log := &mockProcurementLog{}
	log.Append(&domain.ProcurementRequest{OrderID: "PR-1", Item: "beans", Status: domain.StatusSubmitted})
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	handler := newTestHandler(stock, log, gateway)

	_, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "beans", Quantity: 100}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if log.count() != 1 {
		t.Errorf("expected dispatch no-op, log has %d rows", log.count())
	}
	if len(gateway.payloads) != 0 {
		t.Errorf("expected no approval calls, got %d", len(gateway.payloads))
	}
}

func TestApplyConsumptionRecordsFailedApproval(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"beans": 10000})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 403, Body: `{"error":"rejected"}`}}
	handler := newTestHandler(stock, log, gateway)

	applied, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "beans", Quantity: 9900}},
	})
	if err != nil {
		t.Fatalf("consumption must succeed even when approval fails: %v", err)
	}
	if applied[0].Remaining != 100 {
		t.Errorf("remaining = %d, want 100", applied[0].Remaining)
	}

	rows, _ := log.FindAll(0, 0)
	if len(rows) != 1 {
		t.Fatalf("expected failed attempt to be recorded, got %d rows", len(rows))
	}
	if rows[0].Status != domain.StatusFailed {
		t.Errorf("status = %q, want %q", rows[0].Status, domain.StatusFailed)
	}
	if rows[0].Response != `{"error":"rejected"}` {
		t.Errorf("response = %q", rows[0].Response)
	}
}

func TestApplyConsumptionTransportFailureDoesNotFailConsumption(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"beans": 10000})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{err: fmt.Errorf("connection refused")}
	handler := newTestHandler(stock, log, gateway)

	_, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "beans", Quantity: 9500}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, _ := log.FindAll(0, 0)
	if len(rows) != 1 || rows[0].Status != domain.StatusFailed {
		t.Fatalf("expected one failed row, got %+v", rows)
	}
	if rows[0].Response != "connection refused" {
		t.Errorf("response = %q, want transport error", rows[0].Response)
	}
}

func TestApplyConsumptionValidatesRows(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"beans": 10000})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{}
	handler := newTestHandler(stock, log, gateway)

	_, err := handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "", Quantity: 10}},
	})
	if err == nil {
		t.Error("expected error for empty item")
	}

	_, err = handler.Handle(context.Background(), ApplyConsumptionCommand{
		Rows: []domain.ConsumptionRow{{Item: "beans", Quantity: 0}},
	})
	if err == nil {
		t.Error("expected error for zero quantity")
	}

	if stock.quantity("beans") != 10000 {
		t.Errorf("stock must be untouched after validation failure, got %d", stock.quantity("beans"))
	}
}

func TestApplyConsumptionConcurrentSameItemDispatchesOnce(t *testing.T) {
	stock := newMockStockRepository(map[string]int{"beans": 1100})
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	handler := newTestHandler(stock, log, gateway)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handler.Handle(context.Background(), ApplyConsumptionCommand{
				Rows: []domain.ConsumptionRow{{Item: "beans", Quantity: 50}},
			})
		}()
	}
	wg.Wait()

	if stock.quantity("beans") != 850 {
		t.Errorf("beans = %d, want 850", stock.quantity("beans"))
	}

	// Only the first dispatch below threshold appends; the rest see the open
	// submitted request and no-op
	if log.count() != 1 {
		t.Errorf("expected exactly 1 procurement row, got %d", log.count())
	}
}
