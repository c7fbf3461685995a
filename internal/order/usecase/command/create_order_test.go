package command

import (
	"sort"
	"sync"
	"testing"

	"github.com/indago/supply-chain/internal/order/domain"
)

type mockOrderRepository struct {
	mu         sync.Mutex
	individual []domain.IndividualOrder
	weekly     []domain.WeeklyOrder
}

func (m *mockOrderRepository) CreateIndividual(order *domain.IndividualOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = uint(len(m.individual) + 1)
	m.individual = append(m.individual, *order)
	return nil
}

func (m *mockOrderRepository) ListIndividual(limit, offset int) ([]domain.IndividualOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.IndividualOrder(nil), m.individual...), nil
}

func (m *mockOrderRepository) Aggregate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	type key struct {
		date    string
		product string
	}
	sums := make(map[key]*domain.WeeklyOrder)
	for _, o := range m.individual {
		k := key{o.OrderDate, o.Product}
		if _, ok := sums[k]; !ok {
			sums[k] = &domain.WeeklyOrder{OrderDate: o.OrderDate, Product: o.Product}
		}
		sums[k].Quantity += o.Quantity
		sums[k].TotalPrice += o.TotalPrice
	}

	m.weekly = m.weekly[:0]
	for _, w := range sums {
		m.weekly = append(m.weekly, *w)
	}
	sort.Slice(m.weekly, func(i, j int) bool {
		if m.weekly[i].OrderDate != m.weekly[j].OrderDate {
			return m.weekly[i].OrderDate < m.weekly[j].OrderDate
		}
		return m.weekly[i].Product < m.weekly[j].Product
	})
	return nil
}

func (m *mockOrderRepository) ListWeekly() ([]domain.WeeklyOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.WeeklyOrder(nil), m.weekly...), nil
}

func TestCreateOrderComputesTotal(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := NewCreateOrderHandler(repo)

	order, err := handler.Handle(CreateOrderCommand{
		OrderDate: "2026-08-17",
		Product:   "Latte",
		Quantity:  3,
		UnitPrice: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.TotalPrice != 150 {
		t.Errorf("total_price = %d, want 150", order.TotalPrice)
	}
	if len(repo.individual) != 1 {
		t.Errorf("expected 1 stored order, got %d", len(repo.individual))
	}
}

func TestCreateOrderValidation(t *testing.T) {
	repo := &mockOrderRepository{}
	handler := NewCreateOrderHandler(repo)

	tests := []struct {
		name string
		cmd  CreateOrderCommand
	}{
		{"missing date", CreateOrderCommand{Product: "Latte", Quantity: 1, UnitPrice: 50}},
		{"bad date format", CreateOrderCommand{OrderDate: "17-08-2026", Product: "Latte", Quantity: 1, UnitPrice: 50}},
		{"missing product", CreateOrderCommand{OrderDate: "2026-08-17", Quantity: 1, UnitPrice: 50}},
		{"zero quantity", CreateOrderCommand{OrderDate: "2026-08-17", Product: "Latte", UnitPrice: 50}},
		{"zero price", CreateOrderCommand{OrderDate: "2026-08-17", Product: "Latte", Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := handler.Handle(tt.cmd); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if len(repo.individual) != 0 {
		t.Errorf("invalid commands must not write, got %d rows", len(repo.individual))
	}
}

func TestAggregateOrdersRebuildsRollup(t *testing.T) {
	repo := &mockOrderRepository{}
	create := NewCreateOrderHandler(repo)
	aggregate := NewAggregateOrdersHandler(repo)

	seed := []CreateOrderCommand{
		{OrderDate: "2026-08-17", Product: "Latte", Quantity: 2, UnitPrice: 50},
		{OrderDate: "2026-08-17", Product: "Latte", Quantity: 3, UnitPrice: 50},
		{OrderDate: "2026-08-17", Product: "capucino", Quantity: 1, UnitPrice: 40},
		{OrderDate: "2026-08-18", Product: "Latte", Quantity: 4, UnitPrice: 50},
	}
	for _, cmd := range seed {
		if _, err := create.Handle(cmd); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	weekly, err := aggregate.Handle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(weekly) != 3 {
		t.Fatalf("expected 3 rollup rows, got %d", len(weekly))
	}

	// Sorted by date then product: 17/Latte merged, 17/capucino, 18/Latte
	latte17 := weekly[0]
	if latte17.Product == "capucino" {
		latte17 = weekly[1]
	}
	if latte17.Quantity != 5 || latte17.TotalPrice != 250 {
		t.Errorf("merged Latte rollup = %+v, want qty 5 total 250", latte17)
	}

	// A second aggregation replaces, not appends
	weekly, err = aggregate.Handle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weekly) != 3 {
		t.Errorf("rollup must be rebuilt from scratch, got %d rows", len(weekly))
	}
}
