package command

import (
	"sync"
	"testing"

	"github.com/indago/supply-chain/internal/finance/domain"
)

type mockPurchaseRepository struct {
	mu   sync.Mutex
	rows []domain.PurchaseRequest
}

func (m *mockPurchaseRepository) Create(request *domain.PurchaseRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, *request)
	return nil
}

func (m *mockPurchaseRepository) FindAll(limit, offset int) ([]domain.PurchaseRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.PurchaseRequest(nil), m.rows...), nil
}

func validCommand() EvaluatePurchaseCommand {
	return EvaluatePurchaseCommand{
		OrderID:        "PR-beans-1755400000-a1b2c3d4",
		ItemName:       "beans",
		QuantityNeeded: 9500,
		Unit:           "g",
		CurrentStock:   500,
		EstimatedCost:  760,
	}
}

func TestEvaluatePurchaseApprovesWithinBudget(t *testing.T) {
	repo := &mockPurchaseRepository{}
	handler := NewEvaluatePurchaseHandler(repo, domain.NewBudgetPolicy(0))

	request, err := handler.Handle(validCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.Status != domain.StatusApproved {
		t.Errorf("status = %q, want %q", request.Status, domain.StatusApproved)
	}
	if request.DecisionNote == "" {
		t.Error("expected a decision note")
	}
	if len(repo.rows) != 1 {
		t.Errorf("expected 1 ledger row, got %d", len(repo.rows))
	}
	if request.RequestDate.IsZero() || request.DecisionDate.IsZero() {
		t.Error("request and decision dates must be set")
	}
}

func TestEvaluatePurchaseBudgetBoundary(t *testing.T) {
	repo := &mockPurchaseRepository{}
	handler := NewEvaluatePurchaseHandler(repo, domain.NewBudgetPolicy(0))

	// Exactly at the limit is approved
	cmd := validCommand()
	cmd.EstimatedCost = 500000
	request, err := handler.Handle(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != domain.StatusApproved {
		t.Errorf("at limit: status = %q, want %q", request.Status, domain.StatusApproved)
	}

	// One over the limit is rejected but still recorded
	cmd.OrderID = "PR-beans-1755400001-e5f6a7b8"
	cmd.EstimatedCost = 500001
	request, err = handler.Handle(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != domain.StatusRejected {
		t.Errorf("over limit: status = %q, want %q", request.Status, domain.StatusRejected)
	}
	if len(repo.rows) != 2 {
		t.Errorf("rejected request must be recorded, got %d rows", len(repo.rows))
	}
}

func TestEvaluatePurchaseValidationFailsBeforeWrite(t *testing.T) {
	repo := &mockPurchaseRepository{}
	handler := NewEvaluatePurchaseHandler(repo, domain.NewBudgetPolicy(0))

	invalid := []EvaluatePurchaseCommand{
		func() EvaluatePurchaseCommand { c := validCommand(); c.OrderID = ""; return c }(),
		func() EvaluatePurchaseCommand { c := validCommand(); c.ItemName = ""; return c }(),
		func() EvaluatePurchaseCommand { c := validCommand(); c.QuantityNeeded = 0; return c }(),
		func() EvaluatePurchaseCommand { c := validCommand(); c.EstimatedCost = 0; return c }(),
	}

	for i, cmd := range invalid {
		if _, err := handler.Handle(cmd); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}

	if len(repo.rows) != 0 {
		t.Errorf("validation failures must not write, got %d rows", len(repo.rows))
	}
}

func TestEvaluatePurchaseCustomLimit(t *testing.T) {
	repo := &mockPurchaseRepository{}
	handler := NewEvaluatePurchaseHandler(repo, domain.NewBudgetPolicy(100))

	cmd := validCommand()
	request, err := handler.Handle(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != domain.StatusRejected {
		t.Errorf("status = %q, want %q with limit 100", request.Status, domain.StatusRejected)
	}
}
