package command

import (
	"context"
	"testing"

	"github.com/indago/supply-chain/internal/inventory/domain"
)

func newTestDispatcher(log *mockProcurementLog, gateway *mockApprovalGateway) *DispatchProcurementHandler {
	policy := domain.NewReplenishmentPolicy(domain.DefaultReplenishmentConfig())
	return NewDispatchProcurementHandler(log, policy, gateway)
}

func TestDispatchSubmitsAndReturnsRow(t *testing.T) {
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: `{"success":true}`}}
	dispatcher := newTestDispatcher(log, gateway)

	req, err := dispatcher.Handle(context.Background(), DispatchProcurementCommand{Item: "milk", Remaining: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req == nil {
		t.Fatal("expected a dispatched row")
	}

	if req.QuantityNeeded != 95000 {
		t.Errorf("quantity_needed = %d, want 95000", req.QuantityNeeded)
	}
	if req.Unit != "ml" {
		t.Errorf("unit = %q, want ml", req.Unit)
	}
	if req.Status != domain.StatusSubmitted {
		t.Errorf("status = %q, want %q", req.Status, domain.StatusSubmitted)
	}
	if log.count() != 1 {
		t.Errorf("expected 1 log row, got %d", log.count())
	}
}

func TestDispatchNoOpWhenOpenRequestExists(t *testing.T) {
	log := &mockProcurementLog{}
	log.Append(&domain.ProcurementRequest{OrderID: "PR-1", Item: "milk", Status: domain.StatusPending})
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	dispatcher := newTestDispatcher(log, gateway)

	req, err := dispatcher.Handle(context.Background(), DispatchProcurementCommand{Item: "milk", Remaining: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req != nil {
		t.Errorf("expected no-op, got row %+v", req)
	}
	if len(gateway.payloads) != 0 {
		t.Errorf("expected no approval calls, got %d", len(gateway.payloads))
	}
}

func TestDispatchFailedRequestDoesNotBlockRetry(t *testing.T) {
	log := &mockProcurementLog{}
	log.Append(&domain.ProcurementRequest{OrderID: "PR-1", Item: "milk", Status: domain.StatusFailed})
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	dispatcher := newTestDispatcher(log, gateway)

	req, err := dispatcher.Handle(context.Background(), DispatchProcurementCommand{Item: "milk", Remaining: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req == nil {
		t.Fatal("failed rows are terminal, a new attempt must dispatch")
	}
	if log.count() != 2 {
		t.Errorf("expected 2 log rows, got %d", log.count())
	}
}

func TestDispatchNoOpForUnseededItem(t *testing.T) {
	log := &mockProcurementLog{}
	gateway := &mockApprovalGateway{result: domain.ApprovalResult{StatusCode: 201, Body: "{}"}}
	dispatcher := newTestDispatcher(log, gateway)

	req, err := dispatcher.Handle(context.Background(), DispatchProcurementCommand{Item: "sugar", Remaining: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req != nil {
		t.Errorf("expected no-op for item without baseline, got %+v", req)
	}
	if log.count() != 0 {
		t.Errorf("expected empty log, got %d rows", log.count())
	}
}
