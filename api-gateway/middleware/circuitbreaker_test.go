package middleware

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerOpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)

	fail := func() error { return errors.New("boom") }

	for i := 0; i < 3; i++ {
		cb.Call(fail)
	}

	if cb.GetState() != StateOpen {
		t.Errorf("state = %q, want %q", cb.GetState(), StateOpen)
	}

	// Open circuit rejects without executing
	executed := false
	err := cb.Call(func() error {
		executed = true
		return nil
	})
	if err == nil {
		t.Error("expected rejection from open circuit")
	}
	if executed {
		t.Error("open circuit must not execute the call")
	}
}

func TestCircuitBreakerResetsFailuresOnSuccess(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)

	fail := func() error { return errors.New("boom") }
	ok := func() error { return nil }

	cb.Call(fail)
	cb.Call(fail)
	cb.Call(ok)
	cb.Call(fail)
	cb.Call(fail)

	if cb.GetState() != StateClosed {
		t.Errorf("state = %q, want %q after non-consecutive failures", cb.GetState(), StateClosed)
	}
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, time.Millisecond)

	cb.Call(func() error { return errors.New("boom") })
	if cb.GetState() != StateOpen {
		t.Fatalf("state = %q, want %q", cb.GetState(), StateOpen)
	}

	time.Sleep(5 * time.Millisecond)

	ok := func() error { return nil }
	for i := 0; i < 3; i++ {
		if err := cb.Call(ok); err != nil {
			t.Fatalf("call %d rejected during recovery: %v", i, err)
		}
	}

	if cb.GetState() != StateClosed {
		t.Errorf("state = %q, want %q after recovery", cb.GetState(), StateClosed)
	}
}

func TestDetermineServiceFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/orders", "order"},
		{"/api/orders/weekly", "order"},
		{"/api/stock", "inventory"},
		{"/api/consumption", "inventory"},
		{"/api/consume", "inventory"},
		{"/api/procurements", "inventory"},
		{"/api/purchase-requests", "finance"},
		{"/api/finance/history", "finance"},
		{"/api/production/run", "kitchen"},
		{"/api/batch", "kitchen"},
		{"/health", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		if got := DetermineServiceFromPath(tt.path); got != tt.want {
			t.Errorf("DetermineServiceFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
