package domain

import "fmt"

// DefaultBudgetLimit is the auto-approval ceiling per purchase request
const DefaultBudgetLimit = 500000

// BudgetPolicy decides purchase requests against a fixed per-request limit
type BudgetPolicy struct {
	Limit float64
}

// NewBudgetPolicy creates a policy with the given ceiling. A non-positive
// limit falls back to the default.
func NewBudgetPolicy(limit float64) BudgetPolicy {
	if limit <= 0 {
		limit = DefaultBudgetLimit
	}
	return BudgetPolicy{Limit: limit}
}

// Evaluate returns the decision status and note for an estimated cost.
// Spend exactly at the limit is approved.
func (p BudgetPolicy) Evaluate(estimatedCost float64) (status, note string) {
	if estimatedCost <= p.Limit {
		return StatusApproved, "Auto-approved: within budget limit."
	}
	return StatusRejected, fmt.Sprintf("Auto-rejected: exceeds budget limit (%.0f).", p.Limit)
}
