package domain

// Shortfall records one item whose required quantity exceeds live stock
type Shortfall struct {
	Item      string `json:"item"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
	Unit      string `json:"unit"`
}

// RunOutcome is the terminal state of a production run. There is no retry
// or partial-commit state.
type RunOutcome string

const (
	RunCommitted        RunOutcome = "committed"
	RunNoOrders         RunOutcome = "no_orders"
	RunNoRecipesMatched RunOutcome = "no_recipes_matched"
	RunInfeasible       RunOutcome = "infeasible"
)

// RunResult reports what a production run did
type RunResult struct {
	Date            string                 `json:"date"`
	Outcome         RunOutcome             `json:"outcome"`
	InsertedCount   int                    `json:"inserted_count,omitempty"`
	Requirements    map[string]Requirement `json:"requirements,omitempty"`
	Shortfalls      []Shortfall            `json:"shortfalls,omitempty"`
	SkippedProducts []string               `json:"skipped_products,omitempty"`
}
