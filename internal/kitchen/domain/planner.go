package domain

// Requirement is the aggregated raw-material demand for one item
type Requirement struct {
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// PlanOutcome classifies the result of requirement planning
type PlanOutcome string

const (
	// PlanReady means at least one order matched a recipe and requirements
	// were aggregated
	PlanReady PlanOutcome = "ready"
	// PlanNoOrders means no orders exist for the date; the caller can
	// short-circuit without consulting stock
	PlanNoOrders PlanOutcome = "no_orders"
	// PlanNoRecipesMatched means orders exist but none mapped to a known
	// recipe
	PlanNoRecipesMatched PlanOutcome = "no_recipes_matched"
)

// RequirementPlan is the outcome of planning one production date
type RequirementPlan struct {
	Outcome         PlanOutcome            `json:"outcome"`
	Requirements    map[string]Requirement `json:"requirements,omitempty"`
	SkippedProducts []string               `json:"skipped_products,omitempty"`
}

// ComputeRequirements aggregates recipe-weighted raw-material demand for the
// orders of exactly one date. Orders for unknown products are skipped and
// reported, not treated as errors. Pure function of its inputs.
func ComputeRequirements(orders []Order, date string, recipes RecipeBook) RequirementPlan {
	var daily []Order
	for _, o := range orders {
		if o.Date == date {
			daily = append(daily, o)
		}
	}

	if len(daily) == 0 {
		return RequirementPlan{Outcome: PlanNoOrders}
	}

	required := make(map[string]Requirement)
	var skipped []string

	for _, o := range daily {
		recipe, ok := recipes[o.Product]
		if !ok {
			skipped = append(skipped, o.Product)
			continue
		}

		for _, line := range recipe {
			req := required[line.Item]
			req.Quantity += o.Quantity * line.QtyPerUnit
			// Recipes use one consistent unit per item within a run
			req.Unit = line.Unit
			required[line.Item] = req
		}
	}

	if len(required) == 0 {
		return RequirementPlan{Outcome: PlanNoRecipesMatched, SkippedProducts: skipped}
	}

	return RequirementPlan{
		Outcome:         PlanReady,
		Requirements:    required,
		SkippedProducts: skipped,
	}
}
