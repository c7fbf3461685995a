package domain

import "testing"

func TestComputeRequirementsAggregatesRecipes(t *testing.T) {
	orders := []Order{
		{Date: "2026-08-17", Product: "Latte", Quantity: 5, TotalPrice: 250},
		{Date: "2026-08-17", Product: "capucino", Quantity: 3, TotalPrice: 120},
		{Date: "2026-08-18", Product: "Latte", Quantity: 100, TotalPrice: 5000},
	}

	plan := ComputeRequirements(orders, "2026-08-17", DefaultRecipeBook())

	if plan.Outcome != PlanReady {
		t.Fatalf("outcome = %q, want %q", plan.Outcome, PlanReady)
	}

	// Latte 5x (beans 8, milk 200) + capucino 3x (beans 10, milk 150)
	beans := plan.Requirements["beans"]
	if beans.Quantity != 70 || beans.Unit != "g" {
		t.Errorf("beans = %+v, want 70 g", beans)
	}
	milk := plan.Requirements["milk"]
	if milk.Quantity != 1450 || milk.Unit != "ml" {
		t.Errorf("milk = %+v, want 1450 ml", milk)
	}
	if len(plan.SkippedProducts) != 0 {
		t.Errorf("unexpected skipped products %v", plan.SkippedProducts)
	}
}

func TestComputeRequirementsNoOrdersForDate(t *testing.T) {
	orders := []Order{
		{Date: "2026-08-18", Product: "Latte", Quantity: 2},
	}

	plan := ComputeRequirements(orders, "2026-08-17", DefaultRecipeBook())

	if plan.Outcome != PlanNoOrders {
		t.Errorf("outcome = %q, want %q", plan.Outcome, PlanNoOrders)
	}
	if plan.Requirements != nil {
		t.Errorf("expected nil requirements, got %v", plan.Requirements)
	}
}

func TestComputeRequirementsSkipsUnknownProducts(t *testing.T) {
	orders := []Order{
		{Date: "2026-08-17", Product: "espresso", Quantity: 4},
		{Date: "2026-08-17", Product: "Latte", Quantity: 1},
	}

	plan := ComputeRequirements(orders, "2026-08-17", DefaultRecipeBook())

	if plan.Outcome != PlanReady {
		t.Fatalf("outcome = %q, want %q", plan.Outcome, PlanReady)
	}
	if len(plan.SkippedProducts) != 1 || plan.SkippedProducts[0] != "espresso" {
		t.Errorf("skipped = %v, want [espresso]", plan.SkippedProducts)
	}
	if plan.Requirements["beans"].Quantity != 8 {
		t.Errorf("beans = %d, want 8", plan.Requirements["beans"].Quantity)
	}
}

func TestComputeRequirementsNoRecipesMatched(t *testing.T) {
	orders := []Order{
		{Date: "2026-08-17", Product: "espresso", Quantity: 4},
		{Date: "2026-08-17", Product: "mocha", Quantity: 2},
	}

	plan := ComputeRequirements(orders, "2026-08-17", DefaultRecipeBook())

	if plan.Outcome != PlanNoRecipesMatched {
		t.Fatalf("outcome = %q, want %q", plan.Outcome, PlanNoRecipesMatched)
	}
	if len(plan.SkippedProducts) != 2 {
		t.Errorf("skipped = %v, want both products", plan.SkippedProducts)
	}
}
