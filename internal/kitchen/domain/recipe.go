package domain

// RecipeLine is one raw-material requirement of a product
type RecipeLine struct {
	Item       string `json:"item"`
	QtyPerUnit int    `json:"qty_per_unit"`
	Unit       string `json:"unit"`
}

// RecipeBook maps a product to its bill of materials. Loaded at startup,
// never mutated.
type RecipeBook map[string][]RecipeLine

// DefaultRecipeBook returns the seeded recipes, base units only
func DefaultRecipeBook() RecipeBook {
	return RecipeBook{
		"capucino": {
			{Item: "beans", QtyPerUnit: 10, Unit: "g"},
			{Item: "milk", QtyPerUnit: 150, Unit: "ml"},
		},
		"Latte": {
			{Item: "beans", QtyPerUnit: 8, Unit: "g"},
			{Item: "milk", QtyPerUnit: 200, Unit: "ml"},
		},
	}
}
