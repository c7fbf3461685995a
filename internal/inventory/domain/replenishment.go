package domain

import "math"

// ReplenishmentConfig carries the seeded baselines and thresholds that
// drive the replenishment decision. It is injected at construction so tests
// can vary baselines without touching globals.
type ReplenishmentConfig struct {
	// Baselines maps item name to its seeded target stock level
	Baselines map[string]int
	// Units maps item name to its measurement unit
	Units map[string]string
	// UnitCosts maps item name to the estimated cost per unit, used to
	// price purchase requests for the finance budget check
	UnitCosts map[string]float64
	// LowStockThreshold is the fraction of baseline at or below which a
	// replenishment fires
	LowStockThreshold float64
	// MinRefillRatio is the fraction of baseline a request never goes below
	MinRefillRatio float64
}

// DefaultReplenishmentConfig returns the seed configuration
func DefaultReplenishmentConfig() ReplenishmentConfig {
	return ReplenishmentConfig{
		Baselines: map[string]int{
			"beans": 10000,
			"milk":  100000,
		},
		Units: map[string]string{
			"beans": "g",
			"milk":  "ml",
		},
		UnitCosts: map[string]float64{
			"beans": 0.08,
			"milk":  0.01,
		},
		LowStockThreshold: 0.1,
		MinRefillRatio:    0.5,
	}
}

// ReplenishmentPolicy decides whether an item needs replenishing and how
// much to request. Pure: no side effects, no clock, no store access.
type ReplenishmentPolicy struct {
	cfg ReplenishmentConfig
}

// NewReplenishmentPolicy creates a policy from config
func NewReplenishmentPolicy(cfg ReplenishmentConfig) *ReplenishmentPolicy {
	return &ReplenishmentPolicy{cfg: cfg}
}

// ShouldReplenish reports whether remaining stock has dropped to or below
// the low-stock threshold. Items without a seeded baseline never fire.
func (p *ReplenishmentPolicy) ShouldReplenish(item string, remaining int) bool {
	baseline, ok := p.cfg.Baselines[item]
	if !ok {
		return false
	}
	return float64(remaining) <= float64(baseline)*p.cfg.LowStockThreshold
}

// ReplenishmentQuantity computes how much to request: enough to restore the
// baseline, but never less than the minimum refill fraction of it. A result
// of zero or less means no request should be issued.
func (p *ReplenishmentPolicy) ReplenishmentQuantity(item string, remaining int) int {
	baseline := p.cfg.Baselines[item]
	refill := baseline - remaining
	floor := int(math.Floor(float64(baseline) * p.cfg.MinRefillRatio))
	if refill < floor {
		refill = floor
	}
	return refill
}

// Unit returns the measurement unit for item, empty if unknown
func (p *ReplenishmentPolicy) Unit(item string) string {
	return p.cfg.Units[item]
}

// EstimatedCost prices a request for the finance budget check. Items
// without a seeded unit cost are priced at zero.
func (p *ReplenishmentPolicy) EstimatedCost(item string, quantity int) float64 {
	return float64(quantity) * p.cfg.UnitCosts[item]
}

// SeedItems returns the stock rows to create at startup
func (p *ReplenishmentPolicy) SeedItems() []StockItem {
	items := make([]StockItem, 0, len(p.cfg.Baselines))
	for name, qty := range p.cfg.Baselines {
		items = append(items, StockItem{
			Item:     name,
			Quantity: qty,
			Unit:     p.cfg.Units[name],
		})
	}
	return items
}
