package finance

import (
	"os"
	"strconv"

	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/finance/domain"
	"github.com/indago/supply-chain/internal/finance/repository"
)

// ProvidePurchaseRepository provides the purchase request repository
func ProvidePurchaseRepository(db *gorm.DB) domain.PurchaseRepository {
	return repository.NewGormPurchaseRepository(db)
}

// ProvideBudgetPolicy provides the approval policy, with the ceiling
// overridable through BUDGET_LIMIT
func ProvideBudgetPolicy() domain.BudgetPolicy {
	limit, _ := strconv.ParseFloat(os.Getenv("BUDGET_LIMIT"), 64)
	return domain.NewBudgetPolicy(limit)
}
