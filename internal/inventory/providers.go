package inventory

import (
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/inventory/client"
	"github.com/indago/supply-chain/internal/inventory/domain"
	"github.com/indago/supply-chain/internal/inventory/repository"
	"github.com/indago/supply-chain/pkg/lock"
)

// ServiceURLs holds the base URLs of the collaborating services
type ServiceURLs struct {
	FinanceURL string
	KitchenURL string
}

// ProvideStockRepository provides the stock ledger repository with tracing
func ProvideStockRepository(db *gorm.DB) domain.StockRepository {
	return repository.NewGormStockRepositoryWithTracing(db)
}

// ProvideProcurementLogRepository provides the procurement log repository
func ProvideProcurementLogRepository(db *gorm.DB) domain.ProcurementLogRepository {
	return repository.NewGormProcurementLogRepository(db)
}

// ProvideReplenishmentPolicy provides the policy with the seed configuration
func ProvideReplenishmentPolicy() *domain.ReplenishmentPolicy {
	return domain.NewReplenishmentPolicy(domain.DefaultReplenishmentConfig())
}

// ProvideItemLocks provides the per-item lock set shared by consumption and
// dispatch
func ProvideItemLocks() *lock.Keyed {
	return lock.NewKeyed()
}

// ProvideApprovalGateway provides the finance approval client
func ProvideApprovalGateway(urls ServiceURLs) domain.ApprovalGateway {
	return client.NewFinanceClient(urls.FinanceURL)
}

// ProvideKitchenClient provides the kitchen batch client
func ProvideKitchenClient(urls ServiceURLs) *client.KitchenClient {
	return client.NewKitchenClient(urls.KitchenURL)
}
