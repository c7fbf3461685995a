//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/inventory/delivery/http"
	"github.com/indago/supply-chain/internal/inventory/usecase/command"
	"github.com/indago/supply-chain/internal/inventory/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStockRepository,
	ProvideProcurementLogRepository,
)

var PolicySet = wire.NewSet(
	ProvideReplenishmentPolicy,
	ProvideItemLocks,
)

var ClientSet = wire.NewSet(
	ProvideApprovalGateway,
	ProvideKitchenClient,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, urls ServiceURLs) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		PolicySet,
		ClientSet,
		command.NewDispatchProcurementHandler,
		command.NewApplyConsumptionHandler,
		query.NewListStockHandler,
		query.NewListProcurementsHandler,
		http.NewInventoryHandler,
	)
	return nil, nil
}
