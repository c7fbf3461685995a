//go:build wireinject
// +build wireinject

package kitchen

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/kitchen/delivery/http"
	"github.com/indago/supply-chain/internal/kitchen/usecase/command"
	"github.com/indago/supply-chain/internal/kitchen/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBatchRepository,
	ProvideRecipeBook,
)

var ClientSet = wire.NewSet(
	ProvideOrdersFeed,
	ProvideStockSnapshotProvider,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, urls ServiceURLs) (*http.KitchenHandler, error) {
	wire.Build(
		RepositorySet,
		ClientSet,
		command.NewRunProductionHandler,
		query.NewGetBatchHandler,
		http.NewKitchenHandler,
	)
	return nil, nil
}
