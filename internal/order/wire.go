//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/order/delivery/http"
	"github.com/indago/supply-chain/internal/order/usecase/command"
	"github.com/indago/supply-chain/internal/order/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateOrderHandler,
		command.NewAggregateOrdersHandler,
		query.NewListOrdersHandler,
		query.NewListWeeklyOrdersHandler,
		http.NewOrderHandler,
	)
	return nil, nil
}
