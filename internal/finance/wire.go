//go:build wireinject
// +build wireinject

package finance

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/finance/delivery/http"
	"github.com/indago/supply-chain/internal/finance/usecase/command"
	"github.com/indago/supply-chain/internal/finance/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePurchaseRepository,
	ProvideBudgetPolicy,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.FinanceHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewEvaluatePurchaseHandler,
		query.NewGetHistoryHandler,
		http.NewFinanceHandler,
	)
	return nil, nil
}
