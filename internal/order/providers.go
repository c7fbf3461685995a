package order

import (
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/order/domain"
	"github.com/indago/supply-chain/internal/order/repository"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}
