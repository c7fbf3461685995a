package kitchen

import (
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/kitchen/client"
	"github.com/indago/supply-chain/internal/kitchen/domain"
	"github.com/indago/supply-chain/internal/kitchen/repository"
)

// ServiceURLs holds the base URLs of the collaborating services
type ServiceURLs struct {
	OrderURL     string
	InventoryURL string
}

// ProvideBatchRepository provides the batch consumption repository
func ProvideBatchRepository(db *gorm.DB) domain.BatchRepository {
	return repository.NewGormBatchRepository(db)
}

// ProvideRecipeBook provides the seeded recipes
func ProvideRecipeBook() domain.RecipeBook {
	return domain.DefaultRecipeBook()
}

// ProvideOrdersFeed provides the order service client
func ProvideOrdersFeed(urls ServiceURLs) domain.OrdersFeed {
	return client.NewOrderClient(urls.OrderURL)
}

// ProvideStockSnapshotProvider provides the inventory service client
func ProvideStockSnapshotProvider(urls ServiceURLs) domain.StockSnapshotProvider {
	return client.NewInventoryClient(urls.InventoryURL)
}
