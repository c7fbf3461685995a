package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/indago/supply-chain/internal/inventory/domain"
)

type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockItem{}, &domain.ProcurementRequest{})
}

func (r *GormStockRepository) FindByItem(ctx context.Context, item string) (*domain.StockItem, error) {
	var stock domain.StockItem
	err := r.db.WithContext(ctx).Where("item = ?", item).First(&stock).Error
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *GormStockRepository) FindAll(ctx context.Context) ([]domain.StockItem, error) {
	var items []domain.StockItem
	err := r.db.WithContext(ctx).Order("item").Find(&items).Error
	return items, err
}

func (r *GormStockRepository) Save(ctx context.Context, item *domain.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Seed inserts the seed rows, ignoring items that already exist so restarts
// do not reset a depleted ledger
func (r *GormStockRepository) Seed(ctx context.Context, items []domain.StockItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error
}

func (r *GormStockRepository) Transaction(ctx context.Context, fn func(domain.StockRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStockRepository(tx))
	})
}

type GormProcurementLogRepository struct {
	db *gorm.DB
}

func NewGormProcurementLogRepository(db *gorm.DB) *GormProcurementLogRepository {
	return &GormProcurementLogRepository{db: db}
}

func (r *GormProcurementLogRepository) Append(req *domain.ProcurementRequest) error {
	return r.db.Create(req).Error
}

// HasOpen reports whether an open (pending or submitted) request exists for
// item. Failed requests are terminal and do not count.
func (r *GormProcurementLogRepository) HasOpen(item string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ProcurementRequest{}).
		Where("item = ? AND status IN ?", item, []string{domain.StatusPending, domain.StatusSubmitted}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProcurementLogRepository) FindAll(limit, offset int) ([]domain.ProcurementRequest, error) {
	var requests []domain.ProcurementRequest
	err := r.db.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
