package repository

import (
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/finance/domain"
)

type GormPurchaseRepository struct {
	db *gorm.DB
}

func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

func (r *GormPurchaseRepository) Create(request *domain.PurchaseRequest) error {
	return r.db.Create(request).Error
}

func (r *GormPurchaseRepository) FindAll(limit, offset int) ([]domain.PurchaseRequest, error) {
	var requests []domain.PurchaseRequest
	err := r.db.Limit(limit).Offset(offset).
		Order("request_date DESC").
		Find(&requests).Error
	return requests, err
}
