package repository

import (
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/kitchen/domain"
)

type GormBatchRepository struct {
	db *gorm.DB
}

func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

func (r *GormBatchRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.BatchConsumptionRecord{})
}

// AppendAll inserts all rows of one production run in a single transaction
func (r *GormBatchRepository) AppendAll(records []domain.BatchConsumptionRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormBatchRepository) FindByDate(date string) ([]domain.BatchConsumptionRecord, error) {
	var records []domain.BatchConsumptionRecord
	err := r.db.Where("production_date = ?", date).
		Order("item").
		Find(&records).Error
	return records, err
}
