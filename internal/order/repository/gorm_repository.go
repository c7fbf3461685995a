package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/order/domain"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.IndividualOrder{}, &domain.WeeklyOrder{})
}

func (r *GormOrderRepository) CreateIndividual(order *domain.IndividualOrder) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) ListIndividual(limit, offset int) ([]domain.IndividualOrder, error) {
	var orders []domain.IndividualOrder
	err := r.db.Limit(limit).Offset(offset).
		Order("order_date").
		Find(&orders).Error
	return orders, err
}

// Aggregate truncates the weekly rollup and rebuilds it with a grouped sum
// over the individual orders. Both steps run in one transaction so readers
// never observe a half-built rollup.
func (r *GormOrderRepository) Aggregate() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.WeeklyOrder{}).Error; err != nil {
			return err
		}

		rows := []struct {
			OrderDate  string
			Product    string
			Quantity   int
			TotalPrice int
		}{}

		err := tx.Model(&domain.IndividualOrder{}).
			Select("order_date, product, SUM(quantity) AS quantity, SUM(total_price) AS total_price").
			Group("order_date, product").
			Order("order_date").
			Scan(&rows).Error
		if err != nil {
			return err
		}

		now := time.Now()
		for _, row := range rows {
			weekly := domain.WeeklyOrder{
				OrderDate:  row.OrderDate,
				Product:    row.Product,
				Quantity:   row.Quantity,
				TotalPrice: row.TotalPrice,
				CreatedAt:  now,
			}
			if err := tx.Create(&weekly).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *GormOrderRepository) ListWeekly() ([]domain.WeeklyOrder, error) {
	var orders []domain.WeeklyOrder
	err := r.db.Order("order_date").Find(&orders).Error
	return orders, err
}
