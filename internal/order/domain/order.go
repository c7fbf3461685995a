package domain

import "time"

// IndividualOrder is one customer order as entered at intake
type IndividualOrder struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderDate  string    `json:"date" gorm:"column:order_date;not null;index;size:10"`
	Product    string    `json:"product" gorm:"not null;size:64"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	UnitPrice  int       `json:"unit_price" gorm:"not null"`
	TotalPrice int       `json:"total_price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name
func (IndividualOrder) TableName() string {
	return "individual_orders"
}

// WeeklyOrder is one rollup row: total quantity and revenue per
// (date, product). Rebuilt from scratch on every aggregation.
type WeeklyOrder struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderDate  string    `json:"date" gorm:"column:order_date;not null;index;size:10"`
	Product    string    `json:"product" gorm:"not null;size:64"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice int       `json:"total_price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name
func (WeeklyOrder) TableName() string {
	return "weekly_orders"
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	CreateIndividual(order *IndividualOrder) error
	ListIndividual(limit, offset int) ([]IndividualOrder, error)

	// Aggregate rebuilds the weekly rollup from the individual orders in
	// one transaction
	Aggregate() error
	ListWeekly() ([]WeeklyOrder, error)
}
