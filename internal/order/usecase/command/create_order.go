package command

import (
	"fmt"
	"time"

	"github.com/indago/supply-chain/internal/order/domain"
)

// CreateOrderCommand represents the intent to record one customer order
type CreateOrderCommand struct {
	OrderDate string `json:"date"`
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// CreateOrderHandler handles order intake
type CreateOrderHandler struct {
	orders domain.OrderRepository
}

func NewCreateOrderHandler(orders domain.OrderRepository) *CreateOrderHandler {
	return &CreateOrderHandler{orders: orders}
}

// Handle validates and persists an individual order. The stored total is
// derived here, never taken from the caller.
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.IndividualOrder, error) {
	if err := h.validate(cmd); err != nil {
		return nil, err
	}

	order := &domain.IndividualOrder{
		OrderDate:  cmd.OrderDate,
		Product:    cmd.Product,
		Quantity:   cmd.Quantity,
		UnitPrice:  cmd.UnitPrice,
		TotalPrice: cmd.Quantity * cmd.UnitPrice,
	}

	if err := h.orders.CreateIndividual(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (h *CreateOrderHandler) validate(cmd CreateOrderCommand) error {
	if cmd.OrderDate == "" {
		return fmt.Errorf("order date is required")
	}
	if _, err := time.Parse("2006-01-02", cmd.OrderDate); err != nil {
		return fmt.Errorf("order date must be YYYY-MM-DD")
	}
	if cmd.Product == "" {
		return fmt.Errorf("product is required")
	}
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if cmd.UnitPrice <= 0 {
		return fmt.Errorf("unit price must be positive")
	}
	return nil
}
