package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/indago/supply-chain/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormStockRepositoryWithTracing wraps GormStockRepository so every ledger
// operation shows up as a child span of the request trace
type GormStockRepositoryWithTracing struct {
	*GormStockRepository
}

// NewGormStockRepositoryWithTracing creates a new repository with tracing
func NewGormStockRepositoryWithTracing(db *gorm.DB) *GormStockRepositoryWithTracing {
	return &GormStockRepositoryWithTracing{
		GormStockRepository: NewGormStockRepository(db),
	}
}

// FindByItem looks up one stock row under a span
func (r *GormStockRepositoryWithTracing) FindByItem(ctx context.Context, item string) (*domain.StockItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByItem",
		trace.WithAttributes(
			attribute.String("stock.item", item),
		),
	)
	defer span.End()

	stock, err := r.GormStockRepository.FindByItem(ctx, item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.quantity", stock.Quantity))
	return stock, nil
}

// Save persists one stock row under a span
func (r *GormStockRepositoryWithTracing) Save(ctx context.Context, item *domain.StockItem) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.String("stock.item", item.Item),
			attribute.Int("stock.quantity", item.Quantity),
		),
	)
	defer span.End()

	if err := r.GormStockRepository.Save(ctx, item); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindAll lists the ledger under a span
func (r *GormStockRepositoryWithTracing) FindAll(ctx context.Context) ([]domain.StockItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	items, err := r.GormStockRepository.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.count", len(items)))
	return items, nil
}

// Transaction wraps the commit in a span. Operations inside run against the
// transaction-bound repository and are covered by this span rather than
// getting one each.
func (r *GormStockRepositoryWithTracing) Transaction(ctx context.Context, fn func(domain.StockRepository) error) error {
	ctx, span := tracer.Start(ctx, "repository.Transaction")
	defer span.End()

	if err := r.GormStockRepository.Transaction(ctx, fn); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
