package domain

import (
	"context"
	"errors"
)

// Order is the read-only view of a weekly order row served by the order
// service
type Order struct {
	Date       string `json:"date"`
	Product    string `json:"product"`
	Quantity   int    `json:"quantity"`
	TotalPrice int    `json:"total_price"`
}

// OrdersFeed fetches the full weekly order list; filtering by date is the
// planner's job
type OrdersFeed interface {
	FetchWeeklyOrders(ctx context.Context) ([]Order, error)
}

// StockSnapshotProvider fetches a live item-to-quantity snapshot from the
// inventory service
type StockSnapshotProvider interface {
	FetchStockSnapshot(ctx context.Context) (map[string]int, error)
}

// ErrUpstream marks a collaborator call failure. A production run aborts on
// it with no local state change.
var ErrUpstream = errors.New("upstream service unavailable")
