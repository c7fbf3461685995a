package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/indago/supply-chain/internal/kitchen/domain"
)

// OrderClient reads the weekly order rollup from the order service
type OrderClient struct {
	baseURL string
	client  *http.Client
}

// NewOrderClient creates an order feed client with a bounded timeout
func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchWeeklyOrders pulls the complete weekly order list. No pagination or
// server-side filtering; the planner filters by date.
func (c *OrderClient) FetchWeeklyOrders(ctx context.Context) ([]domain.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/orders/weekly", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach order service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	var body struct {
		Success bool           `json:"success"`
		Data    []domain.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode weekly orders: %w", err)
	}

	return body.Data, nil
}
