package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/indago/supply-chain/internal/inventory/domain"
)

// KitchenClient reads committed batch consumption from the kitchen service
type KitchenClient struct {
	baseURL string
	client  *http.Client
}

// NewKitchenClient creates a kitchen batch client with a bounded timeout
func NewKitchenClient(baseURL string) *KitchenClient {
	return &KitchenClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetBatchConsumption fetches the batch consumption rows committed for a
// production date
func (c *KitchenClient) GetBatchConsumption(ctx context.Context, date string) ([]domain.ConsumptionRow, error) {
	endpoint := fmt.Sprintf("%s/api/batch?date=%s", c.baseURL, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach kitchen service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kitchen service returned status %d", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Date        string                  `json:"date"`
			Consumption []domain.ConsumptionRow `json:"consumption"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode kitchen batch response: %w", err)
	}

	return body.Data.Consumption, nil
}
