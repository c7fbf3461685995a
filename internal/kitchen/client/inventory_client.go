package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// InventoryClient reads the live stock ledger from the inventory service
type InventoryClient struct {
	baseURL string
	client  *http.Client
}

// NewInventoryClient creates a stock snapshot client with a bounded timeout
func NewInventoryClient(baseURL string) *InventoryClient {
	return &InventoryClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchStockSnapshot pulls the full ledger and returns it as an
// item-to-quantity lookup
func (c *InventoryClient) FetchStockSnapshot(ctx context.Context) (map[string]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/stock", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach inventory service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory service returned status %d", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Item     string `json:"item"`
			Quantity int    `json:"quantity"`
			Unit     string `json:"unit"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode stock snapshot: %w", err)
	}

	snapshot := make(map[string]int, len(body.Data))
	for _, row := range body.Data {
		snapshot[row.Item] = row.Quantity
	}
	return snapshot, nil
}
