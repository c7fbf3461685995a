package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/indago/supply-chain/internal/inventory/domain"
	"github.com/indago/supply-chain/pkg/logger"
)

// FinanceClient submits purchase requests to the finance service over HTTP
type FinanceClient struct {
	baseURL string
	client  *http.Client
}

// NewFinanceClient creates a finance approval client with a bounded timeout
func NewFinanceClient(baseURL string) *FinanceClient {
	return &FinanceClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// SubmitPurchaseRequest posts a purchase request for approval. A transport
// failure returns an error; any HTTP response, approved or not, is returned
// with its status and body so the caller can audit it.
func (c *FinanceClient) SubmitPurchaseRequest(ctx context.Context, payload domain.PurchaseRequestPayload) (*domain.ApprovalResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase request: %w", err)
	}

	url := c.baseURL + "/api/purchase-requests"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach finance service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read approval response: %w", err)
	}

	logger.Logger.Info().
		Str("order_id", payload.OrderID).
		Str("item", payload.ItemName).
		Int("status_code", resp.StatusCode).
		Msg("Purchase request submitted to finance")

	return &domain.ApprovalResult{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}, nil
}
