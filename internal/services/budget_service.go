package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type BudgetServiceInterface interface {
	PredictBudget(ctx context.Context, req request_models.BudgetPredictRequest) (response_models.BudgetPrediction, error)
}

// BudgetClient proxies budget predictions to the external estimator.
type BudgetClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewBudgetClient() BudgetServiceInterface {
	base := os.Getenv("BUDGET_SERVICE_URL")
	if base == "" {
		panic("BUDGET_SERVICE_URL is empty")
	}
	return &BudgetClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: base,
	}
}

func (c *BudgetClient) PredictBudget(ctx context.Context, req request_models.BudgetPredictRequest) (response_models.BudgetPrediction, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return response_models.BudgetPrediction{}, fmt.Errorf("budget encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/budget/predict", bytes.NewReader(body))
	if err != nil {
		return response_models.BudgetPrediction{}, fmt.Errorf("budget request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return response_models.BudgetPrediction{}, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return response_models.BudgetPrediction{}, fmt.Errorf("%w: budget status %s", utils.ErrUpstreamUnavailable, resp.Status)
	}

	var out response_models.BudgetPrediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return response_models.BudgetPrediction{}, fmt.Errorf("%w: budget decode: %v", utils.ErrUpstreamUnavailable, err)
	}
	return out, nil
}
