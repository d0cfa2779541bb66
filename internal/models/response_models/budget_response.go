package response_models

type BudgetPrediction struct {
	EstimatedTotal float64            `json:"estimated_total"`
	Currency       string             `json:"currency"`
	Breakdown      map[string]float64 `json:"breakdown,omitempty"`
}
