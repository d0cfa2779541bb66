package request_models

type BudgetPredictRequest struct {
	StartCity string `json:"start_city" binding:"required"`
	EndCity   string `json:"end_city" binding:"required"`
	Days      int    `json:"days" binding:"required,min=1"`
	Travelers int    `json:"travelers" binding:"required,min=1"`
	Style     string `json:"style"`
}
