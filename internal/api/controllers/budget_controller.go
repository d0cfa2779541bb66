package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

// PredictBudget godoc
// @Summary Predict a trip budget
// @Description Proxy a budget prediction to the external estimator
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body request_models.BudgetPredictRequest true "Trip parameters"
// @Success 200 {object} response_models.BudgetPrediction
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /budget/predict [post]
func (b *BudgetController) PredictBudget(c *gin.Context) {
	var req request_models.BudgetPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	prediction, err := b.budgetService.PredictBudget(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prediction, "Budget predicted successfully")
}
