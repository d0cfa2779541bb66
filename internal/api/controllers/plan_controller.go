package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel plan
// @Description Build the user's catalog, request a raw itinerary from the routing engine and normalize it
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Plan generation payload"
// @Success 200 {object} response_models.Plan
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/generate [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	plan, err := p.planService.GeneratePlan(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan generated successfully")
}

// ReplaceStop godoc
// @Summary Replace one stop of a plan
// @Description Splice a new stop into an interior index and rebuild leg distances; first and last stops are fixed
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.ReplaceStopRequest true "Plan, index and candidate stop"
// @Success 200 {object} response_models.Plan
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/replace-stop [post]
func (p *PlanController) ReplaceStop(c *gin.Context) {
	var req request_models.ReplaceStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.ReplaceStop(req.Plan, req.Index, req.Candidate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Stop replaced successfully")
}

// Reoptimize godoc
// @Summary Re-optimize an edited plan
// @Description Send the itinerary to the external optimizer and rebuild the plan from its answer
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.ReoptimizeRequest true "Current plan"
// @Success 200 {object} response_models.Plan
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/reoptimize [post]
func (p *PlanController) Reoptimize(c *gin.Context) {
	var req request_models.ReoptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.Reoptimize(c.Request.Context(), req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan re-optimized successfully")
}

func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}
