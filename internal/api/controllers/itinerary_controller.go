package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"strconv"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// SaveItinerary godoc
// @Summary Save a generated plan
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.SaveItineraryRequest true "Title and plan"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) SaveItinerary(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	id, err := i.itineraryService.SaveItinerary(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary saved successfully")
}

// ListItineraries godoc
// @Summary List saved itineraries
// @Tags Itineraries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {array} response_models.SavedItinerary
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "5")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItineraryByTitle godoc
// @Summary Fetch one saved itinerary with its plan
// @Tags Itineraries
// @Produce json
// @Param title query string true "Itinerary title"
// @Success 200 {object} response_models.SavedItinerary
// @Security BearerAuth
// @Router /itineraries/by-title [get]
func (i *ItineraryController) GetItineraryByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GetItineraryByTitle(c.Request.Context(), accountID, title)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// DeleteItinerary godoc
// @Summary Delete a saved itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), accountID, itineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
