package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type LocationsController struct {
	locationService services.LocationServiceInterface
}

func NewLocationsController(locationService services.LocationServiceInterface) *LocationsController {
	return &LocationsController{
		locationService: locationService,
	}
}

// AddLocation godoc
// @Summary Save a location
// @Description Add a location to one of the user's collections (plan_pool, recommended_locations, last_recommendations)
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body request_models.AddLocationRequest true "Location payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations [post]
func (l *LocationsController) AddLocation(c *gin.Context) {
	var req request_models.AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	id, err := l.locationService.AddLocation(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Location saved successfully")
}

// RemoveLocation godoc
// @Summary Remove a saved location
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (l *LocationsController) RemoveLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	if err := l.locationService.RemoveLocation(c.Request.Context(), accountID, locationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Location removed successfully")
}

// ListCollection godoc
// @Summary List a location collection
// @Tags Locations
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {array} response_models.Location
// @Security BearerAuth
// @Router /locations/{collection} [get]
func (l *LocationsController) ListCollection(c *gin.Context) {
	collection := c.Param("collection")
	if collection == "" {
		utils.RespondError(c, http.StatusBadRequest, "Collection name is required")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	locations, err := l.locationService.ListCollection(c.Request.Context(), accountID, collection)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

// StoreRecommendations godoc
// @Summary Store the latest recommendation results
// @Description Replace the last_recommendations collection with a fresh recommender response
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body []request_models.AddLocationRequest true "Recommended locations"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/recommendations [put]
func (l *LocationsController) StoreRecommendations(c *gin.Context) {
	var req []request_models.AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	if err := l.locationService.StoreRecommendations(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Recommendations stored successfully")
}
