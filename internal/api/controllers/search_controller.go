package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// SearchLocations godoc
// @Summary Search saved locations by text
// @Description Embedding similarity search over the user's saved locations
// @Tags Search
// @Produce json
// @Param q query string true "Free-text query"
// @Param limit query int false "Max results" default(10)
// @Success 200 {array} response_models.SearchHit
// @Security BearerAuth
// @Router /search/locations [get]
func (s *SearchController) SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	hits, err := s.searchService.SearchSavedLocations(c.Request.Context(), accountID, query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hits, "Search completed successfully")
}
