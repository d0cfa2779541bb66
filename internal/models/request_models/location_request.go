package request_models

import "tripmate/internal/models/response_models"

type AddLocationRequest struct {
	Collection  string   `json:"collection" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	City        string   `json:"city"`
	Province    string   `json:"province"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	AvgRating   *float64 `json:"avg_rating"`
	RatingCount int      `json:"rating_count"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Category    string   `json:"category"`
}

type SaveItineraryRequest struct {
	Title string               `json:"title" binding:"required"`
	Plan  response_models.Plan `json:"plan" binding:"required"`
}
