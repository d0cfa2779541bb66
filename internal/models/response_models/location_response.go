package response_models

type Location struct {
	ID          string   `json:"id"`
	Collection  string   `json:"collection"`
	Name        string   `json:"name"`
	City        string   `json:"city,omitempty"`
	Province    string   `json:"province,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	AvgRating   *float64 `json:"avg_rating,omitempty"`
	RatingCount int      `json:"rating_count,omitempty"`
	Description string   `json:"description,omitempty"`
	Activities  []string `json:"activities,omitempty"`
	Category    string   `json:"category,omitempty"`
}

type SavedItinerary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Plan  *Plan  `json:"plan,omitempty"`
}

type SearchHit struct {
	LocationID string  `json:"location_id"`
	Name       string  `json:"name"`
	Province   string  `json:"province,omitempty"`
	Distance   float64 `json:"distance"`
}
