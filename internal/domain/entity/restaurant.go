package entity

// Restaurant is one row of the geocoded dataset.
type Restaurant struct {
	Name           string  `json:"name"`
	City           string  `json:"city"`
	Category       string  `json:"category"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"review_count"`
	DistanceMeters float64 `json:"distance_meters"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// ScoredRestaurant exists only inside a recommendation result.
type ScoredRestaurant struct {
	Restaurant
	ReviewTerm float64 `json:"review_term"`
	Score      float64 `json:"score"`
}
