// Package rest holds the JSON models of the HTTP API.
package rest

// FilterSelection narrows the dashboard. A nil Cities or Categories selects
// every known value; an empty list selects nothing.
type FilterSelection struct {
	Cities     *[]string `json:"cities"`
	Categories *[]string `json:"categories"`
	MinRating  *float64  `json:"minRating" validate:"omitempty,gte=0,lte=5"`
	MinReviews *int      `json:"minReviews" validate:"omitempty,gte=0"`
}

type RecommendationQuery struct {
	City        string   `json:"city" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	MaxDistance *float64 `json:"maxDistance" validate:"omitempty,gte=0"`
	K           *int     `json:"k" validate:"omitempty,gte=0,lte=50"`
}

type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

type Controls struct {
	Cities            []string `json:"cities"`
	Categories        []string `json:"categories"`
	MinRating         Range    `json:"minRating"`
	MinReviews        Range    `json:"minReviews"`
	RecommendCity     string   `json:"recommendCity"`
	RecommendCategory string   `json:"recommendCategory"`
	MaxDistance       Range    `json:"maxDistance"`
}

// Restaurant is a table row.
type Restaurant struct {
	City           string  `json:"city"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Rating         float64 `json:"googleRating"`
	Reviews        int     `json:"reviews"`
	DistanceMeters float64 `json:"distanceMeters"`
}

type Summary struct {
	Count           int      `json:"count"`
	AverageRating   *float64 `json:"averageRating"`
	TotalReviews    int      `json:"totalReviews"`
	AverageDistance *float64 `json:"averageDistance"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CityRating struct {
	City          string  `json:"city"`
	AverageRating float64 `json:"averageRating"`
}

type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Marker struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Label  string  `json:"label"`
}

type Map struct {
	Center  *LatLng  `json:"center"`
	Zoom    int      `json:"zoom"`
	Markers []Marker `json:"markers"`
}

type Dashboard struct {
	Summary         Summary         `json:"summary"`
	CategoryCounts  []CategoryCount `json:"categoryCounts"`
	RatingByCity    []CityRating    `json:"ratingByCity"`
	ReviewHistogram []HistogramBin  `json:"reviewHistogram"`
	Map             Map             `json:"map"`
	Restaurants     []Restaurant    `json:"restaurants"`
}

type ScoredRestaurant struct {
	Restaurant
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Score     float64 `json:"score"`
}

type Recommendations struct {
	NoMatches bool               `json:"noMatches"`
	Message   string             `json:"message,omitempty"`
	Items     []ScoredRestaurant `json:"items"`
}

// GeoJSON FeatureCollection of restaurant markers (RFC 7946).
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   Point             `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Point coordinates are [longitude, latitude].
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Label    string  `json:"label"`
}

// Error is the body of every failed response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
