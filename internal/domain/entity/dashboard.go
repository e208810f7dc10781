package entity

// Summary holds the headline metrics of a filtered view. The averages are nil
// when the view is empty.
type Summary struct {
	Count           int
	AverageRating   *float64
	TotalReviews    int
	AverageDistance *float64
}

type CategoryCount struct {
	Category string
	Count    int
}

type CityRating struct {
	City          string
	AverageRating float64
}

// HistogramBin covers [Lower, Upper); the last bin of a histogram also
// includes Upper.
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

type LatLng struct {
	Latitude  float64
	Longitude float64
}

type Marker struct {
	LatLng
	Name   string
	Rating float64
	Label  string
}

// MapView describes the markers map. Center is nil for an empty view.
type MapView struct {
	Center  *LatLng
	Zoom    int
	Markers []Marker
}

type Dashboard struct {
	Summary         Summary
	CategoryCounts  []CategoryCount
	RatingByCity    []CityRating
	ReviewHistogram []HistogramBin
	Map             MapView
	Restaurants     []Restaurant
}
