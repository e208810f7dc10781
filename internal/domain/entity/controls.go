package entity

type RangeControl struct {
	Min     float64
	Max     float64
	Default float64
}

// Controls describes the inputs a dashboard UI offers for this dataset.
type Controls struct {
	Cities     []string
	Categories []string
	MinRating  RangeControl
	MinReviews RangeControl

	RecommendCity     string
	RecommendCategory string
	MaxDistance       RangeControl
}
