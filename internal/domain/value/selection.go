package value

import (
	"fmt"
	"strconv"
)

const (
	DefaultMinRating   = 3.0
	DefaultMinReviews  = 10
	DefaultMaxDistance = 1000.0
	DefaultK           = 5

	RatingFloor        = 0.0
	RatingCeiling      = 5.0
	MaxDistanceFloor   = 100.0
	MaxRecommendations = 50
)

// FilterSelection narrows the dataset for display. An empty Cities or
// Categories set matches nothing.
type FilterSelection struct {
	Cities     Set
	Categories Set
	MinRating  float64
	MinReviews int
}

// Key is a canonical representation of the selection, suitable for
// memoizing filter results.
func (f FilterSelection) Key() string {
	return fmt.Sprintf(
		"c=%s|k=%s|r=%s|n=%d",
		f.Cities.key(),
		f.Categories.key(),
		strconv.FormatFloat(f.MinRating, 'g', -1, 64),
		f.MinReviews,
	)
}

// RecommendationQuery asks for the best restaurants of one category in one
// city within a distance.
type RecommendationQuery struct {
	City        string
	Category    string
	MaxDistance float64
	K           int
}

// Limit returns K, or DefaultK when K is not positive.
func (q RecommendationQuery) Limit() int {
	if q.K <= 0 {
		return DefaultK
	}

	return q.K
}

func (q RecommendationQuery) Key() string {
	return fmt.Sprintf(
		"city=%q|category=%q|d=%s|k=%d",
		q.City,
		q.Category,
		strconv.FormatFloat(q.MaxDistance, 'g', -1, 64),
		q.Limit(),
	)
}
