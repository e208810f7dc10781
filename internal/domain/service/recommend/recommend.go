// Package recommend ranks the restaurants of a single city and category by a
// weighted score of rating and review count.
package recommend

import (
	"cmp"
	"slices"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/value"
)

const (
	RatingWeight = 0.7
	ReviewWeight = 0.3
)

// Recommend selects the rows matching the query and returns at most
// query.Limit() of them ordered by score descending. Review counts are
// normalized by the largest count inside the selection, not the dataset, so
// a restaurant's score depends on the group it is compared with.
func Recommend(dataset entity.Dataset, query value.RecommendationQuery) entity.Recommendation {
	selection := Select(dataset, query)
	if len(selection) == 0 {
		return entity.Recommendation{
			Items:     []entity.ScoredRestaurant{},
			NoMatches: true,
		}
	}

	scored := Score(selection)

	// Stable: equal scores keep dataset order.
	slices.SortStableFunc(scored, func(a, b entity.ScoredRestaurant) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit := query.Limit(); len(scored) > limit {
		scored = scored[:limit]
	}

	return entity.Recommendation{
		Items: scored,
	}
}

// Select keeps rows of the query's city and category within MaxDistance.
func Select(dataset entity.Dataset, query value.RecommendationQuery) []entity.Restaurant {
	selection := make([]entity.Restaurant, 0)

	for _, r := range dataset.All() {
		if r.City == query.City &&
			r.Category == query.Category &&
			r.DistanceMeters <= query.MaxDistance {
			selection = append(selection, r)
		}
	}

	return selection
}

// Score builds a new scored record per row. When every row has zero reviews
// the review term is zero and the ranking falls back to rating alone.
func Score(selection []entity.Restaurant) []entity.ScoredRestaurant {
	maxReviews := 0
	for _, r := range selection {
		maxReviews = max(maxReviews, r.ReviewCount)
	}

	scored := make([]entity.ScoredRestaurant, 0, len(selection))

	for _, r := range selection {
		var reviewTerm float64
		if maxReviews > 0 {
			reviewTerm = float64(r.ReviewCount) / float64(maxReviews) * ReviewWeight
		}

		scored = append(scored, entity.ScoredRestaurant{
			Restaurant: r,
			ReviewTerm: reviewTerm,
			Score:      r.Rating*RatingWeight + reviewTerm,
		})
	}

	return scored
}
