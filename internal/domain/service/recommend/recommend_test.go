package recommend_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/service/recommend"
	"restaurant_analytics/internal/domain/value"
)

func restaurant(name, city, category string, rating float64, reviews int, distance float64) entity.Restaurant {
	return entity.Restaurant{
		Name:           name,
		City:           city,
		Category:       category,
		Rating:         rating,
		ReviewCount:    reviews,
		DistanceMeters: distance,
	}
}

func TestRecommendScoring(t *testing.T) {
	rq := require.New(t)

	dataset := entity.NewDataset([]entity.Restaurant{
		restaurant("zero", "Pune", "Cafe", 4.0, 0, 100),
		restaurant("half", "Pune", "Cafe", 4.5, 50, 200),
		restaurant("full", "Pune", "Cafe", 4.8, 100, 300),
	})

	rec := recommend.Recommend(dataset, value.RecommendationQuery{
		City:        "Pune",
		Category:    "Cafe",
		MaxDistance: 1000,
	})

	rq.False(rec.NoMatches)
	rq.Len(rec.Items, 3)

	byName := make(map[string]entity.ScoredRestaurant)
	for _, item := range rec.Items {
		byName[item.Name] = item
	}

	rq.InDelta(0.3, byName["full"].ReviewTerm, 1e-12)
	rq.InDelta(0.15, byName["half"].ReviewTerm, 1e-12)
	rq.InDelta(0.0, byName["zero"].ReviewTerm, 1e-12)

	for _, item := range rec.Items {
		rq.InDelta(item.Rating*recommend.RatingWeight+item.ReviewTerm, item.Score, 1e-12)
	}

	rq.Equal("full", rec.Items[0].Name)
	rq.InDelta(4.8*0.7+0.3, rec.Items[0].Score, 1e-12)
	rq.Equal("half", rec.Items[1].Name)
	rq.Equal("zero", rec.Items[2].Name)
}

func TestRecommendZeroReviews(t *testing.T) {
	rq := require.New(t)

	dataset := entity.NewDataset([]entity.Restaurant{
		restaurant("low", "Goa", "Bar", 3.1, 0, 10),
		restaurant("high", "Goa", "Bar", 4.9, 0, 10),
		restaurant("mid", "Goa", "Bar", 4.0, 0, 10),
	})

	rec := recommend.Recommend(dataset, value.RecommendationQuery{
		City:        "Goa",
		Category:    "Bar",
		MaxDistance: 10,
	})

	rq.False(rec.NoMatches)
	rq.Equal([]string{"high", "mid", "low"}, itemNames(rec))

	for _, item := range rec.Items {
		rq.Zero(item.ReviewTerm)
		rq.InDelta(item.Rating*0.7, item.Score, 1e-12)
	}
}

func TestRecommendNoMatches(t *testing.T) {
	rq := require.New(t)

	dataset := entity.NewDataset([]entity.Restaurant{
		restaurant("far", "Pune", "Cafe", 4.0, 10, 5000),
		restaurant("other-city", "Delhi", "Cafe", 4.0, 10, 10),
	})

	testCases := []struct {
		name  string
		query value.RecommendationQuery
	}{
		{
			name:  "Unknown city",
			query: value.RecommendationQuery{City: "Atlantis", Category: "Cafe", MaxDistance: 10000},
		},
		{
			name:  "Unknown category",
			query: value.RecommendationQuery{City: "Pune", Category: "Sushi", MaxDistance: 10000},
		},
		{
			name:  "Everything too far",
			query: value.RecommendationQuery{City: "Pune", Category: "Cafe", MaxDistance: 4999.9},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rec := recommend.Recommend(dataset, tc.query)

			rq.True(rec.NoMatches)
			rq.NotNil(rec.Items)
			rq.Empty(rec.Items)
		})
	}

	rec := recommend.Recommend(entity.Dataset{}, value.RecommendationQuery{City: "Pune", Category: "Cafe"})
	rq.True(rec.NoMatches)
}

func TestRecommendLimitAndOrder(t *testing.T) {
	rq := require.New(t)

	rows := make([]entity.Restaurant, 0, 12)
	for i := range 12 {
		rows = append(rows, restaurant(fmt.Sprintf("r%02d", i), "Pune", "Cafe", float64(i%5), i*7, float64(i*10)))
	}

	dataset := entity.NewDataset(rows)

	testCases := []struct {
		name     string
		k        int
		expected int
	}{
		{name: "Default k", k: 0, expected: value.DefaultK},
		{name: "Negative k falls back to default", k: -3, expected: value.DefaultK},
		{name: "Custom k", k: 3, expected: 3},
		{name: "k larger than selection", k: 50, expected: 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rec := recommend.Recommend(dataset, value.RecommendationQuery{
				City:        "Pune",
				Category:    "Cafe",
				MaxDistance: 1000,
				K:           tc.k,
			})

			rq.Len(rec.Items, tc.expected)

			for i := 1; i < len(rec.Items); i++ {
				rq.GreaterOrEqual(rec.Items[i-1].Score, rec.Items[i].Score)
			}
		})
	}
}

func TestRecommendTiesKeepDatasetOrder(t *testing.T) {
	rq := require.New(t)

	dataset := entity.NewDataset([]entity.Restaurant{
		restaurant("first", "Pune", "Cafe", 4.0, 10, 100),
		restaurant("best", "Pune", "Cafe", 5.0, 10, 100),
		restaurant("second", "Pune", "Cafe", 4.0, 10, 100),
		restaurant("third", "Pune", "Cafe", 4.0, 10, 100),
	})

	rec := recommend.Recommend(dataset, value.RecommendationQuery{City: "Pune", Category: "Cafe", MaxDistance: 100})

	rq.Equal([]string{"best", "first", "second", "third"}, itemNames(rec))
}

func TestRecommendNormalizesWithinSelection(t *testing.T) {
	rq := require.New(t)

	// The same restaurant scores differently depending on which rows share
	// its selection.
	dataset := entity.NewDataset([]entity.Restaurant{
		restaurant("target", "Pune", "Cafe", 4.0, 50, 100),
		restaurant("popular", "Pune", "Cafe", 4.0, 200, 900),
		restaurant("elsewhere", "Delhi", "Cafe", 4.0, 10000, 100),
	})

	near := recommend.Recommend(dataset, value.RecommendationQuery{City: "Pune", Category: "Cafe", MaxDistance: 500})
	wide := recommend.Recommend(dataset, value.RecommendationQuery{City: "Pune", Category: "Cafe", MaxDistance: 1000})

	rq.Equal("target", near.Items[0].Name)
	rq.InDelta(0.3, near.Items[0].ReviewTerm, 1e-12)

	rq.Equal("target", wide.Items[1].Name)
	rq.InDelta(50.0/200.0*0.3, wide.Items[1].ReviewTerm, 1e-12)
}

func TestRecommendDoesNotMutateDataset(t *testing.T) {
	rq := require.New(t)

	dataset := entity.NewDataset([]entity.Restaurant{
		restaurant("a", "Pune", "Cafe", 4.0, 5, 100),
		restaurant("b", "Pune", "Cafe", 4.5, 10, 100),
	})
	before := dataset.Rows()

	rec := recommend.Recommend(dataset, value.RecommendationQuery{City: "Pune", Category: "Cafe", MaxDistance: 100})
	rec.Items[0].Name = "mutated"

	rq.Equal(before, dataset.Rows())
}

func itemNames(rec entity.Recommendation) []string {
	out := make([]string, 0, len(rec.Items))
	for _, item := range rec.Items {
		out = append(out, item.Name)
	}

	return out
}
