package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/value"
	"restaurant_analytics/internal/server"
)

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected value.RecommendationQuery
		wantErr  bool
	}{
		{
			name:     "Defaults",
			args:     []string{"Pune", "Cafe"},
			expected: value.RecommendationQuery{City: "Pune", Category: "Cafe", MaxDistance: 1000, K: 5},
		},
		{
			name:     "All arguments",
			args:     []string{"Pune", "Cafe", "2500.5", "3"},
			expected: value.RecommendationQuery{City: "Pune", Category: "Cafe", MaxDistance: 2500.5, K: 3},
		},
		{name: "Too few", args: []string{"Pune"}, wantErr: true},
		{name: "Too many", args: []string{"Pune", "Cafe", "1", "2", "3"}, wantErr: true},
		{name: "Bad distance", args: []string{"Pune", "Cafe", "far"}, wantErr: true},
		{name: "Negative distance", args: []string{"Pune", "Cafe", "-1"}, wantErr: true},
		{name: "Zero k", args: []string{"Pune", "Cafe", "100", "0"}, wantErr: true},
		{name: "k above maximum", args: []string{"Pune", "Cafe", "100", "51"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			query, err := parseArgs(tc.args)
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.expected, query)
		})
	}
}

func TestPrint(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	rq.NoError(printRecommendation(&buf, entity.Recommendation{Items: []entity.ScoredRestaurant{}, NoMatches: true}))
	rq.Equal(server.NoMatchesMessage+"\n", buf.String())

	buf.Reset()

	rq.NoError(printRecommendation(&buf, entity.Recommendation{Items: []entity.ScoredRestaurant{
		{
			Restaurant: entity.Restaurant{Name: "Blue Door", Rating: 4.5, ReviewCount: 120, DistanceMeters: 500},
			Score:      3.45,
		},
	}}))
	rq.Contains(buf.String(), "Blue Door")
	rq.Contains(buf.String(), "3.450")
}
