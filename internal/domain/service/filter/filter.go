// Package filter implements the dashboard filter engine and the aggregates
// computed over a filtered view. Every function is pure: inputs are never
// modified and results never alias the dataset.
package filter

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/value"
)

const (
	HistogramBins = 30
	MapZoom       = 5
)

// Apply keeps the rows that satisfy every predicate of the selection,
// preserving dataset order.
func Apply(dataset entity.Dataset, selection value.FilterSelection) []entity.Restaurant {
	view := make([]entity.Restaurant, 0)

	for _, r := range dataset.All() {
		if matches(r, selection) {
			view = append(view, r)
		}
	}

	return view
}

func matches(r entity.Restaurant, selection value.FilterSelection) bool {
	return selection.Cities.Contains(r.City) &&
		selection.Categories.Contains(r.Category) &&
		r.Rating >= selection.MinRating &&
		r.ReviewCount >= selection.MinReviews
}

// Build computes every dashboard block for an already filtered view.
func Build(view []entity.Restaurant) entity.Dashboard {
	return entity.Dashboard{
		Summary:         Summarize(view),
		CategoryCounts:  CategoryCounts(view),
		RatingByCity:    AverageRatingByCity(view),
		ReviewHistogram: ReviewHistogram(view, HistogramBins),
		Map:             Map(view),
		Restaurants:     slices.Clone(view),
	}
}

func Summarize(view []entity.Restaurant) entity.Summary {
	summary := entity.Summary{
		Count: len(view),
	}

	if len(view) == 0 {
		return summary
	}

	var ratingSum, distanceSum float64

	for _, r := range view {
		ratingSum += r.Rating
		distanceSum += r.DistanceMeters
		summary.TotalReviews += r.ReviewCount
	}

	avgRating := ratingSum / float64(len(view))
	avgDistance := distanceSum / float64(len(view))

	summary.AverageRating = &avgRating
	summary.AverageDistance = &avgDistance

	return summary
}

// CategoryCounts orders categories by count descending; equal counts keep the
// order in which the categories first appear in the view.
func CategoryCounts(view []entity.Restaurant) []entity.CategoryCount {
	counts := make([]entity.CategoryCount, 0)
	index := make(map[string]int)

	for _, r := range view {
		i, ok := index[r.Category]
		if !ok {
			i = len(counts)
			index[r.Category] = i
			counts = append(counts, entity.CategoryCount{Category: r.Category})
		}

		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b entity.CategoryCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return counts
}

// AverageRatingByCity returns the mean rating per city ordered by city name.
func AverageRatingByCity(view []entity.Restaurant) []entity.CityRating {
	type acc struct {
		sum   float64
		count int
	}

	byCity := make(map[string]*acc)

	for _, r := range view {
		a, ok := byCity[r.City]
		if !ok {
			a = &acc{}
			byCity[r.City] = a
		}

		a.sum += r.Rating
		a.count++
	}

	ratings := make([]entity.CityRating, 0, len(byCity))
	for city, a := range byCity {
		ratings = append(ratings, entity.CityRating{
			City:          city,
			AverageRating: a.sum / float64(a.count),
		})
	}

	slices.SortFunc(ratings, func(a, b entity.CityRating) int {
		return cmp.Compare(a.City, b.City)
	})

	return ratings
}

// ReviewHistogram splits [min, max] of the view's review counts into equal
// width bins. A view whose counts are all equal produces a single bin.
func ReviewHistogram(view []entity.Restaurant, bins int) []entity.HistogramBin {
	if len(view) == 0 || bins <= 0 {
		return []entity.HistogramBin{}
	}

	lo, hi := view[0].ReviewCount, view[0].ReviewCount
	for _, r := range view[1:] {
		lo = min(lo, r.ReviewCount)
		hi = max(hi, r.ReviewCount)
	}

	if lo == hi {
		return []entity.HistogramBin{{
			Lower: float64(lo),
			Upper: float64(hi),
			Count: len(view),
		}}
	}

	width := float64(hi-lo) / float64(bins)
	histogram := make([]entity.HistogramBin, bins)

	for i := range histogram {
		histogram[i].Lower = float64(lo) + float64(i)*width
		histogram[i].Upper = float64(lo) + float64(i+1)*width
	}

	histogram[bins-1].Upper = float64(hi)

	for _, r := range view {
		i := (r.ReviewCount - lo) * bins / (hi - lo)
		if i >= bins {
			i = bins - 1
		}

		histogram[i].Count++
	}

	return histogram
}

// Map places one marker per row and centers the map on their mean position.
func Map(view []entity.Restaurant) entity.MapView {
	m := entity.MapView{
		Zoom:    MapZoom,
		Markers: make([]entity.Marker, 0, len(view)),
	}

	if len(view) == 0 {
		return m
	}

	var latSum, lngSum float64

	for _, r := range view {
		latSum += r.Latitude
		lngSum += r.Longitude

		m.Markers = append(m.Markers, entity.Marker{
			LatLng: entity.LatLng{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
			},
			Name:   r.Name,
			Rating: r.Rating,
			Label:  MarkerLabel(r),
		})
	}

	m.Center = &entity.LatLng{
		Latitude:  latSum / float64(len(view)),
		Longitude: lngSum / float64(len(view)),
	}

	return m
}

func MarkerLabel(r entity.Restaurant) string {
	return fmt.Sprintf("%s (%s)", r.Name, strconv.FormatFloat(r.Rating, 'f', -1, 64))
}
