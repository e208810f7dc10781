package server

import (
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/service/filter"
	"restaurant_analytics/internal/domain/value"
	"restaurant_analytics/pkg/lox"
	"restaurant_analytics/pkg/rest"
)

// newDomainFilterSelection fills what the request leaves out from defaults.
func newDomainFilterSelection(request rest.FilterSelection, defaults value.FilterSelection) value.FilterSelection {
	selection := defaults

	if request.Cities != nil {
		selection.Cities = value.NewSet(*request.Cities...)
	}

	if request.Categories != nil {
		selection.Categories = value.NewSet(*request.Categories...)
	}

	if request.MinRating != nil {
		selection.MinRating = *request.MinRating
	}

	if request.MinReviews != nil {
		selection.MinReviews = *request.MinReviews
	}

	return selection
}

func newDomainRecommendationQuery(request rest.RecommendationQuery) value.RecommendationQuery {
	query := value.RecommendationQuery{
		City:        request.City,
		Category:    request.Category,
		MaxDistance: value.DefaultMaxDistance,
	}

	if request.MaxDistance != nil {
		query.MaxDistance = *request.MaxDistance
	}

	if request.K != nil {
		query.K = *request.K
	}

	return query
}

func newRESTRange(r entity.RangeControl) rest.Range {
	return rest.Range{
		Min:     r.Min,
		Max:     r.Max,
		Default: r.Default,
	}
}

func newRESTControls(controls entity.Controls) rest.Controls {
	return rest.Controls{
		Cities:            controls.Cities,
		Categories:        controls.Categories,
		MinRating:         newRESTRange(controls.MinRating),
		MinReviews:        newRESTRange(controls.MinReviews),
		RecommendCity:     controls.RecommendCity,
		RecommendCategory: controls.RecommendCategory,
		MaxDistance:       newRESTRange(controls.MaxDistance),
	}
}

func newRESTRestaurant(r entity.Restaurant) rest.Restaurant {
	return rest.Restaurant{
		City:           r.City,
		Name:           r.Name,
		Category:       r.Category,
		Rating:         r.Rating,
		Reviews:        r.ReviewCount,
		DistanceMeters: r.DistanceMeters,
	}
}

func newRESTDashboard(dashboard entity.Dashboard) rest.Dashboard {
	var center *rest.LatLng
	if c := dashboard.Map.Center; c != nil {
		center = &rest.LatLng{Lat: c.Latitude, Lng: c.Longitude}
	}

	return rest.Dashboard{
		Summary: rest.Summary{
			Count:           dashboard.Summary.Count,
			AverageRating:   dashboard.Summary.AverageRating,
			TotalReviews:    dashboard.Summary.TotalReviews,
			AverageDistance: dashboard.Summary.AverageDistance,
		},
		CategoryCounts: lox.Map(dashboard.CategoryCounts, func(c entity.CategoryCount) rest.CategoryCount {
			return rest.CategoryCount{Category: c.Category, Count: c.Count}
		}),
		RatingByCity: lox.Map(dashboard.RatingByCity, func(c entity.CityRating) rest.CityRating {
			return rest.CityRating{City: c.City, AverageRating: c.AverageRating}
		}),
		ReviewHistogram: lox.Map(dashboard.ReviewHistogram, func(b entity.HistogramBin) rest.HistogramBin {
			return rest.HistogramBin{Lower: b.Lower, Upper: b.Upper, Count: b.Count}
		}),
		Map: rest.Map{
			Center: center,
			Zoom:   dashboard.Map.Zoom,
			Markers: lox.Map(dashboard.Map.Markers, func(m entity.Marker) rest.Marker {
				return rest.Marker{
					Lat:    m.Latitude,
					Lng:    m.Longitude,
					Name:   m.Name,
					Rating: m.Rating,
					Label:  m.Label,
				}
			}),
		},
		Restaurants: lox.Map(dashboard.Restaurants, newRESTRestaurant),
	}
}

func newRESTRecommendations(rec entity.Recommendation) rest.Recommendations {
	response := rest.Recommendations{
		NoMatches: rec.NoMatches,
		Items: lox.Map(rec.Items, func(item entity.ScoredRestaurant) rest.ScoredRestaurant {
			return rest.ScoredRestaurant{
				Restaurant: newRESTRestaurant(item.Restaurant),
				Latitude:   item.Latitude,
				Longitude:  item.Longitude,
				Score:      item.Score,
			}
		}),
	}

	if rec.NoMatches {
		response.Message = NoMatchesMessage
	}

	return response
}

func newGeoJSONFeature(r entity.Restaurant) rest.Feature {
	return rest.Feature{
		Type: "Feature",
		Geometry: rest.Point{
			Type:        "Point",
			Coordinates: [2]float64{r.Longitude, r.Latitude},
		},
		Properties: rest.FeatureProperties{
			Name:     r.Name,
			City:     r.City,
			Category: r.Category,
			Rating:   r.Rating,
			Reviews:  r.ReviewCount,
			Label:    filter.MarkerLabel(r),
		},
	}
}

func newGeoJSONCollection(view []entity.Restaurant) rest.FeatureCollection {
	return rest.FeatureCollection{
		Type:     "FeatureCollection",
		Features: lox.Map(view, newGeoJSONFeature),
	}
}
