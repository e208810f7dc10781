package persistence

import (
	"restaurant_analytics/internal/domain/entity"
)

// restaurantSchema maps a row of the restaurants table.
type restaurantSchema struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	City           string  `db:"city"`
	Category       string  `db:"category"`
	GoogleRating   float64 `db:"google_rating"`
	Reviews        int     `db:"reviews"`
	DistanceMeters float64 `db:"distance_meters"`
	Latitude       float64 `db:"latitude"`
	Longitude      float64 `db:"longitude"`
}

func fromRestaurant(r entity.Restaurant) restaurantSchema {
	return restaurantSchema{
		Name:           r.Name,
		City:           r.City,
		Category:       r.Category,
		GoogleRating:   r.Rating,
		Reviews:        r.ReviewCount,
		DistanceMeters: r.DistanceMeters,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}

func (s *restaurantSchema) toDomain() entity.Restaurant {
	return entity.Restaurant{
		Name:           s.Name,
		City:           s.City,
		Category:       s.Category,
		Rating:         s.GoogleRating,
		ReviewCount:    s.Reviews,
		DistanceMeters: s.DistanceMeters,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
	}
}
