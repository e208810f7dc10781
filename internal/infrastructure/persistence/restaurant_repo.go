package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"restaurant_analytics/internal/domain"
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/pkg/errcodes"
)

type RestaurantRepository struct {
	db *sqlx.DB
}

func NewRestaurantRepository(db *sqlx.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// withTx runs fn in a transaction.
func (r *RestaurantRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// List returns every restaurant in insertion order.
func (r *RestaurantRepository) List(ctx context.Context) ([]entity.Restaurant, error) {
	query := `
		SELECT id, name, city, category, google_rating, reviews,
		       distance_meters, latitude, longitude
		FROM restaurants
		ORDER BY id ASC`

	var schemas []restaurantSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "failed to list restaurants")
	}

	result := make([]entity.Restaurant, 0, len(schemas))
	for _, s := range schemas {
		result = append(result, s.toDomain())
	}

	return result, nil
}

// ReplaceAll atomically swaps the table contents for rows, keeping their
// order.
func (r *RestaurantRepository) ReplaceAll(ctx context.Context, rows []entity.Restaurant) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM restaurants`); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to clear restaurants")
		}

		query := `
			INSERT INTO restaurants (
				name, city, category, google_rating, reviews,
				distance_meters, latitude, longitude
			) VALUES (
				:name, :city, :category, :google_rating, :reviews,
				:distance_meters, :latitude, :longitude
			)`

		for i, row := range rows {
			if _, err := tx.NamedExecContext(ctx, query, fromRestaurant(row)); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed to insert restaurant at index %d", i))
			}
		}

		return nil
	})
}
