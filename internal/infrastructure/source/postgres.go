package source

import (
	"context"
	"fmt"

	"restaurant_analytics/internal/domain/entity"
)

type restaurantLister interface {
	List(ctx context.Context) ([]entity.Restaurant, error)
}

// Postgres reads the restaurants table through a repository.
type Postgres struct {
	repo restaurantLister
}

func NewPostgres(repo restaurantLister) Postgres {
	return Postgres{repo: repo}
}

func (p Postgres) Load(ctx context.Context) ([]entity.Restaurant, error) {
	rows, err := p.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return rows, nil
}

func (Postgres) String() string {
	return "postgres:restaurants"
}
