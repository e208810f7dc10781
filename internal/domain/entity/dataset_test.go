package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/internal/domain/entity"
)

func TestNewDataset(t *testing.T) {
	rq := require.New(t)

	rows := []entity.Restaurant{
		{Name: "A", City: "Pune", Category: "Cafe", ReviewCount: 12, DistanceMeters: 300},
		{Name: "B", City: "Delhi", Category: "Diner", ReviewCount: 90, DistanceMeters: 150},
		{Name: "C", City: "Pune", Category: "Bakery", ReviewCount: 4, DistanceMeters: 4200.5},
	}

	dataset := entity.NewDataset(rows)

	rq.Equal(3, dataset.Len())
	rq.Equal([]string{"Pune", "Delhi"}, dataset.Cities())
	rq.Equal([]string{"Cafe", "Diner", "Bakery"}, dataset.Categories())
	rq.Equal(90, dataset.MaxReviewCount())
	rq.InDelta(4200.5, dataset.MaxDistance(), 1e-9)
	rq.NotEmpty(dataset.Version())

	// The dataset owns its rows.
	rows[0].Name = "mutated"
	rq.Equal("A", dataset.Rows()[0].Name)

	copied := dataset.Rows()
	copied[1].Name = "mutated"
	rq.Equal("B", dataset.Rows()[1].Name)

	cities := dataset.Cities()
	cities[0] = "mutated"
	rq.Equal("Pune", dataset.Cities()[0])
}

func TestDatasetVersion(t *testing.T) {
	rq := require.New(t)

	a := entity.NewDataset([]entity.Restaurant{{Name: "A", Rating: 4}, {Name: "B", Rating: 3}})
	b := entity.NewDataset([]entity.Restaurant{{Name: "A", Rating: 4}, {Name: "B", Rating: 3}})
	c := entity.NewDataset([]entity.Restaurant{{Name: "B", Rating: 3}, {Name: "A", Rating: 4}})
	d := entity.NewDataset([]entity.Restaurant{{Name: "A", Rating: 4}, {Name: "B", Rating: 3.1}})

	rq.Equal(a.Version(), b.Version())
	rq.NotEqual(a.Version(), c.Version())
	rq.NotEqual(a.Version(), d.Version())
}

func TestDatasetAll(t *testing.T) {
	rq := require.New(t)

	dataset := entity.NewDataset([]entity.Restaurant{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	var seen []string

	for i, r := range dataset.All() {
		seen = append(seen, r.Name)

		if i == 1 {
			break
		}
	}

	rq.Equal([]string{"A", "B"}, seen)

	var empty entity.Dataset
	rq.Zero(empty.Len())
	rq.Empty(empty.Cities())
}
