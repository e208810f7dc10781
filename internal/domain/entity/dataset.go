package entity

import (
	"iter"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Dataset is the immutable in-memory table. The zero value is an empty
// dataset. All accessors return copies, so a Dataset can be shared by any
// number of concurrent requests.
type Dataset struct {
	rows        []Restaurant
	cities      []string
	categories  []string
	maxReviews  int
	maxDistance float64
	version     string
}

func NewDataset(rows []Restaurant) Dataset {
	d := Dataset{
		rows: slices.Clone(rows),
	}

	seenCities := make(map[string]struct{})
	seenCategories := make(map[string]struct{})
	digest := xxhash.New()

	for _, r := range d.rows {
		if _, ok := seenCities[r.City]; !ok {
			seenCities[r.City] = struct{}{}
			d.cities = append(d.cities, r.City)
		}

		if _, ok := seenCategories[r.Category]; !ok {
			seenCategories[r.Category] = struct{}{}
			d.categories = append(d.categories, r.Category)
		}

		d.maxReviews = max(d.maxReviews, r.ReviewCount)
		d.maxDistance = max(d.maxDistance, r.DistanceMeters)

		writeFingerprint(digest, r)
	}

	d.version = strconv.FormatUint(digest.Sum64(), 16)

	return d
}

func writeFingerprint(digest *xxhash.Digest, r Restaurant) {
	for _, field := range []string{
		r.Name,
		r.City,
		r.Category,
		strconv.FormatFloat(r.Rating, 'g', -1, 64),
		strconv.Itoa(r.ReviewCount),
		strconv.FormatFloat(r.DistanceMeters, 'g', -1, 64),
		strconv.FormatFloat(r.Latitude, 'g', -1, 64),
		strconv.FormatFloat(r.Longitude, 'g', -1, 64),
	} {
		_, _ = digest.WriteString(field)
		_, _ = digest.WriteString("\x1f")
	}

	_, _ = digest.WriteString("\x1e")
}

func (d Dataset) Len() int {
	return len(d.rows)
}

// All yields rows in their original order together with their position.
func (d Dataset) All() iter.Seq2[int, Restaurant] {
	return func(yield func(int, Restaurant) bool) {
		for i, r := range d.rows {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (d Dataset) Rows() []Restaurant {
	return slices.Clone(d.rows)
}

// Cities returns distinct cities in first-appearance order.
func (d Dataset) Cities() []string {
	return slices.Clone(d.cities)
}

// Categories returns distinct categories in first-appearance order.
func (d Dataset) Categories() []string {
	return slices.Clone(d.categories)
}

func (d Dataset) MaxReviewCount() int {
	return d.maxReviews
}

func (d Dataset) MaxDistance() float64 {
	return d.maxDistance
}

// Version is a content fingerprint; two datasets with the same rows in the
// same order share a version.
func (d Dataset) Version() string {
	return d.version
}
