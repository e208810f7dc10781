// Package csvtable reads and writes restaurant tables as comma-separated
// values. Columns are matched by header name, so column order and extra
// columns in the input do not matter.
package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"restaurant_analytics/internal/domain"
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/pkg/errcodes"
)

const (
	ColumnCity      = "City"
	ColumnName      = "Name"
	ColumnCategory  = "Category"
	ColumnRating    = "Google_Rating"
	ColumnReviews   = "Reviews"
	ColumnDistance  = "Distance (meters)"
	ColumnLatitude  = "Latitude"
	ColumnLongitude = "Longitude"
)

//nolint:gochecknoglobals
var (
	// DatasetColumns are required in the source dataset.
	DatasetColumns = []string{
		ColumnCity, ColumnName, ColumnCategory, ColumnRating,
		ColumnReviews, ColumnDistance, ColumnLatitude, ColumnLongitude,
	}

	// ExportColumns is the displayed subset written by the CSV export.
	ExportColumns = []string{
		ColumnCity, ColumnName, ColumnCategory, ColumnRating,
		ColumnReviews, ColumnDistance,
	}
)

type setter func(r *entity.Restaurant, raw string) error

//nolint:gochecknoglobals
var setters = map[string]setter{
	ColumnCity: func(r *entity.Restaurant, raw string) error {
		r.City = raw
		return nil
	},
	ColumnName: func(r *entity.Restaurant, raw string) error {
		r.Name = raw
		return nil
	},
	ColumnCategory: func(r *entity.Restaurant, raw string) error {
		r.Category = raw
		return nil
	},
	ColumnRating: func(r *entity.Restaurant, raw string) (err error) {
		r.Rating, err = parseFloat(raw)
		return err
	},
	ColumnReviews: func(r *entity.Restaurant, raw string) (err error) {
		r.ReviewCount, err = parseCount(raw)
		return err
	},
	ColumnDistance: func(r *entity.Restaurant, raw string) error {
		v, err := parseFloat(raw)
		if err != nil {
			return err
		}

		if v < 0 {
			return fmt.Errorf("negative distance %q", raw)
		}

		r.DistanceMeters = v

		return nil
	},
	ColumnLatitude: func(r *entity.Restaurant, raw string) (err error) {
		r.Latitude, err = parseFloat(raw)
		return err
	},
	ColumnLongitude: func(r *entity.Restaurant, raw string) (err error) {
		r.Longitude, err = parseFloat(raw)
		return err
	},
}

// Decode reads every row of r. Each name in columns must be present in the
// header; fields of columns not listed keep their zero value.
func Decode(r io.Reader, columns []string) ([]entity.Restaurant, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewError(errcodes.DatasetMalformed, "missing header row")
	}

	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetMalformed, "read header")
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	type binding struct {
		column string
		index  int
		set    setter
	}

	bindings := make([]binding, 0, len(columns))

	for _, column := range columns {
		set, ok := setters[column]
		if !ok {
			return nil, domain.NewError(errcodes.DatasetMalformed, fmt.Sprintf("unknown column %q", column))
		}

		index, ok := positions[column]
		if !ok {
			return nil, domain.NewError(errcodes.DatasetMalformed, fmt.Sprintf("missing column %q", column))
		}

		bindings = append(bindings, binding{column: column, index: index, set: set})
	}

	rows := make([]entity.Restaurant, 0)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, domain.WrapError(err, errcodes.DatasetMalformed, "read record")
		}

		line, _ := reader.FieldPos(0)

		var row entity.Restaurant

		for _, b := range bindings {
			if err := b.set(&row, strings.TrimSpace(record[b.index])); err != nil {
				return nil, domain.WrapError(
					err,
					errcodes.DatasetMalformed,
					fmt.Sprintf("line %d, column %q", line, b.column),
				)
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Encode writes a header row and one record per restaurant, without an index
// column.
func Encode(w io.Writer, rows []entity.Restaurant, columns []string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("writer.Write: %w", err)
	}

	record := make([]string, len(columns))

	for _, r := range rows {
		for i, column := range columns {
			v, err := format(r, column)
			if err != nil {
				return err
			}

			record[i] = v
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writer.Write: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Flush: %w", err)
	}

	return nil
}

func format(r entity.Restaurant, column string) (string, error) {
	switch column {
	case ColumnCity:
		return r.City, nil
	case ColumnName:
		return r.Name, nil
	case ColumnCategory:
		return r.Category, nil
	case ColumnRating:
		return formatFloat(r.Rating), nil
	case ColumnReviews:
		return strconv.Itoa(r.ReviewCount), nil
	case ColumnDistance:
		return formatFloat(r.DistanceMeters), nil
	case ColumnLatitude:
		return formatFloat(r.Latitude), nil
	case ColumnLongitude:
		return formatFloat(r.Longitude), nil
	default:
		return "", fmt.Errorf("unknown column %q", column)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number %q", raw)
	}

	return v, nil
}

// parseCount accepts "120" as well as integral floats such as "120.0".
func parseCount(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative count %q", raw)
		}

		return n, nil
	}

	v, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}

	if v != math.Trunc(v) {
		return 0, fmt.Errorf("fractional count %q", raw)
	}

	if v < 0 {
		return 0, fmt.Errorf("negative count %q", raw)
	}

	if v > math.MaxInt32 {
		return 0, fmt.Errorf("count out of range %q", raw)
	}

	return int(v), nil
}
