package csvtable_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/internal/domain"
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/infrastructure/csvtable"
	"restaurant_analytics/pkg/errcodes"
)

const validTable = `Name,City,Category,Google_Rating,Reviews,Distance (meters),Latitude,Longitude,Phone
Blue Door,Pune,Cafe,4.5,120,500,18.52,73.85,123
"Spice, Inc",Delhi,Diner,3.9,8.0,1500.5,28.61,77.2,
`

func TestDecode(t *testing.T) {
	rq := require.New(t)

	rows, err := csvtable.Decode(strings.NewReader(validTable), csvtable.DatasetColumns)
	rq.NoError(err)

	rq.Equal([]entity.Restaurant{
		{
			Name:           "Blue Door",
			City:           "Pune",
			Category:       "Cafe",
			Rating:         4.5,
			ReviewCount:    120,
			DistanceMeters: 500,
			Latitude:       18.52,
			Longitude:      73.85,
		},
		{
			Name:           "Spice, Inc",
			City:           "Delhi",
			Category:       "Diner",
			Rating:         3.9,
			ReviewCount:    8,
			DistanceMeters: 1500.5,
			Latitude:       28.61,
			Longitude:      77.2,
		},
	}, rows)
}

func TestDecodeHeaderOnly(t *testing.T) {
	rq := require.New(t)

	rows, err := csvtable.Decode(
		strings.NewReader(strings.Join(csvtable.DatasetColumns, ",")+"\n"),
		csvtable.DatasetColumns,
	)

	rq.NoError(err)
	rq.NotNil(rows)
	rq.Empty(rows)
}

func TestDecodeErrors(t *testing.T) {
	header := strings.Join(csvtable.DatasetColumns, ",")

	testCases := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "Empty input",
			input:    "",
			contains: []string{"missing header row"},
		},
		{
			name:     "Missing column",
			input:    "City,Name,Category,Google_Rating,Reviews,Latitude,Longitude\n",
			contains: []string{`missing column "Distance (meters)"`},
		},
		{
			name:     "Rating is not a number",
			input:    header + "\nPune,A,Cafe,great,10,100,1,1\n",
			contains: []string{"line 2", `column "Google_Rating"`},
		},
		{
			name:     "Negative reviews",
			input:    header + "\nPune,A,Cafe,4,10,100,1,1\nPune,B,Cafe,4,-1,100,1,1\n",
			contains: []string{"line 3", `column "Reviews"`, "negative"},
		},
		{
			name:     "Fractional reviews",
			input:    header + "\nPune,A,Cafe,4,10.5,100,1,1\n",
			contains: []string{`column "Reviews"`, "fractional"},
		},
		{
			name:     "Negative distance",
			input:    header + "\nPune,A,Cafe,4,10,-5,1,1\n",
			contains: []string{`column "Distance (meters)"`, "negative"},
		},
		{
			name:     "Empty cell",
			input:    header + "\nPune,A,Cafe,4,10,100,,1\n",
			contains: []string{`column "Latitude"`},
		},
		{
			name:     "Not a finite number",
			input:    header + "\nPune,A,Cafe,NaN,10,100,1,1\n",
			contains: []string{`column "Google_Rating"`, "finite"},
		},
		{
			name:     "Ragged record",
			input:    header + "\nPune,A,Cafe\n",
			contains: []string{"read record"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rows, err := csvtable.Decode(strings.NewReader(tc.input), csvtable.DatasetColumns)

			rq.Nil(rows)
			rq.Error(err)
			rq.True(domain.HasCode(err, errcodes.DatasetMalformed))

			for _, s := range tc.contains {
				rq.Contains(err.Error(), s)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	err := csvtable.Encode(&buf, []entity.Restaurant{
		{Name: "Blue Door", City: "Pune", Category: "Cafe", Rating: 4.5, ReviewCount: 120, DistanceMeters: 500, Latitude: 18.5},
		{Name: "Spice, Inc", City: "Delhi", Category: "Diner", Rating: 3.9, ReviewCount: 8, DistanceMeters: 1500.5},
	}, csvtable.ExportColumns)
	rq.NoError(err)

	rq.Equal(
		"City,Name,Category,Google_Rating,Reviews,Distance (meters)\n"+
			"Pune,Blue Door,Cafe,4.5,120,500\n"+
			"Delhi,\"Spice, Inc\",Diner,3.9,8,1500.5\n",
		buf.String(),
	)
}

func TestEncodeEmptyView(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	rq.NoError(csvtable.Encode(&buf, nil, csvtable.ExportColumns))
	rq.Equal("City,Name,Category,Google_Rating,Reviews,Distance (meters)\n", buf.String())
}

func TestEncodeDecodeExportColumns(t *testing.T) {
	rq := require.New(t)

	rows := []entity.Restaurant{
		{Name: "A", City: "Pune", Category: "Cafe", Rating: 4.25, ReviewCount: 3, DistanceMeters: 0.1},
		{Name: `Quote "Q"`, City: "Goa", Category: "Bar", Rating: 0, ReviewCount: 0, DistanceMeters: 1e6},
	}

	var buf bytes.Buffer

	rq.NoError(csvtable.Encode(&buf, rows, csvtable.ExportColumns))

	decoded, err := csvtable.Decode(&buf, csvtable.ExportColumns)
	rq.NoError(err)
	rq.Equal(rows, decoded)
}
