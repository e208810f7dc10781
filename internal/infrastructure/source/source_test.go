package source_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/internal/domain"
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/infrastructure/source"
	"restaurant_analytics/pkg/contextx"
	"restaurant_analytics/pkg/errcodes"
	"restaurant_analytics/pkg/logx"
)

const testTable = `City,Name,Category,Google_Rating,Reviews,Distance (meters),Latitude,Longitude
Pune,Blue Door,Cafe,4.5,120,500,18.52,73.85
Delhi,Spice,Diner,3.9,8,1500,28.61,77.2
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "restaurants.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFile(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	dataset, err := source.Load(ctx, source.NewFile(writeFile(t, testTable)))
	rq.NoError(err)

	rq.Equal(2, dataset.Len())
	rq.Equal([]string{"Pune", "Delhi"}, dataset.Cities())
	rq.Equal(120, dataset.MaxReviewCount())

	rq.Contains(buf.String(), `"msg":"dataset loaded"`)
	rq.Contains(buf.String(), `"`+logx.FieldDatasetRows+`":2`)
	rq.Contains(buf.String(), dataset.Version())
}

func TestFileErrors(t *testing.T) {
	testCases := []struct {
		name string
		path func(t *testing.T) string
		code string
	}{
		{
			name: "Missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			code: string(errcodes.DatasetUnavailable),
		},
		{
			name: "Malformed rating",
			path: func(t *testing.T) string {
				return writeFile(t, "City,Name,Category,Google_Rating,Reviews,Distance (meters),Latitude,Longitude\n"+
					"Pune,A,Cafe,n/a,1,1,1,1\n")
			},
			code: string(errcodes.DatasetMalformed),
		},
		{
			name: "Missing column",
			path: func(t *testing.T) string {
				return writeFile(t, "City,Name\nPune,A\n")
			},
			code: string(errcodes.DatasetMalformed),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := source.Load(context.Background(), source.NewFile(tc.path(t)))
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
		})
	}
}

func TestFileHeaderOnly(t *testing.T) {
	rq := require.New(t)

	dataset, err := source.Load(context.Background(), source.NewFile(writeFile(t,
		"City,Name,Category,Google_Rating,Reviews,Distance (meters),Latitude,Longitude\n")))
	rq.NoError(err)
	rq.Zero(dataset.Len())
	rq.Empty(dataset.Cities())
}

func TestHTTP(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("Bearer token", r.Header.Get("Authorization"))
		rq.Equal("text/csv", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(testTable))
	}))
	defer httpServer.Close()

	src := source.NewHTTP(httpServer.URL+"/restaurants.csv", "token", time.Second, 0)

	dataset, err := source.Load(context.Background(), src)
	rq.NoError(err)
	rq.Equal(2, dataset.Len())
	rq.Equal("http:"+httpServer.URL+"/restaurants.csv", src.String())
}

func TestHTTPErrors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		code    string
	}{
		{
			name: "Server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			code: string(errcodes.DatasetUnavailable),
		},
		{
			name: "Not a dataset",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("<html></html>\n"))
			},
			code: string(errcodes.DatasetMalformed),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			httpServer := httptest.NewServer(tc.handler)
			defer httpServer.Close()

			_, err := source.Load(context.Background(), source.NewHTTP(httpServer.URL, "", time.Second, 256))
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
		})
	}
}

type listerStub struct {
	rows []entity.Restaurant
	err  error
}

func (l listerStub) List(context.Context) ([]entity.Restaurant, error) {
	return l.rows, l.err
}

func TestPostgres(t *testing.T) {
	rq := require.New(t)

	rows := []entity.Restaurant{{Name: "A", City: "Pune", Category: "Cafe", ReviewCount: 3}}

	dataset, err := source.Load(context.Background(), source.NewPostgres(listerStub{rows: rows}))
	rq.NoError(err)
	rq.Equal(rows, dataset.Rows())

	listErr := errors.New("connection refused")

	_, err = source.Load(context.Background(), source.NewPostgres(listerStub{err: listErr}))
	rq.ErrorIs(err, listErr)
}
