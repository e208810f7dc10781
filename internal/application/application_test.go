package application_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/internal/application"
	"restaurant_analytics/internal/config"
	"restaurant_analytics/internal/domain/entity"
	service "restaurant_analytics/internal/domain/service/analytics"
	"restaurant_analytics/pkg/rest"
	"restaurant_analytics/pkg/tests"
)

func TestRouter(t *testing.T) {
	rq := require.New(t)

	analytics := service.NewAnalyticsService(entity.NewDataset([]entity.Restaurant{
		{Name: "A", City: "Pune", Category: "Cafe", Rating: 4.5, ReviewCount: 120, DistanceMeters: 500},
	}))

	httpServer := httptest.NewServer(application.NewRouter(config.HTTP{LogFieldMaxLen: 64}, analytics))
	t.Cleanup(httpServer.Close)

	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	var dashboard rest.Dashboard

	resp, err := client.PostJSON(context.Background(), "/v1/dashboard", http.Header{
		"X-Trace-Id": []string{"router-test"},
	}, `{}`, &dashboard, nil)
	rq.NoError(err)

	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("router-test", resp.Header.Get("X-Trace-Id"))
	rq.Equal(1, dashboard.Summary.Count)

	var errResp rest.Error

	resp, err = client.PostJSON(context.Background(), "/v1/recommendations", http.Header{
		"X-Trace-Id": []string{"router-test-2"},
	}, `{}`, nil, &errResp)
	rq.NoError(err)

	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("router-test-2", errResp.SupportID)

	resp, body, err := client.GetRaw(context.Background(), "/unknown", nil)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.True(strings.HasPrefix(string(body), "404"))
}

func TestRunUnknownSource(t *testing.T) {
	rq := require.New(t)

	err := application.Run(context.Background(), config.Config{
		Dataset: config.Dataset{Source: "ftp"},
	})

	rq.ErrorContains(err, `unknown dataset source "ftp"`)
}
