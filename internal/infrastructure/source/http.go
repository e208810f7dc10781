package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"restaurant_analytics/internal/domain"
	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/infrastructure/csvtable"
	"restaurant_analytics/pkg/errcodes"
	"restaurant_analytics/pkg/httpx"
	"restaurant_analytics/pkg/logx"
)

// HTTP downloads a dataset CSV with a GET request.
type HTTP struct {
	URL    string
	client *http.Client
}

// NewHTTP logs every exchange with sensitive data masked. An empty token
// sends no Authorization header.
func NewHTTP(url, token string, timeout time.Duration, logFieldMaxLen int) HTTP {
	transport := httpx.NewAuthBearerRoundTripper(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
			httpx.WithoutResponseBody(),
		),
		httpx.StaticToken(token),
	)

	return HTTP{
		URL: url,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

func (h HTTP) Load(ctx context.Context) ([]entity.Restaurant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "failed to download dataset")
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewError(
			errcodes.DatasetUnavailable,
			fmt.Sprintf("unexpected status downloading dataset: %s", resp.Status),
		)
	}

	rows, err := csvtable.Decode(resp.Body, csvtable.DatasetColumns)
	if err != nil {
		return nil, fmt.Errorf("csvtable.Decode: %w", err)
	}

	return rows, nil
}

func (h HTTP) String() string {
	return "http:" + h.URL
}
