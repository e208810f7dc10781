package connectors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"restaurant_analytics/pkg/application/connectors"
)

func TestPingBeforeClient(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	pg := &connectors.Postgres{DSN: "postgres://localhost:5432/restaurants"}
	rq.Error(pg.Ping(ctx))

	rd := &connectors.Redis{Address: "localhost:6379"}
	rq.Error(rd.Ping(ctx))

	rq.NotPanics(func() {
		pg.Close(ctx)
		rd.Close(ctx)
	})
}
