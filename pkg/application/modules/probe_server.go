package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"restaurant_analytics/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	Dataset       string
	ListenAddress string
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group, checks ...probe.ReadinessCheck) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
			Dataset: p.Dataset,
		},
		checks...,
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
