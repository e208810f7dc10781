package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/value"
	"restaurant_analytics/internal/infrastructure/csvtable"
	"restaurant_analytics/pkg/httpx/reply"
	"restaurant_analytics/pkg/httpx/req"
	"restaurant_analytics/pkg/rest"
)

const (
	exportFilename     = "filtered_restaurants.csv"
	contentTypeCSV     = "text/csv; charset=utf-8"
	contentTypeGeoJSON = "application/geo+json"
)

type dashboardService interface {
	Controls(ctx context.Context) entity.Controls
	DefaultSelection() value.FilterSelection
	View(ctx context.Context, selection value.FilterSelection) []entity.Restaurant
	Dashboard(ctx context.Context, selection value.FilterSelection) entity.Dashboard
}

type DashboardServer struct {
	dashboardService dashboardService
}

func NewDashboardServer(dashboardService dashboardService) DashboardServer {
	return DashboardServer{
		dashboardService: dashboardService,
	}
}

func (s DashboardServer) getV1Controls(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, newRESTControls(s.dashboardService.Controls(ctx)))

	return nil
}

func (s DashboardServer) postV1Dashboard(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.FilterSelection

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	selection := newDomainFilterSelection(request, s.dashboardService.DefaultSelection())

	reply.JSON(ctx, w, http.StatusOK, newRESTDashboard(s.dashboardService.Dashboard(ctx, selection)))

	return nil
}

func (s DashboardServer) getV1DashboardExport(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	selection, err := s.selectionFromQuery(r)
	if err != nil {
		return err
	}

	view := s.dashboardService.View(ctx, selection)

	err = reply.Attachment(ctx, w, contentTypeCSV, exportFilename, func(out io.Writer) error {
		return csvtable.Encode(out, view, csvtable.ExportColumns)
	})
	if err != nil {
		return fmt.Errorf("reply.Attachment: %w", err)
	}

	return nil
}

func (s DashboardServer) getV1DashboardMap(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	selection, err := s.selectionFromQuery(r)
	if err != nil {
		return err
	}

	reply.JSONWithContentType(
		ctx, w, contentTypeGeoJSON, http.StatusOK,
		newGeoJSONCollection(s.dashboardService.View(ctx, selection)),
	)

	return nil
}

func (s DashboardServer) selectionFromQuery(r *http.Request) (value.FilterSelection, error) {
	request, err := parseFilterQuery(r.URL.Query())
	if err != nil {
		return value.FilterSelection{}, fmt.Errorf("parseFilterQuery: %w", err)
	}

	if err := req.Validate(r.Context(), &request); err != nil {
		return value.FilterSelection{}, fmt.Errorf("req.Validate: %w", err)
	}

	return newDomainFilterSelection(request, s.dashboardService.DefaultSelection()), nil
}
