package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant_analytics/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/controls", handler(s.getV1Controls))

		r.Route("/dashboard", func(r chi.Router) {
			r.Post("/", handler(s.postV1Dashboard))
			r.Get("/export.csv", handler(s.getV1DashboardExport))
			r.Get("/map.geojson", handler(s.getV1DashboardMap))
		})

		r.Post("/recommendations", handler(s.postV1Recommendations))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
