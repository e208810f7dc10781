package server

import (
	"context"
	"fmt"
	"net/http"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/value"
	"restaurant_analytics/pkg/httpx/reply"
	"restaurant_analytics/pkg/httpx/req"
	"restaurant_analytics/pkg/rest"
)

const NoMatchesMessage = "No restaurants found matching your preferences."

type recommendService interface {
	Recommend(ctx context.Context, query value.RecommendationQuery) entity.Recommendation
}

type RecommendServer struct {
	recommendService recommendService
}

func NewRecommendServer(recommendService recommendService) RecommendServer {
	return RecommendServer{
		recommendService: recommendService,
	}
}

func (s RecommendServer) postV1Recommendations(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RecommendationQuery

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	rec := s.recommendService.Recommend(ctx, newDomainRecommendationQuery(request))

	reply.JSON(ctx, w, http.StatusOK, newRESTRecommendations(rec))

	return nil
}
