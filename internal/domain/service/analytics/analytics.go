package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/service/filter"
	"restaurant_analytics/internal/domain/service/recommend"
	"restaurant_analytics/internal/domain/value"
	"restaurant_analytics/pkg/logx"
)

const (
	defaultViewTTL = 10 * time.Minute

	cacheView           = "view"
	cacheRecommendation = "recommendation"
)

type RecommendationCache interface {
	Get(ctx context.Context, datasetVersion string, query value.RecommendationQuery) (entity.Recommendation, bool, error)
	Set(ctx context.Context, datasetVersion string, query value.RecommendationQuery, rec entity.Recommendation) error
}

type Recorder interface {
	CacheHit(cache string)
	CacheMiss(cache string)
	CacheError(cache string)
	ViewComputed(rows int)
	Recommendation(noMatches bool)
}

// AnalyticsService answers dashboard and recommendation requests over one
// immutable dataset. It is safe for concurrent use.
type AnalyticsService struct {
	dataset  entity.Dataset
	views    *cache.Cache
	recCache RecommendationCache
	recorder Recorder
}

func NewAnalyticsService(dataset entity.Dataset) *AnalyticsService {
	return &AnalyticsService{
		dataset:  dataset,
		views:    cache.New(defaultViewTTL, 2*defaultViewTTL),
		recorder: nopRecorder{},
	}
}

func (s *AnalyticsService) WithViewTTL(ttl time.Duration) *AnalyticsService {
	s.views = cache.New(ttl, 2*ttl)
	return s
}

func (s *AnalyticsService) WithRecommendationCache(recCache RecommendationCache) *AnalyticsService {
	s.recCache = recCache
	return s
}

func (s *AnalyticsService) WithRecorder(recorder Recorder) *AnalyticsService {
	s.recorder = recorder
	return s
}

func (s *AnalyticsService) Dataset() entity.Dataset {
	return s.dataset
}

// Controls returns the input domains and defaults for this dataset.
func (s *AnalyticsService) Controls(context.Context) entity.Controls {
	maxReviews := float64(s.dataset.MaxReviewCount())
	maxDistance := max(s.dataset.MaxDistance(), value.MaxDistanceFloor)

	controls := entity.Controls{
		Cities:     s.dataset.Cities(),
		Categories: s.dataset.Categories(),
		MinRating: entity.RangeControl{
			Min:     value.RatingFloor,
			Max:     value.RatingCeiling,
			Default: value.DefaultMinRating,
		},
		MinReviews: entity.RangeControl{
			Min:     0,
			Max:     maxReviews,
			Default: min(value.DefaultMinReviews, maxReviews),
		},
		MaxDistance: entity.RangeControl{
			Min:     value.MaxDistanceFloor,
			Max:     maxDistance,
			Default: min(value.DefaultMaxDistance, maxDistance),
		},
	}

	if len(controls.Cities) > 0 {
		controls.RecommendCity = controls.Cities[0]
	}

	if len(controls.Categories) > 0 {
		controls.RecommendCategory = controls.Categories[0]
	}

	return controls
}

// DefaultSelection selects every city and category with the default
// thresholds.
func (s *AnalyticsService) DefaultSelection() value.FilterSelection {
	return value.FilterSelection{
		Cities:     value.NewSet(s.dataset.Cities()...),
		Categories: value.NewSet(s.dataset.Categories()...),
		MinRating:  value.DefaultMinRating,
		MinReviews: value.DefaultMinReviews,
	}
}

// View returns the filtered rows. The caller owns the returned slice.
func (s *AnalyticsService) View(ctx context.Context, selection value.FilterSelection) []entity.Restaurant {
	return slices.Clone(s.view(ctx, selection))
}

func (s *AnalyticsService) Dashboard(ctx context.Context, selection value.FilterSelection) entity.Dashboard {
	return filter.Build(s.view(ctx, selection))
}

// view memoizes filter results per dataset version and selection. The
// returned slice is shared and must not be modified.
func (s *AnalyticsService) view(ctx context.Context, selection value.FilterSelection) []entity.Restaurant {
	key := s.dataset.Version() + "|" + selection.Key()

	if cached, ok := s.views.Get(key); ok {
		s.recorder.CacheHit(cacheView)
		return cached.([]entity.Restaurant) //nolint:forcetypeassert
	}

	s.recorder.CacheMiss(cacheView)

	view := filter.Apply(s.dataset, selection)
	s.views.SetDefault(key, view)
	s.recorder.ViewComputed(len(view))

	logger(ctx).Debug(
		"filtered view computed",
		slog.String(logx.FieldCacheKey, key),
		slog.Int(logx.FieldViewRows, len(view)),
	)

	return view
}

// Recommend ranks restaurants for the query. Cache failures are logged and
// the result is computed directly.
func (s *AnalyticsService) Recommend(ctx context.Context, query value.RecommendationQuery) entity.Recommendation {
	version := s.dataset.Version()

	if s.recCache != nil {
		rec, ok, err := s.recCache.Get(ctx, version, query)

		switch {
		case err != nil:
			s.recorder.CacheError(cacheRecommendation)
			logger(ctx).Warn("recCache.Get", logx.Error(err))
		case ok:
			s.recorder.CacheHit(cacheRecommendation)
			s.recorder.Recommendation(rec.NoMatches)

			return rec
		default:
			s.recorder.CacheMiss(cacheRecommendation)
		}
	}

	rec := recommend.Recommend(s.dataset, query)
	s.recorder.Recommendation(rec.NoMatches)

	if s.recCache != nil {
		if err := s.recCache.Set(ctx, version, query, rec); err != nil {
			s.recorder.CacheError(cacheRecommendation)
			logger(ctx).Warn("recCache.Set", logx.Error(fmt.Errorf("service.Recommend: %w", err)))
		}
	}

	return rec
}

type nopRecorder struct{}

func (nopRecorder) CacheHit(string)     {}
func (nopRecorder) CacheMiss(string)    {}
func (nopRecorder) CacheError(string)   {}
func (nopRecorder) ViewComputed(int)    {}
func (nopRecorder) Recommendation(bool) {}
