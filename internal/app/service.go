// Package service provides the core business service that implements
// the dependencies required by the HTTP API. It owns the project
// catalog and drives the ranking engine over catalog snapshots.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/awaisio/rabtah/internal/adapters/repository"
	"github.com/awaisio/rabtah/internal/domain/match"
	"github.com/awaisio/rabtah/internal/domain/model"
	"github.com/awaisio/rabtah/internal/domain/rank"
	"github.com/awaisio/rabtah/pkg/logger"
	"github.com/awaisio/rabtah/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultMaxResultLimit = 100
	defaultFeedLimit      = 20
	defaultRecommendLimit = 10
)

// Service implements the API dependencies for the matching system.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog repository.Catalog
	engine  *rank.Engine

	// Configuration
	maxResultLimit  int
	feedLimit       int
	recommendLimit  int
	clock           func() time.Time
	initialProjects []model.Project

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithCatalog substitutes the project catalog. When unset, Start
// creates an in-memory catalog.
func WithCatalog(c repository.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithMaxResultLimit caps the limit any operation accepts.
func WithMaxResultLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxResultLimit = limit
		}
	}
}

// WithDefaultFeedLimit sets the feed size used when a request leaves
// the limit unset.
func WithDefaultFeedLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.feedLimit = limit
		}
	}
}

// WithDefaultRecommendLimit sets the recommendation count used when a
// request leaves the limit unset.
func WithDefaultRecommendLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.recommendLimit = limit
		}
	}
}

// WithClock sets the time source handed to the ranking engine.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithInitialProjects seeds the catalog on Start.
func WithInitialProjects(projects []model.Project) Option {
	return func(s *Service) {
		s.initialProjects = projects
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxResultLimit: defaultMaxResultLimit,
		feedLimit:      defaultFeedLimit,
		recommendLimit: defaultRecommendLimit,
		clock:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.catalog == nil {
		s.catalog = repository.NewMemoryCatalog(
			repository.WithInitialProjects(s.initialProjects),
		)
	}
	s.engine = rank.New(
		rank.WithClock(s.clock),
	)

	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.Int("seedProjects", len(s.initialProjects)),
		logger.Int("maxResultLimit", s.maxResultLimit),
	)
	return nil
}

// Stop shuts the service down. The catalog is in-memory only, so there
// is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

// MaxResultLimit exposes the configured cap for request validation.
func (s *Service) MaxResultLimit() int {
	return s.maxResultLimit
}

// UpsertProject inserts or replaces a project in the catalog. Returns
// true when the project was newly created.
func (s *Service) UpsertProject(ctx context.Context, p model.Project) (bool, error) {
	created, err := s.catalog.Upsert(ctx, p)
	if err != nil {
		return false, err
	}
	metrics.RecordProjectUpserted()
	s.logger.Debug(ctx, "project upserted",
		logger.String("id", p.ID),
		logger.String("title", p.Title),
	)
	return created, nil
}

// Project returns one catalog entry by id.
func (s *Service) Project(ctx context.Context, id string) (model.Project, error) {
	return s.catalog.Get(ctx, id)
}

// RemoveProject deletes a catalog entry by id.
func (s *Service) RemoveProject(ctx context.Context, id string) error {
	if err := s.catalog.Remove(ctx, id); err != nil {
		return err
	}
	metrics.RecordProjectRemoved()
	return nil
}

// Recommendations scores the catalog against the given profile
// snapshot and returns the best matches with reasons.
func (s *Service) Recommendations(ctx context.Context, opts match.Options) []model.RecommendationScore {
	if opts.Limit <= 0 {
		opts.Limit = s.recommendLimit
	}
	defer s.observe("recommend")()

	result := s.engine.Recommend(s.catalog.Snapshot(ctx), opts)
	metrics.RecordRecommendationServed()
	return result
}

// Similar returns the projects most similar to the given one.
func (s *Service) Similar(ctx context.Context, id string, limit int) ([]model.Project, error) {
	reference, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	defer s.observe("similar")()

	result := s.engine.Similar(reference, s.catalog.Snapshot(ctx), limit)
	metrics.RecordSimilarQuery()
	return result, nil
}

// Popular returns the most engaged projects.
func (s *Service) Popular(ctx context.Context, limit int) []model.Project {
	defer s.observe("popular")()
	return s.engine.Popular(s.catalog.Snapshot(ctx), limit)
}

// Trending returns recently submitted projects ranked by engagement
// velocity.
func (s *Service) Trending(ctx context.Context, limit int) []model.Project {
	defer s.observe("trending")()
	return s.engine.Trending(s.catalog.Snapshot(ctx), limit)
}

// PopularInArea returns popular projects near the given location.
func (s *Service) PopularInArea(ctx context.Context, location string, limit int) []model.Project {
	defer s.observe("popular_in_area")()
	return s.engine.PopularInArea(s.catalog.Snapshot(ctx), location, limit)
}

// Feed returns the deduplicated personalized feed for the given
// profile snapshot.
func (s *Service) Feed(ctx context.Context, opts match.Options) []model.Project {
	if opts.Limit <= 0 {
		opts.Limit = s.feedLimit
	}
	defer s.observe("feed")()

	result := s.engine.PersonalizedFeed(s.catalog.Snapshot(ctx), opts)
	metrics.RecordFeedServed()
	return result
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"maxResultLimit": s.maxResultLimit,
		"feedLimit":      s.feedLimit,
		"recommendLimit": s.recommendLimit,
	}
	if s.started {
		count := s.catalog.Count(context.Background())
		stats["catalogSize"] = count
		metrics.UpdateCatalogSize(count)
	}
	return stats
}

// observe times one strategy evaluation.
func (s *Service) observe(strategy string) func() {
	start := time.Now()
	return func() {
		metrics.RecordStrategyLatency(strategy, float64(time.Since(start).Microseconds())/1000.0)
	}
}
