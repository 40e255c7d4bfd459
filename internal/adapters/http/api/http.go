// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/awaisio/rabtah/internal/domain/match"
	"github.com/awaisio/rabtah/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to implementations in other
// packages.
type Dependencies interface {
	// Catalog operations.
	UpsertProject(ctx context.Context, p model.Project) (bool, error)
	Project(ctx context.Context, id string) (model.Project, error)
	RemoveProject(ctx context.Context, id string) error

	// Ranking operations over the current catalog.
	Recommendations(ctx context.Context, opts match.Options) []model.RecommendationScore
	Similar(ctx context.Context, id string, limit int) ([]model.Project, error)
	Popular(ctx context.Context, limit int) []model.Project
	Trending(ctx context.Context, limit int) []model.Project
	PopularInArea(ctx context.Context, location string, limit int) []model.Project
	Feed(ctx context.Context, opts match.Options) []model.Project

	// MaxResultLimit caps every limit the API accepts.
	MaxResultLimit() int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	projectsHandler  *ProjectsHandler
	recommendHandler *RecommendHandler
	feedHandler      *FeedHandler
	browseHandler    *BrowseHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		projectsHandler:  NewProjectsHandler(deps),
		recommendHandler: NewRecommendHandler(deps),
		feedHandler:      NewFeedHandler(deps),
		browseHandler:    NewBrowseHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/projects", MetricsMiddleware(s.projectsHandler.HandleProjects, "projects"))
	mux.HandleFunc("/projects/", MetricsMiddleware(s.projectsHandler.HandleProjectByID, "project"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendHandler.HandleRecommendations, "recommendations"))
	mux.HandleFunc("/feed", MetricsMiddleware(s.feedHandler.HandleFeed, "feed"))
	mux.HandleFunc("/popular", MetricsMiddleware(s.browseHandler.HandlePopular, "popular"))
	mux.HandleFunc("/trending", MetricsMiddleware(s.browseHandler.HandleTrending, "trending"))
	mux.HandleFunc("/area", MetricsMiddleware(s.browseHandler.HandlePopularInArea, "area"))
}

// profileRequest mirrors the JSON body shared by POST /recommendations
// and POST /feed.
type profileRequest struct {
	Profile   *model.UserProfile `json:"profile,omitempty"`
	Location  string             `json:"location,omitempty"`
	Skills    []string           `json:"skills,omitempty"`
	Interests []string           `json:"interests,omitempty"`
	Bookmarks []string           `json:"bookmarks,omitempty"`
	Limit     int                `json:"limit,omitempty"`
}

func (r profileRequest) validate(maxLimit int) error {
	switch {
	case r.Limit < 0:
		return errors.New("limit must not be negative")
	case r.Limit > maxLimit:
		return ErrLimitExceeded
	}
	return nil
}

func (r profileRequest) options() match.Options {
	return match.Options{
		Profile:   r.Profile,
		Location:  r.Location,
		Skills:    r.Skills,
		Interests: r.Interests,
		Bookmarks: r.Bookmarks,
		Limit:     r.Limit,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseLimit reads an optional ?limit query parameter. A missing value
// resolves to zero, which lets the strategy default apply.
func parseLimit(r *http.Request, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrBadRequest
	}
	if n > maxLimit {
		return 0, ErrLimitExceeded
	}
	return n, nil
}

// isNotFound allows the API to translate upstream not-found errors to
// 404 without importing the repository package here.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
