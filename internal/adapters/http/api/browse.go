// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/awaisio/rabtah/internal/domain/model"
)

// BrowseDependencies defines the interface for the unauthenticated
// browse rankings.
type BrowseDependencies interface {
	Popular(ctx context.Context, limit int) []model.Project
	Trending(ctx context.Context, limit int) []model.Project
	PopularInArea(ctx context.Context, location string, limit int) []model.Project
	MaxResultLimit() int
}

// BrowseHandler handles the popular, trending and popular-in-area
// rankings.
type BrowseHandler struct {
	deps BrowseDependencies
}

// NewBrowseHandler creates a new browse handler.
func NewBrowseHandler(deps BrowseDependencies) *BrowseHandler {
	return &BrowseHandler{deps: deps}
}

// HandlePopular handles GET /popular?limit=N requests.
func (h *BrowseHandler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	const op = "api.popular"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit, err := h.limit(w, r, op)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Popular(r.Context(), limit))
}

// HandleTrending handles GET /trending?limit=N requests.
func (h *BrowseHandler) HandleTrending(w http.ResponseWriter, r *http.Request) {
	const op = "api.trending"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit, err := h.limit(w, r, op)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Trending(r.Context(), limit))
}

// HandlePopularInArea handles GET /area?location=L&limit=N requests.
func (h *BrowseHandler) HandlePopularInArea(w http.ResponseWriter, r *http.Request) {
	const op = "api.popular_in_area"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	limit, err := h.limit(w, r, op)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.PopularInArea(r.Context(), location, limit))
}

// limit parses ?limit and writes the error response itself, so callers
// only need to bail out.
func (h *BrowseHandler) limit(w http.ResponseWriter, r *http.Request, op string) (int, error) {
	limit, err := parseLimit(r, h.deps.MaxResultLimit())
	if err != nil {
		code := "bad_request"
		if err == ErrLimitExceeded {
			code = "limit_exceeded"
		}
		writeError(w, http.StatusBadRequest, code, NewKind(op, err))
		return 0, err
	}
	return limit, nil
}
