// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/awaisio/rabtah/internal/domain/match"
	"github.com/awaisio/rabtah/internal/domain/model"
)

// FeedDependencies defines the interface for feed operations.
type FeedDependencies interface {
	Feed(ctx context.Context, opts match.Options) []model.Project
	MaxResultLimit() int
}

// FeedHandler handles personalized feed requests.
type FeedHandler struct {
	deps FeedDependencies
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(deps FeedDependencies) *FeedHandler {
	return &FeedHandler{deps: deps}
}

// HandleFeed handles POST /feed requests. The body carries a profile
// snapshot; the response is the deduplicated, priority-ordered feed.
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	const op = "api.feed"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.deps.MaxResultLimit()); err != nil {
		code := "bad_request"
		if errors.Is(err, ErrLimitExceeded) {
			code = "limit_exceeded"
		}
		writeError(w, http.StatusBadRequest, code, WrapKind(op, ErrBadRequest, err))
		return
	}

	result := h.deps.Feed(r.Context(), req.options())
	writeJSON(w, http.StatusOK, result)
}
