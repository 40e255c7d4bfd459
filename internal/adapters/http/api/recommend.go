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

// RecommendDependencies defines the interface for recommendation
// operations.
type RecommendDependencies interface {
	Recommendations(ctx context.Context, opts match.Options) []model.RecommendationScore
	MaxResultLimit() int
}

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps RecommendDependencies
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps RecommendDependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

// HandleRecommendations handles POST /recommendations requests. The
// body carries a profile snapshot; the response is the scored match
// list with reasons, best first.
func (h *RecommendHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommendations"
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

	result := h.deps.Recommendations(r.Context(), req.options())
	writeJSON(w, http.StatusOK, result)
}
