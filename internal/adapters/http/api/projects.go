// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/awaisio/rabtah/internal/domain/model"
	"github.com/google/uuid"
)

// ProjectDependencies defines the interface for catalog operations.
type ProjectDependencies interface {
	UpsertProject(ctx context.Context, p model.Project) (bool, error)
	Project(ctx context.Context, id string) (model.Project, error)
	RemoveProject(ctx context.Context, id string) error
	Similar(ctx context.Context, id string, limit int) ([]model.Project, error)
	MaxResultLimit() int
}

// ProjectsHandler handles catalog ingest and lookup requests.
type ProjectsHandler struct {
	deps ProjectDependencies
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(deps ProjectDependencies) *ProjectsHandler {
	return &ProjectsHandler{deps: deps}
}

type upsertResponse struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	IDs     []string `json:"ids"`
}

// HandleProjects handles POST/PUT /projects requests. The body may be
// a single project object or an array; projects arriving without an id
// get one assigned.
func (h *ProjectsHandler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	const op = "api.upsert_projects"
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	projects, err := decodeProjects(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	resp := upsertResponse{IDs: make([]string, 0, len(projects))}
	for _, p := range projects {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		created, err := h.deps.UpsertProject(r.Context(), p)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
			return
		}
		if created {
			resp.Created++
		} else {
			resp.Updated++
		}
		resp.IDs = append(resp.IDs, p.ID)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleProjectByID handles GET/DELETE /projects/{id} and
// GET /projects/{id}/similar requests.
func (h *ProjectsHandler) HandleProjectByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.project_by_id"

	path := strings.TrimPrefix(r.URL.Path, "/projects/")
	id, rest, _ := strings.Cut(path, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case rest == "similar" && r.Method == http.MethodGet:
		h.handleSimilar(w, r, id)
	case rest == "" && r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case rest == "" && r.Method == http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *ProjectsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_project"
	p, err := h.deps.Project(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectsHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.delete_project"
	if err := h.deps.RemoveProject(r.Context(), id); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ProjectsHandler) handleSimilar(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.similar_projects"
	limit, err := parseLimit(r, h.deps.MaxResultLimit())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	similar, err := h.deps.Similar(r.Context(), id, limit)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, similar)
}

// decodeProjects accepts either one project object or an array.
func decodeProjects(body []byte) ([]model.Project, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var many []model.Project
		if err := json.Unmarshal(body, &many); err != nil {
			return nil, err
		}
		return many, nil
	}
	var one model.Project
	if err := json.Unmarshal(body, &one); err != nil {
		return nil, err
	}
	return []model.Project{one}, nil
}
