package handler

import (
	"net/http"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/service"
)

// JobHandler serves job listings.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// HandleList returns every listing matching ?search=.
// GET /api/jobs
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.jobs.List(r.URL.Query().Get("search")))
}

// HandleListOwn returns the signed-in company's listings and their stats.
// GET /api/company/jobs
func (h *JobHandler) HandleListOwn(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  h.jobs.ListByOwner(claims.Email, r.URL.Query().Get("search")),
		"stats": h.jobs.Stats(claims.Email),
	})
}

// HandleCreate posts a listing.
// POST /api/jobs
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.JobDraft
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	claims, _ := ClaimsFromContext(r.Context())
	job, err := h.jobs.Create(claims.Email, req)
	if err != nil {
		writeServiceError(w, "create job", err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// HandleUpdate replaces a listing owned by the caller.
// PUT /api/jobs/{id}
func (h *JobHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req domain.JobDraft
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	claims, _ := ClaimsFromContext(r.Context())
	job, err := h.jobs.Update(claims.Email, r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, "update job", err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// HandleDelete removes a listing owned by the caller.
// DELETE /api/jobs/{id}
func (h *JobHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	if err := h.jobs.Delete(claims.Email, r.PathValue("id")); err != nil {
		writeServiceError(w, "delete job", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
