package handler

import (
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/service"
	"github.com/msomdec/jobtracker/internal/view"
)

// ApplicationHandler serves the tracked applications.
type ApplicationHandler struct {
	apps *service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(apps *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// HandleList returns the applications matching the query string.
// GET /api/applications?search=&status=&sort=
func (h *ApplicationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	apps, err := h.apps.List(service.ApplicationQuery{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Sort:   q.Get("sort"),
	})
	if err != nil {
		writeServiceError(w, "list applications", err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

// HandleCreate adds an application.
// POST /api/applications
func (h *ApplicationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.ApplicationDraft
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	app, err := h.apps.Create(req)
	if err != nil {
		writeServiceError(w, "create application", err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// HandleGet returns one application.
// GET /api/applications/{id}
func (h *ApplicationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get application", err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// HandleUpdate replaces an application's fields.
// PUT /api/applications/{id}
func (h *ApplicationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req domain.ApplicationDraft
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	app, err := h.apps.Update(r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, "update application", err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// HandleDelete removes an application.
// DELETE /api/applications/{id}
// Response: 204 No Content
func (h *ApplicationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.apps.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// HandleStats returns the per-status counts. Datastar requests get the
// dashboard counters patched in instead of JSON.
// GET /api/applications/stats
func (h *ApplicationHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.apps.Stats()
	if r.Header.Get("Datastar-Request") != "true" {
		writeJSON(w, http.StatusOK, stats)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.Stats([]view.StatCount{
			{Label: "Total", Value: stats.Total},
			{Label: "Applied", Value: stats.Applied},
			{Label: "Interviewing", Value: stats.Interviewing},
			{Label: "Offers", Value: stats.Offers},
			{Label: "Rejected", Value: stats.Rejected},
		}),
		datastar.WithSelectorID(view.StatsContainerID),
		datastar.WithModeInner(),
	)
}

// HandleDraftFromJob returns an application form prefilled from a listing.
// GET /api/jobs/{id}/draft
func (h *ApplicationHandler) HandleDraftFromJob(w http.ResponseWriter, r *http.Request) {
	d, err := h.apps.DraftFromJob(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "draft from job", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
