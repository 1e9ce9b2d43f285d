package handler

import (
	"net/http"

	"github.com/msomdec/jobtracker/internal/service"
)

// PreferencesHandler serves the theme preference.
type PreferencesHandler struct {
	prefs *service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(prefs *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// HandleGet returns the current theme.
// GET /api/preferences
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeDTO{Theme: h.prefs.Theme()})
}

// HandleSetTheme sets the theme.
// PUT /api/preferences/theme
// Request: {"theme":"light|dark"}
func (h *PreferencesHandler) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.prefs.SetTheme(req.Theme); err != nil {
		writeServiceError(w, "set theme", err)
		return
	}
	writeJSON(w, http.StatusOK, themeDTO{Theme: h.prefs.Theme()})
}

// HandleToggleTheme flips the theme.
// POST /api/preferences/theme/toggle
func (h *PreferencesHandler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeDTO{Theme: h.prefs.ToggleTheme()})
}
