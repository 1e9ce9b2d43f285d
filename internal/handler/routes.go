package handler

import (
	"net/http"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/service"
	"github.com/msomdec/jobtracker/internal/store"
	"github.com/msomdec/jobtracker/internal/transfer"
)

// Deps are the collaborators the HTTP routes are built from.
type Deps struct {
	Store        *store.Store
	Toaster      *store.Toaster
	Auth         *service.AuthService
	Applications *service.ApplicationService
	Jobs         *service.JobService
	Preferences  *service.PreferencesService
	Transfer     *transfer.Reconciler
	Limiter      *service.RateLimiter
	Health       HealthCheck
	CookieSecure bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, d Deps) {
	authHandler := NewAuthHandler(d.Auth, d.CookieSecure)
	appHandler := NewApplicationHandler(d.Applications)
	jobHandler := NewJobHandler(d.Jobs)
	transferHandler := NewTransferHandler(d.Transfer)
	prefsHandler := NewPreferencesHandler(d.Preferences)
	toastHandler := NewToastHandler(d.Store, d.Toaster)

	user := func(h http.HandlerFunc) http.Handler { return RequireRole(d.Auth, domain.RoleUser, h) }
	company := func(h http.HandlerFunc) http.Handler { return RequireRole(d.Auth, domain.RoleCompany, h) }
	signedIn := func(h http.HandlerFunc) http.Handler { return RequireAuth(d.Auth, h) }
	limited := func(h http.HandlerFunc) http.Handler {
		if d.Limiter == nil {
			return h
		}
		return RateLimit(d.Limiter, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz(d.Health))

	// Auth
	mux.Handle("POST /api/auth/signup", limited(authHandler.HandleSignup))
	mux.Handle("POST /api/auth/login", limited(authHandler.HandleLogin))
	mux.Handle("POST /api/auth/demo", limited(authHandler.HandleDemo))
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", signedIn(authHandler.HandleMe))

	// Applications
	mux.Handle("GET /api/applications", user(appHandler.HandleList))
	mux.Handle("POST /api/applications", user(appHandler.HandleCreate))
	mux.Handle("GET /api/applications/stats", user(appHandler.HandleStats))
	mux.Handle("GET /api/applications/export", user(transferHandler.HandleExport))
	mux.Handle("POST /api/applications/import/preview", user(transferHandler.HandlePreview))
	mux.Handle("POST /api/applications/import", user(transferHandler.HandleImport))
	mux.Handle("GET /api/applications/{id}", user(appHandler.HandleGet))
	mux.Handle("PUT /api/applications/{id}", user(appHandler.HandleUpdate))
	mux.Handle("DELETE /api/applications/{id}", user(appHandler.HandleDelete))

	// Jobs
	mux.Handle("GET /api/jobs", signedIn(jobHandler.HandleList))
	mux.Handle("GET /api/jobs/{id}/draft", user(appHandler.HandleDraftFromJob))
	mux.Handle("GET /api/company/jobs", company(jobHandler.HandleListOwn))
	mux.Handle("POST /api/jobs", company(jobHandler.HandleCreate))
	mux.Handle("PUT /api/jobs/{id}", company(jobHandler.HandleUpdate))
	mux.Handle("DELETE /api/jobs/{id}", company(jobHandler.HandleDelete))

	// Preferences
	mux.HandleFunc("GET /api/preferences", prefsHandler.HandleGet)
	mux.HandleFunc("PUT /api/preferences/theme", prefsHandler.HandleSetTheme)
	mux.HandleFunc("POST /api/preferences/theme/toggle", prefsHandler.HandleToggleTheme)

	// Toasts
	mux.HandleFunc("GET /api/toasts", toastHandler.HandleStream)
	mux.HandleFunc("DELETE /api/toasts", toastHandler.HandleDismiss)
}
