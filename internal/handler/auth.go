package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/service"
)

const tokenMaxAge = 86400 // 24 hours

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleSignup registers an account and signs it in.
// POST /api/auth/signup
// Request:  {"name":"...","email":"...","password":"...","role":"user|company","companyName":"..."}
// Response: 201 {"isAuthenticated":true,"user":{...},"role":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupDraft
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.auth.Signup(r.Context(), req)
	if err != nil {
		writeServiceError(w, "signup", err)
		return
	}

	h.setToken(w, token)
	writeJSON(w, http.StatusCreated, toSessionDTO(h.auth.Session()))
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"isAuthenticated":true,"user":{...},"role":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginDraft
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.auth.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeServiceError(w, "login", err)
		return
	}

	h.setToken(w, token)
	writeJSON(w, http.StatusOK, toSessionDTO(h.auth.Session()))
}

// HandleDemo signs in the demo profile for a role.
// POST /api/auth/demo
// Request:  {"role":"user|company"}
func (h *AuthHandler) HandleDemo(w http.ResponseWriter, r *http.Request) {
	var req demoRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.auth.DemoLogin(req.Role)
	if err != nil {
		writeServiceError(w, "demo login", err)
		return
	}

	h.setToken(w, token)
	writeJSON(w, http.StatusOK, toSessionDTO(h.auth.Session()))
}

// HandleLogout clears the session and the auth cookie.
// POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout()
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the current session.
// GET /api/auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSessionDTO(h.auth.Session()))
}

func (h *AuthHandler) setToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   tokenMaxAge,
	})
}
