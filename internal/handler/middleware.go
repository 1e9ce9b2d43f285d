package handler

import (
	"context"
	"net"
	"net/http"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/service"
)

const authCookieName = "auth_token"

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext returns the identity attached by RequireAuth or
// RequireRole.
func ClaimsFromContext(ctx context.Context) (service.Claims, bool) {
	c, ok := ctx.Value(claimsContextKey).(service.Claims)
	return c, ok
}

// RequireAuth rejects requests without a valid session token that matches
// the signed-in session.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return requireSession(auth, "", next)
}

// RequireRole is RequireAuth restricted to one role. A signed-in account
// with another role gets 403.
func RequireRole(auth *service.AuthService, role domain.Role, next http.Handler) http.Handler {
	return requireSession(auth, role, next)
}

func requireSession(auth *service.AuthService, role domain.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := authenticateRequest(r, auth)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}
		if role != "" && claims.Role != role {
			writeError(w, http.StatusForbidden, "You do not have access to this resource.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService) (service.Claims, error) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return service.Claims{}, domain.ErrUnauthorized
	}

	claims, err := auth.ValidateToken(cookie.Value)
	if err != nil {
		return service.Claims{}, err
	}

	// A token outlives a logout; the store session is authoritative.
	sess := auth.Session()
	if !sess.IsAuthenticated || sess.Email() != claims.Email || sess.Role != claims.Role {
		return service.Claims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

// RateLimit rejects requests from a client address that has used up its
// allowance.
func RateLimit(limiter *service.RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(clientIP(r)) {
			writeError(w, http.StatusTooManyRequests, "Too many attempts. Please wait and try again.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// SecurityHeaders sets conservative browser security headers on every
// response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
