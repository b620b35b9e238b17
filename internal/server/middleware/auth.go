// Package middleware provides HTTP middleware: JWT authentication,
// per-IP rate limiting, and request logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/auth"
	"github.com/nmoreno/blogapi/internal/db/models"
	"github.com/nmoreno/blogapi/internal/store"
)

type contextKey string

const userKey contextKey = "currentUser"

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil outside an
// authenticated route.
func UserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail": "Could not validate credentials"}`))
}

// RequireUser validates the bearer token and loads the current user
// into the request context. Deleted and inactive accounts are rejected.
func RequireUser(db *gorm.DB, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				unauthorized(w)
				return
			}

			subject, err := auth.ParseAccessToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := store.GetUserByUsername(db, subject)
			if err != nil || user.IsDeleted || !user.IsActive {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireAdmin rejects non-admin users. Must run after RequireUser.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			unauthorized(w)
			return
		}
		if !user.IsAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"detail": "Operation not allowed: admin privileges required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
