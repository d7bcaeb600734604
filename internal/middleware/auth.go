// Package middleware provides the HTTP middleware for the site: the admin
// session gate, CSRF protection, security headers and request plumbing.
package middleware

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/tereverde/tereverde-go/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAdmin carries the logged-in admin user.
const ContextKeyAdmin ContextKey = "admin"

// SessionKeyAdminID is the session key holding the logged-in admin's ID.
const SessionKeyAdminID = "admin_id"

// LoginPath is where unauthenticated back-office requests are sent.
const LoginPath = "/admin/login"

// RequireLogin gates the back office. Requests without a logged-in admin
// session get a warning flash and a redirect to the login page.
func RequireLogin(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := sm.GetInt64(r.Context(), SessionKeyAdminID)
			if adminID == 0 {
				sm.Put(r.Context(), "flash", "Faça login para acessar a área administrativa.")
				sm.Put(r.Context(), "flash_type", "warning")
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadAdmin loads the logged-in admin user into the request context. A
// session pointing at a deleted user is destroyed and sent back to login.
// Use after RequireLogin.
func LoadAdmin(sm *scs.SessionManager, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := sm.GetInt64(r.Context(), SessionKeyAdminID)
			if adminID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			admin, err := queries.GetAdminUserByID(r.Context(), adminID)
			if err != nil {
				_ = sm.Destroy(r.Context())
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin retrieves the logged-in admin from the request context.
// Returns nil outside the back office.
func GetAdmin(r *http.Request) *store.AdminUser {
	admin, ok := r.Context().Value(ContextKeyAdmin).(store.AdminUser)
	if !ok {
		return nil
	}
	return &admin
}

// GetAdminID returns the logged-in admin's ID, or 0 when not logged in.
func GetAdminID(r *http.Request) int64 {
	if admin := GetAdmin(r); admin != nil {
		return admin.ID
	}
	return 0
}
