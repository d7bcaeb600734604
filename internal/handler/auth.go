// Package handler contains the HTTP handlers for the public site and the
// admin back office.
package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/tereverde/tereverde-go/internal/auth"
	"github.com/tereverde/tereverde-go/internal/middleware"
	"github.com/tereverde/tereverde-go/internal/render"
	"github.com/tereverde/tereverde-go/internal/store"
)

// AuthHandler handles admin authentication routes.
type AuthHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// LoginForm handles GET /admin/login - renders the login page.
// Already-authenticated admins are sent straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if adminID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyAdminID); adminID > 0 {
		http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Login",
	}); err != nil {
		logAndInternalError(w, "render error", "error", err)
	}
}

// Login handles POST /admin/login - checks the credentials and opens the
// admin session. Unknown emails and wrong passwords get the same message so
// accounts cannot be enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email e senha são obrigatórios.")
		return
	}

	admin, err := h.queries.GetAdminUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for unknown email", "email", email)
		} else {
			slog.Error("database error during login", "error", err)
		}
		flashError(w, r, h.renderer, redirectLogin, "Email ou senha incorretos.")
		return
	}

	valid, err := auth.CheckPassword(password, admin.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err, "admin_id", admin.ID)
		flashError(w, r, h.renderer, redirectLogin, "Email ou senha incorretos.")
		return
	}
	if !valid {
		slog.Debug("invalid password attempt", "email", email)
		flashError(w, r, h.renderer, redirectLogin, "Email ou senha incorretos.")
		return
	}

	// Upgrade hashes created with older parameters while we still have
	// the plaintext.
	if auth.NeedsRehash(admin.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateAdminUserPassword(r.Context(), store.UpdateAdminUserPasswordParams{
				PasswordHash: newHash,
				ID:           admin.ID,
			}); err != nil {
				slog.Error("failed to re-hash password", "error", err, "admin_id", admin.ID)
			}
		}
	}

	// Regenerate the session ID to prevent session fixation.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), middleware.SessionKeyAdminID, admin.ID)

	slog.Info("admin logged in", "admin_id", admin.ID, "email", admin.Email)
	flashSuccess(w, r, h.renderer, redirectAdmin, "Bem-vindo, "+admin.Name+"!")
}

// Logout handles POST /admin/logout - destroys the admin session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	adminID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyAdminID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("admin logged out", "admin_id", adminID)
	flashSuccess(w, r, h.renderer, redirectLogin, "Logout realizado com sucesso.")
}
