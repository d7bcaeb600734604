// Package session wires the scs session manager to the SQLite-backed store.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Lifetime is how long a session stays valid after login.
const Lifetime = 24 * time.Hour

// New creates a session manager backed by the sessions table of the given
// database. Cookies are HttpOnly and SameSite=Lax; the Secure flag is off in
// development so plain-HTTP localhost logins work.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)
	sm.Lifetime = Lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev
	return sm
}
