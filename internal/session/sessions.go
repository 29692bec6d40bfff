// Package session manages visitor sessions backed by SQLite. The only
// state carried today is the per-session visit counter shown on the home
// page.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// sessionKeyVisits counts how many times this session has loaded the home
// page.
const sessionKeyVisits = "num_visits"

// Manager wraps scs.SessionManager with application-specific methods.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a configured session manager. The sqlDB parameter
// should be the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, lifetime time.Duration, secureCookies bool) (*Manager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = lifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// BumpVisits returns the number of visits recorded before this request and
// stores the incremented count for the next one. A brand-new session sees 0.
// Concurrent requests from one session race last-write-wins; that is
// accepted behavior for a page-view counter.
func (m *Manager) BumpVisits(ctx context.Context) int {
	visits := m.GetInt(ctx, sessionKeyVisits)
	m.Put(ctx, sessionKeyVisits, visits+1)
	return visits
}

// Visits returns the stored visit count without modifying it.
func (m *Manager) Visits(ctx context.Context) int {
	return m.GetInt(ctx, sessionKeyVisits)
}
