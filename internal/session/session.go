// Package session implements the staff session: a signed {username, issuedAt}
// record held client-side, valid for a fixed seven-day window and checked
// lazily on access. The store and clock are injected so the state machine is
// testable without a browser or real time.
package session

import (
	"errors"
	"time"
)

// TTL is the fixed session validity window.
const TTL = 7 * 24 * time.Hour

// CookieName is the fixed key the session record lives under on the client.
const CookieName = "fitness_admin_auth"

// Record is the authenticated-session state.
type Record struct {
	Username string
	IssuedAt time.Time
}

// Codec signs records into opaque tokens and verifies them back.
type Codec interface {
	Encode(rec Record) (string, error)
	Decode(token string) (Record, error)
}

// Store is where the client-held token is kept for the current request.
// Implementations: a cookie jar in production, an in-memory cell in tests.
type Store interface {
	Read() (string, bool)
	Write(token string)
	Clear()
}

// ErrNoSession is returned when no usable session exists.
var ErrNoSession = errors.New("no valid session")

// Manager is the session state machine. It has two states, unauthenticated
// and authenticated(username, issuedAt); expiry and corruption both collapse
// into unauthenticated.
type Manager struct {
	codec Codec
	store Store
	now   func() time.Time
}

// NewManager creates a Manager over the given codec and store.
func NewManager(codec Codec, store Store) *Manager {
	return &Manager{codec: codec, store: store, now: time.Now}
}

// WithClock overrides the clock. Test hook.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Establish transitions to authenticated: it signs a fresh record and
// persists it in the store. Returns the signed token. The issuance time is
// truncated to whole seconds, matching the precision the token format keeps.
func (m *Manager) Establish(username string) (string, error) {
	token, err := m.codec.Encode(Record{Username: username, IssuedAt: m.now().Truncate(time.Second)})
	if err != nil {
		return "", err
	}
	m.store.Write(token)
	return token, nil
}

// Current returns the session record while authenticated. An absent, corrupt
// or expired token transitions back to unauthenticated (fail closed), and an
// expired or corrupt token is cleared from the store on the way.
func (m *Manager) Current() (Record, error) {
	token, ok := m.store.Read()
	if !ok || token == "" {
		return Record{}, ErrNoSession
	}
	rec, err := m.codec.Decode(token)
	if err != nil {
		m.store.Clear()
		return Record{}, ErrNoSession
	}
	// Tokens carry second precision, so the window is measured in whole
	// seconds; a session issued now stays valid through exactly now+TTL.
	if m.now().Truncate(time.Second).Sub(rec.IssuedAt) > TTL {
		m.store.Clear()
		return Record{}, ErrNoSession
	}
	return rec, nil
}

// CurrentUser returns the stored username while authenticated.
func (m *Manager) CurrentUser() (string, bool) {
	rec, err := m.Current()
	if err != nil {
		return "", false
	}
	return rec.Username, true
}

// IsValid reports whether an authenticated session exists right now.
func (m *Manager) IsValid() bool {
	_, err := m.Current()
	return err == nil
}

// Clear transitions to unauthenticated (explicit logout).
func (m *Manager) Clear() {
	m.store.Clear()
}

// MemoryStore is an in-memory Store used by tests.
type MemoryStore struct {
	token string
	set   bool
}

func (s *MemoryStore) Read() (string, bool) { return s.token, s.set }
func (s *MemoryStore) Write(token string)   { s.token, s.set = token, true }
func (s *MemoryStore) Clear()               { s.token, s.set = "", false }
