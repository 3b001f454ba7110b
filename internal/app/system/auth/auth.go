// Package auth provides the admin gate: a single shared passphrase
// exchanged for a signed session cookie. This is deliberately not an
// auth system; there are no users, roles, or account records, just
// one owner unlocking edit mode.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const isAdminKey = "is_admin"

// SessionConfigError is returned when session configuration is invalid.
type SessionConfigError struct {
	Message string
}

func (e *SessionConfigError) Error() string { return e.Message }

// SessionManager wraps the cookie store and the configured passphrase.
type SessionManager struct {
	store      *sessions.CookieStore
	logger     *zap.Logger
	name       string
	passphrase string
}

// NewSessionManager creates a session manager.
//
//   - sessionKey: cookie signing key (≥32 random chars in production)
//   - name: session cookie name
//   - passphrase: the shared admin passphrase, either plain text or a
//     bcrypt hash (recognized by its $2 prefix)
//   - secure: marks cookies Secure for HTTPS deployments
func NewSessionManager(sessionKey, name, passphrase string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, &SessionConfigError{Message: "session key is empty; provide ≥32 random chars"}
	}
	if len(sessionKey) < 32 {
		if secure {
			return nil, &SessionConfigError{Message: "session key is too weak for production; provide ≥32 random chars"}
		}
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)))
	}
	if passphrase == "" {
		logger.Warn("admin passphrase not configured - admin mode is locked")
	}

	if name == "" {
		name = "portfolio-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{
		store:      store,
		logger:     logger,
		name:       name,
		passphrase: passphrase,
	}, nil
}

// CheckPassphrase verifies the submitted passphrase against the
// configured one. A configured bcrypt hash is compared as such;
// anything else is compared in constant time.
func (m *SessionManager) CheckPassphrase(input string) bool {
	if m.passphrase == "" {
		return false
	}
	if strings.HasPrefix(m.passphrase, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(m.passphrase), []byte(input)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(m.passphrase), []byte(input)) == 1
}

// Login marks the session as admin after a successful passphrase
// check.
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, m.name)
	session.Values[isAdminKey] = true
	return session.Save(r, w)
}

// Logout clears the admin session.
func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, m.name)
	session.Options.MaxAge = -1
	delete(session.Values, isAdminKey)
	return session.Save(r, w)
}

// IsAdmin reports whether the request carries a valid admin session.
// Cookie decode failures (expiry, tampering, key rotation) read as
// logged out.
func (m *SessionManager) IsAdmin(r *http.Request) bool {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		if _, ok := err.(securecookie.Error); !ok {
			m.logger.Debug("session read failed", zap.Error(err))
		}
		return false
	}
	isAdmin, _ := session.Values[isAdminKey].(bool)
	return isAdmin
}

// RequireAdmin is middleware that rejects requests without an admin
// session.
func (m *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.IsAdmin(r) {
			http.Error(w, "admin session required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
