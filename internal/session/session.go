package session

import (
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/emrekoca/restopos-admin/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAuthenticated is returned before any network I/O when no bearer
// token is present.
var ErrNotAuthenticated = pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated")

// Session holds the bearer token attached to every backend call. A single
// session belongs to a single client instance; there is no cross-process
// sharing.
type Session struct {
	mu    sync.RWMutex
	token string
}

// New constructs a session, optionally seeded with a token.
func New(token string) *Session {
	return &Session{token: strings.TrimSpace(token)}
}

// SetToken replaces the stored bearer token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Clear drops the stored token.
func (s *Session) Clear() {
	s.SetToken("")
}

// Token returns the bearer token, or ErrNotAuthenticated if none is set.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNotAuthenticated
	}
	return s.token, nil
}

// ExpiresAt inspects the stored JWT's exp claim without verifying the
// signature; the client holds no signing key, the server remains the
// authority. Returns the zero time when the token carries no expiry.
func (s *Session) ExpiresAt() (time.Time, error) {
	token, err := s.Token()
	if err != nil {
		return time.Time{}, err
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "malformed bearer token")
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// Expired reports whether the stored token carries an expiry in the past.
// A token without an exp claim is treated as live.
func (s *Session) Expired(now time.Time) bool {
	expiry, err := s.ExpiresAt()
	if err != nil {
		return true
	}
	if expiry.IsZero() {
		return false
	}
	return !now.Before(expiry)
}
