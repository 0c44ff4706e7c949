package client

import (
	"sync"
	"time"

	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// SessionInfo is a copy of the session taken at one point in time.
type SessionInfo struct {
	Username  string
	Role      models.Role
	ServerURL string

	// ExpiresAt is zero when the token carries no expiry.
	ExpiresAt time.Time
}

// Session is the state between login and logout. The token itself is held
// by the server adapter.
type Session struct {
	mu     sync.RWMutex
	info   SessionInfo
	active bool
}

// Start opens a session for the given login response. The expiry is read
// from the token claims without verifying the signature; the server stays
// the authority on whether the token is valid.
func (s *Session) Start(username, serverURL string, resp models.LoginResponse) {
	info := SessionInfo{Username: username, Role: resp.Role, ServerURL: serverURL}
	if claims, err := utils.ParseUnverifiedClaims(resp.AccessToken); err == nil {
		if claims.ExpiresAt != nil {
			info.ExpiresAt = claims.ExpiresAt.Time
		}
		if info.Role == "" {
			info.Role = claims.Role
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	s.active = true
}

// Active reports whether the session is open and not expired at now.
func (s *Session) Active(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return false
	}
	return s.info.ExpiresAt.IsZero() || now.Before(s.info.ExpiresAt)
}

func (s *Session) Info() SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = SessionInfo{}
	s.active = false
}
