// pkg/memcache/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out token ids until the token would
// have expired anyway.
type RevokedTokenStore interface {
	Revoke(jti string, expiresAt time.Time)
	IsRevoked(jti string) bool
	// Len counts entries that are still live.
	Len() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(jti string, expiresAt time.Time) {
	if jti == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.data[jti] = expiresAt
}

func (s *RevokedTokens) IsRevoked(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.data[jti]
	return ok && s.now().Before(exp)
}

func (s *RevokedTokens) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	now := s.now()
	for _, exp := range s.data {
		if now.Before(exp) {
			n++
		}
	}
	return n
}

// sweep drops expired entries. Caller holds the write lock.
func (s *RevokedTokens) sweep() {
	now := s.now()
	for jti, exp := range s.data {
		if !now.Before(exp) {
			delete(s.data, jti) // cleanup expired
		}
	}
}
