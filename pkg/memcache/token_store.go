// pkg/memcache/token_store.go
package memcache

import (
	"sync"
	"time"
)

// TokenStore caches provider bearer tokens keyed by client ID. A token is
// served only while its TTL holds; expired entries are dropped on read.
type TokenStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

type entry struct {
	token     string
	expiresAt time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		data: make(map[string]entry),
	}
}

func (s *TokenStore) Set(clientID string, token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[clientID] = entry{
		token:     token,
		expiresAt: time.Now().Add(ttl),
	}
}

// Peek returns the cached token for clientID if it has not expired.
func (s *TokenStore) Peek(clientID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[clientID]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.token, true
}

func (s *TokenStore) Delete(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, clientID)
}
