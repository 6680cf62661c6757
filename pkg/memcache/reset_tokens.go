package mem

import (
	"sync"
	"time"
)

// ResetTokenStore holds outstanding password reset tokens in process memory.
// Tokens are short-lived and single-use; losing them on restart just means
// the user requests another email.
type ResetTokenStore interface {
	Set(token string, accountEmail string, ttl time.Duration)

	// Consume returns the email bound to token and invalidates it.
	// Missing or expired tokens yield "".
	Consume(token string) string
}

type resetEntry struct {
	email    string
	deadline int64 // unix nanos
}

type ResetTokens struct {
	mu      sync.Mutex
	entries map[string]resetEntry
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{entries: make(map[string]resetEntry)}
}

func (s *ResetTokens) Set(token string, accountEmail string, ttl time.Duration) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	// Sweep stale tokens whenever a new one is issued; no janitor goroutine.
	for t, e := range s.entries {
		if e.deadline <= now.UnixNano() {
			delete(s.entries, t)
		}
	}

	s.entries[token] = resetEntry{
		email:    accountEmail,
		deadline: now.Add(ttl).UnixNano(),
	}
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return ""
	}
	delete(s.entries, token)
	if e.deadline <= time.Now().UnixNano() {
		return ""
	}
	return e.email
}
