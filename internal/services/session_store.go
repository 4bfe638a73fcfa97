package services

import (
	"sync"
	"time"
)

// SessionStore is the only shared mutable structure in the service: a
// mutex-guarded table of live interview sessions with TTL-based eviction.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewSessionStore creates a store evicting sessions older than ttl. The
// sweep goroutine runs every sweepInterval; a non-positive interval
// disables sweeping (useful in tests).
func NewSessionStore(ttl, sweepInterval time.Duration) *SessionStore {
	store := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	if sweepInterval > 0 {
		go store.sweepLoop(sweepInterval)
	}

	return store
}

func (st *SessionStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stopChan:
			return
		case <-ticker.C:
			st.evictExpired(time.Now())
		}
	}
}

func (st *SessionStore) evictExpired(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := now.Add(-st.ttl)

	evicted := 0
	for id, sess := range st.sessions {
		if sess.CreatedAt().Before(cutoff) {
			delete(st.sessions, id)
			evicted++
		}
	}

	return evicted
}

func (st *SessionStore) Put(s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.sessions[s.ID()]; exists {
		return ErrSessionExists
	}

	st.sessions[s.ID()] = s
	return nil
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, exists := st.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *SessionStore) Count() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Stop terminates the sweep goroutine.
func (st *SessionStore) Stop() {
	st.stopOnce.Do(func() {
		close(st.stopChan)
	})
}
