package outreach

import (
	"context"
	"sync"
	"time"

	"hireflow/models"
)

// SessionStore keeps live outreach sessions in process memory, keyed by
// session ID with a TTL. The state is transient by design: sessions do not
// survive a restart, and an expired session simply has to be reopened.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]storeEntry
}

type storeEntry struct {
	session   models.OutreachSession
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]storeEntry),
	}
}

// Get returns a copy of the stored session, so callers can mutate it freely
// and persist the result with Save.
func (st *SessionStore) Get(id string) (*models.OutreachSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok || time.Now().After(e.expiresAt) {
		delete(st.sessions, id)
		return nil, newError(CodeSessionNotFound, "outreach session %s not found or expired", id)
	}
	s := e.session
	return &s, nil
}

// Save stores the session and refreshes its TTL.
func (st *SessionStore) Save(s models.OutreachSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = storeEntry{session: s, expiresAt: time.Now().Add(st.ttl)}
}

// Delete removes the session. Deleting an absent session is a no-op.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// StartSweeper prunes expired sessions in the background until ctx is done.
func (st *SessionStore) StartSweeper(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.sweep()
			}
		}
	}()
}

func (st *SessionStore) sweep() {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, e := range st.sessions {
		if now.After(e.expiresAt) {
			delete(st.sessions, id)
		}
	}
}
