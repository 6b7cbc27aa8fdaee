// Package memory provides process-lifetime implementations of the storage
// ports, used as the default session backend and in tests.
package memory

import (
	"sync"

	"github.com/thalaconnect/bloodbot/internal/domain"
)

// SessionStore keeps conversation state in a mutex-guarded map. Concurrent
// turns for different identities proceed in parallel; two racing turns for
// the same identity resolve last-write-wins on Put, which the design accepts
// because one user sends one message at a time.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.ConversationID]*domain.ConversationState
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.ConversationID]*domain.ConversationState),
	}
}

func (s *SessionStore) Get(id domain.ConversationID) (*domain.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return st.Clone(), nil
}

func (s *SessionStore) Put(id domain.ConversationID, state *domain.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = state.Clone()
	return nil
}

func (s *SessionStore) Delete(id domain.ConversationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
