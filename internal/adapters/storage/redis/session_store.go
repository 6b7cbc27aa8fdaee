// Package redis provides a Redis-backed session store, for deployments that
// want conversations to survive a process restart or to be shared across
// replicas. Selected via BLOODBOT_SESSION_BACKEND=redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thalaconnect/bloodbot/internal/domain"
)

// Conversations are scratch space, not records: entries expire on their own
// so an abandoned conversation does not linger.
const defaultTTL = 24 * time.Hour

type SessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type Option func(*SessionStore)

func WithTTL(ttl time.Duration) Option {
	return func(s *SessionStore) {
		s.ttl = ttl
	}
}

func NewSessionStore(client *redis.Client, opts ...Option) *SessionStore {
	s := &SessionStore{
		client: client,
		prefix: "bloodbot:session:",
		ttl:    defaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionStore) key(id domain.ConversationID) string {
	return s.prefix + string(id)
}

func (s *SessionStore) Get(id domain.ConversationID) (*domain.ConversationState, error) {
	ctx := context.Background()

	raw, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var st domain.ConversationState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("redis decode session: %w", err)
	}
	if st.Fields == nil {
		st.Fields = map[domain.Field]string{}
	}
	return &st, nil
}

func (s *SessionStore) Put(id domain.ConversationID, state *domain.ConversationState) error {
	ctx := context.Background()

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("redis encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis put session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(id domain.ConversationID) error {
	ctx := context.Background()

	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
