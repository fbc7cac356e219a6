// File: utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// ErrSessionNotFound is returned when a session id has no stored state.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-held state of one browser session.
type Session struct {
	ID            string        `json:"id"`
	Token         *oauth2.Token `json:"token,omitempty"`
	Email         string        `json:"email,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
}

// Authenticated reports whether the session carries OAuth tokens.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != nil && s.Token.AccessToken != ""
}

// NewSession creates an empty session with a fresh id.
func NewSession() *Session {
	now := time.Now()
	return &Session{ID: uuid.New().String(), CreatedAt: now, LastUpdatedAt: now}
}

// SessionStore persists sessions by id.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore stores sessions as JSON blobs with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Save saves the session in Redis with a TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session *Session) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, SessionPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get retrieves the session from Redis.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, SessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session from Redis.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, SessionPrefix+id).Err()
}

// MemorySessionStore keeps sessions in process memory. Sessions do not expire.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *Session) error {
	session.LastUpdatedAt = time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
