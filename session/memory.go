package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// MemStore is an in-process Store for handler tests and redis-less runs.
type MemStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]AppSession
}

func NewMemStore(ttl time.Duration) *MemStore {
	return &MemStore{ttl: ttl, sessions: make(map[string]AppSession)}
}

func (s *MemStore) Create(_ context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.sessions[id] = AppSession{
		Name:      name,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	return nil
}

func (s *MemStore) Get(_ context.Context, id string) (*AppSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	as, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().Unix() >= as.ExpiresAt {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return &as, nil
}

func (s *MemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
