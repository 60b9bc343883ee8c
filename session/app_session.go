package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AppSession binds a session id to a caller identity. The name is the
// opaque identity the rest of the app compares and stores; callers cannot
// mint one themselves, only the login flow can.
type AppSession struct {
	Name      string `json:"name"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Store is what the auth middleware and controllers need from a session
// backend.
type Store interface {
	Create(ctx context.Context, id, name string) error
	Get(ctx context.Context, id string) (*AppSession, error)
	Delete(ctx context.Context, id string) error
}

// AppSessionStore keeps sessions in Redis with a TTL.
type AppSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAppSessionStore(rdb *redis.Client, ttl time.Duration) *AppSessionStore {
	return &AppSessionStore{rdb: rdb, ttl: ttl}
}

func key(id string) string { return fmt.Sprintf("app:sess:%s", id) }

func (s *AppSessionStore) Create(ctx context.Context, id, name string) error {
	now := time.Now()
	b, _ := json.Marshal(AppSession{
		Name:      name,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	return s.rdb.Set(ctx, key(id), b, s.ttl).Err()
}

func (s *AppSessionStore) Get(ctx context.Context, id string) (*AppSession, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var as AppSession
	if err := json.Unmarshal(b, &as); err != nil {
		return nil, err
	}
	return &as, nil
}

func (s *AppSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}
