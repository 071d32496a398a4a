package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "session:"
	authKeyPrefix = "auth:"
)

// Store registers browser and auth sessions in Redis with a TTL. The cart
// rows in Postgres stay authoritative; losing a Redis key never loses a cart.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Ensure returns the session ID, minting a fresh one when none was presented,
// and refreshes its registration TTL.
func (s *Store) Ensure(ctx context.Context, id string) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	err := s.rdb.Set(ctx, cartKeyPrefix+id, time.Now().Unix(), s.ttl).Err()
	return id, err
}

// CreateAuthSession records a logged-in session and returns its ID.
func (s *Store) CreateAuthSession(ctx context.Context, accountID uint) (string, error) {
	id := uuid.NewString()
	if err := s.rdb.Set(ctx, authKeyPrefix+id, accountID, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// AuthSessionExists reports whether the auth session is still live.
func (s *Store) AuthSessionExists(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Exists(ctx, authKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteAuthSession revokes a logged-in session.
func (s *Store) DeleteAuthSession(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, authKeyPrefix+id).Err()
}
