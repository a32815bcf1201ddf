package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultShareTTL = 7 * 24 * time.Hour

// ShareStore persists share tokens in Redis.
// Key format: share:<token> → tracking number
type ShareStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewShareStore creates a ShareStore. A non-positive ttl falls back to the
// default of seven days.
func NewShareStore(client *redis.Client, ttl time.Duration) *ShareStore {
	if ttl <= 0 {
		ttl = defaultShareTTL
	}
	return &ShareStore{client: client, ttl: ttl}
}

// Put records a token → tracking number mapping for the store's lifetime.
func (s *ShareStore) Put(ctx context.Context, token, trackingNumber string) error {
	if err := s.client.Set(ctx, s.key(token), trackingNumber, s.ttl).Err(); err != nil {
		return fmt.Errorf("share store put: %w", err)
	}
	return nil
}

// Get resolves a token back to its tracking number.
func (s *ShareStore) Get(ctx context.Context, token string) (string, error) {
	trackingNumber, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		return "", fmt.Errorf("share store get: %w", err)
	}
	return trackingNumber, nil
}

func (s *ShareStore) key(token string) string {
	return "share:" + token
}
