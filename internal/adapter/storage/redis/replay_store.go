package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayStore implements ports.ReplayGuard using Redis SET NX.
// Keys are derived from a SHA-256 of the signature so raw header values never
// reach Redis.
type ReplayStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewReplayStore creates a Redis-backed replay store.
func NewReplayStore(client goredis.UniversalClient) *ReplayStore {
	return &ReplayStore{
		client: client,
		prefix: "webhook:seen:",
	}
}

// CheckAndSet atomically records signature if it has not been seen.
// Returns true if the signature is new, false if it was already recorded.
func (s *ReplayStore) CheckAndSet(ctx context.Context, signature string, ttl time.Duration) (bool, error) {
	sum := sha256.Sum256([]byte(signature))
	key := s.prefix + hex.EncodeToString(sum[:])

	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis replay check: %w", err)
	}
	return result == "OK", nil
}
