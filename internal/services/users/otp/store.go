package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps one-time codes in Redis under a per-email key with a TTL, so
// codes expire instead of accumulating in process memory.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func key(email string) string { return "otp:" + email }

// Issue generates a 6-digit code and stores it, replacing any previous code
// for the same email.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)

	if err := s.rdb.Set(ctx, key(email), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}
	return code, nil
}

// Verify consumes the stored code; a code can only be used once.
func (s *Store) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.GetDel(ctx, key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read otp: %w", err)
	}
	return stored == code, nil
}
