package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrExpired         = errors.New("otp expired or not found")
	ErrInvalid         = errors.New("otp does not match")
	ErrTooManyAttempts = errors.New("too many otp attempts")
)

const codeLength = 6

// GenerateCode returns a 6-digit numeric one-time code.
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}

	return fmt.Sprintf("%0*d", codeLength, n), nil
}

// Store keeps issued codes in redis, hashed with bcrypt, under a TTL. A
// bounded attempt counter guards against brute force.
type Store struct {
	rdb         *redis.Client
	ttl         time.Duration
	maxAttempts int
}

func NewStore(rdb *redis.Client, ttl time.Duration, maxAttempts int) *Store {
	return &Store{rdb: rdb, ttl: ttl, maxAttempts: maxAttempts}
}

func codeKey(email string) string     { return "otp:" + email }
func attemptsKey(email string) string { return "otp_attempts:" + email }

// Issue generates and stores a code for email, remembering the role the
// caller asked to sign in as. Returns the cleartext code for delivery.
func (s *Store) Issue(ctx context.Context, email, role string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash otp: %w", err)
	}

	key := codeKey(email)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, "hash", string(hash), "role", role)
	pipe.Expire(ctx, key, s.ttl)
	pipe.Del(ctx, attemptsKey(email))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	return code, nil
}

// Verify checks the provided code and, on success, consumes the stored entry
// and returns the role recorded at issue time.
func (s *Store) Verify(ctx context.Context, email, code string) (string, error) {
	key := codeKey(email)

	fields, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to read otp: %w", err)
	}
	if len(fields) == 0 {
		return "", ErrExpired
	}

	attempts, err := s.rdb.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to count otp attempt: %w", err)
	}
	s.rdb.Expire(ctx, attemptsKey(email), s.ttl)

	if attempts > int64(s.maxAttempts) {
		s.rdb.Del(ctx, key, attemptsKey(email))
		return "", ErrTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(fields["hash"]), []byte(code)) != nil {
		return "", ErrInvalid
	}

	s.rdb.Del(ctx, key, attemptsKey(email))
	return fields["role"], nil
}
