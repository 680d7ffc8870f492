package storage

import (
	"context"
	"time"
)

const (
	maxAttempts = 3
	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 5 * time.Second
)

// withRetry runs fn up to maxAttempts times with exponential backoff capped
// at maxBackoff. The last error wins.
func withRetry(ctx context.Context, fn func() error) error {
	var err error

	backoff := baseBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return err
}
