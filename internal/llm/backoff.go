// ABOUTME: Exponential backoff with jitter for API retry delays
// ABOUTME: Doubles the base delay per attempt, capped at 30 seconds
package llm

import (
	"math/rand/v2"
	"time"
)

// backoffDelay returns the wait before the given retry attempt.
// The base delay is doubled each attempt, with random jitter up to 25%.
func backoffDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 || baseDelay <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	// Jitter: -25% to +25% using auto-seeded math/rand/v2
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
