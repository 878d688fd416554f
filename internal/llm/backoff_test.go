// ABOUTME: Tests for retry backoff calculation
// ABOUTME: Validates exponential growth, caps, and jitter bounds
package llm

import (
	"testing"
	"time"
)

func TestBackoffDelay_ZeroAttempt(t *testing.T) {
	if result := backoffDelay(time.Second, 0); result != 0 {
		t.Errorf("expected 0 for attempt 0, got %v", result)
	}
	if result := backoffDelay(time.Second, -1); result != 0 {
		t.Errorf("expected 0 for negative attempt, got %v", result)
	}
}

func TestBackoffDelay_ZeroBaseDelay(t *testing.T) {
	if result := backoffDelay(0, 3); result != 0 {
		t.Errorf("expected 0 for zero base delay, got %v", result)
	}
}

func TestBackoffDelay_ExponentialGrowth(t *testing.T) {
	baseDelay := 100 * time.Millisecond

	for attempt := 1; attempt <= 5; attempt++ {
		// Expected base: 2^attempt * 100ms, with ±25% jitter
		expectedBase := baseDelay * time.Duration(1<<uint(attempt))
		minExpected := expectedBase * 3 / 4
		maxExpected := expectedBase * 5 / 4

		result := backoffDelay(baseDelay, attempt)

		if result < minExpected || result > maxExpected {
			t.Errorf("attempt %d: expected backoff between %v and %v, got %v",
				attempt, minExpected, maxExpected, result)
		}
	}
}

func TestBackoffDelay_CapsAt30Seconds(t *testing.T) {
	// Attempt 10 would give 2^10 * 1s = 1024s without the cap
	result := backoffDelay(time.Second, 10)

	maxAllowed := 37500 * time.Millisecond
	if result > maxAllowed {
		t.Errorf("expected backoff <= %v (30s + 25%% jitter), got %v", maxAllowed, result)
	}
}

func TestBackoffDelay_HighAttemptDoesNotOverflow(t *testing.T) {
	result := backoffDelay(time.Millisecond, 100)

	maxAllowed := 37500 * time.Millisecond
	if result > maxAllowed {
		t.Errorf("expected backoff <= %v for high attempt, got %v", maxAllowed, result)
	}
	if result < 0 {
		t.Error("backoff should never be negative")
	}
}

func TestBackoffDelay_JitterVaries(t *testing.T) {
	baseDelay := time.Second
	attempt := 2 // 2^2 * 1s = 4s base

	var results []time.Duration
	for i := 0; i < 100; i++ {
		results = append(results, backoffDelay(baseDelay, attempt))
	}

	allSame := true
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("jitter should produce varying results, but all 100 samples were identical")
	}

	for i, r := range results {
		if r < 3*time.Second || r > 5*time.Second {
			t.Errorf("sample %d: expected between 3s and 5s, got %v", i, r)
		}
	}
}
