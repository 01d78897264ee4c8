package meili

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestIsRetryable(t *testing.T) {
	base := errors.New("boom")
	if IsRetryable(base) {
		t.Error("plain error should not be retryable")
	}

	retryable := &RetryableError{Status: 503, Err: base}
	if !IsRetryable(retryable) {
		t.Error("RetryableError should be retryable")
	}
	if !IsRetryable(fmt.Errorf("import batch 2: %w", retryable)) {
		t.Error("wrapped RetryableError should be retryable")
	}
	if !errors.Is(retryable, base) {
		t.Error("RetryableError should unwrap to its cause")
	}
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	prevMax := time.Duration(0)
	for attempt := range 10 {
		d := Backoff(attempt)
		if d <= 0 {
			t.Fatalf("attempt %d: non-positive backoff %v", attempt, d)
		}
		// Base caps at 30s; jitter adds at most half the base on top.
		if d > 45*time.Second {
			t.Fatalf("attempt %d: backoff %v exceeds cap", attempt, d)
		}
		if d > prevMax {
			prevMax = d
		}
	}
	if prevMax < 2*time.Second {
		t.Errorf("expected backoff to grow past its base, max seen %v", prevMax)
	}
}
