package ratelog

import (
	"log"
	"testing"
	"time"
)

func discardLogger() *log.Logger {
	return log.New(discardWriter{}, "", 0)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestLimiterAllowsBurstThenBlocks(t *testing.T) {
	l := New(discardLogger(), time.Second, 2)
	now := time.Now()

	if !l.Allow(now) {
		t.Fatalf("expected first call within burst capacity to be allowed")
	}
	if !l.Allow(now) {
		t.Fatalf("expected second call within burst capacity to be allowed")
	}
	if l.Allow(now) {
		t.Fatalf("expected a third call with no elapsed time to be denied")
	}
}

func TestLimiterRefillsOverTime(t *testing.T) {
	l := New(discardLogger(), time.Second, 1)
	start := time.Now()

	if !l.Allow(start) {
		t.Fatalf("expected the first call to be allowed")
	}
	if l.Allow(start) {
		t.Fatalf("expected the token to be exhausted immediately after")
	}
	if !l.Allow(start.Add(2 * time.Second)) {
		t.Fatalf("expected a token to have refilled after the interval elapsed")
	}
}

func TestLimiterNeverExceedsCapacityAfterLongIdle(t *testing.T) {
	l := New(discardLogger(), time.Second, 2)
	start := time.Now()
	later := start.Add(time.Hour)

	allowed := 0
	for i := 0; i < 5; i++ {
		if l.Allow(later) {
			allowed++
		}
	}
	if allowed != 2 {
		t.Fatalf("expected capacity to cap refilled tokens at 2 regardless of idle duration, got %d allowed", allowed)
	}
}
