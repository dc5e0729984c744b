package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	t.Parallel()

	p := RetryPolicy{MaxRetries: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond}
	cases := map[int]time.Duration{
		1: 100 * time.Millisecond,
		2: 200 * time.Millisecond,
		3: 300 * time.Millisecond,
		4: 300 * time.Millisecond,
	}
	for attempt, want := range cases {
		if got := p.Backoff(attempt); got != want {
			t.Fatalf("attempt %d: got %s want %s", attempt, got, want)
		}
	}
}

func TestRetry_StopsOnSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 3, BaseDelay: time.Millisecond}, nil, func(context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestRetry_ZeroRetriesIsSingleAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	boom := errors.New("boom")
	err := Retry(context.Background(), RetryPolicy{}, nil, func(context.Context) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestRetry_NonRetryableReturnsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	fatal := errors.New("fatal")
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 4, BaseDelay: time.Millisecond}, func(err error) bool {
		return !errors.Is(err, fatal)
	}, func(context.Context) error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) || calls != 1 {
		t.Fatalf("expected single fatal call, got calls=%d err=%v", calls, err)
	}
}
