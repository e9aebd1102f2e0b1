package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	var delays []time.Duration

	v, err := Do(context.Background(), Config{
		Attempts: 3,
		Delay:    5 * time.Second,
		Sleep:    func(d time.Duration) { delays = append(delays, d) },
	}, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ok" {
		t.Errorf("expected ok, got %q", v)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if len(delays) != 2 || delays[0] != 5*time.Second {
		t.Errorf("expected two 5s delays, got %v", delays)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	var observed []int
	wantErr := errors.New("always fails")

	v, err := Do(context.Background(), Config{
		Attempts:         3,
		Sleep:            func(time.Duration) {},
		OnAttemptFailure: func(attempt int, err error) { observed = append(observed, attempt) },
	}, func(ctx context.Context) (int, error) {
		calls++
		return 42, wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the last error, got %v", err)
	}
	if v != 0 {
		t.Errorf("expected zero value, got %d", v)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if len(observed) != 3 || observed[0] != 1 || observed[2] != 3 {
		t.Errorf("expected failure callbacks for attempts 1..3, got %v", observed)
	}
}

func TestDoNonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	fatal := errors.New("fatal")

	_, err := Do(context.Background(), Config{
		Attempts:  5,
		Sleep:     func(time.Duration) {},
		Retryable: func(err error) bool { return !errors.Is(err, fatal) },
	}, func(ctx context.Context) (string, error) {
		calls++
		return "", fatal
	})

	if !errors.Is(err, fatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDoZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0
	v, err := Do(context.Background(), Config{}, func(ctx context.Context) (int, error) {
		calls++
		return 7, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 || calls != 1 {
		t.Errorf("expected one successful call returning 7, got %d after %d calls", v, calls)
	}
}

func TestDoStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := Do(ctx, Config{
		Attempts: 3,
		Sleep:    func(time.Duration) { t.Fatal("should not sleep after cancel") },
	}, func(ctx context.Context) (string, error) {
		calls++
		cancel()
		return "", errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}
