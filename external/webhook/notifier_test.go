package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/fieldside/clubsync/internal/platform/resilience"
	"github.com/fieldside/clubsync/internal/usecase"
)

func sampleReport() usecase.SyncReport {
	return usecase.SyncReport{
		State:    usecase.SyncStateCompleted,
		Progress: 100,
		Stats: usecase.SyncStats{
			PlayersMatched:      2,
			EvaluationsAssigned: 1,
			AssessmentsAssigned: 1,
		},
		StartedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 3, 1, 9, 0, 3, 0, time.UTC),
	}
}

func TestNotifier_DeliversReport(t *testing.T) {
	var gotSecret string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Webhook-Secret")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewNotifier(NotifierConfig{
		URL:    server.URL,
		Secret: "hush",
	}, nil)

	if err := notifier.NotifyRunCompleted(context.Background(), sampleReport()); err != nil {
		t.Fatalf("NotifyRunCompleted returned error: %v", err)
	}
	if gotSecret != "hush" {
		t.Fatalf("secret header = %q, want %q", gotSecret, "hush")
	}

	var payload struct {
		Event  string             `json:"event"`
		Report usecase.SyncReport `json:"report"`
	}
	if err := sonic.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Event != "sync.run.completed" {
		t.Fatalf("event = %q, want sync.run.completed", payload.Event)
	}
	if payload.Report.Stats.PlayersMatched != 2 {
		t.Fatalf("players matched = %d, want 2", payload.Report.Stats.PlayersMatched)
	}
}

func TestNotifier_ServerErrorIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "downstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewNotifier(NotifierConfig{URL: server.URL}, nil)

	err := notifier.NotifyRunCompleted(context.Background(), sampleReport())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("error %q does not mention status", err)
	}
}

func TestNotifier_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	notifier := NewNotifier(NotifierConfig{
		URL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, nil)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := notifier.NotifyRunCompleted(ctx, sampleReport()); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	err := notifier.NotifyRunCompleted(ctx, sampleReport())
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("server saw %d calls, want 2", got)
	}
}

func TestNotifier_RejectsInvalidURL(t *testing.T) {
	notifier := NewNotifier(NotifierConfig{URL: "ftp://example.com/hook"}, nil)

	if err := notifier.NotifyRunCompleted(context.Background(), sampleReport()); err == nil {
		t.Fatal("expected error for non-http url")
	}
}

func TestNotifier_BadRequestDoesNotTripCircuit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	notifier := NewNotifier(NotifierConfig{
		URL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, nil)

	ctx := context.Background()
	_ = notifier.NotifyRunCompleted(ctx, sampleReport())
	_ = notifier.NotifyRunCompleted(ctx, sampleReport())

	if got := notifier.breaker.State(); got != resilience.CircuitStateClosed {
		t.Fatalf("breaker state = %q, want closed", got)
	}
}
