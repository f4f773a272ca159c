package usecase

import (
	"testing"
	"time"

	"github.com/fieldside/clubsync/internal/platform/logging"
)

func TestSyncScheduler_RunsOnInterval(t *testing.T) {
	service, _, _ := newTestSyncService(nil, nil, nil, nil, nil)
	scheduler := NewSyncScheduler(service, 10*time.Millisecond, logging.NewNop())

	scheduler.Start(t.Context())
	defer scheduler.Stop()

	deadline := time.After(2 * time.Second)
	for service.Status().State != SyncStateCompleted {
		select {
		case <-deadline:
			t.Fatal("scheduler never triggered a run")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestSyncScheduler_DisabledWithoutInterval(t *testing.T) {
	service, _, _ := newTestSyncService(nil, nil, nil, nil, nil)
	scheduler := NewSyncScheduler(service, 0, logging.NewNop())

	scheduler.Start(t.Context())
	scheduler.Stop()

	if got := service.Status().State; got != SyncStateIdle {
		t.Fatalf("expected engine untouched, got state %s", got)
	}
}
