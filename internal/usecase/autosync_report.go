package usecase

import (
	"sync"
	"time"
)

// SyncLogType classifies one auto-sync log line.
type SyncLogType string

const (
	SyncLogInfo    SyncLogType = "info"
	SyncLogSuccess SyncLogType = "success"
	SyncLogWarning SyncLogType = "warning"
	SyncLogError   SyncLogType = "error"
)

type SyncLogEntry struct {
	Type      SyncLogType `json:"type"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

type SyncStats struct {
	PlayersMatched      int `json:"players_matched"`
	AssessmentsAssigned int `json:"assessments_assigned"`
	EvaluationsAssigned int `json:"evaluations_assigned"`
	Errors              int `json:"errors"`
}

// SyncState is the lifecycle of the most recent run.
type SyncState string

const (
	SyncStateIdle      SyncState = "idle"
	SyncStateRunning   SyncState = "running"
	SyncStateCompleted SyncState = "completed"
	SyncStateFailed    SyncState = "failed"
)

// SyncReport is the explicit run-result value of one auto-sync run. Fatal is
// true only when the initial fetch failed and no stage executed; per-record
// failures are carried in Stats.Errors and the log instead.
type SyncReport struct {
	State      SyncState      `json:"state"`
	Progress   int            `json:"progress"`
	Stats      SyncStats      `json:"stats"`
	Log        []SyncLogEntry `json:"log"`
	Fatal      bool           `json:"fatal"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
}

// Stage weights sum to 100: initial fetch, four linking stages, final sweep.
const (
	syncWeightFetch      = 10
	syncWeightStage      = 20
	syncWeightFinalSweep = 10
)

// runTracker accumulates one run's observable state. Progress is clamped to
// be non-decreasing; Snapshot copies are safe to hand to concurrent readers.
type runTracker struct {
	mu         sync.Mutex
	report     SyncReport
	onProgress func(int)
	now        func() time.Time
}

func newRunTracker(now func() time.Time, onProgress func(int)) *runTracker {
	t := &runTracker{onProgress: onProgress, now: now}
	t.report = SyncReport{
		State:     SyncStateRunning,
		Log:       []SyncLogEntry{},
		StartedAt: now(),
	}
	return t
}

func (t *runTracker) log(kind SyncLogType, message string) {
	t.mu.Lock()
	t.report.Log = append(t.report.Log, SyncLogEntry{
		Type:      kind,
		Message:   message,
		Timestamp: t.now(),
	})
	t.mu.Unlock()
}

func (t *runTracker) addError() {
	t.mu.Lock()
	t.report.Stats.Errors++
	t.mu.Unlock()
}

func (t *runTracker) setProgress(pct int) {
	t.mu.Lock()
	if pct > 100 {
		pct = 100
	}
	if pct > t.report.Progress {
		t.report.Progress = pct
	}
	current := t.report.Progress
	callback := t.onProgress
	t.mu.Unlock()

	if callback != nil {
		callback(current)
	}
}

// stageProgress reports progress inside one stage: base + (index/total)*weight.
func (t *runTracker) stageProgress(base, weight, index, total int) {
	if total <= 0 {
		t.setProgress(base + weight)
		return
	}
	t.setProgress(base + index*weight/total)
}

func (t *runTracker) mutateStats(fn func(*SyncStats)) {
	t.mu.Lock()
	fn(&t.report.Stats)
	t.mu.Unlock()
}

func (t *runTracker) snapshot() SyncReport {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.copyReportLocked()
}

func (t *runTracker) finish(state SyncState, fatal bool) SyncReport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.report.State = state
	t.report.Fatal = fatal
	t.report.FinishedAt = t.now()
	return t.copyReportLocked()
}

func (t *runTracker) copyReportLocked() SyncReport {
	out := t.report
	out.Log = make([]SyncLogEntry, len(t.report.Log))
	copy(out.Log, t.report.Log)
	return out
}
