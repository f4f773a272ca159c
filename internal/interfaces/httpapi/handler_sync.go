package httpapi

import (
	"net/http"
	"time"

	"github.com/fieldside/clubsync/internal/usecase"
)

type syncLogEntryDTO struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type syncStatsDTO struct {
	PlayersMatched      int `json:"players_matched"`
	AssessmentsAssigned int `json:"assessments_assigned"`
	EvaluationsAssigned int `json:"evaluations_assigned"`
	Errors              int `json:"errors"`
}

type syncReportDTO struct {
	State      string            `json:"state"`
	Progress   int               `json:"progress"`
	Stats      syncStatsDTO      `json:"stats"`
	Log        []syncLogEntryDTO `json:"log"`
	Fatal      bool              `json:"fatal"`
	StartedAt  *time.Time        `json:"started_at,omitempty"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
}

func syncReportToDTO(report usecase.SyncReport) syncReportDTO {
	dto := syncReportDTO{
		State:    string(report.State),
		Progress: report.Progress,
		Stats: syncStatsDTO{
			PlayersMatched:      report.Stats.PlayersMatched,
			AssessmentsAssigned: report.Stats.AssessmentsAssigned,
			EvaluationsAssigned: report.Stats.EvaluationsAssigned,
			Errors:              report.Stats.Errors,
		},
		Log:   make([]syncLogEntryDTO, 0, len(report.Log)),
		Fatal: report.Fatal,
	}
	for _, entry := range report.Log {
		dto.Log = append(dto.Log, syncLogEntryDTO{
			Type:      string(entry.Type),
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
	}
	if !report.StartedAt.IsZero() {
		started := report.StartedAt
		dto.StartedAt = &started
	}
	if !report.FinishedAt.IsZero() {
		finished := report.FinishedAt
		dto.FinishedAt = &finished
	}
	return dto
}

// RunAutoSync accepts the trigger and returns immediately; the run proceeds
// in the background and its report is polled via GetAutoSyncStatus.
func (h *Handler) RunAutoSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoSync")
	defer span.End()

	if err := h.syncService.StartAsync(ctx); err != nil {
		h.logger.WarnContext(ctx, "auto-sync trigger rejected", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "auto-sync triggered")
	writeSuccess(ctx, w, http.StatusAccepted, syncReportToDTO(h.syncService.Status()))
}

func (h *Handler) GetAutoSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAutoSyncStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, syncReportToDTO(h.syncService.Status()))
}
