package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/fieldside/clubsync/internal/usecase"
)

type captureEvaluationRequest struct {
	PlayerName     string     `json:"player_name" validate:"required,max=200"`
	EvaluationDate *time.Time `json:"evaluation_date"`
	EvaluatorName  string     `json:"evaluator_name" validate:"omitempty,max=200"`

	GrowthMindset int `json:"growth_mindset" validate:"gte=0,lte=10"`
	Coachability  int `json:"coachability" validate:"gte=0,lte=10"`
	Effort        int `json:"effort" validate:"gte=0,lte=10"`
	Technique     int `json:"technique" validate:"gte=0,lte=10"`
	GameAwareness int `json:"game_awareness" validate:"gte=0,lte=10"`
	Teamwork      int `json:"teamwork" validate:"gte=0,lte=10"`

	PlayerStrengths string `json:"player_strengths" validate:"omitempty,max=2000"`
	AreasOfGrowth   string `json:"areas_of_growth" validate:"omitempty,max=2000"`
	TrainingFocus   string `json:"training_focus" validate:"omitempty,max=2000"`
}

type captureAssessmentRequest struct {
	PlayerName string `json:"player_name" validate:"required,max=200"`

	SprintTime   float64 `json:"sprint_time" validate:"gte=0"`
	VerticalJump float64 `json:"vertical_jump" validate:"gte=0"`
	Endurance    float64 `json:"endurance" validate:"gte=0"`
	Agility      float64 `json:"agility" validate:"gte=0"`
	Speed        float64 `json:"speed" validate:"gte=0,lte=100"`
	Power        float64 `json:"power" validate:"gte=0,lte=100"`

	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

type capturedRecordDTO struct {
	ID         string `json:"id"`
	PlayerName string `json:"player_name"`
	Assigned   bool   `json:"assigned"`
}

func (h *Handler) CaptureEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CaptureEvaluation")
	defer span.End()

	var req captureEvaluationRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CaptureEvaluationInput{
		PlayerName:    req.PlayerName,
		EvaluatorName: req.EvaluatorName,

		GrowthMindset: req.GrowthMindset,
		Coachability:  req.Coachability,
		Effort:        req.Effort,
		Technique:     req.Technique,
		GameAwareness: req.GameAwareness,
		Teamwork:      req.Teamwork,

		PlayerStrengths: req.PlayerStrengths,
		AreasOfGrowth:   req.AreasOfGrowth,
		TrainingFocus:   req.TrainingFocus,
	}
	if req.EvaluationDate != nil {
		input.EvaluationDate = *req.EvaluationDate
	}

	created, err := h.evaluationService.CaptureUnassigned(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "capture evaluation failed", "player_name", req.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, capturedRecordDTO{
		ID:         created.ID,
		PlayerName: created.PlayerName,
		Assigned:   created.Assigned,
	})
}

func (h *Handler) CaptureAssessment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CaptureAssessment")
	defer span.End()

	var req captureAssessmentRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.assessmentService.CaptureUnassigned(ctx, usecase.CaptureAssessmentInput{
		PlayerName: req.PlayerName,

		SprintTime:   req.SprintTime,
		VerticalJump: req.VerticalJump,
		Endurance:    req.Endurance,
		Agility:      req.Agility,
		Speed:        req.Speed,
		Power:        req.Power,

		Notes: req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "capture assessment failed", "player_name", req.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, capturedRecordDTO{
		ID:         created.ID,
		PlayerName: created.PlayerName,
		Assigned:   created.Assigned,
	})
}
