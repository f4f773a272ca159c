package httpapi

import (
	"net/http"
	"time"

	"github.com/fieldside/clubsync/internal/domain/assessment"
	"github.com/fieldside/clubsync/internal/domain/coach"
	"github.com/fieldside/clubsync/internal/domain/evaluation"
	"github.com/fieldside/clubsync/internal/domain/player"
	"github.com/fieldside/clubsync/internal/domain/team"
	"github.com/fieldside/clubsync/internal/domain/tryout"
)

type teamDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AgeGroup string `json:"age_group"`
	Season   string `json:"season"`
}

type playerDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

type coachDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	TeamID   string `json:"team_id"`
	Role     string `json:"role"`
}

type teamRosterDTO struct {
	Team    teamDTO     `json:"team"`
	Players []playerDTO `json:"players"`
	Coaches []coachDTO  `json:"coaches"`
}

type tryoutDTO struct {
	ID               string `json:"id"`
	PlayerID         string `json:"player_id,omitempty"`
	PlayerName       string `json:"player_name"`
	Position         string `json:"position"`
	Rank             int    `json:"rank"`
	RecommendedGroup string `json:"recommended_group"`
}

type evaluationDTO struct {
	ID             string    `json:"id"`
	PlayerID       string    `json:"player_id"`
	EvaluationDate time.Time `json:"evaluation_date"`
	EvaluatorName  string    `json:"evaluator_name"`

	GrowthMindset int `json:"growth_mindset"`
	Coachability  int `json:"coachability"`
	Effort        int `json:"effort"`
	Technique     int `json:"technique"`
	GameAwareness int `json:"game_awareness"`
	Teamwork      int `json:"teamwork"`

	PlayerStrengths string `json:"player_strengths,omitempty"`
	AreasOfGrowth   string `json:"areas_of_growth,omitempty"`
	TrainingFocus   string `json:"training_focus,omitempty"`
}

type assessmentDTO struct {
	ID             string    `json:"id"`
	PlayerID       string    `json:"player_id"`
	TeamID         string    `json:"team_id,omitempty"`
	PlayerName     string    `json:"player_name"`
	AssessmentDate time.Time `json:"assessment_date"`

	Sprint   float64 `json:"sprint"`
	Vertical float64 `json:"vertical"`
	Yirt     float64 `json:"yirt"`
	Shuttle  float64 `json:"shuttle"`

	SpeedScore     float64 `json:"speed_score"`
	PowerScore     float64 `json:"power_score"`
	EnduranceScore float64 `json:"endurance_score"`
	AgilityScore   float64 `json:"agility_score"`

	Notes string `json:"notes,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, AgeGroup: t.AgeGroup, Season: t.Season}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{ID: p.ID, FullName: p.FullName, TeamID: p.TeamID, TeamName: p.TeamName}
}

func coachToDTO(c coach.Coach) coachDTO {
	return coachDTO{ID: c.ID, FullName: c.FullName, TeamID: c.TeamID, Role: c.Role}
}

func tryoutToDTO(t tryout.Tryout) tryoutDTO {
	return tryoutDTO{
		ID:               t.ID,
		PlayerID:         t.PlayerID,
		PlayerName:       t.PlayerName,
		Position:         t.Position,
		Rank:             t.Rank,
		RecommendedGroup: t.RecommendedGroup,
	}
}

func evaluationToDTO(e evaluation.Evaluation) evaluationDTO {
	return evaluationDTO{
		ID:             e.ID,
		PlayerID:       e.PlayerID,
		EvaluationDate: e.EvaluationDate,
		EvaluatorName:  e.EvaluatorName,

		GrowthMindset: e.GrowthMindset,
		Coachability:  e.Coachability,
		Effort:        e.Effort,
		Technique:     e.Technique,
		GameAwareness: e.GameAwareness,
		Teamwork:      e.Teamwork,

		PlayerStrengths: e.PlayerStrengths,
		AreasOfGrowth:   e.AreasOfGrowth,
		TrainingFocus:   e.TrainingFocus,
	}
}

func assessmentToDTO(a assessment.PhysicalAssessment) assessmentDTO {
	return assessmentDTO{
		ID:             a.ID,
		PlayerID:       a.PlayerID,
		TeamID:         a.TeamID,
		PlayerName:     a.PlayerName,
		AssessmentDate: a.AssessmentDate,

		Sprint:   a.Sprint,
		Vertical: a.Vertical,
		Yirt:     a.Yirt,
		Shuttle:  a.Shuttle,

		SpeedScore:     a.SpeedScore,
		PowerScore:     a.PowerScore,
		EnduranceScore: a.EnduranceScore,
		AgilityScore:   a.AgilityScore,

		Notes: a.Notes,
	}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.rosterService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	teamID := r.PathValue("teamID")
	roster, err := h.rosterService.GetTeamRoster(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team roster failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := teamRosterDTO{
		Team:    teamToDTO(roster.Team),
		Players: make([]playerDTO, 0, len(roster.Players)),
		Coaches: make([]coachDTO, 0, len(roster.Coaches)),
	}
	for _, p := range roster.Players {
		dto.Players = append(dto.Players, playerToDTO(p))
	}
	for _, c := range roster.Coaches {
		dto.Coaches = append(dto.Coaches, coachToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.rosterService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayerEvaluations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerEvaluations")
	defer span.End()

	playerID := r.PathValue("playerID")
	evaluations, err := h.evaluationService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player evaluations failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]evaluationDTO, 0, len(evaluations))
	for _, e := range evaluations {
		items = append(items, evaluationToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayerAssessments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerAssessments")
	defer span.End()

	playerID := r.PathValue("playerID")
	assessments, err := h.assessmentService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player assessments failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]assessmentDTO, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, assessmentToDTO(a))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTryouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTryouts")
	defer span.End()

	tryouts, err := h.rosterService.ListTryouts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tryouts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tryoutDTO, 0, len(tryouts))
	for _, t := range tryouts {
		items = append(items, tryoutToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
