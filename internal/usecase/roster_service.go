package usecase

import (
	"context"
	"fmt"

	"github.com/fieldside/clubsync/internal/domain/coach"
	"github.com/fieldside/clubsync/internal/domain/player"
	"github.com/fieldside/clubsync/internal/domain/team"
	"github.com/fieldside/clubsync/internal/domain/tryout"
)

// TeamRoster is the dashboard view of one squad: the team itself plus its
// current players and coaching staff.
type TeamRoster struct {
	Team    team.Team
	Players []player.Player
	Coaches []coach.Coach
}

type RosterService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	coachRepo  coach.Repository
	tryoutRepo tryout.Repository
}

func NewRosterService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	coachRepo coach.Repository,
	tryoutRepo tryout.Repository,
) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		tryoutRepo: tryoutRepo,
	}
}

func (s *RosterService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *RosterService) GetTeamRoster(ctx context.Context, teamID string) (TeamRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetTeamRoster")
	defer span.End()

	if teamID == "" {
		return TeamRoster{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return TeamRoster{}, fmt.Errorf("list teams: %w", err)
	}

	var selected team.Team
	found := false
	for _, t := range teams {
		if t.ID == teamID {
			selected = t
			found = true
			break
		}
	}
	if !found {
		return TeamRoster{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return TeamRoster{}, fmt.Errorf("list players: %w", err)
	}
	roster := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.TeamID == teamID {
			roster = append(roster, p)
		}
	}

	coaches, err := s.coachRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamRoster{}, fmt.Errorf("list coaches: %w", err)
	}

	return TeamRoster{Team: selected, Players: roster, Coaches: coaches}, nil
}

func (s *RosterService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *RosterService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetPlayer")
	defer span.End()

	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	return p, nil
}

func (s *RosterService) ListTryouts(ctx context.Context) ([]tryout.Tryout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListTryouts")
	defer span.End()

	tryouts, err := s.tryoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tryouts: %w", err)
	}
	return tryouts, nil
}
