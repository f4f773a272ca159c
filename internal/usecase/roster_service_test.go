package usecase

import (
	"errors"
	"testing"

	"github.com/fieldside/clubsync/internal/infrastructure/repository/memory"
)

func newTestRosterService() *RosterService {
	return NewRosterService(
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewCoachRepository(memory.SeedCoaches()),
		memory.NewTryoutRepository(memory.SeedTryouts()),
	)
}

func TestRosterService_GetTeamRoster(t *testing.T) {
	service := newTestRosterService()

	roster, err := service.GetTeamRoster(t.Context(), memory.TeamIDU12Blue)
	if err != nil {
		t.Fatalf("get team roster: %v", err)
	}

	if roster.Team.Name != "U12 Blue" {
		t.Fatalf("expected U12 Blue, got %q", roster.Team.Name)
	}
	// Only pl-001 carries the real team id in seed data; pl-002 still has a
	// free-hand name and joins the roster after a sync run.
	if len(roster.Players) != 1 || roster.Players[0].ID != "pl-001" {
		t.Fatalf("unexpected roster players: %+v", roster.Players)
	}
	if len(roster.Coaches) != 2 {
		t.Fatalf("expected 2 coaches for U12 Blue, got %d", len(roster.Coaches))
	}
}

func TestRosterService_GetTeamRosterUnknownTeam(t *testing.T) {
	service := newTestRosterService()

	_, err := service.GetTeamRoster(t.Context(), "team-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_GetPlayer(t *testing.T) {
	service := newTestRosterService()

	p, err := service.GetPlayer(t.Context(), "pl-001")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.FullName != "Alex Smith" {
		t.Fatalf("expected Alex Smith, got %q", p.FullName)
	}

	if _, err := service.GetPlayer(t.Context(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
	if _, err := service.GetPlayer(t.Context(), "pl-999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
