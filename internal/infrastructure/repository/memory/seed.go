package memory

import (
	"time"

	"github.com/fieldside/clubsync/internal/domain/assessment"
	"github.com/fieldside/clubsync/internal/domain/coach"
	"github.com/fieldside/clubsync/internal/domain/evaluation"
	"github.com/fieldside/clubsync/internal/domain/player"
	"github.com/fieldside/clubsync/internal/domain/team"
	"github.com/fieldside/clubsync/internal/domain/tryout"
)

const (
	TeamIDU10Red   = "team-u10-red"
	TeamIDU12Blue  = "team-u12-blue"
	TeamIDU14White = "team-u14-white"
)

// Seed data mirrors a club mid-import: some players still carry free-hand
// team names, and staging collections hold records waiting for a sync run.

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDU10Red, Name: "U10 Red", AgeGroup: "U10", Season: "2026/2027"},
		{ID: TeamIDU12Blue, Name: "U12 Blue", AgeGroup: "U12", Season: "2026/2027"},
		{ID: TeamIDU14White, Name: "U14 White", AgeGroup: "U14", Season: "2026/2027"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-001", FullName: "Alex Smith", TeamID: TeamIDU12Blue},
		{ID: "pl-002", FullName: "Jordan Lee", TeamID: "", TeamName: "U12 Blue"},
		{ID: "pl-003", FullName: "Sam Carter", TeamID: "U10 Red"},
		{ID: "pl-004", FullName: "Riley Nguyen", TeamID: TeamIDU10Red},
		{ID: "pl-005", FullName: "Casey Alvarez", TeamID: "", TeamName: "U14 White"},
		{ID: "pl-006", FullName: "Morgan Diaz", TeamID: TeamIDU14White},
	}
}

func SeedCoaches() []coach.Coach {
	return []coach.Coach{
		{ID: "co-001", FullName: "Dana Brooks", TeamID: TeamIDU10Red, Role: "Head Coach"},
		{ID: "co-002", FullName: "Pat Okafor", TeamID: TeamIDU12Blue, Role: "Head Coach"},
		{ID: "co-003", FullName: "Robin Castillo", TeamID: TeamIDU12Blue, Role: "Assistant Coach"},
		{ID: "co-004", FullName: "Jamie Fontaine", TeamID: TeamIDU14White, Role: "Head Coach"},
	}
}

func SeedAssessments() []assessment.PhysicalAssessment {
	return []assessment.PhysicalAssessment{
		{
			ID: "pa-seed-1", PlayerID: "pl-001", TeamID: TeamIDU12Blue, PlayerName: "Alex Smith",
			AssessmentDate: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
			Sprint:         4.9, Vertical: 38, Yirt: 920, Shuttle: 5.4,
			SpeedScore: 70, PowerScore: 63, EnduranceScore: 58, AgilityScore: 70,
		},
	}
}

func SeedUnassignedEvaluations() []evaluation.Unassigned {
	return []evaluation.Unassigned{
		{
			ID: "uev-seed-1", PlayerName: "jordan lee",
			EvaluationDate: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
			EvaluatorName:  "Pat Okafor",
			GrowthMindset:  4, Coachability: 5, Effort: 4, Technique: 3, GameAwareness: 3, Teamwork: 4,
			PlayerStrengths: "First touch under pressure", AreasOfGrowth: "Weak-foot passing",
			TrainingFocus: "Rondo repetitions",
		},
		{
			ID: "uev-seed-2", PlayerName: "Riley N.",
			EvaluationDate: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
			EvaluatorName:  "Dana Brooks",
			GrowthMindset:  3, Coachability: 4, Effort: 5, Technique: 3, GameAwareness: 2, Teamwork: 5,
			Strengths: "Relentless work rate", AreasForImprovement: "Positioning off the ball",
		},
	}
}

func SeedUnassignedAssessments() []assessment.Unassigned {
	return []assessment.Unassigned{
		{
			ID: "upa-seed-1", PlayerName: "Casey Alvarez",
			SprintTime: 4.6, VerticalJump: 41, Endurance: 75, Agility: 68,
			Notes: "Spring combine, station 3",
		},
		{
			ID: "upa-seed-2", PlayerName: "Taylor Quinn",
			SprintTime: 5.2, VerticalJump: 33, Endurance: 60, Agility: 55,
		},
	}
}

func SeedTryouts() []tryout.Tryout {
	return []tryout.Tryout{
		{ID: "try-001", PlayerName: "Alex Smith", Position: "Midfield", Rank: 2, RecommendedGroup: "U12"},
		{ID: "try-002", PlayerName: "Morgan Diaz", Position: "Defense", Rank: 5, RecommendedGroup: "U14"},
		{ID: "try-003", PlayerName: "Drew Hollis", Position: "Goalkeeper", Rank: 9, RecommendedGroup: "U10"},
	}
}
