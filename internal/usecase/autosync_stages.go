package usecase

import (
	"context"
	"fmt"

	"github.com/fieldside/clubsync/internal/domain/assessment"
	"github.com/fieldside/clubsync/internal/domain/evaluation"
	"github.com/fieldside/clubsync/internal/platform/matching"
)

// teamCandidates builds the matcher input from the team snapshot. Teams with
// blank names are kept in place (the matcher skips them) so Result.Index maps
// straight back into the slice.
func teamCandidates(snap *syncSnapshot) []matching.Candidate {
	out := make([]matching.Candidate, len(snap.Teams))
	for i, t := range snap.Teams {
		out[i] = matching.Candidate{ID: t.ID, Name: t.Name}
	}
	return out
}

func playerCandidates(snap *syncSnapshot) []matching.Candidate {
	out := make([]matching.Candidate, len(snap.Players))
	for i, p := range snap.Players {
		out[i] = matching.Candidate{ID: p.ID, Name: p.FullName}
	}
	return out
}

// linkPlayersToTeams resolves players whose team reference is a free-hand
// name rather than a real team id. A player whose team_id already names an
// existing team is never touched, even if its team_name would match another
// team. Repairs are threaded into the snapshot so later stages see them.
func (s *AutoSyncService) linkPlayersToTeams(ctx context.Context, snap *syncSnapshot, tracker *runTracker, base int) {
	teamIDs := make(map[string]struct{}, len(snap.Teams))
	for _, t := range snap.Teams {
		teamIDs[t.ID] = struct{}{}
	}
	candidates := teamCandidates(snap)

	total := len(snap.Players)
	for i := range snap.Players {
		p := snap.Players[i]
		tracker.stageProgress(base, syncWeightStage, i+1, total)

		if _, ok := teamIDs[p.TeamID]; ok {
			continue
		}

		for _, query := range []string{p.TeamID, p.TeamName} {
			if query == "" {
				continue
			}
			res := s.matcher.Match(query, candidates)
			if !res.Matched() {
				continue
			}

			if err := s.players.UpdateTeamID(ctx, p.ID, res.Candidate.ID); err != nil {
				tracker.log(SyncLogError, fmt.Sprintf("failed to link player %q to team %q: %v", p.FullName, res.Candidate.Name, err))
				tracker.addError()
				break
			}
			snap.Players[i].TeamID = res.Candidate.ID
			tracker.mutateStats(func(st *SyncStats) { st.PlayersMatched++ })
			tracker.log(SyncLogSuccess, fmt.Sprintf("linked player %q to team %q (%s match)", p.FullName, res.Candidate.Name, res.Confidence))
			break
		}
	}
}

// promoteUnassignedEvaluations turns staging evaluations into canonical ones
// owned by a matched player. The create is guarded by a source-id existence
// check so a re-run after a lost flag update repairs the flag instead of
// creating a duplicate. Both the create and the flag update must succeed for
// the record to count; a failure at either step leaves it eligible next run.
func (s *AutoSyncService) promoteUnassignedEvaluations(ctx context.Context, snap *syncSnapshot, tracker *runTracker, base int) {
	candidates := playerCandidates(snap)

	total := len(snap.Unevals)
	for i, staged := range snap.Unevals {
		tracker.stageProgress(base, syncWeightStage, i+1, total)

		if staged.Assigned {
			continue
		}

		res := s.matcher.Match(staged.PlayerName, candidates)
		if !res.Matched() {
			tracker.log(SyncLogWarning, fmt.Sprintf("no player found for evaluation of %q", staged.PlayerName))
			continue
		}
		matched := snap.Players[res.Index]

		exists, err := s.evaluations.ExistsForSource(ctx, staged.ID)
		if err != nil {
			tracker.log(SyncLogError, fmt.Sprintf("failed to check evaluation for %q: %v", staged.PlayerName, err))
			tracker.addError()
			continue
		}
		if !exists {
			item := evaluation.Evaluation{
				PlayerID:       matched.ID,
				SourceID:       staged.ID,
				EvaluationDate: staged.EvaluationDate,
				EvaluatorName:  staged.EvaluatorName,

				GrowthMindset: staged.GrowthMindset,
				Coachability:  staged.Coachability,
				Effort:        staged.Effort,
				Technique:     staged.Technique,
				GameAwareness: staged.GameAwareness,
				Teamwork:      staged.Teamwork,

				PlayerStrengths: staged.StrengthsText(),
				AreasOfGrowth:   staged.GrowthText(),
				TrainingFocus:   staged.TrainingFocus,
			}
			if _, err := s.evaluations.Create(ctx, item); err != nil {
				tracker.log(SyncLogError, fmt.Sprintf("failed to create evaluation for %q: %v", matched.FullName, err))
				tracker.addError()
				continue
			}
		}

		if err := s.evaluations.MarkAssigned(ctx, staged.ID); err != nil {
			tracker.log(SyncLogError, fmt.Sprintf("failed to flag evaluation for %q as assigned: %v", matched.FullName, err))
			tracker.addError()
			continue
		}

		tracker.mutateStats(func(st *SyncStats) { st.EvaluationsAssigned++ })
		tracker.log(SyncLogSuccess, fmt.Sprintf("assigned evaluation to %q (%s match)", matched.FullName, res.Confidence))
	}
}

// promoteUnassignedAssessments promotes staging assessment sheets. Capture
// columns are remapped onto the canonical schema: sprint_time→sprint,
// vertical_jump→vertical, endurance→yirt and endurance_score, agility→shuttle
// and agility_score, speed→speed_score, power→power_score. Player identity
// fields come from the matched player, not the staging text.
func (s *AutoSyncService) promoteUnassignedAssessments(ctx context.Context, snap *syncSnapshot, tracker *runTracker, base int) {
	candidates := playerCandidates(snap)

	total := len(snap.Unassess)
	for i, raw := range snap.Unassess {
		tracker.stageProgress(base, syncWeightStage, i+1, total)

		if raw.Assigned {
			continue
		}

		res := s.matcher.Match(raw.PlayerName, candidates)
		if !res.Matched() {
			tracker.log(SyncLogWarning, fmt.Sprintf("no player found for assessment of %q", raw.PlayerName))
			continue
		}
		matched := snap.Players[res.Index]

		exists, err := s.assessments.ExistsForSource(ctx, raw.ID)
		if err != nil {
			tracker.log(SyncLogError, fmt.Sprintf("failed to check assessment for %q: %v", raw.PlayerName, err))
			tracker.addError()
			continue
		}
		if !exists {
			staged := assessment.DeriveScores(raw)
			item := assessment.PhysicalAssessment{
				PlayerID:       matched.ID,
				TeamID:         matched.TeamID,
				SourceID:       staged.ID,
				PlayerName:     matched.FullName,
				AssessmentDate: s.now(),

				Sprint:   staged.SprintTime,
				Vertical: staged.VerticalJump,
				Yirt:     staged.Endurance,
				Shuttle:  staged.Agility,

				SpeedScore:     staged.Speed,
				PowerScore:     staged.Power,
				EnduranceScore: staged.Endurance,
				AgilityScore:   staged.Agility,

				Notes: staged.Notes,
			}
			if _, err := s.assessments.Create(ctx, item); err != nil {
				tracker.log(SyncLogError, fmt.Sprintf("failed to create assessment for %q: %v", matched.FullName, err))
				tracker.addError()
				continue
			}
		}

		if err := s.assessments.MarkAssigned(ctx, raw.ID); err != nil {
			tracker.log(SyncLogError, fmt.Sprintf("failed to flag assessment for %q as assigned: %v", matched.FullName, err))
			tracker.addError()
			continue
		}

		tracker.mutateStats(func(st *SyncStats) { st.AssessmentsAssigned++ })
		tracker.log(SyncLogSuccess, fmt.Sprintf("assigned assessment to %q (%s match)", matched.FullName, res.Confidence))
	}
}

// linkTryoutsToPlayers fills in player_id on tryout entries. There is no
// staging flag here; the empty-player-id guard alone makes re-runs no-ops.
func (s *AutoSyncService) linkTryoutsToPlayers(ctx context.Context, snap *syncSnapshot, tracker *runTracker, base int) {
	candidates := playerCandidates(snap)

	total := len(snap.Tryouts)
	for i, entry := range snap.Tryouts {
		tracker.stageProgress(base, syncWeightStage, i+1, total)

		if entry.PlayerID != "" {
			continue
		}

		res := s.matcher.Match(entry.PlayerName, candidates)
		if !res.Matched() {
			tracker.log(SyncLogWarning, fmt.Sprintf("no player found for tryout entry %q", entry.PlayerName))
			continue
		}
		matched := snap.Players[res.Index]

		if err := s.tryouts.UpdatePlayerID(ctx, entry.ID, matched.ID); err != nil {
			tracker.log(SyncLogError, fmt.Sprintf("failed to link tryout entry %q to player: %v", entry.PlayerName, err))
			tracker.addError()
			continue
		}
		tracker.log(SyncLogSuccess, fmt.Sprintf("linked tryout entry to %q (%s match)", matched.FullName, res.Confidence))
	}
}

// reconcileAssessmentTeams is a best-effort cosmetic sweep aligning each
// canonical assessment's team_id with its player's current one, including
// repairs made earlier in this run. Write failures here are swallowed:
// nothing user-facing depends on this column being fresh.
func (s *AutoSyncService) reconcileAssessmentTeams(ctx context.Context, snap *syncSnapshot, tracker *runTracker, base int) {
	playersByID := make(map[string]int, len(snap.Players))
	for i, p := range snap.Players {
		playersByID[p.ID] = i
	}

	total := len(snap.Assessments)
	for i, a := range snap.Assessments {
		tracker.stageProgress(base, syncWeightFinalSweep, i+1, total)

		idx, ok := playersByID[a.PlayerID]
		if !ok {
			continue
		}
		teamID := snap.Players[idx].TeamID
		if teamID == "" || teamID == a.TeamID {
			continue
		}
		_ = s.assessments.UpdateTeamID(ctx, a.ID, teamID)
	}
}
