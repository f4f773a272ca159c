package evaluation

import (
	"fmt"
	"time"
)

// Evaluation is a canonical coach evaluation owned by a real player. SourceID
// references the staging record it was created from, which keeps re-creation
// idempotent when a staging flag-update failed after a successful create.
type Evaluation struct {
	ID             string
	PlayerID       string
	SourceID       string
	EvaluationDate time.Time
	EvaluatorName  string

	GrowthMindset int
	Coachability  int
	Effort        int
	Technique     int
	GameAwareness int
	Teamwork      int

	PlayerStrengths string
	AreasOfGrowth   string
	TrainingFocus   string
}

func (e Evaluation) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("evaluation id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("evaluation player id is required")
	}
	return nil
}

// Unassigned is a staging evaluation captured before its subject player was
// identified; PlayerName is the only linkage key. Older capture forms wrote
// Strengths / AreasForImprovement instead of the current field names, so both
// generations are carried and reconciled at promotion time.
type Unassigned struct {
	ID             string
	PlayerName     string
	EvaluationDate time.Time
	EvaluatorName  string

	GrowthMindset int
	Coachability  int
	Effort        int
	Technique     int
	GameAwareness int
	Teamwork      int

	PlayerStrengths     string
	Strengths           string
	AreasOfGrowth       string
	AreasForImprovement string
	TrainingFocus       string

	Assigned bool
}

// StrengthsText resolves the current-vs-legacy strengths capture fields.
func (u Unassigned) StrengthsText() string {
	if u.PlayerStrengths != "" {
		return u.PlayerStrengths
	}
	return u.Strengths
}

// GrowthText resolves the current-vs-legacy growth-area capture fields.
func (u Unassigned) GrowthText() string {
	if u.AreasOfGrowth != "" {
		return u.AreasOfGrowth
	}
	return u.AreasForImprovement
}
