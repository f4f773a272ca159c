package assessment

import (
	"fmt"
	"time"
)

// PhysicalAssessment is a canonical assessment sheet owned by a real player.
// Raw metrics keep the club's historical column names (yirt is the Yo-Yo
// intermittent recovery test, shuttle the 5-10-5 drill). SourceID references
// the staging record the sheet was promoted from.
type PhysicalAssessment struct {
	ID             string
	PlayerID       string
	TeamID         string
	SourceID       string
	PlayerName     string
	AssessmentDate time.Time

	Sprint   float64
	Vertical float64
	Yirt     float64
	Shuttle  float64

	SpeedScore     float64
	PowerScore     float64
	EnduranceScore float64
	AgilityScore   float64

	Notes string
}

func (a PhysicalAssessment) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("assessment id is required")
	}
	if a.PlayerID == "" {
		return fmt.Errorf("assessment player id is required")
	}
	return nil
}

// Unassigned is a staging assessment sheet captured on the field with only a
// free-text player name. Its metric columns use the capture-form names, which
// differ from the canonical ones and are remapped during promotion.
type Unassigned struct {
	ID         string
	PlayerName string

	SprintTime   float64
	VerticalJump float64
	Endurance    float64
	Agility      float64
	Speed        float64
	Power        float64

	Notes    string
	Assigned bool
}
