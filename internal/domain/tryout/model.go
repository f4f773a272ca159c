package tryout

// Tryout is a tryout-day entry. PlayerID stays empty until the auto-sync
// engine links the free-text PlayerName to a rostered player; entries without
// a link are simply re-evaluated on every run.
type Tryout struct {
	ID               string
	PlayerID         string
	PlayerName       string
	Position         string
	Rank             int
	RecommendedGroup string
}
