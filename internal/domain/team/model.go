package team

// Team is an age-group squad within the club (e.g. "U12 Blue"). Imported rows
// occasionally arrive with a blank name; those teams are never eligible as
// match candidates.
type Team struct {
	ID       string
	Name     string
	AgeGroup string
	Season   string
}
