package player

import "fmt"

// Player is a rostered club member. TeamID normally references a Team, but
// upstream imports sometimes leave a free-hand team *name* in it; TeamName is
// the explicit free-text fallback. The auto-sync engine repairs both.
type Player struct {
	ID       string
	FullName string
	TeamID   string
	TeamName string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.FullName == "" {
		return fmt.Errorf("player full name is required")
	}
	return nil
}
