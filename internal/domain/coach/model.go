package coach

// Coach is read-only roster context; the auto-sync engine never mutates it.
type Coach struct {
	ID       string
	FullName string
	TeamID   string
	Role     string
}
