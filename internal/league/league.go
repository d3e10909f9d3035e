package league

// Points awarded per match outcome.
const (
	WinPoints  = 3
	DrawPoints = 1
	LossPoints = 0
)

// Result is one game result as read from an input line.
type Result struct {
	HomeTeam  string
	HomeGoals int
	AwayTeam  string
	AwayGoals int
}

// TableEntry holds the standings info for one team.
type TableEntry struct {
	Team                        string
	Played, Wins, Draws, Losses int
	Points                      int
}
