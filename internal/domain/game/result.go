package game

// Margin thresholds for result tags.
const (
	BlowoutMargin = 7
	ClutchMargin  = 2
)

// Result is the derived outcome of a game: winner and scoring tags.
// It is recomputed from the raw scores on every call so a score edit can
// never leave a stale tag behind.
type Result struct {
	WinnerID  string
	IsShutout bool
	IsBlowout bool
	IsClutch  bool
}

// DeriveResult classifies a game from its stored scores. Non-completed games
// yield the zero Result: no winner, all tags false. Ties yield no winner.
func DeriveResult(g Game) Result {
	if !g.IsCompleted() {
		return Result{}
	}

	margin := g.HomeScore - g.AwayScore
	if margin < 0 {
		margin = -margin
	}

	out := Result{
		IsShutout: g.HomeScore == 0 || g.AwayScore == 0,
		IsBlowout: margin >= BlowoutMargin,
		IsClutch:  margin <= ClutchMargin,
	}
	switch {
	case g.HomeScore > g.AwayScore:
		out.WinnerID = g.HomeTeamID
	case g.AwayScore > g.HomeScore:
		out.WinnerID = g.AwayTeamID
	}

	return out
}

// WinnerID is a shorthand for the derived winner. Empty on ties and on
// non-completed games. The stored WinningTeamID field never overrides this.
func WinnerID(g Game) string {
	return DeriveResult(g).WinnerID
}

// WonBy reports whether the team is the derived winner of the game.
func WonBy(g Game, teamID string) bool {
	winner := WinnerID(g)
	return winner != "" && winner == teamID
}
