package playerstats

// SeasonStats is a player's cumulative record for one season. The whole
// team's result is credited to every actively rostered player; that is how
// the league scores a two-person game, not an aggregation bug.
type SeasonStats struct {
	PlayerID          string
	SeasonID          string
	TeamIDs           []string
	GamesPlayed       int
	Wins              int
	Losses            int
	WinPct            float64
	PointsFor         int
	PointsAgainst     int
	PointDifferential int
	Shutouts          int
	Blowouts          int
	ClutchWins        int
	LongestWinStreak  int
	CurrentStreak     int
	StreakType        string
	Heat              float64
	TableHits         int
	ThrowsMissed      int
	CupsHit           int
	// Accuracy is hits/(hits+misses) as a percentage. Nil means no throws
	// were recorded, which is distinct from a true 0%.
	Accuracy *float64
}

// GameLine is the optional granular per-game throw record. It feeds the
// accuracy path only and stays orthogonal to the win/loss roll-up.
type GameLine struct {
	PlayerID     string
	GameID       string
	SeasonID     string
	TableHits    int
	ThrowsMissed int
	CupsHit      int
}

// AccuracyPct folds throw lines into a percentage. The ok return is false
// when no throws exist, so callers can tell "0%" apart from "no data".
func AccuracyPct(lines []GameLine) (float64, bool) {
	hits := 0
	misses := 0
	for _, line := range lines {
		if line.TableHits > 0 {
			hits += line.TableHits
		}
		if line.ThrowsMissed > 0 {
			misses += line.ThrowsMissed
		}
	}

	total := hits + misses
	if total == 0 {
		return 0, false
	}
	return float64(hits) / float64(total) * 100, true
}
