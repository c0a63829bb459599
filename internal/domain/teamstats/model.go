package teamstats

const (
	StreakWin  = "W"
	StreakLoss = "L"

	// HeatWindow is how many recent games feed the heat average.
	HeatWindow = 5
)

// SeasonStats is a team's cumulative record for one season, rebuilt
// wholesale from the game log on every read.
type SeasonStats struct {
	TeamID            string
	SeasonID          string
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
	// StreakType is "W" or "L" for the run ending at the most recent dated
	// game, empty when no dated games exist.
	StreakType string
	// Heat is the average points scored over the most recent dated games,
	// capped at HeatWindow, 0 with no history.
	Heat float64
}

// HasRecord reports whether any completed game backs these stats. Teams
// without a record sort after teams with one when seeding.
func (s SeasonStats) HasRecord() bool {
	return s.GamesPlayed > 0
}
