package game

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCanceled   = "canceled"
)

// Game is one logged result between two teams. Scores are the source of
// truth; WinningTeamID is a legacy stored field that readers must never
// trust over a fresh score comparison.
type Game struct {
	ID            string
	SeasonID      string
	HomeTeamID    string
	AwayTeamID    string
	HomeScore     int
	AwayScore     int
	Status        string
	GameDate      time.Time
	Week          int
	WinningTeamID string
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsCompletedStatus(status string) bool {
	return NormalizeStatus(status) == StatusCompleted
}

func (g Game) IsCompleted() bool {
	return IsCompletedStatus(g.Status)
}

// HasDate reports whether the game carries a usable date. Undated games are
// excluded from any recency-ordered computation.
func (g Game) HasDate() bool {
	return !g.GameDate.IsZero()
}

// Involves reports whether the team played in this game on either side.
func (g Game) Involves(teamID string) bool {
	if teamID == "" {
		return false
	}
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// ScoreFor returns (points scored, points allowed) from the team's
// perspective. The second return is false when the team did not play.
func (g Game) ScoreFor(teamID string) (int, int, bool) {
	switch teamID {
	case "":
		return 0, 0, false
	case g.HomeTeamID:
		return g.HomeScore, g.AwayScore, true
	case g.AwayTeamID:
		return g.AwayScore, g.HomeScore, true
	default:
		return 0, 0, false
	}
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.SeasonID == "" {
		return fmt.Errorf("game season id is required")
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return fmt.Errorf("game team ids are required")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("game teams must differ: %s", g.HomeTeamID)
	}
	if g.HomeScore < 0 || g.AwayScore < 0 {
		return fmt.Errorf("game scores must not be negative")
	}

	return nil
}
