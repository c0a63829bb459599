package playoff

import (
	"fmt"
	"strings"
)

const (
	MatchStatusPending   = "pending"
	MatchStatusBye       = "bye"
	MatchStatusCompleted = "completed"

	// MinTeams and MaxTeams bound a valid bracket.
	MinTeams = 2
	MaxTeams = 32
)

// Match is one node of a single-elimination bracket. Team slots stay empty
// until seeded or advanced into; NextMatchID is empty only for the finals.
type Match struct {
	ID          string
	PlayoffID   string
	RoundNumber int
	MatchNumber int
	Team1ID     string
	Team2ID     string
	Status      string
	WinnerID    string
	NextMatchID string
	Team1Score  int
	Team2Score  int
}

// IsReady reports whether both slots are filled and the match is still
// waiting to be played.
func (m Match) IsReady() bool {
	return m.Status == MatchStatusPending && m.Team1ID != "" && m.Team2ID != ""
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.PlayoffID == "" {
		return fmt.Errorf("match playoff id is required")
	}
	if m.RoundNumber < 1 {
		return fmt.Errorf("match round must be 1-based, got %d", m.RoundNumber)
	}
	if m.MatchNumber < 0 {
		return fmt.Errorf("match number must not be negative, got %d", m.MatchNumber)
	}
	switch m.Status {
	case MatchStatusPending, MatchStatusBye, MatchStatusCompleted:
	default:
		return fmt.Errorf("invalid match status: %s", m.Status)
	}

	return nil
}

// BracketSize is the smallest power of two that fits the team count,
// never below 2.
func BracketSize(teamCount int) int {
	size := 2
	for size < teamCount {
		size *= 2
	}
	return size
}

// TotalRounds is log2 of the bracket size.
func TotalRounds(bracketSize int) int {
	rounds := 0
	for size := bracketSize; size > 1; size /= 2 {
		rounds++
	}
	return rounds
}

// RoundName labels a round counting from the end: the last round is the
// Finals, then Semifinals, then Quarterfinals. Round 1 is "First Round"
// unless it already carries one of the named labels.
func RoundName(roundNumber, totalRounds int) string {
	switch totalRounds - roundNumber {
	case 0:
		return "Finals"
	case 1:
		return "Semifinals"
	case 2:
		return "Quarterfinals"
	}
	if roundNumber == 1 {
		return "First Round"
	}
	return fmt.Sprintf("Round %d", roundNumber)
}

// SortKey orders matches bracket-wise: round ascending, then match number.
func SortKey(m Match) string {
	return fmt.Sprintf("%04d:%04d", m.RoundNumber, m.MatchNumber)
}

// FindByRound filters matches of one round, preserving input order.
func FindByRound(matches []Match, roundNumber int) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.RoundNumber == roundNumber {
			out = append(out, m)
		}
	}
	return out
}

// HighestRound is the largest round number present, 0 when empty.
func HighestRound(matches []Match) int {
	highest := 0
	for _, m := range matches {
		if m.RoundNumber > highest {
			highest = m.RoundNumber
		}
	}
	return highest
}

func NormalizeSeriesFormat(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
