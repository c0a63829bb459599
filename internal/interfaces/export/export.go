// Package export renders computed aggregates for whatever display layer
// sits above the core: JSON for programmatic consumers, plain text tables
// for terminals and chat bots.
package export

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/openbeerdie/leaguecore/internal/domain/playoff"
	"github.com/openbeerdie/leaguecore/internal/usecase"
)

// JSON encodes any aggregate as a self-contained JSON document.
func JSON(v any) ([]byte, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return raw, nil
}

// StandingsTable renders ranked team entries as a fixed-width text table.
// Names come from the supplied lookup; a missing name falls back to the id.
func StandingsTable(entries []usecase.TeamLeaderboardEntry, teamNames map[string]string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "%-4s %-24s %3s %3s %6s %5s %5s %5s\n",
		"RK", "TEAM", "W", "L", "PCT", "PF", "PA", "DIFF")
	for _, entry := range entries {
		name := teamNames[entry.TeamID]
		if name == "" {
			name = entry.TeamID
		}
		if len(name) > 24 {
			name = name[:24]
		}
		_, _ = fmt.Fprintf(buf, "%-4d %-24s %3d %3d %6.3f %5d %5d %+5d\n",
			entry.Rank,
			name,
			entry.Stats.Wins,
			entry.Stats.Losses,
			entry.Stats.WinPct,
			entry.Stats.PointsFor,
			entry.Stats.PointsAgainst,
			entry.Stats.PointDifferential,
		)
	}

	return buf.String()
}

// BracketView renders a bracket round by round. Empty slots show as TBD,
// byes are called out, and the winner is marked on completed matches.
func BracketView(matches []playoff.Match, teamNames map[string]string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	totalRounds := playoff.HighestRound(matches)
	for round := 1; round <= totalRounds; round++ {
		if round > 1 {
			_ = buf.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(buf, "%s\n", playoff.RoundName(round, totalRounds))
		for _, m := range playoff.FindByRound(matches, round) {
			writeMatchLine(buf, m, teamNames)
		}
	}

	return buf.String()
}

func writeMatchLine(buf *bytebufferpool.ByteBuffer, m playoff.Match, teamNames map[string]string) {
	team1 := slotLabel(m.Team1ID, teamNames)
	team2 := slotLabel(m.Team2ID, teamNames)

	switch m.Status {
	case playoff.MatchStatusBye:
		_, _ = fmt.Fprintf(buf, "  [%d] %s advances on a bye\n", m.MatchNumber+1, slotLabel(m.WinnerID, teamNames))
	case playoff.MatchStatusCompleted:
		_, _ = fmt.Fprintf(buf, "  [%d] %s %d - %d %s  (winner: %s)\n",
			m.MatchNumber+1, team1, m.Team1Score, m.Team2Score, team2, slotLabel(m.WinnerID, teamNames))
	default:
		_, _ = fmt.Fprintf(buf, "  [%d] %s vs %s\n", m.MatchNumber+1, team1, team2)
	}
}

func slotLabel(teamID string, teamNames map[string]string) string {
	if teamID == "" {
		return "TBD"
	}
	if name := teamNames[teamID]; name != "" {
		return name
	}
	return teamID
}
