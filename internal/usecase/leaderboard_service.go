package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
	"github.com/openbeerdie/leaguecore/internal/domain/teamstats"
)

// Category selects the primary metric of a leaderboard.
type Category string

const (
	CategoryWins      Category = "wins"
	CategoryWinPct    Category = "win_pct"
	CategoryPointsFor Category = "points_for"
	CategoryPointDiff Category = "point_diff"
	CategoryHeat      Category = "heat"
	CategoryStreak    Category = "streak"
	// CategoryAccuracy applies to player boards only; players without
	// recorded throws are left off the board entirely.
	CategoryAccuracy Category = "accuracy"
)

type TeamLeaderboardEntry struct {
	Rank   int
	TeamID string
	Value  float64
	Stats  teamstats.SeasonStats
}

type PlayerLeaderboardEntry struct {
	Rank     int
	PlayerID string
	Value    float64
	Stats    playerstats.SeasonStats
}

// HeadToHead summarizes the full completed history between two teams.
type HeadToHead struct {
	TeamAID       string
	TeamBID       string
	TeamAWins     int
	TeamBWins     int
	TotalGames    int
	AverageMargin float64
	LastGame      *game.Game
}

type leaderboardStatsProvider interface {
	AllTeamSeasons(ctx context.Context, seasonID string) ([]teamstats.SeasonStats, error)
	AllPlayerSeasons(ctx context.Context, seasonID string) ([]playerstats.SeasonStats, error)
}

type LeaderboardService struct {
	stats    leaderboardStatsProvider
	gameRepo game.Repository
}

func NewLeaderboardService(stats leaderboardStatsProvider, gameRepo game.Repository) *LeaderboardService {
	return &LeaderboardService{
		stats:    stats,
		gameRepo: gameRepo,
	}
}

// TeamLeaderboard ranks a season's teams by the chosen category: primary
// metric descending, point differential descending on ties, stable beyond
// that. Ranks are distinct sequential positions, never shared.
func (s *LeaderboardService) TeamLeaderboard(ctx context.Context, seasonID string, category Category, limit int) ([]TeamLeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TeamLeaderboard")
	defer span.End()

	if category == CategoryAccuracy {
		return nil, fmt.Errorf("%w: accuracy is a player category", ErrInvalidInput)
	}

	stats, err := s.stats.AllTeamSeasons(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("aggregate team seasons for leaderboard: %w", err)
	}

	entries := make([]TeamLeaderboardEntry, 0, len(stats))
	for _, row := range stats {
		value, ok := teamCategoryValue(row, category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown leaderboard category=%s", ErrInvalidInput, category)
		}
		entries = append(entries, TeamLeaderboardEntry{
			TeamID: row.TeamID,
			Value:  value,
			Stats:  row,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Stats.PointDifferential > entries[j].Stats.PointDifferential
	})
	for idx := range entries {
		entries[idx].Rank = idx + 1
	}

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// PlayerLeaderboard mirrors TeamLeaderboard over player aggregates.
func (s *LeaderboardService) PlayerLeaderboard(ctx context.Context, seasonID string, category Category, limit int) ([]PlayerLeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.PlayerLeaderboard")
	defer span.End()

	stats, err := s.stats.AllPlayerSeasons(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("aggregate player seasons for leaderboard: %w", err)
	}

	entries := make([]PlayerLeaderboardEntry, 0, len(stats))
	for _, row := range stats {
		value, ok := playerCategoryValue(row, category)
		if !ok {
			if category == CategoryAccuracy {
				continue
			}
			return nil, fmt.Errorf("%w: unknown leaderboard category=%s", ErrInvalidInput, category)
		}
		entries = append(entries, PlayerLeaderboardEntry{
			PlayerID: row.PlayerID,
			Value:    value,
			Stats:    row,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Stats.PointDifferential > entries[j].Stats.PointDifferential
	})
	for idx := range entries {
		entries[idx].Rank = idx + 1
	}

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// HeadToHead reports the completed history between two teams across the
// whole game log, either home/away order.
func (s *LeaderboardService) HeadToHead(ctx context.Context, teamAID, teamBID string) (HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.HeadToHead")
	defer span.End()

	teamAID = strings.TrimSpace(teamAID)
	teamBID = strings.TrimSpace(teamBID)
	if teamAID == "" || teamBID == "" {
		return HeadToHead{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if teamAID == teamBID {
		return HeadToHead{}, fmt.Errorf("%w: head-to-head needs two distinct teams", ErrInvalidInput)
	}

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return HeadToHead{}, fmt.Errorf("list games for head-to-head: %w", err)
	}

	return computeHeadToHead(teamAID, teamBID, games), nil
}

func computeHeadToHead(teamAID, teamBID string, games []game.Game) HeadToHead {
	out := HeadToHead{TeamAID: teamAID, TeamBID: teamBID}

	marginTotal := 0
	var last *game.Game
	for i := range games {
		g := games[i]
		if !g.IsCompleted() || !g.Involves(teamAID) || !g.Involves(teamBID) {
			continue
		}

		out.TotalGames++
		switch game.WinnerID(g) {
		case teamAID:
			out.TeamAWins++
		case teamBID:
			out.TeamBWins++
		}

		margin := g.HomeScore - g.AwayScore
		if margin < 0 {
			margin = -margin
		}
		marginTotal += margin

		if moreRecentGame(g, last) {
			picked := g
			last = &picked
		}
	}

	if out.TotalGames > 0 {
		out.AverageMargin = float64(marginTotal) / float64(out.TotalGames)
	}
	out.LastGame = last
	return out
}

// moreRecentGame orders by date descending; undated games lose to dated
// ones, and date ties break by id ascending so the pick is deterministic.
func moreRecentGame(candidate game.Game, current *game.Game) bool {
	if current == nil {
		return true
	}
	if candidate.HasDate() != current.HasDate() {
		return candidate.HasDate()
	}
	if !candidate.GameDate.Equal(current.GameDate) {
		return candidate.GameDate.After(current.GameDate)
	}
	return candidate.ID < current.ID
}

func teamCategoryValue(row teamstats.SeasonStats, category Category) (float64, bool) {
	switch category {
	case CategoryWins:
		return float64(row.Wins), true
	case CategoryWinPct:
		return row.WinPct, true
	case CategoryPointsFor:
		return float64(row.PointsFor), true
	case CategoryPointDiff:
		return float64(row.PointDifferential), true
	case CategoryHeat:
		return row.Heat, true
	case CategoryStreak:
		return float64(row.LongestWinStreak), true
	default:
		return 0, false
	}
}

func playerCategoryValue(row playerstats.SeasonStats, category Category) (float64, bool) {
	switch category {
	case CategoryWins:
		return float64(row.Wins), true
	case CategoryWinPct:
		return row.WinPct, true
	case CategoryPointsFor:
		return float64(row.PointsFor), true
	case CategoryPointDiff:
		return float64(row.PointDifferential), true
	case CategoryHeat:
		return row.Heat, true
	case CategoryStreak:
		return float64(row.LongestWinStreak), true
	case CategoryAccuracy:
		if row.Accuracy == nil {
			return 0, false
		}
		return *row.Accuracy, true
	default:
		return 0, false
	}
}
