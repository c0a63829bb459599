package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
	"github.com/openbeerdie/leaguecore/internal/domain/teamstats"
)

func TestLeaderboardService_TeamLeaderboard_RanksAndTieBreaks(t *testing.T) {
	t.Parallel()

	provider := &stubStatsProvider{
		teamRows: []teamstats.SeasonStats{
			{TeamID: "team-a", Wins: 5, PointDifferential: 12},
			{TeamID: "team-b", Wins: 7, PointDifferential: 3},
			// Same wins as team-a, better differential: must rank above it.
			{TeamID: "team-c", Wins: 5, PointDifferential: 20},
			{TeamID: "team-d", Wins: 1, PointDifferential: -30},
		},
	}
	service := NewLeaderboardService(provider, &stubGameRepository{})

	entries, err := service.TeamLeaderboard(context.Background(), testSeasonID, CategoryWins, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	wantOrder := []string{"team-b", "team-c", "team-a", "team-d"}
	for idx, entry := range entries {
		require.Equal(t, wantOrder[idx], entry.TeamID, "position %d", idx)
		require.Equal(t, idx+1, entry.Rank, "ranks are distinct and sequential")
	}
}

func TestLeaderboardService_TeamLeaderboard_Limit(t *testing.T) {
	t.Parallel()

	provider := &stubStatsProvider{
		teamRows: []teamstats.SeasonStats{
			{TeamID: "team-a", Wins: 5},
			{TeamID: "team-b", Wins: 7},
			{TeamID: "team-c", Wins: 2},
		},
	}
	service := NewLeaderboardService(provider, &stubGameRepository{})

	entries, err := service.TeamLeaderboard(context.Background(), testSeasonID, CategoryWins, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "team-b", entries[0].TeamID)
}

func TestLeaderboardService_TeamLeaderboard_RejectsBadCategories(t *testing.T) {
	t.Parallel()

	provider := &stubStatsProvider{teamRows: []teamstats.SeasonStats{{TeamID: "team-a"}}}
	service := NewLeaderboardService(provider, &stubGameRepository{})

	_, err := service.TeamLeaderboard(context.Background(), testSeasonID, CategoryAccuracy, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.TeamLeaderboard(context.Background(), testSeasonID, Category("made_up"), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLeaderboardService_PlayerLeaderboard_AccuracySkipsPlayersWithoutThrows(t *testing.T) {
	t.Parallel()

	sharp := 80.0
	wild := 40.0
	provider := &stubStatsProvider{
		playerRows: []playerstats.SeasonStats{
			{PlayerID: "player-1", Accuracy: &sharp},
			{PlayerID: "player-2"}, // no recorded throws
			{PlayerID: "player-3", Accuracy: &wild},
		},
	}
	service := NewLeaderboardService(provider, &stubGameRepository{})

	entries, err := service.PlayerLeaderboard(context.Background(), testSeasonID, CategoryAccuracy, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "player-1", entries[0].PlayerID)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, "player-3", entries[1].PlayerID)
	require.Equal(t, 2, entries[1].Rank)
}

func TestLeaderboardService_PlayerLeaderboard_OtherCategories(t *testing.T) {
	t.Parallel()

	provider := &stubStatsProvider{
		playerRows: []playerstats.SeasonStats{
			{PlayerID: "player-1", Heat: 8.2},
			{PlayerID: "player-2", Heat: 9.6},
		},
	}
	service := NewLeaderboardService(provider, &stubGameRepository{})

	entries, err := service.PlayerLeaderboard(context.Background(), testSeasonID, CategoryHeat, 0)
	require.NoError(t, err)
	require.Equal(t, "player-2", entries[0].PlayerID)
	require.InDelta(t, 9.6, entries[0].Value, 1e-9)
}

func TestLeaderboardService_HeadToHead(t *testing.T) {
	t.Parallel()

	games := []game.Game{
		{ID: "g1", SeasonID: "spring-2026", HomeTeamID: "team-a", AwayTeamID: "team-b", HomeScore: 11, AwayScore: 5, Status: game.StatusCompleted, GameDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "g2", SeasonID: testSeasonID, HomeTeamID: "team-b", AwayTeamID: "team-a", HomeScore: 11, AwayScore: 9, Status: game.StatusCompleted, GameDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "g3", SeasonID: testSeasonID, HomeTeamID: "team-a", AwayTeamID: "team-b", HomeScore: 11, AwayScore: 3, Status: game.StatusCompleted, GameDate: time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)},
		// Non-completed and third-party games stay out of the record.
		{ID: "g4", SeasonID: testSeasonID, HomeTeamID: "team-a", AwayTeamID: "team-b", Status: game.StatusScheduled, GameDate: time.Date(2026, 6, 27, 0, 0, 0, 0, time.UTC)},
		{ID: "g5", SeasonID: testSeasonID, HomeTeamID: "team-a", AwayTeamID: "team-c", HomeScore: 11, AwayScore: 0, Status: game.StatusCompleted},
	}
	service := NewLeaderboardService(&stubStatsProvider{}, &stubGameRepository{games: games})

	got, err := service.HeadToHead(context.Background(), "team-a", "team-b")
	require.NoError(t, err)
	require.Equal(t, 3, got.TotalGames, "history spans every season")
	require.Equal(t, 2, got.TeamAWins)
	require.Equal(t, 1, got.TeamBWins)
	require.InDelta(t, (6+2+8)/3.0, got.AverageMargin, 1e-9)
	require.NotNil(t, got.LastGame)
	require.Equal(t, "g3", got.LastGame.ID, "most recent completed meeting")
}

func TestLeaderboardService_HeadToHead_NoMeetings(t *testing.T) {
	t.Parallel()

	service := NewLeaderboardService(&stubStatsProvider{}, &stubGameRepository{})

	got, err := service.HeadToHead(context.Background(), "team-a", "team-b")
	require.NoError(t, err)
	require.Zero(t, got.TotalGames)
	require.Zero(t, got.AverageMargin)
	require.Nil(t, got.LastGame)
}

func TestLeaderboardService_HeadToHead_InputValidation(t *testing.T) {
	t.Parallel()

	service := NewLeaderboardService(&stubStatsProvider{}, &stubGameRepository{})

	_, err := service.HeadToHead(context.Background(), "", "team-b")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.HeadToHead(context.Background(), "team-a", "team-a")
	require.ErrorIs(t, err, ErrInvalidInput)
}
