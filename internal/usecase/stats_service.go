package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
	"github.com/openbeerdie/leaguecore/internal/domain/player"
	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
	"github.com/openbeerdie/leaguecore/internal/domain/roster"
	"github.com/openbeerdie/leaguecore/internal/domain/team"
	"github.com/openbeerdie/leaguecore/internal/domain/teamstats"
	"github.com/openbeerdie/leaguecore/internal/platform/cache"
)

// StatsService folds a season's game log and roster into cumulative team and
// player records. Every call recomputes from the full snapshot the repos
// hand back; nothing is retained across calls beyond the optional
// fingerprint-keyed cache.
type StatsService struct {
	gameRepo   game.Repository
	rosterRepo roster.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	lineRepo   playerstats.Repository
	store      *cache.Store
}

func NewStatsService(
	gameRepo game.Repository,
	rosterRepo roster.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	lineRepo playerstats.Repository,
	store *cache.Store,
) *StatsService {
	return &StatsService{
		gameRepo:   gameRepo,
		rosterRepo: rosterRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		lineRepo:   lineRepo,
		store:      store,
	}
}

// TeamSeason computes one team's cumulative record for a season.
func (s *StatsService) TeamSeason(ctx context.Context, seasonID, teamID string) (teamstats.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	teamID = strings.TrimSpace(teamID)
	if seasonID == "" {
		return teamstats.SeasonStats{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return teamstats.SeasonStats{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return teamstats.SeasonStats{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return teamstats.SeasonStats{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return teamstats.SeasonStats{}, fmt.Errorf("list games by season: %w", err)
	}

	return aggregateTeamSeason(seasonID, teamID, games), nil
}

// AllTeamSeasons computes every known team's record for a season, including
// teams that have not played yet. Results are memoized per game-snapshot
// fingerprint when a cache store is attached.
func (s *StatsService) AllTeamSeasons(ctx context.Context, seasonID string) ([]teamstats.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AllTeamSeasons")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list games by season: %w", err)
	}

	compute := func(context.Context) (any, error) {
		out := make([]teamstats.SeasonStats, 0, len(teams))
		for _, item := range teams {
			out = append(out, aggregateTeamSeason(seasonID, item.ID, games))
		}
		return out, nil
	}

	if s.store == nil {
		value, _ := compute(ctx)
		return value.([]teamstats.SeasonStats), nil
	}

	key := teamStatsCacheKey(seasonID, teams, games)
	value, err := s.store.GetOrLoad(ctx, key, compute)
	if err != nil {
		return nil, err
	}
	out, ok := value.([]teamstats.SeasonStats)
	if !ok {
		value, _ = compute(ctx)
		out = value.([]teamstats.SeasonStats)
	}
	// Hand back a copy so cached rows stay immutable across callers.
	return append([]teamstats.SeasonStats(nil), out...), nil
}

// PlayerSeason computes a player's record for a season via their active
// roster memberships. The whole team result is credited to every rostered
// player; the league scores two-person teams that way on purpose.
func (s *StatsService) PlayerSeason(ctx context.Context, seasonID, playerID string) (playerstats.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	playerID = strings.TrimSpace(playerID)
	if seasonID == "" {
		return playerstats.SeasonStats{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if playerID == "" {
		return playerstats.SeasonStats{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return playerstats.SeasonStats{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return playerstats.SeasonStats{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	memberships, err := s.rosterRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return playerstats.SeasonStats{}, fmt.Errorf("list roster by season: %w", err)
	}
	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return playerstats.SeasonStats{}, fmt.Errorf("list games by season: %w", err)
	}
	lines, err := s.playerLines(ctx, seasonID, playerID)
	if err != nil {
		return playerstats.SeasonStats{}, err
	}

	return aggregatePlayerSeason(seasonID, playerID, memberships, games, lines), nil
}

// AllPlayerSeasons computes season records for every known player.
func (s *StatsService) AllPlayerSeasons(ctx context.Context, seasonID string) ([]playerstats.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AllPlayerSeasons")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	memberships, err := s.rosterRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list roster by season: %w", err)
	}
	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list games by season: %w", err)
	}

	linesByPlayer := make(map[string][]playerstats.GameLine)
	if s.lineRepo != nil {
		lines, err := s.lineRepo.ListLinesBySeason(ctx, seasonID)
		if err != nil {
			return nil, fmt.Errorf("list throw lines by season: %w", err)
		}
		for _, line := range lines {
			linesByPlayer[line.PlayerID] = append(linesByPlayer[line.PlayerID], line)
		}
	}

	out := make([]playerstats.SeasonStats, 0, len(players))
	for _, item := range players {
		out = append(out, aggregatePlayerSeason(seasonID, item.ID, memberships, games, linesByPlayer[item.ID]))
	}
	return out, nil
}

func (s *StatsService) playerLines(ctx context.Context, seasonID, playerID string) ([]playerstats.GameLine, error) {
	if s.lineRepo == nil {
		return nil, nil
	}
	lines, err := s.lineRepo.ListLinesByPlayer(ctx, seasonID, playerID)
	if err != nil {
		return nil, fmt.Errorf("list throw lines by player: %w", err)
	}
	return lines, nil
}

func teamStatsCacheKey(seasonID string, teams []team.Team, games []game.Game) string {
	fingerprint, err := cache.Fingerprint(struct {
		SeasonID string
		Teams    []team.Team
		Games    []game.Game
	}{SeasonID: seasonID, Teams: teams, Games: games})
	if err != nil {
		// Unkeyable snapshot just skips the cache.
		return ""
	}
	return cache.Key("teamstats:"+seasonID, fingerprint)
}

// aggregateTeamSeason is the pure fold behind team records. Games outside
// the season, games not involving the team, and non-completed games are
// ignored; everything else flows through the result normalizer.
func aggregateTeamSeason(seasonID, teamID string, games []game.Game) teamstats.SeasonStats {
	stats := teamstats.SeasonStats{TeamID: teamID, SeasonID: seasonID}

	relevant := make([]game.Game, 0, len(games))
	for _, g := range games {
		if g.SeasonID != seasonID || !g.IsCompleted() || !g.Involves(teamID) {
			continue
		}
		relevant = append(relevant, g)
	}

	for _, g := range relevant {
		pointsFor, pointsAgainst, ok := g.ScoreFor(teamID)
		if !ok {
			continue
		}
		stats.GamesPlayed++
		stats.PointsFor += pointsFor
		stats.PointsAgainst += pointsAgainst

		result := game.DeriveResult(g)
		won := result.WinnerID == teamID
		if won {
			stats.Wins++
			if result.IsShutout {
				stats.Shutouts++
			}
			if result.IsBlowout {
				stats.Blowouts++
			}
			if result.IsClutch {
				stats.ClutchWins++
			}
		} else if result.WinnerID != "" {
			stats.Losses++
		}
	}

	stats.PointDifferential = stats.PointsFor - stats.PointsAgainst
	if played := stats.Wins + stats.Losses; played > 0 {
		stats.WinPct = float64(stats.Wins) / float64(played)
	}

	stats.LongestWinStreak, stats.CurrentStreak, stats.StreakType = computeStreaks(teamID, relevant)
	stats.Heat = computeHeat(teamID, relevant)

	return stats
}

func aggregatePlayerSeason(
	seasonID, playerID string,
	memberships []roster.Membership,
	games []game.Game,
	lines []playerstats.GameLine,
) playerstats.SeasonStats {
	stats := playerstats.SeasonStats{PlayerID: playerID, SeasonID: seasonID}

	teamIDs := roster.ActiveTeamIDs(memberships, playerID, seasonID)
	stats.TeamIDs = teamIDs

	for _, teamID := range teamIDs {
		teamAgg := aggregateTeamSeason(seasonID, teamID, games)
		stats.GamesPlayed += teamAgg.GamesPlayed
		stats.Wins += teamAgg.Wins
		stats.Losses += teamAgg.Losses
		stats.PointsFor += teamAgg.PointsFor
		stats.PointsAgainst += teamAgg.PointsAgainst
		stats.Shutouts += teamAgg.Shutouts
		stats.Blowouts += teamAgg.Blowouts
		stats.ClutchWins += teamAgg.ClutchWins
		if teamAgg.LongestWinStreak > stats.LongestWinStreak {
			stats.LongestWinStreak = teamAgg.LongestWinStreak
		}
	}

	stats.PointDifferential = stats.PointsFor - stats.PointsAgainst
	if played := stats.Wins + stats.Losses; played > 0 {
		stats.WinPct = float64(stats.Wins) / float64(played)
	}

	// Streak type and heat follow the primary (first active) team; a player
	// split across teams has no single coherent game sequence to walk.
	if len(teamIDs) > 0 {
		primary := aggregateTeamSeason(seasonID, teamIDs[0], games)
		stats.CurrentStreak = primary.CurrentStreak
		stats.StreakType = primary.StreakType
		stats.Heat = primary.Heat
		if len(teamIDs) == 1 {
			stats.LongestWinStreak = primary.LongestWinStreak
		}
	}

	for _, line := range lines {
		if line.PlayerID != playerID || line.SeasonID != seasonID {
			continue
		}
		if line.TableHits > 0 {
			stats.TableHits += line.TableHits
		}
		if line.ThrowsMissed > 0 {
			stats.ThrowsMissed += line.ThrowsMissed
		}
		if line.CupsHit > 0 {
			stats.CupsHit += line.CupsHit
		}
	}
	if pct, ok := playerstats.AccuracyPct(lines); ok {
		stats.Accuracy = &pct
	}

	return stats
}

// computeStreaks walks the team's dated completed games in chronological
// order. Undated games never enter streak math. Ties end a run without
// starting a new one.
func computeStreaks(teamID string, completed []game.Game) (longest, current int, streakType string) {
	dated := datedGamesAsc(completed)
	if len(dated) == 0 {
		return 0, 0, ""
	}

	running := 0
	for _, g := range dated {
		if game.WonBy(g, teamID) {
			running++
			if running > longest {
				longest = running
			}
		} else {
			running = 0
		}
	}

	// Current streak is the run of identical results ending at the most
	// recent game, loss runs included.
	last := game.WinnerID(dated[len(dated)-1])
	switch {
	case last == teamID:
		streakType = teamstats.StreakWin
	case last != "":
		streakType = teamstats.StreakLoss
	default:
		return longest, 0, ""
	}

	for i := len(dated) - 1; i >= 0; i-- {
		winner := game.WinnerID(dated[i])
		if streakType == teamstats.StreakWin && winner == teamID {
			current++
			continue
		}
		if streakType == teamstats.StreakLoss && winner != "" && winner != teamID {
			current++
			continue
		}
		break
	}

	return longest, current, streakType
}

// computeHeat averages points scored over the most recent dated completed
// games, capped at the heat window.
func computeHeat(teamID string, completed []game.Game) float64 {
	dated := datedGamesAsc(completed)
	if len(dated) == 0 {
		return 0
	}

	window := teamstats.HeatWindow
	if len(dated) < window {
		window = len(dated)
	}

	total := 0
	for _, g := range dated[len(dated)-window:] {
		pointsFor, _, ok := g.ScoreFor(teamID)
		if !ok {
			continue
		}
		total += pointsFor
	}
	return float64(total) / float64(window)
}

func datedGamesAsc(games []game.Game) []game.Game {
	dated := make([]game.Game, 0, len(games))
	for _, g := range games {
		if g.HasDate() {
			dated = append(dated, g)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		if !dated[i].GameDate.Equal(dated[j].GameDate) {
			return dated[i].GameDate.Before(dated[j].GameDate)
		}
		return dated[i].ID < dated[j].ID
	})
	return dated
}
