package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
	"github.com/openbeerdie/leaguecore/internal/domain/player"
	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
	"github.com/openbeerdie/leaguecore/internal/domain/team"
	"github.com/openbeerdie/leaguecore/internal/domain/teamstats"
	"github.com/openbeerdie/leaguecore/internal/platform/logging"
)

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"

	recomputeKindTeam       = "team_stats"
	recomputeKindPlayer     = "player_stats"
	recomputeKindHeadToHead = "head_to_head"
)

type SeasonRecomputeInput struct {
	SeasonID          string
	MaxWorkers        int
	IncludeHeadToHead bool
}

type SeasonRecomputeResult struct {
	SeasonID     string
	TeamCount    int
	PlayerCount  int
	TaskCount    int
	SuccessCount int
	FailedCount  int
	WorkerCount  int
	TeamStats    []teamstats.SeasonStats
	PlayerStats  []playerstats.SeasonStats
	HeadToHead   []HeadToHead
	Tasks        []RecomputeTaskResult
}

type RecomputeTaskResult struct {
	Kind       string
	TargetID   string
	Status     string
	DurationMs int64
	Message    string
}

type recomputeStatsProvider interface {
	TeamSeason(ctx context.Context, seasonID, teamID string) (teamstats.SeasonStats, error)
	PlayerSeason(ctx context.Context, seasonID, playerID string) (playerstats.SeasonStats, error)
}

// RecomputeService rebuilds a full season snapshot in one pass: every team
// record, every player record, and optionally the whole head-to-head
// matrix. Team and pair tasks fan out over a bounded worker pool since the
// pair count grows quadratically with the league.
type RecomputeService struct {
	stats      recomputeStatsProvider
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	logger     *logging.Logger
}

func NewRecomputeService(
	stats recomputeStatsProvider,
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	logger *logging.Logger,
) *RecomputeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecomputeService{
		stats:      stats,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		logger:     logger,
	}
}

func (s *RecomputeService) RecomputeSeason(ctx context.Context, input SeasonRecomputeInput) (SeasonRecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.RecomputeSeason")
	defer span.End()

	seasonID := strings.TrimSpace(input.SeasonID)
	if seasonID == "" {
		return SeasonRecomputeResult{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return SeasonRecomputeResult{}, fmt.Errorf("list teams for recompute: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return SeasonRecomputeResult{}, fmt.Errorf("list players for recompute: %w", err)
	}
	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return SeasonRecomputeResult{}, fmt.Errorf("list games for recompute: %w", err)
	}

	pairs := [][2]string{}
	if input.IncludeHeadToHead {
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				pairs = append(pairs, [2]string{teams[i].ID, teams[j].ID})
			}
		}
	}

	taskCount := len(teams) + len(pairs)
	workerCount := normalizeRecomputeWorkerCount(input.MaxWorkers, taskCount)

	result := SeasonRecomputeResult{
		SeasonID:    seasonID,
		TeamCount:   len(teams),
		PlayerCount: len(players),
		TaskCount:   taskCount + len(players),
		WorkerCount: workerCount,
		TeamStats:   make([]teamstats.SeasonStats, len(teams)),
		PlayerStats: make([]playerstats.SeasonStats, len(players)),
		HeadToHead:  make([]HeadToHead, len(pairs)),
	}

	taskRows := make(chan RecomputeTaskResult, result.TaskCount)
	var successCount atomic.Int32
	var failedCount atomic.Int32

	report := func(kind, targetID string, start time.Time, err error) {
		row := RecomputeTaskResult{
			Kind:       kind,
			TargetID:   targetID,
			Status:     recomputeStatusSuccess,
			DurationMs: time.Since(start).Milliseconds(),
		}
		if err != nil {
			row.Status = recomputeStatusFailed
			row.Message = err.Error()
			failedCount.Add(1)
		} else {
			successCount.Add(1)
		}
		taskRows <- row
	}

	if taskCount > 0 {
		pool, err := ants.NewPool(workerCount)
		if err != nil {
			return SeasonRecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		var workers sync.WaitGroup
		for idx, item := range teams {
			idx, teamID := idx, item.ID
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				start := time.Now()
				stats, taskErr := s.stats.TeamSeason(ctx, seasonID, teamID)
				if taskErr == nil {
					result.TeamStats[idx] = stats
				}
				report(recomputeKindTeam, teamID, start, taskErr)
			}); err != nil {
				workers.Done()
				return SeasonRecomputeResult{}, fmt.Errorf("submit team task to worker pool: %w", err)
			}
		}
		for idx, pair := range pairs {
			idx, pair := idx, pair
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				start := time.Now()
				result.HeadToHead[idx] = computeHeadToHead(pair[0], pair[1], games)
				report(recomputeKindHeadToHead, pair[0]+":"+pair[1], start, nil)
			}); err != nil {
				workers.Done()
				return SeasonRecomputeResult{}, fmt.Errorf("submit head-to-head task to worker pool: %w", err)
			}
		}
		workers.Wait()
	}

	// Player aggregation reuses the team folds underneath and is cheap per
	// row; a plain panic-safe waitgroup is enough.
	var playerGroup conc.WaitGroup
	for idx, item := range players {
		idx, playerID := idx, item.ID
		playerGroup.Go(func() {
			start := time.Now()
			stats, taskErr := s.stats.PlayerSeason(ctx, seasonID, playerID)
			if taskErr == nil {
				result.PlayerStats[idx] = stats
			}
			report(recomputeKindPlayer, playerID, start, taskErr)
		})
	}
	playerGroup.Wait()

	close(taskRows)
	result.Tasks = make([]RecomputeTaskResult, 0, result.TaskCount)
	for row := range taskRows {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].Kind != result.Tasks[j].Kind {
			return result.Tasks[i].Kind < result.Tasks[j].Kind
		}
		return result.Tasks[i].TargetID < result.Tasks[j].TargetID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "season recompute finished",
		"season_id", seasonID,
		"tasks", result.TaskCount,
		"failed", result.FailedCount,
		"workers", result.WorkerCount,
	)
	return result, nil
}

func normalizeRecomputeWorkerCount(value, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 4
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
