package memory

import (
	"context"
	"sync"

	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
)

// PlayerStatsRepository stores granular throw lines. Leagues that never
// track throws just construct it with no rows.
type PlayerStatsRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]playerstats.GameLine
}

func NewPlayerStatsRepository(lines []playerstats.GameLine) *PlayerStatsRepository {
	r := &PlayerStatsRepository{
		bySeason: make(map[string][]playerstats.GameLine),
	}
	for _, item := range lines {
		r.bySeason[item.SeasonID] = append(r.bySeason[item.SeasonID], item)
	}
	return r
}

func (r *PlayerStatsRepository) ListLinesBySeason(_ context.Context, seasonID string) ([]playerstats.GameLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonID]
	out := make([]playerstats.GameLine, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *PlayerStatsRepository) ListLinesByPlayer(_ context.Context, seasonID, playerID string) ([]playerstats.GameLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.GameLine, 0, 8)
	for _, item := range r.bySeason[seasonID] {
		if item.PlayerID == playerID {
			out = append(out, item)
		}
	}
	return out, nil
}
