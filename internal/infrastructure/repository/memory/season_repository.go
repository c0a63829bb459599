package memory

import (
	"context"
	"sync"

	"github.com/openbeerdie/leaguecore/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons []season.Season
	byID    map[string]season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	r := &SeasonRepository{
		seasons: append([]season.Season(nil), seasons...),
		byID:    make(map[string]season.Season, len(seasons)),
	}
	for _, item := range seasons {
		r.byID[item.ID] = item
	}
	return r
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[seasonID]
	return item, ok, nil
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.seasons))
	out = append(out, r.seasons...)
	return out, nil
}
