package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/openbeerdie/leaguecore/internal/domain/playoff"
)

type PlayoffRepository struct {
	mu        sync.RWMutex
	byPlayoff map[string][]playoff.Match
}

func NewPlayoffRepository() *PlayoffRepository {
	return &PlayoffRepository{
		byPlayoff: make(map[string][]playoff.Match),
	}
}

func (r *PlayoffRepository) GetMatch(_ context.Context, playoffID, matchID string) (playoff.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byPlayoff[playoffID] {
		if item.ID == matchID {
			return item, true, nil
		}
	}
	return playoff.Match{}, false, nil
}

func (r *PlayoffRepository) ListByPlayoff(_ context.Context, playoffID string) ([]playoff.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byPlayoff[playoffID]
	out := make([]playoff.Match, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *PlayoffRepository) SaveMatches(_ context.Context, matches []playoff.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range matches {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("validate match %s: %w", item.ID, err)
		}
		r.byPlayoff[item.PlayoffID] = append(r.byPlayoff[item.PlayoffID], item)
	}
	return nil
}

func (r *PlayoffRepository) UpdateMatch(_ context.Context, match playoff.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byPlayoff[match.PlayoffID]
	for idx, item := range items {
		if item.ID == match.ID {
			items[idx] = match
			return nil
		}
	}
	return fmt.Errorf("match %s not found in playoff %s", match.ID, match.PlayoffID)
}
