package memory

import (
	"context"
	"sync"

	"github.com/openbeerdie/leaguecore/internal/domain/roster"
)

type RosterRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]roster.Membership
	byPlayer map[string][]roster.Membership
}

func NewRosterRepository(memberships []roster.Membership) *RosterRepository {
	r := &RosterRepository{
		bySeason: make(map[string][]roster.Membership),
		byPlayer: make(map[string][]roster.Membership),
	}
	for _, item := range memberships {
		r.bySeason[item.SeasonID] = append(r.bySeason[item.SeasonID], item)
		r.byPlayer[item.PlayerID] = append(r.byPlayer[item.PlayerID], item)
	}
	return r
}

func (r *RosterRepository) ListBySeason(_ context.Context, seasonID string) ([]roster.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonID]
	out := make([]roster.Membership, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *RosterRepository) ListByPlayer(_ context.Context, playerID string) ([]roster.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byPlayer[playerID]
	out := make([]roster.Membership, 0, len(items))
	out = append(out, items...)
	return out, nil
}
