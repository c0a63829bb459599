package memory

import (
	"context"
	"sync"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
)

type GameRepository struct {
	mu            sync.RWMutex
	games         []game.Game
	gamesBySeason map[string][]game.Game
	byID          map[string]game.Game
}

func NewGameRepository(games []game.Game) *GameRepository {
	r := &GameRepository{
		games:         append([]game.Game(nil), games...),
		gamesBySeason: make(map[string][]game.Game),
		byID:          make(map[string]game.Game, len(games)),
	}
	for _, item := range games {
		r.gamesBySeason[item.SeasonID] = append(r.gamesBySeason[item.SeasonID], item)
		r.byID[item.ID] = item
	}
	return r
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[gameID]
	return item, ok, nil
}

func (r *GameRepository) ListBySeason(_ context.Context, seasonID string) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.gamesBySeason[seasonID]
	out := make([]game.Game, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	out = append(out, r.games...)
	return out, nil
}
