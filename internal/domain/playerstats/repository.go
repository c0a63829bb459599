package playerstats

import "context"

// Repository exposes granular throw-line reads. Implementations may return
// no rows at all; accuracy is simply absent then.
type Repository interface {
	ListLinesBySeason(ctx context.Context, seasonID string) ([]GameLine, error)
	ListLinesByPlayer(ctx context.Context, seasonID, playerID string) ([]GameLine, error)
}
