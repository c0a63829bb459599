package game

import "context"

// Repository exposes game read operations.
type Repository interface {
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Game, error)
	List(ctx context.Context) ([]Game, error)
}
