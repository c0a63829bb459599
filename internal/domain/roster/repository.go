package roster

import "context"

// Repository exposes roster membership read operations.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Membership, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Membership, error)
}
