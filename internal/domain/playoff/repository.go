package playoff

import "context"

// Repository owns playoff match persistence. The core computes bracket
// mutations; the caller-supplied implementation decides where they land.
type Repository interface {
	GetMatch(ctx context.Context, playoffID, matchID string) (Match, bool, error)
	ListByPlayoff(ctx context.Context, playoffID string) ([]Match, error)
	SaveMatches(ctx context.Context, matches []Match) error
	UpdateMatch(ctx context.Context, match Match) error
}
