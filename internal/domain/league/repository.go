package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetForUpdate(ctx context.Context, leagueID string) (League, bool, error)
	UpdatePhase(ctx context.Context, l League) error
}
