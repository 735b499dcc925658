package standing

import "context"

// Repository describes standings persistence. Increment and IncrementPlayer
// must be atomic read-modify-write operations and report found=false when the
// target row does not exist.
type Repository interface {
	Get(ctx context.Context, leagueID, userID string) (Standing, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Standing, error)
	Increment(ctx context.Context, leagueID, userID string, d Delta) (bool, error)
	GetPlayer(ctx context.Context, userID string) (PlayerRecord, bool, error)
	IncrementPlayer(ctx context.Context, userID string, d PlayerDelta) (bool, error)
	UpdateTournament(ctx context.Context, leagueID, userID string, t Tournament) error
	ResetTournament(ctx context.Context, leagueID string) error
}
