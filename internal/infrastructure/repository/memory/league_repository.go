package memory

import (
	"context"
	"fmt"

	"github.com/garretthaima/escalation-league/internal/domain/league"
)

type LeagueRepository struct {
	store *Store
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.state.leagues[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

// GetForUpdate needs no extra locking: Store.Do already runs one unit of
// work at a time.
func (r *LeagueRepository) GetForUpdate(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.GetByID(ctx, leagueID)
}

func (r *LeagueRepository) UpdatePhase(_ context.Context, l league.League) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.state.leagues[l.ID]
	if !ok {
		return fmt.Errorf("league not found: %s", l.ID)
	}
	current.Phase = l.Phase
	current.RegularSeasonLockedAt = l.RegularSeasonLockedAt
	current.TournamentCompletedAt = l.TournamentCompletedAt
	r.store.state.leagues[l.ID] = current
	return nil
}
