package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/garretthaima/escalation-league/internal/domain/standing"
)

type StandingRepository struct {
	store *Store
}

func (r *StandingRepository) Get(_ context.Context, leagueID, userID string) (standing.Standing, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.state.standings[standingKey(leagueID, userID)]
	return item, ok, nil
}

func (r *StandingRepository) ListByLeague(_ context.Context, leagueID string) ([]standing.Standing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for _, item := range r.store.state.standings {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	slices.SortFunc(out, func(a, b standing.Standing) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return out, nil
}

func (r *StandingRepository) Increment(_ context.Context, leagueID, userID string, d standing.Delta) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := standingKey(leagueID, userID)
	item, ok := r.store.state.standings[key]
	if !ok {
		return false, nil
	}
	r.store.state.standings[key] = item.Apply(d)
	return true, nil
}

func (r *StandingRepository) GetPlayer(_ context.Context, userID string) (standing.PlayerRecord, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.state.players[userID]
	return item, ok, nil
}

func (r *StandingRepository) IncrementPlayer(_ context.Context, userID string, d standing.PlayerDelta) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.state.players[userID]
	if !ok {
		return false, nil
	}
	r.store.state.players[userID] = item.Apply(d)
	return true, nil
}

func (r *StandingRepository) UpdateTournament(_ context.Context, leagueID, userID string, t standing.Tournament) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := standingKey(leagueID, userID)
	item, ok := r.store.state.standings[key]
	if !ok {
		return fmt.Errorf("standing not found: league=%s user=%s", leagueID, userID)
	}
	r.store.state.standings[key] = item.WithTournament(t)
	return nil
}

func (r *StandingRepository) ResetTournament(_ context.Context, leagueID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for key, item := range r.store.state.standings {
		if item.LeagueID == leagueID {
			r.store.state.standings[key] = item.WithTournament(standing.Tournament{})
		}
	}
	return nil
}
