package cache

import (
	"context"
	"testing"
	"time"

	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/domain/league"
	leaguemock "github.com/garretthaima/escalation-league/internal/mocks/domain/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeagueRepository_CachesUntilPhaseChange(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)

	regular := league.League{ID: "l1", Name: "Spring", Phase: league.PhaseRegularSeason}
	tournament := regular
	tournament.Phase = league.PhaseTournament

	next.On("GetByID", mock.Anything, "l1").Return(regular, true, nil).Once()
	next.On("GetByID", mock.Anything, "l1").Return(tournament, true, nil).Once()

	repo := NewLeagueRepository(next, time.Minute)

	for range 3 {
		got, ok, err := repo.GetByID(ctx, "l1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, league.PhaseRegularSeason, got.Phase)
	}

	require.NoError(t, repo.Invalidate(ctx, event.Event{Name: event.TournamentPhaseChanged, LeagueID: "l1"}))

	got, ok, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, league.PhaseTournament, got.Phase)
}

func TestLeagueRepository_CachesMissingLeague(t *testing.T) {
	next := leaguemock.NewRepository(t)
	next.On("GetByID", mock.Anything, "missing").Return(league.League{}, false, nil).Once()

	repo := NewLeagueRepository(next, time.Minute)
	for range 2 {
		_, ok, err := repo.GetByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestLeagueRepository_UpdatePhaseInvalidates(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)

	item := league.League{ID: "l1", Name: "Spring", Phase: league.PhaseRegularSeason}
	next.On("GetByID", mock.Anything, "l1").Return(item, true, nil).Twice()
	next.On("UpdatePhase", mock.Anything, mock.Anything).Return(nil).Once()

	repo := NewLeagueRepository(next, time.Minute)
	_, _, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePhase(ctx, item))
	_, _, err = repo.GetByID(ctx, "l1")
	require.NoError(t, err)
}
