package postgres

import (
	"context"
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/garretthaima/escalation-league/internal/platform/resilience"
	"github.com/garretthaima/escalation-league/internal/usecase"
	"github.com/jmoiron/sqlx"
)

// ErrStore marks failures of the database itself (begin, commit) as opposed
// to errors returned by the unit of work body.
var ErrStore = crerr.New("postgres store failure")

// Store runs units of work as single database transactions behind a circuit
// breaker. While the breaker is open, Do fails fast with
// usecase.ErrDependencyUnavailable.
type Store struct {
	db      *sqlx.DB
	breaker *resilience.Breaker
}

func NewStore(db *sqlx.DB, cfg resilience.BreakerConfig) *Store {
	return &Store{
		db:      db,
		breaker: resilience.NewBreaker(cfg, countsAsOutage),
	}
}

// Repositories returns repositories bound to the pool, outside any transaction.
func (s *Store) Repositories() usecase.Repositories {
	return repositoriesFor(s.db)
}

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	err := s.breaker.Execute(func() error {
		return s.transact(ctx, fn)
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: postgres: %v", usecase.ErrDependencyUnavailable, err)
	}
	return err
}

func (s *Store) transact(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Mark(crerr.Wrap(err, "begin unit of work"), ErrStore)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, repositoriesFor(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Mark(crerr.Wrap(err, "commit unit of work"), ErrStore)
	}
	return nil
}

// countsAsOutage reports whether err says something about database health.
// Rule violations and caller cancellations do not.
func countsAsOutage(err error) bool {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrConflict),
		errors.Is(err, usecase.ErrUnauthorized):
		return false
	default:
		return true
	}
}

func repositoriesFor(db queryer) usecase.Repositories {
	return usecase.Repositories{
		Leagues:   NewLeagueRepository(db),
		Standings: NewStandingRepository(db),
		Pods:      NewPodRepository(db),
	}
}
