package usecase

import (
	"context"

	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
)

// Repositories bundles the persistence ports bound to one store handle.
type Repositories struct {
	Leagues   league.Repository
	Standings standing.Repository
	Pods      pod.Repository
}

// UnitOfWork runs fn inside a single transaction. Any error returned by fn
// rolls back every write made through the repositories it was given.
// Repositories returns handles for reads outside a transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	Repositories() Repositories
}
