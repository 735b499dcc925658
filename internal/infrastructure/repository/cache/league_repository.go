package cache

import (
	"context"
	"time"

	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/domain/league"
	basecache "github.com/garretthaima/escalation-league/internal/platform/cache"
)

type cachedLeague struct {
	value  league.League
	exists bool
}

// LeagueRepository caches GetByID in front of next. Locked reads and writes
// always reach next; UpdatePhase through this repository drops the entry,
// and phase changes committed elsewhere are dropped by Invalidate.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.TTL[cachedLeague]
}

func NewLeagueRepository(next league.Repository, ttl time.Duration) *LeagueRepository {
	return &LeagueRepository{
		next:  next,
		cache: basecache.NewTTL[cachedLeague](ttl),
	}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueID, func(ctx context.Context) (cachedLeague, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return cachedLeague{}, err
		}
		return cachedLeague{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}
	return v.value, v.exists, nil
}

func (r *LeagueRepository) GetForUpdate(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.next.GetForUpdate(ctx, leagueID)
}

func (r *LeagueRepository) UpdatePhase(ctx context.Context, l league.League) error {
	if err := r.next.UpdatePhase(ctx, l); err != nil {
		return err
	}
	r.cache.Invalidate(l.ID)
	return nil
}

// Invalidate drops the cached league named by a phase change event. It has
// the event bus handler signature.
func (r *LeagueRepository) Invalidate(_ context.Context, e event.Event) error {
	if e.LeagueID != "" {
		r.cache.Invalidate(e.LeagueID)
	}
	return nil
}
