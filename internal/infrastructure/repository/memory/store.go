package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

// Store keeps every aggregate in process memory. Do serializes units of
// work and restores a snapshot when fn fails, which gives the same
// all-or-nothing behavior as a database transaction.
type Store struct {
	txMu sync.Mutex

	mu    sync.RWMutex
	state state

	leagues   *LeagueRepository
	standings *StandingRepository
	pods      *PodRepository
}

type state struct {
	leagues   map[string]league.League
	standings map[string]standing.Standing
	players   map[string]standing.PlayerRecord
	pods      map[string]pod.Pod
}

func NewStore(leagues []league.League, standings []standing.Standing, players []standing.PlayerRecord) *Store {
	st := state{
		leagues:   make(map[string]league.League, len(leagues)),
		standings: make(map[string]standing.Standing, len(standings)),
		players:   make(map[string]standing.PlayerRecord, len(players)),
		pods:      make(map[string]pod.Pod),
	}
	for _, item := range leagues {
		st.leagues[item.ID] = item
	}
	for _, item := range players {
		st.players[item.UserID] = item
	}
	for _, item := range standings {
		if item.EloRating == 0 {
			item.EloRating = standing.StartingElo
		}
		st.standings[standingKey(item.LeagueID, item.UserID)] = item
		if _, ok := st.players[item.UserID]; !ok {
			st.players[item.UserID] = standing.PlayerRecord{UserID: item.UserID, EloRating: standing.StartingElo}
		}
	}

	s := &Store{state: st}
	s.leagues = &LeagueRepository{store: s}
	s.standings = &StandingRepository{store: s}
	s.pods = &PodRepository{store: s}
	return s
}

func (s *Store) Repositories() usecase.Repositories {
	return usecase.Repositories{
		Leagues:   s.leagues,
		Standings: s.standings,
		Pods:      s.pods,
	}
}

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	snapshot := s.state.clone()
	s.mu.RUnlock()

	if err := fn(ctx, s.Repositories()); err != nil {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (st state) clone() state {
	pods := make(map[string]pod.Pod, len(st.pods))
	for id, item := range st.pods {
		pods[id] = clonePod(item)
	}
	return state{
		leagues:   maps.Clone(st.leagues),
		standings: maps.Clone(st.standings),
		players:   maps.Clone(st.players),
		pods:      pods,
	}
}

func standingKey(leagueID, userID string) string {
	return leagueID + "::" + userID
}
