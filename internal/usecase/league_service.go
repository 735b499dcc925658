package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/domain/tournament"
)

type LeagueService struct {
	leagueRepo   league.Repository
	standingRepo standing.Repository
}

func NewLeagueService(leagueRepo league.Repository, standingRepo standing.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
	}
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague", leagueAttr(leagueID))
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

// ListStandings returns the regular-season table ranked by points, wins and
// losses.
func (s *LeagueService) ListStandings(ctx context.Context, leagueID string) ([]RankedStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListStandings", leagueAttr(leagueID))
	defer span.End()

	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	items, err := s.standingRepo.ListByLeague(ctx, strings.TrimSpace(leagueID))
	if err != nil {
		return nil, fmt.Errorf("list league standings: %w", err)
	}
	tournament.SortRegularSeason(items)

	out := make([]RankedStanding, 0, len(items))
	for i, item := range items {
		out = append(out, RankedStanding{Rank: i + 1, Standing: item})
	}
	return out, nil
}
