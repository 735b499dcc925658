package postgres

import (
	"context"
	"fmt"

	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/jmoiron/sqlx"
	qb "github.com/garretthaima/escalation-league/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db queryer
}

func NewLeagueRepository(db queryer) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.get(ctx, leagueID, false)
}

// GetForUpdate locks the league row until the surrounding transaction ends.
func (r *LeagueRepository) GetForUpdate(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.get(ctx, leagueID, true)
}

func (r *LeagueRepository) get(ctx context.Context, leagueID string, lock bool) (league.League, bool, error) {
	builder := qb.Select("*").From("leagues").Where(qb.Eq("id", leagueID))
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	out, err := leagueFromRow(row)
	if err != nil {
		return league.League{}, false, err
	}
	return out, true, nil
}

func (r *LeagueRepository) UpdatePhase(ctx context.Context, l league.League) error {
	query, args, err := qb.Update("leagues").
		Set("phase", string(l.Phase)).
		Set("regular_season_locked_at", nullTime(l.RegularSeasonLockedAt)).
		Set("tournament_completed_at", nullTime(l.TournamentCompletedAt)).
		SetNow("updated_at").
		Where(qb.Eq("id", l.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league phase query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update league phase: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update league phase: league=%s not found", l.ID)
	}
	return nil
}

func leagueFromRow(row leagueTableModel) (league.League, error) {
	phase, err := league.ParsePhase(row.Phase)
	if err != nil {
		return league.League{}, fmt.Errorf("decode league %s: %w", row.ID, err)
	}

	return league.League{
		ID:    row.ID,
		Name:  row.Name,
		Phase: phase,
		Settings: league.Settings{
			PointsPerWin:                   intPtr(row.PointsPerWin),
			PointsPerLoss:                  intPtr(row.PointsPerLoss),
			PointsPerDraw:                  intPtr(row.PointsPerDraw),
			TournamentWinPoints:            intPtr(row.TournamentWinPoints),
			TournamentNonWinPoints:         intPtr(row.TournamentNonWinPoints),
			TournamentDQPoints:             intPtr(row.TournamentDQPoints),
			TournamentQualificationPercent: intPtr(row.TournamentQualificationPercent),
		},
		RegularSeasonLockedAt: timePtr(row.RegularSeasonLockedAt),
		TournamentCompletedAt: timePtr(row.TournamentCompletedAt),
	}, nil
}
