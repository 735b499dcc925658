package postgres

import (
	"context"
	"fmt"

	"github.com/garretthaima/escalation-league/internal/domain/standing"
	qb "github.com/garretthaima/escalation-league/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const standingsTable = "league_standings"

type StandingRepository struct {
	db queryer
}

func NewStandingRepository(db queryer) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) Get(ctx context.Context, leagueID, userID string) (standing.Standing, bool, error) {
	query, args, err := qb.Select("*").From(standingsTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return standing.Standing{}, false, fmt.Errorf("build get standing query: %w", err)
	}

	var row standingTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return standing.Standing{}, false, nil
		}
		return standing.Standing{}, false, fmt.Errorf("get standing: %w", err)
	}

	return standingFromRow(row), true, nil
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From(standingsTable).
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingFromRow(row))
	}
	return out, nil
}

// Increment applies d in one UPDATE so concurrent callers never lose writes.
func (r *StandingRepository) Increment(ctx context.Context, leagueID, userID string, d standing.Delta) (bool, error) {
	query, args, err := qb.Update(standingsTable).
		Increment("league_wins", d.Wins).
		Increment("league_losses", d.Losses).
		Increment("league_draws", d.Draws).
		Increment("total_points", d.Points).
		Increment("elo_rating", d.Elo).
		Increment("tournament_points", d.TournamentPoints).
		Increment("tournament_wins", d.TournamentWins).
		Increment("tournament_non_wins", d.TournamentNonWins).
		Increment("tournament_dqs", d.TournamentDQs).
		SetNow("updated_at").
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build increment standing query: %w", err)
	}

	return execAffected(ctx, r.db, "increment standing", query, args)
}

func (r *StandingRepository) GetPlayer(ctx context.Context, userID string) (standing.PlayerRecord, bool, error) {
	query, args, err := qb.Select("id", "wins", "losses", "draws", "elo_rating").
		From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return standing.PlayerRecord{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return standing.PlayerRecord{}, false, nil
		}
		return standing.PlayerRecord{}, false, fmt.Errorf("get player: %w", err)
	}

	return standing.PlayerRecord{
		UserID:    row.ID,
		Wins:      row.Wins,
		Losses:    row.Losses,
		Draws:     row.Draws,
		EloRating: row.EloRating,
	}, true, nil
}

func (r *StandingRepository) IncrementPlayer(ctx context.Context, userID string, d standing.PlayerDelta) (bool, error) {
	query, args, err := qb.Update("users").
		Increment("wins", d.Wins).
		Increment("losses", d.Losses).
		Increment("draws", d.Draws).
		Increment("elo_rating", d.Elo).
		SetNow("updated_at").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build increment player query: %w", err)
	}

	return execAffected(ctx, r.db, "increment player", query, args)
}

func (r *StandingRepository) UpdateTournament(ctx context.Context, leagueID, userID string, t standing.Tournament) error {
	query, args, err := updateTournamentFields(qb.Update(standingsTable), t).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update tournament standing query: %w", err)
	}

	found, err := execAffected(ctx, r.db, "update tournament standing", query, args)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("standing not found: league=%s user=%s", leagueID, userID)
	}
	return nil
}

func (r *StandingRepository) ResetTournament(ctx context.Context, leagueID string) error {
	query, args, err := updateTournamentFields(qb.Update(standingsTable), standing.Tournament{}).
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build reset tournament standings query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset tournament standings: %w", err)
	}
	return nil
}

func updateTournamentFields(b *qb.UpdateBuilder, t standing.Tournament) *qb.UpdateBuilder {
	return b.
		Set("finals_qualified", t.FinalsQualified).
		Set("tournament_seed", nullPositive(t.TournamentSeed)).
		Set("tournament_points", t.TournamentPoints).
		Set("tournament_wins", t.TournamentWins).
		Set("tournament_non_wins", t.TournamentNonWins).
		Set("tournament_dqs", t.TournamentDQs).
		Set("championship_qualified", t.ChampionshipQualified).
		Set("is_champion", t.IsChampion).
		SetNow("updated_at")
}

func execAffected(ctx context.Context, db queryer, op, query string, args []any) (bool, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n > 0, nil
}

func standingFromRow(row standingTableModel) standing.Standing {
	return standing.Standing{
		LeagueID:              row.LeagueID,
		UserID:                row.UserID,
		IsActive:              row.IsActive,
		Disqualified:          row.Disqualified,
		Wins:                  row.Wins,
		Losses:                row.Losses,
		Draws:                 row.Draws,
		TotalPoints:           row.TotalPoints,
		EloRating:             row.EloRating,
		FinalsQualified:       row.FinalsQualified,
		TournamentSeed:        nullIntValue(row.TournamentSeed),
		TournamentPoints:      row.TournamentPoints,
		TournamentWins:        row.TournamentWins,
		TournamentNonWins:     row.TournamentNonWins,
		TournamentDQs:         row.TournamentDQs,
		ChampionshipQualified: row.ChampionshipQualified,
		IsChampion:            row.IsChampion,
	}
}
