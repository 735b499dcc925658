package postgres

import (
	"context"
	"fmt"

	"github.com/garretthaima/escalation-league/internal/infrastructure/repository/memory"
	"github.com/jmoiron/sqlx"
)

// BootstrapSeed loads the demo league into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		query, args, err := sqlx.Named(`
INSERT INTO leagues (id, name, phase)
VALUES (:id, :name, :phase)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":    l.ID,
			"name":  l.Name,
			"phase": string(l.Phase),
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, item := range memory.SeedStandings() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO users (id, elo_rating) VALUES ($1, $2)
ON CONFLICT (id) DO NOTHING`, item.UserID, item.EloRating); err != nil {
			return fmt.Errorf("seed user %s: %w", item.UserID, err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO league_standings (league_id, user_id, is_active, elo_rating) VALUES ($1, $2, $3, $4)
ON CONFLICT (league_id, user_id) DO NOTHING`, item.LeagueID, item.UserID, item.IsActive, item.EloRating); err != nil {
			return fmt.Errorf("seed standing %s: %w", item.UserID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
