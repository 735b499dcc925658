package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID                             string        `db:"id"`
	Name                           string        `db:"name"`
	Phase                          string        `db:"phase"`
	PointsPerWin                   sql.NullInt64 `db:"points_per_win"`
	PointsPerLoss                  sql.NullInt64 `db:"points_per_loss"`
	PointsPerDraw                  sql.NullInt64 `db:"points_per_draw"`
	TournamentWinPoints            sql.NullInt64 `db:"tournament_win_points"`
	TournamentNonWinPoints         sql.NullInt64 `db:"tournament_non_win_points"`
	TournamentDQPoints             sql.NullInt64 `db:"tournament_dq_points"`
	TournamentQualificationPercent sql.NullInt64 `db:"tournament_qualification_percent"`
	RegularSeasonLockedAt          sql.NullTime  `db:"regular_season_locked_at"`
	TournamentCompletedAt          sql.NullTime  `db:"tournament_completed_at"`
	CreatedAt                      time.Time     `db:"created_at"`
	UpdatedAt                      time.Time     `db:"updated_at"`
}
