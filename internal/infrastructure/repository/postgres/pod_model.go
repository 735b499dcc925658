package postgres

import (
	"database/sql"
	"time"
)

type podTableModel struct {
	ID                 string         `db:"id"`
	LeagueID           string         `db:"league_id"`
	SessionID          sql.NullString `db:"session_id"`
	CreatorID          string         `db:"creator_id"`
	Status             string         `db:"confirmation_status"`
	Result             sql.NullString `db:"result"`
	IsTournamentGame   bool           `db:"is_tournament_game"`
	IsChampionshipGame bool           `db:"is_championship_game"`
	TournamentRound    sql.NullInt64  `db:"tournament_round"`
	Published          bool           `db:"published"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	DeletedAt          sql.NullTime   `db:"deleted_at"`
}

type participantTableModel struct {
	PodID     string         `db:"pod_id"`
	PlayerID  string         `db:"player_id"`
	Result    sql.NullString `db:"result"`
	Confirmed bool           `db:"confirmed"`
	TurnOrder sql.NullInt64  `db:"turn_order"`
	EloChange int            `db:"elo_change"`
	EloBefore sql.NullInt64  `db:"elo_before"`
	DeletedAt sql.NullTime   `db:"deleted_at"`
}
