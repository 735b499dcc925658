package postgres

import "database/sql"

type standingTableModel struct {
	LeagueID              string        `db:"league_id"`
	UserID                string        `db:"user_id"`
	IsActive              bool          `db:"is_active"`
	Disqualified          bool          `db:"disqualified"`
	Wins                  int           `db:"league_wins"`
	Losses                int           `db:"league_losses"`
	Draws                 int           `db:"league_draws"`
	TotalPoints           int           `db:"total_points"`
	EloRating             int           `db:"elo_rating"`
	FinalsQualified       bool          `db:"finals_qualified"`
	TournamentSeed        sql.NullInt64 `db:"tournament_seed"`
	TournamentPoints      int           `db:"tournament_points"`
	TournamentWins        int           `db:"tournament_wins"`
	TournamentNonWins     int           `db:"tournament_non_wins"`
	TournamentDQs         int           `db:"tournament_dqs"`
	ChampionshipQualified bool          `db:"championship_qualified"`
	IsChampion            bool          `db:"is_champion"`
}

type playerTableModel struct {
	ID        string `db:"id"`
	Wins      int    `db:"wins"`
	Losses    int    `db:"losses"`
	Draws     int    `db:"draws"`
	EloRating int    `db:"elo_rating"`
}
