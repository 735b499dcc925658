package standing

// StartingElo is the rating every player and league standing starts from.
const StartingElo = 1500

// Standing is one player's progress record inside a league.
type Standing struct {
	LeagueID     string
	UserID       string
	IsActive     bool
	Disqualified bool
	Wins         int
	Losses       int
	Draws        int
	TotalPoints  int
	EloRating    int

	FinalsQualified       bool
	TournamentSeed        int
	TournamentPoints      int
	TournamentWins        int
	TournamentNonWins     int
	TournamentDQs         int
	ChampionshipQualified bool
	IsChampion            bool
}

func (s Standing) GamesPlayed() int {
	return s.Wins + s.Losses + s.Draws
}

// Tournament is the subset of a standing written by phase transitions.
type Tournament struct {
	FinalsQualified       bool
	TournamentSeed        int
	TournamentPoints      int
	TournamentWins        int
	TournamentNonWins     int
	TournamentDQs         int
	ChampionshipQualified bool
	IsChampion            bool
}

func (s Standing) Tournament() Tournament {
	return Tournament{
		FinalsQualified:       s.FinalsQualified,
		TournamentSeed:        s.TournamentSeed,
		TournamentPoints:      s.TournamentPoints,
		TournamentWins:        s.TournamentWins,
		TournamentNonWins:     s.TournamentNonWins,
		TournamentDQs:         s.TournamentDQs,
		ChampionshipQualified: s.ChampionshipQualified,
		IsChampion:            s.IsChampion,
	}
}

// WithTournament returns a copy carrying the given tournament fields.
func (s Standing) WithTournament(t Tournament) Standing {
	s.FinalsQualified = t.FinalsQualified
	s.TournamentSeed = t.TournamentSeed
	s.TournamentPoints = t.TournamentPoints
	s.TournamentWins = t.TournamentWins
	s.TournamentNonWins = t.TournamentNonWins
	s.TournamentDQs = t.TournamentDQs
	s.ChampionshipQualified = t.ChampionshipQualified
	s.IsChampion = t.IsChampion
	return s
}

// PlayerRecord is the league-independent record of one user.
type PlayerRecord struct {
	UserID    string
	Wins      int
	Losses    int
	Draws     int
	EloRating int
}

func (r PlayerRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Draws
}
