package standing

import (
	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
)

// Delta is an additive patch applied atomically to one league standing and
// mirrored (counters and ELO only) onto the player's global record.
type Delta struct {
	Wins              int
	Losses            int
	Draws             int
	Points            int
	Elo               int
	TournamentPoints  int
	TournamentWins    int
	TournamentNonWins int
	TournamentDQs     int
}

func (d Delta) Negate() Delta {
	return Delta{
		Wins:              -d.Wins,
		Losses:            -d.Losses,
		Draws:             -d.Draws,
		Points:            -d.Points,
		Elo:               -d.Elo,
		TournamentPoints:  -d.TournamentPoints,
		TournamentWins:    -d.TournamentWins,
		TournamentNonWins: -d.TournamentNonWins,
		TournamentDQs:     -d.TournamentDQs,
	}
}

func (d Delta) Add(other Delta) Delta {
	return Delta{
		Wins:              d.Wins + other.Wins,
		Losses:            d.Losses + other.Losses,
		Draws:             d.Draws + other.Draws,
		Points:            d.Points + other.Points,
		Elo:               d.Elo + other.Elo,
		TournamentPoints:  d.TournamentPoints + other.TournamentPoints,
		TournamentWins:    d.TournamentWins + other.TournamentWins,
		TournamentNonWins: d.TournamentNonWins + other.TournamentNonWins,
		TournamentDQs:     d.TournamentDQs + other.TournamentDQs,
	}
}

func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Player projects the delta onto the global record.
func (d Delta) Player() PlayerDelta {
	return PlayerDelta{Wins: d.Wins, Losses: d.Losses, Draws: d.Draws, Elo: d.Elo}
}

// PlayerDelta is an additive patch for a global player record.
type PlayerDelta struct {
	Wins   int
	Losses int
	Draws  int
	Elo    int
}

func (d PlayerDelta) IsZero() bool {
	return d == PlayerDelta{}
}

// GameDelta is the contribution of one participant result to the ledger.
// A disqualification counts as a loss with zero league points. Tournament
// counters move only when tournament is true.
func GameDelta(result pod.Result, scoring league.Scoring, tournament bool) Delta {
	var d Delta
	switch result {
	case pod.ResultWin:
		d.Wins = 1
		d.Points = scoring.PointsPerWin
	case pod.ResultLoss:
		d.Losses = 1
		d.Points = scoring.PointsPerLoss
	case pod.ResultDraw:
		d.Draws = 1
		d.Points = scoring.PointsPerDraw
	case pod.ResultDisqualified:
		d.Losses = 1
	default:
		return Delta{}
	}

	if !tournament {
		return d
	}
	switch result {
	case pod.ResultWin:
		d.TournamentWins = 1
		d.TournamentPoints = scoring.TournamentWinPoints
	case pod.ResultDisqualified:
		d.TournamentDQs = 1
		d.TournamentPoints = scoring.TournamentDQPoints
	default:
		d.TournamentNonWins = 1
		d.TournamentPoints = scoring.TournamentNonWinPoints
	}
	return d
}

// ResultChangeDelta is the incremental patch moving a recorded result from
// one value to another without a full reversal.
func ResultChangeDelta(from, to pod.Result, scoring league.Scoring, tournament bool) Delta {
	return GameDelta(to, scoring, tournament).Add(GameDelta(from, scoring, tournament).Negate())
}

// Apply adds the delta to a standing.
func (s Standing) Apply(d Delta) Standing {
	s.Wins += d.Wins
	s.Losses += d.Losses
	s.Draws += d.Draws
	s.TotalPoints += d.Points
	s.EloRating += d.Elo
	s.TournamentPoints += d.TournamentPoints
	s.TournamentWins += d.TournamentWins
	s.TournamentNonWins += d.TournamentNonWins
	s.TournamentDQs += d.TournamentDQs
	return s
}

// Apply adds the delta to a player record.
func (r PlayerRecord) Apply(d PlayerDelta) PlayerRecord {
	r.Wins += d.Wins
	r.Losses += d.Losses
	r.Draws += d.Draws
	r.EloRating += d.Elo
	return r
}
