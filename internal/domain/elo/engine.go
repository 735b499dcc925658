// Package elo computes multiplayer rating changes for a single completed pod.
//
// Every non-disqualified player is compared pairwise against every other
// non-disqualified player; the expected score is the average of those
// pairwise expectations. Seat position then scales the raw change so that
// acting first is rewarded less for a win and punished more for a loss.
package elo

import (
	"math"

	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
)

const StartingRating = standing.StartingElo

// Player is one participant as seen by the engine.
type Player struct {
	PlayerID    string
	CurrentElo  int
	Result      pod.Result
	TurnOrder   int
	GamesPlayed int
}

// Change is the rating outcome for one player. EloBefore is the rating the
// change was computed from and must be stored with the participant.
type Change struct {
	PlayerID  string
	EloChange int
	EloBefore int
}

type seatWeight struct {
	winBonus    float64
	lossPenalty float64
}

var (
	defaultSeatWeight = seatWeight{winBonus: 1.00, lossPenalty: 1.00}
	seatWeights       = map[int]seatWeight{
		1: {winBonus: 0.95, lossPenalty: 1.05},
		2: defaultSeatWeight,
		3: {winBonus: 1.05, lossPenalty: 0.95},
		4: {winBonus: 1.10, lossPenalty: 0.90},
	}
)

// KFactor shrinks as a player accumulates games.
func KFactor(gamesPlayed int) float64 {
	switch {
	case gamesPlayed < 10:
		return 40
	case gamesPlayed < 30:
		return 32
	default:
		return 24
	}
}

// ExpectedScore is the logistic probability of rating beating opponent.
func ExpectedScore(rating, opponent float64) float64 {
	return 1 / (1 + math.Pow(10, (opponent-rating)/400))
}

// ComputeChanges returns one Change per input player, in input order.
func ComputeChanges(players []Player) []Change {
	changes := make([]Change, len(players))
	active := make([]int, 0, len(players))
	for i, p := range players {
		changes[i] = Change{PlayerID: p.PlayerID, EloBefore: rating(p)}
		if p.Result != pod.ResultDisqualified {
			active = append(active, i)
		}
	}
	if len(active) < 2 {
		return changes
	}

	drawGame := true
	for _, idx := range active {
		if players[idx].Result != pod.ResultDraw {
			drawGame = false
			break
		}
	}

	for _, idx := range active {
		p := players[idx]
		self := float64(rating(p))

		var expected float64
		for _, other := range active {
			if other == idx {
				continue
			}
			expected += ExpectedScore(self, float64(rating(players[other])))
		}
		expected /= float64(len(active) - 1)

		actual := 0.0
		switch {
		case drawGame:
			actual = 1 / float64(len(active))
		case p.Result == pod.ResultWin:
			actual = 1
		}

		delta := KFactor(p.GamesPlayed) * (actual - expected)
		weight := weightForSeat(p.TurnOrder)
		switch {
		case delta > 0:
			delta *= weight.winBonus
		case delta < 0:
			delta *= weight.lossPenalty
		}

		changes[idx].EloChange = roundHalfUp(delta)
	}

	return changes
}

// roundHalfUp rounds halves toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func rating(p Player) int {
	if p.CurrentElo <= 0 {
		return StartingRating
	}
	return p.CurrentElo
}

func weightForSeat(turnOrder int) seatWeight {
	if w, ok := seatWeights[turnOrder]; ok {
		return w
	}
	return defaultSeatWeight
}
