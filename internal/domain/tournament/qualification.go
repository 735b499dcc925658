package tournament

import (
	"cmp"
	"slices"

	"github.com/garretthaima/escalation-league/internal/domain/standing"
)

const (
	// MinQualified is the smallest field a tournament can run with.
	MinQualified     = 4
	ChampionshipSize = 4
)

// QualifyingSpots is ceil(n*percent/100) rounded up to an even number,
// clamped to [4, n].
func QualifyingSpots(n, percent int) int {
	if n <= 0 {
		return 0
	}
	spots := (n*percent + 99) / 100
	if spots%2 == 1 {
		spots++
	}
	spots = max(spots, MinQualified)
	return min(spots, n)
}

// SortRegularSeason orders by total points desc, wins desc, losses asc.
func SortRegularSeason(standings []standing.Standing) {
	slices.SortStableFunc(standings, func(a, b standing.Standing) int {
		return cmp.Or(
			cmp.Compare(b.TotalPoints, a.TotalPoints),
			cmp.Compare(b.Wins, a.Wins),
			cmp.Compare(a.Losses, b.Losses),
			cmp.Compare(a.UserID, b.UserID),
		)
	})
}

// SortTournament orders by tournament points desc, tournament wins desc,
// seed asc.
func SortTournament(standings []standing.Standing) {
	slices.SortStableFunc(standings, func(a, b standing.Standing) int {
		return cmp.Or(
			cmp.Compare(b.TournamentPoints, a.TournamentPoints),
			cmp.Compare(b.TournamentWins, a.TournamentWins),
			cmp.Compare(seedOrder(a), seedOrder(b)),
			cmp.Compare(a.UserID, b.UserID),
		)
	})
}

// SortBySeed orders qualified players by their tournament seed.
func SortBySeed(standings []standing.Standing) {
	slices.SortStableFunc(standings, func(a, b standing.Standing) int {
		return cmp.Or(cmp.Compare(seedOrder(a), seedOrder(b)), cmp.Compare(a.UserID, b.UserID))
	})
}

// unseeded players sort last
func seedOrder(s standing.Standing) int {
	if s.TournamentSeed <= 0 {
		return int(^uint(0) >> 1)
	}
	return s.TournamentSeed
}

// PodDistribution splits n players into as many 4-player pods as possible
// with the rest in 3-player pods. Leftover is non-zero only when no such
// split exists (n = 1, 2 or 5).
func PodDistribution(n int) (fours, threes, leftover int) {
	for threes = 0; threes < 4 && 3*threes <= n; threes++ {
		if (n-3*threes)%4 == 0 {
			return (n - 3*threes) / 4, threes, 0
		}
	}
	return n / 4, 0, n % 4
}
