package tournament

import (
	"testing"

	"github.com/garretthaima/escalation-league/internal/domain/standing"
)

func TestQualifyingSpots(t *testing.T) {
	cases := []struct {
		n, pct, want int
	}{
		{n: 10, pct: 75, want: 8},
		{n: 11, pct: 75, want: 10},
		{n: 4, pct: 75, want: 4},
		{n: 5, pct: 10, want: 4},
		{n: 5, pct: 100, want: 5},
		{n: 0, pct: 75, want: 0},
	}
	for _, tc := range cases {
		if got := QualifyingSpots(tc.n, tc.pct); got != tc.want {
			t.Fatalf("QualifyingSpots(%d, %d): got=%d want=%d", tc.n, tc.pct, got, tc.want)
		}
	}
}

func TestSortRegularSeason(t *testing.T) {
	rows := []standing.Standing{
		{UserID: "c", TotalPoints: 10, Wins: 2, Losses: 2},
		{UserID: "a", TotalPoints: 12, Wins: 1, Losses: 8},
		{UserID: "b", TotalPoints: 10, Wins: 2, Losses: 1},
		{UserID: "d", TotalPoints: 10, Wins: 3, Losses: 5},
	}
	SortRegularSeason(rows)

	want := []string{"a", "d", "b", "c"}
	for i, row := range rows {
		if row.UserID != want[i] {
			t.Fatalf("position %d: got=%s want=%s", i, row.UserID, want[i])
		}
	}
}

func TestSortTournament(t *testing.T) {
	rows := []standing.Standing{
		{UserID: "a", TournamentPoints: 8, TournamentWins: 1, TournamentSeed: 1},
		{UserID: "b", TournamentPoints: 8, TournamentWins: 2, TournamentSeed: 4},
		{UserID: "c", TournamentPoints: 8, TournamentWins: 1, TournamentSeed: 2},
		{UserID: "d", TournamentPoints: 9, TournamentWins: 0, TournamentSeed: 8},
	}
	SortTournament(rows)

	want := []string{"d", "b", "a", "c"}
	for i, row := range rows {
		if row.UserID != want[i] {
			t.Fatalf("position %d: got=%s want=%s", i, row.UserID, want[i])
		}
	}
}

func TestPodDistribution(t *testing.T) {
	cases := map[int][3]int{
		3:  {0, 1, 0},
		4:  {1, 0, 0},
		5:  {1, 0, 1},
		6:  {0, 2, 0},
		7:  {1, 1, 0},
		9:  {0, 3, 0},
		10: {1, 2, 0},
		11: {2, 1, 0},
		12: {3, 0, 0},
	}
	for n, want := range cases {
		fours, threes, leftover := PodDistribution(n)
		if [3]int{fours, threes, leftover} != want {
			t.Fatalf("PodDistribution(%d): got=%d/%d/%d want=%v", n, fours, threes, leftover, want)
		}
	}
}
