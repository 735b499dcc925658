package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"

	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/infrastructure/repository/memory"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

type countingRecorder struct {
	applied  int
	reversed int
}

func (r *countingRecorder) LedgerApplied(string, int)  { r.applied++ }
func (r *countingRecorder) LedgerReversed(string, int) { r.reversed++ }

func randomRoster(faker *gofakeit.Faker) []pod.Participant {
	size := faker.Number(pod.MinRoster, pod.MaxRoster)
	winner := faker.Number(-1, size-1)
	nonWins := []pod.Result{pod.ResultLoss, pod.ResultDraw, pod.ResultDisqualified}

	out := make([]pod.Participant, 0, size)
	for i := range size {
		result := nonWins[faker.Number(0, len(nonWins)-1)]
		if i == winner {
			result = pod.ResultWin
		}
		out = append(out, pod.Participant{
			PodID:     "pod-1",
			PlayerID:  fmt.Sprintf("p%d", i),
			Result:    result,
			Confirmed: true,
			TurnOrder: i + 1,
		})
	}
	return out
}

func randomStandings(faker *gofakeit.Faker, roster []pod.Participant) []standing.Standing {
	out := make([]standing.Standing, 0, len(roster))
	for _, p := range roster {
		out = append(out, standing.Standing{
			LeagueID:          testLeagueID,
			UserID:            p.PlayerID,
			IsActive:          true,
			Wins:              faker.Number(0, 20),
			Losses:            faker.Number(0, 20),
			Draws:             faker.Number(0, 5),
			TotalPoints:       faker.Number(0, 120),
			EloRating:         faker.Number(1200, 1800),
			FinalsQualified:   true,
			TournamentSeed:    faker.Number(1, 16),
			TournamentPoints:  faker.Number(0, 16),
			TournamentWins:    faker.Number(0, 4),
			TournamentNonWins: faker.Number(0, 4),
		})
	}
	return out
}

func TestStatsLedger_ReverseUndoesApply(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(20260301)
	for i := range 200 {
		roster := randomRoster(faker)
		settings := league.Settings{
			PointsPerWin:           intRef(faker.Number(0, 6)),
			PointsPerLoss:          intRef(faker.Number(0, 2)),
			TournamentWinPoints:    intRef(faker.Number(1, 6)),
			TournamentNonWinPoints: intRef(faker.Number(0, 2)),
		}
		scoring := settings.WithDefaults()
		tournamentGame := faker.Bool()

		store := memory.NewStore(
			[]league.League{{ID: testLeagueID, Name: "Property", Settings: settings}},
			randomStandings(faker, roster),
			nil,
		)
		recorder := &countingRecorder{}
		ledger := usecase.NewStatsLedger(recorder, logging.NewNop())
		repos := store.Repositories()

		before, err := repos.Standings.ListByLeague(t.Context(), testLeagueID)
		if err != nil {
			t.Fatalf("case %d: list: %v", i, err)
		}

		err = store.Do(t.Context(), func(ctx context.Context, repos usecase.Repositories) error {
			if err := ledger.ApplyGameStats(ctx, repos, testLeagueID, scoring, roster, tournamentGame); err != nil {
				return err
			}
			rated, err := ledger.ApplyEloChanges(ctx, repos, testLeagueID, roster)
			if err != nil {
				return err
			}
			return ledger.ReverseGameStats(ctx, repos, testLeagueID, scoring, rated, tournamentGame)
		})
		if err != nil {
			t.Fatalf("case %d: apply/reverse: %v", i, err)
		}

		after, err := repos.Standings.ListByLeague(t.Context(), testLeagueID)
		if err != nil {
			t.Fatalf("case %d: list: %v", i, err)
		}
		if diff := cmp.Diff(before, after); diff != "" {
			t.Fatalf("case %d: reverse(apply(S)) != S (-want +got):\n%s", i, diff)
		}
		if recorder.applied != 1 || recorder.reversed != 1 {
			t.Fatalf("case %d: recorder saw applied=%d reversed=%d", i, recorder.applied, recorder.reversed)
		}
	}
}

func TestStatsLedger_ApplyGameStatsTournamentTable(t *testing.T) {
	t.Parallel()

	roster := []pod.Participant{
		{PlayerID: "a", Result: pod.ResultWin, TurnOrder: 1},
		{PlayerID: "b", Result: pod.ResultLoss, TurnOrder: 2},
		{PlayerID: "c", Result: pod.ResultDisqualified, TurnOrder: 3},
	}
	store := memory.NewStore(
		[]league.League{{ID: testLeagueID, Name: "Finals"}},
		[]standing.Standing{
			{LeagueID: testLeagueID, UserID: "a"},
			{LeagueID: testLeagueID, UserID: "b"},
			{LeagueID: testLeagueID, UserID: "c"},
		},
		nil,
	)
	ledger := usecase.NewStatsLedger(nil, nil)
	scoring := league.Settings{}.WithDefaults()

	if err := ledger.ApplyGameStats(t.Context(), store.Repositories(), testLeagueID, scoring, roster, true); err != nil {
		t.Fatalf("apply: %v", err)
	}

	want := map[string]standing.Standing{
		"a": {Wins: 1, TotalPoints: 4, TournamentPoints: 4, TournamentWins: 1},
		"b": {Losses: 1, TotalPoints: 1, TournamentPoints: 1, TournamentNonWins: 1},
		"c": {Losses: 1, TournamentDQs: 1},
	}
	for id, w := range want {
		got, _, _ := store.Repositories().Standings.Get(t.Context(), testLeagueID, id)
		w.LeagueID, w.UserID, w.EloRating = testLeagueID, id, standing.StartingElo
		if diff := cmp.Diff(w, got); diff != "" {
			t.Fatalf("standing %s mismatch (-want +got):\n%s", id, diff)
		}
	}
}
