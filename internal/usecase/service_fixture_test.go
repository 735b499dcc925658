package usecase_test

import (
	"testing"

	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/infrastructure/repository/memory"
	idgen "github.com/garretthaima/escalation-league/internal/platform/id"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/garretthaima/escalation-league/internal/platform/random"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

const testLeagueID = "league-1"

type fixture struct {
	store       *memory.Store
	ledger      *usecase.StatsLedger
	pods        *usecase.PodService
	tournaments *usecase.TournamentService
	matchups    *usecase.MatchupService
	publisher   *recordingPublisher
}

func newFixture(t *testing.T, players []string, settings league.Settings) *fixture {
	t.Helper()

	standings := make([]standing.Standing, 0, len(players))
	for _, id := range players {
		standings = append(standings, standing.Standing{LeagueID: testLeagueID, UserID: id, IsActive: true})
	}
	return newFixtureWithStandings(t, standings, settings)
}

func newFixtureWithStandings(t *testing.T, standings []standing.Standing, settings league.Settings) *fixture {
	t.Helper()

	store := memory.NewStore(
		[]league.League{{ID: testLeagueID, Name: "Test League", Phase: league.PhaseRegularSeason, Settings: settings}},
		standings,
		nil,
	)

	logger := logging.NewNop()
	ids := &idgen.Sequence{Prefix: "pod-"}
	publisher := &recordingPublisher{}
	ledger := usecase.NewStatsLedger(nil, logger)

	return &fixture{
		store:       store,
		ledger:      ledger,
		pods:        usecase.NewPodService(store, ledger, ids, publisher, logger),
		tournaments: usecase.NewTournamentService(store, ids, random.NewSeeded(7), publisher, "", logger),
		matchups:    usecase.NewMatchupService(store, random.NewSeeded(11), logger),
		publisher:   publisher,
	}
}

func (f *fixture) standing(t *testing.T, userID string) standing.Standing {
	t.Helper()

	row, ok, err := f.store.Repositories().Standings.Get(t.Context(), testLeagueID, userID)
	if err != nil || !ok {
		t.Fatalf("get standing %s: ok=%v err=%v", userID, ok, err)
	}
	return row
}

func (f *fixture) player(t *testing.T, userID string) standing.PlayerRecord {
	t.Helper()

	row, ok, err := f.store.Repositories().Standings.GetPlayer(t.Context(), userID)
	if err != nil || !ok {
		t.Fatalf("get player %s: ok=%v err=%v", userID, ok, err)
	}
	return row
}

func (f *fixture) standings(t *testing.T) []standing.Standing {
	t.Helper()

	rows, err := f.store.Repositories().Standings.ListByLeague(t.Context(), testLeagueID)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	return rows
}

// play confirms every active participant, winner declaring a win and the rest
// a loss, and returns the completed pod.
func (f *fixture) play(t *testing.T, podID, winner string) pod.Pod {
	t.Helper()

	current, err := f.pods.Get(t.Context(), podID)
	if err != nil {
		t.Fatalf("get pod: %v", err)
	}

	var out pod.Pod
	for _, participant := range current.Active() {
		result := pod.ResultLoss
		if participant.PlayerID == winner {
			result = pod.ResultWin
		}
		out, err = f.pods.DeclareResult(t.Context(), usecase.DeclareResultInput{
			PodID:    podID,
			PlayerID: participant.PlayerID,
			Result:   result,
		})
		if err != nil {
			t.Fatalf("declare %s for %s: %v", result, participant.PlayerID, err)
		}
	}
	if out.Status != pod.StatusComplete {
		t.Fatalf("pod %s should be complete, got %s", podID, out.Status)
	}
	return out
}

func (f *fixture) createFull(t *testing.T, roster ...string) pod.Pod {
	t.Helper()

	created, err := f.pods.Create(t.Context(), usecase.CreatePodInput{
		LeagueID:       testLeagueID,
		CreatorID:      roster[0],
		ParticipantIDs: roster,
	})
	if err != nil {
		t.Fatalf("create pod: %v", err)
	}
	return created
}

func intRef(v int) *int {
	return &v
}
