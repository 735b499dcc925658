package usecase_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/domain/tournament"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

func rankedPlayers(n int) []standing.Standing {
	out := make([]standing.Standing, 0, n)
	for i := range n {
		out = append(out, standing.Standing{
			LeagueID:    testLeagueID,
			UserID:      fmt.Sprintf("p%02d", i+1),
			IsActive:    true,
			TotalPoints: 100 - i,
			Wins:        10,
		})
	}
	return out
}

func TestTournamentService_EndRegularSeasonSeedsTopSlice(t *testing.T) {
	t.Parallel()

	rows := rankedPlayers(10)
	rows[9].TournamentPoints = 7
	rows[9].IsChampion = true
	rows = append(rows, standing.Standing{LeagueID: testLeagueID, UserID: "inactive", TotalPoints: 500})
	f := newFixtureWithStandings(t, rows, league.Settings{})

	result, err := f.tournaments.EndRegularSeason(t.Context(), testLeagueID)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Eligible)
	assert.Equal(t, 8, result.Spots)
	require.Len(t, result.Qualified, 8)

	for i := range 10 {
		row := f.standing(t, fmt.Sprintf("p%02d", i+1))
		if i < 8 {
			assert.True(t, row.FinalsQualified, row.UserID)
			assert.Equal(t, i+1, row.TournamentSeed, row.UserID)
			continue
		}
		assert.Equal(t, standing.Tournament{}, row.Tournament(), row.UserID)
	}
	assert.False(t, f.standing(t, "inactive").FinalsQualified)

	lg, _, _ := f.store.Repositories().Leagues.GetByID(t.Context(), testLeagueID)
	assert.Equal(t, league.PhaseTournament, lg.Phase)
	assert.NotNil(t, lg.RegularSeasonLockedAt)
	assert.Contains(t, f.publisher.names(), event.TournamentPhaseChanged)

	_, err = f.tournaments.EndRegularSeason(t.Context(), testLeagueID)
	assert.ErrorIs(t, err, usecase.ErrConflict)
}

func TestTournamentService_EndRegularSeasonGuards(t *testing.T) {
	t.Parallel()

	f := newFixtureWithStandings(t, rankedPlayers(6), league.Settings{})
	_, err := f.pods.Create(t.Context(), usecase.CreatePodInput{LeagueID: testLeagueID, CreatorID: "p01"})
	require.NoError(t, err)

	_, err = f.tournaments.EndRegularSeason(t.Context(), testLeagueID)
	assert.ErrorIs(t, err, usecase.ErrConflict)

	small := newFixtureWithStandings(t, rankedPlayers(3), league.Settings{})
	_, err = small.tournaments.EndRegularSeason(t.Context(), testLeagueID)
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)

	_, err = small.tournaments.EndRegularSeason(t.Context(), "missing")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestTournamentService_FullTournamentLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixtureWithStandings(t, rankedPlayers(8), league.Settings{TournamentQualificationPercent: intRef(100)})
	ctx := t.Context()

	_, err := f.tournaments.GeneratePods(ctx, testLeagueID)
	require.ErrorIs(t, err, usecase.ErrConflict, "generation needs the tournament phase")

	_, err = f.tournaments.EndRegularSeason(ctx, testLeagueID)
	require.NoError(t, err)

	generated, err := f.tournaments.GeneratePods(ctx, testLeagueID)
	require.NoError(t, err)
	require.Len(t, generated.Pods, 8)
	assert.Empty(t, generated.Mismatched)

	games := map[string]int{}
	for i, item := range generated.Pods {
		assert.True(t, item.IsDraft())
		assert.Equal(t, pod.StatusOpen, item.Status)
		assert.Equal(t, i/2+1, item.TournamentRound)
		for _, participant := range item.Active() {
			games[participant.PlayerID]++
		}
	}
	for id, count := range games {
		assert.Equal(t, tournament.GamesPerPlayer, count, id)
	}

	_, err = f.tournaments.GeneratePods(ctx, testLeagueID)
	require.ErrorIs(t, err, usecase.ErrConflict)

	_, err = f.pods.DeclareResult(ctx, usecase.DeclareResultInput{PodID: generated.Pods[0].ID, PlayerID: generated.Pods[0].Active()[0].PlayerID})
	require.ErrorIs(t, err, usecase.ErrConflict, "drafts cannot be played")

	swapDraftPlayers(t, f, generated.Pods[0], generated.Pods[1])

	published, err := f.tournaments.PublishPods(ctx, testLeagueID)
	require.NoError(t, err)
	require.Len(t, published, 8)
	_, err = f.tournaments.PublishPods(ctx, testLeagueID)
	require.ErrorIs(t, err, usecase.ErrConflict)

	_, err = f.tournaments.StartChampionship(ctx, testLeagueID)
	require.ErrorIs(t, err, usecase.ErrConflict, "qualifying pods are still active")

	for _, item := range published {
		current, err := f.pods.Get(ctx, item.ID)
		require.NoError(t, err)
		f.play(t, item.ID, current.Active()[0].PlayerID)
	}

	qualifiers, err := f.tournaments.ChampionshipQualifiers(ctx, testLeagueID)
	require.NoError(t, err)
	assert.True(t, qualifiers.AllQualifyingComplete)
	require.Len(t, qualifiers.Qualifiers, tournament.ChampionshipSize)

	final, err := f.tournaments.StartChampionship(ctx, testLeagueID)
	require.NoError(t, err)
	assert.True(t, final.IsChampionshipGame)
	assert.Equal(t, pod.ChampionshipRound, final.TournamentRound)
	finalists := playerIDsOf(final)
	for _, q := range qualifiers.Qualifiers {
		assert.Contains(t, finalists, q.UserID)
		assert.True(t, f.standing(t, q.UserID).ChampionshipQualified)
	}

	_, err = f.tournaments.StartChampionship(ctx, testLeagueID)
	require.ErrorIs(t, err, usecase.ErrConflict)
	_, err = f.tournaments.CompleteTournament(ctx, testLeagueID)
	require.ErrorIs(t, err, usecase.ErrConflict, "championship not played")

	_, err = f.tournaments.PublishPods(ctx, testLeagueID)
	require.NoError(t, err)
	winner := qualifiers.Qualifiers[0].UserID
	f.play(t, final.ID, winner)

	_, err = f.pods.UpdateParticipantResult(ctx, final.ID, winner, pod.ResultDraw)
	require.NoError(t, err)
	_, err = f.tournaments.CompleteTournament(ctx, testLeagueID)
	require.ErrorIs(t, err, usecase.ErrConflict, "a drawn championship needs a manual decision")
	_, err = f.pods.UpdateParticipantResult(ctx, final.ID, winner, pod.ResultWin)
	require.NoError(t, err)

	champion, err := f.tournaments.CompleteTournament(ctx, testLeagueID)
	require.NoError(t, err)
	assert.Equal(t, winner, champion.UserID)
	assert.True(t, f.standing(t, winner).IsChampion)

	status, err := f.tournaments.Status(ctx, testLeagueID)
	require.NoError(t, err)
	assert.Equal(t, league.PhaseCompleted, status.League.Phase)
	assert.Equal(t, 9, status.Pods.Total)
	assert.Equal(t, 9, status.Pods.Completed)
	require.NotNil(t, status.Pods.Championship)
	assert.Equal(t, final.ID, status.Pods.Championship.ID)

	err = f.tournaments.ResetTournament(ctx, testLeagueID, "yes please")
	require.ErrorIs(t, err, usecase.ErrInvalidInput)

	regularBefore := f.standing(t, winner)
	require.NoError(t, f.tournaments.ResetTournament(ctx, testLeagueID, usecase.DefaultResetToken))

	lg, _, _ := f.store.Repositories().Leagues.GetByID(ctx, testLeagueID)
	assert.Equal(t, league.PhaseRegularSeason, lg.Phase)
	assert.Nil(t, lg.RegularSeasonLockedAt)
	assert.Nil(t, lg.TournamentCompletedAt)

	after := f.standing(t, winner)
	assert.Equal(t, standing.Tournament{}, after.Tournament())
	assert.Equal(t, regularBefore.Wins, after.Wins, "regular counters keep tournament games")

	remaining, err := f.pods.ListByLeague(ctx, testLeagueID, pod.Filter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestTournamentService_DeleteDrafts(t *testing.T) {
	t.Parallel()

	f := newFixtureWithStandings(t, rankedPlayers(4), league.Settings{})
	_, err := f.tournaments.EndRegularSeason(t.Context(), testLeagueID)
	require.NoError(t, err)
	generated, err := f.tournaments.GeneratePods(t.Context(), testLeagueID)
	require.NoError(t, err)
	require.Len(t, generated.Pods, 4)

	_, err = f.tournaments.DeleteDrafts(t.Context(), testLeagueID, true)
	require.ErrorIs(t, err, usecase.ErrConflict, "no championship draft yet")

	deleted, err := f.tournaments.DeleteDrafts(t.Context(), testLeagueID, false)
	require.NoError(t, err)
	assert.Equal(t, 4, deleted)

	_, err = f.tournaments.GeneratePods(t.Context(), testLeagueID)
	assert.NoError(t, err, "schedule can be regenerated after drafts are dropped")
}

func TestTournamentService_StandingsRanking(t *testing.T) {
	t.Parallel()

	rows := rankedPlayers(4)
	for i := range rows {
		rows[i].FinalsQualified = true
		rows[i].TournamentSeed = i + 1
	}
	rows[3].TournamentPoints = 9
	rows[1].TournamentPoints = 9
	rows[1].TournamentWins = 2
	f := newFixtureWithStandings(t, rows, league.Settings{})

	ranked, err := f.tournaments.Standings(t.Context(), testLeagueID)
	require.NoError(t, err)

	got := make([]string, 0, len(ranked))
	for _, item := range ranked {
		got = append(got, item.UserID)
	}
	assert.Equal(t, []string{"p02", "p04", "p01", "p03"}, got)
	assert.Equal(t, 1, ranked[0].Rank)
}

func swapDraftPlayers(t *testing.T, f *fixture, first, second pod.Pod) {
	t.Helper()

	a := playerIDsOf(first)
	b := playerIDsOf(second)
	var outgoing, incoming string
	for _, id := range a {
		if !slices.Contains(b, id) {
			outgoing = id
			break
		}
	}
	for _, id := range b {
		if !slices.Contains(a, id) {
			incoming = id
			break
		}
	}
	if outgoing == "" || incoming == "" {
		t.Skip("generated pods share every player")
	}

	seat := func(p pod.Pod, id string) int {
		participant, _ := p.Participant(id)
		return participant.TurnOrder
	}

	err := f.tournaments.SwapPlayers(t.Context(), usecase.SwapPlayersInput{
		LeagueID:  testLeagueID,
		Pod1ID:    first.ID,
		Player1ID: outgoing,
		Pod2ID:    second.ID,
		Player2ID: incoming,
	})
	require.NoError(t, err)

	updatedFirst, err := f.pods.Get(t.Context(), first.ID)
	require.NoError(t, err)
	updatedSecond, err := f.pods.Get(t.Context(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, seat(first, outgoing), seat(updatedFirst, incoming))
	assert.Equal(t, seat(second, incoming), seat(updatedSecond, outgoing))

	err = f.tournaments.SwapPlayers(t.Context(), usecase.SwapPlayersInput{
		LeagueID:  testLeagueID,
		Pod1ID:    first.ID,
		Player1ID: incoming,
		Pod2ID:    first.ID,
		Player2ID: outgoing,
	})
	assert.True(t, errors.Is(err, usecase.ErrInvalidInput))
}

func playerIDsOf(p pod.Pod) []string {
	out := make([]string, 0, len(p.Participants))
	for _, item := range p.Active() {
		out = append(out, item.PlayerID)
	}
	return out
}
