package usecase

import (
	"context"
	"fmt"

	"github.com/garretthaima/escalation-league/internal/domain/elo"
	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// StatsLedger turns pod results into standings changes. It only ever writes
// through the repositories it is handed, so callers decide the transaction.
type StatsLedger struct {
	recorder LedgerRecorder
	logger   *logging.Logger
}

func NewStatsLedger(recorder LedgerRecorder, logger *logging.Logger) *StatsLedger {
	if recorder == nil {
		recorder = nopLedgerRecorder{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsLedger{
		recorder: recorder,
		logger:   logger,
	}
}

// ApplyGameStats adds each participant's win/loss/draw counter and league
// points, plus tournament counters when isTournamentGame. ELO is untouched.
func (l *StatsLedger) ApplyGameStats(ctx context.Context, repos Repositories, leagueID string, scoring league.Scoring, participants []pod.Participant, isTournamentGame bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsLedger.ApplyGameStats", leagueAttr(leagueID), attribute.Int("participants", len(participants)))
	defer span.End()

	for _, p := range participants {
		d := standing.GameDelta(p.Result, scoring, isTournamentGame)
		if err := l.increment(ctx, repos, leagueID, p.PlayerID, d); err != nil {
			return fmt.Errorf("apply game stats: %w", err)
		}
	}

	l.recorder.LedgerApplied(leagueID, len(participants))
	l.logger.DebugContext(ctx, "game stats applied",
		"league_id", leagueID,
		"participants", len(participants),
		"tournament", isTournamentGame,
	)
	return nil
}

// ReverseGameStats is the exact negation of ApplyGameStats and also takes
// back each participant's stored elo_change from both ratings.
func (l *StatsLedger) ReverseGameStats(ctx context.Context, repos Repositories, leagueID string, scoring league.Scoring, participants []pod.Participant, isTournamentGame bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsLedger.ReverseGameStats", leagueAttr(leagueID), attribute.Int("participants", len(participants)))
	defer span.End()

	for _, p := range participants {
		d := standing.GameDelta(p.Result, scoring, isTournamentGame).Negate()
		d.Elo = -p.EloChange
		if err := l.increment(ctx, repos, leagueID, p.PlayerID, d); err != nil {
			return fmt.Errorf("reverse game stats: %w", err)
		}
	}

	l.recorder.LedgerReversed(leagueID, len(participants))
	l.logger.InfoContext(ctx, "game stats reversed",
		"league_id", leagueID,
		"participants", len(participants),
		"tournament", isTournamentGame,
	)
	return nil
}

// ApplyEloChanges rates the pod from each player's global rating and game
// count, adds the change to both the global and league rating, and returns
// the participants with EloChange and EloBefore captured for persisting.
func (l *StatsLedger) ApplyEloChanges(ctx context.Context, repos Repositories, leagueID string, participants []pod.Participant) ([]pod.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsLedger.ApplyEloChanges", leagueAttr(leagueID))
	defer span.End()

	players := make([]elo.Player, 0, len(participants))
	for _, p := range participants {
		record, ok, err := repos.Standings.GetPlayer(ctx, p.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("get player record: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: player=%s", ErrNotFound, p.PlayerID)
		}
		players = append(players, elo.Player{
			PlayerID:    p.PlayerID,
			CurrentElo:  record.EloRating,
			Result:      p.Result,
			TurnOrder:   p.TurnOrder,
			GamesPlayed: record.GamesPlayed(),
		})
	}

	changes := elo.ComputeChanges(players)
	out := make([]pod.Participant, len(participants))
	for i, change := range changes {
		if change.EloChange != 0 {
			if err := l.increment(ctx, repos, leagueID, change.PlayerID, standing.Delta{Elo: change.EloChange}); err != nil {
				return nil, fmt.Errorf("apply elo change: %w", err)
			}
		}
		out[i] = participants[i]
		out[i].EloChange = change.EloChange
		out[i].EloBefore = change.EloBefore
	}

	return out, nil
}

// PatchResult moves one recorded result to another on a completed pod
// without reversing the rest of the pod.
func (l *StatsLedger) PatchResult(ctx context.Context, repos Repositories, leagueID string, scoring league.Scoring, playerID string, from, to pod.Result, isTournamentGame bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsLedger.PatchResult", leagueAttr(leagueID), playerAttr(playerID))
	defer span.End()

	d := standing.ResultChangeDelta(from, to, scoring, isTournamentGame)
	if err := l.increment(ctx, repos, leagueID, playerID, d); err != nil {
		return fmt.Errorf("patch result %s->%s: %w", from, to, err)
	}
	return nil
}

func (l *StatsLedger) increment(ctx context.Context, repos Repositories, leagueID, playerID string, d standing.Delta) error {
	if d.IsZero() {
		return nil
	}

	found, err := repos.Standings.Increment(ctx, leagueID, playerID, d)
	if err != nil {
		return fmt.Errorf("increment standing player=%s: %w", playerID, err)
	}
	if !found {
		return fmt.Errorf("%w: standing league=%s player=%s", ErrNotFound, leagueID, playerID)
	}

	if pd := d.Player(); !pd.IsZero() {
		found, err = repos.Standings.IncrementPlayer(ctx, playerID, pd)
		if err != nil {
			return fmt.Errorf("increment player record player=%s: %w", playerID, err)
		}
		if !found {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
	}
	return nil
}
