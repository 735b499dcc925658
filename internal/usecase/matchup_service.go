package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/tournament"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/garretthaima/escalation-league/internal/platform/random"
)

type PairCount struct {
	PlayerA string
	PlayerB string
	Games   int
}

// HeadToHead is one player's record against a single opponent. Wins counts
// pods the player won with the opponent seated, Losses pods the opponent won.
type HeadToHead struct {
	OpponentID string
	Games      int
	Wins       int
	Losses     int
	Draws      int
}

type OpponentSummary struct {
	PlayerID  string
	Opponents []HeadToHead
	Nemesis   *HeadToHead
	Victim    *HeadToHead
}

type PodSuggestion struct {
	Pods     [][]string
	Leftover []string
}

// MatchupService answers who-played-whom questions from completed pods.
type MatchupService struct {
	store  UnitOfWork
	src    random.Source
	logger *logging.Logger
}

func NewMatchupService(store UnitOfWork, src random.Source, logger *logging.Logger) *MatchupService {
	if logger == nil {
		logger = logging.Default()
	}
	if src == nil {
		src = random.NewCrypto()
	}

	return &MatchupService{store: store, src: src, logger: logger}
}

// MatchupMatrix counts how often each pair of players shared a completed pod.
func (s *MatchupService) MatchupMatrix(ctx context.Context, leagueID string) ([]PairCount, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.MatchupMatrix", leagueAttr(leagueID))
	defer span.End()

	pods, err := s.completedPods(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	pairings := tournament.Pairings{}
	for _, item := range pods {
		pairings.Record(playerIDs(item.Active()))
	}

	out := make([]PairCount, 0, len(pairings))
	for key, games := range pairings {
		out = append(out, PairCount{PlayerA: key[0], PlayerB: key[1], Games: games})
	}
	slices.SortFunc(out, func(a, b PairCount) int {
		return cmp.Or(
			cmp.Compare(b.Games, a.Games),
			cmp.Compare(a.PlayerA, b.PlayerA),
			cmp.Compare(a.PlayerB, b.PlayerB),
		)
	})
	return out, nil
}

func (s *MatchupService) OpponentMatchups(ctx context.Context, leagueID, playerID string) (OpponentSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.OpponentMatchups", leagueAttr(leagueID), playerAttr(playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return OpponentSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	pods, err := s.completedPods(ctx, leagueID)
	if err != nil {
		return OpponentSummary{}, err
	}

	records := make(map[string]*HeadToHead)
	for _, item := range pods {
		active := item.Active()
		if participantIndex(active, playerID) < 0 {
			continue
		}
		var winner string
		if winners := pod.Winners(active); len(winners) == 1 {
			winner = winners[0].PlayerID
		}

		for _, opponent := range active {
			if opponent.PlayerID == playerID {
				continue
			}
			rec, ok := records[opponent.PlayerID]
			if !ok {
				rec = &HeadToHead{OpponentID: opponent.PlayerID}
				records[opponent.PlayerID] = rec
			}
			rec.Games++
			switch {
			case item.Result == pod.ResultDraw:
				rec.Draws++
			case winner == playerID:
				rec.Wins++
			case winner == opponent.PlayerID:
				rec.Losses++
			}
		}
	}

	out := OpponentSummary{PlayerID: playerID, Opponents: make([]HeadToHead, 0, len(records))}
	for _, rec := range records {
		out.Opponents = append(out.Opponents, *rec)
	}
	slices.SortFunc(out.Opponents, func(a, b HeadToHead) int {
		return cmp.Or(cmp.Compare(b.Games, a.Games), cmp.Compare(a.OpponentID, b.OpponentID))
	})

	for i := range out.Opponents {
		rec := &out.Opponents[i]
		if rec.Losses > 0 && (out.Nemesis == nil || rec.Losses > out.Nemesis.Losses) {
			out.Nemesis = rec
		}
		if rec.Wins > 0 && (out.Victim == nil || rec.Wins > out.Victim.Wins) {
			out.Victim = rec
		}
	}
	return out, nil
}

// SuggestPods splits tonight's attendees into 4- and 3-player pods, grouping
// players who have met the least.
func (s *MatchupService) SuggestPods(ctx context.Context, leagueID string, attendeeIDs []string) (PodSuggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.SuggestPods", leagueAttr(leagueID))
	defer span.End()

	attendees, err := cleanPlayerIDs(attendeeIDs)
	if err != nil {
		return PodSuggestion{}, err
	}
	if len(attendees) < pod.MinRoster {
		return PodSuggestion{}, fmt.Errorf("%w: need at least %d attendees", ErrInvalidInput, pod.MinRoster)
	}

	pods, err := s.completedPods(ctx, leagueID)
	if err != nil {
		return PodSuggestion{}, err
	}
	pairings := tournament.Pairings{}
	for _, item := range pods {
		pairings.Record(playerIDs(item.Active()))
	}

	fours, threes, _ := tournament.PodDistribution(len(attendees))
	sizes := make([]int, 0, fours+threes)
	for range fours {
		sizes = append(sizes, 4)
	}
	for range threes {
		sizes = append(sizes, 3)
	}

	out := PodSuggestion{Pods: tournament.GroupFresh(s.src, attendees, sizes, pairings)}
	seated := make(map[string]struct{}, len(attendees))
	for _, group := range out.Pods {
		for _, id := range group {
			seated[id] = struct{}{}
		}
	}
	for _, id := range attendees {
		if _, ok := seated[id]; !ok {
			out.Leftover = append(out.Leftover, id)
		}
	}

	s.logger.DebugContext(ctx, "pods suggested", "league_id", leagueID, "attendees", len(attendees), "pods", len(out.Pods))
	return out, nil
}

func (s *MatchupService) completedPods(ctx context.Context, leagueID string) ([]pod.Pod, error) {
	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repositories()
	if _, err := getLeague(ctx, repos, leagueID); err != nil {
		return nil, err
	}

	complete := pod.StatusComplete
	pods, err := repos.Pods.ListByLeague(ctx, leagueID, pod.Filter{Status: &complete})
	if err != nil {
		return nil, fmt.Errorf("list completed pods: %w", err)
	}
	return pods, nil
}

func playerIDs(participants []pod.Participant) []string {
	out := make([]string, 0, len(participants))
	for _, item := range participants {
		out = append(out, item.PlayerID)
	}
	return out
}
