package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/domain/tournament"
	idgen "github.com/garretthaima/escalation-league/internal/platform/id"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/garretthaima/escalation-league/internal/platform/random"
)

// DefaultResetToken must be echoed back to reset a tournament.
const DefaultResetToken = "RESET_TOURNAMENT"

type QualificationResult struct {
	LeagueID  string
	Eligible  int
	Spots     int
	Qualified []standing.Standing
}

type GenerateResult struct {
	Pods       []pod.Pod
	TargetPods int
	Mismatched []string
}

type QualifiedPlayer struct {
	standing.Standing
	TournamentGames int
}

type PodStats struct {
	Total        int
	Completed    int
	Pending      int
	Qualifying   int
	Drafts       int
	Championship *pod.Pod
}

type TournamentStatus struct {
	League    league.League
	Scoring   league.Scoring
	Qualified []QualifiedPlayer
	Pods      PodStats
}

type RankedStanding struct {
	Rank int
	standing.Standing
}

type ChampionshipQualifiers struct {
	AllQualifyingComplete bool
	IncompleteCount       int
	Qualifiers            []standing.Standing
}

type SwapPlayersInput struct {
	LeagueID  string
	Pod1ID    string
	Player1ID string
	Pod2ID    string
	Player2ID string
}

// TournamentService drives a league through
// regular_season -> tournament -> completed.
type TournamentService struct {
	store      UnitOfWork
	idGen      idgen.Generator
	src        random.Source
	publisher  event.Publisher
	logger     *logging.Logger
	resetToken string
	now        func() time.Time
}

func NewTournamentService(
	store UnitOfWork,
	idGen idgen.Generator,
	src random.Source,
	publisher event.Publisher,
	resetToken string,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	if src == nil {
		src = random.NewCrypto()
	}
	if strings.TrimSpace(resetToken) == "" {
		resetToken = DefaultResetToken
	}

	return &TournamentService{
		store:      store,
		idGen:      idGen,
		src:        src,
		publisher:  publisher,
		logger:     logger,
		resetToken: resetToken,
		now:        time.Now,
	}
}

// EndRegularSeason locks the regular season, seeds the top slice of the
// standings and moves the league into the tournament phase.
func (s *TournamentService) EndRegularSeason(ctx context.Context, leagueID string) (QualificationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.EndRegularSeason", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return QualificationResult{}, err
	}

	var result QualificationResult
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		lg, err := lockLeague(ctx, repos, leagueID)
		if err != nil {
			return err
		}
		if lg.Phase != league.PhaseRegularSeason {
			return fmt.Errorf("%w: league=%s is already in %s phase", ErrConflict, leagueID, lg.Phase)
		}

		pods, err := repos.Pods.ListByLeague(ctx, leagueID, pod.Filter{})
		if err != nil {
			return fmt.Errorf("list league pods: %w", err)
		}
		if unfinished := countUnfinished(pods); unfinished > 0 {
			return fmt.Errorf("%w: %d incomplete pod(s) exist", ErrConflict, unfinished)
		}

		standings, err := repos.Standings.ListByLeague(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list standings: %w", err)
		}
		eligible := make([]standing.Standing, 0, len(standings))
		for _, item := range standings {
			if item.IsActive && !item.Disqualified {
				eligible = append(eligible, item)
			}
		}
		if len(eligible) < tournament.MinQualified {
			return fmt.Errorf("%w: need at least %d players, got %d", ErrInvalidInput, tournament.MinQualified, len(eligible))
		}
		tournament.SortRegularSeason(eligible)

		spots := tournament.QualifyingSpots(len(eligible), lg.Settings.WithDefaults().TournamentQualificationPercent)
		seeds := make(map[string]int, spots)
		for i, item := range eligible[:spots] {
			seeds[item.UserID] = i + 1
		}

		for _, item := range standings {
			t := standing.Tournament{}
			if seed, ok := seeds[item.UserID]; ok {
				t.FinalsQualified = true
				t.TournamentSeed = seed
			}
			if err := repos.Standings.UpdateTournament(ctx, leagueID, item.UserID, t); err != nil {
				return fmt.Errorf("seed standing user=%s: %w", item.UserID, err)
			}
		}

		now := s.now().UTC()
		lg.Phase = league.PhaseTournament
		lg.RegularSeasonLockedAt = &now
		if err := repos.Leagues.UpdatePhase(ctx, lg); err != nil {
			return fmt.Errorf("update league phase: %w", err)
		}

		result = QualificationResult{LeagueID: leagueID, Eligible: len(eligible), Spots: spots}
		for _, item := range eligible[:spots] {
			result.Qualified = append(result.Qualified, item.WithTournament(standing.Tournament{
				FinalsQualified: true,
				TournamentSeed:  seeds[item.UserID],
			}))
		}
		return nil
	})
	if err != nil {
		return QualificationResult{}, err
	}

	s.phaseChanged(ctx, leagueID, league.PhaseTournament)
	s.logger.InfoContext(ctx, "regular season ended",
		"league_id", leagueID,
		"eligible", result.Eligible,
		"qualified", result.Spots,
	)
	return result, nil
}

// GeneratePods builds the qualifying schedule for the seeded players and
// stores it as unpublished drafts in one transaction.
func (s *TournamentService) GeneratePods(ctx context.Context, leagueID string) (GenerateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GeneratePods", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return GenerateResult{}, err
	}

	var result GenerateResult
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		lg, err := lockLeague(ctx, repos, leagueID)
		if err != nil {
			return err
		}
		if lg.Phase != league.PhaseTournament {
			return fmt.Errorf("%w: league=%s must be in tournament phase", ErrConflict, leagueID)
		}

		existing, err := repos.Pods.ListByLeague(ctx, leagueID, pod.Filter{
			Tournament:   boolRef(true),
			Championship: boolRef(false),
		})
		if err != nil {
			return fmt.Errorf("list tournament pods: %w", err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: tournament pods already generated (%d)", ErrConflict, len(existing))
		}

		qualified, err := qualifiedStandings(ctx, repos, leagueID)
		if err != nil {
			return err
		}
		if len(qualified) < tournament.MinQualified {
			return fmt.Errorf("%w: need at least %d qualified players", ErrInvalidInput, tournament.MinQualified)
		}
		tournament.SortBySeed(qualified)

		playerIDs := make([]string, 0, len(qualified))
		for _, item := range qualified {
			playerIDs = append(playerIDs, item.UserID)
		}

		schedule, err := tournament.NewGenerator(s.src).Generate(playerIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		now := s.now().UTC()
		for _, planned := range schedule.Pods {
			created, err := s.createDraft(ctx, repos, lg.ID, planned.PlayerIDs, planned.Round, false, now)
			if err != nil {
				return err
			}
			result.Pods = append(result.Pods, created)
		}
		result.TargetPods = schedule.TargetPods
		result.Mismatched = schedule.Mismatched(tournament.GamesPerPlayer)
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}

	if len(result.Mismatched) > 0 || len(result.Pods) < result.TargetPods {
		s.logger.WarnContext(ctx, "tournament schedule is uneven",
			"league_id", leagueID,
			"pods", len(result.Pods),
			"target_pods", result.TargetPods,
			"mismatched_players", result.Mismatched,
		)
	}
	s.logger.InfoContext(ctx, "tournament pods generated", "league_id", leagueID, "pods", len(result.Pods))
	return result, nil
}

// PublishPods releases every draft pod to players.
func (s *TournamentService) PublishPods(ctx context.Context, leagueID string) ([]pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.PublishPods", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	var published []pod.Pod
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := lockLeague(ctx, repos, leagueID); err != nil {
			return err
		}
		drafts, err := listDrafts(ctx, repos, leagueID)
		if err != nil {
			return err
		}
		if len(drafts) == 0 {
			return fmt.Errorf("%w: no draft pods to publish", ErrConflict)
		}

		now := s.now().UTC()
		for _, item := range drafts {
			item.Published = true
			item.Status = pod.StatusActive
			item.UpdatedAt = now
			if err := repos.Pods.Update(ctx, item); err != nil {
				return fmt.Errorf("publish pod=%s: %w", item.ID, err)
			}
			published = append(published, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	events := make([]event.Event, 0, len(published))
	for _, item := range published {
		events = append(events, podEvent(event.PodCreated, item, now))
	}
	s.publisher.Publish(ctx, events...)
	s.logger.InfoContext(ctx, "tournament pods published", "league_id", leagueID, "pods", len(published))
	return published, nil
}

// SwapPlayers exchanges two players between two draft pods. Each player
// takes over the other's seat.
func (s *TournamentService) SwapPlayers(ctx context.Context, input SwapPlayersInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.SwapPlayers", leagueAttr(input.LeagueID))
	defer span.End()

	leagueID, err := requireLeagueID(input.LeagueID)
	if err != nil {
		return err
	}
	pod1, player1, err := requirePodAndPlayer(input.Pod1ID, input.Player1ID)
	if err != nil {
		return err
	}
	pod2, player2, err := requirePodAndPlayer(input.Pod2ID, input.Player2ID)
	if err != nil {
		return err
	}
	if pod1 == pod2 {
		return fmt.Errorf("%w: cannot swap players within the same pod", ErrInvalidInput)
	}

	return s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		first, err := lockPod(ctx, repos, pod1)
		if err != nil {
			return err
		}
		second, err := lockPod(ctx, repos, pod2)
		if err != nil {
			return err
		}
		for _, item := range []pod.Pod{first, second} {
			if item.LeagueID != leagueID || !item.IsDraft() {
				return fmt.Errorf("%w: pod=%s is not a draft tournament pod of league=%s", ErrConflict, item.ID, leagueID)
			}
		}

		a, ok := first.Participant(player1)
		if !ok || a.Deleted {
			return fmt.Errorf("%w: player=%s is not in pod=%s", ErrNotFound, player1, pod1)
		}
		b, ok := second.Participant(player2)
		if !ok || b.Deleted {
			return fmt.Errorf("%w: player=%s is not in pod=%s", ErrNotFound, player2, pod2)
		}
		if first.HasPlayer(player2) || second.HasPlayer(player1) {
			return fmt.Errorf("%w: swap would seat a player twice", ErrConflict)
		}

		if err := repos.Pods.ReplaceParticipants(ctx, pod1, swapSeat(first.Active(), player1, player2)); err != nil {
			return fmt.Errorf("swap into pod=%s: %w", pod1, err)
		}
		if err := repos.Pods.ReplaceParticipants(ctx, pod2, swapSeat(second.Active(), player2, player1)); err != nil {
			return fmt.Errorf("swap into pod=%s: %w", pod2, err)
		}
		return nil
	})
}

// DeleteDrafts removes unpublished pods. championshipOnly limits it to the
// championship draft.
func (s *TournamentService) DeleteDrafts(ctx context.Context, leagueID string, championshipOnly bool) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.DeleteDrafts", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return 0, err
	}

	var deleted int
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := lockLeague(ctx, repos, leagueID); err != nil {
			return err
		}
		filter := pod.Filter{Published: boolRef(false)}
		if championshipOnly {
			filter.Championship = boolRef(true)
		}
		deleted, err = repos.Pods.DeleteTournamentPods(ctx, leagueID, filter)
		if err != nil {
			return fmt.Errorf("delete draft pods: %w", err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: no draft pods to delete", ErrConflict)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "draft pods deleted", "league_id", leagueID, "pods", deleted, "championship_only", championshipOnly)
	return deleted, nil
}

// StartChampionship seats the top four tournament players in a draft
// championship pod.
func (s *TournamentService) StartChampionship(ctx context.Context, leagueID string) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.StartChampionship", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return pod.Pod{}, err
	}

	var created pod.Pod
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		lg, err := lockLeague(ctx, repos, leagueID)
		if err != nil {
			return err
		}
		if lg.Phase != league.PhaseTournament {
			return fmt.Errorf("%w: league=%s must be in tournament phase", ErrConflict, leagueID)
		}

		pods, err := repos.Pods.ListByLeague(ctx, leagueID, pod.Filter{Tournament: boolRef(true)})
		if err != nil {
			return fmt.Errorf("list tournament pods: %w", err)
		}
		qualifying := 0
		for _, item := range pods {
			if item.IsChampionshipGame {
				return fmt.Errorf("%w: championship pod=%s already exists", ErrConflict, item.ID)
			}
			qualifying++
			if item.Status != pod.StatusComplete {
				return fmt.Errorf("%w: qualifying pod=%s is %s", ErrConflict, item.ID, item.Status)
			}
		}
		if qualifying == 0 {
			return fmt.Errorf("%w: no qualifying pods have been played", ErrConflict)
		}

		qualified, err := qualifiedStandings(ctx, repos, leagueID)
		if err != nil {
			return err
		}
		if len(qualified) < tournament.ChampionshipSize {
			return fmt.Errorf("%w: need %d players for championship", ErrInvalidInput, tournament.ChampionshipSize)
		}
		tournament.SortTournament(qualified)

		finalists := make([]string, 0, tournament.ChampionshipSize)
		for i, item := range qualified {
			t := item.Tournament()
			t.ChampionshipQualified = i < tournament.ChampionshipSize
			if t.ChampionshipQualified {
				finalists = append(finalists, item.UserID)
			}
			if err := repos.Standings.UpdateTournament(ctx, leagueID, item.UserID, t); err != nil {
				return fmt.Errorf("mark championship qualifier user=%s: %w", item.UserID, err)
			}
		}

		random.Shuffle(s.src, finalists)
		created, err = s.createDraft(ctx, repos, leagueID, finalists, pod.ChampionshipRound, true, s.now().UTC())
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}

	s.logger.InfoContext(ctx, "championship pod created", "league_id", leagueID, "pod_id", created.ID)
	return created, nil
}

// CompleteTournament crowns the sole winner of the championship pod.
func (s *TournamentService) CompleteTournament(ctx context.Context, leagueID string) (standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.CompleteTournament", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return standing.Standing{}, err
	}

	var champion standing.Standing
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		lg, err := lockLeague(ctx, repos, leagueID)
		if err != nil {
			return err
		}
		if lg.Phase != league.PhaseTournament {
			return fmt.Errorf("%w: league=%s must be in tournament phase", ErrConflict, leagueID)
		}

		finals, err := repos.Pods.ListByLeague(ctx, leagueID, pod.Filter{Championship: boolRef(true)})
		if err != nil {
			return fmt.Errorf("list championship pods: %w", err)
		}
		if len(finals) == 0 {
			return fmt.Errorf("%w: no championship pod found", ErrConflict)
		}
		final := finals[0]
		if final.Status != pod.StatusComplete {
			return fmt.Errorf("%w: championship pod=%s is %s", ErrConflict, final.ID, final.Status)
		}

		winners := pod.Winners(final.Active())
		if len(winners) != 1 {
			return fmt.Errorf("%w: championship pod=%s has %d winners, resolve it manually", ErrConflict, final.ID, len(winners))
		}

		row, ok, err := repos.Standings.Get(ctx, leagueID, winners[0].PlayerID)
		if err != nil {
			return fmt.Errorf("get champion standing: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: standing league=%s player=%s", ErrNotFound, leagueID, winners[0].PlayerID)
		}
		t := row.Tournament()
		t.IsChampion = true
		if err := repos.Standings.UpdateTournament(ctx, leagueID, row.UserID, t); err != nil {
			return fmt.Errorf("crown champion: %w", err)
		}

		now := s.now().UTC()
		lg.Phase = league.PhaseCompleted
		lg.TournamentCompletedAt = &now
		if err := repos.Leagues.UpdatePhase(ctx, lg); err != nil {
			return fmt.Errorf("update league phase: %w", err)
		}

		champion = row.WithTournament(t)
		return nil
	})
	if err != nil {
		return standing.Standing{}, err
	}

	s.phaseChanged(ctx, leagueID, league.PhaseCompleted)
	s.logger.InfoContext(ctx, "tournament completed", "league_id", leagueID, "champion_id", champion.UserID)
	return champion, nil
}

// ResetTournament wipes every tournament pod and tournament counter and
// returns the league to its regular season. Stats already applied by
// tournament games stay on the regular counters.
func (s *TournamentService) ResetTournament(ctx context.Context, leagueID, confirmation string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ResetTournament", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return err
	}
	if confirmation != s.resetToken {
		return fmt.Errorf("%w: reset must be confirmed with %q", ErrInvalidInput, s.resetToken)
	}

	var removed int
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		lg, err := lockLeague(ctx, repos, leagueID)
		if err != nil {
			return err
		}

		removed, err = repos.Pods.DeleteTournamentPods(ctx, leagueID, pod.Filter{IncludeDeleted: true})
		if err != nil {
			return fmt.Errorf("delete tournament pods: %w", err)
		}
		if err := repos.Standings.ResetTournament(ctx, leagueID); err != nil {
			return fmt.Errorf("reset tournament standings: %w", err)
		}

		lg.Phase = league.PhaseRegularSeason
		lg.RegularSeasonLockedAt = nil
		lg.TournamentCompletedAt = nil
		if err := repos.Leagues.UpdatePhase(ctx, lg); err != nil {
			return fmt.Errorf("update league phase: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.phaseChanged(ctx, leagueID, league.PhaseRegularSeason)
	s.logger.WarnContext(ctx, "tournament reset", "league_id", leagueID, "pods_removed", removed)
	return nil
}

func (s *TournamentService) Status(ctx context.Context, leagueID string) (TournamentStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Status", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return TournamentStatus{}, err
	}

	repos := s.store.Repositories()
	lg, err := getLeague(ctx, repos, leagueID)
	if err != nil {
		return TournamentStatus{}, err
	}
	qualified, err := qualifiedStandings(ctx, repos, leagueID)
	if err != nil {
		return TournamentStatus{}, err
	}
	tournament.SortBySeed(qualified)

	pods, err := repos.Pods.ListByLeague(ctx, leagueID, pod.Filter{Tournament: boolRef(true)})
	if err != nil {
		return TournamentStatus{}, fmt.Errorf("list tournament pods: %w", err)
	}

	out := TournamentStatus{League: lg, Scoring: lg.Settings.WithDefaults()}
	games := make(map[string]int, len(qualified))
	for _, item := range pods {
		out.Pods.Total++
		switch {
		case item.Status == pod.StatusComplete:
			out.Pods.Completed++
		default:
			out.Pods.Pending++
		}
		if item.IsDraft() {
			out.Pods.Drafts++
		}
		if item.IsChampionshipGame {
			final := item
			out.Pods.Championship = &final
		} else {
			out.Pods.Qualifying++
		}
		for _, participant := range item.Active() {
			games[participant.PlayerID]++
		}
	}
	for _, item := range qualified {
		out.Qualified = append(out.Qualified, QualifiedPlayer{Standing: item, TournamentGames: games[item.UserID]})
	}
	return out, nil
}

// Standings ranks qualified players by tournament points, tournament wins
// and seed.
func (s *TournamentService) Standings(ctx context.Context, leagueID string) ([]RankedStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Standings", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repositories()
	if _, err := getLeague(ctx, repos, leagueID); err != nil {
		return nil, err
	}
	qualified, err := qualifiedStandings(ctx, repos, leagueID)
	if err != nil {
		return nil, err
	}
	tournament.SortTournament(qualified)

	out := make([]RankedStanding, 0, len(qualified))
	for i, item := range qualified {
		out = append(out, RankedStanding{Rank: i + 1, Standing: item})
	}
	return out, nil
}

func (s *TournamentService) ChampionshipQualifiers(ctx context.Context, leagueID string) (ChampionshipQualifiers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ChampionshipQualifiers", leagueAttr(leagueID))
	defer span.End()

	ranked, err := s.Standings(ctx, leagueID)
	if err != nil {
		return ChampionshipQualifiers{}, err
	}

	pods, err := s.store.Repositories().Pods.ListByLeague(ctx, strings.TrimSpace(leagueID), pod.Filter{
		Tournament:   boolRef(true),
		Championship: boolRef(false),
	})
	if err != nil {
		return ChampionshipQualifiers{}, fmt.Errorf("list qualifying pods: %w", err)
	}

	out := ChampionshipQualifiers{}
	for _, item := range pods {
		if item.Status != pod.StatusComplete {
			out.IncompleteCount++
		}
	}
	out.AllQualifyingComplete = out.IncompleteCount == 0
	for _, item := range ranked[:min(len(ranked), tournament.ChampionshipSize)] {
		out.Qualifiers = append(out.Qualifiers, item.Standing)
	}
	return out, nil
}

func (s *TournamentService) createDraft(ctx context.Context, repos Repositories, leagueID string, seated []string, round int, championship bool, now time.Time) (pod.Pod, error) {
	podID, err := s.idGen.NewID()
	if err != nil {
		return pod.Pod{}, fmt.Errorf("generate pod id: %w", err)
	}

	draft := pod.Pod{
		ID:                 podID,
		LeagueID:           leagueID,
		Status:             pod.StatusOpen,
		IsTournamentGame:   true,
		IsChampionshipGame: championship,
		TournamentRound:    round,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for i, playerID := range seated {
		draft.Participants = append(draft.Participants, pod.Participant{
			PodID:     podID,
			PlayerID:  playerID,
			TurnOrder: i + 1,
		})
	}
	if err := repos.Pods.Create(ctx, draft); err != nil {
		return pod.Pod{}, fmt.Errorf("create draft pod round=%d: %w", round, err)
	}
	return draft, nil
}

func (s *TournamentService) phaseChanged(ctx context.Context, leagueID string, phase league.Phase) {
	s.publisher.Publish(ctx, event.Event{
		Name:       event.TournamentPhaseChanged,
		LeagueID:   leagueID,
		Phase:      string(phase),
		OccurredAt: s.now().UTC(),
	})
}

func lockLeague(ctx context.Context, repos Repositories, leagueID string) (league.League, error) {
	lg, ok, err := repos.Leagues.GetForUpdate(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("lock league: %w", err)
	}
	if !ok {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return lg, nil
}

func qualifiedStandings(ctx context.Context, repos Repositories, leagueID string) ([]standing.Standing, error) {
	standings, err := repos.Standings.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	return slices.DeleteFunc(standings, func(item standing.Standing) bool {
		return !item.FinalsQualified
	}), nil
}

func listDrafts(ctx context.Context, repos Repositories, leagueID string) ([]pod.Pod, error) {
	drafts, err := repos.Pods.ListByLeague(ctx, leagueID, pod.Filter{Tournament: boolRef(true), Published: boolRef(false)})
	if err != nil {
		return nil, fmt.Errorf("list draft pods: %w", err)
	}
	return drafts, nil
}

func countUnfinished(pods []pod.Pod) int {
	count := 0
	for _, item := range pods {
		if !item.Status.Terminal() {
			count++
		}
	}
	return count
}

// swapSeat puts incoming into outgoing's seat.
func swapSeat(participants []pod.Participant, outgoing, incoming string) []pod.Participant {
	out := slices.Clone(participants)
	for i := range out {
		if out[i].PlayerID == outgoing {
			out[i].PlayerID = incoming
		}
	}
	return out
}

func requireLeagueID(leagueID string) (string, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return "", fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	return leagueID, nil
}

func boolRef(v bool) *bool {
	return &v
}
