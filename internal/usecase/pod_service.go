package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	idgen "github.com/garretthaima/escalation-league/internal/platform/id"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
)

// CreatePodInput is the incoming payload for a new pod. An empty
// ParticipantIDs seats only the creator.
type CreatePodInput struct {
	LeagueID       string
	CreatorID      string
	SessionID      string
	ParticipantIDs []string
}

// DeclareResultInput confirms a participant's view of the game. Result may be
// pod.ResultNone to confirm without reporting an outcome.
type DeclareResultInput struct {
	PodID    string
	PlayerID string
	Result   pod.Result
}

// RosterEntry is one participant row supplied by an admin. Zero turn orders
// on every entry seat players in the given order.
type RosterEntry struct {
	PlayerID  string
	Result    pod.Result
	Confirmed bool
	TurnOrder int
}

type ReplaceRosterInput struct {
	PodID         string
	Participants  []RosterEntry
	DesiredStatus *pod.Status
}

// PodService owns the pod lifecycle: open -> active -> pending -> complete,
// plus the admin overrides around it. Every mutation runs in one unit of work
// holding the pod row lock.
type PodService struct {
	store     UnitOfWork
	ledger    *StatsLedger
	idGen     idgen.Generator
	publisher event.Publisher
	logger    *logging.Logger
	now       func() time.Time
}

func NewPodService(
	store UnitOfWork,
	ledger *StatsLedger,
	idGen idgen.Generator,
	publisher event.Publisher,
	logger *logging.Logger,
) *PodService {
	if logger == nil {
		logger = logging.Default()
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}

	return &PodService{
		store:     store,
		ledger:    ledger,
		idGen:     idGen,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *PodService) Get(ctx context.Context, podID string) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.Get", podAttr(podID))
	defer span.End()

	podID = strings.TrimSpace(podID)
	if podID == "" {
		return pod.Pod{}, fmt.Errorf("%w: pod id is required", ErrInvalidInput)
	}

	p, ok, err := s.store.Repositories().Pods.GetByID(ctx, podID)
	if err != nil {
		return pod.Pod{}, fmt.Errorf("get pod: %w", err)
	}
	if !ok || p.Deleted {
		return pod.Pod{}, fmt.Errorf("%w: pod=%s", ErrNotFound, podID)
	}
	return p, nil
}

func (s *PodService) ListByLeague(ctx context.Context, leagueID string, filter pod.Filter) ([]pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.ListByLeague", leagueAttr(leagueID))
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	repos := s.store.Repositories()
	if _, err := getLeague(ctx, repos, leagueID); err != nil {
		return nil, err
	}

	pods, err := repos.Pods.ListByLeague(ctx, leagueID, filter)
	if err != nil {
		return nil, fmt.Errorf("list pods by league: %w", err)
	}
	return pods, nil
}

func (s *PodService) Create(ctx context.Context, input CreatePodInput) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.Create", leagueAttr(input.LeagueID))
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.CreatorID = strings.TrimSpace(input.CreatorID)
	input.SessionID = strings.TrimSpace(input.SessionID)
	if input.LeagueID == "" {
		return pod.Pod{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.CreatorID == "" {
		return pod.Pod{}, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}

	roster, err := cleanPlayerIDs(input.ParticipantIDs)
	if err != nil {
		return pod.Pod{}, err
	}
	if len(roster) == 0 {
		roster = []string{input.CreatorID}
	}
	if len(roster) > pod.MaxRoster {
		return pod.Pod{}, fmt.Errorf("%w: %w: got %d", ErrInvalidInput, pod.ErrRosterSize, len(roster))
	}

	podID, err := s.idGen.NewID()
	if err != nil {
		return pod.Pod{}, fmt.Errorf("generate pod id: %w", err)
	}

	now := s.now().UTC()
	created := pod.Pod{
		ID:        podID,
		LeagueID:  input.LeagueID,
		SessionID: input.SessionID,
		CreatorID: input.CreatorID,
		Status:    pod.StatusOpen,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(roster) == pod.MaxRoster {
		created.Status = pod.StatusActive
	}
	for i, playerID := range roster {
		created.Participants = append(created.Participants, pod.Participant{
			PodID:     podID,
			PlayerID:  playerID,
			TurnOrder: i + 1,
		})
	}

	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := getLeague(ctx, repos, input.LeagueID); err != nil {
			return err
		}
		if err := repos.Pods.Create(ctx, created); err != nil {
			return fmt.Errorf("create pod: %w", err)
		}
		return nil
	})
	if err != nil {
		return pod.Pod{}, err
	}

	s.publish(ctx, podEvent(event.PodCreated, created, now))
	s.logger.InfoContext(ctx, "pod created",
		"pod_id", created.ID,
		"league_id", created.LeagueID,
		"status", created.Status,
		"participants", len(roster),
	)
	return created, nil
}

func (s *PodService) Join(ctx context.Context, podID, playerID string) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.Join", podAttr(podID), playerAttr(playerID))
	defer span.End()

	podID, playerID, err := requirePodAndPlayer(podID, playerID)
	if err != nil {
		return pod.Pod{}, err
	}

	var out pod.Pod
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		active := p.Active()
		if len(active) >= pod.MaxRoster {
			return fmt.Errorf("%w: pod=%s is full", ErrConflict, podID)
		}
		if p.Status != pod.StatusOpen || p.IsDraft() {
			return fmt.Errorf("%w: pod=%s is not open", ErrNotFound, podID)
		}
		if p.HasPlayer(playerID) {
			return fmt.Errorf("%w: player=%s already in pod=%s", ErrConflict, playerID, podID)
		}

		if err := repos.Pods.UpsertParticipant(ctx, pod.Participant{
			PodID:     podID,
			PlayerID:  playerID,
			TurnOrder: len(active) + 1,
		}); err != nil {
			return fmt.Errorf("add participant: %w", err)
		}

		if len(active)+1 == pod.MaxRoster {
			p.Status = pod.StatusActive
			if err := s.updatePod(ctx, repos, p); err != nil {
				return err
			}
		}

		out, err = reloadPod(ctx, repos, podID)
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}
	return out, nil
}

// DeclareResult records a participant's confirmation. Once every active
// participant has confirmed, the pod completes and the ledger and ratings
// are applied in the same transaction.
func (s *PodService) DeclareResult(ctx context.Context, input DeclareResultInput) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.DeclareResult", podAttr(input.PodID), playerAttr(input.PlayerID))
	defer span.End()

	podID, playerID, err := requirePodAndPlayer(input.PodID, input.PlayerID)
	if err != nil {
		return pod.Pod{}, err
	}
	if input.Result == pod.ResultDisqualified {
		return pod.Pod{}, fmt.Errorf("%w: disqualification is set by an admin", ErrInvalidInput)
	}

	var (
		out       pod.Pod
		completed bool
	)
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		if p.IsDraft() {
			return fmt.Errorf("%w: pod=%s is not published", ErrConflict, podID)
		}
		switch p.Status {
		case pod.StatusActive, pod.StatusPending:
		case pod.StatusOpen:
			return fmt.Errorf("%w: pod=%s roster is incomplete", ErrConflict, podID)
		default:
			return fmt.Errorf("%w: pod=%s is already %s", ErrConflict, podID, p.Status)
		}

		active := p.Active()
		idx := participantIndex(active, playerID)
		if idx < 0 {
			return fmt.Errorf("%w: player=%s is not in pod=%s", ErrNotFound, playerID, podID)
		}
		if input.Result != pod.ResultNone {
			active[idx].Result = input.Result
		}
		active[idx].Confirmed = true

		outcome, err := pod.Outcome(active)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if err := repos.Pods.UpsertParticipant(ctx, active[idx]); err != nil {
			return fmt.Errorf("confirm participant: %w", err)
		}

		if pod.AllConfirmed(active) {
			lg, err := getLeague(ctx, repos, p.LeagueID)
			if err != nil {
				return err
			}
			if err := s.applyCompletion(ctx, repos, lg, active, p.IsTournamentGame); err != nil {
				return err
			}
			p.Status = pod.StatusComplete
			p.Result = outcome
			completed = true
		} else {
			p.Status = pod.StatusPending
			p.Result = pod.ResultNone
		}
		if err := s.updatePod(ctx, repos, p); err != nil {
			return err
		}

		out, err = reloadPod(ctx, repos, podID)
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}

	if completed {
		s.publish(ctx, podEvent(event.PodCompleted, out, s.now().UTC()))
		s.logger.InfoContext(ctx, "pod completed", "pod_id", out.ID, "league_id", out.LeagueID, "result", out.Result)
	}
	return out, nil
}

// AdminReplaceRoster rewrites a pod's participants and optionally forces its
// status. A completed pod is reversed first; whenever the pod ends up
// complete its ledger is reapplied with the league's current settings.
func (s *PodService) AdminReplaceRoster(ctx context.Context, input ReplaceRosterInput) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.AdminReplaceRoster", podAttr(input.PodID))
	defer span.End()

	podID := strings.TrimSpace(input.PodID)
	if podID == "" {
		return pod.Pod{}, fmt.Errorf("%w: pod id is required", ErrInvalidInput)
	}
	replacement, err := rosterFromEntries(podID, input.Participants)
	if err != nil {
		return pod.Pod{}, err
	}

	var (
		out       pod.Pod
		completed bool
	)
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		lg, err := getLeague(ctx, repos, p.LeagueID)
		if err != nil {
			return err
		}

		wasComplete := p.Status == pod.StatusComplete
		roster := p.Active()
		if wasComplete {
			if err := s.ledger.ReverseGameStats(ctx, repos, lg.ID, lg.Settings.WithDefaults(), roster, p.IsTournamentGame); err != nil {
				return err
			}
			roster = clearElo(roster)
		}

		status := p.Status
		if input.DesiredStatus != nil {
			status = *input.DesiredStatus
		}

		replaced := len(replacement) > 0
		switch {
		case replaced:
			roster = replacement
		case status == pod.StatusComplete && !wasComplete:
			for i := range roster {
				if roster[i].Result == pod.ResultNone {
					roster[i].Result = pod.ResultLoss
				}
				roster[i].Confirmed = true
			}
		}

		if status != pod.StatusOpen {
			if err := pod.ValidateRoster(roster); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
		}

		p.Result = pod.ResultNone
		if status == pod.StatusComplete {
			outcome, err := pod.Outcome(roster)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			p.Result = outcome
			completed = !wasComplete
		}
		// A pod that was complete keeps its ledger contribution even when the
		// admin moves it back out of complete.
		if status == pod.StatusComplete || wasComplete {
			roster, err = s.reapply(ctx, repos, lg, roster, p.IsTournamentGame)
			if err != nil {
				return err
			}
		}

		if replaced {
			err = repos.Pods.ReplaceParticipants(ctx, podID, roster)
		} else {
			err = upsertAll(ctx, repos, roster)
		}
		if err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		p.Status = status
		if err := s.updatePod(ctx, repos, p); err != nil {
			return err
		}

		out, err = reloadPod(ctx, repos, podID)
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}

	if completed {
		s.publish(ctx, podEvent(event.PodCompleted, out, s.now().UTC()))
	}
	s.logger.InfoContext(ctx, "pod roster replaced by admin",
		"pod_id", out.ID,
		"league_id", out.LeagueID,
		"status", out.Status,
		"participants", len(out.Active()),
	)
	return out, nil
}

// UpdateParticipantResult sets one participant's result. On a completed pod
// the whole pod is reversed and reapplied so ratings stay consistent.
func (s *PodService) UpdateParticipantResult(ctx context.Context, podID, playerID string, result pod.Result) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.UpdateParticipantResult", podAttr(podID), playerAttr(playerID))
	defer span.End()

	podID, playerID, err := requirePodAndPlayer(podID, playerID)
	if err != nil {
		return pod.Pod{}, err
	}

	var out pod.Pod
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		active := p.Active()
		idx := participantIndex(active, playerID)
		if idx < 0 {
			return fmt.Errorf("%w: player=%s is not in pod=%s", ErrNotFound, playerID, podID)
		}

		updated := clearElo(active)
		updated[idx].Result = result
		outcome, err := pod.Outcome(updated)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		if p.Status == pod.StatusComplete {
			lg, err := getLeague(ctx, repos, p.LeagueID)
			if err != nil {
				return err
			}
			if err := s.ledger.ReverseGameStats(ctx, repos, lg.ID, lg.Settings.WithDefaults(), active, p.IsTournamentGame); err != nil {
				return err
			}
			updated, err = s.reapply(ctx, repos, lg, updated, p.IsTournamentGame)
			if err != nil {
				return err
			}
			p.Result = outcome
			if err := s.updatePod(ctx, repos, p); err != nil {
				return err
			}
		} else {
			updated = active
			updated[idx].Result = result
		}

		if err := upsertAll(ctx, repos, updated); err != nil {
			return fmt.Errorf("save participants: %w", err)
		}

		out, err = reloadPod(ctx, repos, podID)
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}
	return out, nil
}

// RemoveParticipant soft-deletes a participant and reseats the rest. Losing
// the declared winner sends the pod back to active with its result cleared.
func (s *PodService) RemoveParticipant(ctx context.Context, podID, playerID string) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.RemoveParticipant", podAttr(podID), playerAttr(playerID))
	defer span.End()

	podID, playerID, err := requirePodAndPlayer(podID, playerID)
	if err != nil {
		return pod.Pod{}, err
	}

	var out pod.Pod
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		removed, ok := p.Participant(playerID)
		if !ok {
			return fmt.Errorf("%w: player=%s is not in pod=%s", ErrNotFound, playerID, podID)
		}
		if p.Status == pod.StatusComplete {
			return fmt.Errorf("%w: pod=%s is complete, replace the roster instead", ErrConflict, podID)
		}

		removed.Deleted = true
		if err := repos.Pods.UpsertParticipant(ctx, removed); err != nil {
			return fmt.Errorf("remove participant: %w", err)
		}

		remaining := make([]pod.Participant, 0, pod.MaxRoster)
		for _, item := range p.Active() {
			if item.PlayerID != playerID {
				remaining = append(remaining, item)
			}
		}
		remaining = pod.Reseat(remaining)
		if err := upsertAll(ctx, repos, remaining); err != nil {
			return fmt.Errorf("reseat participants: %w", err)
		}

		if removed.Result == pod.ResultWin {
			p.Status = pod.StatusActive
			p.Result = pod.ResultNone
		}
		if len(remaining) < pod.MinRoster && p.Status != pod.StatusOpen {
			p.Status = pod.StatusOpen
		}
		if err := s.updatePod(ctx, repos, p); err != nil {
			return err
		}

		out, err = reloadPod(ctx, repos, podID)
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}

	s.logger.InfoContext(ctx, "participant removed", "pod_id", podID, "player_id", playerID, "status", out.Status)
	return out, nil
}

func (s *PodService) AddParticipant(ctx context.Context, podID, playerID string) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.AddParticipant", podAttr(podID), playerAttr(playerID))
	defer span.End()

	podID, playerID, err := requirePodAndPlayer(podID, playerID)
	if err != nil {
		return pod.Pod{}, err
	}

	var out pod.Pod
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		if p.Status == pod.StatusComplete {
			return fmt.Errorf("%w: pod=%s is complete", ErrConflict, podID)
		}
		active := p.Active()
		if len(active) >= pod.MaxRoster {
			return fmt.Errorf("%w: pod=%s is full", ErrConflict, podID)
		}
		if p.HasPlayer(playerID) {
			return fmt.Errorf("%w: player=%s already in pod=%s", ErrConflict, playerID, podID)
		}

		if err := repos.Pods.UpsertParticipant(ctx, pod.Participant{
			PodID:     podID,
			PlayerID:  playerID,
			TurnOrder: len(active) + 1,
		}); err != nil {
			return fmt.Errorf("add participant: %w", err)
		}

		if p.Status == pod.StatusOpen && len(active)+1 == pod.MaxRoster {
			p.Status = pod.StatusActive
			if err := s.updatePod(ctx, repos, p); err != nil {
				return err
			}
		}

		out, err = reloadPod(ctx, repos, podID)
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}
	return out, nil
}

// ToggleDisqualification flips a participant between loss and disqualified.
// On a completed pod only that player's standing is patched.
func (s *PodService) ToggleDisqualification(ctx context.Context, podID, playerID string) (pod.Pod, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.ToggleDisqualification", podAttr(podID), playerAttr(playerID))
	defer span.End()

	podID, playerID, err := requirePodAndPlayer(podID, playerID)
	if err != nil {
		return pod.Pod{}, err
	}

	var out pod.Pod
	err = s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		participant, ok := p.Participant(playerID)
		if !ok {
			return fmt.Errorf("%w: player=%s is not in pod=%s", ErrNotFound, playerID, podID)
		}

		from := participant.Result
		to := pod.ResultDisqualified
		if from == pod.ResultDisqualified {
			to = pod.ResultLoss
		}

		if p.Status == pod.StatusComplete {
			lg, err := getLeague(ctx, repos, p.LeagueID)
			if err != nil {
				return err
			}
			if err := s.ledger.PatchResult(ctx, repos, lg.ID, lg.Settings.WithDefaults(), playerID, from, to, p.IsTournamentGame); err != nil {
				return err
			}
		}

		participant.Result = to
		if err := repos.Pods.UpsertParticipant(ctx, participant); err != nil {
			return fmt.Errorf("update participant result: %w", err)
		}

		out, err = reloadPod(ctx, repos, podID)
		return err
	})
	if err != nil {
		return pod.Pod{}, err
	}

	s.logger.InfoContext(ctx, "disqualification toggled", "pod_id", podID, "player_id", playerID)
	return out, nil
}

// DeletePod soft-deletes a pod, reversing its ledger first when complete.
func (s *PodService) DeletePod(ctx context.Context, podID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PodService.DeletePod", podAttr(podID))
	defer span.End()

	podID = strings.TrimSpace(podID)
	if podID == "" {
		return fmt.Errorf("%w: pod id is required", ErrInvalidInput)
	}

	var deleted pod.Pod
	err := s.store.Do(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := lockPod(ctx, repos, podID)
		if err != nil {
			return err
		}
		if p.Status == pod.StatusComplete {
			lg, err := getLeague(ctx, repos, p.LeagueID)
			if err != nil {
				return err
			}
			if err := s.ledger.ReverseGameStats(ctx, repos, lg.ID, lg.Settings.WithDefaults(), p.Active(), p.IsTournamentGame); err != nil {
				return err
			}
		}
		if err := repos.Pods.SoftDelete(ctx, podID); err != nil {
			return fmt.Errorf("soft delete pod: %w", err)
		}
		deleted = p
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, podEvent(event.PodDeleted, deleted, s.now().UTC()))
	s.logger.InfoContext(ctx, "pod deleted", "pod_id", podID, "league_id", deleted.LeagueID, "was_complete", deleted.Status == pod.StatusComplete)
	return nil
}

// applyCompletion applies counters then ratings and persists the captured
// elo_change/elo_before on each participant.
func (s *PodService) applyCompletion(ctx context.Context, repos Repositories, lg league.League, roster []pod.Participant, isTournamentGame bool) error {
	rated, err := s.reapply(ctx, repos, lg, roster, isTournamentGame)
	if err != nil {
		return err
	}
	if err := upsertAll(ctx, repos, rated); err != nil {
		return fmt.Errorf("store elo changes: %w", err)
	}
	return nil
}

func (s *PodService) reapply(ctx context.Context, repos Repositories, lg league.League, roster []pod.Participant, isTournamentGame bool) ([]pod.Participant, error) {
	if err := s.ledger.ApplyGameStats(ctx, repos, lg.ID, lg.Settings.WithDefaults(), roster, isTournamentGame); err != nil {
		return nil, err
	}
	return s.ledger.ApplyEloChanges(ctx, repos, lg.ID, roster)
}

func (s *PodService) updatePod(ctx context.Context, repos Repositories, p pod.Pod) error {
	p.UpdatedAt = s.now().UTC()
	if err := repos.Pods.Update(ctx, p); err != nil {
		return fmt.Errorf("update pod: %w", err)
	}
	return nil
}

func (s *PodService) publish(ctx context.Context, events ...event.Event) {
	s.publisher.Publish(ctx, events...)
}

func podEvent(name event.Name, p pod.Pod, at time.Time) event.Event {
	players := make([]string, 0, pod.MaxRoster)
	for _, item := range p.Active() {
		players = append(players, item.PlayerID)
	}
	return event.Event{
		Name:       name,
		LeagueID:   p.LeagueID,
		PodID:      p.ID,
		PlayerIDs:  players,
		OccurredAt: at,
	}
}

func lockPod(ctx context.Context, repos Repositories, podID string) (pod.Pod, error) {
	p, ok, err := repos.Pods.GetForUpdate(ctx, podID)
	if err != nil {
		return pod.Pod{}, fmt.Errorf("lock pod: %w", err)
	}
	if !ok || p.Deleted {
		return pod.Pod{}, fmt.Errorf("%w: pod=%s", ErrNotFound, podID)
	}
	return p, nil
}

func reloadPod(ctx context.Context, repos Repositories, podID string) (pod.Pod, error) {
	p, ok, err := repos.Pods.GetByID(ctx, podID)
	if err != nil {
		return pod.Pod{}, fmt.Errorf("reload pod: %w", err)
	}
	if !ok {
		return pod.Pod{}, fmt.Errorf("%w: pod=%s", ErrNotFound, podID)
	}
	return p, nil
}

func getLeague(ctx context.Context, repos Repositories, leagueID string) (league.League, error) {
	lg, ok, err := repos.Leagues.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !ok {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return lg, nil
}

func upsertAll(ctx context.Context, repos Repositories, participants []pod.Participant) error {
	for _, item := range participants {
		if err := repos.Pods.UpsertParticipant(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func clearElo(participants []pod.Participant) []pod.Participant {
	out := make([]pod.Participant, len(participants))
	for i, item := range participants {
		item.EloChange = 0
		item.EloBefore = 0
		out[i] = item
	}
	return out
}

func participantIndex(participants []pod.Participant, playerID string) int {
	for i, item := range participants {
		if item.PlayerID == playerID {
			return i
		}
	}
	return -1
}

func requirePodAndPlayer(podID, playerID string) (string, string, error) {
	podID = strings.TrimSpace(podID)
	playerID = strings.TrimSpace(playerID)
	if podID == "" {
		return "", "", fmt.Errorf("%w: pod id is required", ErrInvalidInput)
	}
	if playerID == "" {
		return "", "", fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	return podID, playerID, nil
}

func cleanPlayerIDs(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			return nil, fmt.Errorf("%w: player id cannot be empty", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidInput, pod.ErrDuplicatePlayer, id)
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func rosterFromEntries(podID string, entries []RosterEntry) ([]pod.Participant, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(entries))
	autoSeat := true
	for _, entry := range entries {
		ids = append(ids, entry.PlayerID)
		if entry.TurnOrder != 0 {
			autoSeat = false
		}
	}
	ids, err := cleanPlayerIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]pod.Participant, 0, len(entries))
	for i, entry := range entries {
		turn := entry.TurnOrder
		if autoSeat {
			turn = i + 1
		}
		out = append(out, pod.Participant{
			PodID:     podID,
			PlayerID:  ids[i],
			Result:    entry.Result,
			Confirmed: entry.Confirmed,
			TurnOrder: turn,
		})
	}
	if err := pod.ValidateRoster(out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return out, nil
}
