package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/garretthaima/escalation-league/internal/domain/pod"
)

type PodRepository struct {
	store *Store
}

func (r *PodRepository) Create(_ context.Context, p pod.Pod) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.state.pods[p.ID]; exists {
		return fmt.Errorf("pod already exists: %s", p.ID)
	}
	r.store.state.pods[p.ID] = clonePod(p)
	return nil
}

func (r *PodRepository) GetByID(_ context.Context, podID string) (pod.Pod, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.state.pods[podID]
	if !ok {
		return pod.Pod{}, false, nil
	}
	return clonePod(item), true, nil
}

func (r *PodRepository) GetForUpdate(ctx context.Context, podID string) (pod.Pod, bool, error) {
	return r.GetByID(ctx, podID)
}

// Update writes the pod's own columns. Participants are left untouched.
func (r *PodRepository) Update(_ context.Context, p pod.Pod) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.state.pods[p.ID]
	if !ok {
		return fmt.Errorf("pod not found: %s", p.ID)
	}
	participants := current.Participants
	current = clonePod(p)
	current.Participants = participants
	r.store.state.pods[p.ID] = current
	return nil
}

func (r *PodRepository) ListByLeague(_ context.Context, leagueID string, filter pod.Filter) ([]pod.Pod, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]pod.Pod, 0)
	for _, item := range r.store.state.pods {
		if item.LeagueID == leagueID && filter.Match(item) {
			out = append(out, clonePod(item))
		}
	}
	slices.SortFunc(out, func(a, b pod.Pod) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *PodRepository) ReplaceParticipants(_ context.Context, podID string, participants []pod.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.state.pods[podID]
	if !ok {
		return fmt.Errorf("pod not found: %s", podID)
	}
	current.Participants = make([]pod.Participant, 0, len(participants))
	for _, item := range participants {
		item.PodID = podID
		current.Participants = append(current.Participants, item)
	}
	r.store.state.pods[podID] = current
	return nil
}

func (r *PodRepository) UpsertParticipant(_ context.Context, participant pod.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.state.pods[participant.PodID]
	if !ok {
		return fmt.Errorf("pod not found: %s", participant.PodID)
	}
	participants := slices.Clone(current.Participants)
	idx := slices.IndexFunc(participants, func(item pod.Participant) bool {
		return item.PlayerID == participant.PlayerID
	})
	if idx < 0 {
		participants = append(participants, participant)
	} else {
		participants[idx] = participant
	}
	current.Participants = participants
	r.store.state.pods[participant.PodID] = current
	return nil
}

func (r *PodRepository) SoftDelete(_ context.Context, podID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.state.pods[podID]
	if !ok {
		return fmt.Errorf("pod not found: %s", podID)
	}
	participants := slices.Clone(current.Participants)
	for i := range participants {
		participants[i].Deleted = true
	}
	current.Participants = participants
	current.Deleted = true
	r.store.state.pods[podID] = current
	return nil
}

func (r *PodRepository) DeleteTournamentPods(_ context.Context, leagueID string, filter pod.Filter) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	deleted := 0
	for id, item := range r.store.state.pods {
		if item.LeagueID != leagueID || !item.IsTournamentGame || !filter.Match(item) {
			continue
		}
		delete(r.store.state.pods, id)
		deleted++
	}
	return deleted, nil
}

func clonePod(item pod.Pod) pod.Pod {
	copied := item
	copied.Participants = slices.Clone(item.Participants)
	return copied
}
