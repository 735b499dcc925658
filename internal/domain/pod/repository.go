package pod

import "context"

// Filter narrows a league pod listing. Nil fields match everything.
type Filter struct {
	Status          *Status
	Tournament      *bool
	Championship    *bool
	Published       *bool
	TournamentRound *int
	IncludeDeleted  bool
}

// Repository describes pod persistence needs from use cases.
// GetForUpdate must serialize concurrent writers of the same pod until the
// surrounding unit of work ends. ReplaceParticipants drops every existing
// participant row, soft-deleted ones included. DeleteTournamentPods hard
// deletes tournament pods matching filter and returns how many went.
type Repository interface {
	Create(ctx context.Context, p Pod) error
	GetByID(ctx context.Context, podID string) (Pod, bool, error)
	GetForUpdate(ctx context.Context, podID string) (Pod, bool, error)
	Update(ctx context.Context, p Pod) error
	ListByLeague(ctx context.Context, leagueID string, filter Filter) ([]Pod, error)
	ReplaceParticipants(ctx context.Context, podID string, participants []Participant) error
	UpsertParticipant(ctx context.Context, participant Participant) error
	SoftDelete(ctx context.Context, podID string) error
	DeleteTournamentPods(ctx context.Context, leagueID string, filter Filter) (int, error)
}

// Match reports whether p passes the filter.
func (f Filter) Match(p Pod) bool {
	if p.Deleted && !f.IncludeDeleted {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.Tournament != nil && p.IsTournamentGame != *f.Tournament {
		return false
	}
	if f.Championship != nil && p.IsChampionshipGame != *f.Championship {
		return false
	}
	if f.Published != nil && p.Published != *f.Published {
		return false
	}
	if f.TournamentRound != nil && p.TournamentRound != *f.TournamentRound {
		return false
	}
	return true
}
