package event

import (
	"context"
	"time"
)

type Name string

const (
	PodCreated             Name = "pod.created"
	PodCompleted           Name = "pod.completed"
	PodDeleted             Name = "pod.deleted"
	TournamentPhaseChanged Name = "league.tournament_phase_changed"
)

// Event is a notification for collaborators outside the core. Delivery is
// best effort and never part of the originating transaction.
type Event struct {
	Name       Name
	LeagueID   string
	PodID      string
	Phase      string
	PlayerIDs  []string
	OccurredAt time.Time
}

// Publisher hands events off for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, events ...Event)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...Event) {}
