package usecase_test

import (
	"context"
	"sync"

	"github.com/garretthaima/escalation-league/internal/domain/event"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, events...)
}

func (p *recordingPublisher) names() []event.Name {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]event.Name, 0, len(p.events))
	for _, item := range p.events {
		out = append(out, item.Name)
	}
	return out
}
