package eventbus

import (
	"context"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
)

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256
)

var ErrClosed = crerr.New("event dispatcher is closed")

// Handler consumes one event. Returned errors and panics are logged by the
// dispatcher and never reach the publisher.
type Handler func(ctx context.Context, e event.Event) error

type Options struct {
	Workers   int
	QueueSize int
}

type subscription struct {
	name    string
	handler Handler
}

// Dispatcher delivers events to subscribers on an ants worker pool.
type Dispatcher struct {
	pool   *ants.Pool
	logger *logging.Logger

	mu       sync.RWMutex
	byName   map[event.Name][]subscription
	wildcard []subscription

	inflight sync.WaitGroup
	closed   atomic.Bool
}

func New(opts Options, logger *logging.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	pool, err := ants.NewPool(opts.Workers, ants.WithMaxBlockingTasks(opts.QueueSize))
	if err != nil {
		return nil, crerr.Wrap(err, "create event worker pool")
	}

	return &Dispatcher{
		pool:   pool,
		logger: logger,
		byName: make(map[event.Name][]subscription),
	}, nil
}

// Subscribe registers h for events called name. name identifies the
// subscriber in logs.
func (d *Dispatcher) Subscribe(e event.Name, name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byName[e] = append(d.byName[e], subscription{name: name, handler: h})
}

// SubscribeAll registers h for every event.
func (d *Dispatcher) SubscribeAll(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wildcard = append(d.wildcard, subscription{name: name, handler: h})
}

// Publish queues delivery and returns without waiting. Handlers run with a
// context detached from ctx's cancellation, so delivery outlives the request.
func (d *Dispatcher) Publish(ctx context.Context, events ...event.Event) {
	detached := context.WithoutCancel(ctx)
	for _, e := range events {
		for _, sub := range d.subscribers(e.Name) {
			if err := d.submit(detached, sub, e); err != nil {
				d.logger.WarnContext(ctx, "drop event delivery",
					"event", string(e.Name),
					"subscriber", sub.name,
					"pod_id", e.PodID,
					"league_id", e.LeagueID,
					"error", err,
				)
			}
		}
	}
}

// Wait blocks until every queued delivery has finished.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

// Close stops accepting events, drains queued deliveries and releases the pool.
func (d *Dispatcher) Close() {
	if !d.closed.CompareAndSwap(false, true) {
		return
	}
	d.inflight.Wait()
	d.pool.Release()
}

func (d *Dispatcher) subscribers(name event.Name) []subscription {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]subscription, 0, len(d.byName[name])+len(d.wildcard))
	out = append(out, d.byName[name]...)
	out = append(out, d.wildcard...)
	return out
}

func (d *Dispatcher) submit(ctx context.Context, sub subscription, e event.Event) error {
	if d.closed.Load() {
		return ErrClosed
	}

	d.inflight.Add(1)
	err := d.pool.Submit(func() {
		defer d.inflight.Done()
		d.deliver(ctx, sub, e)
	})
	if err != nil {
		d.inflight.Done()
		return crerr.Wrap(err, "submit event delivery")
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, sub subscription, e event.Event) {
	var handlerErr error
	var catcher panics.Catcher
	catcher.Try(func() {
		handlerErr = sub.handler(ctx, e)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		handlerErr = recovered.AsError()
	}
	if handlerErr == nil {
		return
	}

	d.logger.WarnContext(ctx, "event handler failed",
		"event", string(e.Name),
		"subscriber", sub.name,
		"pod_id", e.PodID,
		"league_id", e.LeagueID,
		"error", handlerErr,
	)
}
