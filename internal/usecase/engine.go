package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

const inboxSize = 8

type subscriberDep interface {
	// Subscribe opens the event feed. With replay set, past events are
	// delivered first, in ledger order.
	Subscribe(ctx context.Context, replay bool) (entity.Subscription, error)
}

// Observer receives a notice for every step that changed or failed to change
// the session. Observe is called from the engine loop and must not block.
type Observer interface {
	Observe(ctx context.Context, notice entity.Notice)
}

type EngineRecorder interface {
	Event(kind, outcome string)
	Session(session entity.GameSession)
	Resync()
}

// Engine is the single loop that feeds ledger events and local
// acknowledgements to the reconciler, one at a time.
type Engine struct {
	logger     *slog.Logger
	reconciler *Reconciler
	recorder   EngineRecorder

	inbox     chan entity.Event
	ready     chan struct{}
	readyOnce sync.Once

	mu        sync.RWMutex
	observers []Observer
}

func NewEngine(logger *slog.Logger, reconciler *Reconciler, recorder EngineRecorder) *Engine {
	return &Engine{
		logger:     logger.With("component", "engine"),
		reconciler: reconciler,
		recorder:   recorder,
		inbox:      make(chan entity.Event, inboxSize),
		ready:      make(chan struct{}),
	}
}

func (that *Engine) Attach(observers ...Observer) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.observers = append(that.observers, observers...)
}

// Ready is closed once the first subscription has replayed the ledger history.
func (that *Engine) Ready() <-chan struct{} {
	return that.ready
}

func (that *Engine) Session() entity.GameSession {
	return that.reconciler.Session()
}

// Acknowledge queues a local event behind whatever the loop is processing.
func (that *Engine) Acknowledge(ctx context.Context, event entity.Event) error {
	select {
	case that.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run blocks until ctx is done or the ledger connection fails. A connectivity
// failure is returned as apperror.ErrConnectivityFault; reconnecting is up to the caller.
func (that *Engine) Run(ctx context.Context, source subscriberDep) error {
	log := that.logger.With("method", "Run")

	for {
		subscription, err := source.Subscribe(ctx, true)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return that.disconnected(ctx, fmt.Errorf("failed to subscribe: %w", err))
		}

		log.Info("subscribed to ledger events")

		resync, err := that.pump(ctx, subscription)
		subscription.Unsubscribe()

		if err != nil {
			return that.disconnected(ctx, err)
		}

		if resync == nil {
			log.Info("event loop stopped")
			return nil
		}

		log.Warn("resynchronizing session from ledger history")
		that.reconciler.Reset()
		that.recorder.Resync()

		fresh := that.reconciler.Session()
		that.recorder.Session(fresh)

		resync.Session = fresh.View()
		that.notify(ctx, *resync)
	}
}

// pump returns the resync notice when the session has to be rebuilt.
func (that *Engine) pump(ctx context.Context, subscription entity.Subscription) (*entity.Notice, error) {
	replayed := subscription.Replayed()

	for {
		select {
		case <-ctx.Done():
			return nil, nil
		case <-replayed:
			replayed = nil
			that.readyOnce.Do(func() { close(that.ready) })
		case err := <-subscription.Err():
			if err == nil {
				err = errors.New("subscription closed")
			}

			return nil, err
		case event, ok := <-subscription.Events():
			if !ok {
				select {
				case err := <-subscription.Err():
					if err != nil {
						return nil, err
					}
				default:
				}

				return nil, errors.New("event feed closed")
			}

			if resync := that.step(ctx, event); resync != nil {
				return resync, nil
			}
		case event := <-that.inbox:
			if resync := that.step(ctx, event); resync != nil {
				return resync, nil
			}
		}
	}
}

// step ingests one event. A resync notice is handed back instead of being
// sent, so observers see it with the rebuilt session.
func (that *Engine) step(ctx context.Context, event entity.Event) *entity.Notice {
	outcome := that.reconciler.Ingest(event)
	notice := outcome.Notice()

	that.recorder.Event(event.Kind(), string(notice.Kind))
	that.recorder.Session(outcome.Session)

	switch notice.Kind {
	case entity.NoticeIgnored:
	case entity.NoticeResync:
		return &notice
	default:
		that.notify(ctx, notice)
	}

	return nil
}

func (that *Engine) disconnected(ctx context.Context, err error) error {
	if !errors.Is(err, apperror.ErrConnectivityFault) {
		err = fmt.Errorf("%w: %w", apperror.ErrConnectivityFault, err)
	}

	that.logger.Error("ledger connection lost", "method", "Run", "error", err)

	that.notify(ctx, entity.Notice{
		Kind:    entity.NoticeConnectivity,
		Message: err.Error(),
		Session: that.reconciler.Session().View(),
	})

	return err
}

func (that *Engine) notify(ctx context.Context, notice entity.Notice) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, observer := range that.observers {
		observer.Observe(ctx, notice)
	}
}
