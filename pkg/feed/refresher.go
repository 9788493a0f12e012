package feed

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hallview/hallview/internal/event_bus"
	"github.com/hallview/hallview/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// ErrRefreshInFlight is returned when a refresh cycle is already running.
var ErrRefreshInFlight = errors.New("a refresh cycle is already in flight")

// Refresher runs complete fetch cycles: fetch, normalize, order, store. It
// is the only writer of the event store. Cycles are serialized by an
// in-flight guard; a second caller is turned away instead of queued.
type Refresher struct {
	client   *Client
	store    *calendar.Store
	bus      *event_bus.EventBus
	inFlight atomic.Bool
}

func NewRefresher(client *Client, store *calendar.Store, bus *event_bus.EventBus) *Refresher {
	return &Refresher{client: client, store: store, bus: bus}
}

// Refresh runs one cycle synchronously. On success the store holds exactly
// the normalized result of this fetch; on failure it is left cleared so
// stale events can never sit behind an error state.
func (r *Refresher) Refresh(ctx context.Context) error {
	if !r.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer r.inFlight.Store(false)

	return r.run(ctx)
}

// Start launches a cycle in the background if none is running. It reports
// ErrRefreshInFlight otherwise.
func (r *Refresher) Start(ctx context.Context) error {
	if !r.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}

	go func() {
		defer r.inFlight.Store(false)
		if err := r.run(ctx); err != nil {
			log.Errorf("Background refresh failed: %v", err)
		}
	}()
	return nil
}

func (r *Refresher) run(ctx context.Context) error {
	cycleID := uuid.NewString()
	started := time.Now()
	log.Infof("Starting calendar refresh cycle %s", cycleID)

	raws, err := r.client.FetchEvents(ctx)
	if err != nil {
		r.store.Clear()
		r.publish(ctx, event_bus.TypeCalendarRefreshFailed, event_bus.CalendarRefreshFailed{
			CycleID: cycleID,
			Reason:  failureReason(err),
			Details: err.Error(),
		})
		return fmt.Errorf("refresh cycle %s failed: %w", cycleID, err)
	}

	r.store.Clear()
	accepted, rejected := 0, 0
	for i, raw := range raws {
		event, err := calendar.Normalize(raw)
		if err != nil {
			log.Warnf("Skipping event %d/%d: %v", i+1, len(raws), err)
			rejected++
			continue
		}
		r.store.Add(event)
		accepted++
	}

	duration := time.Since(started)
	r.publish(ctx, event_bus.TypeCalendarRefreshed, event_bus.CalendarRefreshed{
		CycleID:       cycleID,
		EventCount:    accepted,
		RejectedCount: rejected,
		Duration:      duration,
	})
	log.Infof("Calendar refresh cycle %s complete: %d events, %d rejected, took %s",
		cycleID, accepted, rejected, duration.Round(time.Millisecond))
	return nil
}

func (r *Refresher) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if err := r.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("Failed to publish %s: %v", eventType, err)
	}
}

func failureReason(err error) string {
	var contractErr *ContractError
	if errors.As(err, &contractErr) {
		return "contract"
	}
	return "transient"
}
