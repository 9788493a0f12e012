package metrics

import (
	"github.com/hallview/hallview/internal/event_bus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchAttempts counts individual requests to the calendar backend,
	// including retries within a cycle.
	FetchAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hallview_calendar_fetch_attempts_total",
		Help: "Calendar backend fetch attempts, including retries.",
	})

	// FetchRetries counts retries after transient failures.
	FetchRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hallview_calendar_fetch_retries_total",
		Help: "Calendar fetch retries after transient failures.",
	})

	refreshFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hallview_refresh_failures_total",
		Help: "Refresh cycles that gave up, by failure reason.",
	}, []string{"reason"})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hallview_refresh_duration_seconds",
		Help:    "Duration of successful refresh cycles.",
		Buckets: prometheus.DefBuckets,
	})

	eventsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hallview_calendar_events",
		Help: "Events currently held in the store.",
	})

	eventsRejected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hallview_calendar_rejected_events",
		Help: "Raw records rejected during the last refresh cycle.",
	})
)

// ObserveBus registers subscribers that turn refresh outcomes into metrics.
func ObserveBus(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped[event_bus.CalendarRefreshed](bus, event_bus.TypeCalendarRefreshed,
		func(e event_bus.EventT[event_bus.CalendarRefreshed]) error {
			refreshDuration.Observe(e.Data.Duration.Seconds())
			eventsLoaded.Set(float64(e.Data.EventCount))
			eventsRejected.Set(float64(e.Data.RejectedCount))
			return nil
		})

	event_bus.SubscribeTyped[event_bus.CalendarRefreshFailed](bus, event_bus.TypeCalendarRefreshFailed,
		func(e event_bus.EventT[event_bus.CalendarRefreshFailed]) error {
			refreshFailures.WithLabelValues(e.Data.Reason).Inc()
			return nil
		})
}
