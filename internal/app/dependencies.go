package app

import (
	"time"

	"github.com/hallview/hallview/internal/config"
	"github.com/hallview/hallview/internal/event_bus"
	"github.com/hallview/hallview/internal/metrics"
	"github.com/hallview/hallview/internal/utils"
	"github.com/hallview/hallview/pkg/calendar"
	"github.com/hallview/hallview/pkg/feed"
	"github.com/hallview/hallview/pkg/grid"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Store *calendar.Store
	Clock utils.Clock

	FeedClient *feed.Client
	Refresher  *feed.Refresher
	Status     *feed.StatusTracker

	Renderer    *grid.Renderer
	GridHandler *grid.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Store = calendar.NewStore()
	deps.Clock = utils.SystemClock{}

	metrics.ObserveBus(deps.Bus)

	deps.FeedClient = feed.NewClient(cfg.Backend.URL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)
	deps.Refresher = feed.NewRefresher(deps.FeedClient, deps.Store, deps.Bus)
	deps.Status = feed.NewStatusTracker(deps.Bus)

	deps.Renderer = grid.NewRenderer(cfg.Grid.WindowDays)
	deps.GridHandler = grid.NewHandler(deps.Renderer, deps.Store, deps.Refresher, deps.Status, deps.Clock)

	return deps
}
