package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hallview/hallview/internal/config"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, the refresh pipeline, router, and server
// lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	cron   *cron.Cron
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	deps := BuildDependencies(cfg)

	SetupMiddleware(r)
	RegisterRoutes(r, deps)

	c := cron.New()
	if _, err := c.AddFunc(cfg.Refresh.Schedule, func() {
		if err := deps.Refresher.Refresh(context.Background()); err != nil {
			log.Errorf("Scheduled refresh failed: %v", err)
		}
	}); err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, cron: c, srv: srv}, nil
}

// Run kicks off the initial refresh cycle, starts the refresh schedule, and
// serves HTTP until the listener fails. The initial refresh runs in the
// background so a dead backend does not keep the error state from being
// served.
func (a *Application) Run() error {
	if err := a.deps.Refresher.Start(context.Background()); err != nil {
		log.Errorf("Failed to start initial refresh: %v", err)
	}
	a.cron.Start()

	log.Infof("Starting server on %s (backend %s, refresh %q)", a.srv.Addr, a.cfg.Backend.URL, a.cfg.Refresh.Schedule)
	return a.srv.ListenAndServe()
}
