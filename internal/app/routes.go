package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Agenda grid
	r.HandleFunc("/api/grid", deps.GridHandler.GetGrid).Methods("GET")
	r.HandleFunc("/api/refresh", deps.GridHandler.TriggerRefresh).Methods("POST")
	r.HandleFunc("/api/status", deps.GridHandler.GetStatus).Methods("GET")

	// Operational
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
