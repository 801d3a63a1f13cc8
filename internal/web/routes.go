package web

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"newsportal.dev/editor-console/internal/config"
	"newsportal.dev/editor-console/internal/gateway"
	"newsportal.dev/editor-console/internal/metrics"
)

// SetupRoutes configures and returns the HTTP router
func SetupRoutes(cfg config.Config, gw *gateway.Client) *mux.Router {
	r := mux.NewRouter()

	// Add middleware to all routes
	r.Use(metrics.MetricsMiddleware)
	r.Use(RequestIDMiddleware)

	// Pages
	r.HandleFunc("/", RootHandler).Methods("GET")
	r.HandleFunc("/drafts", DraftListHandler(gw)).Methods("GET")
	r.HandleFunc("/drafts/{id}", DraftDetailHandler(gw)).Methods("GET")
	r.HandleFunc("/settings", SettingsHandler(cfg)).Methods("GET")

	// Editor actions
	r.HandleFunc("/drafts/{id}/approve", ApproveHandler(gw)).Methods("POST")
	r.HandleFunc("/drafts/{id}/publish", PublishHandler(gw)).Methods("POST")

	// Health endpoint
	r.HandleFunc("/health", HealthHandler).Methods("GET")

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
