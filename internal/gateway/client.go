package gateway

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"newsportal.dev/editor-console/internal/config"
)

// Client represents the HTTP client for the gateway API
type Client struct {
	httpClient *http.Client
	baseURL    string
	status     string
	minScore   float64
}

// NewClient creates a new gateway client from the console configuration
func NewClient(cfg config.Config) *Client {
	timeout := cfg.GatewayTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}

	log.Info().
		Str("gateway_base_url", cfg.GatewayBaseURL).
		Str("drafts_status", cfg.DraftsStatus).
		Float64("drafts_min_score", cfg.DraftsMinScore).
		Msg("Gateway client initialized")

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.GatewayBaseURL,
		status:     cfg.DraftsStatus,
		minScore:   cfg.DraftsMinScore,
	}
}
