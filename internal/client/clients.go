package client

import (
	"net/http"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/config"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func InitClients(cfg config.CatalogConfig, log *zap.Logger) (*CatalogAPI, error) {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return NewCatalogAPI(
		cfg.BaseURL,
		&http.Client{Timeout: timeout},
		rate.NewLimiter(limit, burst),
		log.Named("catalog"),
	)
}
