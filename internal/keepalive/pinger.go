// Package keepalive keeps a hosted deployment warm by periodically hitting
// the service's own health endpoint. It carries no correctness obligation
// toward the transcription path.
package keepalive

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	log      *slog.Logger
}

func New(baseURL string, interval, timeout time.Duration, log *slog.Logger) *Pinger {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pinger{
		url:      strings.TrimRight(baseURL, "/") + "/health",
		interval: interval,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Run pings the health endpoint every interval until ctx is canceled. Ping
// failures are logged and never propagate; request handling is unaffected.
func (p *Pinger) Run(ctx context.Context) {
	p.log.Info("keepalive pinger started", "url", p.url, "interval", p.interval.String())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("keepalive pinger stopped")
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.log.Warn("keepalive request creation failed", "error", err)
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warn("keepalive ping failed", "error", err)
		return
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.Warn("keepalive ping returned unexpected status", "status", resp.StatusCode)
		return
	}
	p.log.Debug("keepalive ping ok")
}
