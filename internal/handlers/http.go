package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/internal/auth"
	"inspection-hub/go-backend/internal/services"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// WorkerHealthChecker reports the status of downstream workers.
type WorkerHealthChecker interface {
	Health(ctx context.Context) []services.WorkerHealth
}

// Invalidator drops cached lookups so the next request refetches them.
type Invalidator interface {
	Invalidate()
}

type OpsConfig struct {
	Metrics   *services.Metrics
	Gatherer  prometheus.Gatherer
	Workers   WorkerHealthChecker
	Queue     func() aggregator.QueueStats
	WebSocket http.Handler

	// Caches are flushed by POST /cache/invalidate, keyed by name. The
	// route needs a Validator to accept bearer tokens.
	Caches    map[string]Invalidator
	Validator *auth.Validator
}

type InvalidateResponse struct {
	Invalidated []string `json:"invalidated"`
}

type HealthResponse struct {
	Status        string                  `json:"status"`
	ActiveStreams int                     `json:"active_streams"`
	Workers       []services.WorkerHealth `json:"workers"`
	Queue         *aggregator.QueueStats  `json:"queue,omitempty"`
	UptimeSec     int64                   `json:"uptime_sec"`
	Timestamp     string                  `json:"timestamp"`
}

type opsHandler struct {
	cfg     OpsConfig
	started time.Time
	logger  *slog.Logger
}

// NewOpsMux serves /healthz, /metrics and, when configured, /ws and
// /cache/invalidate.
func NewOpsMux(cfg OpsConfig, logger *slog.Logger) *http.ServeMux {
	h := &opsHandler{cfg: cfg, started: time.Now(), logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.handleHealth)
	if cfg.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	if cfg.WebSocket != nil {
		mux.Handle("/ws", cfg.WebSocket)
	}
	if len(cfg.Caches) > 0 && cfg.Validator != nil {
		mux.HandleFunc("/cache/invalidate", h.handleInvalidate)
	}
	return mux
}

func (h *opsHandler) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	claims, err := h.cfg.Validator.Validate(auth.BearerToken(r.Header.Get("Authorization")))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": err.Error()})
		return
	}

	names := make([]string, 0, len(h.cfg.Caches))
	for name, c := range h.cfg.Caches {
		c.Invalidate()
		names = append(names, name)
	}
	slices.Sort(names)

	h.logger.Info("caches invalidated", "caches", names, "subject", claims.Subject)
	writeJSON(w, http.StatusOK, InvalidateResponse{Invalidated: names})
}

func (h *opsHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}

	resp := HealthResponse{
		Status:    HealthStatusOK,
		Workers:   []services.WorkerHealth{},
		UptimeSec: int64(time.Since(h.started).Seconds()),
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if h.cfg.Metrics != nil {
		resp.ActiveStreams = h.cfg.Metrics.ActiveStreams()
	}
	if h.cfg.Workers != nil {
		resp.Workers = h.cfg.Workers.Health(r.Context())
		for _, wh := range resp.Workers {
			if wh.Status != healthpb.HealthCheckResponse_SERVING.String() {
				resp.Status = HealthStatusDegraded
			}
		}
	}
	if h.cfg.Queue != nil {
		stats := h.cfg.Queue()
		resp.Queue = &stats
	}

	h.logger.Debug("health check", "status", resp.Status, "active_streams", resp.ActiveStreams)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
