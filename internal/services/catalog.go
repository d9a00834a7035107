package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/juju/clock"

	"inspection-hub/go-backend/internal/cache"
	"inspection-hub/go-backend/internal/models"
)

// Headers the pipeline master accepts in place of a user session.
const (
	HeaderInternalService = "X-Internal-Service"
	HeaderServiceName     = "X-Service-Name"
)

const catalogFetchTimeout = 5 * time.Second

// Catalog fetches pipeline definitions from the pipeline master and caches
// them. Failed fetches are not cached, so the next frame retries.
type Catalog struct {
	baseURL      string
	serviceName  string
	serviceToken string
	client       *http.Client
	cache        *cache.TTL[string, *models.PipelineDefinition]
	logger       *slog.Logger

	fetches atomic.Uint64
}

type CatalogConfig struct {
	BaseURL      string
	ServiceName  string
	ServiceToken string
	TTL          time.Duration
	Clock        clock.Clock
	Client       *http.Client
}

func NewCatalog(cfg CatalogConfig, logger *slog.Logger) *Catalog {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: catalogFetchTimeout}
	}
	return &Catalog{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceName:  cfg.ServiceName,
		serviceToken: cfg.ServiceToken,
		client:       client,
		cache:        cache.NewTTL[string, *models.PipelineDefinition](cfg.Clock, cfg.TTL),
		logger:       logger,
	}
}

// Get returns the definition for id. A non-nil error means the master could
// not be asked or refused; the definition is nil in that case.
func (c *Catalog) Get(ctx context.Context, id string) (*models.PipelineDefinition, error) {
	if def, ok := c.cache.Get(id); ok {
		return def, nil
	}

	def, err := c.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Set(id, def)
	return def, nil
}

// Invalidate drops every cached definition.
func (c *Catalog) Invalidate() {
	c.cache.Flush()
}

// Fetches counts requests sent to the master.
func (c *Catalog) Fetches() uint64 {
	return c.fetches.Load()
}

func (c *Catalog) fetch(ctx context.Context, id string) (*models.PipelineDefinition, error) {
	c.fetches.Add(1)

	endpoint := c.baseURL + "/pipelines/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderInternalService, "true")
	req.Header.Set(HeaderServiceName, c.serviceName)
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: get pipeline %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("catalog: get pipeline %s: master returned %s", id, resp.Status)
	}

	var def models.PipelineDefinition
	if err := json.NewDecoder(resp.Body).Decode(&def); err != nil {
		return nil, fmt.Errorf("catalog: decode pipeline %s: %w", id, err)
	}
	if def.ID == "" {
		def.ID = id
	}

	c.logger.Debug("pipeline definition fetched", "pipeline_id", id, "components", len(def.Components))
	return &def, nil
}
