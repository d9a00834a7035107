package judgment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/juju/clock"

	"inspection-hub/go-backend/internal/cache"
	"inspection-hub/go-backend/internal/models"
)

// CriteriaStore reads criteria from the relational store. Both methods return
// (nil, nil) when nothing matches.
type CriteriaStore interface {
	CriterionByItem(ctx context.Context, itemID string) (*models.Criterion, error)
	CriterionByPipeline(ctx context.Context, productCode, processCode, pipelineID string) (*models.Criterion, error)
}

// Lookup is the request shape for criteria resolution. ItemID wins when set;
// otherwise all of ProductCode, ProcessCode and PipelineID are required.
type Lookup struct {
	ItemID      string
	ProductCode string
	ProcessCode string
	PipelineID  string
}

func (l Lookup) cacheKey() (string, bool) {
	if l.ItemID != "" {
		return "item:" + l.ItemID, true
	}
	if l.ProductCode == "" || l.ProcessCode == "" || l.PipelineID == "" {
		return "", false
	}
	return "triple:" + l.ProductCode + "\x00" + l.ProcessCode + "\x00" + l.PipelineID, true
}

// Resolver caches criteria lookups in front of a CriteriaStore.
type Resolver struct {
	store    CriteriaStore
	cache    *cache.TTL[string, *models.Criterion]
	negative bool
	logger   *slog.Logger
}

// NewResolver returns a Resolver. When negativeCache is false only found
// criteria are cached and every miss goes back to the store.
func NewResolver(store CriteriaStore, clk clock.Clock, ttl time.Duration, negativeCache bool, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:    store,
		cache:    cache.NewTTL[string, *models.Criterion](clk, ttl),
		negative: negativeCache,
		logger:   logger,
	}
}

// Resolve returns the criterion for l, or nil when none applies.
func (r *Resolver) Resolve(ctx context.Context, l Lookup) (*models.Criterion, error) {
	key, ok := l.cacheKey()
	if !ok {
		return nil, nil
	}
	if c, hit := r.cache.Get(key); hit {
		return c, nil
	}

	var (
		c   *models.Criterion
		err error
	)
	if l.ItemID != "" {
		c, err = r.store.CriterionByItem(ctx, l.ItemID)
	} else {
		c, err = r.store.CriterionByPipeline(ctx, l.ProductCode, l.ProcessCode, l.PipelineID)
	}
	if err != nil {
		return nil, fmt.Errorf("judgment: resolve criteria: %w", err)
	}

	if c != nil || r.negative {
		r.cache.Set(key, c)
	}
	if c == nil {
		r.logger.Debug("no criteria found",
			"item_id", l.ItemID,
			"product_code", l.ProductCode,
			"process_code", l.ProcessCode,
			"pipeline_id", l.PipelineID,
		)
	}
	return c, nil
}

// Invalidate drops every cached criterion.
func (r *Resolver) Invalidate() {
	r.cache.Flush()
}
