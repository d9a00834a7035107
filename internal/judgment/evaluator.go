package judgment

import (
	"context"
	"fmt"

	"inspection-hub/go-backend/internal/models"
)

type Request struct {
	ProductCode string
	ProcessCode string
	PipelineID  string
	ItemID      string
	Detections  []models.Detection
}

func (r Request) lookup() Lookup {
	return Lookup{
		ItemID:      r.ItemID,
		ProductCode: r.ProductCode,
		ProcessCode: r.ProcessCode,
		PipelineID:  r.PipelineID,
	}
}

type Result struct {
	Judgment   models.Judgment
	CriteriaID string
	ItemID     string
	PipelineID string
	Metrics    map[string]string
	Reason     string
}

// Resolved reports whether a criterion was applied.
func (r Result) Resolved() bool {
	return r.Judgment.Final()
}

// Evaluator resolves criteria and judges detections. Service runs in
// process; RemoteEvaluator calls the evaluator RPC. Both return identical
// results for identical inputs.
type Evaluator interface {
	Evaluate(ctx context.Context, req Request) (Result, error)
}

// Service is the in-process evaluator.
type Service struct {
	resolver *Resolver
}

func NewService(resolver *Resolver) *Service {
	return &Service{resolver: resolver}
}

func (s *Service) Evaluate(ctx context.Context, req Request) (Result, error) {
	pending := Result{Judgment: models.JudgmentPending, ItemID: req.ItemID, PipelineID: req.PipelineID}

	c, err := s.resolver.Resolve(ctx, req.lookup())
	if err != nil {
		pending.Reason = "criteria lookup failed"
		return pending, err
	}
	if c == nil {
		pending.Reason = "no criteria found"
		return pending, nil
	}

	judgment, metrics := Evaluate(req.Detections, c)

	pipelineID := c.PipelineID
	if pipelineID == "" {
		pipelineID = req.PipelineID
	}
	return Result{
		Judgment:   judgment,
		CriteriaID: c.ID,
		ItemID:     c.ItemID,
		PipelineID: pipelineID,
		Metrics:    metrics,
		Reason:     reason(c),
	}, nil
}

func reason(c *models.Criterion) string {
	if c.Spec == nil {
		return fmt.Sprintf("criterion %s has no usable %s spec, default rule applied", c.ID, c.Type)
	}
	return fmt.Sprintf("evaluated against %s criterion %s", c.Spec.JudgmentType(), c.ID)
}
