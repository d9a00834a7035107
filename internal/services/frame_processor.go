package services

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"

	"inspection-hub/go-backend/internal/judgment"
	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/pkg/pb"
)

// MinFrameDimension is the smallest declared width or height accepted.
const MinFrameDimension = 64

const (
	MsgFrameSkipped = "Frame skipped due to high load"
	MsgInvalidFrame = "invalid frame"
)

// Publisher receives judgment events without blocking.
type Publisher interface {
	Publish(ev models.JudgmentEvent) bool
}

type FrameProcessorConfig struct {
	Executor      *Executor
	Evaluator     judgment.Evaluator
	Queue         Publisher
	Clock         clock.Clock
	ShedThreshold time.Duration
	Metrics       *Metrics
}

// FrameProcessor turns one Frame into exactly one ProcessedFrame. It is
// shared by every ingress transport and holds no per-stream state.
type FrameProcessor struct {
	executor      *Executor
	evaluator     judgment.Evaluator
	queue         Publisher
	clock         clock.Clock
	shedThreshold time.Duration
	metrics       *Metrics
	logger        *slog.Logger
}

func NewFrameProcessor(cfg FrameProcessorConfig, logger *slog.Logger) *FrameProcessor {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.WallClock
	}
	return &FrameProcessor{
		executor:      cfg.Executor,
		evaluator:     cfg.Evaluator,
		queue:         cfg.Queue,
		clock:         clk,
		shedThreshold: cfg.ShedThreshold,
		metrics:       cfg.Metrics,
		logger:        logger,
	}
}

func (p *FrameProcessor) ShedThreshold() time.Duration {
	return p.shedThreshold
}

// Now reads the processor clock. Ingress transports use it to stamp the
// arrival time of each frame.
func (p *FrameProcessor) Now() time.Time {
	return p.clock.Now()
}

// Process handles one frame that reached the hub at arrived. The frame's
// age is its capture timestamp measured against arrived.
func (p *FrameProcessor) Process(ctx context.Context, frame *pb.Frame, arrived time.Time) *pb.ProcessedFrame {
	start := p.clock.Now()
	out := echo(frame)

	if frame.GetSourceId() == "" || frame.GetTimestampMs() <= 0 {
		return p.finish(out, pb.ProcessingStatus_PROCESSING_STATUS_FAILED, MsgInvalidFrame, start)
	}

	age := arrived.Sub(time.UnixMilli(frame.GetTimestampMs()))
	if age > p.shedThreshold {
		if p.metrics != nil {
			p.metrics.FrameShed()
		}
		p.logger.Debug("frame shed", "source_id", frame.GetSourceId(), "age", age)
		return p.finish(out, pb.ProcessingStatus_PROCESSING_STATUS_SKIPPED, MsgFrameSkipped, start)
	}

	if !validPayload(frame) {
		return p.finish(out, pb.ProcessingStatus_PROCESSING_STATUS_FAILED, MsgInvalidFrame, start)
	}

	params := models.ParseFrameParams(frame.GetProcessingParams())

	// In-flight worker calls run to their own deadlines even if the peer leaves.
	workCtx := context.WithoutCancel(ctx)
	result := p.executor.Execute(workCtx, ExecutorInput{
		PipelineID: frame.GetPipelineId(),
		Data:       frame.GetFrameData(),
		Width:      frame.GetWidth(),
		Height:     frame.GetHeight(),
		Overrides:  params.Overrides,
	})

	out.Detections = models.DetectionsToPB(result.Detections)
	out.ProcessedData = result.Data
	if result.Width > 0 && result.Height > 0 {
		out.Width, out.Height = result.Width, result.Height
	}

	if result.Failed() {
		return p.finish(out, pb.ProcessingStatus_PROCESSING_STATUS_FAILED, "pipeline failed: "+result.FirstError().Error(), start)
	}

	if params.CanResolveCriteria(frame.GetPipelineId()) {
		p.enrich(workCtx, frame, params, result.Detections, out, start)
	}

	return p.finish(out, pb.ProcessingStatus_PROCESSING_STATUS_SUCCESS, "", start)
}

func (p *FrameProcessor) enrich(ctx context.Context, frame *pb.Frame, params models.FrameParams, detections []models.Detection, out *pb.ProcessedFrame, now time.Time) {
	res, err := p.evaluator.Evaluate(ctx, judgment.Request{
		ProductCode: params.ProductCode,
		ProcessCode: params.ProcessCode,
		PipelineID:  frame.GetPipelineId(),
		ItemID:      params.TargetItemID,
		Detections:  detections,
	})
	if err != nil {
		p.logger.Warn("judgment evaluation failed",
			"source_id", frame.GetSourceId(), "pipeline_id", frame.GetPipelineId(), "error", err)
	}
	if res.Judgment == "" {
		res.Judgment = models.JudgmentPending
	}

	out.Judgment = string(res.Judgment)
	out.CriteriaId = res.CriteriaID
	out.ItemId = res.ItemID
	out.Metrics = res.Metrics
	if out.PipelineId == "" {
		out.PipelineId = res.PipelineID
	}
	if p.metrics != nil {
		p.metrics.Judgment(out.Judgment)
	}

	// Only a judgment backed by a criterion reaches the store. A lookup
	// miss or failure still answers PENDING to the client.
	if !res.Resolved() || !params.Aggregatable() || p.queue == nil {
		return
	}

	itemID := res.ItemID
	if itemID == "" {
		itemID = params.TargetItemID
	}
	pipelineID := res.PipelineID
	if pipelineID == "" {
		pipelineID = frame.GetPipelineId()
	}
	ev := models.JudgmentEvent{
		ID:              uuid.NewString(),
		ExecutionID:     params.ExecutionID,
		ItemExecutionID: params.ItemExecutionID,
		SourceID:        frame.GetSourceId(),
		Judgment:        res.Judgment,
		CriteriaID:      res.CriteriaID,
		ItemID:          itemID,
		PipelineID:      pipelineID,
		Metrics:         maps.Clone(res.Metrics),
		ObservedAt:      now,
	}
	if !p.queue.Publish(ev) {
		p.logger.Warn("judgment queue full, event dropped",
			"execution_id", ev.ExecutionID, "item_execution_id", ev.ItemExecutionID)
	}
}

func (p *FrameProcessor) finish(out *pb.ProcessedFrame, st pb.ProcessingStatus, msg string, start time.Time) *pb.ProcessedFrame {
	elapsed := p.clock.Now().Sub(start)
	out.Status = st
	out.ErrorMessage = msg
	out.ProcessingTimeMs = float64(elapsed.Microseconds()) / 1000
	if out.Detections == nil {
		out.Detections = []*pb.Detection{}
	}
	if p.metrics != nil {
		p.metrics.FrameDone(st, elapsed)
	}
	return out
}

func validPayload(frame *pb.Frame) bool {
	if len(frame.GetFrameData()) == 0 {
		return false
	}
	w, h := frame.GetWidth(), frame.GetHeight()
	if w == 0 && h == 0 {
		return true
	}
	return w >= MinFrameDimension && h >= MinFrameDimension
}

func echo(frame *pb.Frame) *pb.ProcessedFrame {
	return &pb.ProcessedFrame{
		SourceId:         frame.GetSourceId(),
		PipelineId:       frame.GetPipelineId(),
		TimestampMs:      frame.GetTimestampMs(),
		SequenceNumber:   frame.GetSequenceNumber(),
		Width:            frame.GetWidth(),
		Height:           frame.GetHeight(),
		ProcessingParams: frame.GetProcessingParams(),
	}
}
