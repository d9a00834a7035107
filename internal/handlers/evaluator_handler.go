package handlers

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"inspection-hub/go-backend/internal/judgment"
	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/pkg/pb"
)

// EvaluatorHandler exposes the in-process evaluator over RPC so other
// ingress paths share the same decisions.
type EvaluatorHandler struct {
	pb.UnimplementedEvaluatorServiceServer
	evaluator judgment.Evaluator
	logger    *slog.Logger
}

func NewEvaluatorHandler(evaluator judgment.Evaluator, logger *slog.Logger) *EvaluatorHandler {
	return &EvaluatorHandler{evaluator: evaluator, logger: logger}
}

func (h *EvaluatorHandler) EvaluateDetections(ctx context.Context, req *pb.EvaluateRequest) (*pb.EvaluateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.GetItemId() == "" && (req.GetProductCode() == "" || req.GetProcessCode() == "" || req.GetPipelineId() == "") {
		return nil, status.Error(codes.InvalidArgument, "item_id or product_code, process_code and pipeline_id are required")
	}

	res, err := h.evaluator.Evaluate(ctx, judgment.Request{
		ProductCode: req.GetProductCode(),
		ProcessCode: req.GetProcessCode(),
		PipelineID:  req.GetPipelineId(),
		ItemID:      req.GetItemId(),
		Detections:  models.DetectionsFromPB(req.GetDetections()),
	})
	if err != nil {
		h.logger.Warn("evaluation degraded to pending",
			"product_code", req.GetProductCode(),
			"process_code", req.GetProcessCode(),
			"pipeline_id", req.GetPipelineId(),
			"item_id", req.GetItemId(),
			"error", err,
		)
	}

	return &pb.EvaluateResponse{
		Judgment:   string(res.Judgment),
		CriteriaId: res.CriteriaID,
		ItemId:     res.ItemID,
		PipelineId: res.PipelineID,
		Metrics:    res.Metrics,
		Reason:     res.Reason,
	}, nil
}
