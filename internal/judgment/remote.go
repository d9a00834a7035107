package judgment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/pkg/pb"
)

const remoteEvaluateTimeout = 5 * time.Second

// RemoteEvaluator calls EvaluateDetections on a standalone evaluator.
type RemoteEvaluator struct {
	conn   *grpc.ClientConn
	client pb.EvaluatorServiceClient
	url    string
}

func NewRemoteEvaluator(url string, logger *slog.Logger, extra ...grpc.DialOption) (*RemoteEvaluator, error) {
	logger.Info("connecting to evaluator", "endpoint", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("judgment: create evaluator client for %s: %w", url, err)
	}
	return &RemoteEvaluator{
		conn:   conn,
		client: pb.NewEvaluatorServiceClient(conn),
		url:    url,
	}, nil
}

func (r *RemoteEvaluator) Evaluate(ctx context.Context, req Request) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, remoteEvaluateTimeout)
	defer cancel()

	resp, err := r.client.EvaluateDetections(ctx, &pb.EvaluateRequest{
		ProductCode: req.ProductCode,
		ProcessCode: req.ProcessCode,
		PipelineId:  req.PipelineID,
		ItemId:      req.ItemID,
		Detections:  models.DetectionsToPB(req.Detections),
	})
	if err != nil {
		return Result{Judgment: models.JudgmentPending, ItemID: req.ItemID, PipelineID: req.PipelineID, Reason: "evaluator unavailable"},
			fmt.Errorf("judgment: remote evaluate: %w", err)
	}
	return Result{
		Judgment:   models.Judgment(resp.GetJudgment()),
		CriteriaID: resp.GetCriteriaId(),
		ItemID:     resp.GetItemId(),
		PipelineID: resp.GetPipelineId(),
		Metrics:    resp.GetMetrics(),
		Reason:     resp.GetReason(),
	}, nil
}

func (r *RemoteEvaluator) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
