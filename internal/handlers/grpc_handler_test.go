package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/internal/auth"
	"inspection-hub/go-backend/internal/handlers"
	"inspection-hub/go-backend/internal/judgment"
	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/internal/services"
	"inspection-hub/go-backend/internal/testutil"
	"inspection-hub/go-backend/pkg/pb"
)

type staticCatalog map[string]*models.PipelineDefinition

func (c staticCatalog) Get(_ context.Context, id string) (*models.PipelineDefinition, error) {
	def, ok := c[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return def, nil
}

type hub struct {
	workers   *testutil.FakeWorkers
	pool      *services.WorkerPool
	criteria  *testutil.CriteriaStore
	queue     *aggregator.Queue
	clock     *testclock.Clock
	validator *auth.Validator
	metrics   *services.Metrics
	processor *services.FrameProcessor
	client    pb.VideoStreamServiceClient
}

func newHub(t *testing.T) *hub {
	t.Helper()
	logger := testutil.Logger()
	clk := testclock.NewClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))

	workers := testutil.NewFakeWorkers(t)
	pool, err := services.NewWorkerPool(workers.Endpoints(), logger, services.WithDialOptions(workers.DialOptions()...))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	validator, err := auth.NewValidator(testutil.TokenSecret, "HS256", clk)
	require.NoError(t, err)

	criteria := testutil.NewCriteriaStore()
	queue := aggregator.NewQueue(16)
	metrics := services.NewMetrics()
	catalog := staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{{
			ID:         "detect",
			Type:       models.ComponentDetection,
			Parameters: map[string]any{"model_name": "yolo"},
		}}},
	}
	processor := services.NewFrameProcessor(services.FrameProcessorConfig{
		Executor:      services.NewExecutor(catalog, pool, clk, logger),
		Evaluator:     judgment.NewService(judgment.NewResolver(criteria, clk, 5*time.Minute, false, logger)),
		Queue:         queue,
		Clock:         clk,
		ShedThreshold: time.Second,
		Metrics:       metrics,
	}, logger)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.StreamInterceptor(validator.StreamInterceptor(logger)))
	pb.RegisterVideoStreamServiceServer(server, handlers.NewGRPCHandler(processor, validator, metrics, logger))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///hub",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &hub{
		workers:   workers,
		pool:      pool,
		criteria:  criteria,
		queue:     queue,
		clock:     clk,
		validator: validator,
		metrics:   metrics,
		processor: processor,
		client:    pb.NewVideoStreamServiceClient(conn),
	}
}

func (h *hub) authContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	token := testutil.SignToken(t, "device-1", h.clock.Now())
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func (h *hub) frame(seq int64, pipelineID string, params map[string]string) *pb.Frame {
	return &pb.Frame{
		SourceId:         "cam-A",
		PipelineId:       pipelineID,
		TimestampMs:      h.clock.Now().UnixMilli(),
		SequenceNumber:   seq,
		Width:            640,
		Height:           480,
		FrameData:        []byte(fmt.Sprintf("jpeg-%d", seq)),
		ProcessingParams: params,
	}
}

// roundTrip sends every frame, half-closes and collects all responses.
func roundTrip(t *testing.T, ctx context.Context, client pb.VideoStreamServiceClient, frames ...*pb.Frame) []*pb.ProcessedFrame {
	t.Helper()
	stream, err := client.ProcessVideoStream(ctx)
	require.NoError(t, err)
	for _, f := range frames {
		require.NoError(t, stream.Send(f))
	}
	require.NoError(t, stream.CloseSend())

	var out []*pb.ProcessedFrame
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, resp)
	}
}

func TestStreamPassthrough(t *testing.T) {
	h := newHub(t)

	frames := []*pb.Frame{h.frame(1, "", nil), h.frame(2, "", nil), h.frame(3, "passthrough", nil)}
	out := roundTrip(t, h.authContext(t), h.client, frames...)

	require.Len(t, out, 3)
	for i, resp := range out {
		assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SUCCESS, resp.Status)
		assert.Equal(t, frames[i].SequenceNumber, resp.SequenceNumber)
		assert.Equal(t, frames[i].FrameData, resp.ProcessedData)
		assert.Empty(t, resp.Detections)
		assert.Empty(t, resp.Judgment)
	}
	assert.Zero(t, h.workers.TotalCalls())
}

func TestStreamShedsStaleFrame(t *testing.T) {
	h := newHub(t)
	frame := h.frame(1, "PL", nil)
	frame.TimestampMs = h.clock.Now().Add(-5 * time.Second).UnixMilli()

	out := roundTrip(t, h.authContext(t), h.client, frame)

	require.Len(t, out, 1)
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SKIPPED, out[0].Status)
	assert.Equal(t, services.MsgFrameSkipped, out[0].ErrorMessage)
	assert.Zero(t, h.workers.TotalCalls())
}

func TestStreamJudgments(t *testing.T) {
	tests := []struct {
		name       string
		criterion  *models.Criterion
		detections []*pb.Detection
		judgment   string
		metrics    map[string]string
	}{
		{
			name:      "binary expects nothing",
			criterion: &models.Criterion{Type: models.JudgmentBinary, Spec: models.BinarySpec{ExpectedValue: true}},
			judgment:  "OK",
			metrics:   map[string]string{"detected": "0"},
		},
		{
			name:       "threshold exceeded",
			criterion:  &models.Criterion{Type: models.JudgmentThreshold, Spec: models.ThresholdSpec{Threshold: 2, Operator: models.OpLE}},
			detections: []*pb.Detection{{ClassName: "a"}, {ClassName: "b"}, {ClassName: "c"}},
			judgment:   "NG",
			metrics:    map[string]string{"detected": "3", "threshold": "2", "operator": "LE"},
		},
		{
			name:       "categorical outsider",
			criterion:  &models.Criterion{Type: models.JudgmentCategorical, Spec: models.CategoricalSpec{Allowed: []string{"bolt", "nut"}}},
			detections: []*pb.Detection{{ClassName: "bolt"}, {ClassName: "screw"}},
			judgment:   "NG",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHub(t)
			tt.criterion.ID = "crit-1"
			tt.criterion.ItemID = "item-1"
			tt.criterion.PipelineID = "PL"
			h.criteria.AddPipelineCriterion("PC", "PR", "PL", tt.criterion)
			h.workers.SetDetections(tt.detections...)

			out := roundTrip(t, h.authContext(t), h.client,
				h.frame(1, "PL", map[string]string{"product_code": "PC", "process_code": "PR"}))

			require.Len(t, out, 1)
			assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SUCCESS, out[0].Status)
			assert.Equal(t, tt.judgment, out[0].Judgment)
			assert.Equal(t, "crit-1", out[0].GetCriteriaId())
			assert.Equal(t, "item-1", out[0].GetItemId())
			if tt.metrics != nil {
				assert.Equal(t, tt.metrics, out[0].Metrics)
			}
		})
	}
}

func TestStreamPreservesOrder(t *testing.T) {
	h := newHub(t)
	h.workers.SetDetections(&pb.Detection{ClassName: "bolt"})

	var frames []*pb.Frame
	for i := int64(1); i <= 24; i++ {
		f := h.frame(i, "PL", nil)
		switch i % 4 {
		case 1:
			f.TimestampMs = h.clock.Now().Add(-5 * time.Second).UnixMilli()
		case 2:
			f.FrameData = nil
		case 3:
			f.PipelineId = ""
		}
		frames = append(frames, f)
	}

	out := roundTrip(t, h.authContext(t), h.client, frames...)

	require.Len(t, out, len(frames))
	for i, resp := range out {
		assert.Equal(t, frames[i].SequenceNumber, resp.SequenceNumber)
		assert.Equal(t, "cam-A", resp.GetSourceId())
	}
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SKIPPED, out[0].Status)
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_FAILED, out[1].Status)
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SUCCESS, out[2].Status)
	assert.Len(t, out[3].Detections, 1)
}

func TestStreamWorkerFailureKeepsStreamOpen(t *testing.T) {
	h := newHub(t)
	stream, err := h.client.ProcessVideoStream(h.authContext(t))
	require.NoError(t, err)

	h.workers.Fail("detection", status.Error(codes.Unavailable, "detector down"))
	require.NoError(t, stream.Send(h.frame(1, "PL", nil)))
	resp, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_FAILED, resp.Status)

	h.workers.Fail("detection", nil)
	require.NoError(t, stream.Send(h.frame(2, "PL", nil)))
	resp, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SUCCESS, resp.Status)
	assert.EqualValues(t, 2, resp.SequenceNumber)

	require.NoError(t, stream.CloseSend())
	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamRequiresToken(t *testing.T) {
	h := newHub(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tests := map[string]context.Context{
		"missing": ctx,
		"garbage": metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer nope"),
	}
	for name, ctx := range tests {
		t.Run(name, func(t *testing.T) {
			stream, err := h.client.ProcessVideoStream(ctx)
			require.NoError(t, err)
			_ = stream.Send(h.frame(1, "", nil))

			_, err = stream.Recv()
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}
	assert.Zero(t, h.metrics.ActiveStreams())
}

func TestStreamTokenExpiresMidStream(t *testing.T) {
	h := newHub(t)
	stream, err := h.client.ProcessVideoStream(h.authContext(t))
	require.NoError(t, err)

	require.NoError(t, stream.Send(h.frame(1, "", nil)))
	_, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, 1, h.metrics.ActiveStreams())

	h.clock.Advance(2 * time.Hour)
	require.NoError(t, stream.Send(h.frame(2, "", nil)))
	_, err = stream.Recv()
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	assert.Eventually(t, func() bool { return h.metrics.ActiveStreams() == 0 }, time.Second, 10*time.Millisecond)
}
