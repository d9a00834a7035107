package services_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	encproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"inspection-hub/go-backend/internal/config"
	"inspection-hub/go-backend/internal/services"
	"inspection-hub/go-backend/internal/testutil"
	"inspection-hub/go-backend/pkg/pb"
)

func newPool(t *testing.T, workers *testutil.FakeWorkers, opts ...services.PoolOption) *services.WorkerPool {
	t.Helper()
	opts = append(opts, services.WithDialOptions(workers.DialOptions()...))
	pool, err := services.NewWorkerPool(workers.Endpoints(), testutil.Logger(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}

func TestWorkerPoolCalls(t *testing.T) {
	workers := testutil.NewFakeWorkers(t)
	workers.SetDetections(&pb.Detection{ClassName: "bolt", Confidence: 0.9})
	pool := newPool(t, workers)
	ctx := context.Background()

	resized, err := pool.ResizeImage(ctx, &pb.ResizeRequest{
		Input:       &pb.ImageData{Data: []byte("img"), Width: 640, Height: 480},
		TargetWidth: 320, TargetHeight: 240,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("img|resize"), resized.GetOutput().GetData())
	assert.EqualValues(t, 320, resized.GetMetadata().GetOutputWidth())

	detected, err := pool.DetectObjects(ctx, &pb.DetectRequest{Input: &pb.ImageData{Data: []byte("img")}})
	require.NoError(t, err)
	require.Len(t, detected.GetDetections(), 1)
	assert.Equal(t, "bolt", detected.GetDetections()[0].GetClassName())

	filtered, err := pool.ApplyFilter(ctx, &pb.FilterRequest{Input: &pb.ImageData{Data: []byte("img")}, FilterType: "blur"})
	require.NoError(t, err)
	assert.Equal(t, []byte("img|blur"), filtered.GetOutput().GetData())

	r, d, f := workers.Calls()
	assert.Equal(t, [3]int64{1, 1, 1}, [3]int64{r, d, f})
}

type resizeFunc func(context.Context, *pb.ResizeRequest) (*pb.ResizeResponse, error)

func (f resizeFunc) ResizeImage(ctx context.Context, req *pb.ResizeRequest) (*pb.ResizeResponse, error) {
	return f(ctx, req)
}

// A worker that only understands the standard protobuf codec must be able to
// decode every request the pool sends.
func TestWorkerPoolSpeaksProtobuf(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ForceServerCodecV2(encoding.GetCodecV2(encproto.Name)))
	contentTypes := make(chan string, 1)
	pb.RegisterResizeServiceServer(server, resizeFunc(func(ctx context.Context, req *pb.ResizeRequest) (*pb.ResizeResponse, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		contentTypes <- strings.Join(md.Get("content-type"), ",")
		return &pb.ResizeResponse{
			Status:   pb.WorkerStatus_WORKER_STATUS_SUCCESS,
			Output:   &pb.ImageData{Data: []byte("small"), Width: req.GetTargetWidth(), Height: req.GetTargetHeight()},
			Metadata: &pb.ResizeMetadata{OutputWidth: req.GetTargetWidth(), OutputHeight: req.GetTargetHeight(), ScaleX: 0.5, ScaleY: 0.5},
		}, nil
	}))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	pool, err := services.NewWorkerPool(config.Endpoints{
		Resize:    "passthrough:///resize",
		Detection: "passthrough:///detection",
		Filter:    "passthrough:///filter",
	}, testutil.Logger(), services.WithDialOptions(
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	resp, err := pool.ResizeImage(context.Background(), &pb.ResizeRequest{
		Input:       &pb.ImageData{Data: []byte("large"), Format: "jpeg", Width: 640, Height: 480},
		TargetWidth: 320, TargetHeight: 240,
		Quality: pb.ResizeRequest_BEST,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("small"), resp.GetOutput().GetData())
	assert.Equal(t, 0.5, resp.GetMetadata().GetScaleX())
	assert.Equal(t, "application/grpc", <-contentTypes)
}

func TestWorkerPoolReportsWorkerFailure(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	pb.RegisterResizeServiceServer(server, resizeFunc(func(context.Context, *pb.ResizeRequest) (*pb.ResizeResponse, error) {
		return &pb.ResizeResponse{Status: pb.WorkerStatus_WORKER_STATUS_FAILED, ErrorMessage: "corrupt image"}, nil
	}))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	pool, err := services.NewWorkerPool(config.Endpoints{
		Resize:    "passthrough:///resize",
		Detection: "passthrough:///detection",
		Filter:    "passthrough:///filter",
	}, testutil.Logger(), services.WithDialOptions(
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	_, err = pool.ResizeImage(context.Background(), &pb.ResizeRequest{Input: &pb.ImageData{Data: []byte("img")}})
	require.ErrorIs(t, err, services.ErrWorkerFailed)
	assert.Contains(t, err.Error(), "corrupt image")
	assert.Equal(t, services.WorkerErrorPermanent, services.ClassifyWorkerError(err))
}

func TestWorkerPoolSurfacesErrorsWithoutRetry(t *testing.T) {
	workers := testutil.NewFakeWorkers(t)
	pool := newPool(t, workers)

	workers.Fail("detection", status.Error(codes.Unavailable, "worker restarting"))
	_, err := pool.DetectObjects(context.Background(), &pb.DetectRequest{Input: &pb.ImageData{Data: []byte("img")}})
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Equal(t, services.WorkerErrorTransient, services.ClassifyWorkerError(err))

	_, d, _ := workers.Calls()
	assert.EqualValues(t, 1, d)

	// The channel is rebuilt lazily and the next call goes through.
	workers.Fail("detection", nil)
	_, err = pool.DetectObjects(context.Background(), &pb.DetectRequest{Input: &pb.ImageData{Data: []byte("img")}})
	require.NoError(t, err)
}

func TestWorkerPoolDeadline(t *testing.T) {
	workers := testutil.NewFakeWorkers(t)
	pool := newPool(t, workers, services.WithCallTimeout(services.WorkerResize, time.Nanosecond))

	_, err := pool.ResizeImage(context.Background(), &pb.ResizeRequest{Input: &pb.ImageData{Data: []byte("img")}})
	require.Error(t, err)
	assert.Equal(t, services.WorkerErrorTransient, services.ClassifyWorkerError(err))
}

func TestWorkerPoolHealth(t *testing.T) {
	workers := testutil.NewFakeWorkers(t)
	pool := newPool(t, workers)

	health := pool.Health(context.Background())
	require.Len(t, health, 3)
	for _, h := range health {
		assert.Equal(t, "SERVING", h.Status, h.Worker)
	}

	workers.SetServing(false)
	for _, h := range pool.Health(context.Background()) {
		assert.Equal(t, "NOT_SERVING", h.Status, h.Worker)
	}
}

func TestClassifyWorkerError(t *testing.T) {
	tests := []struct {
		err  error
		want services.WorkerErrorKind
	}{
		{nil, services.WorkerErrorNone},
		{status.Error(codes.DeadlineExceeded, ""), services.WorkerErrorTransient},
		{status.Error(codes.Unavailable, ""), services.WorkerErrorTransient},
		{status.Error(codes.ResourceExhausted, ""), services.WorkerErrorTransient},
		{status.Error(codes.Canceled, ""), services.WorkerErrorTransient},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), services.WorkerErrorTransient},
		{status.Error(codes.InvalidArgument, ""), services.WorkerErrorPermanent},
		{status.Error(codes.Internal, ""), services.WorkerErrorPermanent},
		{fmt.Errorf("resize worker: %w", services.ErrWorkerFailed), services.WorkerErrorPermanent},
		{errors.New("boom"), services.WorkerErrorPermanent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.ClassifyWorkerError(tt.err), "%v", tt.err)
	}
}
