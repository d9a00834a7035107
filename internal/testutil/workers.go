package testutil

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"inspection-hub/go-backend/internal/config"
	"inspection-hub/go-backend/pkg/pb"
)

const bufSize = 1 << 20

// FakeWorkers serves the resize, detection and filter services on one
// in-memory listener. Resize and filter tag the image bytes so tests can
// follow the order the executor used.
type FakeWorkers struct {
	pb.UnimplementedResizeServiceServer
	pb.UnimplementedDetectionServiceServer
	pb.UnimplementedFilterServiceServer

	lis    *bufconn.Listener
	server *grpc.Server
	health *health.Server

	mu         sync.Mutex
	detections []*pb.Detection
	annotated  []byte
	failures   map[string]error
	resizeReqs []*pb.ResizeRequest
	filterReqs []*pb.FilterRequest
	detectReqs []*pb.DetectRequest

	resizeCalls atomic.Int64
	detectCalls atomic.Int64
	filterCalls atomic.Int64
}

func NewFakeWorkers(t testing.TB) *FakeWorkers {
	t.Helper()

	f := &FakeWorkers{
		lis:      bufconn.Listen(bufSize),
		server:   grpc.NewServer(),
		health:   health.NewServer(),
		failures: make(map[string]error),
	}
	pb.RegisterResizeServiceServer(f.server, f)
	pb.RegisterDetectionServiceServer(f.server, f)
	pb.RegisterFilterServiceServer(f.server, f)
	healthpb.RegisterHealthServer(f.server, f.health)

	go func() { _ = f.server.Serve(f.lis) }()
	t.Cleanup(f.server.Stop)
	return f
}

// Endpoints points every worker at the in-memory listener.
func (f *FakeWorkers) Endpoints() config.Endpoints {
	return config.Endpoints{
		Resize:    "passthrough:///resize",
		Detection: "passthrough:///detection",
		Filter:    "passthrough:///filter",
	}
}

// DialOptions must be passed to any client that dials Endpoints.
func (f *FakeWorkers) DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return f.lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
}

func (f *FakeWorkers) SetDetections(d ...*pb.Detection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detections = d
}

// SetAnnotated makes the detector return data as its drawn output.
func (f *FakeWorkers) SetAnnotated(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.annotated = data
}

// Fail makes every call to worker ("resize", "detection", "filter") return
// err until cleared with a nil err.
func (f *FakeWorkers) Fail(worker string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failures, worker)
		return
	}
	f.failures[worker] = err
}

func (f *FakeWorkers) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_SERVING
	if !serving {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	f.health.SetServingStatus("", st)
}

func (f *FakeWorkers) Calls() (resize, detect, filter int64) {
	return f.resizeCalls.Load(), f.detectCalls.Load(), f.filterCalls.Load()
}

func (f *FakeWorkers) TotalCalls() int64 {
	r, d, fl := f.Calls()
	return r + d + fl
}

func (f *FakeWorkers) ResizeRequests() []*pb.ResizeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*pb.ResizeRequest(nil), f.resizeReqs...)
}

func (f *FakeWorkers) DetectRequests() []*pb.DetectRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*pb.DetectRequest(nil), f.detectReqs...)
}

func (f *FakeWorkers) FilterRequests() []*pb.FilterRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*pb.FilterRequest(nil), f.filterReqs...)
}

func (f *FakeWorkers) failure(worker string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures[worker]
}

func (f *FakeWorkers) ResizeImage(_ context.Context, req *pb.ResizeRequest) (*pb.ResizeResponse, error) {
	f.resizeCalls.Add(1)
	f.mu.Lock()
	f.resizeReqs = append(f.resizeReqs, req)
	f.mu.Unlock()
	if err := f.failure("resize"); err != nil {
		return nil, err
	}
	in := req.GetInput()
	if len(in.GetData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty input")
	}

	out := append(append([]byte(nil), in.GetData()...), []byte("|resize")...)
	return &pb.ResizeResponse{
		Status: pb.WorkerStatus_WORKER_STATUS_SUCCESS,
		Output: &pb.ImageData{Data: out, Format: in.GetFormat(), Width: req.GetTargetWidth(), Height: req.GetTargetHeight()},
		Metadata: &pb.ResizeMetadata{
			OriginalWidth:  in.GetWidth(),
			OriginalHeight: in.GetHeight(),
			OutputWidth:    req.GetTargetWidth(),
			OutputHeight:   req.GetTargetHeight(),
		},
	}, nil
}

func (f *FakeWorkers) DetectObjects(_ context.Context, req *pb.DetectRequest) (*pb.DetectResponse, error) {
	f.detectCalls.Add(1)
	f.mu.Lock()
	f.detectReqs = append(f.detectReqs, req)
	detections := append([]*pb.Detection(nil), f.detections...)
	annotated := f.annotated
	f.mu.Unlock()
	if err := f.failure("detection"); err != nil {
		return nil, err
	}

	resp := &pb.DetectResponse{Status: pb.WorkerStatus_WORKER_STATUS_SUCCESS, Detections: detections}
	if in := req.GetInput(); req.GetDrawBoxes() && annotated != nil {
		resp.Output = &pb.ImageData{Data: annotated, Format: in.GetFormat(), Width: in.GetWidth(), Height: in.GetHeight()}
	}
	return resp, nil
}

func (f *FakeWorkers) ApplyFilter(_ context.Context, req *pb.FilterRequest) (*pb.FilterResponse, error) {
	f.filterCalls.Add(1)
	f.mu.Lock()
	f.filterReqs = append(f.filterReqs, req)
	f.mu.Unlock()
	if err := f.failure("filter"); err != nil {
		return nil, err
	}

	in := req.GetInput()
	out := append(append([]byte(nil), in.GetData()...), []byte("|"+req.GetFilterType())...)
	return &pb.FilterResponse{
		Status: pb.WorkerStatus_WORKER_STATUS_SUCCESS,
		Output: &pb.ImageData{Data: out, Format: in.GetFormat(), Width: in.GetWidth(), Height: in.GetHeight()},
	}, nil
}
