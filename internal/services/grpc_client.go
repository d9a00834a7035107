package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"inspection-hub/go-backend/internal/config"
	"inspection-hub/go-backend/pkg/pb"
)

const (
	WorkerResize    = "resize"
	WorkerDetection = "detection"
	WorkerFilter    = "filter"
)

// Default per-call deadlines.
const (
	ResizeTimeout    = 30 * time.Second
	DetectionTimeout = 60 * time.Second
	FilterTimeout    = 30 * time.Second
)

// ErrWorkerFailed is returned when a worker answers with status FAILED.
var ErrWorkerFailed = errors.New("worker reported failure")

// Workers is the typed call surface the pipeline executor depends on.
type Workers interface {
	ResizeImage(ctx context.Context, req *pb.ResizeRequest) (*pb.ResizeResponse, error)
	DetectObjects(ctx context.Context, req *pb.DetectRequest) (*pb.DetectResponse, error)
	ApplyFilter(ctx context.Context, req *pb.FilterRequest) (*pb.FilterResponse, error)
}

type WorkerErrorKind int

const (
	WorkerErrorNone WorkerErrorKind = iota
	WorkerErrorTransient
	WorkerErrorPermanent
)

func (k WorkerErrorKind) String() string {
	switch k {
	case WorkerErrorNone:
		return "none"
	case WorkerErrorTransient:
		return "transient"
	default:
		return "permanent"
	}
}

// ClassifyWorkerError splits worker call errors into transient (deadline,
// connectivity, load) and permanent (everything else).
func ClassifyWorkerError(err error) WorkerErrorKind {
	if err == nil {
		return WorkerErrorNone
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return WorkerErrorTransient
	}
	switch status.Code(err) {
	case codes.DeadlineExceeded, codes.Unavailable, codes.ResourceExhausted, codes.Canceled:
		return WorkerErrorTransient
	}
	return WorkerErrorPermanent
}

// workerChannel owns the persistent connection to one worker service. The
// connection is created lazily and thrown away after a connectivity error
// so that the next call builds a fresh one.
type workerChannel struct {
	name    string
	target  string
	timeout time.Duration
	opts    []grpc.DialOption

	mu   sync.Mutex
	conn *grpc.ClientConn
}

func (w *workerChannel) get() (*grpc.ClientConn, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn != nil {
		return w.conn, nil
	}
	conn, err := grpc.NewClient(w.target, w.opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s worker at %s: %w", w.name, w.target, err)
	}
	w.conn = conn
	return conn, nil
}

// reset drops conn if it is still the current connection.
func (w *workerChannel) reset(conn *grpc.ClientConn) {
	w.mu.Lock()
	if w.conn != conn {
		w.mu.Unlock()
		return
	}
	w.conn = nil
	w.mu.Unlock()
	_ = conn.Close()
}

func (w *workerChannel) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

// WorkerPool holds one multiplexed connection per image worker, shared by
// every stream.
type WorkerPool struct {
	resize    *workerChannel
	detection *workerChannel
	filter    *workerChannel

	metrics *Metrics
	logger  *slog.Logger
}

type PoolOption func(*poolOptions)

type poolOptions struct {
	dialOpts []grpc.DialOption
	timeouts map[string]time.Duration
	maxMsg   int
	metrics  *Metrics
}

// WithDialOptions appends dial options to every worker connection.
func WithDialOptions(opts ...grpc.DialOption) PoolOption {
	return func(o *poolOptions) { o.dialOpts = append(o.dialOpts, opts...) }
}

// WithCallTimeout overrides the deadline of one worker.
func WithCallTimeout(worker string, d time.Duration) PoolOption {
	return func(o *poolOptions) { o.timeouts[worker] = d }
}

func WithMaxMessageSize(bytes int) PoolOption {
	return func(o *poolOptions) { o.maxMsg = bytes }
}

func WithPoolMetrics(m *Metrics) PoolOption {
	return func(o *poolOptions) { o.metrics = m }
}

func NewWorkerPool(endpoints config.Endpoints, logger *slog.Logger, options ...PoolOption) (*WorkerPool, error) {
	o := poolOptions{
		timeouts: map[string]time.Duration{
			WorkerResize:    ResizeTimeout,
			WorkerDetection: DetectionTimeout,
			WorkerFilter:    FilterTimeout,
		},
		maxMsg: 50 * 1024 * 1024,
	}
	for _, opt := range options {
		opt(&o)
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(o.maxMsg),
			grpc.MaxCallSendMsgSize(o.maxMsg),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	dialOpts = append(dialOpts, o.dialOpts...)

	p := &WorkerPool{
		resize:    &workerChannel{name: WorkerResize, target: endpoints.Resize, timeout: o.timeouts[WorkerResize], opts: dialOpts},
		detection: &workerChannel{name: WorkerDetection, target: endpoints.Detection, timeout: o.timeouts[WorkerDetection], opts: dialOpts},
		filter:    &workerChannel{name: WorkerFilter, target: endpoints.Filter, timeout: o.timeouts[WorkerFilter], opts: dialOpts},
		metrics:   o.metrics,
		logger:    logger,
	}

	for _, w := range p.channels() {
		if _, err := w.get(); err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("services: %w", err)
		}
		logger.Info("worker channel ready", "worker", w.name, "endpoint", w.target, "timeout", w.timeout)
	}
	return p, nil
}

func (p *WorkerPool) channels() []*workerChannel {
	return []*workerChannel{p.resize, p.detection, p.filter}
}

// call runs fn against w's connection under w's deadline. It does not retry;
// a connectivity error only schedules a reconnect for the next call.
func call[T any](ctx context.Context, p *WorkerPool, w *workerChannel, fn func(context.Context, grpc.ClientConnInterface) (T, error)) (T, error) {
	var zero T

	conn, err := w.get()
	if err != nil {
		return zero, err
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	resp, err := fn(ctx, conn)
	if p.metrics != nil {
		p.metrics.WorkerCall(w.name, status.Code(err).String(), time.Since(start))
	}
	if err != nil {
		if status.Code(err) == codes.Unavailable {
			p.logger.Warn("worker channel unavailable, reconnecting on next call", "worker", w.name, "endpoint", w.target)
			w.reset(conn)
		}
		return zero, fmt.Errorf("%s worker: %w", w.name, err)
	}
	return resp, nil
}

func (p *WorkerPool) ResizeImage(ctx context.Context, req *pb.ResizeRequest) (*pb.ResizeResponse, error) {
	resp, err := call(ctx, p, p.resize, func(ctx context.Context, cc grpc.ClientConnInterface) (*pb.ResizeResponse, error) {
		return pb.NewResizeServiceClient(cc).ResizeImage(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if resp.GetStatus() == pb.WorkerStatus_WORKER_STATUS_FAILED {
		return nil, fmt.Errorf("%s worker: %w: %s", WorkerResize, ErrWorkerFailed, resp.GetErrorMessage())
	}
	return resp, nil
}

func (p *WorkerPool) DetectObjects(ctx context.Context, req *pb.DetectRequest) (*pb.DetectResponse, error) {
	resp, err := call(ctx, p, p.detection, func(ctx context.Context, cc grpc.ClientConnInterface) (*pb.DetectResponse, error) {
		return pb.NewDetectionServiceClient(cc).DetectObjects(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if resp.GetStatus() == pb.WorkerStatus_WORKER_STATUS_FAILED {
		return nil, fmt.Errorf("%s worker: %w: %s", WorkerDetection, ErrWorkerFailed, resp.GetErrorMessage())
	}
	return resp, nil
}

func (p *WorkerPool) ApplyFilter(ctx context.Context, req *pb.FilterRequest) (*pb.FilterResponse, error) {
	resp, err := call(ctx, p, p.filter, func(ctx context.Context, cc grpc.ClientConnInterface) (*pb.FilterResponse, error) {
		return pb.NewFilterServiceClient(cc).ApplyFilter(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if resp.GetStatus() == pb.WorkerStatus_WORKER_STATUS_FAILED {
		return nil, fmt.Errorf("%s worker: %w: %s", WorkerFilter, ErrWorkerFailed, resp.GetErrorMessage())
	}
	return resp, nil
}

type WorkerHealth struct {
	Worker   string `json:"worker"`
	Endpoint string `json:"endpoint"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// Health asks every worker's standard health service for its status.
func (p *WorkerPool) Health(ctx context.Context) []WorkerHealth {
	out := make([]WorkerHealth, 0, 3)
	for _, w := range p.channels() {
		h := WorkerHealth{Worker: w.name, Endpoint: w.target, Status: healthpb.HealthCheckResponse_UNKNOWN.String()}

		conn, err := w.get()
		if err != nil {
			h.Error = err.Error()
			out = append(out, h)
			continue
		}

		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		resp, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{})
		cancel()
		if err != nil {
			h.Error = err.Error()
		} else {
			h.Status = resp.GetStatus().String()
		}
		out = append(out, h)
	}
	return out
}

func (p *WorkerPool) Close() error {
	var errs []error
	for _, w := range p.channels() {
		if err := w.close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
