package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"inspection-hub/go-backend/internal/auth"
	"inspection-hub/go-backend/internal/services"
	"inspection-hub/go-backend/pkg/pb"
)

// PendingFrames bounds how many received frames may wait for the stream
// owner. A frame's age is fixed when it is received, not when it is
// dequeued.
const PendingFrames = 32

type FrameStream = grpc.BidiStreamingServer[pb.Frame, pb.ProcessedFrame]

type arrival struct {
	frame   *pb.Frame
	arrived time.Time
}

// GRPCHandler serves ProcessVideoStream. Authentication happens in the
// stream interceptor; the handler only rechecks token expiry per frame.
type GRPCHandler struct {
	pb.UnimplementedVideoStreamServiceServer
	processor *services.FrameProcessor
	validator *auth.Validator
	metrics   *services.Metrics
	logger    *slog.Logger
}

func NewGRPCHandler(processor *services.FrameProcessor, validator *auth.Validator, metrics *services.Metrics, logger *slog.Logger) *GRPCHandler {
	return &GRPCHandler{
		processor: processor,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

func (h *GRPCHandler) ProcessVideoStream(stream FrameStream) error {
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	claims, _ := auth.ClaimsFromContext(ctx)
	logger := h.logger.With("stream_id", uuid.NewString(), "transport", "grpc")
	if claims != nil {
		logger = logger.With("subject", claims.Subject)
	}

	h.metrics.StreamOpened("grpc")
	defer h.metrics.StreamClosed("grpc")
	logger.Info("stream opened")

	pending := make(chan arrival, PendingFrames)
	recvErr := make(chan error, 1)

	// Receiver: reads frames in arrival order. The loop below is the only
	// sender, which keeps responses in input order.
	go func() {
		defer close(pending)
		for {
			frame, err := stream.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					recvErr <- err
				}
				return
			}
			select {
			case pending <- arrival{frame: frame, arrived: h.processor.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var sent int
	for {
		select {
		case <-ctx.Done():
			logger.Info("stream cancelled", "frames", sent)
			return status.FromContextError(ctx.Err()).Err()

		case next, ok := <-pending:
			if !ok {
				select {
				case err := <-recvErr:
					logger.Info("stream closed by peer", "frames", sent, "error", err)
					return err
				default:
				}
				logger.Info("stream completed", "frames", sent)
				return nil
			}

			if claims != nil && h.validator != nil && claims.ExpiredAt(h.validator.Now()) {
				logger.Warn("token expired mid-stream", "frames", sent)
				return auth.StatusError(auth.ErrTokenExpired)
			}

			out := h.processor.Process(ctx, next.frame, next.arrived)
			if err := stream.Send(out); err != nil {
				logger.Warn("send failed, dropping stream", "frames", sent, "error", err)
				return status.Error(codes.Unavailable, "send failed")
			}
			sent++
		}
	}
}
