package auth

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type claimsKey struct{}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims stored by the stream interceptor.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}

// FromMetadata validates the bearer token in the incoming gRPC metadata.
func (v *Validator) FromMetadata(ctx context.Context) (*Claims, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	for _, h := range md.Get("authorization") {
		if token := BearerToken(h); token != "" {
			return v.Validate(token)
		}
	}
	return nil, ErrMissingToken
}

// StatusError maps an auth error to UNAUTHENTICATED.
func StatusError(err error) error {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, ErrMissingToken):
		return status.Error(codes.Unauthenticated, "missing bearer token")
	default:
		return status.Error(codes.Unauthenticated, "invalid token")
	}
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}

// StreamInterceptor authenticates streaming calls once, when the stream
// opens. Methods listed in skip are passed through untouched.
func (v *Validator) StreamInterceptor(logger *slog.Logger, skip ...string) grpc.StreamServerInterceptor {
	skipped := make(map[string]bool, len(skip))
	for _, m := range skip {
		skipped[m] = true
	}

	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if skipped[info.FullMethod] {
			return handler(srv, ss)
		}

		claims, err := v.FromMetadata(ss.Context())
		if err != nil {
			logger.Warn("stream rejected", "method", info.FullMethod, "error", err)
			return StatusError(err)
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: WithClaims(ss.Context(), claims)})
	}
}
