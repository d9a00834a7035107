package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/juju/clock"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"inspection-hub/go-backend/internal/config"
	"inspection-hub/go-backend/internal/database"
	"inspection-hub/go-backend/internal/handlers"
	"inspection-hub/go-backend/internal/judgment"
	"inspection-hub/go-backend/pkg/pb"
)

func evaluatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluator",
		Short: "Serve EvaluateDetections backed by the criteria store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(false)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runEvaluator(ctx, cfg, logger)
		},
	}
}

func runEvaluator(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("evaluator starting",
		"version", version,
		"bind_addr", cfg.EvaluatorBindAddr,
		"criteria_ttl", cfg.CriteriaTTL,
		"criteria_negative_cache", cfg.CriteriaNegativeCache,
		"database", cfg.DSNForLog(),
	)

	db, err := database.Open(ctx, cfg.DSN(), logger)
	if err != nil {
		return err
	}
	defer db.Close()

	resolver := judgment.NewResolver(db, clock.WallClock, cfg.CriteriaTTL, cfg.CriteriaNegativeCache, logger)

	opts, err := serverOptions(cfg)
	if err != nil {
		return err
	}
	server := grpc.NewServer(opts...)
	pb.RegisterEvaluatorServiceServer(server, handlers.NewEvaluatorHandler(judgment.NewService(resolver), logger))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(pb.EvaluatorService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", cfg.EvaluatorBindAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.EvaluatorBindAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("evaluator listening", "addr", lis.Addr().String())
		return server.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		healthServer.Shutdown()
		stopGRPC(server, cfg.ShutdownTimeout, logger)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	logger.Info("evaluator stopped")
	return nil
}
