package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/internal/auth"
	"inspection-hub/go-backend/internal/config"
	"inspection-hub/go-backend/internal/database"
	"inspection-hub/go-backend/internal/handlers"
	"inspection-hub/go-backend/internal/judgment"
	"inspection-hub/go-backend/internal/services"
	"inspection-hub/go-backend/pkg/pb"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept device frame streams and run the inspection pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(true)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("stream hub starting",
		"version", version,
		"bind_addr", cfg.BindAddr,
		"http_addr", cfg.HTTPAddr,
		"tls", cfg.TLSEnabled(),
		"deployment_hint", cfg.DeploymentHint,
		"evaluation_mode", cfg.EvaluationMode,
		"shed_threshold", cfg.ShedThreshold,
		"catalog_ttl", cfg.CatalogTTL,
		"criteria_ttl", cfg.CriteriaTTL,
		"criteria_negative_cache", cfg.CriteriaNegativeCache,
		"judgment_queue_capacity", cfg.JudgmentQueueCapacity,
		"aggregator_tx_timeout", cfg.AggregatorTxTimeout,
		"max_message_size_mb", cfg.MaxMessageSizeMB,
		"database", cfg.DSNForLog(),
	)
	logger.Info("worker endpoints",
		"resize", cfg.Endpoints.Resize,
		"detection", cfg.Endpoints.Detection,
		"filter", cfg.Endpoints.Filter,
		"evaluator", cfg.Endpoints.Evaluator,
		"pipeline_master", cfg.Endpoints.PipelineMaster,
	)

	db, err := database.Open(ctx, cfg.DSN(), logger)
	if err != nil {
		return err
	}
	defer db.Close()

	metrics := services.NewMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		metrics,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pool, err := services.NewWorkerPool(cfg.Endpoints, logger,
		services.WithMaxMessageSize(cfg.MaxMessageBytes()),
		services.WithPoolMetrics(metrics),
	)
	if err != nil {
		return err
	}
	defer pool.Close()

	evaluator, resolver, closeEvaluator, err := newEvaluator(cfg, db, logger)
	if err != nil {
		return err
	}
	defer closeEvaluator()

	queue := aggregator.NewQueue(cfg.JudgmentQueueCapacity)
	metrics.WatchQueue(queue.Stats)
	aggWorker := aggregator.NewWorker(queue, db, clock.WallClock, cfg.AggregatorTxTimeout, logger)
	// The worker outlives ctx so Drain can flush buffered events on shutdown.
	if err := aggWorker.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("start aggregator: %w", err)
	}

	catalog := services.NewCatalog(services.CatalogConfig{
		BaseURL:      cfg.Endpoints.PipelineMaster,
		ServiceName:  cfg.ServiceName,
		ServiceToken: cfg.ServiceToken,
		TTL:          cfg.CatalogTTL,
	}, logger)

	processor := services.NewFrameProcessor(services.FrameProcessorConfig{
		Executor:      services.NewExecutor(catalog, pool, clock.WallClock, logger),
		Evaluator:     evaluator,
		Queue:         queue,
		Clock:         clock.WallClock,
		ShedThreshold: cfg.ShedThreshold,
		Metrics:       metrics,
	}, logger)

	validator, err := auth.NewValidator(cfg.AuthSecret, cfg.AuthAlg, clock.WallClock)
	if err != nil {
		return err
	}

	opts, err := serverOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, grpc.StreamInterceptor(validator.StreamInterceptor(logger, healthWatchMethod)))
	grpcServer := grpc.NewServer(opts...)
	pb.RegisterVideoStreamServiceServer(grpcServer, handlers.NewGRPCHandler(processor, validator, metrics, logger))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(pb.VideoStreamService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	ws := handlers.NewWSHandler(processor, validator, metrics, logger)
	caches := map[string]handlers.Invalidator{"catalog": catalog}
	if resolver != nil {
		caches["criteria"] = resolver
	}
	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: handlers.NewOpsMux(handlers.OpsConfig{
			Metrics:   metrics,
			Gatherer:  registry,
			Workers:   pool,
			Queue:     queue.Stats,
			WebSocket: ws,
			Caches:    caches,
			Validator: validator,
		}, logger),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.BindAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.BindAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server listening", "addr", lis.Addr().String())
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()

		stopGRPC(grpcServer, cfg.ShutdownTimeout, logger)

		httpCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(httpCtx); err != nil {
			logger.Error("http shutdown error", "error", err)
		}
		ws.CloseAll()

		drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelDrain()
		aggWorker.Drain(drainCtx)

		stats := aggWorker.Stats()
		logger.Info("aggregator stopped", "applied", stats.Applied, "missing", stats.Missing, "failed", stats.Failed)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	logger.Info("stream hub stopped")
	return nil
}

const healthWatchMethod = "/grpc.health.v1.Health/Watch"

// newEvaluator returns the configured evaluator. The resolver is nil when
// criteria are resolved by a remote evaluator.
func newEvaluator(cfg *config.Config, db *database.DB, logger *slog.Logger) (judgment.Evaluator, *judgment.Resolver, func(), error) {
	if cfg.EvaluationMode == config.EvaluationRemote {
		remote, err := judgment.NewRemoteEvaluator(cfg.Endpoints.Evaluator, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return remote, nil, func() { _ = remote.Close() }, nil
	}
	resolver := judgment.NewResolver(db, clock.WallClock, cfg.CriteriaTTL, cfg.CriteriaNegativeCache, logger)
	return judgment.NewService(resolver), resolver, func() {}, nil
}

func serverOptions(cfg *config.Config) ([]grpc.ServerOption, error) {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(cfg.MaxMessageBytes()),
		grpc.MaxSendMsgSize(cfg.MaxMessageBytes()),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	if cfg.TLSEnabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return nil, fmt.Errorf("load TLS key pair: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	return opts, nil
}

// stopGRPC drains in-flight streams and forces a stop after timeout.
func stopGRPC(s *grpc.Server, timeout time.Duration, logger *slog.Logger) {
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		logger.Info("gRPC server stopped")
	case <-time.After(timeout):
		logger.Warn("forced gRPC shutdown", "timeout", timeout)
		s.Stop()
	}
}
