package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/archive"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/directory"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/events"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/rpc"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/solana"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/store/bolt"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	networks, err := parseNetworks(cfg.Networks)
	if err != nil {
		logger.Fatal("Invalid networks", zap.Error(err))
	}
	endpoints, err := parseEndpoints(cfg.RPCURLs, networks)
	if err != nil {
		logger.Fatal("Invalid rpc urls", zap.Error(err))
	}
	accounts, err := parseAccounts(cfg.Accounts)
	if err != nil {
		logger.Fatal("Invalid accounts", zap.Error(err))
	}

	transports := make(map[model.Network]rpc.Transport, len(networks))
	for _, network := range networks {
		netLogger := logger.Named("rpc").With(zap.String("network", string(network)))
		tracker := rpc.MultiTracker{rpc.NewLogTracker(netLogger), metrics.NewRPCErrors(network)}
		pipeline, err := rpc.NewPipeline(rpc.PipelineConfig{
			Endpoints:         endpoints[network],
			CapabilityHeader:  cfg.CapabilityHeader,
			CapabilityMethods: cfg.CapabilityMethods,
			Timeout:           cfg.HTTPTimeout,
			RateLimit:         cfg.RateLimit,
			Metrics:           metrics.NewRPCClient(network),
		}, tracker, netLogger)
		if err != nil {
			logger.Fatal("Failed to build rpc pipeline", zap.String("network", string(network)), zap.Error(err))
		}
		transports[network] = pipeline
	}

	client, err := solana.NewClient(transports, logger)
	if err != nil {
		logger.Fatal("Failed to build chain client", zap.Error(err))
	}
	dir, err := directory.New(accounts, networks, client, logger)
	if err != nil {
		logger.Fatal("Failed to build account directory", zap.Error(err))
	}

	store, err := bolt.Open(cfg.StatePath, logger)
	if err != nil {
		logger.Fatal("Failed to open state store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close state store", zap.Error(err))
		}
	}()
	if cfg.ResetLock {
		if err := resetLock(ctx, store); err != nil {
			logger.Fatal("Failed to reset pass lock", zap.Error(err))
		}
		logger.Warn("Pass lock cleared")
	}

	bus, err := events.NewBus(metrics.NewEventBus(), logger)
	if err != nil {
		logger.Fatal("Failed to build event bus", zap.Error(err))
	}

	var wg sync.WaitGroup
	archiveCtx, stopArchive := context.WithCancel(context.Background())
	defer stopArchive()
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			logger.Fatal("Failed to connect clickhouse", zap.Error(err))
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("Failed to close clickhouse", zap.Error(err))
			}
		}()
		archiver, err := archive.New(bus, repo, archive.Config{
			FlushSize:     cfg.ArchiveFlushSize,
			FlushInterval: cfg.ArchiveFlushPeriod,
			RPS:           cfg.ArchiveRPS,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to build archiver", zap.Error(err))
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := archiver.Run(archiveCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Archiver stopped", zap.Error(err))
			}
		}()
	}

	engine, err := syncer.NewEngine(store, client, dir, bus, metrics.NewSyncEngine(), syncer.Config{
		Networks:       networks,
		SignatureLimit: cfg.SignatureLimit,
		HistoryLimit:   cfg.HistoryLimit,
		WorkerCount:    cfg.WorkerCount,
		LockTTL:        engineLockTTL(cfg.LockTTL),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to build sync engine", zap.Error(err))
	}

	health := transport.NewHealth()
	service, err := syncer.NewService(engine, health, cfg.SyncInterval, logger)
	if err != nil {
		logger.Fatal("Failed to build scheduler", zap.Error(err))
	}

	grpcServer := newGRPCServer(logger, health)
	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			logger.Error("GRPC server stopped", zap.Error(serveErr))
		}
	}()

	handler, err := transport.NewSyncHandler(engine, store, dir, health, logger)
	if err != nil {
		logger.Fatal("Failed to build http handler", zap.Error(err))
	}
	apiServer := newHTTPServer(cfg.HTTPAddr, handler.Handler())
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := newHTTPServer(cfg.MetricsAddr, metricsMux)
	for _, s := range []*http.Server{apiServer, metricsServer} {
		s := s
		go func() {
			logger.Info("Starting HTTP server", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Failed to listen and serve", zap.String("addr", s.Addr), zap.Error(err))
			}
		}()
	}

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Scheduler stopped", zap.Error(err))
	}

	logger.Info("Shutting down")
	health.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range []*http.Server{apiServer, metricsServer} {
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.String("addr", s.Addr), zap.Error(err))
		}
	}
	grpcServer.GracefulStop()
	stopArchive()
	wg.Wait()
}

func newGRPCServer(logger *zap.Logger, health *transport.Health) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(
			grpcRecovery.StreamServerInterceptor(),
			grpcPrometheus.StreamServerInterceptor,
		)),
	)
	healthpb.RegisterHealthServer(server, health.Server())
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(server)
	return server
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func resetLock(ctx context.Context, store syncer.StateStore) error {
	state, err := store.Get(ctx)
	if err != nil {
		return err
	}
	state.IsFetchingTransactions = false
	state.LockAcquiredAt = time.Time{}
	return store.Set(ctx, state)
}
