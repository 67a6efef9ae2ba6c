package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"google.golang.org/grpc"

	"planner/backend/internal/calendar"
	"planner/backend/internal/clock"
	"planner/backend/internal/config"
	"planner/backend/internal/export/ics"
	"planner/backend/internal/perf"
	"planner/backend/internal/service/timeblocks"
	"planner/backend/internal/store"
	"planner/backend/internal/store/memory"
	"planner/backend/internal/store/postgres"
	grpcTransport "planner/backend/internal/transport/grpc"
	"planner/backend/internal/viewcache"
)

func main() {
	os.Exit(run())
}

// run serves until a shutdown signal or a server failure and returns the
// process exit code. Deferred cleanup runs before main exits.
func run() int {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", "planner-server"),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		return 1
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", "planner-server"),
	)
	slog.SetDefault(log)

	log.Info("starting",
		slog.String("grpc_addr", cfg.GRPCAddr()),
		slog.String("log_level", cfg.LogLevel),
		slog.String("store_driver", cfg.StoreDriver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, log, cfg)
	if err != nil {
		return 1
	}
	defer closeStore()

	clk := clock.Real{}
	cache := viewcache.New[calendar.ViewResult](cfg.CacheTTL, clk)
	monitor := perf.NewMonitor(clk)
	svc := timeblocks.NewService(repo, cache, timeblocks.Settings{
		FirstDayOfWeek:      cfg.FirstDayOfWeek,
		Canvas:              cfg.Canvas,
		VirtualThreshold:    cfg.VirtualThreshold,
		PageSize:            cfg.PageSize,
		ZoomThreshold:       cfg.ZoomThreshold,
		ShortDescriptionLen: cfg.ShortDescriptionLen,
		ICSProductID:        ics.DefaultProductID,
	},
		timeblocks.WithLogger(log),
		timeblocks.WithMonitor(monitor),
		timeblocks.WithClock(clk),
	)

	scheduler, err := startJobs(log, cfg, cache, svc)
	if err != nil {
		return 1
	}
	defer func() { <-scheduler.Stop().Done() }()

	grpcServer, healthServer := grpcTransport.NewServer(svc, grpcTransport.ServerOptions{
		RequestTimeout: cfg.GRPCRequestTimeout,
		Log:            log,
	})

	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", cfg.GRPCAddr()))
		return 1
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()

	log.Info("grpc server started", slog.String("grpc_addr", cfg.GRPCAddr()))

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		healthServer.Shutdown()
		shutdown(log, grpcServer, cfg.ShutdownTimeout)
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error("grpc server stopped with error", slog.Any("err", err))
			return 1
		}
	}
	return 0
}

func openStore(ctx context.Context, log *slog.Logger, cfg config.Config) (store.TimeBlockRepository, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn("using in-memory store; time blocks are lost on restart")
		return memory.NewTimeBlockRepo(), func() {}, nil
	}

	log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	db, err := postgres.Open(openCtx, cfg.DatabaseURL, postgres.Options{
		Pool: postgres.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		},
		Migrate: cfg.DatabaseMigrate,
		Log:     log,
	})
	if err != nil {
		args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
		log.Error("database connection failed", args...)
		return nil, nil, err
	}

	closeDB := func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("database close failed", slog.Any("err", err))
		}
	}
	return postgres.NewTimeBlockRepo(db), closeDB, nil
}

// startJobs schedules cache sweeping and the periodic performance report.
func startJobs(log *slog.Logger, cfg config.Config, cache *viewcache.Cache[calendar.ViewResult], svc *timeblocks.Service) (*cron.Cron, error) {
	log = log.With(slog.String("component", "jobs"))
	c := cron.New()

	if _, err := c.AddFunc(cfg.CacheSweepSchedule, func() {
		if n := cache.Sweep(); n > 0 {
			log.Debug("view cache swept", slog.Int("evicted", n), slog.Int("remaining", cache.Len()))
		}
	}); err != nil {
		log.Error("invalid cache sweep schedule", slog.Any("err", err), slog.String("schedule", cfg.CacheSweepSchedule))
		return nil, err
	}

	if _, err := c.AddFunc(cfg.PerfReportSchedule, func() {
		report := svc.Metrics()
		for _, op := range report.Operations {
			log.Info("operation timings",
				slog.String("operation", op.Operation),
				slog.Int("count", op.Count),
				slog.Float64("min_ms", op.Min),
				slog.Float64("max_ms", op.Max),
				slog.Float64("avg_ms", op.Average),
			)
		}
		log.Info("memory",
			slog.Uint64("heap_used", report.Memory.HeapUsed),
			slog.Uint64("heap_total", report.Memory.HeapTotal),
			slog.Uint64("rss", report.Memory.RSS),
			slog.Uint64("external", report.Memory.External),
		)
	}); err != nil {
		log.Error("invalid perf report schedule", slog.Any("err", err), slog.String("schedule", cfg.PerfReportSchedule))
		return nil, err
	}

	c.Start()
	return c, nil
}

func shutdown(log *slog.Logger, s *grpc.Server, timeout time.Duration) {
	log.Info("shutting down grpc server", slog.Duration("timeout", timeout))

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-timer.C:
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
