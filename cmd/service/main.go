package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	application "pickup-service/internal/app"
	"pickup-service/internal/handlers/rest/driver_get"
	"pickup-service/internal/handlers/rest/driver_heartbeat_post"
	"pickup-service/internal/handlers/rest/driver_post"
	"pickup-service/internal/handlers/rest/driver_put"
	"pickup-service/internal/handlers/rest/driver_status_put"
	"pickup-service/internal/handlers/rest/drivers_get"
	"pickup-service/internal/handlers/rest/healthcheck_head"
	"pickup-service/internal/handlers/rest/pickup_assign_post"
	"pickup-service/internal/handlers/rest/pickup_cancel_post"
	"pickup-service/internal/handlers/rest/pickup_events_get"
	"pickup-service/internal/handlers/rest/pickup_post"
	"pickup-service/internal/handlers/rest/pickup_reject_post"
	"pickup-service/internal/handlers/rest/pickup_status_post"
	"pickup-service/internal/handlers/rest/pickups_assigned_get"
	"pickup-service/internal/handlers/rest/pickups_available_get"
	"pickup-service/internal/handlers/rest/ping_get"
	"pickup-service/internal/handlers/rest/tenant_post"
	"pickup-service/internal/handlers/rest/tenants_get"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/config"
	"pickup-service/internal/pkg/dotenv"
	"pickup-service/internal/pkg/grpcserver"
	"pickup-service/internal/pkg/kafka"
	authmw "pickup-service/internal/pkg/middlewares/auth"
	"pickup-service/internal/pkg/middlewares/graceful_shutdown"
	"pickup-service/internal/pkg/middlewares/idempotency"
	"pickup-service/internal/pkg/middlewares/metrics"
	"pickup-service/internal/pkg/middlewares/rate_limiter"
	"pickup-service/internal/pkg/middlewares/timeout"
	"pickup-service/internal/pkg/postgres"
	redisclient "pickup-service/internal/pkg/redis"
	"pickup-service/pkg/logger"
	"pickup-service/pkg/logger/zap_adapter"
	"pickup-service/pkg/token_bucket"
)

func main() {
	err := dotenv.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting pickup-service application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisclient.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, kafka.ParseBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	dependencies := map[string]ping_get.Pinger{
		"postgres": pool,
		"redis":    redisPinger{client: redisClient},
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, redisClient, dependencies),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	// основной http сервер

	// grpc health сервер
	healthServer := grpcserver.NewHealthServer(log)
	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		runLog.Info("grpc health server starting",
			logger.NewField("port", cfg.Server.GRPCHealthPort),
		)
		if err := healthServer.ListenAndServe(cfg.Server.GRPCHealthPort); err != nil {
			healthServerErr <- err
		}
	}()
	healthServer.SetServing(true)
	// grpc health сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс никогда не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.SetServing(false)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	healthServer.Shutdown()

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	redisClient *redis.Client,
	dependencies map[string]ping_get.Pinger,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(log, isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, dependencies)).Methods(http.MethodGet)

	api := router.PathPrefix("/v1").Subrouter()
	api.Use(authmw.Middleware(log, auth.NewVerifier(&cfg.Auth)))

	driverOnly := authmw.RequireRole(log, auth.RoleDriver)
	adminOnly := authmw.RequireRole(log, auth.RoleAdmin)
	anyRole := authmw.RequireRole(log, auth.RoleDriver, auth.RoleAdmin)
	idempotent := idempotency.Middleware(log, redisClient, cfg.Redis.IdempotencyTTL)

	// водитель
	api.Handle("/pickups/available", driverOnly(pickups_available_get.New(log, app.ServiceAssignment))).Methods(http.MethodGet)
	api.Handle("/pickups/assigned", driverOnly(pickups_assigned_get.New(log, app.ServiceAssignment))).Methods(http.MethodGet)
	api.Handle("/pickups/{id}/assign", driverOnly(idempotent(pickup_assign_post.New(log, app.ServiceAssignment)))).Methods(http.MethodPost)
	api.Handle("/pickups/{id}/reject", driverOnly(idempotent(pickup_reject_post.New(log, app.ServiceAssignment)))).Methods(http.MethodPost)
	api.Handle("/pickups/{id}/status", driverOnly(idempotent(pickup_status_post.New(log, app.ServiceAssignment)))).Methods(http.MethodPost)
	api.Handle("/drivers/me/status", driverOnly(idempotent(driver_status_put.New(log, app.ServiceDriver)))).Methods(http.MethodPut)
	api.Handle("/drivers/me/heartbeat", driverOnly(driver_heartbeat_post.New(log, app.ServiceDriver))).Methods(http.MethodPost)

	api.Handle("/pickups/{id}/events", anyRole(pickup_events_get.New(log, app.ServiceAssignment))).Methods(http.MethodGet)

	// администратор
	api.Handle("/pickups", adminOnly(pickup_post.New(log, app.ServiceAssignment))).Methods(http.MethodPost)
	api.Handle("/pickups/{id}/cancel", adminOnly(pickup_cancel_post.New(log, app.ServiceAssignment))).Methods(http.MethodPost)
	api.Handle("/drivers", adminOnly(driver_post.New(log, app.ServiceDriver))).Methods(http.MethodPost)
	api.Handle("/drivers", adminOnly(driver_put.New(log, app.ServiceDriver))).Methods(http.MethodPut)
	api.Handle("/drivers", adminOnly(drivers_get.New(log, app.ServiceDriver))).Methods(http.MethodGet)
	api.Handle("/drivers/{id:[0-9]+}", adminOnly(driver_get.New(log, app.ServiceDriver))).Methods(http.MethodGet)
	api.Handle("/tenants", adminOnly(tenant_post.New(log, app.ServiceTenant))).Methods(http.MethodPost)
	api.Handle("/tenants", adminOnly(tenants_get.New(log, app.ServiceTenant))).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
