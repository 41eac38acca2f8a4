package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"github.com/shinelaptops/storefront/config"
	_ "github.com/shinelaptops/storefront/docs"
	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/handlers"
	"github.com/shinelaptops/storefront/internal/metrics"
	"github.com/shinelaptops/storefront/internal/middleware"
	"github.com/shinelaptops/storefront/internal/session"
	"github.com/shinelaptops/storefront/internal/telemetry"
	"github.com/shinelaptops/storefront/internal/theme"
)

// @title Shine Laptops Storefront API
// @version 1.0
// @description Catalog browsing, filtering, cart, service booking and contact form for the Shine Laptops storefront.
// @BasePath /api
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting storefront")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.ConfigFromEnv(telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Environment: cfg.Telemetry.Environment,
	}))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}

	store := catalog.Default()
	for _, issue := range store.Validate() {
		if issue.Severity == catalog.SeverityError {
			logger.Error().Str("issue", issue.String()).Msg("Catalog inconsistency")
		} else {
			logger.Warn().Str("issue", issue.String()).Msg("Catalog inconsistency")
		}
	}
	logger.Info().
		Int("products", len(store.Products())).
		Int("services", len(store.Services())).
		Int("accessories", len(store.Accessories())).
		Msg("Catalog loaded")

	recorder := metrics.NewRecorder()
	sessions := session.NewStore(store, session.Config{
		TTL:             cfg.Session.TTL,
		SubmittedWindow: cfg.Session.SubmittedWindow,
	}, recorder)
	sweeper := session.NewSweeper(sessions, logger, cfg.Session.SweepInterval)

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	fallbackTheme, err := theme.Parse(cfg.Presentation.DefaultTheme)
	if err != nil {
		fallbackTheme = theme.Light
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Theme(fallbackTheme))

	var limiter *middleware.IPRateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.Burst,
			IdleTTL:           middleware.DefaultRateLimiterConfig().IdleTTL,
		})
	}

	router.GET("/health", handlers.HealthCheck(store, sessions))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	if limiter != nil {
		api.Use(middleware.RateLimitMiddleware(limiter))
	}
	h := handlers.New(store, sessions, recorder, logger, handlers.Options{
		PriceCeiling: cfg.Presentation.PriceCeilingDecimal(),
	})
	h.RegisterRoutes(api)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      servertiming.Middleware(router, nil),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	if cfg.Session.TTL > 0 {
		g.Go(func() error {
			sweeper.Start(gctx)
			return nil
		})
	}

	if limiter != nil && cfg.RateLimit.CleanupInterval > 0 {
		g.Go(func() error {
			limiter.RunCleanup(gctx, cfg.RateLimit.CleanupInterval)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down server...")
		sweeper.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Server forced to shutdown")
		}
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Failed to flush telemetry")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped with error")
	}
	logger.Info().Msg("Server exited")
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "storefront").Logger()
	return &logger
}
