package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/config"
	"github.com/benvon/youthwell/internal/logger"
	"github.com/benvon/youthwell/internal/middleware"
	"github.com/benvon/youthwell/internal/services/ai"
	"github.com/benvon/youthwell/internal/services/mail"
	"github.com/benvon/youthwell/internal/telemetry"
)

func main() {
	// Parse command-line flags
	debugFlag := flag.Bool("debug", false, "Enable debug mode for LLM API logging")
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before reading the environment")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override debug mode if flag is set
	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		// Sync fails on stderr in some environments; nothing to do about it here
		_ = zapLogger.Sync()
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.String("ai_provider", cfg.AIProvider),
		zap.String("ai_model", cfg.AIModel),
		zap.String("rate_limit", cfg.RateLimit),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	ctx := context.Background()

	// Initialize OpenTelemetry if enabled
	tracing := false
	if cfg.OTELEnabled {
		tp, err := telemetry.InitTracer(ctx, telemetry.ServiceName, cfg.OTELEndpoint)
		if err != nil {
			zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
		} else {
			tracing = true
			zapLogger.Info("otel_tracer_initialized", zap.String("endpoint", cfg.OTELEndpoint))
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
					zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
				}
			}()
		}
	}

	limiter, err := newRateLimiter(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}
	defer func() {
		if err := limiter.Close(); err != nil {
			zapLogger.Warn("failed_to_close_rate_limit_store", zap.Error(err))
		}
	}()
	zapLogger.Info("rate_limiter_ready", zap.String("backend", limiter.Backend()))

	// A missing key leaves every AI route on its static fallback
	aiProvider, err := createAIProvider(ctx, cfg, zapLogger, debugMode)
	if err != nil {
		zapLogger.Warn("failed_to_create_ai_provider_using_fallbacks", zap.Error(err))
		aiProvider = nil
	}

	relay := mail.NewRelay(mail.Config{
		User:       cfg.Mail.User,
		Pass:       cfg.Mail.Pass,
		Host:       cfg.Mail.Host,
		Port:       cfg.Mail.Port,
		SenderName: cfg.Mail.SenderName,
		AdminEmail: cfg.Mail.AdminEmail,
	}, zapLogger)
	if !relay.Configured() {
		zapLogger.Warn("mail_relay_not_configured")
	}

	router := newRouter(routerDeps{
		cfg:       cfg,
		logger:    zapLogger,
		service:   ai.NewWellnessService(aiProvider, zapLogger),
		mailer:    relay,
		limiter:   limiter,
		tracing:   tracing,
		mailReady: relay.Configured(),
	})

	requestTimeout := cfg.AITimeout + 10*time.Second
	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   requestTimeout + 5*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB max header size
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

// newRateLimiter uses Redis when REDIS_URL is set and process memory otherwise.
func newRateLimiter(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (*middleware.RateLimiter, error) {
	if cfg.RedisURL == "" {
		return middleware.NewRateLimiter(nil, cfg.RateLimit, zapLogger)
	}
	client, err := middleware.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	zapLogger.Info("connected_to_redis")
	rl, err := middleware.NewRateLimiter(client, cfg.RateLimit, zapLogger)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return rl, nil
}

// createAIProvider creates an AI provider based on configuration
func createAIProvider(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger, debugMode bool) (ai.Provider, error) {
	registry := ai.DefaultProviderRegistry()
	return registry.GetProvider(ctx, cfg.AIProvider, ai.ProviderConfig{
		APIKey:    cfg.APIKey(),
		BaseURL:   cfg.AIBaseURL,
		Model:     cfg.AIModel,
		Timeout:   cfg.AITimeout,
		Logger:    zapLogger,
		DebugMode: debugMode,
	})
}
