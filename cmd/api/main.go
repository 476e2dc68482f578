// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bahuan-coding/carla-ops-api/internal/audit"
	"github.com/bahuan-coding/carla-ops-api/internal/bank"
	"github.com/bahuan-coding/carla-ops-api/internal/config"
	"github.com/bahuan-coding/carla-ops-api/internal/conversation"
	"github.com/bahuan-coding/carla-ops-api/internal/demo"
	"github.com/bahuan-coding/carla-ops-api/internal/handler"
	"github.com/bahuan-coding/carla-ops-api/internal/invoker"
	"github.com/bahuan-coding/carla-ops-api/internal/llm"
	"github.com/bahuan-coding/carla-ops-api/internal/middleware"
	"github.com/bahuan-coding/carla-ops-api/internal/progress"
	"github.com/bahuan-coding/carla-ops-api/internal/service"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
	"github.com/bahuan-coding/carla-ops-api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "carla-ops-api", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing")
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to NATS for the audit trail
	natsClient, err := audit.Connect(ctx, audit.Config{
		URL:      cfg.NATSURL,
		CAFile:   cfg.NATSCAFile,
		CertFile: cfg.NATSCertFile,
		KeyFile:  cfg.NATSKeyFile,
		Token:    cfg.NATSToken,
	}, log)
	if err != nil {
		log.Error("failed to connect to NATS", zap.Error(err))
		os.Exit(1)
	}
	defer natsClient.Close()

	auditPublisher := audit.NewPublisher(natsClient)
	if err := auditPublisher.EnsureStream(ctx); err != nil {
		log.Error("failed to ensure audit stream", zap.Error(err))
		os.Exit(1)
	}

	// Optional insight provider
	var llmClient llm.Client
	if cfg.AnthropicAPIKey != "" {
		llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		if err != nil {
			log.Warn("failed to create Anthropic client, insight features disabled")
		}
	} else if cfg.OpenAIAPIKey != "" {
		llmClient, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		if err != nil {
			log.Warn("failed to create OpenAI client, insight features disabled")
		}
	}

	// Upstream client and services
	bankClient := bank.New(bank.Config{
		BaseURL: cfg.BankBaseURL,
		Token:   cfg.BankToken,
		Timeout: cfg.BankTimeout,
	}, log)

	aggregator := conversation.NewAggregator(progress.Map)
	conversationSvc := service.NewConversationService(
		bankClient, aggregator, demo.Conversations(), cfg.MinConversations, cfg.CacheTTL, log,
	)

	dispatcher := invoker.New(invoker.Config{
		BaseURL:   cfg.BankBaseURL,
		Token:     cfg.BankToken,
		TokenFile: cfg.BankTokenFile,
		Timeout:   cfg.BankTimeout,
	}, log)
	gate := invoker.NewGate(cfg.ArmTTL)
	invocationSvc := service.NewInvocationService(dispatcher, gate, auditPublisher, conversationSvc, log)
	insightSvc := service.NewInsightService(llmClient, cfg.InsightModel, conversationSvc, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsClient)
	conversationHandler := handler.NewConversationHandler(conversationSvc, log)
	endpointHandler := handler.NewEndpointHandler(invocationSvc, log)
	insightHandler := handler.NewInsightHandler(insightSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Link", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", conversationHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", conversationHandler.Get)
				r.Get("/insight", insightHandler.Get)
			})
		})

		r.Route("/admin/endpoints", func(r chi.Router) {
			r.Use(middleware.RequireScope("admin"))
			r.Get("/", endpointHandler.List)
			r.Post("/{id}/invoke", endpointHandler.Invoke)
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
