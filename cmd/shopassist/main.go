package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/catalog"
	"github.com/kailas-cloud/shopassist/internal/config"
	dbRedis "github.com/kailas-cloud/shopassist/internal/db/redis"
	"github.com/kailas-cloud/shopassist/internal/domain"
	logpkg "github.com/kailas-cloud/shopassist/internal/logger"
	"github.com/kailas-cloud/shopassist/internal/metrics"
	"github.com/kailas-cloud/shopassist/internal/repository/transcache"
	chiTransport "github.com/kailas-cloud/shopassist/internal/transport/chi"
	kafkaTransport "github.com/kailas-cloud/shopassist/internal/transport/kafka"
	openaiTransport "github.com/kailas-cloud/shopassist/internal/transport/openai"
	"github.com/kailas-cloud/shopassist/internal/transport/translate"
	"github.com/kailas-cloud/shopassist/internal/usecase/assistant"
	healthuc "github.com/kailas-cloud/shopassist/internal/usecase/health"
	"github.com/kailas-cloud/shopassist/internal/usecase/recommend"
	"github.com/kailas-cloud/shopassist/internal/usecase/translation"
	"github.com/kailas-cloud/shopassist/internal/version"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting shopassist API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("translation_providers", cfg.Translation.Providers),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("assistant_enabled", cfg.Assistant.Enabled),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterTranslationMetrics()
	metrics.RegisterRecommendationMetrics()

	ctx := context.Background()

	// Translation cache (optional)
	var store *dbRedis.Store
	if cfg.Cache.Enabled {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// LLM client, shared by the llm translation provider and the assistant.
	var llm *openaiTransport.Client
	if cfg.UsesProvider(config.ProviderLLM) || cfg.Assistant.Enabled {
		llm = openaiTransport.NewClient(&openaiTransport.Config{
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
			Model:    cfg.LLM.Model,
			Provider: cfg.LLM.Provider,
			Timeout:  time.Duration(cfg.LLM.TimeoutSec) * time.Second,
			Logger:   logger,
		})
	}

	// Build translator chain: providers -> Instrumented -> Chain -> Cached
	chain := translate.NewChain(logger, buildProviders(cfg, llm, logger)...)
	var translator domain.Translator = chain
	if store != nil {
		translator = transcache.New(chain, store,
			time.Duration(cfg.Cache.TTLHours)*time.Hour, metrics.TranslationCacheTotal, logger)
	}
	logger.Info("Translator chain created", zap.Strings("providers", chain.Providers()))

	// Analytics events (optional)
	var events *kafkaTransport.Publisher
	if len(cfg.Events.Brokers) > 0 {
		events, err = kafkaTransport.NewPublisher(kafkaTransport.Config{
			Brokers: cfg.Events.Brokers,
			Topic:   cfg.Events.Topic,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to create event publisher", zap.Error(err))
		}
		defer func() {
			if err := events.Close(); err != nil {
				logger.Warn("Failed to flush events", zap.Error(err))
			}
		}()
	}

	// Use case services
	cat := catalog.Default()
	recSvc := recommend.New(cat, translator, logger).
		WithTranslateTimeout(time.Duration(cfg.Translation.CallTimeout) * time.Second)
	if events != nil {
		recSvc.WithEvents(events)
	}

	// Pass nil interface (not typed nil pointer!) when the assistant is disabled.
	var model assistant.ChatModel
	var chatModel *openaiTransport.ChatModel
	if cfg.Assistant.Enabled {
		chatModel = openaiTransport.NewChatModel(llm)
		model = chatModel
	}
	assistSvc := assistant.New(model, recSvc, cat, logger)

	// Health service
	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, chain)
	if chatModel != nil {
		healthSvc.WithAssistant(chatModel)
	}

	// Create chi server
	server := chiTransport.NewServer(recSvc, assistSvc, cat, translator, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	chiTransport.Handler(server, chiTransport.RouterOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
				Code:    chiTransport.CodeBadRequest,
				Message: "invalid request",
			})
		},
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildProviders creates the configured translation providers in priority
// order, each wrapped with timeout and metrics.
func buildProviders(cfg config.Config, llm *openaiTransport.Client, logger *zap.Logger) []translate.NamedTranslator {
	timeout := time.Duration(cfg.Translation.TimeoutSec) * time.Second

	providers := make([]translate.NamedTranslator, 0, len(cfg.Translation.Providers))
	for _, name := range cfg.Translation.Providers {
		var base domain.Translator
		switch name {
		case config.ProviderGoogle:
			base = translate.NewGoogle(timeout, logger)
		case config.ProviderMyMemory:
			base = translate.NewMyMemory(cfg.Translation.MyMemoryEmail, timeout, logger)
		case config.ProviderLLM:
			if llm == nil {
				continue
			}
			base = openaiTransport.NewTranslator(llm)
		default:
			logger.Warn("Skipping unknown translation provider", zap.String("provider", name))
			continue
		}
		providers = append(providers, translation.NewInstrumentedTranslator(base, name, timeout, logger))
	}
	return providers
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.CodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
