package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/aesthetic"
	"github.com/kailas-cloud/designdex/internal/config"
	"github.com/kailas-cloud/designdex/internal/db"
	dbRedis "github.com/kailas-cloud/designdex/internal/db/redis"
	logpkg "github.com/kailas-cloud/designdex/internal/logger"
	"github.com/kailas-cloud/designdex/internal/metrics"
	"github.com/kailas-cloud/designdex/internal/repository/corpus"
	"github.com/kailas-cloud/designdex/internal/repository/resultcache"
	chiTransport "github.com/kailas-cloud/designdex/internal/transport/chi"
	openaiTransport "github.com/kailas-cloud/designdex/internal/transport/openai"
	"github.com/kailas-cloud/designdex/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/designdex/internal/usecase/search"
	"github.com/kailas-cloud/designdex/internal/version"
	"github.com/kailas-cloud/designdex/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Loads configuration for the current ENV and serves the search and recommendation API.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting designdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.String("corpus_dir", cfg.Corpus.Dir),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Result cache backend
	var cache searchuc.ResultCache
	switch cfg.Cache.Driver {
	case "redis":
		var store db.Store
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			return fmt.Errorf("failed to create redis store: %w", err)
		}
		defer store.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(cmd.Context(), readiness); err != nil {
			return fmt.Errorf("redis not ready: %w", err)
		}
		logger.Info("Connected to redis")
		cache = resultcache.NewRedis(store, cfg.Cache.KeyPrefix, logger)
	default:
		cache = resultcache.NewMemory()
	}

	// Engine and composer, the composition root
	engine := searchuc.New(corpus.New(cfg.Corpus.Dir), cache, logger).
		WithTuning(cfg.Search.MaxResults, cfg.Search.PhraseBoost,
			cfg.Search.HighThreshold, cfg.Search.MediumThreshold)

	var generator recommend.AestheticGenerator
	switch cfg.Aesthetic.Provider {
	case "openai":
		// Provider failures degrade to the static presets, never the client.
		generator = aesthetic.WithFallback(
			openaiTransport.NewGenerator(&openaiTransport.Config{
				APIKey:  cfg.Aesthetic.APIKey,
				BaseURL: cfg.Aesthetic.BaseURL,
				Model:   cfg.Aesthetic.Model,
				Logger:  logger,
			}),
			aesthetic.New(cfg.Aesthetic.Seed),
			logger,
		)
	default:
		generator = aesthetic.New(cfg.Aesthetic.Seed)
	}
	logger.Info("Aesthetic generator created", zap.String("provider", cfg.Aesthetic.Provider))

	composer := recommend.New(engine, generator, logger)
	server := chiTransport.NewServer(engine, composer, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	// Corpus watcher keeps indexes in sync with on-disk edits
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if cfg.Corpus.Watch {
		w, err := watcher.New(cfg.Corpus.Dir, engine, logger)
		if err != nil {
			return fmt.Errorf("failed to watch corpus dir: %w", err)
		}
		defer func() { _ = w.Close() }()
		go w.Run(watchCtx)
		logger.Info("Watching corpus directory", zap.String("dir", cfg.Corpus.Dir))
	}

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
	return nil
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
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
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

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
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
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
