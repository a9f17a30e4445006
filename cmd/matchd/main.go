package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"skillmatch/internal/common/config"
	"skillmatch/internal/common/database"
	"skillmatch/internal/common/logger"
	"skillmatch/internal/common/observability"
	"skillmatch/internal/genai"
	"skillmatch/internal/history"
	"skillmatch/internal/match"
	"skillmatch/internal/notify"
	"skillmatch/internal/quota"
	"skillmatch/internal/server"
)

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting matchd...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	shutdownTracing := observability.InitTracing(cfg.App.Name, cfg.Tracing.JaegerEndpoint)
	defer shutdownTracing()

	ctx := context.Background()

	var store quota.Store = quota.NewMemoryStore()
	if cfg.Database.Redis.Address != "" {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
		store = quota.NewRedisStore(redis.Client)
	} else {
		zapLog.Warn("Redis not configured, quota counters are in-memory only")
	}

	var pgStore *history.PostgresStore
	if cfg.Database.Postgres.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
		pgStore = history.NewPostgresStore(pg.DB)
	}

	var indexer *history.Indexer
	if cfg.Database.Elasticsearch.Enabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
		indexer = history.NewIndexer(esClient.Client, cfg.Database.Elasticsearch.Index)
	}

	var mailer *notify.ResumeMailer
	if cfg.Notifications.Email.Enabled {
		sesMailer, err := notify.NewSESMailer(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		mailer = notify.NewResumeMailer(sesMailer, cfg.Notifications.Email.FromEmail, log)
		zapLog.Info("SES mailer initialized")
	}

	var gen genai.Generator
	if cfg.APIs.GenAI.BaseURL != "" {
		gen = genai.NewClient(cfg.APIs, log)
	} else {
		zapLog.Warn("GenAI not configured, resumes always use the deterministic template")
	}

	engine := match.NewEngine(log, obs)
	gate := quota.NewGate(store, cfg.Quota.Plans, log)
	writer := genai.NewResumeWriter(gen, log)
	hist := history.NewService(pgStore, indexer, log)

	srv := server.New(engine, gate, writer, mailer, hist, cfg.Server, log)
	httpServer := srv.HTTPServer()

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Millisecond
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}
