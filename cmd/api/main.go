// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the author HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Connect to Redis and RabbitMQ when configured.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/authors/internal/api"
	"github.com/taibuivan/authors/internal/author"
	"github.com/taibuivan/authors/internal/platform/broker"
	"github.com/taibuivan/authors/internal/platform/config"
	"github.com/taibuivan/authors/internal/platform/constants"
	"github.com/taibuivan/authors/internal/platform/migration"
	pgstore "github.com/taibuivan/authors/internal/platform/postgres"
	redisstore "github.com/taibuivan/authors/internal/platform/redis"
	"github.com/taibuivan/authors/internal/platform/remote"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("cache_enabled", cfg.RedisURL != ""),
		slog.Bool("events_enabled", cfg.AMQPURL != ""),
		slog.Bool("gateway_enabled", cfg.AuthorService.BaseURL != ""),
	)

	// Root context for the process lifetime (background routines stop with it).
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	checks := []api.HealthCheck{{
		Name:  "postgres",
		Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}}

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	var repository author.Repository = author.NewPostgresRepository(pool)

	// ── 5. Optional backends ──────────────────────────────────────────────
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		cache := redisstore.NewCache(rdb, constants.RedisPrefixAuthor)
		repository = author.NewCachedRepository(repository, cache, cfg.CacheTTL, log)
		checks = append(checks, api.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	}

	var publisher author.Publisher
	if cfg.AMQPURL != "" {
		amqpPublisher, err := broker.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
		must(log, err, "connect to amqp")
		defer func() {
			log.Info("closing amqp publisher")
			if cerr := amqpPublisher.Close(); cerr != nil {
				log.Error("amqp close error", slog.Any("error", cerr))
			}
		}()

		publisher = amqpPublisher
		checks = append(checks, api.HealthCheck{
			Name:  "amqp",
			Check: func(context.Context) error { return amqpPublisher.Ping() },
		})
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(checks, log)

	authorService := author.NewService(repository, publisher, log)
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Authors:   author.NewHandler(authorService),
	}

	if cfg.AuthorService.BaseURL != "" {
		client := remote.NewClient(cfg.AuthorService.BaseURL, cfg.AuthorService.Secret, cfg.AuthorService.Timeout)
		gateway := author.NewGateway(client, cfg.AuthorService.ReadMethod)
		handlers.Gateway = author.NewGatewayHandler(gateway)
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(appCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		return
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger and installs it as the slog default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
