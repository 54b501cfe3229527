// Soul of Sri Lanka travel platform API.
//
// @title        Soul of Sri Lanka API
// @version      1.0
// @description  REST backend for the Soul of Sri Lanka tourism platform.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/soulofsrilanka/travel-api/internal/api"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
	"github.com/soulofsrilanka/travel-api/internal/infrastructure/config"
	mongodb "github.com/soulofsrilanka/travel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/soulofsrilanka/travel-api/internal/infrastructure/db/redis"
	"github.com/soulofsrilanka/travel-api/internal/infrastructure/mail"
	"github.com/soulofsrilanka/travel-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureUserIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	var notifier ports.Notifier = mail.Noop{}
	if cfg.Mail.Host != "" {
		notifier = mail.NewMailer(mail.Config{
			Host: cfg.Mail.Host,
			Port: cfg.Mail.Port,
			User: cfg.Mail.User,
			Pass: cfg.Mail.Pass,
			From: cfg.Mail.From,
		}, cfg.ClientURL)
	} else {
		log.Warn().Msg("SMTP_HOST not set, welcome notifications disabled")
	}

	e := api.NewRouter(db, rdb, cfg, notifier, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
