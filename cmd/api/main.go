package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
	apphttp "github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/mailer"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/stats"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/sms"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}
	logger.Info("storage ready", "driver", store.Driver)

	statsSvc := stats.NewService(db)
	poller := stats.NewPoller(cfg.StatsPollInterval, statsSvc.Refresh, logger)
	go poller.Run(ctx)

	r := apphttp.NewRouter(apphttp.Deps{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Storage:     store.Storage,
		Mailer:      mailer.FromConfig(cfg, logger),
		SMSProvider: sms.NewTwilioProvider(cfg.Twilio),
		Stats:       statsSvc,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
