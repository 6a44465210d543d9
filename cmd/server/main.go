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

	"github.com/Drakarta/Solide-Inc/internal/config"
	"github.com/Drakarta/Solide-Inc/internal/db"
	"github.com/Drakarta/Solide-Inc/internal/httpapi"
	"github.com/Drakarta/Solide-Inc/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	logger.Info("configuration loaded", "config", cfg.String())

	// Open DB and apply migrations
	d, err := db.Open(cfg.Database.Driver, cfg.Database.DSN, db.Options{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		logger.Error("open db", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Error("close db", "err", err)
		}
	}()

	s := &httpapi.Server{
		Users:   repository.NewUserRepository(d),
		Bottles: repository.NewBottleRepository(d),
		Water:   repository.NewWaterDataRepository(d),
		Log:     logger,
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: httpapi.NewRouter(s),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "err", err)
			os.Exit(1)
		}
	}()
	logger.Info("http server listening", "address", cfg.HTTP.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
