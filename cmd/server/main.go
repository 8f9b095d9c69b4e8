package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fiesta/internal/config"
	"fiesta/internal/database"
	"fiesta/internal/handlers"
	"fiesta/internal/logger"
	"fiesta/internal/services"

	"github.com/spf13/afero"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Logger
	zlog, err := logger.New(cfg.LogDir, cfg.LogConsole)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// 3. Init DB and artifact folders
	db, err := database.Open(cfg.DatabasePath, zlog)
	if err != nil {
		zlog.Fatalw("failed to init DB", "path", cfg.DatabasePath, "err", err)
	}
	store := database.NewGuestStore(db)

	artifacts, err := services.NewArtifacts(afero.NewOsFs(), cfg.QRDir, cfg.PDFDir)
	if err != nil {
		zlog.Fatalw("failed to prepare artifact folders", "err", err)
	}

	// 4. HTTP server
	e := handlers.NewServer(cfg, handlers.Services{
		Registration: services.NewRegistrationService(cfg, store, artifacts, zlog),
		Checkin:      services.NewCheckinService(store, zlog),
		Admin:        services.NewGuestAdminService(store, artifacts, zlog),
		Health:       store,
	}, zlog)

	go func() {
		zlog.Infow("fiesta starting", "addr", cfg.ListenAddr, "view", cfg.ViewMode, "base_url", cfg.BaseURL)
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server stopped", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zlog.Errorw("shutdown failed", "err", err)
	}
	zlog.Info("fiesta stopped")
}
