/*
Package main is the entry point for the AAELink file service.

It loads configuration, initializes logging, provisions the object storage bucket
(failing fast when storage is unreachable), serves the HTTP API, and shuts down
gracefully on SIGINT or SIGTERM.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aaelink/internal/app/storage"
	"aaelink/internal/configs"
	"aaelink/internal/handler"
	"aaelink/internal/pkg/logx"
)

// storageInitTimeout bounds bucket provisioning at startup.
const storageInitTimeout = 15 * time.Second

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("storage_driver", cfg.Storage.Driver).
		Str("storage_endpoint", cfg.Storage.Endpoint).
		Int("storage_port", cfg.Storage.Port).
		Bool("storage_ssl", cfg.Storage.UseSSL).
		Str("storage_bucket", cfg.Storage.BucketName).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initCtx, cancelInit := context.WithTimeout(ctx, storageInitTimeout)
	storageService, err := storage.NewStorageService(initCtx, cfg.Storage)
	cancelInit()
	if err != nil {
		logx.Fatal(err, "Object storage is not ready", "bucket", cfg.Storage.BucketName)
	}

	router := handler.Router(ctx, &handler.AppDeps{
		Config:         cfg,
		StorageService: storageService,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("AAELink file service starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
