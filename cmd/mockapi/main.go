package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appconfig "github.com/mawadk/dashboard-client/internal/config"
	"github.com/mawadk/dashboard-client/internal/mockapi"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

func main() {
	cfg := appconfig.LoadDotenv()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting mawadk mock API",
		"port", cfg.MockAPIPort,
	)

	mock := mockapi.New(mockapi.Config{
		SecretKey: cfg.APISecret,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.MockAPIPort,
		Handler:      mock.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
