package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"fisco/internal/comuni"
	"fisco/internal/platform/config"
	"fisco/internal/platform/health"
	"fisco/internal/platform/httpserver"
	"fisco/internal/platform/logger"
	"fisco/internal/taxid/handler"
	taxidmetrics "fisco/internal/taxid/metrics"
	"fisco/internal/taxid/service"
	httptransport "fisco/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing fisco",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	places := comuni.New()
	metrics := taxidmetrics.New()
	taxidService := service.New(places, log, service.WithMetrics(metrics))

	taxidHandler := handler.New(taxidService, log)
	healthHandler := health.New(cfg.Environment)
	router := httptransport.NewRouter(taxidHandler, healthHandler, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
