package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Landing page and contact form relay for the portfolio site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "mail_driver", cfg.Mail.Driver)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 3. Setup Mail Transport
	// A transport that cannot be built is not fatal: the page still renders
	// and each submission reports the configuration failure.
	transport, err := email.NewTransport(context.Background(), cfg.Mail)
	if err != nil {
		logger.Log.Error("Mail transport unavailable", "driver", cfg.Mail.Driver, "error", err)
		transport = nil
	}
	if !cfg.Mail.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will report failures")
	}

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(cfg.Mail, transport)
	portfolioUC := usecase.NewPortfolioUsecase()
	healthUC := usecase.NewHealthUsecase(contactUC)

	// 5. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 6. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		ContactUC:       contactUC,
		PortfolioUC:     portfolioUC,
		HealthUC:        healthUC,
		Config:          cfg,
		MetricsRegistry: registry,
	})
	if err != nil {
		logger.Log.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
