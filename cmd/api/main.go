package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assessment_report_backend/internal/assessment"
	apphttp "assessment_report_backend/internal/http"
	"assessment_report_backend/internal/http/router"
	"assessment_report_backend/platform/config"
	"assessment_report_backend/platform/logger"
	"assessment_report_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	val := validator.New()

	assessmentModule, err := assessment.NewModule(cfg, val, log)
	if err != nil {
		log.Error("failed to initialize assessment module", "error", err)
		panic("failed to initialize assessment module: " + err.Error())
	}

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			assessmentModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
