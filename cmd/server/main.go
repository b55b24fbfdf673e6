package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"volunteernetwork/config"
	_ "volunteernetwork/docs"
	"volunteernetwork/internal/adapters/filestore"
	delivery "volunteernetwork/internal/delivery/http"
	"volunteernetwork/internal/delivery/http/controllers"
	"volunteernetwork/internal/delivery/http/middleware"
	"volunteernetwork/internal/repository/postgres"
	"volunteernetwork/internal/services"
	"volunteernetwork/migrations"
)

const (
	serviceTimeout  = 10 * time.Second
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title Volunteer Network API
// @version 1.0
// @description Backend for the volunteer coordination platform: volunteer registration, events with banner images, and user-event associations.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open db", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(startupCtx); err != nil {
		logger.Error("db ping", "err", err)
		os.Exit(1)
	}
	if err := migrations.Apply(startupCtx, db); err != nil {
		logger.Error("apply migrations", "err", err)
		os.Exit(1)
	}

	assets, err := filestore.New(cfg.UploadDir)
	if err != nil {
		logger.Error("init asset store", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	volunteerRepo := postgres.NewVolunteerRepository(db)
	userEventRepo := postgres.NewUserEventRepository(db)

	eventSvc := services.NewEventService(eventRepo, assets, logger, serviceTimeout)
	volunteerSvc := services.NewVolunteerService(volunteerRepo, serviceTimeout)
	userEventSvc := services.NewUserEventService(userEventRepo, serviceTimeout)

	mux := delivery.NewRouter(
		controllers.NewEventController(logger, eventSvc),
		controllers.NewVolunteerController(logger, volunteerSvc),
		controllers.NewUserEventController(logger, userEventSvc),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSOrigins, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()
	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
}
