// Package app defines the App struct that composes the application's
// long-lived dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - repositories, services and the health checker built over the pool
package app

import (
	"errors"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/health"
	loggerPkg "github.com/deppfellow/lightbnb/internal/logger"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/rs/zerolog"
)

// App is the application container that holds shared resources.
type App struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	Repositories *repository.Repositories
	Services     *service.Services
	Health       *health.Checker
}

// New opens the database pool and wires repositories and services over it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*App, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repos := repository.NewRepositories(db.Pool, logger)

	var events health.EventRecorder
	if nrApp := loggerService.GetApplication(); nrApp != nil {
		events = nrApp
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Repositories:  repos,
		Services:      service.NewServices(cfg, logger, repos),
		Health:        health.NewChecker(db.Pool, cfg.Primary.Env, logger, events),
	}, nil
}

// Bootstrap loads configuration from the environment, builds the logger
// and returns a ready App.
func Bootstrap() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	loggerService, err := loggerPkg.NewLoggerService(&cfg.Observability)
	if err != nil {
		return nil, err
	}

	logger := loggerPkg.NewLoggerWithService(&cfg.Observability, loggerService)

	a, err := New(cfg, &logger, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, err
	}
	return a, nil
}

// Close releases the pool and flushes New Relic data.
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		if closeErr := a.DB.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close database connection: %w", closeErr))
		}
	}

	a.LoggerService.Shutdown()

	return err
}
