// Package health checks that the service's dependencies are reachable.
package health

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// DefaultTimeout bounds each dependency check.
const DefaultTimeout = 5 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EventRecorder is satisfied by *newrelic.Application.
type EventRecorder interface {
	RecordCustomEvent(eventType string, params map[string]interface{})
}

// Check is the outcome of one dependency check.
type Check struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// Report is the overall health status.
type Report struct {
	Status      string           `json:"status"`
	Timestamp   time.Time        `json:"timestamp"`
	Environment string           `json:"environment"`
	Checks      map[string]Check `json:"checks"`
}

func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

type Checker struct {
	db          Pinger
	environment string
	logger      *zerolog.Logger
	events      EventRecorder
	timeout     time.Duration
	now         func() time.Time
}

// NewChecker builds a Checker. events may be nil when New Relic is disabled.
func NewChecker(db Pinger, environment string, logger *zerolog.Logger, events EventRecorder) *Checker {
	return &Checker{
		db:          db,
		environment: environment,
		logger:      logger,
		events:      events,
		timeout:     DefaultTimeout,
		now:         time.Now,
	}
}

// Check pings the database and reports the result. A failed check is
// logged and, when New Relic is enabled, recorded as a HealthCheckError event.
func (c *Checker) Check(ctx context.Context) Report {
	start := c.now()

	logger := c.logger.With().
		Str("operation", "health_check").
		Logger()

	report := Report{
		Status:      StatusHealthy,
		Timestamp:   start.UTC(),
		Environment: c.environment,
		Checks:      make(map[string]Check),
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	dbStart := c.now()
	err := c.db.Ping(pingCtx)
	elapsed := c.now().Sub(dbStart)

	if err != nil {
		report.Status = StatusUnhealthy
		report.Checks["database"] = Check{
			Status:       StatusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msg("database health check failed")

		c.record(map[string]interface{}{
			"check_type":       "database",
			"operation":        "health_check",
			"error_type":       "database_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	} else {
		report.Checks["database"] = Check{
			Status:       StatusHealthy,
			ResponseTime: elapsed.String(),
		}

		logger.Debug().
			Dur("response_time", elapsed).
			Msg("database health check passed")
	}

	if !report.Healthy() {
		logger.Warn().
			Dur("total_duration", c.now().Sub(start)).
			Msg("health check failed")
	}

	return report
}

func (c *Checker) record(params map[string]interface{}) {
	if c.events == nil {
		return
	}
	c.events.RecordCustomEvent("HealthCheckError", params)
}
