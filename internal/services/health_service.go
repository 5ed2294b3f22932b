// Package services holds the application services behind the HTTP
// handlers.
package services

import (
	"context"
	"log/slog"
	"time"

	"boxarr/internal/config"
)

// HealthService reports application health and build information. It
// performs no network calls; Radarr state is reported from configuration
// only.
type HealthService struct {
	holder    *config.Holder
	version   string
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	Version          string    `json:"version"`
	UptimeSeconds    float64   `json:"uptime_seconds"`
	RadarrConfigured bool      `json:"radarr_configured"`
	SchedulerEnabled bool      `json:"scheduler_enabled"`
}

// VersionInfo is the version endpoint payload.
type VersionInfo struct {
	Version string `json:"version"`
}

// NewHealthService creates a new health service
func NewHealthService(holder *config.Holder, version string, logger *slog.Logger) *HealthService {
	return &HealthService{
		holder:    holder,
		version:   version,
		startTime: time.Now(),
		logger:    logger.With(slog.String("service", "health")),
	}
}

// HealthCheck resolves the current settings and reports overall status.
// A configuration that fails to resolve degrades the status instead of
// failing the endpoint.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:        "healthy",
		Timestamp:     time.Now(),
		Version:       s.version,
		UptimeSeconds: time.Since(s.startTime).Seconds(),
	}

	settings, err := s.holder.Get()
	if err != nil {
		s.logger.ErrorContext(ctx, "health check could not resolve settings",
			slog.String("error", err.Error()))
		status.Status = "degraded"
		return status
	}

	status.RadarrConfigured = settings.IsConfigured()
	status.SchedulerEnabled = settings.BoxarrSchedulerEnabled
	return status
}

// Version returns the version payload.
func (s *HealthService) Version() VersionInfo {
	return VersionInfo{Version: s.version}
}
