package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// ProbeHealthChecker reports healthy while its probe succeeds.
type ProbeHealthChecker struct {
	name  string
	probe func(ctx context.Context) error
}

func NewProbeHealthChecker(name string, probe func(ctx context.Context) error) *ProbeHealthChecker {
	return &ProbeHealthChecker{name: name, probe: probe}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	if err := hc.probe(ctx); err != nil {
		slog.Warn("Health probe failed", "probe", hc.name, "error", err)
		return false
	}
	return true
}
