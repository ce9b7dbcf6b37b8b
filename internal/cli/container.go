package cli

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/junioryono/creational"
	"github.com/junioryono/creational/internal/logging"
)

// config carries the global flag values into the container.
type config struct {
	LogLevel     string
	ManifestPath string
	Version      string
}

func newAppContainer(cfg config) (*appContainer, error) {
	c := dig.New()

	providers := []any{
		func() config { return cfg },
		newLogger,
		prometheus.NewRegistry,
		newFactory,
	}

	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, fmt.Errorf("failed to provide dependency: %w", err)
		}
	}

	return &appContainer{c: c}, nil
}

// newLogger installs the command logger as the slog default, so packages
// logging through slog.Default share its level and attributes.
func newLogger(cfg config) *slog.Logger {
	return logging.SetDefaultStructuredLogger(name, cfg.Version, cfg.LogLevel)
}

// newFactory is the explicit registration phase: every lookup made by a
// command happens after it returns.
func newFactory(cfg config, logger *slog.Logger, reg *prometheus.Registry) (*creational.Factory, error) {
	f := creational.NewFactory(
		creational.WithLogger(logger),
		creational.WithMetrics(reg),
	)

	if cfg.ManifestPath == "" {
		creational.RegisterVehicles(f)
		logger.Debug("registered built-in vehicles", "kinds", f.Registered())
		return f, nil
	}

	m, err := creational.LoadManifestFile(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	if err := m.Apply(f); err != nil {
		return nil, fmt.Errorf("failed to apply manifest %q: %w", cfg.ManifestPath, err)
	}

	logger.Info("applied vehicle manifest",
		"path", cfg.ManifestPath,
		"prototypes", f.Registered(),
		"descriptors", f.RegisteredDescriptors())

	return f, nil
}
