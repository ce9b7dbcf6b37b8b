// Package cli implements the creational command-line tool.
//
// # Commands
//
//	creational vehicle --kind car [--mode direct|prototype|descriptor]
//	creational draw --family Shape --criteria circle
//	creational singleton
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (default: LOG_LEVEL or info)
//	--env-file     dotenv file loaded before anything else
//	--manifest     YAML manifest selecting which vehicles are registered
//	--metrics      print factory metrics after the command
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v3"
	"go.uber.org/dig"
)

const name = "creational"

var (
	// overridden during build with ldflags
	version = "dev"
)

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCommand(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewCommand returns the root command writing its results to out.
func NewCommand(out io.Writer) *cli.Command {
	var app *appContainer

	return &cli.Command{
		Name:    name,
		Usage:   "Build vehicles, drawables and singletons",
		Version: version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file loaded before the logger is configured",
			},
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "YAML manifest selecting which vehicles are registered (default: all)",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "print factory metrics after the command completes",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if path := cmd.String("env-file"); path != "" {
				if err := godotenv.Load(path); err != nil {
					return ctx, fmt.Errorf("failed to load env file %q: %w", path, err)
				}
			}

			c, err := newAppContainer(config{
				LogLevel:     cmd.String("log-level"),
				ManifestPath: cmd.String("manifest"),
				Version:      version,
			})
			if err != nil {
				return ctx, err
			}

			app = c
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if app == nil || !cmd.Bool("metrics") {
				return nil
			}
			return app.invoke(func(reg *prometheus.Registry) error {
				return writeMetrics(out, reg)
			})
		},
		Commands: []*cli.Command{
			vehicleCmd(out, func() *appContainer { return app }),
			drawCmd(out),
			singletonCmd(out),
		},
	}
}

// appContainer wraps the dig container holding the command dependencies.
type appContainer struct {
	c *dig.Container
}

func (a *appContainer) invoke(fn any) error {
	if err := a.c.Invoke(fn); err != nil {
		return dig.RootCause(err)
	}
	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
