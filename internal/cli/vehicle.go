package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/junioryono/creational"
)

func vehicleCmd(out io.Writer, app func() *appContainer) *cli.Command {
	return &cli.Command{
		Name:  "vehicle",
		Usage: "Build and construct a vehicle",
		Description: `Build a vehicle with one of the factory strategies and run its construct step.

Modes:
  direct      closed switch over the known kinds, no registry involved
  prototype   copy of the prototype registered during bootstrap
  descriptor  zero-argument constructor registered during bootstrap

Examples:
  creational vehicle --kind car
  creational vehicle --kind truck --mode descriptor
  creational --manifest vehicles.yaml vehicle --kind bike`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "kind",
				Aliases:  []string{"k"},
				Required: true,
				Usage:    "vehicle kind (car, truck, bike)",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: creational.StrategyPrototype,
				Usage: "build strategy (direct, prototype, descriptor)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			key, err := creational.ParseTypeKey(cmd.String("kind"))
			if err != nil {
				return err
			}
			mode := strings.ToLower(cmd.String("mode"))

			return app().invoke(func(f *creational.Factory, logger *slog.Logger) error {
				v, err := build(f, mode, key)
				if err != nil {
					return err
				}

				logger.Debug("vehicle built", "kind", v.Kind(), "mode", mode, "id", v.ID())

				if err := v.Construct(out); err != nil {
					return fmt.Errorf("failed to construct %s: %w", key, err)
				}
				_, err = fmt.Fprintf(out, "id: %s\nparts: %s\n", v.ID(), strings.Join(v.Parts(), ", "))
				return err
			})
		},
	}
}

func build(f *creational.Factory, mode string, key creational.TypeKey) (creational.Vehicle, error) {
	switch mode {
	case creational.StrategyDirect:
		return f.BuildDirect(key)
	case creational.StrategyPrototype:
		return f.BuildFromRegistry(key)
	case creational.StrategyDescriptor:
		return f.BuildFromDescriptor(key)
	default:
		return nil, fmt.Errorf("unknown build mode: %q", mode)
	}
}
