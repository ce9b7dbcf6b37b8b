package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/junioryono/creational/drawable"
)

func drawCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "draw",
		Usage: "Draw a product from a drawable family",
		Description: fmt.Sprintf(`Resolve a family factory by name, then a drawable by criteria.

Families: %s

Examples:
  creational draw --family Shape --criteria circle
  creational draw --family Color --criteria blue`, strings.Join(drawable.Families(), ", ")),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "family",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "drawable family (Shape, Color)",
			},
			&cli.StringFlag{
				Name:     "criteria",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "product within the family, e.g. circle or red",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := drawable.New(cmd.String("family"), cmd.String("criteria"))
			if err != nil {
				return err
			}
			return d.Draw(out)
		},
	}
}
