package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/junioryono/creational/singleton"
)

func singletonCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "singleton",
		Usage: "Show that every singleton variant returns one shared instance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "value",
				Value: "first",
				Usage: "value stored through one enum reference and read through another",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lazySame := singleton.LazyInstance() == singleton.LazyInstance()
			holderSame := singleton.HolderInstance() == singleton.HolderInstance()

			first, second := singleton.EnumInstance(), singleton.EnumInstance()
			first.SetValue(cmd.String("value"))

			_, err := fmt.Fprintf(out,
				"lazy: same=%t constructions=%d\nholder: same=%t constructions=%d\nenum: same=%t constructions=%d value=%s\n",
				lazySame, singleton.LazyConstructions(),
				holderSame, singleton.HolderConstructions(),
				first == second, singleton.EnumConstructions(), second.Value(),
			)
			return err
		},
	}
}
