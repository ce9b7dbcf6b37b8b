package main

import (
	"github.com/junioryono/creational/internal/cli"
)

func main() {
	cli.Execute()
}
