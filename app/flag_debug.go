package app

import (
	"github.com/adrianliechti/serve/pkg/cli"
)

var DebugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "enable debug logging",
}

func Debug(c *cli.Context) bool {
	return c.Bool(DebugFlag.Name)
}
