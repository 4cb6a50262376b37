package cli

import (
	"github.com/urfave/cli/v2"
)

type App = cli.App
type Command = cli.Command
type Context = cli.Context

type Flag = cli.Flag
type BoolFlag = cli.BoolFlag
type IntFlag = cli.IntFlag
type StringFlag = cli.StringFlag
type StringSliceFlag = cli.StringSliceFlag
