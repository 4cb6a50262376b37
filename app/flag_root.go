package app

import (
	"github.com/adrianliechti/serve/pkg/cli"
)

var RootFlag = &cli.StringFlag{
	Name:  "root",
	Usage: "directory to serve (defaults to the executable's directory)",
}

func Root(c *cli.Context) string {
	return c.String(RootFlag.Name)
}

func MustEnterRoot(c *cli.Context) string {
	root, err := EnterRoot(Root(c))

	if err != nil {
		cli.Fatal(err)
	}

	return root
}
