package app

import (
	"errors"

	"github.com/adrianliechti/serve/pkg/cli"
)

const DefaultPort = 8081

var HostFlag = &cli.StringFlag{
	Name:  "host",
	Usage: "interface to listen on (empty for all)",
}

var PortFlag = &cli.IntFlag{
	Name:  "port",
	Usage: "port to listen on",
	Value: DefaultPort,
}

func Host(c *cli.Context) string {
	return c.String(HostFlag.Name)
}

func Port(c *cli.Context) int {
	return c.Int(PortFlag.Name)
}

func MustPort(c *cli.Context) int {
	port := Port(c)

	if port < 0 || port > 65535 {
		cli.Fatal(errors.New("port out of range"))
	}

	return port
}
