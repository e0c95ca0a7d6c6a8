package main

import (
	"encoding/json"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/bertlv/core/version"
)

func init() {
	defineCommand(&cli.Command{
		Name:  "version",
		Usage: "Print version information as JSON.",
		Action: func(c *cli.Context) error {
			return json.NewEncoder(c.App.Writer).Encode(version.V)
		},
	})
}
