package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/bertlv/ber/tlvdump"
)

func init() {
	defineCommand(&cli.Command{
		Name:      "dump",
		Usage:     "Print data objects as indented text.",
		ArgsUsage: "[FILE]...",
		Flags:     inputFlags,
		Action: func(c *cli.Context) error {
			return forEachInput(c, func(in input, many bool) error {
				if many {
					fmt.Fprintf(c.App.Writer, "==> %s <==\n", in.Name)
				}
				return tlvdump.Write(c.App.Writer, in.Wire, cfg)
			})
		},
	})
}
