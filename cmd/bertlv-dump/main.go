// Command bertlv-dump decodes and prints BER-TLV data objects.
package main

import (
	"log"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/bertlv/ber/tlvdump"
	"github.com/usnistgov/bertlv/core/logging"
	"github.com/usnistgov/bertlv/core/version"
	"github.com/usnistgov/bertlv/core/yamlflag"
)

var logger = logging.New("BertlvDump")

var cfg tlvdump.Config

var app = &cli.App{
	Version: version.V.String(),
	Usage:   "Decode and print BER-TLV data objects.",
	Flags: []cli.Flag{
		&cli.GenericFlag{
			Name:  "config",
			Usage: "Configuration `YAML` document, or @file.yaml.",
			Value: yamlflag.New(&cfg),
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "Maximum nesting `depth` of constructed data objects.",
		},
		&cli.IntFlag{
			Name:  "indent",
			Usage: "Number of `spaces` per nesting level.",
		},
		&cli.StringFlag{
			Name:    "log",
			Usage:   "Log `level` (V, D, I, W, E).",
			EnvVars: []string{"BERTLV_LOG"},
		},
	},
	Before: func(c *cli.Context) error {
		if c.IsSet("max-depth") {
			cfg.MaxDepth = c.Int("max-depth")
		}
		if c.IsSet("indent") {
			cfg.Indent = c.Int("indent")
		}
		if c.IsSet("log") {
			for _, pl := range logging.ListLevels() {
				pl.SetLevel(c.String("log"))
			}
		}
		return nil
	},
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	e := app.Run(os.Args)
	if e != nil {
		log.Fatal(e)
	}
}
