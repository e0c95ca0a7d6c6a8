package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/ghodss/yaml"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/bertlv/ber/tlv"
)

type walkEntry struct {
	Depth  int    `json:"depth"`
	Offset int    `json:"offset"`
	Tag    string `json:"tag"`
	Class  string `json:"class"`
	Kind   string `json:"kind"`
	Length uint32 `json:"length"`
	Value  string `json:"value,omitempty"`
}

func makeWalkEntry(entry tlv.Entry) walkEntry {
	we := walkEntry{
		Depth:  entry.Depth,
		Offset: entry.Offset,
		Tag:    entry.TagString(),
		Class:  entry.Class().String(),
		Kind:   entry.Kind().String(),
		Length: entry.LengthValue,
	}
	if !entry.IsConstructed() {
		we.Value = hex.EncodeToString(entry.Value)
	}
	return we
}

type walkOutput struct {
	Input   string      `json:"input"`
	Entries []walkEntry `json:"entries"`
	Error   string      `json:"error,omitempty"`
}

type walkEncoder func(w io.Writer, output walkOutput) error

var walkEncoders = map[string]walkEncoder{
	"json": func(w io.Writer, output walkOutput) error {
		return json.NewEncoder(w).Encode(output)
	},
	"yaml": func(w io.Writer, output walkOutput) error {
		y, e := yaml.Marshal(output)
		if e != nil {
			return e
		}
		if _, e = io.WriteString(w, "---\n"); e != nil {
			return e
		}
		_, e = w.Write(y)
		return e
	},
	"cbor": func(w io.Writer, output walkOutput) error {
		return cbor.NewEncoder(w).Encode(output)
	},
}

func init() {
	var format string
	defineCommand(&cli.Command{
		Name:      "walk",
		Usage:     "Print data objects as structured records.",
		ArgsUsage: "[FILE]...",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output `format`: json, yaml, or cbor.",
				Value:       "json",
				Destination: &format,
			},
		}, inputFlags...),
		Action: func(c *cli.Context) error {
			enc := walkEncoders[format]
			if enc == nil {
				return fmt.Errorf("unknown output format %q", format)
			}

			return forEachInput(c, func(in input, many bool) error {
				entries, e := tlv.WalkAll(in.Wire, cfg.WalkerConfig)
				output := walkOutput{
					Input:   in.Name,
					Entries: make([]walkEntry, 0, len(entries)),
				}
				for _, entry := range entries {
					output.Entries = append(output.Entries, makeWalkEntry(entry))
				}
				if e != nil {
					output.Error = e.Error()
				}

				if ee := enc(c.App.Writer, output); ee != nil {
					return ee
				}
				return e
			})
		},
	})
}
