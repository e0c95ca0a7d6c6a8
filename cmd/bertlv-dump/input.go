package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// stdinName refers to standard input in the file list.
const stdinName = "-"

type source struct {
	Name string
	hex  string // inline input from --hex flag
	file bool
}

type input struct {
	Name string
	Wire []byte
}

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "hex",
		Usage: "Inline `HEX` input, processed before files.",
	},
	&cli.StringFlag{
		Name:  "input-format",
		Usage: "File content `format`: raw or hex.",
		Value: "raw",
	},
}

func listSources(c *cli.Context) (sources []source) {
	if c.IsSet("hex") {
		sources = append(sources, source{Name: "hex", hex: c.String("hex")})
	}
	for _, name := range c.Args().Slice() {
		sources = append(sources, source{Name: name, file: true})
	}
	if len(sources) == 0 {
		sources = append(sources, source{Name: stdinName, file: true})
	}
	return sources
}

// forEachInput loads each input and invokes f.
// Failures are logged and combined; remaining inputs are still processed.
func forEachInput(c *cli.Context, f func(in input, many bool) error) (e error) {
	var hexText bool
	switch format := c.String("input-format"); format {
	case "raw":
	case "hex":
		hexText = true
	default:
		return fmt.Errorf("unknown input format %q", format)
	}

	sources := listSources(c)
	for _, src := range sources {
		wire, ee := src.load(c.App.Reader, hexText)
		if ee == nil {
			ee = f(input{Name: src.Name, Wire: wire}, len(sources) > 1)
		}
		if ee != nil {
			logger.Error("input failed", zap.String("input", src.Name), zap.Error(ee))
			e = multierr.Append(e, fmt.Errorf("%s: %w", src.Name, ee))
		}
	}
	return e
}

func (src source) load(stdin io.Reader, hexText bool) ([]byte, error) {
	if !src.file {
		return parseHex(src.hex)
	}

	r := stdin
	if src.Name != stdinName {
		file, e := os.Open(src.Name)
		if e != nil {
			return nil, e
		}
		defer file.Close()
		r = file
	}

	switch filepath.Ext(src.Name) {
	case ".gz":
		zr, e := gzip.NewReader(r)
		if e != nil {
			return nil, e
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, e := zstd.NewReader(r)
		if e != nil {
			return nil, e
		}
		defer zr.Close()
		r = zr
	}

	b, e := io.ReadAll(r)
	if e != nil {
		return nil, e
	}
	if hexText {
		return parseHex(string(b))
	}
	return b, nil
}

// parseHex decodes hexadecimal text.
// Octet groups are separated by whitespace, ',' ':' or '-', and each group may carry a 0x prefix.
func parseHex(s string) ([]byte, error) {
	groups := strings.FieldsFunc(s, func(ch rune) bool {
		switch ch {
		case ' ', '\t', '\r', '\n', ',', ':', '-':
			return true
		}
		return false
	})

	var b strings.Builder
	for _, g := range groups {
		if len(g) > 2 && (strings.HasPrefix(g, "0x") || strings.HasPrefix(g, "0X")) {
			g = g[2:]
		}
		b.WriteString(g)
	}
	return hex.DecodeString(b.String())
}
