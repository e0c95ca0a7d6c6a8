package tlvdump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/usnistgov/bertlv/ber/tlv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Write renders data objects in wire to w.
//
// If decoding stops with an error, the text for data objects decoded before the error
// is still written, and the decoding error is returned.
func Write(w io.Writer, wire []byte, cfg Config) error {
	cfg.applyDefaults()
	bw := bufio.NewWriter(w)

	walker := tlv.NewWalker(wire, cfg.WalkerConfig)
	for walker.Next() {
		writeEntry(bw, walker.Entry(), cfg.Indent)
	}

	e := walker.Err()
	if e != nil {
		logger.Debug("walk stopped",
			zap.Int("offset", walker.Offset()),
			zap.Int("size", len(wire)),
			zap.Error(e),
		)
	}
	return multierr.Append(e, bw.Flush())
}

// Render renders data objects in wire as a string.
// On error, it returns the partial text along with the error.
func Render(wire []byte, cfg Config) (string, error) {
	var b strings.Builder
	e := Write(&b, wire, cfg)
	return b.String(), e
}

func writeEntry(w *bufio.Writer, entry tlv.Entry, indent int) {
	pad := strings.Repeat(" ", entry.Depth*indent)
	fmt.Fprintf(w, "%sTAG - %s (%s, %s)\n", pad, entry.TagString(), entry.Class(), entry.Kind())
	fmt.Fprintf(w, "%sLEN - %d bytes\n", pad, entry.LengthValue)
	if !entry.IsConstructed() && entry.ValueSize > 0 {
		w.WriteString(pad)
		w.WriteString("VAL -")
		for _, b := range entry.Value {
			fmt.Fprintf(w, " 0x%02X", b)
		}
		w.WriteByte('\n')
	}
	w.WriteByte('\n')
}
