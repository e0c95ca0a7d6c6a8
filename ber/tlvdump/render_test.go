package tlvdump_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/usnistgov/bertlv/ber/bertestvector"
	"github.com/usnistgov/bertlv/ber/tlv"
	"github.com/usnistgov/bertlv/ber/tlvdump"
	"github.com/usnistgov/bertlv/core/testenv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)

func TestRender(t *testing.T) {
	assert, _ := makeAR(t)

	for _, tt := range bertestvector.RenderTests {
		wire := bytesFromHex(tt.Input)
		output, e := tlvdump.Render(wire, tlvdump.Config{})
		if tt.Err == nil {
			assert.NoError(e, tt.Input)
		} else {
			assert.ErrorIs(e, tt.Err, tt.Input)
		}
		assert.Equal(tt.Output, output, tt.Input)

		var b bytes.Buffer
		assert.Equal(e == nil, tlvdump.Write(&b, wire, tlvdump.Config{}) == nil, tt.Input)
		assert.Equal(output, b.String(), tt.Input)
	}
}

func TestRenderConfig(t *testing.T) {
	assert, _ := makeAR(t)
	wire := bytesFromHex("E1 05 E2 03 81 01 AA")

	output, e := tlvdump.Render(wire, tlvdump.Config{Indent: 4})
	assert.NoError(e)
	assert.Equal(""+
		"TAG - 0xE1 (private class, constructed)\n"+
		"LEN - 5 bytes\n"+
		"\n"+
		"    TAG - 0xE2 (private class, constructed)\n"+
		"    LEN - 3 bytes\n"+
		"\n"+
		"        TAG - 0x81 (context-specific class, primitive)\n"+
		"        LEN - 1 bytes\n"+
		"        VAL - 0xAA\n"+
		"\n", output)

	output, e = tlvdump.Render(wire, tlvdump.Config{WalkerConfig: tlv.WalkerConfig{MaxDepth: 1}})
	var ne *tlv.NestingError
	assert.True(errors.As(e, &ne))
	assert.Equal(""+
		"TAG - 0xE1 (private class, constructed)\n"+
		"LEN - 5 bytes\n"+
		"\n", output)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("failWriter")
}

func TestWrite(t *testing.T) {
	assert, _ := makeAR(t)

	var b bytes.Buffer
	assert.NoError(tlvdump.Write(&b, bytesFromHex("9F02 06 000000000100"), tlvdump.Config{}))
	assert.Contains(b.String(), "VAL - 0x00 0x00 0x00 0x00 0x01 0x00\n")

	e := tlvdump.Write(failWriter{}, bytesFromHex("81 01 AA 9F"), tlvdump.Config{})
	assert.ErrorIs(e, tlv.ErrHeaderSize)
	assert.ErrorContains(e, "failWriter")
}
