package tlv_test

import (
	"errors"
	"testing"

	"github.com/usnistgov/bertlv/ber/tlv"
	"github.com/usnistgov/bertlv/core/testenv"
)

// zeroTLV creates a context-specific primitive data object with n zero octets.
func zeroTLV(n int) tlv.Field {
	if n < 0 {
		return tlv.FieldError(errors.New("negative length"))
	}
	return tlv.TLVBytes(0x80|uint16(n), make([]byte, n))
}

func TestEncode(t *testing.T) {
	assert, _ := makeAR(t)

	wire, e := tlv.Encode(
		tlv.Bytes(nil),
		tlv.Bytes([]byte{0xFF, 0x00}),
		tlv.TLVBytes(0x5A, []byte{0xF3}),
		zeroTLV(2),
		tlv.TLV(0x70, zeroTLV(1)),
		tlv.TLV(0xBF0C, tlv.TLVBytes(0x9F4D, nil)),
		tlv.Field{},
	)
	assert.NoError(e)
	assert.Equal(bytesFromHex(
		"FF 00 "+
			"5A 01 F3 "+
			"82 02 0000 "+
			"70 03 81 01 00 "+
			"BF0C 03 9F4D 00"), wire)

	wire, e = tlv.Encode(zeroTLV(1), zeroTLV(-1))
	assert.Error(e)
	assert.Nil(wire)
	_, e = tlv.Encode(tlv.FieldError(nil))
	assert.ErrorIs(e, tlv.ErrErrorField)
	_, e = tlv.Encode(tlv.TLV(0x70, tlv.FieldError(nil)))
	assert.ErrorIs(e, tlv.ErrErrorField)

	for _, tag := range []uint16{0x00, 0x1F, 0x9F, 0xFF, 0x8102, 0x0102} {
		_, e = tlv.Encode(tlv.TLVBytes(tag, nil))
		assert.ErrorIs(e, tlv.ErrTag, "%04X", tag)
	}
}

func TestAppendLength(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		n    uint32
		wire string
	}{
		{0x00, "00"},
		{0x7F, "7F"},
		{0x80, "8180"},
		{0xFF, "81FF"},
		{0x0100, "820100"},
		{0xFFFF, "82FFFF"},
		{0x010000, "83010000"},
		{0xFFFFFF, "83FFFFFF"},
		{0x01000000, "8401000000"},
		{0xFFFFFFFF, "84FFFFFFFF"},
	}
	for _, tt := range tests {
		wire := tlv.AppendLength(nil, tt.n)
		assert.Equal(bytesFromHex(tt.wire), wire, "%X", tt.n)
		assert.Equal(len(wire), tlv.LengthSize(tt.n), "%X", tt.n)
	}
}

func TestRoundtrip(t *testing.T) {
	assert, require := makeAR(t)

	tags := []uint16{0x04, 0x5A, 0x81, 0xC3, 0x1F01, 0x5F20, 0x9F02, 0xDF81}
	sizes := []int{0, 1, 127, 128, 255, 256, 70000}
	for _, tag := range tags {
		for _, size := range sizes {
			value := testenv.RandBytes(size)

			wire, e := tlv.Encode(tlv.TLVBytes(tag, value))
			require.NoError(e)

			rec, skipped, e := tlv.DecodeOne(wire, 0, len(wire), true)
			require.NoError(e, "%04X %d", tag, size)
			assert.Equal(0, skipped)
			assert.Equal(tag, rec.Tag)
			assert.EqualValues(size, rec.LengthValue)
			assert.Equal(size, rec.ValueSize)
			assert.Equal(len(wire), rec.Size())
			bytesEqual(assert, value, rec.Value, "%04X %d", tag, size)
		}
	}
}
