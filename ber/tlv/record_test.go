package tlv_test

import (
	"testing"

	"github.com/usnistgov/bertlv/ber/tlv"
)

func TestClassKindString(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal("universal class", tlv.ClassUniversal.String())
	assert.Equal("application class", tlv.ClassApplication.String())
	assert.Equal("context-specific class", tlv.ClassContextSpecific.String())
	assert.Equal("private class", tlv.ClassPrivate.String())
	assert.Equal("Class(4)", tlv.Class(4).String())

	assert.Equal("primitive", tlv.KindPrimitive.String())
	assert.Equal("constructed", tlv.KindConstructed.String())
	assert.Equal("Kind(2)", tlv.Kind(2).String())
}

func TestRecordFields(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		input string
		class tlv.Class
		kind  tlv.Kind
		tag   string
	}{
		{"04 00", tlv.ClassUniversal, tlv.KindPrimitive, "0x04"},
		{"30 00", tlv.ClassUniversal, tlv.KindConstructed, "0x30"},
		{"5F20 00", tlv.ClassApplication, tlv.KindPrimitive, "0x5F20"},
		{"7F49 00", tlv.ClassApplication, tlv.KindConstructed, "0x7F49"},
		{"9F36 00", tlv.ClassContextSpecific, tlv.KindPrimitive, "0x9F36"},
		{"BF0C 00", tlv.ClassContextSpecific, tlv.KindConstructed, "0xBF0C"},
		{"DF01 00", tlv.ClassPrivate, tlv.KindPrimitive, "0xDF01"},
		{"FF20 00", tlv.ClassPrivate, tlv.KindConstructed, "0xFF20"},
	}
	for _, tt := range tests {
		wire := bytesFromHex(tt.input)
		rec, _, e := tlv.DecodeOne(wire, 0, len(wire), false)
		if !assert.NoError(e, tt.input) {
			continue
		}
		assert.Equal(tt.class, rec.Class(), tt.input)
		assert.Equal(tt.kind, rec.Kind(), tt.input)
		assert.Equal(tt.kind == tlv.KindConstructed, rec.IsConstructed(), tt.input)
		assert.Equal(tt.tag, rec.TagString(), tt.input)
		assert.Equal(len(wire), rec.HeaderSize(), tt.input)
		assert.Equal(len(wire), rec.Size(), tt.input)
	}

	var zero tlv.Record
	assert.Equal(tlv.ClassUniversal, zero.Class())
	assert.Equal("0x00", zero.TagString())
}
