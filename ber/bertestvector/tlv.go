// Package bertestvector contains test vectors for BER-TLV decoding.
//
// Inputs are hexadecimal strings for testenv.BytesFromHex.
// Octets are upper case; lower case words are annotations.
package bertestvector

import (
	"io"

	"github.com/usnistgov/bertlv/ber/tlv"
)

// DecodeTests contains test vectors for decoding a single data object.
var DecodeTests = []struct {
	Input       string
	SkipGarbage bool
	Err         error
	Required    uint64 // for SizeError
	Available   uint64 // for SizeError

	Skipped     int
	Tag         uint16
	TagSize     int
	LengthValue uint32
	LengthSize  int
	Value       string
	Class       tlv.Class
	Kind        tlv.Kind
}{
	{Input: "", Err: io.EOF},
	{Input: "81", Err: tlv.ErrHeaderSize, Required: 2, Available: 1},
	{Input: "9F", Err: tlv.ErrHeaderSize, Required: 3, Available: 1},
	{Input: "9F02", Err: tlv.ErrHeaderSize, Required: 3, Available: 2},
	{Input: "81 82 01", Err: tlv.ErrHeaderSize, Required: 4, Available: 3}, // missing long form octet
	{Input: "81 8105 AA", Err: tlv.ErrValueSize, Required: 8, Available: 4},
	{Input: "81 03 AABB", Err: tlv.ErrValueSize, Required: 5, Available: 4},
	{Input: "81 85 0000000001 AA", Err: tlv.ErrLengthSize},
	{Input: "FFFFFF", SkipGarbage: true, Err: io.EOF, Skipped: 3},
	{Input: "0000", SkipGarbage: true, Err: io.EOF, Skipped: 2},
	{Input: "00 00", Tag: 0x00, TagSize: 1, LengthValue: 0, LengthSize: 1,
		Class: tlv.ClassUniversal, Kind: tlv.KindPrimitive}, // filler is a data object unless skipped
	{Input: "9F02 06 000000000100", Tag: 0x9F02, TagSize: 2, LengthValue: 6, LengthSize: 1, Value: "000000000100",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive},
	{Input: "00FF 9F02 06 000000000100 FF", SkipGarbage: true, Skipped: 2,
		Tag: 0x9F02, TagSize: 2, LengthValue: 6, LengthSize: 1, Value: "000000000100",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive},
	{Input: "70 04 9F020164", Tag: 0x70, TagSize: 1, LengthValue: 4, LengthSize: 1, Value: "9F020164",
		Class: tlv.ClassApplication, Kind: tlv.KindConstructed},
	{Input: "BF0C 05 9F4D020B0A", Tag: 0xBF0C, TagSize: 2, LengthValue: 5, LengthSize: 1, Value: "9F4D020B0A",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindConstructed},
	{Input: "1F81 01 EE", Tag: 0x1F81, TagSize: 2, LengthValue: 1, LengthSize: 1, Value: "EE",
		Class: tlv.ClassUniversal, Kind: tlv.KindPrimitive}, // continuation bit in second tag octet is ignored
	{Input: "C3 00", Tag: 0xC3, TagSize: 1, LengthValue: 0, LengthSize: 1,
		Class: tlv.ClassPrivate, Kind: tlv.KindPrimitive},
	{Input: "81 80", Tag: 0x81, TagSize: 1, LengthValue: 0, LengthSize: 1,
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive}, // long form with zero octets
	{Input: "81 8101 AA", Tag: 0x81, TagSize: 1, LengthValue: 1, LengthSize: 2, Value: "AA",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive},
	{Input: "81 820001 AA", Tag: 0x81, TagSize: 1, LengthValue: 1, LengthSize: 3, Value: "AA",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive},
	{Input: "81 83000001 AA", Tag: 0x81, TagSize: 1, LengthValue: 1, LengthSize: 4, Value: "AA",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive},
	{Input: "81 8400000001 AA", Tag: 0x81, TagSize: 1, LengthValue: 1, LengthSize: 5, Value: "AA",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive},
	{Input: "81 03 00FF00 00", Tag: 0x81, TagSize: 1, LengthValue: 3, LengthSize: 1, Value: "00FF00",
		Class: tlv.ClassContextSpecific, Kind: tlv.KindPrimitive}, // filler octets within value are preserved
}

// WalkEntry describes an expected entry in WalkTests.
type WalkEntry struct {
	Depth  int
	Tag    uint16
	Offset int
	Value  string // only checked for primitive data objects
}

// WalkTests contains test vectors for walking a buffer.
var WalkTests = []struct {
	Input    string
	MaxDepth int
	Err      error
	Entries  []WalkEntry
}{
	{Input: ""},
	{Input: "FFFFFF"},
	{Input: "9F02 06 000000000100", Entries: []WalkEntry{
		{0, 0x9F02, 0, "000000000100"},
	}},
	{Input: "70 04 9F02 01 64 00", Entries: []WalkEntry{
		{0, 0x70, 0, ""},
		{1, 0x9F02, 2, "64"},
	}},
	{Input: "00FF 81 01 AA 0000 82 01 BB FF", Entries: []WalkEntry{
		{0, 0x81, 2, "AA"},
		{0, 0x82, 7, "BB"},
	}},
	{Input: "E1 04 0000 81 00", Entries: []WalkEntry{ // no filler skipping inside constructed
		{0, 0xE1, 0, ""},
		{1, 0x00, 2, ""},
		{1, 0x81, 4, ""},
	}},
	{Input: "E1 07 E2 05 E3 03 81 01 AA 82 01 BB", Entries: []WalkEntry{ // innermost closes three ancestors
		{0, 0xE1, 0, ""},
		{1, 0xE2, 2, ""},
		{2, 0xE3, 4, ""},
		{3, 0x81, 6, "AA"},
		{0, 0x82, 9, "BB"},
	}},
	{Input: "E1 05 E2 00 81 01 AA 82 00", Entries: []WalkEntry{ // empty constructed
		{0, 0xE1, 0, ""},
		{1, 0xE2, 2, ""},
		{1, 0x81, 4, "AA"},
		{0, 0x82, 7, ""},
	}},
	{Input: "6F 1A 84 07 A0000000031010 A5 0F 50 0A 56495341204445424954 87 01 01", Entries: []WalkEntry{
		{0, 0x6F, 0, ""},
		{1, 0x84, 2, "A0000000031010"},
		{1, 0xA5, 11, ""},
		{2, 0x50, 13, "56495341204445424954"},
		{2, 0x87, 25, "01"},
	}},
	{Input: "77 0E 82 02 1980 94 08 0801010010010301", Entries: []WalkEntry{
		{0, 0x77, 0, ""},
		{1, 0x82, 2, "1980"},
		{1, 0x94, 6, "0801010010010301"},
	}},
	{Input: "BF0C 05 9F4D 02 0B0A", Entries: []WalkEntry{
		{0, 0xBF0C, 0, ""},
		{1, 0x9F4D, 3, "0B0A"},
	}},
	{Input: "E1 03 81 05 AABBCCDDEE", Err: tlv.ErrValueSize, Entries: []WalkEntry{ // child overruns parent
		{0, 0xE1, 0, ""},
	}},
	{Input: "81 01 AA 9F", Err: tlv.ErrHeaderSize, Entries: []WalkEntry{
		{0, 0x81, 0, "AA"},
	}},
	{Input: "E1 0A E1 08 E1 06 E1 04 E1 02 E1 00", Err: tlv.ErrNestingLimit, Entries: []WalkEntry{
		{0, 0xE1, 0, ""},
		{1, 0xE1, 2, ""},
		{2, 0xE1, 4, ""},
		{3, 0xE1, 6, ""},
		{4, 0xE1, 8, ""},
	}},
	{Input: "E1 0A E1 08 E1 06 E1 04 E1 02 E1 00", MaxDepth: 6, Entries: []WalkEntry{
		{0, 0xE1, 0, ""},
		{1, 0xE1, 2, ""},
		{2, 0xE1, 4, ""},
		{3, 0xE1, 6, ""},
		{4, 0xE1, 8, ""},
		{5, 0xE1, 10, ""},
	}},
	{Input: "E1 02 E1 00", MaxDepth: 1, Err: tlv.ErrNestingLimit, Entries: []WalkEntry{
		{0, 0xE1, 0, ""},
	}},
}

// RenderTests contains test vectors for text rendering with default settings.
var RenderTests = []struct {
	Input  string
	Err    error
	Output string
}{
	{Input: "", Output: ""},
	{Input: "FFFFFF", Output: ""},
	{Input: "9F02 06 000000000100", Output: "" +
		"TAG - 0x9F02 (context-specific class, primitive)\n" +
		"LEN - 6 bytes\n" +
		"VAL - 0x00 0x00 0x00 0x00 0x01 0x00\n" +
		"\n"},
	{Input: "70 04 9F02 01 64 00", Output: "" +
		"TAG - 0x70 (application class, constructed)\n" +
		"LEN - 4 bytes\n" +
		"\n" +
		"  TAG - 0x9F02 (context-specific class, primitive)\n" +
		"  LEN - 1 bytes\n" +
		"  VAL - 0x64\n" +
		"\n"},
	{Input: "E1 07 E2 05 E3 03 81 01 AA 82 00", Output: "" +
		"TAG - 0xE1 (private class, constructed)\n" +
		"LEN - 7 bytes\n" +
		"\n" +
		"  TAG - 0xE2 (private class, constructed)\n" +
		"  LEN - 5 bytes\n" +
		"\n" +
		"    TAG - 0xE3 (private class, constructed)\n" +
		"    LEN - 3 bytes\n" +
		"\n" +
		"      TAG - 0x81 (context-specific class, primitive)\n" +
		"      LEN - 1 bytes\n" +
		"      VAL - 0xAA\n" +
		"\n" +
		"TAG - 0x82 (context-specific class, primitive)\n" +
		"LEN - 0 bytes\n" +
		"\n"},
	{Input: "81 01 AA 81 8105 AA", Err: tlv.ErrValueSize, Output: "" +
		"TAG - 0x81 (context-specific class, primitive)\n" +
		"LEN - 1 bytes\n" +
		"VAL - 0xAA\n" +
		"\n"},
}
