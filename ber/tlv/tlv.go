// Package tlv implements BER-TLV decoding as used in smart card and EMV data objects.
//
// Decoding is tag-agnostic: a data object is described by its raw tag, its length field,
// and a view into the input buffer holding its value.
// Tags are limited to two octets.
package tlv

// Bit fields of the tag and length octets.
const (
	tagClassMask      = 0xC0
	tagClassShift     = 6
	tagConstructedBit = 0x20
	tagNumberMask     = 0x1F // all bits set means a subsequent tag octet follows

	lengthLongForm  = 0x80
	maxLengthOctets = 4
)

// MinHeaderSize is the smallest possible TLV header: one tag octet and one length octet.
const MinHeaderSize = 2

func isFiller(b byte) bool {
	return b == 0x00 || b == 0xFF
}

func tagSize(first byte) int {
	if first&tagNumberMask == tagNumberMask {
		return 2
	}
	return 1
}
