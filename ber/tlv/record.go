package tlv

import "fmt"

// Record is a decoded BER-TLV data object.
//
// Value is a view into the buffer passed to the decoder, not a copy.
// It remains valid only while the caller keeps that buffer alive and unmodified.
type Record struct {
	// Tag is the raw tag as encoded; a two-octet tag is combined big-endian.
	Tag uint16
	// TagSize is the number of octets in the tag field, 1 or 2.
	TagSize int
	// LengthValue is the decoded length field.
	LengthValue uint32
	// LengthSize is the number of octets in the length field.
	LengthSize int
	// ValueSize is the number of octets in the value field.
	ValueSize int

	// Offset is the position of the first tag octet in the input buffer.
	Offset int
	// ValueOffset is the position of the first value octet in the input buffer.
	ValueOffset int
	// Value is the value field.
	Value []byte
}

func (rec Record) firstTagOctet() byte {
	if rec.TagSize == 2 {
		return byte(rec.Tag >> 8)
	}
	return byte(rec.Tag)
}

// Class returns the object class.
func (rec Record) Class() Class {
	return Class((rec.firstTagOctet() & tagClassMask) >> tagClassShift)
}

// Kind returns whether the data object is primitive or constructed.
func (rec Record) Kind() Kind {
	if rec.firstTagOctet()&tagConstructedBit != 0 {
		return KindConstructed
	}
	return KindPrimitive
}

// IsConstructed returns true if the data object contains nested data objects.
func (rec Record) IsConstructed() bool {
	return rec.Kind() == KindConstructed
}

// HeaderSize returns the total size of tag and length fields.
func (rec Record) HeaderSize() int {
	return rec.TagSize + rec.LengthSize
}

// Size returns the encoded size of the whole data object.
func (rec Record) Size() int {
	return rec.HeaderSize() + rec.ValueSize
}

// TagString formats the tag as hexadecimal with two digits per tag octet.
func (rec Record) TagString() string {
	if rec.TagSize == 2 {
		return fmt.Sprintf("0x%04X", rec.Tag)
	}
	return fmt.Sprintf("0x%02X", rec.Tag)
}

func (rec Record) String() string {
	return fmt.Sprintf("%s (%s, %s) len=%d @%d", rec.TagString(), rec.Class(), rec.Kind(), rec.LengthValue, rec.Offset)
}
