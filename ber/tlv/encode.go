package tlv

import "math"

type fieldType uint8

const (
	fieldTypeEmpty fieldType = iota
	fieldTypeError
	fieldTypeBytes
	fieldTypeTLV
)

// Field is an encodable field.
// Zero value encodes to nothing.
type Field struct {
	typ    fieldType
	tag    uint16
	object any
}

// Encode appends to the byte slice.
// Returns modified slice and error.
func (f Field) Encode(b []byte) ([]byte, error) {
	switch f.typ {
	case fieldTypeEmpty:
		return b, nil
	case fieldTypeError:
		return nil, f.object.(error)
	case fieldTypeBytes:
		return append(b, f.object.([]byte)...), nil
	case fieldTypeTLV:
		return f.encodeTLV(b)
	default:
		panic(f.typ)
	}
}

func (f Field) encodeTLV(b []byte) (o []byte, e error) {
	subs := f.object.([]Field)
	var value []byte
	for _, sub := range subs {
		if value, e = sub.Encode(value); e != nil {
			return nil, e
		}
	}
	if uint64(len(value)) > math.MaxUint32 {
		return nil, ErrLengthSize
	}

	b = appendTag(b, f.tag)
	b = AppendLength(b, uint32(len(value)))
	return append(b, value...), nil
}

// FieldError creates a Field that generates an error.
func FieldError(e error) Field {
	if e == nil {
		e = ErrErrorField
	}
	return Field{
		typ:    fieldTypeError,
		object: e,
	}
}

// Bytes creates a Field that encodes to given bytes.
// It can express filler octets or deliberately malformed input.
func Bytes(b []byte) Field {
	return Field{
		typ:    fieldTypeBytes,
		object: b,
	}
}

// TLV creates a Field that encodes to a data object from tag and value Fields.
//
// A tag above 0xFF is encoded in two octets and its first octet must have the low five bits set.
// A one-octet tag must not have the low five bits set and must not be zero.
// Whether the data object is constructed is determined by the tag itself.
func TLV(tag uint16, values ...Field) Field {
	if !isEncodableTag(tag) {
		return FieldError(ErrTag)
	}
	return Field{
		typ:    fieldTypeTLV,
		tag:    tag,
		object: values,
	}
}

// TLVBytes creates a Field that encodes to a data object from tag and value byte slice.
func TLVBytes(tag uint16, value []byte) Field {
	return TLV(tag, Bytes(value))
}

func isEncodableTag(tag uint16) bool {
	if tag > math.MaxUint8 {
		return tagSize(byte(tag>>8)) == 2
	}
	return tag != 0 && tagSize(byte(tag)) == 1
}

func appendTag(b []byte, tag uint16) []byte {
	if tag > math.MaxUint8 {
		return append(b, byte(tag>>8), byte(tag))
	}
	return append(b, byte(tag))
}

// LengthSize returns the encoded size of a length field in its shortest form.
func LengthSize(n uint32) int {
	switch {
	case n < lengthLongForm:
		return 1
	case n <= math.MaxUint8:
		return 2
	case n <= math.MaxUint16:
		return 3
	case n <= 1<<24-1:
		return 4
	default:
		return 5
	}
}

// AppendLength appends a length field in its shortest form.
func AppendLength(b []byte, n uint32) []byte {
	size := LengthSize(n)
	if size == 1 {
		return append(b, byte(n))
	}
	b = append(b, lengthLongForm|byte(size-1))
	for i := size - 2; i >= 0; i-- {
		b = append(b, byte(n>>(8*i)))
	}
	return b
}

// Encode encodes a sequence of Fields.
func Encode(fields ...Field) (wire []byte, e error) {
	for _, f := range fields {
		if wire, e = f.Encode(wire); e != nil {
			return nil, e
		}
	}
	return wire, nil
}
