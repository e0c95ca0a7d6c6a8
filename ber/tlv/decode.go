package tlv

import (
	"fmt"
	"io"
)

// DecodeOne extracts the first data object in wire[offset:offset+size].
//
// If skipGarbage is true, 0x00 and 0xFF filler octets before the data object are skipped;
// skipped reports how many. Filler is only permitted outside constructed data objects,
// so the caller must pass false while decoding inside a constructed value.
//
// It returns io.EOF when the region is empty or contains only filler.
// Other errors are *SizeError, ErrLengthSize, or ErrRegion.
// On error, nothing other than filler is consumed.
func DecodeOne(wire []byte, offset, size int, skipGarbage bool) (rec Record, skipped int, e error) {
	if offset < 0 || size < 0 || offset > len(wire) || size > len(wire)-offset {
		return Record{}, 0, ErrRegion
	}

	if skipGarbage {
		for skipped < size && isFiller(wire[offset+skipped]) {
			skipped++
		}
		offset += skipped
		size -= skipped
	}
	if size == 0 {
		return Record{}, skipped, io.EOF
	}
	d := wire[offset : offset+size]

	rec.Offset = offset
	rec.TagSize = tagSize(d[0])
	if minHeader := MinHeaderSize + rec.TagSize - 1; size < minHeader {
		return Record{}, skipped, &SizeError{Err: ErrHeaderSize, Offset: offset, Required: uint64(minHeader), Available: uint64(size)}
	}

	rec.Tag = uint16(d[0])
	if rec.TagSize == 2 {
		rec.Tag = rec.Tag<<8 | uint16(d[1])
	}

	if e = rec.decodeLength(d); e != nil {
		return Record{}, skipped, e
	}

	total := uint64(rec.HeaderSize()) + uint64(rec.LengthValue)
	if uint64(size) < total {
		return Record{}, skipped, &SizeError{Err: ErrValueSize, Offset: offset, Required: total, Available: uint64(size)}
	}

	rec.ValueSize = int(rec.LengthValue)
	rec.ValueOffset = offset + rec.HeaderSize()
	rec.Value = wire[rec.ValueOffset : rec.ValueOffset+rec.ValueSize : rec.ValueOffset+rec.ValueSize]
	return rec, skipped, nil
}

// decodeLength decodes the length field that follows the tag field in d.
func (rec *Record) decodeLength(d []byte) error {
	first := d[rec.TagSize]
	if first&lengthLongForm == 0 {
		rec.LengthSize = 1
		rec.LengthValue = uint32(first)
		return nil
	}

	n := int(first &^ lengthLongForm)
	if n > maxLengthOctets {
		return fmt.Errorf("%w: %d octets at offset %d", ErrLengthSize, n, rec.Offset)
	}
	if need := rec.TagSize + 1 + n; len(d) < need {
		return &SizeError{Err: ErrHeaderSize, Offset: rec.Offset, Required: uint64(need), Available: uint64(len(d))}
	}

	rec.LengthSize = 1 + n
	rec.LengthValue = 0
	for _, b := range d[rec.TagSize+1 : rec.TagSize+1+n] {
		rec.LengthValue = rec.LengthValue<<8 | uint32(b)
	}
	return nil
}
