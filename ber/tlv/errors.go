package tlv

import (
	"errors"
	"fmt"
)

// Error conditions.
var (
	ErrRegion       = errors.New("decode region outside of buffer")
	ErrHeaderSize   = errors.New("insufficient size for TLV header")
	ErrValueSize    = errors.New("insufficient size for TLV value")
	ErrLengthSize   = errors.New("TLV-LENGTH has too many octets")
	ErrNestingLimit = errors.New("nesting limit exceeded")
	ErrTag          = errors.New("TLV-TAG not encodable")
	ErrErrorField   = errors.New("Error(nil) field")
)

// SizeError indicates the decode region is shorter than a data object requires.
// It wraps ErrHeaderSize or ErrValueSize.
type SizeError struct {
	Err       error
	Offset    int
	Required  uint64
	Available uint64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v at offset %d: required %d, available %d", e.Err, e.Offset, e.Required, e.Available)
}

// Unwrap returns the underlying error.
func (e *SizeError) Unwrap() error {
	return e.Err
}

// NestingError indicates a constructed data object would exceed the nesting limit.
// It wraps ErrNestingLimit.
type NestingError struct {
	Offset int
	Depth  int
	Limit  int
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("%v at offset %d: depth %d, limit %d", ErrNestingLimit, e.Offset, e.Depth, e.Limit)
}

// Unwrap returns ErrNestingLimit.
func (e *NestingError) Unwrap() error {
	return ErrNestingLimit
}
