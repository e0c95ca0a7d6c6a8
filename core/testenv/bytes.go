package testenv

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"

	"github.com/stretchr/testify/assert"
)

// RandBytes returns n non-crypto-safe random bytes.
func RandBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

// BytesFromHex converts an annotated hexadecimal string to a byte slice.
//
// Octets must be written in upper case.
// Every other character, including lower case letters, is an annotation and is stripped:
//
//	"tag=9F02 len=06 value=000000000100"
//
// Annotations must not contain digits.
// Malformed input causes panic.
func BytesFromHex(input string) []byte {
	var b strings.Builder
	for _, ch := range input {
		if ('0' <= ch && ch <= '9') || ('A' <= ch && ch <= 'F') {
			b.WriteRune(ch)
		}
	}
	decoded, e := hex.DecodeString(b.String())
	if e != nil {
		panic(fmt.Errorf("BytesFromHex(%q): %w", input, e))
	}
	return decoded
}

// BytesEqual asserts that actual bytes equals expected bytes.
// It considers nil slice and zero-length slice to be the same.
func BytesEqual(a *assert.Assertions, expected, actual []byte, msgAndArgs ...any) bool {
	if len(expected) == 0 && len(actual) == 0 {
		return true
	}
	return a.Equal(expected, actual, msgAndArgs...)
}
