package tlv

import "fmt"

// Class is the object class, in bits 8-7 of the first tag octet.
type Class uint8

// Object classes.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "universal class"
	case ClassApplication:
		return "application class"
	case ClassContextSpecific:
		return "context-specific class"
	case ClassPrivate:
		return "private class"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Kind indicates whether a data object is primitive or constructed.
type Kind uint8

// Object kinds.
const (
	KindPrimitive Kind = iota
	KindConstructed
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindConstructed:
		return "constructed"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
