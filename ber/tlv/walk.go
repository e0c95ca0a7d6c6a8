package tlv

import (
	"errors"
	"io"

	"github.com/pkg/math"
)

// Nesting depth limits.
const (
	DefaultMaxDepth = 5
	MaxDepthLimit   = 64
)

// WalkerConfig contains Walker settings.
type WalkerConfig struct {
	// MaxDepth is the maximum number of simultaneously open constructed data objects.
	// Default is DefaultMaxDepth. It is capped at MaxDepthLimit.
	MaxDepth int `json:"maxDepth,omitempty"`
}

func (cfg *WalkerConfig) applyDefaults() {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	cfg.MaxDepth = math.MinInt(cfg.MaxDepth, MaxDepthLimit)
}

// Entry is a data object found by Walker.
type Entry struct {
	// Depth is the number of constructed data objects enclosing this one.
	Depth int
	Record
}

// Walker iterates over data objects in a buffer, descending into constructed data objects.
//
//	w := tlv.NewWalker(wire, tlv.WalkerConfig{})
//	for w.Next() {
//		entry := w.Entry()
//	}
//	e := w.Err()
type Walker struct {
	wire      []byte
	pos       int
	remaining int
	frames    []int // unconsumed value octets of each open constructed data object
	entry     Entry
	err       error
	done      bool
}

// NewWalker creates a Walker.
// wire must not be modified while the Walker or any Entry it returned is in use.
func NewWalker(wire []byte, cfg WalkerConfig) *Walker {
	cfg.applyDefaults()
	return &Walker{
		wire:      wire,
		remaining: len(wire),
		frames:    make([]int, 0, cfg.MaxDepth),
	}
}

// Next advances to the next data object.
// It returns false when the input is exhausted or an error occurred.
func (w *Walker) Next() bool {
	if w.done || w.remaining == 0 {
		w.done = true
		return false
	}

	region, outside := w.remaining, len(w.frames) == 0
	if !outside {
		region = w.frames[len(w.frames)-1]
	}

	rec, skipped, e := DecodeOne(w.wire, w.pos, region, outside)
	w.pos += skipped
	w.remaining -= skipped
	switch {
	case errors.Is(e, io.EOF):
		w.done = true
		return false
	case e != nil:
		return w.fail(e)
	}

	depth := len(w.frames)
	if rec.IsConstructed() {
		if depth == cap(w.frames) {
			return w.fail(&NestingError{Offset: rec.Offset, Depth: depth + 1, Limit: cap(w.frames)})
		}
		w.consume(rec.HeaderSize(), rec.Size())
		w.frames = append(w.frames, rec.ValueSize)
	} else {
		w.consume(rec.Size(), rec.Size())
	}
	w.closeExhausted()

	w.entry = Entry{Depth: depth, Record: rec}
	return true
}

// consume advances the read position and debits the innermost open constructed data object.
func (w *Walker) consume(advance, debit int) {
	w.pos += advance
	w.remaining -= advance
	if n := len(w.frames); n > 0 {
		w.frames[n-1] -= debit
	}
}

// closeExhausted closes every innermost constructed data object that has no unconsumed octets.
// A data object ending at the last octet of several ancestors closes all of them at once.
func (w *Walker) closeExhausted() {
	for n := len(w.frames); n > 0 && w.frames[n-1] == 0; n-- {
		w.frames = w.frames[:n-1]
	}
}

func (w *Walker) fail(e error) bool {
	w.err = e
	w.done = true
	return false
}

// Entry returns the current data object.
func (w *Walker) Entry() Entry {
	return w.entry
}

// Depth returns the number of currently open constructed data objects.
func (w *Walker) Depth() int {
	return len(w.frames)
}

// Offset returns the read position in the input buffer.
func (w *Walker) Offset() int {
	return w.pos
}

// Err returns the error that stopped the walk, or nil if the input was fully consumed.
func (w *Walker) Err() error {
	return w.err
}

// WalkAll returns all data objects in wire.
// If an error occurs, entries decoded before the error are returned along with the error.
func WalkAll(wire []byte, cfg WalkerConfig) (entries []Entry, e error) {
	w := NewWalker(wire, cfg)
	for w.Next() {
		entries = append(entries, w.Entry())
	}
	return entries, w.Err()
}
