// Package bitfield extracts packed flag and count fields from a single
// fixed-width integer, least significant bit first.
//
// Field widths come from the record layout, so the fields of one word must
// add up to its width exactly. Reading more bits than remain, or calling Done
// with bits left over, is a programming error and panics rather than
// returning an error.
//
//	flags, err := bitfield.Read16(r)
//	fDot := flags.ReadBit()
//	cQuickSaves := flags.ReadBits(4)
//	reserved := flags.ReadBits(11)
//	flags.Done()
package bitfield

import (
	"fmt"
	"math/bits"

	"github.com/wippyai/msdoc/binary"
)

// Unsigned is the set of integer types a Reader can walk.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Reader is a cursor over the bits of one integer.
type Reader[T Unsigned] struct {
	value    T
	width    int
	consumed int
}

// New returns a Reader positioned at bit 0 of v.
func New[T Unsigned](v T) *Reader[T] {
	var zero T
	return &Reader[T]{value: v, width: bits.OnesCount64(uint64(^zero))}
}

// Width returns the bit width of the underlying integer.
func (b *Reader[T]) Width() int {
	return b.width
}

// Remaining returns the number of bits not yet consumed.
func (b *Reader[T]) Remaining() int {
	return b.width - b.consumed
}

// Value returns the integer the Reader was built from.
func (b *Reader[T]) Value() T {
	return b.value
}

// ReadBit consumes one bit.
func (b *Reader[T]) ReadBit() bool {
	return b.ReadBits(1) != 0
}

// ReadBits consumes count bits and returns them right-aligned.
func (b *Reader[T]) ReadBits(count int) T {
	if count < 0 || count > b.Remaining() {
		panic(fmt.Sprintf("bitfield: read of %d bits with %d of %d remaining", count, b.Remaining(), b.width))
	}
	if count == 0 {
		return 0
	}
	mask := ^uint64(0)
	if count < 64 {
		mask = (uint64(1) << count) - 1
	}
	v := (uint64(b.value) >> b.consumed) & mask
	b.consumed += count
	return T(v)
}

// ReadRemainingBits consumes and returns every bit not yet read.
func (b *Reader[T]) ReadRemainingBits() T {
	return b.ReadBits(b.Remaining())
}

// Done asserts that every bit of the integer has been consumed.
func (b *Reader[T]) Done() {
	if n := b.Remaining(); n != 0 {
		panic(fmt.Sprintf("bitfield: %d of %d bits left unread", n, b.width))
	}
}

// Read8 reads one byte from r and wraps it.
func Read8(r *binary.Reader) (*Reader[uint8], error) {
	v, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// Read16 reads a little-endian uint16 from r and wraps it.
func Read16(r *binary.Reader) (*Reader[uint16], error) {
	v, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// Read32 reads a little-endian uint32 from r and wraps it.
func Read32(r *binary.Reader) (*Reader[uint32], error) {
	v, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// Read64 reads a little-endian uint64 from r and wraps it.
func Read64(r *binary.Reader) (*Reader[uint64], error) {
	v, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return New(v), nil
}
