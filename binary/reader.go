package binary

import (
	"encoding/binary"

	"github.com/wippyai/msdoc/errors"
)

// Reader is a position-tracking little-endian cursor over a byte slice.
type Reader struct {
	buf   []byte
	start int
	end   int
	pos   int
}

// Mark is a saved cursor position.
type Mark struct {
	pos int
}

// NewReader creates a Reader over the whole of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, end: len(buf)}
}

// NewReaderAt creates a Reader over buf positioned at offset.
func NewReaderAt(buf []byte, offset int) (*Reader, error) {
	if offset < 0 || offset > len(buf) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, []string{"offset"}, offset, len(buf))
	}
	return &Reader{buf: buf, end: len(buf), pos: offset}, nil
}

// Window returns a Reader restricted to [offset, offset+length) of the same
// buffer. The window must lie inside the current Reader's bounds.
func (r *Reader) Window(offset, length int) (*Reader, error) {
	if offset < r.start || length < 0 || offset > r.end || length > r.end-offset {
		return nil, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			At(offset).
			Value(length).
			Detail("window [%d, %d) outside stream [%d, %d)", offset, offset+length, r.start, r.end).
			Build()
	}
	return &Reader{buf: r.buf, start: offset, end: offset + length, pos: offset}, nil
}

// Position returns the current absolute byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the number of bytes between the window start and end.
func (r *Reader) Len() int {
	return r.end - r.start
}

// Remaining returns the number of unread bytes in the window.
func (r *Reader) Remaining() int {
	return r.end - r.pos
}

// Seek moves the cursor to an absolute position inside the window.
func (r *Reader) Seek(pos int) error {
	if pos < r.start || pos > r.end {
		return errors.OutOfBounds(errors.PhaseDecode, []string{"seek"}, pos, r.end)
	}
	r.pos = pos
	return nil
}

// Mark saves the current position.
func (r *Reader) Mark() Mark {
	return Mark{pos: r.pos}
}

// Restore returns the cursor to a saved position.
func (r *Reader) Restore(m Mark) {
	r.pos = m.pos
}

// Consumed returns the number of bytes read since m.
func (r *Reader) Consumed(m Mark) int {
	return r.pos - m.pos
}

// Peek runs fn and restores the cursor afterwards, whatever fn returns.
func (r *Reader) Peek(fn func(*Reader) error) error {
	m := r.Mark()
	defer r.Restore(m)
	return fn(r)
}

func (r *Reader) need(n int) error {
	if n < 0 || r.end-r.pos < n {
		return errors.Truncated(errors.PhaseDecode, r.pos, n, r.end-r.pos)
	}
	return nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadI16 reads a little-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadBytes reads exactly n bytes. The returned slice is a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadU16s reads n consecutive little-endian uint16 values.
func (r *Reader) ReadU16s(n int) ([]uint16, error) {
	if err := r.need(n * 2); err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(r.buf[r.pos:])
		r.pos += 2
	}
	return out, nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// ExpectConsumed fails with a length mismatch unless exactly declared bytes
// were read since m.
func (r *Reader) ExpectConsumed(m Mark, declared int, path ...string) error {
	if got := r.Consumed(m); got != declared {
		e := errors.LengthMismatch(errors.PhaseDecode, path, got, declared)
		e.Offset, e.HasOffset = m.pos, true
		return e
	}
	return nil
}
