package binary

import (
	"bytes"
	"testing"

	"github.com/wippyai/msdoc/errors"
)

func TestReaderFixedWidth(t *testing.T) {
	data := []byte{
		0x01,
		0x34, 0x12,
		0xFE, 0xFF,
		0x78, 0x56, 0x34, 0x12,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	r := NewReader(data)

	u8, err := r.ReadU8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("ReadU8 = %#x, %v", u8, err)
	}
	u16, err := r.ReadU16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadU16 = %#x, %v", u16, err)
	}
	i16, err := r.ReadI16()
	if err != nil || i16 != -2 {
		t.Fatalf("ReadI16 = %d, %v", i16, err)
	}
	u32, err := r.ReadU32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("ReadU32 = %#x, %v", u32, err)
	}
	i32, err := r.ReadI32()
	if err != nil || i32 != -1 {
		t.Fatalf("ReadI32 = %d, %v", i32, err)
	}
	u64, err := r.ReadU64()
	if err != nil || u64 != 0x0102030405060708 {
		t.Fatalf("ReadU64 = %#x, %v", u64, err)
	}
	if r.Position() != len(data) {
		t.Errorf("Position = %d, want %d", r.Position(), len(data))
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})
	if _, err := r.ReadU16(); err != nil {
		t.Fatalf("ReadU16: %v", err)
	}
	_, err := r.ReadU32()
	if err == nil {
		t.Fatal("expected error reading past end")
	}
	if errors.KindOf(err) != errors.KindTruncated {
		t.Errorf("kind = %q, want truncated", errors.KindOf(err))
	}
	if r.Position() != 2 {
		t.Errorf("failed read moved the cursor to %d", r.Position())
	}
}

func TestReaderReadBytesCopies(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	r := NewReader(data)
	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("ReadBytes = %v", got)
	}
	got[0] = 99
	if data[0] != 1 {
		t.Error("ReadBytes aliased the source buffer")
	}
	if _, err := r.ReadBytes(2); err == nil {
		t.Error("expected error for reading past end")
	}
}

func TestReaderReadU16s(t *testing.T) {
	r := NewReader([]byte{0x41, 0x00, 0x42, 0x00, 0x43})
	got, err := r.ReadU16s(2)
	if err != nil {
		t.Fatalf("ReadU16s: %v", err)
	}
	if len(got) != 2 || got[0] != 'A' || got[1] != 'B' {
		t.Errorf("ReadU16s = %v", got)
	}
	if _, err := r.ReadU16s(1); err == nil {
		t.Error("expected truncation")
	}
}

func TestReaderMarkRestore(t *testing.T) {
	r := NewReader([]byte{0x02, 0xAA, 0xBB})
	m := r.Mark()
	b, _ := r.ReadU8()
	if b != 0x02 {
		t.Fatalf("ReadU8 = %#x", b)
	}
	r.Restore(m)
	if r.Position() != 0 {
		t.Errorf("Restore left position at %d", r.Position())
	}

	var peeked uint8
	err := r.Peek(func(pr *Reader) error {
		var err error
		peeked, err = pr.ReadU8()
		return err
	})
	if err != nil || peeked != 0x02 {
		t.Fatalf("Peek = %#x, %v", peeked, err)
	}
	if r.Position() != 0 {
		t.Errorf("Peek advanced the cursor to %d", r.Position())
	}

	m = r.Mark()
	_ = r.Skip(3)
	if r.Consumed(m) != 3 {
		t.Errorf("Consumed = %d, want 3", r.Consumed(m))
	}
	if err := r.ExpectConsumed(m, 3, "x"); err != nil {
		t.Errorf("ExpectConsumed: %v", err)
	}
	err = r.ExpectConsumed(m, 4, "x")
	if errors.KindOf(err) != errors.KindLengthMismatch {
		t.Errorf("ExpectConsumed kind = %q", errors.KindOf(err))
	}
}

func TestReaderWindow(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	r := NewReader(data)

	w, err := r.Window(2, 4)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.Position() != 2 || w.Len() != 4 || w.Remaining() != 4 {
		t.Errorf("window pos=%d len=%d rem=%d", w.Position(), w.Len(), w.Remaining())
	}
	got, err := w.ReadBytes(4)
	if err != nil || !bytes.Equal(got, []byte{2, 3, 4, 5}) {
		t.Fatalf("window bytes = %v, %v", got, err)
	}
	if _, err := w.ReadU8(); err == nil {
		t.Error("read past window end should fail")
	}
	if err := w.Seek(1); err == nil {
		t.Error("seek before window start should fail")
	}

	if _, err := r.Window(6, 4); err == nil {
		t.Error("window past end should fail")
	}
	if _, err := r.Window(-1, 1); err == nil {
		t.Error("negative window offset should fail")
	}
	if _, err := w.Window(0, 2); err == nil {
		t.Error("nested window outside parent should fail")
	}
}

func TestNewReaderAt(t *testing.T) {
	r, err := NewReaderAt([]byte{1, 2, 3}, 2)
	if err != nil {
		t.Fatalf("NewReaderAt: %v", err)
	}
	b, err := r.ReadU8()
	if err != nil || b != 3 {
		t.Errorf("ReadU8 = %d, %v", b, err)
	}
	if _, err := NewReaderAt([]byte{1}, 2); err == nil {
		t.Error("offset past end should fail")
	}
}
