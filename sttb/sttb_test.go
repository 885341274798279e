package sttb

import (
	"encoding/binary"
	"reflect"
	"testing"

	bin "github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/errors"
)

func extended(cbExtra uint16, extra []byte, names ...string) []byte {
	le := binary.LittleEndian
	b := le.AppendUint16(nil, 0xFFFF)
	b = le.AppendUint16(b, uint16(len(names)))
	b = le.AppendUint16(b, cbExtra)
	for _, n := range names {
		units := []rune(n)
		b = le.AppendUint16(b, uint16(len(units)))
		for _, u := range units {
			b = le.AppendUint16(b, uint16(u))
		}
		b = append(b, extra...)
	}
	return b
}

func TestDecodeExtended(t *testing.T) {
	data := extended(0, nil, "_Toc1", "Überblick")
	s, err := Decode(bin.NewReader(data), uint32(len(data)), "SttbfBkmk")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !s.Extended || s.Len() != 2 || s.Extra != nil {
		t.Fatalf("sttb = %+v", s)
	}
	if !reflect.DeepEqual(s.Strings, []string{"_Toc1", "Überblick"}) {
		t.Errorf("strings = %q", s.Strings)
	}
}

func TestDecodeExtra(t *testing.T) {
	data := extended(2, []byte{0xAB, 0xCD}, "a", "b")
	s, err := Decode(bin.NewReader(data), uint32(len(data)), "Sttb")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(s.Extra) != 2 || !reflect.DeepEqual(s.Extra[1], []byte{0xAB, 0xCD}) {
		t.Errorf("extra = %v", s.Extra)
	}
}

func TestDecodeSingleByte(t *testing.T) {
	data := []byte{0x01, 0x00, 0x00, 0x00, 0x04, 'c', 'a', 'f', 0xE9}
	s, err := Decode(bin.NewReader(data), uint32(len(data)), "Sttb")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Extended || s.Strings[0] != "café" {
		t.Errorf("sttb = %+v", s)
	}
}

func TestDecodeLengthErrors(t *testing.T) {
	data := extended(0, nil, "abc")
	if _, err := Decode(bin.NewReader(data), uint32(len(data)+2), "Sttb"); errors.KindOf(err) != errors.KindTruncated {
		t.Errorf("lcb past stream kind = %q", errors.KindOf(err))
	}
	padded := append(append([]byte(nil), data...), 0, 0)
	if _, err := Decode(bin.NewReader(padded), uint32(len(padded)), "Sttb"); errors.KindOf(err) != errors.KindLengthMismatch {
		t.Errorf("trailing bytes kind = %q", errors.KindOf(err))
	}
	if _, err := Decode(bin.NewReader(data[:len(data)-1]), uint32(len(data)-1), "Sttb"); errors.KindOf(err) != errors.KindTruncated {
		t.Errorf("short string kind = %q", errors.KindOf(err))
	}
}
