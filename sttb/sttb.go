// Package sttb decodes STTBs, the length-prefixed string tables the table
// stream uses for bookmark names, font names and similar lists.
package sttb

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/errors"
)

const fExtendUTF16 = 0xFFFF

// Sttb is a decoded string table. Extra holds the cbExtra bytes that follow
// each string, nil when cbExtra is zero.
type Sttb struct {
	Extended bool
	CbExtra  uint16
	Strings  []string
	Extra    [][]byte
}

// Len returns the number of strings.
func (s *Sttb) Len() int {
	return len(s.Strings)
}

// Decode reads an STTB of lcb bytes at r's position. Extended tables hold
// UTF-16LE strings with 16-bit counts; others hold Windows-1252 strings
// with 8-bit counts.
func Decode(r *binary.Reader, lcb uint32, name string) (*Sttb, error) {
	if uint64(lcb) > uint64(r.Remaining()) {
		return nil, errors.WithPath(errors.Truncated(errors.PhaseDecode, r.Position(), int(lcb), r.Remaining()), name)
	}
	w, err := r.Window(r.Position(), int(lcb))
	if err != nil {
		return nil, errors.WithPath(err, name)
	}
	m := w.Mark()
	s, err := decode(w)
	if err != nil {
		return nil, errors.WithPath(err, name)
	}
	if err := w.ExpectConsumed(m, int(lcb), name); err != nil {
		return nil, err
	}
	if err := r.Skip(int(lcb)); err != nil {
		return nil, err
	}
	return s, nil
}

func decode(r *binary.Reader) (*Sttb, error) {
	s := &Sttb{}
	first, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	var count uint16
	if first == fExtendUTF16 {
		s.Extended = true
		if count, err = r.ReadU16(); err != nil {
			return nil, err
		}
	} else {
		count = first
	}
	if s.CbExtra, err = r.ReadU16(); err != nil {
		return nil, err
	}

	s.Strings = make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		str, err := s.readString(r)
		if err != nil {
			return nil, err
		}
		s.Strings = append(s.Strings, str)
		if s.CbExtra == 0 {
			continue
		}
		extra, err := r.ReadBytes(int(s.CbExtra))
		if err != nil {
			return nil, err
		}
		s.Extra = append(s.Extra, extra)
	}
	return s, nil
}

func (s *Sttb) readString(r *binary.Reader) (string, error) {
	if !s.Extended {
		cch, err := r.ReadU8()
		if err != nil {
			return "", err
		}
		raw, err := r.ReadBytes(int(cch))
		if err != nil {
			return "", err
		}
		return charmap.Windows1252.NewDecoder().String(string(raw))
	}
	cch, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	raw, err := r.ReadBytes(2 * int(cch))
	if err != nil {
		return "", err
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().String(string(raw))
}
