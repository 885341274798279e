// Package testbed builds synthetic document streams for end-to-end tests.
//
// A Builder lays out a WordDocument stream (FIB followed by story text) and
// a table stream (DOP, Clx, then any structure added with Add), filling in
// the FIB pairs and story lengths to match.
package testbed

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/wippyai/msdoc"
	"github.com/wippyai/msdoc/fib"
	"github.com/wippyai/msdoc/piece"
)

// TextOffset is where story text starts in the WordDocument stream.
const TextOffset = 0x800

var le = binary.LittleEndian

type story struct {
	text  string
	utf16 bool
}

type structure struct {
	idx  fib.Index
	data []byte
}

// Builder assembles the streams of one document. The zero value is not
// usable; call New.
type Builder struct {
	// WhichTblStm selects 1Table instead of 0Table.
	WhichTblStm bool
	// Encrypted sets FibBase.fEncrypted.
	Encrypted bool
	// NFibNew is written to FibRgCswNew; zero omits FibRgCswNew.
	NFibNew uint16
	// CbRgFcLcb overrides the FibRgFcLcb size chosen from NFibNew.
	CbRgFcLcb uint16
	// DopSize overrides the DOP size chosen from NFibNew.
	DopSize int
	// Data is returned as the Data stream.
	Data []byte

	stories    [7]story
	structures []structure
}

// New returns a Builder for a Word 97 document.
func New() *Builder {
	return &Builder{}
}

// Story sets the text of one story. Compressed stories must be
// Windows-1252 representable.
func (b *Builder) Story(sd piece.SubDocument, text string, wide bool) *Builder {
	b.stories[sd] = story{text: text, utf16: wide}
	return b
}

// Add appends data to the table stream and points pair idx at it.
func (b *Builder) Add(idx fib.Index, data []byte) *Builder {
	b.structures = append(b.structures, structure{idx: idx, data: data})
	return b
}

func (b *Builder) subDocuments() piece.SubDocuments {
	var n [7]piece.CP
	for i, s := range b.stories {
		n[i] = piece.CP(len(utf16.Encode([]rune(s.text))))
	}
	return piece.SubDocuments{
		CcpText: n[piece.Main], CcpFtn: n[piece.Footnote], CcpHdd: n[piece.Header],
		CcpAtn: n[piece.Annotation], CcpEdn: n[piece.Endnote], CcpTxbx: n[piece.Textbox],
		CcpHdrTxbx: n[piece.HeaderTextbox],
	}
}

func (b *Builder) version() (cb uint16, cswNew uint16, dopSize int) {
	switch b.NFibNew {
	case 0:
		cb, dopSize = 0x5D, 500
	case 0x00D9:
		cb, cswNew, dopSize = 0x6C, 2, 544
	case 0x0101:
		cb, cswNew, dopSize = 0x88, 2, 594
	case 0x010C:
		cb, cswNew, dopSize = 0xA4, 2, 616
	default:
		cb, cswNew, dopSize = 0xB7, 5, 674
	}
	if b.CbRgFcLcb != 0 {
		cb = b.CbRgFcLcb
	}
	if b.DopSize != 0 {
		dopSize = b.DopSize
	}
	return cb, cswNew, dopSize
}

// Build returns the streams. The table stream is stored under the name the
// FIB selects.
func (b *Builder) Build() msdoc.Streams {
	cb, cswNew, dopSize := b.version()
	pairs := make(map[fib.Index]fib.FcLcb)

	var table []byte
	pairs[fib.IdxDop] = fib.FcLcb{Fc: 0, Lcb: uint32(dopSize)}
	table = append(table, Dop(dopSize)...)

	text, pcds := b.text()
	clx := Clx(pcds)
	pairs[fib.IdxClx] = fib.FcLcb{Fc: uint32(len(table)), Lcb: uint32(len(clx))}
	table = append(table, clx...)

	for _, s := range b.structures {
		pairs[s.idx] = fib.FcLcb{Fc: uint32(len(table)), Lcb: uint32(len(s.data))}
		table = append(table, s.data...)
	}

	word := b.fib(cb, cswNew, pairs)
	word = append(word, make([]byte, TextOffset-len(word))...)
	word = append(word, text...)

	s := msdoc.Streams{WordDocument: word, Data: b.Data}
	if b.WhichTblStm {
		s.Table1 = table
	} else {
		s.Table0 = table
	}
	return s
}

// Piece describes one Pcd for Clx.
type Piece struct {
	CP         uint32
	Offset     uint32
	Compressed bool
}

// text lays out one piece per non-empty story, plus the final paragraph
// mark when any auxiliary story exists.
func (b *Builder) text() ([]byte, []Piece) {
	var out []byte
	var pieces []Piece
	var cp uint32
	subdocs := b.subDocuments()
	for i, s := range b.stories {
		if s.text == "" {
			continue
		}
		txt := s.text
		if subdocs.HasAuxiliary() && lastStory(b.stories[:], i) {
			txt += "\r"
		}
		pieces = append(pieces, Piece{CP: cp, Offset: uint32(TextOffset + len(out)), Compressed: !s.utf16})
		out = append(out, encode(txt, s.utf16)...)
		cp += uint32(len(utf16.Encode([]rune(txt))))
	}
	return out, append(pieces, Piece{CP: cp})
}

func lastStory(stories []story, i int) bool {
	for _, s := range stories[i+1:] {
		if s.text != "" {
			return false
		}
	}
	return true
}

func encode(s string, wide bool) []byte {
	var out []byte
	if wide {
		for _, u := range utf16.Encode([]rune(s)) {
			out = le.AppendUint16(out, u)
		}
		return out
	}
	for _, r := range s {
		out = append(out, cp1252(r))
	}
	return out
}

func cp1252(r rune) byte {
	switch r {
	case '‘':
		return 0x91
	case '’':
		return 0x92
	case '“':
		return 0x93
	case '”':
		return 0x94
	case '–':
		return 0x96
	case '—':
		return 0x97
	}
	return byte(r)
}

// Clx encodes a Clx with no Prc. The last element of pieces carries only
// the final CP.
func Clx(pieces []Piece) []byte {
	positions := make([]uint32, len(pieces))
	var records [][]byte
	for i, p := range pieces {
		positions[i] = p.CP
		if i == len(pieces)-1 {
			break
		}
		fc := p.Offset
		if p.Compressed {
			fc = p.Offset*2 | 1<<30
		}
		rec := le.AppendUint16(nil, 0)
		rec = le.AppendUint32(rec, fc)
		rec = le.AppendUint16(rec, 0)
		records = append(records, rec)
	}
	body := PLC(positions, records...)
	out := []byte{0x02}
	out = le.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

// PLC encodes positions followed by records.
func PLC(positions []uint32, records ...[]byte) []byte {
	var out []byte
	for _, p := range positions {
		out = le.AppendUint32(out, p)
	}
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}

// U16 encodes one little-endian record word.
func U16(v uint16) []byte {
	return le.AppendUint16(nil, v)
}

// Sttb encodes an extended string table without extra data.
func Sttb(names ...string) []byte {
	out := le.AppendUint16(nil, 0xFFFF)
	out = le.AppendUint16(out, uint16(len(names)))
	out = le.AppendUint16(out, 0)
	for _, n := range names {
		units := utf16.Encode([]rune(n))
		out = le.AppendUint16(out, uint16(len(units)))
		for _, u := range units {
			out = le.AppendUint16(out, u)
		}
	}
	return out
}

// Dop returns a valid DOP of size bytes with default settings.
func Dop(size int) []byte {
	d := make([]byte, size)
	le.PutUint16(d[10:], 720)
	if size >= 674 {
		le.PutUint32(d[640:], 2<<4)
	}
	return d
}

func (b *Builder) fib(cb, cswNew uint16, pairs map[fib.Index]fib.FcLcb) []byte {
	out := make([]byte, 0, TextOffset)
	out = le.AppendUint16(out, fib.WIdent)
	out = le.AppendUint16(out, 0x00C1)
	out = le.AppendUint16(out, 0)
	out = le.AppendUint16(out, 0x0409)
	out = le.AppendUint16(out, 0)
	flags := uint16(1 << 12)
	if b.Encrypted {
		flags |= 1 << 8
	}
	if b.WhichTblStm {
		flags |= 1 << 9
	}
	out = le.AppendUint16(out, flags)
	out = le.AppendUint16(out, fib.NFibBackBF)
	out = le.AppendUint32(out, 0)
	out = append(out, 0, 0)
	out = append(out, make([]byte, 12)...)

	out = le.AppendUint16(out, fib.CswRgW97)
	out = append(out, make([]byte, 28)...)

	out = le.AppendUint16(out, fib.CslwRgLw97)
	s := b.subDocuments()
	lw := make([]uint32, 22)
	lw[0] = TextOffset
	for i, v := range []piece.CP{s.CcpText, s.CcpFtn, s.CcpHdd, 0, s.CcpAtn, s.CcpEdn, s.CcpTxbx, s.CcpHdrTxbx} {
		lw[3+i] = uint32(v)
	}
	for _, v := range lw {
		out = le.AppendUint32(out, v)
	}

	out = le.AppendUint16(out, cb)
	for i := 0; i < int(cb); i++ {
		p := pairs[fib.Index(i)]
		out = le.AppendUint32(out, p.Fc)
		out = le.AppendUint32(out, p.Lcb)
	}

	out = le.AppendUint16(out, cswNew)
	if cswNew != 0 {
		out = le.AppendUint16(out, b.NFibNew)
		out = append(out, make([]byte, 2*(int(cswNew)-1))...)
	}
	return out
}
