package piece

import (
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/plc"
)

// Encoding is the storage form of the characters of a piece.
type Encoding int

const (
	// Compressed pieces store one Windows-1252 byte per character.
	Compressed Encoding = iota
	// UTF16 pieces store one UTF-16LE code unit per character.
	UTF16
)

func (e Encoding) String() string {
	if e == Compressed {
		return "compressed"
	}
	return "utf-16"
}

// BytesPerChar returns the stream bytes one CP occupies.
func (e Encoding) BytesPerChar() uint32 {
	if e == Compressed {
		return 1
	}
	return 2
}

// Piece is one contiguous run of text in the WordDocument stream.
type Piece struct {
	Start    CP
	End      CP
	Offset   uint32
	Encoding Encoding
	Pcd      Pcd
}

// ByteLen returns the stream bytes occupied by the piece.
func (p Piece) ByteLen() uint32 {
	return uint32(p.End-p.Start) * p.Encoding.BytesPerChar()
}

// OffsetOf returns the stream offset of cp, which must lie in the piece.
func (p Piece) OffsetOf(cp CP) uint32 {
	return p.Offset + uint32(cp-p.Start)*p.Encoding.BytesPerChar()
}

// Location is where one CP lives in the WordDocument stream.
type Location struct {
	Offset   uint32
	Encoding Encoding
	Piece    int
}

// Table maps CPs to stream offsets. It is immutable once built.
type Table struct {
	pieces []Piece
	bounds []CP
}

// NewTable builds a resolver from a decoded PlcPcd. A nil log uses the
// package Logger.
func NewTable(pcds *plc.PLC[CP, Pcd], log *zap.Logger) (*Table, error) {
	if log == nil {
		log = Logger()
	}
	t := &Table{
		pieces: make([]Piece, pcds.Len()),
		bounds: append([]CP(nil), pcds.Positions...),
	}
	for i := range t.pieces {
		start, end, pcd := pcds.Span(i)
		p := Piece{
			Start:    start,
			End:      end,
			Offset:   pcd.Fc.Offset(),
			Encoding: pcd.Fc.Encoding(),
			Pcd:      pcd,
		}
		if uint64(p.Offset)+uint64(end-start)*uint64(p.Encoding.BytesPerChar()) > 1<<32-1 {
			return nil, errors.New(errors.PhaseDecode, errors.KindOutOfRange).
				Path("PlcPcd", "data").
				Value(i).
				Detail("piece %d at offset %d overflows the stream address space", i, p.Offset).
				Build()
		}
		t.pieces[i] = p
	}
	log.Debug("piece table built",
		zap.Int("pieces", len(t.pieces)),
		zap.Int32("last_cp", int32(t.LastCP())))
	return t, nil
}

// Len returns the number of pieces.
func (t *Table) Len() int {
	return len(t.pieces)
}

// Piece returns piece i.
func (t *Table) Piece(i int) Piece {
	return t.pieces[i]
}

// Pieces returns a copy of every piece in CP order.
func (t *Table) Pieces() []Piece {
	return append([]Piece(nil), t.pieces...)
}

// LastCP returns the exclusive end of the addressable CP space.
func (t *Table) LastCP() CP {
	return t.bounds[len(t.bounds)-1]
}

// Resolve returns the stream location of cp.
func (t *Table) Resolve(cp CP) (Location, error) {
	i, err := t.find(cp)
	if err != nil {
		return Location{}, err
	}
	p := t.pieces[i]
	return Location{Offset: p.OffsetOf(cp), Encoding: p.Encoding, Piece: i}, nil
}

func (t *Table) find(cp CP) (int, error) {
	if cp < 0 || cp >= t.LastCP() {
		return 0, errors.New(errors.PhaseResolve, errors.KindOutOfBounds).
			Path("cp").
			Value(cp).
			Detail("CP %d outside [0, %d)", cp, t.LastCP()).
			Build()
	}
	return sort.Search(len(t.pieces), func(i int) bool { return t.bounds[i+1] > cp }), nil
}

// Run is the part of one piece that falls inside a requested CP range.
type Run struct {
	Start    CP
	End      CP
	Offset   uint32
	Encoding Encoding
}

// ByteLen returns the stream bytes the run covers.
func (r Run) ByteLen() uint32 {
	return uint32(r.End-r.Start) * r.Encoding.BytesPerChar()
}

// Slice splits [start, end) at piece boundaries.
func (t *Table) Slice(start, end CP) ([]Run, error) {
	if start > end {
		return nil, errors.InvalidInput(errors.PhaseResolve, "range start after end")
	}
	if start == end {
		return nil, nil
	}
	if end > t.LastCP() {
		return nil, errors.OutOfBounds(errors.PhaseResolve, []string{"cp"}, int(end), int(t.LastCP()))
	}
	i, err := t.find(start)
	if err != nil {
		return nil, err
	}
	var runs []Run
	for cp := start; cp < end; i++ {
		p := t.pieces[i]
		stop := min(p.End, end)
		runs = append(runs, Run{
			Start:    cp,
			End:      stop,
			Offset:   p.OffsetOf(cp),
			Encoding: p.Encoding,
		})
		cp = stop
	}
	return runs, nil
}
