// Package plc decodes PLCs ("plex of CPs"), the self-delimited interval
// tables most auxiliary structures of a Word binary document are stored in.
//
// A PLC of N elements is N+1 little-endian 32-bit positions followed by N
// fixed-size records; record i describes [Positions[i], Positions[i+1]).
// N is never stored: it is derived from the PLC's declared byte size, and the
// decoder fails unless it consumes exactly that many bytes.
package plc

import (
	"sort"

	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/errors"
)

// CP is a character position in the logical text of a document.
type CP int32

// FC is a byte offset into a stream.
type FC uint32

// Position is the key type of a PLC.
type Position interface {
	~int32 | ~uint32
}

// Order is the ordering rule applied to a PLC's positions.
type Order int

const (
	// NonDecreasing allows duplicate positions (zero-width spans).
	NonDecreasing Order = iota
	// StrictlyIncreasing rejects duplicates.
	StrictlyIncreasing
)

// LastRule says what the final position of a PLC means.
type LastRule int

const (
	// LastTerminator is a meaningful end position and takes part in ordering.
	LastTerminator LastRule = iota
	// LastIgnored is a sentinel excluded from every check.
	LastIgnored
	// LastMustEqual is a terminator that must equal Rules.Expected.
	LastMustEqual
)

// Rules are the per-structure validation rules of a PLC.
type Rules[K Position] struct {
	Name     string
	Order    Order
	Last     LastRule
	Expected K
}

// PLC is a decoded plex.
type PLC[K Position, T any] struct {
	Positions []K
	Data      []T
}

// Empty is the record type of PLCs that carry positions only.
type Empty struct{}

// NoData is the record decoder of zero-size records.
func NoData(*binary.Reader) (Empty, error) {
	return Empty{}, nil
}

// Count returns the element count of a PLC of cbPlc bytes whose records are
// cbData bytes each.
func Count(cbPlc uint32, cbData int) (int, error) {
	if cbData < 0 {
		return 0, errors.InvalidInput(errors.PhaseDecode, "negative record size")
	}
	if cbPlc < 4 {
		return 0, errors.New(errors.PhaseDecode, errors.KindLengthMismatch).
			Value(cbPlc).
			Detail("PLC of %d bytes cannot hold a single position", cbPlc).
			Build()
	}
	stride := uint64(cbData) + 4
	body := uint64(cbPlc) - 4
	if body%stride != 0 {
		return 0, errors.New(errors.PhaseDecode, errors.KindLengthMismatch).
			Value(cbPlc).
			Detail("PLC of %d bytes is not 4 + n*(%d+4)", cbPlc, cbData).
			Build()
	}
	return int(body / stride), nil
}

// Decode reads a PLC of cbPlc bytes from r. Positions are validated
// against rules before any record is decoded.
func Decode[K Position, T any](r *binary.Reader, cbPlc uint32, cbData int, record func(*binary.Reader) (T, error), rules Rules[K]) (*PLC[K, T], error) {
	path := []string{rules.Name}
	n, err := Count(cbPlc, cbData)
	if err != nil {
		return nil, errors.WithPath(err, path...)
	}
	if uint64(r.Remaining()) < uint64(cbPlc) {
		return nil, errors.WithPath(errors.Truncated(errors.PhaseDecode, r.Position(), int(cbPlc), r.Remaining()), path...)
	}
	start := r.Mark()

	positions := make([]K, n+1)
	for i := range positions {
		v, err := r.ReadU32()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		positions[i] = K(v)
	}
	if err := rules.check(positions); err != nil {
		return nil, err
	}

	data := make([]T, n)
	for i := range data {
		m := r.Mark()
		v, err := record(r)
		if err != nil {
			return nil, errors.WithPath(err, rules.Name, "data")
		}
		if err := r.ExpectConsumed(m, cbData, rules.Name, "data"); err != nil {
			return nil, err
		}
		data[i] = v
	}

	if err := r.ExpectConsumed(start, int(cbPlc), path...); err != nil {
		return nil, err
	}
	return &PLC[K, T]{Positions: positions, Data: data}, nil
}

func (rules Rules[K]) check(positions []K) error {
	checked := positions
	if rules.Last == LastIgnored {
		checked = positions[:len(positions)-1]
	}
	for i := 1; i < len(checked); i++ {
		prev, cur := checked[i-1], checked[i]
		if cur < prev || (rules.Order == StrictlyIncreasing && cur == prev) {
			return errors.New(errors.PhaseDecode, errors.KindInconsistent).
				Path(rules.Name, "positions").
				Value(i).
				Detail("position %d (%d) does not follow %d", i, cur, prev).
				Build()
		}
	}
	if rules.Last == LastMustEqual {
		if last := positions[len(positions)-1]; last != rules.Expected {
			return errors.New(errors.PhaseDecode, errors.KindInconsistent).
				Path(rules.Name, "positions").
				Value(last).
				Detail("last position %d, want %d", last, rules.Expected).
				Build()
		}
	}
	return nil
}

// Len returns the number of records.
func (p *PLC[K, T]) Len() int {
	return len(p.Data)
}

// Span returns the interval and record of element i.
func (p *PLC[K, T]) Span(i int) (start, end K, data T) {
	return p.Positions[i], p.Positions[i+1], p.Data[i]
}

// Find returns the element whose interval contains pos. With duplicate
// positions the last of the equal run wins, so zero-width elements are
// never returned.
func (p *PLC[K, T]) Find(pos K) (int, bool) {
	if len(p.Data) == 0 || pos < p.Positions[0] || pos >= p.Positions[len(p.Data)] {
		return 0, false
	}
	i := sort.Search(len(p.Data), func(i int) bool { return p.Positions[i+1] > pos })
	return i, true
}
