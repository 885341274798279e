package piece

import (
	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/plc"
)

const (
	clxtPrc  = 0x01
	clxtPcdt = 0x02

	maxCbGrpprl = 0x3FA2
)

// Prc holds a list of property modifiers referenced by Prm1.Igrpprl. The
// grpprl is kept undecoded.
type Prc struct {
	GrpPrl []byte
}

// Pcdt wraps the PlcPcd.
type Pcdt struct {
	Lcb    uint32
	PlcPcd *plc.PLC[CP, Pcd]
}

// Clx is the piece table container stored in the Table stream at fcClx.
type Clx struct {
	RgPrc []Prc
	Pcdt  Pcdt
}

// Prc returns the Prc a complex Prm refers to.
func (c *Clx) Prc(p Prm) (Prc, error) {
	if !p.Complex {
		return Prc{}, errors.InvalidInput(errors.PhaseResolve, "Prm0 does not reference a Prc")
	}
	i := int(p.Prm1.Igrpprl)
	if i >= len(c.RgPrc) {
		return Prc{}, errors.OutOfBounds(errors.PhaseResolve, []string{"Clx", "RgPrc"}, i, len(c.RgPrc))
	}
	return c.RgPrc[i], nil
}

// DecodeClx reads a Clx of lcbClx bytes at r's position. The PlcPcd must
// cover [0, lastCP) exactly.
func DecodeClx(r *binary.Reader, lcbClx uint32, lastCP CP) (*Clx, error) {
	if lcbClx == 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindLengthMismatch).
			Path("Clx").
			Detail("lcbClx is zero").
			Build()
	}
	if uint64(lcbClx) > uint64(r.Remaining()) {
		return nil, errors.WithPath(errors.Truncated(errors.PhaseDecode, r.Position(), int(lcbClx), r.Remaining()), "Clx")
	}
	w, err := r.Window(r.Position(), int(lcbClx))
	if err != nil {
		return nil, errors.WithPath(err, "Clx")
	}

	clx := &Clx{}
	for {
		clxt, err := peekClxt(w)
		if err != nil {
			return nil, errors.WithPath(err, "Clx", "clxt")
		}
		if clxt == clxtPcdt {
			break
		}
		if clxt != clxtPrc {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEnum).
				Path("Clx", "clxt").
				At(w.Position()).
				Value(clxt).
				Detail("want 0x01 (Prc) or 0x02 (Pcdt), got %#x", clxt).
				Build()
		}
		prc, err := decodePrc(w)
		if err != nil {
			return nil, errors.WithPath(err, "Clx", "RgPrc")
		}
		clx.RgPrc = append(clx.RgPrc, prc)
	}

	if clx.Pcdt, err = decodePcdt(w, lastCP); err != nil {
		return nil, errors.WithPath(err, "Clx")
	}
	if w.Remaining() != 0 {
		return nil, errors.LengthMismatch(errors.PhaseDecode, []string{"Clx"}, int(lcbClx)-w.Remaining(), int(lcbClx))
	}
	if err := r.Skip(int(lcbClx)); err != nil {
		return nil, err
	}
	return clx, nil
}

func peekClxt(r *binary.Reader) (uint8, error) {
	var clxt uint8
	err := r.Peek(func(pr *binary.Reader) error {
		var err error
		clxt, err = pr.ReadU8()
		return err
	})
	return clxt, err
}

func decodePrc(r *binary.Reader) (Prc, error) {
	if err := r.Skip(1); err != nil {
		return Prc{}, err
	}
	cb, err := r.ReadI16()
	if err != nil {
		return Prc{}, err
	}
	if cb < 0 || cb > maxCbGrpprl {
		return Prc{}, errors.OutOfRange(errors.PhaseDecode, []string{"Prc", "cbGrpprl"}, cb, 0, maxCbGrpprl)
	}
	grpprl, err := r.ReadBytes(int(cb))
	if err != nil {
		return Prc{}, err
	}
	return Prc{GrpPrl: grpprl}, nil
}

func decodePcdt(r *binary.Reader, lastCP CP) (Pcdt, error) {
	if err := r.Skip(1); err != nil {
		return Pcdt{}, err
	}
	lcb, err := r.ReadU32()
	if err != nil {
		return Pcdt{}, errors.WithPath(err, "Pcdt", "lcb")
	}
	if uint64(lcb) > uint64(r.Remaining()) {
		return Pcdt{}, errors.WithPath(errors.Truncated(errors.PhaseDecode, r.Position(), int(lcb), r.Remaining()), "Pcdt", "lcb")
	}
	pcds, err := plc.Decode(r, lcb, SizePcd, decodePcd, plc.Rules[CP]{
		Name:     "PlcPcd",
		Order:    plc.StrictlyIncreasing,
		Last:     plc.LastMustEqual,
		Expected: lastCP,
	})
	if err != nil {
		return Pcdt{}, errors.WithPath(err, "Pcdt")
	}
	if first := pcds.Positions[0]; first != 0 {
		return Pcdt{}, errors.New(errors.PhaseDecode, errors.KindInconsistent).
			Path("Pcdt", "PlcPcd", "positions").
			Value(first).
			Detail("first piece starts at CP %d, want 0", first).
			Build()
	}
	return Pcdt{Lcb: lcb, PlcPcd: pcds}, nil
}
