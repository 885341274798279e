package dop

import (
	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
)

// MaxMathMargin is the largest math margin or indent, in twips (22 inches).
const MaxMathMargin = 31680

// Math break settings.
const (
	MthbrkBefore = 0
	MthbrkAfter  = 1
	MthbrkRepeat = 2

	MthbrkSubMinusMinus = 0
	MthbrkSubMinusPlus  = 1
	MthbrkSubPlusMinus  = 2

	MthbpjcCenterGroup = 1
	MthbpjcCenter      = 2
	MthbpjcLeft        = 3
	MthbpjcRight       = 4
)

// DopMth holds the document-wide math settings.
type DopMth struct {
	Mthbrk               uint8
	MthbrkSub            uint8
	Mthbpjc              uint8
	Reserved1            bool
	FMathSmallFrac       bool
	FMathIntLimUndOvr    bool
	FMathNaryLimUndOvr   bool
	FMathWrapAlignLeft   bool
	FMathUseDispDefaults bool
	Reserved2            uint32
	FtcMath              uint16
	DxaLeftMargin        uint32
	DxaRightMargin       uint32
	Empty                [4]uint32
	DxaIndentWrapped     uint32
}

func decodeDopMth(r *binary.Reader) (DopMth, error) {
	var m DopMth
	b, err := bitfield.Read32(r)
	if err != nil {
		return m, err
	}
	m.Mthbrk = uint8(b.ReadBits(2))
	m.MthbrkSub = uint8(b.ReadBits(2))
	m.Mthbpjc = uint8(b.ReadBits(3))
	m.Reserved1 = b.ReadBit()
	m.FMathSmallFrac = b.ReadBit()
	m.FMathIntLimUndOvr = b.ReadBit()
	m.FMathNaryLimUndOvr = b.ReadBit()
	m.FMathWrapAlignLeft = b.ReadBit()
	m.FMathUseDispDefaults = b.ReadBit()
	m.Reserved2 = b.ReadBits(19)
	b.Done()

	switch {
	case m.Mthbrk > MthbrkRepeat:
		return m, errors.OutOfRange(errors.PhaseDecode, []string{"mthbrk"}, m.Mthbrk, MthbrkBefore, MthbrkRepeat)
	case m.MthbrkSub > MthbrkSubPlusMinus:
		return m, errors.OutOfRange(errors.PhaseDecode, []string{"mthbrkSub"}, m.MthbrkSub, MthbrkSubMinusMinus, MthbrkSubPlusMinus)
	case m.Mthbpjc < MthbpjcCenterGroup || m.Mthbpjc > MthbpjcRight:
		return m, errors.OutOfRange(errors.PhaseDecode, []string{"mthbpjc"}, m.Mthbpjc, MthbpjcCenterGroup, MthbpjcRight)
	}

	if m.FtcMath, err = r.ReadU16(); err != nil {
		return m, err
	}
	if m.DxaLeftMargin, err = readMargin(r, "dxaLeftMargin"); err != nil {
		return m, err
	}
	if m.DxaRightMargin, err = readMargin(r, "dxaRightMargin"); err != nil {
		return m, err
	}
	for i := range m.Empty {
		if m.Empty[i], err = r.ReadU32(); err != nil {
			return m, err
		}
	}
	if m.DxaIndentWrapped, err = readMargin(r, "dxaIndentWrapped"); err != nil {
		return m, err
	}
	return m, nil
}

func readMargin(r *binary.Reader, name string) (uint32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	if v > MaxMathMargin {
		return 0, errors.OutOfRange(errors.PhaseDecode, []string{name}, v, 0, MaxMathMargin)
	}
	return v, nil
}

// Dop2007 is the DOP written by Word 2007 (674 bytes).
type Dop2007 struct {
	Dop2003

	Reserved2007 uint32
	Flags2007    uint16
	Reserved4    uint16
	Empty2007    [4]uint32
	DopMth       DopMth
}

func decodeDop2007(r *binary.Reader) (Dop2007, error) {
	var d Dop2007
	var err error
	if d.Dop2003, err = decodeDop2003(r); err != nil {
		return d, errors.WithPath(err, "Dop2003")
	}
	if d.Reserved2007, err = r.ReadU32(); err != nil {
		return d, err
	}
	if d.Flags2007, err = r.ReadU16(); err != nil {
		return d, err
	}
	if d.Reserved4, err = r.ReadU16(); err != nil {
		return d, err
	}
	for i := range d.Empty2007 {
		if d.Empty2007[i], err = r.ReadU32(); err != nil {
			return d, err
		}
	}
	if d.DopMth, err = decodeDopMth(r); err != nil {
		return d, errors.WithPath(err, "DopMth")
	}
	return d, nil
}

// Dop2010 is the DOP written by Word 2010 (690 bytes).
type Dop2010 struct {
	Dop2007

	DocID        int32
	Reserved2010 uint32
	Flags2010    uint32
	IImageDPI    uint32
}

// FDiscardImageData reports whether image editing data is dropped on save.
func (d *Dop2010) FDiscardImageData() bool {
	return d.Flags2010&1 != 0
}

func decodeDop2010(r *binary.Reader) (Dop2010, error) {
	var d Dop2010
	var err error
	if d.Dop2007, err = decodeDop2007(r); err != nil {
		return d, errors.WithPath(err, "Dop2007")
	}
	if d.DocID, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.Reserved2010, err = r.ReadU32(); err != nil {
		return d, err
	}
	if d.Flags2010, err = r.ReadU32(); err != nil {
		return d, err
	}
	if d.IImageDPI, err = r.ReadU32(); err != nil {
		return d, err
	}
	return d, nil
}

// Dop2013 is the DOP written by Word 2013 (694 bytes).
type Dop2013 struct {
	Dop2010

	Flags2013 uint32
}

// FChartTrackingRefBased reports whether chart data point formatting follows
// data references.
func (d *Dop2013) FChartTrackingRefBased() bool {
	return d.Flags2013&1 != 0
}

func decodeDop2013(r *binary.Reader) (Dop2013, error) {
	var d Dop2013
	var err error
	if d.Dop2010, err = decodeDop2010(r); err != nil {
		return d, errors.WithPath(err, "Dop2010")
	}
	if d.Flags2013, err = r.ReadU32(); err != nil {
		return d, err
	}
	return d, nil
}
