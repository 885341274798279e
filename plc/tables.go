package plc

import (
	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
)

// Record sizes of the PLC shapes decoded here.
const (
	SizeFBKF  = 4
	SizeFLD   = 2
	SizeFRD   = 2
	SizeSED   = 12
	SizePnFkp = 4
	SizeSPLS  = 2
)

// BKC holds the table-column extent of a bookmark.
type BKC struct {
	ItcFirst uint8
	FPub     bool
	ItcLim   uint8
	FNative  bool
	FCol     bool
}

// FBKF is the record of a PlcBkf: the start of a bookmark.
type FBKF struct {
	Ibkl uint16
	Bkc  BKC
}

func decodeFBKF(r *binary.Reader) (FBKF, error) {
	ibkl, err := r.ReadU16()
	if err != nil {
		return FBKF{}, err
	}
	bits, err := bitfield.Read16(r)
	if err != nil {
		return FBKF{}, err
	}
	bkc := BKC{
		ItcFirst: uint8(bits.ReadBits(7)),
		FPub:     bits.ReadBit(),
		ItcLim:   uint8(bits.ReadBits(6)),
		FNative:  bits.ReadBit(),
		FCol:     bits.ReadBit(),
	}
	bits.Done()
	if bkc.FCol && bkc.ItcFirst >= bkc.ItcLim {
		return FBKF{}, errors.Inconsistent(errors.PhaseDecode, []string{"FBKF", "bkc"},
			"column bookmark needs itcFirst < itcLim")
	}
	return FBKF{Ibkl: ibkl, Bkc: bkc}, nil
}

// DecodePlcBkf decodes bookmark starts. Several bookmarks may start at the
// same CP; the final CP is ignored.
func DecodePlcBkf(r *binary.Reader, cb uint32) (*PLC[CP, FBKF], error) {
	return Decode(r, cb, SizeFBKF, decodeFBKF, Rules[CP]{Name: "PlcBkf", Order: NonDecreasing, Last: LastIgnored})
}

// DecodePlcBkl decodes bookmark ends.
func DecodePlcBkl(r *binary.Reader, cb uint32) (*PLC[CP, Empty], error) {
	return Decode(r, cb, 0, NoData, Rules[CP]{Name: "PlcBkl", Order: NonDecreasing, Last: LastIgnored})
}

// FldCh is the kind of field character a FLD marks.
type FldCh uint8

const (
	FldBegin     FldCh = 0x13
	FldSeparator FldCh = 0x14
	FldEnd       FldCh = 0x15
)

func (c FldCh) String() string {
	switch c {
	case FldBegin:
		return "begin"
	case FldSeparator:
		return "separator"
	case FldEnd:
		return "end"
	}
	return "unknown"
}

// FldEndFlags is the grffld of a field end character.
type FldEndFlags struct {
	FDiffer        bool
	FZombieEmbed   bool
	FResultsDirty  bool
	FResultsEdited bool
	FLocked        bool
	FPrivateResult bool
	FNested        bool
	FHasSep        bool
}

// FLD is a field character record. Exactly one of the grffld views is
// meaningful, selected by Ch: Flt for begin, Reserved for separator, End
// for end.
type FLD struct {
	Ch         FldCh
	ChReserved uint8
	Flt        uint8
	Reserved   uint8
	End        FldEndFlags
}

func decodeFLD(r *binary.Reader) (FLD, error) {
	head, err := bitfield.Read8(r)
	if err != nil {
		return FLD{}, err
	}
	fld := FLD{
		Ch:         FldCh(head.ReadBits(5)),
		ChReserved: head.ReadBits(3),
	}
	head.Done()
	grffld, err := r.ReadU8()
	if err != nil {
		return FLD{}, err
	}
	switch fld.Ch {
	case FldBegin:
		fld.Flt = grffld
	case FldSeparator:
		fld.Reserved = grffld
	case FldEnd:
		b := bitfield.New(grffld)
		fld.End = FldEndFlags{
			FDiffer:        b.ReadBit(),
			FZombieEmbed:   b.ReadBit(),
			FResultsDirty:  b.ReadBit(),
			FResultsEdited: b.ReadBit(),
			FLocked:        b.ReadBit(),
			FPrivateResult: b.ReadBit(),
			FNested:        b.ReadBit(),
			FHasSep:        b.ReadBit(),
		}
		b.Done()
	default:
		return FLD{}, errors.InvalidEnum(errors.PhaseDecode, []string{"FLD", "ch"}, uint8(fld.Ch), "FldCh")
	}
	return fld, nil
}

// DecodePlcFld decodes the field characters of one sub-document.
func DecodePlcFld(r *binary.Reader, cb uint32) (*PLC[CP, FLD], error) {
	return Decode(r, cb, SizeFLD, decodeFLD, Rules[CP]{Name: "PlcFld", Order: StrictlyIncreasing, Last: LastIgnored})
}

// FRD is a footnote or endnote reference. NAuto > 0 means an
// auto-numbered reference.
type FRD struct {
	NAuto int16
}

func decodeFRD(r *binary.Reader) (FRD, error) {
	v, err := r.ReadI16()
	return FRD{NAuto: v}, err
}

// DecodePlcfFrd decodes PlcffndRef or PlcfendRef.
func DecodePlcfFrd(r *binary.Reader, cb uint32, name string) (*PLC[CP, FRD], error) {
	return Decode(r, cb, SizeFRD, decodeFRD, Rules[CP]{Name: name, Order: StrictlyIncreasing, Last: LastIgnored})
}

// DecodePlcfTxt decodes a text-boundary PLC (PlcffndTxt, PlcfendTxt,
// PlcfandTxt) whose final CP terminates the last story.
func DecodePlcfTxt(r *binary.Reader, cb uint32, name string) (*PLC[CP, Empty], error) {
	return Decode(r, cb, 0, NoData, Rules[CP]{Name: name, Order: NonDecreasing, Last: LastTerminator})
}

// DecodePlcfHdd decodes the header story boundaries.
func DecodePlcfHdd(r *binary.Reader, cb uint32) (*PLC[CP, Empty], error) {
	return Decode(r, cb, 0, NoData, Rules[CP]{Name: "PlcfHdd", Order: NonDecreasing, Last: LastTerminator})
}

// SED is a section descriptor.
type SED struct {
	Fn     int16
	FcSepx int32
	FnMpr  int16
	FcMpr  int32
}

func decodeSED(r *binary.Reader) (SED, error) {
	var s SED
	var err error
	if s.Fn, err = r.ReadI16(); err != nil {
		return SED{}, err
	}
	if s.FcSepx, err = r.ReadI32(); err != nil {
		return SED{}, err
	}
	if s.FnMpr, err = r.ReadI16(); err != nil {
		return SED{}, err
	}
	if s.FcMpr, err = r.ReadI32(); err != nil {
		return SED{}, err
	}
	return s, nil
}

// DecodePlcfSed decodes the section table. The last CP must equal the
// length of the main document text.
func DecodePlcfSed(r *binary.Reader, cb uint32, ccpText CP) (*PLC[CP, SED], error) {
	return Decode(r, cb, SizeSED, decodeSED, Rules[CP]{Name: "PlcfSed", Order: StrictlyIncreasing, Last: LastMustEqual, Expected: ccpText})
}

// PnFkp points at a formatted disk page (512-byte page number).
type PnFkp struct {
	Pn     uint32
	Unused uint32
}

func decodePnFkp(r *binary.Reader) (PnFkp, error) {
	bits, err := bitfield.Read32(r)
	if err != nil {
		return PnFkp{}, err
	}
	p := PnFkp{Pn: bits.ReadBits(22), Unused: bits.ReadBits(10)}
	bits.Done()
	return p, nil
}

// DecodePlcBte decodes PlcBteChpx or PlcBtePapx, which are keyed by
// WordDocument stream offsets rather than CPs.
func DecodePlcBte(r *binary.Reader, cb uint32, name string) (*PLC[FC, PnFkp], error) {
	return Decode(r, cb, SizePnFkp, decodePnFkp, Rules[FC]{Name: name, Order: StrictlyIncreasing, Last: LastTerminator})
}

// Splf is the spelling or grammar state of a text range.
type Splf uint8

const (
	SplfPending     Splf = 0x1
	SplfMaybeDirty  Splf = 0x2
	SplfDirty       Splf = 0x3
	SplfEdit        Splf = 0x4
	SplfForeign     Splf = 0x5
	SplfClean       Splf = 0x7
	SplfNoLAD       Splf = 0x8
	SplfErrorMin    Splf = 0xA
	SplfRepeatWord  Splf = 0xB
	SplfUnknownWord Splf = 0xC
)

func (s Splf) valid() bool {
	switch s {
	case SplfPending, SplfMaybeDirty, SplfDirty, SplfEdit, SplfForeign,
		SplfClean, SplfNoLAD, SplfErrorMin, SplfRepeatWord, SplfUnknownWord:
		return true
	}
	return false
}

// SPLS is the record of PlcfSpl and PlcfGram.
type SPLS struct {
	Splf    Splf
	FError  bool
	FExtend bool
	FTypo   bool
	Unused  uint16
}

func decodeSPLS(r *binary.Reader) (SPLS, error) {
	bits, err := bitfield.Read16(r)
	if err != nil {
		return SPLS{}, err
	}
	s := SPLS{
		Splf:    Splf(bits.ReadBits(4)),
		FError:  bits.ReadBit(),
		FExtend: bits.ReadBit(),
		FTypo:   bits.ReadBit(),
		Unused:  bits.ReadBits(9),
	}
	bits.Done()
	if !s.Splf.valid() {
		return SPLS{}, errors.InvalidEnum(errors.PhaseDecode, []string{"SPLS", "splf"}, uint8(s.Splf), "Splf")
	}
	return s, nil
}

// DecodePlcfSpls decodes PlcfSpl or PlcfGram.
func DecodePlcfSpls(r *binary.Reader, cb uint32, name string) (*PLC[CP, SPLS], error) {
	return Decode(r, cb, SizeSPLS, decodeSPLS, Rules[CP]{Name: name, Order: NonDecreasing, Last: LastIgnored})
}
