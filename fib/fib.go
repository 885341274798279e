package fib

import (
	"go.uber.org/zap"

	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/piece"
)

// Fixed values of the FIB header.
const (
	WIdent     = 0xA5EC
	NFibBackBF = 0x00BF
	NFibBackC1 = 0x00C1
	CswRgW97   = 0x000E
	CslwRgLw97 = 0x0016

	SizeFibBase = 32
)

// FibBase is the fixed 32-byte head of the FIB.
type FibBase struct {
	WIdent               uint16
	NFib                 uint16
	Unused               uint16
	Lid                  uint16
	PnNext               uint16
	FDot                 bool
	FGlsy                bool
	FComplex             bool
	FHasPic              bool
	CQuickSaves          uint8
	FEncrypted           bool
	FWhichTblStm         bool
	FReadOnlyRecommended bool
	FWriteReservation    bool
	FExtChar             bool
	FLoadOverride        bool
	FFarEast             bool
	FObfuscated          bool
	NFibBack             uint16
	LKey                 uint32
	Envr                 uint8
	FMac                 bool
	FEmptySpecial        bool
	FLoadOverridePage    bool
	Reserved1            bool
	Reserved2            bool
	FSpare0              uint8
	Reserved3            uint16
	Reserved4            uint16
	Reserved5            uint32
	Reserved6            uint32
}

func decodeFibBase(r *binary.Reader) (FibBase, error) {
	var b FibBase
	var err error
	if b.WIdent, err = r.ReadU16(); err != nil {
		return b, err
	}
	if b.WIdent != WIdent {
		return b, errors.MagicMismatch(errors.PhaseDecode, []string{"FibBase", "wIdent"}, b.WIdent, WIdent)
	}
	words, err := r.ReadU16s(4)
	if err != nil {
		return b, err
	}
	b.NFib, b.Unused, b.Lid, b.PnNext = words[0], words[1], words[2], words[3]

	flags, err := bitfield.Read16(r)
	if err != nil {
		return b, err
	}
	b.FDot = flags.ReadBit()
	b.FGlsy = flags.ReadBit()
	b.FComplex = flags.ReadBit()
	b.FHasPic = flags.ReadBit()
	b.CQuickSaves = uint8(flags.ReadBits(4))
	b.FEncrypted = flags.ReadBit()
	b.FWhichTblStm = flags.ReadBit()
	b.FReadOnlyRecommended = flags.ReadBit()
	b.FWriteReservation = flags.ReadBit()
	b.FExtChar = flags.ReadBit()
	b.FLoadOverride = flags.ReadBit()
	b.FFarEast = flags.ReadBit()
	b.FObfuscated = flags.ReadBit()
	flags.Done()

	if b.NFibBack, err = r.ReadU16(); err != nil {
		return b, err
	}
	if b.LKey, err = r.ReadU32(); err != nil {
		return b, err
	}
	if b.Envr, err = r.ReadU8(); err != nil {
		return b, err
	}
	more, err := bitfield.Read8(r)
	if err != nil {
		return b, err
	}
	b.FMac = more.ReadBit()
	b.FEmptySpecial = more.ReadBit()
	b.FLoadOverridePage = more.ReadBit()
	b.Reserved1 = more.ReadBit()
	b.Reserved2 = more.ReadBit()
	b.FSpare0 = more.ReadBits(3)
	more.Done()

	if b.Reserved3, err = r.ReadU16(); err != nil {
		return b, err
	}
	if b.Reserved4, err = r.ReadU16(); err != nil {
		return b, err
	}
	if b.Reserved5, err = r.ReadU32(); err != nil {
		return b, err
	}
	if b.Reserved6, err = r.ReadU32(); err != nil {
		return b, err
	}
	return b, b.validate()
}

func (b *FibBase) validate() error {
	path := func(field string) []string { return []string{"FibBase", field} }
	switch {
	case b.NFibBack != NFibBackBF && b.NFibBack != NFibBackC1:
		return errors.New(errors.PhaseDecode, errors.KindMagicMismatch).
			Path(path("nFibBack")...).
			Value(b.NFibBack).
			Detail("got %#x, want 0xbf or 0xc1", b.NFibBack).
			Build()
	case !b.FExtChar:
		return errors.MagicMismatch(errors.PhaseDecode, path("fExtChar"), 0, 1)
	case b.Envr != 0:
		return errors.MagicMismatch(errors.PhaseDecode, path("envr"), b.Envr, 0)
	case b.FMac:
		return errors.MagicMismatch(errors.PhaseDecode, path("fMac"), 1, 0)
	case b.Reserved3 != 0:
		return errors.MagicMismatch(errors.PhaseDecode, path("reserved3"), b.Reserved3, 0)
	case b.Reserved4 != 0:
		return errors.MagicMismatch(errors.PhaseDecode, path("reserved4"), b.Reserved4, 0)
	}
	return nil
}

// TableStream returns the name of the table stream the FIB refers to.
func (b *FibBase) TableStream() string {
	if b.FWhichTblStm {
		return "1Table"
	}
	return "0Table"
}

// FibRgW97 is the 14-word block following FibBase. Only lidFE carries
// meaning.
type FibRgW97 struct {
	Reserved [13]uint16
	LidFE    uint16
}

// FibRgLw97 holds the stream size and the CP length of every story.
type FibRgLw97 struct {
	CbMac      int32
	Reserved1  uint32
	Reserved2  uint32
	CcpText    int32
	CcpFtn     int32
	CcpHdd     int32
	Reserved3  uint32
	CcpAtn     int32
	CcpEdn     int32
	CcpTxbx    int32
	CcpHdrTxbx int32
	Reserved   [11]uint32
}

// SubDocuments returns the story lengths.
func (lw *FibRgLw97) SubDocuments() piece.SubDocuments {
	return piece.SubDocuments{
		CcpText:    piece.CP(lw.CcpText),
		CcpFtn:     piece.CP(lw.CcpFtn),
		CcpHdd:     piece.CP(lw.CcpHdd),
		CcpAtn:     piece.CP(lw.CcpAtn),
		CcpEdn:     piece.CP(lw.CcpEdn),
		CcpTxbx:    piece.CP(lw.CcpTxbx),
		CcpHdrTxbx: piece.CP(lw.CcpHdrTxbx),
	}
}

func decodeFibRgLw97(r *binary.Reader) (FibRgLw97, error) {
	var lw FibRgLw97
	var raw [11]uint32
	for i := range raw {
		v, err := r.ReadU32()
		if err != nil {
			return lw, err
		}
		raw[i] = v
	}
	lw.CbMac = int32(raw[0])
	lw.Reserved1, lw.Reserved2 = raw[1], raw[2]
	lw.CcpText, lw.CcpFtn, lw.CcpHdd = int32(raw[3]), int32(raw[4]), int32(raw[5])
	lw.Reserved3 = raw[6]
	lw.CcpAtn, lw.CcpEdn, lw.CcpTxbx, lw.CcpHdrTxbx = int32(raw[7]), int32(raw[8]), int32(raw[9]), int32(raw[10])
	for i := range lw.Reserved {
		v, err := r.ReadU32()
		if err != nil {
			return lw, err
		}
		lw.Reserved[i] = v
	}
	if err := lw.SubDocuments().Validate(); err != nil {
		return lw, err
	}
	return lw, nil
}

// FcLcb is one offset/size pair of FibRgFcLcb. Fc is a table stream offset
// unless documented otherwise; Lcb == 0 means the structure is absent.
type FcLcb struct {
	Fc  uint32
	Lcb uint32
}

// Empty reports whether the referenced structure is absent.
func (p FcLcb) Empty() bool {
	return p.Lcb == 0
}

// Version identifies a FibRgFcLcb variant. Each variant extends the
// previous one.
type Version int

const (
	Version97 Version = iota
	Version2000
	Version2002
	Version2003
	Version2007
)

var versionInfo = [...]struct {
	name      string
	cbRgFcLcb uint16
	nFib      uint16
}{
	Version97:   {"97", 0x005D, 0x00C1},
	Version2000: {"2000", 0x006C, 0x00D9},
	Version2002: {"2002", 0x0088, 0x0101},
	Version2003: {"2003", 0x00A4, 0x010C},
	Version2007: {"2007", 0x00B7, 0x0112},
}

func (v Version) String() string {
	if v >= 0 && int(v) < len(versionInfo) {
		return versionInfo[v].name
	}
	return "unknown"
}

// Pairs returns the number of fc/lcb pairs of the variant.
func (v Version) Pairs() int {
	return int(versionInfo[v].cbRgFcLcb)
}

func versionForCb(cb uint16) (Version, bool) {
	for v, info := range versionInfo {
		if info.cbRgFcLcb == cb {
			return Version(v), true
		}
	}
	return 0, false
}

func versionForNFib(nFib uint16) (Version, bool) {
	for v, info := range versionInfo {
		if info.nFib == nFib {
			return Version(v), true
		}
	}
	return 0, false
}

// FibRgFcLcb is the offset table of the FIB, tagged by the variant its
// cbRgFcLcb selects.
type FibRgFcLcb struct {
	Version Version
	Pairs   []FcLcb
}

// Get returns pair i, or false when the variant predates it.
func (t *FibRgFcLcb) Get(i Index) (FcLcb, bool) {
	if i < 0 || int(i) >= len(t.Pairs) {
		return FcLcb{}, false
	}
	return t.Pairs[i], true
}

func decodeFibRgFcLcb(r *binary.Reader, v Version) (FibRgFcLcb, error) {
	t := FibRgFcLcb{Version: v, Pairs: make([]FcLcb, v.Pairs())}
	for i := range t.Pairs {
		fc, err := r.ReadU32()
		if err != nil {
			return t, errors.WithPath(err, Index(i).String())
		}
		lcb, err := r.ReadU32()
		if err != nil {
			return t, errors.WithPath(err, Index(i).String())
		}
		t.Pairs[i] = FcLcb{Fc: fc, Lcb: lcb}
	}
	return t, nil
}

// FibRgCswNew carries the version of the application that last saved the
// file. Theme is set only for nFibNew 0x0112.
type FibRgCswNew struct {
	NFibNew        uint16
	CQuickSavesNew uint16
	Theme          *ThemeLids
}

// ThemeLids are the theme languages added by FibRgCswNewData2007.
type ThemeLids struct {
	LidThemeOther uint16
	LidThemeFE    uint16
	LidThemeCS    uint16
}

func decodeFibRgCswNew(r *binary.Reader, cswNew uint16) (*FibRgCswNew, error) {
	var c FibRgCswNew
	var err error
	if c.NFibNew, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if _, ok := versionForNFib(c.NFibNew); !ok || c.NFibNew == versionInfo[Version97].nFib {
		return nil, errors.InvalidEnum(errors.PhaseDecode, []string{"FibRgCswNew", "nFibNew"}, c.NFibNew, "nFibNew")
	}
	is2007 := c.NFibNew == versionInfo[Version2007].nFib
	switch {
	case is2007 && cswNew != 5:
		return nil, errors.Inconsistent(errors.PhaseDecode, []string{"FibRgCswNew"},
			"nFibNew 0x112 requires cswNew 5")
	case !is2007 && cswNew != 2:
		return nil, errors.Inconsistent(errors.PhaseDecode, []string{"FibRgCswNew"},
			"cswNew 5 requires nFibNew 0x112")
	}
	if c.CQuickSavesNew, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if is2007 {
		lids, err := r.ReadU16s(3)
		if err != nil {
			return nil, err
		}
		c.Theme = &ThemeLids{LidThemeOther: lids[0], LidThemeFE: lids[1], LidThemeCS: lids[2]}
	}
	return &c, nil
}

// Fib is the decoded File Information Block at the start of the
// WordDocument stream.
type Fib struct {
	Base       FibBase
	Csw        uint16
	RgW97      FibRgW97
	Cslw       uint16
	RgLw97     FibRgLw97
	CbRgFcLcb  uint16
	RgFcLcb    FibRgFcLcb
	CswNew     uint16
	RgCswNew   *FibRgCswNew
	ByteLength int
}

// NFib returns the effective file format version: nFibNew when present,
// otherwise FibBase.nFib.
func (f *Fib) NFib() uint16 {
	if f.RgCswNew != nil {
		return f.RgCswNew.NFibNew
	}
	return f.Base.NFib
}

// SubDocuments returns the story lengths declared by the FIB.
func (f *Fib) SubDocuments() piece.SubDocuments {
	return f.RgLw97.SubDocuments()
}

// Pair returns the fc/lcb pair i of the FIB.
func (f *Fib) Pair(i Index) (FcLcb, bool) {
	return f.RgFcLcb.Get(i)
}

// Decode reads the FIB at r's position. A nil log uses the package Logger.
func Decode(r *binary.Reader, log *zap.Logger) (*Fib, error) {
	if log == nil {
		log = Logger()
	}
	m := r.Mark()
	f := &Fib{}
	var err error

	if f.Base, err = decodeFibBase(r); err != nil {
		return nil, errors.WithPath(err, "Fib")
	}

	if f.Csw, err = r.ReadU16(); err != nil {
		return nil, errors.WithPath(err, "Fib", "csw")
	}
	if f.Csw != CswRgW97 {
		return nil, errors.MagicMismatch(errors.PhaseDecode, []string{"Fib", "csw"}, f.Csw, CswRgW97)
	}
	words, err := r.ReadU16s(14)
	if err != nil {
		return nil, errors.WithPath(err, "Fib", "FibRgW97")
	}
	copy(f.RgW97.Reserved[:], words[:13])
	f.RgW97.LidFE = words[13]

	if f.Cslw, err = r.ReadU16(); err != nil {
		return nil, errors.WithPath(err, "Fib", "cslw")
	}
	if f.Cslw != CslwRgLw97 {
		return nil, errors.MagicMismatch(errors.PhaseDecode, []string{"Fib", "cslw"}, f.Cslw, CslwRgLw97)
	}
	if f.RgLw97, err = decodeFibRgLw97(r); err != nil {
		return nil, errors.WithPath(err, "Fib")
	}

	if f.CbRgFcLcb, err = r.ReadU16(); err != nil {
		return nil, errors.WithPath(err, "Fib", "cbRgFcLcb")
	}
	v, ok := versionForCb(f.CbRgFcLcb)
	if !ok {
		return nil, errors.InvalidEnum(errors.PhaseDecode, []string{"Fib", "cbRgFcLcb"}, f.CbRgFcLcb, "cbRgFcLcb")
	}
	if f.RgFcLcb, err = decodeFibRgFcLcb(r, v); err != nil {
		return nil, errors.WithPath(err, "Fib", "FibRgFcLcb"+v.String())
	}

	if f.CswNew, err = r.ReadU16(); err != nil {
		return nil, errors.WithPath(err, "Fib", "cswNew")
	}
	switch f.CswNew {
	case 0:
	case 2, 5:
		if f.RgCswNew, err = decodeFibRgCswNew(r, f.CswNew); err != nil {
			return nil, errors.WithPath(err, "Fib")
		}
	default:
		return nil, errors.InvalidEnum(errors.PhaseDecode, []string{"Fib", "cswNew"}, f.CswNew, "cswNew")
	}

	if err := f.checkVersion(); err != nil {
		return nil, err
	}
	f.ByteLength = r.Consumed(m)

	log.Debug("fib decoded",
		zap.Uint16("nfib", f.NFib()),
		zap.Stringer("fclcb_version", f.RgFcLcb.Version),
		zap.Uint16("csw_new", f.CswNew),
		zap.String("table_stream", f.Base.TableStream()))
	return f, nil
}

// checkVersion requires the offset table to be at least as large as the
// effective nFib prescribes. Unknown FibBase.nFib values only need the 97
// table.
func (f *Fib) checkVersion() error {
	want, ok := versionForNFib(f.NFib())
	if !ok {
		want = Version97
	}
	if f.RgFcLcb.Version < want {
		return errors.New(errors.PhaseDecode, errors.KindInconsistent).
			Path("Fib", "cbRgFcLcb").
			Value(f.CbRgFcLcb).
			Detail("nFib %#x requires cbRgFcLcb >= %#x, got %#x",
				f.NFib(), versionInfo[want].cbRgFcLcb, f.CbRgFcLcb).
			Build()
	}
	return nil
}
