package dop

import (
	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
)

// Punctuation table limits of DopTypography.
const (
	MaxFollowingPunct = 101
	MaxLeadingPunct   = 51
)

// DopTypography holds East Asian line breaking settings.
type DopTypography struct {
	FKerningPunct      bool
	IJustification     uint8
	ILevelOfKinsoku    uint8
	F2on1              bool
	Unused             bool
	ICustomKsu         uint8
	FJapaneseUseLevel2 bool
	Reserved           uint8
	CchFollowingPunct  int16
	CchLeadingPunct    int16
	RgxchFPunct        [MaxFollowingPunct]uint16
	RgxchLPunct        [MaxLeadingPunct]uint16
}

// FollowingPunct returns the characters that may not start a line.
func (t *DopTypography) FollowingPunct() []uint16 {
	return t.RgxchFPunct[:t.CchFollowingPunct]
}

// LeadingPunct returns the characters that may not end a line.
func (t *DopTypography) LeadingPunct() []uint16 {
	return t.RgxchLPunct[:t.CchLeadingPunct]
}

func decodeDopTypography(r *binary.Reader) (DopTypography, error) {
	var t DopTypography
	b, err := bitfield.Read16(r)
	if err != nil {
		return t, err
	}
	t.FKerningPunct = b.ReadBit()
	t.IJustification = uint8(b.ReadBits(2))
	t.ILevelOfKinsoku = uint8(b.ReadBits(2))
	t.F2on1 = b.ReadBit()
	t.Unused = b.ReadBit()
	t.ICustomKsu = uint8(b.ReadBits(3))
	t.FJapaneseUseLevel2 = b.ReadBit()
	t.Reserved = uint8(b.ReadBits(5))
	b.Done()

	if t.CchFollowingPunct, err = r.ReadI16(); err != nil {
		return t, err
	}
	if t.CchFollowingPunct < 0 || t.CchFollowingPunct > MaxFollowingPunct {
		return t, errors.OutOfRange(errors.PhaseDecode, []string{"cchFollowingPunct"}, t.CchFollowingPunct, 0, MaxFollowingPunct)
	}
	if t.CchLeadingPunct, err = r.ReadI16(); err != nil {
		return t, err
	}
	if t.CchLeadingPunct < 0 || t.CchLeadingPunct > MaxLeadingPunct {
		return t, errors.OutOfRange(errors.PhaseDecode, []string{"cchLeadingPunct"}, t.CchLeadingPunct, 0, MaxLeadingPunct)
	}
	f, err := r.ReadU16s(MaxFollowingPunct)
	if err != nil {
		return t, err
	}
	copy(t.RgxchFPunct[:], f)
	l, err := r.ReadU16s(MaxLeadingPunct)
	if err != nil {
		return t, err
	}
	copy(t.RgxchLPunct[:], l)
	return t, nil
}

// Dogrid is the drawing grid.
type Dogrid struct {
	XaGrid         int16
	YaGrid         int16
	DxaGrid        int16
	DyaGrid        int16
	DyGridDisplay  uint8
	Unused         bool
	DxGridDisplay  uint8
	FFollowMargins bool
}

func decodeDogrid(r *binary.Reader) (Dogrid, error) {
	var g Dogrid
	var err error
	for _, dst := range []*int16{&g.XaGrid, &g.YaGrid, &g.DxaGrid, &g.DyaGrid} {
		if *dst, err = r.ReadI16(); err != nil {
			return g, err
		}
	}
	b, err := bitfield.Read16(r)
	if err != nil {
		return g, err
	}
	g.DyGridDisplay = uint8(b.ReadBits(7))
	g.Unused = b.ReadBit()
	g.DxGridDisplay = uint8(b.ReadBits(7))
	g.FFollowMargins = b.ReadBit()
	b.Done()
	return g, nil
}

// Asumyi holds AutoSummary state.
type Asumyi struct {
	FValid        bool
	FView         bool
	IViewBy       uint8
	FUpdateProps  bool
	Reserved      uint16
	WDlgLevel     int16
	LHighestLevel int32
	LCurrentLevel int32
}

func decodeAsumyi(r *binary.Reader) (Asumyi, error) {
	var a Asumyi
	b, err := bitfield.Read16(r)
	if err != nil {
		return a, err
	}
	a.FValid = b.ReadBit()
	a.FView = b.ReadBit()
	a.IViewBy = uint8(b.ReadBits(2))
	a.FUpdateProps = b.ReadBit()
	a.Reserved = b.ReadBits(11)
	b.Done()
	if a.WDlgLevel, err = r.ReadI16(); err != nil {
		return a, err
	}
	if a.LHighestLevel, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.LCurrentLevel, err = r.ReadI32(); err != nil {
		return a, err
	}
	return a, nil
}

// Dop97 is the DOP written by Word 97 (500 bytes).
type Dop97 struct {
	DopBase

	Adt           uint16
	DopTypography DopTypography
	Dogrid        Dogrid

	Unused1         bool
	LvlDop          uint8
	FGramAllDone    bool
	FGramAllClean   bool
	FSubsetFonts    bool
	Unused2         bool
	FHtmlDoc        bool
	FDiskLvcInvalid bool
	FSnapBorder     bool
	FIncludeHeader  bool
	FIncludeFooter  bool
	Unused3         bool
	Unused4         bool
	Unused5         uint16

	Asumyi           Asumyi
	CChWS            int32
	CChWSWithSubdocs int32
	GrfDocEvents     uint32

	FVirusPrompted    bool
	FVirusLoadSafe    bool
	KeyVirusSession30 uint32

	Space                 [30]byte
	CpMaxListCacheMainDoc int32
	IlfoLastBulletMain    uint16
	IlfoLastNumberMain    uint16
	CDBC                  int32
	CDBCWithSubdocs       int32
	Reserved3a            uint32
	Reserved3b            uint32
	NfcFtnRef             uint16
	NfcEdnRef             uint16
	HpsZoomFontPag        uint16
	DywDispPag            uint16
}

func decodeDop97(r *binary.Reader) (Dop97, error) {
	var d Dop97
	var err error
	if d.DopBase, err = decodeDopBase(r); err != nil {
		return d, errors.WithPath(err, "DopBase")
	}
	if d.Adt, err = r.ReadU16(); err != nil {
		return d, err
	}
	if d.DopTypography, err = decodeDopTypography(r); err != nil {
		return d, errors.WithPath(err, "DopTypography")
	}
	if d.Dogrid, err = decodeDogrid(r); err != nil {
		return d, errors.WithPath(err, "Dogrid")
	}

	b, err := bitfield.Read16(r)
	if err != nil {
		return d, err
	}
	d.Unused1 = b.ReadBit()
	d.LvlDop = uint8(b.ReadBits(4))
	d.FGramAllDone = b.ReadBit()
	d.FGramAllClean = b.ReadBit()
	d.FSubsetFonts = b.ReadBit()
	d.Unused2 = b.ReadBit()
	d.FHtmlDoc = b.ReadBit()
	d.FDiskLvcInvalid = b.ReadBit()
	d.FSnapBorder = b.ReadBit()
	d.FIncludeHeader = b.ReadBit()
	d.FIncludeFooter = b.ReadBit()
	d.Unused3 = b.ReadBit()
	d.Unused4 = b.ReadBit()
	b.Done()
	if d.Unused5, err = r.ReadU16(); err != nil {
		return d, err
	}

	if d.Asumyi, err = decodeAsumyi(r); err != nil {
		return d, errors.WithPath(err, "Asumyi")
	}
	if d.CChWS, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CChWSWithSubdocs, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.GrfDocEvents, err = r.ReadU32(); err != nil {
		return d, err
	}
	virus, err := bitfield.Read32(r)
	if err != nil {
		return d, err
	}
	d.FVirusPrompted = virus.ReadBit()
	d.FVirusLoadSafe = virus.ReadBit()
	d.KeyVirusSession30 = virus.ReadBits(30)
	virus.Done()

	space, err := r.ReadBytes(len(d.Space))
	if err != nil {
		return d, err
	}
	copy(d.Space[:], space)
	if d.CpMaxListCacheMainDoc, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.IlfoLastBulletMain, err = r.ReadU16(); err != nil {
		return d, err
	}
	if d.IlfoLastNumberMain, err = r.ReadU16(); err != nil {
		return d, err
	}
	if d.CDBC, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CDBCWithSubdocs, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.Reserved3a, err = r.ReadU32(); err != nil {
		return d, err
	}
	if d.Reserved3b, err = r.ReadU32(); err != nil {
		return d, err
	}
	tail, err := r.ReadU16s(4)
	if err != nil {
		return d, err
	}
	d.NfcFtnRef, d.NfcEdnRef, d.HpsZoomFontPag, d.DywDispPag = tail[0], tail[1], tail[2], tail[3]
	return d, nil
}
