package dop

import (
	"go.uber.org/zap"

	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
)

// Sizes of the fixed-size parts of a DOP.
const (
	SizeDopBase       = 84
	SizeDopTypography = 310
	SizeDogrid        = 10
	SizeAsumyi        = 12
	SizeCopts60       = 2
	SizeCopts80       = 4
	SizeCopts         = 32
	SizeDopMth        = 34
)

// Endnote placement values allowed in DopBase.epc.
const (
	EpcEndOfSection  = 0
	EpcEndOfDocument = 3
)

const defaultDxaTab = 720

// Copts60 holds the compatibility options inherited from Word 6.
type Copts60 struct {
	FNoTabForInd            bool
	FNoSpaceRaiseLower      bool
	FSuppressSpBfAfterPgBrk bool
	FWrapTrailSpaces        bool
	FMapPrintTextColor      bool
	FNoColumnBalance        bool
	FConvMailMergeEsc       bool
	FSuppressTopSpacing     bool
	FOrigWordTableRules     bool
	Unused14                bool
	FShowBreaksInFrames     bool
	FSwapBordersFacingPgs   bool
	FLeaveBackslashAlone    bool
	FExpShRtn               bool
	FDntULTrlSpc            bool
	FDntBlnSbDbWid          bool
}

func decodeCopts60(r *binary.Reader) (Copts60, error) {
	b, err := bitfield.Read16(r)
	if err != nil {
		return Copts60{}, err
	}
	c := Copts60{
		FNoTabForInd:            b.ReadBit(),
		FNoSpaceRaiseLower:      b.ReadBit(),
		FSuppressSpBfAfterPgBrk: b.ReadBit(),
		FWrapTrailSpaces:        b.ReadBit(),
		FMapPrintTextColor:      b.ReadBit(),
		FNoColumnBalance:        b.ReadBit(),
		FConvMailMergeEsc:       b.ReadBit(),
		FSuppressTopSpacing:     b.ReadBit(),
		FOrigWordTableRules:     b.ReadBit(),
		Unused14:                b.ReadBit(),
		FShowBreaksInFrames:     b.ReadBit(),
		FSwapBordersFacingPgs:   b.ReadBit(),
		FLeaveBackslashAlone:    b.ReadBit(),
		FExpShRtn:               b.ReadBit(),
		FDntULTrlSpc:            b.ReadBit(),
		FDntBlnSbDbWid:          b.ReadBit(),
	}
	b.Done()
	return c, nil
}

// DopBase is the part of the DOP shared by every version.
type DopBase struct {
	FFacingPages      bool
	Unused1           bool
	FPMHMainDoc       bool
	Unused2           uint8
	Fpc               uint8
	Unused3           bool
	Unused4           uint8
	RncFtn            uint8
	NFtn              uint16
	FOutlineDirtySave bool
	Unused5           uint8
	FOnlyMacPics      bool
	FOnlyWinPics      bool
	FLabelDoc         bool
	FHyphCapitals     bool
	FAutoHyphen       bool
	FFormNoFields     bool
	FLinkStyles       bool
	FRevMarking       bool
	Unused6           bool
	FExactCWords      bool
	FPagHidden        bool
	FPagResults       bool
	FLockAtn          bool
	FMirrorMargins    bool
	FWord97Compat     bool
	Unused7           bool
	Unused8           bool
	FProtEnabled      bool
	FDispFormFldSel   bool
	FRMView           bool
	FRMPrint          bool
	FLockVbaProj      bool
	FLockRev          bool
	FEmbedFonts       bool

	Copts60 Copts60

	DxaTab        uint16
	CpgWebOpt     uint16
	DxaHotZ       uint16
	CConsecHypLim uint16
	WSpare2       uint16
	DttmCreated   DTTM
	DttmRevised   DTTM
	DttmLastPrint DTTM
	NRevision     int16
	TmEdited      int32
	CWords        int32
	CCh           int32
	CPg           int16
	CParas        int32

	RncEdn uint8
	NEdn   uint16

	Epc                    uint8
	Unused14               uint8
	Unused15               uint8
	FPrintFormData         bool
	FSaveFormData          bool
	FShadeFormData         bool
	FShadeMergeFields      bool
	Reserved2              bool
	FIncludeSubdocsInStats bool

	CLines            int32
	CWordsWithSubdocs int32
	CChWithSubdocs    int32
	CPgWithSubdocs    int16
	CParasWithSubdocs int32
	CLinesWithSubdocs int32
	LKeyProtDoc       int32

	WvkoSaved   uint8
	PctWwdSaved uint16
	ZkSaved     uint8
	Unused16    bool
	IGutterPos  bool
}

func decodeDopBase(r *binary.Reader) (DopBase, error) {
	var d DopBase
	if err := d.decodeFlags(r); err != nil {
		return d, err
	}

	var err error
	if d.Copts60, err = decodeCopts60(r); err != nil {
		return d, errors.WithPath(err, "copts60")
	}
	words, err := r.ReadU16s(5)
	if err != nil {
		return d, err
	}
	d.DxaTab, d.CpgWebOpt, d.DxaHotZ, d.CConsecHypLim, d.WSpare2 = words[0], words[1], words[2], words[3], words[4]

	for _, f := range []struct {
		name string
		dst  *DTTM
	}{
		{"dttmCreated", &d.DttmCreated},
		{"dttmRevised", &d.DttmRevised},
		{"dttmLastPrint", &d.DttmLastPrint},
	} {
		if *f.dst, err = decodeDTTM(r, f.name); err != nil {
			return d, err
		}
	}

	if d.NRevision, err = r.ReadI16(); err != nil {
		return d, err
	}
	if d.TmEdited, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CWords, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CCh, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CPg, err = r.ReadI16(); err != nil {
		return d, err
	}
	if d.CParas, err = r.ReadI32(); err != nil {
		return d, err
	}

	edn, err := bitfield.Read16(r)
	if err != nil {
		return d, err
	}
	d.RncEdn = uint8(edn.ReadBits(2))
	d.NEdn = edn.ReadBits(14)
	edn.Done()

	epc, err := bitfield.Read16(r)
	if err != nil {
		return d, err
	}
	d.Epc = uint8(epc.ReadBits(2))
	d.Unused14 = uint8(epc.ReadBits(4))
	d.Unused15 = uint8(epc.ReadBits(4))
	d.FPrintFormData = epc.ReadBit()
	d.FSaveFormData = epc.ReadBit()
	d.FShadeFormData = epc.ReadBit()
	d.FShadeMergeFields = epc.ReadBit()
	d.Reserved2 = epc.ReadBit()
	d.FIncludeSubdocsInStats = epc.ReadBit()
	epc.Done()
	if d.Epc != EpcEndOfSection && d.Epc != EpcEndOfDocument {
		return d, errors.InvalidEnum(errors.PhaseDecode, []string{"epc"}, d.Epc, "epc")
	}

	if d.CLines, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CWordsWithSubdocs, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CChWithSubdocs, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CPgWithSubdocs, err = r.ReadI16(); err != nil {
		return d, err
	}
	if d.CParasWithSubdocs, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.CLinesWithSubdocs, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.LKeyProtDoc, err = r.ReadI32(); err != nil {
		return d, err
	}

	view, err := bitfield.Read16(r)
	if err != nil {
		return d, err
	}
	d.WvkoSaved = uint8(view.ReadBits(3))
	d.PctWwdSaved = view.ReadBits(9)
	d.ZkSaved = uint8(view.ReadBits(2))
	d.Unused16 = view.ReadBit()
	d.IGutterPos = view.ReadBit()
	view.Done()

	return d, nil
}

func (d *DopBase) decodeFlags(r *binary.Reader) error {
	a, err := bitfield.Read16(r)
	if err != nil {
		return err
	}
	d.FFacingPages = a.ReadBit()
	d.Unused1 = a.ReadBit()
	d.FPMHMainDoc = a.ReadBit()
	d.Unused2 = uint8(a.ReadBits(2))
	d.Fpc = uint8(a.ReadBits(2))
	d.Unused3 = a.ReadBit()
	d.Unused4 = uint8(a.ReadBits(8))
	a.Done()

	ftn, err := bitfield.Read16(r)
	if err != nil {
		return err
	}
	d.RncFtn = uint8(ftn.ReadBits(2))
	d.NFtn = ftn.ReadBits(14)
	ftn.Done()

	h, err := bitfield.Read8(r)
	if err != nil {
		return err
	}
	d.FOutlineDirtySave = h.ReadBit()
	d.Unused5 = h.ReadBits(7)
	h.Done()

	j, err := bitfield.Read8(r)
	if err != nil {
		return err
	}
	d.FOnlyMacPics = j.ReadBit()
	d.FOnlyWinPics = j.ReadBit()
	d.FLabelDoc = j.ReadBit()
	d.FHyphCapitals = j.ReadBit()
	d.FAutoHyphen = j.ReadBit()
	d.FFormNoFields = j.ReadBit()
	d.FLinkStyles = j.ReadBit()
	d.FRevMarking = j.ReadBit()
	j.Done()

	k, err := bitfield.Read16(r)
	if err != nil {
		return err
	}
	d.Unused6 = k.ReadBit()
	d.FExactCWords = k.ReadBit()
	d.FPagHidden = k.ReadBit()
	d.FPagResults = k.ReadBit()
	d.FLockAtn = k.ReadBit()
	d.FMirrorMargins = k.ReadBit()
	d.FWord97Compat = k.ReadBit()
	d.Unused7 = k.ReadBit()
	d.Unused8 = k.ReadBit()
	d.FProtEnabled = k.ReadBit()
	d.FDispFormFldSel = k.ReadBit()
	d.FRMView = k.ReadBit()
	d.FRMPrint = k.ReadBit()
	d.FLockVbaProj = k.ReadBit()
	d.FLockRev = k.ReadBit()
	d.FEmbedFonts = k.ReadBit()
	k.Done()
	return nil
}

// advise logs values the format recommends against. They never fail
// decoding.
func (d *DopBase) advise(log *zap.Logger) {
	if d.DxaTab != defaultDxaTab {
		log.Warn("dop: unexpected default tab width",
			zap.Uint16("dxa_tab", d.DxaTab),
			zap.Uint16("want", defaultDxaTab))
	}
	if d.PctWwdSaved != 0 && (d.PctWwdSaved < 10 || d.PctWwdSaved > 500) {
		log.Warn("dop: saved zoom outside 10..500",
			zap.Uint16("pct_wwd_saved", d.PctWwdSaved))
	}
}
