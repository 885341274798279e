package dop

import (
	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
)

// Copts80 extends Copts60 with the Word 97 compatibility options. The added
// flags are kept as one word.
type Copts80 struct {
	Copts60 Copts60
	Flags80 uint16
}

func decodeCopts80(r *binary.Reader) (Copts80, error) {
	var c Copts80
	var err error
	if c.Copts60, err = decodeCopts60(r); err != nil {
		return c, err
	}
	if c.Flags80, err = r.ReadU16(); err != nil {
		return c, err
	}
	return c, nil
}

// Copts is the full compatibility option set of Word 2000 and later.
type Copts struct {
	Copts80 Copts80
	Flags   [7]uint32
}

func decodeCopts(r *binary.Reader) (Copts, error) {
	var c Copts
	var err error
	if c.Copts80, err = decodeCopts80(r); err != nil {
		return c, errors.WithPath(err, "Copts80")
	}
	for i := range c.Flags {
		if c.Flags[i], err = r.ReadU32(); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Dop2000 is the DOP written by Word 2000 (544 bytes).
type Dop2000 struct {
	Dop97

	IlvlLastBulletMain uint8
	IlvlLastNumberMain uint8
	IstdClickParaType  uint16

	FLADAllDone              bool
	FEnvelopeVis             bool
	FMaybeTentativeListInDoc bool
	FMaybeFitText            bool
	Empty1                   uint8
	FFCCAllDone              bool
	FRelyOnCSSWebOpt         bool
	FRelyOnVMLWebOpt         bool
	FAllowPNGWebOpt          bool
	ScreenSizeWebOpt         uint8

	FOrganizeInFolder    bool
	FUseLongFileNames    bool
	IPixelsPerInchWebOpt uint16
	FWebOptionsInit      bool
	FMaybeFEL            bool
	FCharLineUnits       bool
	UnusedWebOpt         bool

	Copts          Copts
	VerCompatPre10 uint16

	FNoMargPgvwSaved           bool
	Unused2000                 uint8
	FBulletProofed             bool
	Empty2000                  bool
	FSaveUim                   bool
	FFilterPrivacy             bool
	Empty2000b                 bool
	FSeenRepairs               bool
	FHasXML                    bool
	Unused2000b                bool
	FValidateXML               bool
	FSaveInvalidXML            bool
	FShowXMLErrors             bool
	FAlwaysMergeEmptyNamespace bool
}

func decodeDop2000(r *binary.Reader) (Dop2000, error) {
	var d Dop2000
	var err error
	if d.Dop97, err = decodeDop97(r); err != nil {
		return d, errors.WithPath(err, "Dop97")
	}
	if d.IlvlLastBulletMain, err = r.ReadU8(); err != nil {
		return d, err
	}
	if d.IlvlLastNumberMain, err = r.ReadU8(); err != nil {
		return d, err
	}
	if d.IstdClickParaType, err = r.ReadU16(); err != nil {
		return d, err
	}

	a, err := bitfield.Read16(r)
	if err != nil {
		return d, err
	}
	d.FLADAllDone = a.ReadBit()
	d.FEnvelopeVis = a.ReadBit()
	d.FMaybeTentativeListInDoc = a.ReadBit()
	d.FMaybeFitText = a.ReadBit()
	d.Empty1 = uint8(a.ReadBits(4))
	d.FFCCAllDone = a.ReadBit()
	d.FRelyOnCSSWebOpt = a.ReadBit()
	d.FRelyOnVMLWebOpt = a.ReadBit()
	d.FAllowPNGWebOpt = a.ReadBit()
	d.ScreenSizeWebOpt = uint8(a.ReadBits(4))
	a.Done()

	web, err := bitfield.Read16(r)
	if err != nil {
		return d, err
	}
	d.FOrganizeInFolder = web.ReadBit()
	d.FUseLongFileNames = web.ReadBit()
	d.IPixelsPerInchWebOpt = web.ReadBits(10)
	d.FWebOptionsInit = web.ReadBit()
	d.FMaybeFEL = web.ReadBit()
	d.FCharLineUnits = web.ReadBit()
	d.UnusedWebOpt = web.ReadBit()
	web.Done()

	if d.Copts, err = decodeCopts(r); err != nil {
		return d, errors.WithPath(err, "Copts")
	}
	if d.VerCompatPre10, err = r.ReadU16(); err != nil {
		return d, err
	}

	b, err := bitfield.Read16(r)
	if err != nil {
		return d, err
	}
	d.FNoMargPgvwSaved = b.ReadBit()
	d.Unused2000 = uint8(b.ReadBits(3))
	d.FBulletProofed = b.ReadBit()
	d.Empty2000 = b.ReadBit()
	d.FSaveUim = b.ReadBit()
	d.FFilterPrivacy = b.ReadBit()
	d.Empty2000b = b.ReadBit()
	d.FSeenRepairs = b.ReadBit()
	d.FHasXML = b.ReadBit()
	d.Unused2000b = b.ReadBit()
	d.FValidateXML = b.ReadBit()
	d.FSaveInvalidXML = b.ReadBit()
	d.FShowXMLErrors = b.ReadBit()
	d.FAlwaysMergeEmptyNamespace = b.ReadBit()
	b.Done()
	return d, nil
}

// Dop2002 is the DOP written by Word 2002 (594 bytes).
type Dop2002 struct {
	Dop2000

	Unused2002     uint32
	Flags2002      uint16
	IstdTableDflt  uint16
	VerCompat      uint16
	GrfFmtFilter   uint16
	IFolioPages    int16
	CpgText        uint32
	CpMinRMText    int32
	CpMinRMFtn     int32
	CpMinRMHdd     int32
	CpMinRMAtn     int32
	CpMinRMEdn     int32
	CpMinRmTxbx    int32
	CpMinRmHdrTxbx int32
	RsidRoot       uint32
}

func decodeDop2002(r *binary.Reader) (Dop2002, error) {
	var d Dop2002
	var err error
	if d.Dop2000, err = decodeDop2000(r); err != nil {
		return d, errors.WithPath(err, "Dop2000")
	}
	if d.Unused2002, err = r.ReadU32(); err != nil {
		return d, err
	}
	words, err := r.ReadU16s(4)
	if err != nil {
		return d, err
	}
	d.Flags2002, d.IstdTableDflt, d.VerCompat, d.GrfFmtFilter = words[0], words[1], words[2], words[3]
	if d.IFolioPages, err = r.ReadI16(); err != nil {
		return d, err
	}
	if d.CpgText, err = r.ReadU32(); err != nil {
		return d, err
	}
	for _, dst := range []*int32{
		&d.CpMinRMText, &d.CpMinRMFtn, &d.CpMinRMHdd, &d.CpMinRMAtn,
		&d.CpMinRMEdn, &d.CpMinRmTxbx, &d.CpMinRmHdrTxbx,
	} {
		if *dst, err = r.ReadI32(); err != nil {
			return d, err
		}
	}
	if d.RsidRoot, err = r.ReadU32(); err != nil {
		return d, err
	}
	return d, nil
}

// Dop2003 is the DOP written by Word 2003 (616 bytes).
type Dop2003 struct {
	Dop2002

	Flags2003a       uint32
	Flags2003b       uint32
	DxaPageLock      uint16
	DyaPageLock      uint16
	PctFontLock      int32
	Grfitbid         uint8
	Empty3           uint8
	IlfoMacAtCleanup uint16
	Reserved2003     uint16
}

func decodeDop2003(r *binary.Reader) (Dop2003, error) {
	var d Dop2003
	var err error
	if d.Dop2002, err = decodeDop2002(r); err != nil {
		return d, errors.WithPath(err, "Dop2002")
	}
	if d.Flags2003a, err = r.ReadU32(); err != nil {
		return d, err
	}
	if d.Flags2003b, err = r.ReadU32(); err != nil {
		return d, err
	}
	if d.DxaPageLock, err = r.ReadU16(); err != nil {
		return d, err
	}
	if d.DyaPageLock, err = r.ReadU16(); err != nil {
		return d, err
	}
	if d.PctFontLock, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.Grfitbid, err = r.ReadU8(); err != nil {
		return d, err
	}
	if d.Empty3, err = r.ReadU8(); err != nil {
		return d, err
	}
	if d.IlfoMacAtCleanup, err = r.ReadU16(); err != nil {
		return d, err
	}
	if d.Reserved2003, err = r.ReadU16(); err != nil {
		return d, err
	}
	return d, nil
}
