package dop

import (
	"encoding/binary"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	bin "github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/fib"
)

// Offsets inside a DOP.
const (
	offDxaTab            = 10
	offDttmCreated       = 20
	offNRevision         = 32
	offEpc               = 54
	offView              = 82
	offTypography        = 86
	offCchFollowingPunct = 88
	offRgxchFPunct       = 92
	offLvlDop            = 406
	offNfcFtnRef         = 492
	offDywDispPag        = 498
	offRsidRoot          = 590
	offDopMth            = 640
	offDxaLeftMargin     = offDopMth + 6
	offDxaIndentWrapped  = offDopMth + 30
	offDocID             = 674
	offIImageDPI         = 686
	offFlags2013         = 690

	dopFc = 16
)

func dttm(year, mon, dom, hr, mint, wdy uint32) uint32 {
	return mint | hr<<6 | dom<<11 | mon<<16 | (year-1900)<<20 | wdy<<29
}

// dopBytes returns a table stream holding a valid DOP of size bytes at dopFc.
func dopBytes(size int, edit func(d []byte)) []byte {
	table := make([]byte, dopFc+size+8)
	d := table[dopFc : dopFc+size]
	binary.LittleEndian.PutUint16(d[offDxaTab:], 720)
	if size >= int(Version2007.Size()) {
		binary.LittleEndian.PutUint32(d[offDopMth:], MthbpjcCenter<<4)
	}
	if edit != nil {
		edit(d)
	}
	return table
}

func testFib(nFibNew uint16, lcb uint32) *fib.Fib {
	f := &fib.Fib{
		RgFcLcb: fib.FibRgFcLcb{
			Version: fib.Version2007,
			Pairs:   make([]fib.FcLcb, fib.Version2007.Pairs()),
		},
	}
	f.RgFcLcb.Pairs[fib.IdxDop] = fib.FcLcb{Fc: dopFc, Lcb: lcb}
	if nFibNew != 0 {
		f.CswNew = 2
		if nFibNew == 0x0112 {
			f.CswNew = 5
		}
		f.RgCswNew = &fib.FibRgCswNew{NFibNew: nFibNew}
	}
	return f
}

func TestSelect(t *testing.T) {
	tests := []struct {
		nFibNew uint16
		lcb     uint32
		want    Version
		kind    errors.Kind
	}{
		{0, 500, Version97, ""},
		{0x00D9, 544, Version2000, ""},
		{0x0101, 594, Version2002, ""},
		{0x010C, 616, Version2003, ""},
		{0x0112, 674, Version2007, ""},
		{0x0112, 690, Version2010, ""},
		{0x0112, 694, Version2013, ""},
		{0x0112, 616, 0, errors.KindInconsistent},
		{0x0112, 700, 0, errors.KindInconsistent},
		{0x00C1, 500, 0, errors.KindInvalidEnum},
	}
	for _, tt := range tests {
		v, err := Select(testFib(tt.nFibNew, tt.lcb), tt.lcb)
		if tt.kind != "" {
			if errors.KindOf(err) != tt.kind {
				t.Errorf("nFibNew %#x lcb %d: kind = %q (%v)", tt.nFibNew, tt.lcb, errors.KindOf(err), err)
			}
			continue
		}
		if err != nil || v != tt.want {
			t.Errorf("nFibNew %#x lcb %d: got %s, %v, want %s", tt.nFibNew, tt.lcb, v, err, tt.want)
		}
	}
}

func TestDecodeEveryVersion(t *testing.T) {
	nFibNew := map[Version]uint16{
		Version97:   0,
		Version2000: 0x00D9,
		Version2002: 0x0101,
		Version2003: 0x010C,
		Version2007: 0x0112,
		Version2010: 0x0112,
		Version2013: 0x0112,
	}
	for v := Version97; v <= Version2013; v++ {
		t.Run(v.String(), func(t *testing.T) {
			size := v.Size()
			d, err := Decode(bin.NewReader(dopBytes(int(size), nil)), testFib(nFibNew[v], size), nil)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if d.Version != v {
				t.Fatalf("version = %s", d.Version)
			}
			present := []bool{
				d.Dop97() != nil, d.Dop2000() != nil, d.Dop2002() != nil, d.Dop2003() != nil,
				d.Dop2007() != nil, d.Dop2010() != nil, d.Dop2013() != nil,
			}
			for i, ok := range present {
				if ok != (Version(i) <= v) {
					t.Errorf("%s present = %v", Version(i), ok)
				}
			}
			if d.Base().DxaTab != 720 {
				t.Errorf("dxaTab = %d", d.Base().DxaTab)
			}
		})
	}
}

func TestDecodeDop97(t *testing.T) {
	created := dttm(2004, 3, 15, 9, 30, 1)
	table := dopBytes(500, func(d []byte) {
		d[0] = 1 // fFacingPages
		binary.LittleEndian.PutUint32(d[offDttmCreated:], created)
		binary.LittleEndian.PutUint16(d[offNRevision:], 7)
		binary.LittleEndian.PutUint16(d[offEpc:], EpcEndOfDocument)
		binary.LittleEndian.PutUint16(d[offView:], 100<<3)
		binary.LittleEndian.PutUint16(d[offCchFollowingPunct:], 2)
		binary.LittleEndian.PutUint16(d[offRgxchFPunct:], 0x3001)
		binary.LittleEndian.PutUint16(d[offRgxchFPunct+2:], 0x3002)
		binary.LittleEndian.PutUint16(d[offLvlDop:], 9<<1)
		binary.LittleEndian.PutUint16(d[offNfcFtnRef:], 4)
		binary.LittleEndian.PutUint16(d[offDywDispPag:], 0x1234)
	})
	d, err := Decode(bin.NewReader(table), testFib(0, 500), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Dop2000() != nil || d.Dop2013() != nil {
		t.Fatal("later versions present for a Dop97")
	}
	x := d.Dop97()
	if !x.FFacingPages || x.NRevision != 7 || x.Epc != EpcEndOfDocument || x.PctWwdSaved != 100 {
		t.Errorf("DopBase = %+v", x.DopBase)
	}
	when, ok := x.DttmCreated.Time()
	if !ok || !when.Equal(time.Date(2004, 3, 15, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("dttmCreated = %v (%s)", when, x.DttmCreated)
	}
	if !x.DttmRevised.IsNull() || x.DttmRevised.String() != "null" {
		t.Errorf("dttmRevised = %+v", x.DttmRevised)
	}
	if got := x.DopTypography.FollowingPunct(); len(got) != 2 || got[1] != 0x3002 {
		t.Errorf("following punct = %v", got)
	}
	if len(x.DopTypography.LeadingPunct()) != 0 {
		t.Error("leading punct should be empty")
	}
	if x.LvlDop != 9 || x.NfcFtnRef != 4 || x.DywDispPag != 0x1234 {
		t.Errorf("lvlDop %d nfcFtnRef %d dywDispPag %#x", x.LvlDop, x.NfcFtnRef, x.DywDispPag)
	}
}

func TestDecodeDop2010(t *testing.T) {
	table := dopBytes(690, func(d []byte) {
		binary.LittleEndian.PutUint16(d[offNRevision:], 42)
		binary.LittleEndian.PutUint32(d[offRsidRoot:], 0x00A1B2C3)
		binary.LittleEndian.PutUint32(d[offDopMth:], MthbrkRepeat|MthbrkSubPlusMinus<<2|MthbpjcRight<<4)
		binary.LittleEndian.PutUint32(d[offDxaLeftMargin:], 1440)
		binary.LittleEndian.PutUint32(d[offDxaIndentWrapped:], MaxMathMargin)
		binary.LittleEndian.PutUint32(d[offDocID:], 0x01020304)
		binary.LittleEndian.PutUint32(d[offIImageDPI:], 220)
	})
	d, err := Decode(bin.NewReader(table), testFib(0x0112, 690), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	x := d.Dop2010()
	if x == nil || d.Dop2013() != nil {
		t.Fatalf("Dop2010 = %v, Dop2013 = %v", x, d.Dop2013())
	}
	if d.Dop97() != &x.Dop97 || d.Dop2007() != &x.Dop2007 || d.Dop2002() != &x.Dop2002 {
		t.Error("ancestor views do not share the decoded value")
	}
	if x.NRevision != 42 || x.RsidRoot != 0x00A1B2C3 {
		t.Errorf("nRevision %d rsidRoot %#x", x.NRevision, x.RsidRoot)
	}
	m := x.DopMth
	if m.Mthbrk != MthbrkRepeat || m.MthbrkSub != MthbrkSubPlusMinus || m.Mthbpjc != MthbpjcRight {
		t.Errorf("DopMth = %+v", m)
	}
	if m.DxaLeftMargin != 1440 || m.DxaIndentWrapped != MaxMathMargin {
		t.Errorf("margins %d, %d", m.DxaLeftMargin, m.DxaIndentWrapped)
	}
	if x.DocID != 0x01020304 || x.IImageDPI != 220 {
		t.Errorf("docid %#x dpi %d", x.DocID, x.IImageDPI)
	}
}

func TestDecodeDop2013(t *testing.T) {
	table := dopBytes(694, func(d []byte) {
		binary.LittleEndian.PutUint32(d[offFlags2013:], 1)
	})
	d, err := Decode(bin.NewReader(table), testFib(0x0112, 694), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !d.Dop2013().FChartTrackingRefBased() || d.Dop2010().FDiscardImageData() {
		t.Error("2013 flags")
	}
}

func TestDecodeCorruption(t *testing.T) {
	put16 := func(off int, v uint16) func([]byte) {
		return func(d []byte) { binary.LittleEndian.PutUint16(d[off:], v) }
	}
	put32 := func(off int, v uint32) func([]byte) {
		return func(d []byte) { binary.LittleEndian.PutUint32(d[off:], v) }
	}
	tests := []struct {
		name    string
		size    int
		lcb     uint32
		nFibNew uint16
		edit    func([]byte)
		kind    errors.Kind
	}{
		{"lcbDop longer than Dop97", 501, 501, 0, nil, errors.KindLengthMismatch},
		{"lcbDop shorter than Dop2000", 543, 543, 0x00D9, nil, errors.KindTruncated},
		{"no DOP", 500, 0, 0, nil, errors.KindInconsistent},
		{"DOP past table stream", 500, 600, 0, nil, errors.KindOutOfBounds},
		{"cchFollowingPunct", 500, 500, 0, put16(offCchFollowingPunct, 102), errors.KindOutOfRange},
		{"cchLeadingPunct", 500, 500, 0, put16(offTypography+4, 52), errors.KindOutOfRange},
		{"dttm month", 500, 500, 0, put32(offDttmCreated, dttm(2001, 13, 1, 0, 0, 0)), errors.KindOutOfRange},
		{"dttm minute", 500, 500, 0, put32(offDttmCreated, dttm(2001, 1, 1, 0, 60, 0)), errors.KindOutOfRange},
		{"epc", 500, 500, 0, put16(offEpc, 1), errors.KindInvalidEnum},
		{"mthbrk", 674, 674, 0x0112, put32(offDopMth, 3|MthbpjcLeft<<4), errors.KindOutOfRange},
		{"mthbrkSub", 674, 674, 0x0112, put32(offDopMth, 3<<2|MthbpjcLeft<<4), errors.KindOutOfRange},
		{"mthbpjc zero", 674, 674, 0x0112, put32(offDopMth, 0), errors.KindOutOfRange},
		{"mthbpjc five", 674, 674, 0x0112, put32(offDopMth, 5<<4), errors.KindOutOfRange},
		{"left margin", 674, 674, 0x0112, put32(offDxaLeftMargin, MaxMathMargin+1), errors.KindOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bin.NewReader(dopBytes(tt.size, tt.edit)), testFib(tt.nFibNew, tt.lcb), nil)
			if !errors.IsCorrupted(err) {
				t.Fatalf("expected corruption, got %v", err)
			}
			if errors.KindOf(err) != tt.kind {
				t.Errorf("kind = %q, want %q (%v)", errors.KindOf(err), tt.kind, err)
			}
		})
	}
}

func TestAdvisoryValuesOnlyWarn(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	table := dopBytes(500, func(d []byte) {
		binary.LittleEndian.PutUint16(d[offDxaTab:], 708)
		binary.LittleEndian.PutUint16(d[offView:], 5<<3)
	})
	d, err := Decode(bin.NewReader(table), testFib(0, 500), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Base().DxaTab != 708 || d.Base().PctWwdSaved != 5 {
		t.Errorf("values not retained: %d, %d", d.Base().DxaTab, d.Base().PctWwdSaved)
	}
	if logs.Len() != 2 {
		t.Errorf("warnings = %d, want 2", logs.Len())
	}
	if logs.FilterField(zap.Uint16("dxa_tab", 708)).Len() != 1 {
		t.Error("missing dxaTab warning")
	}
}

func TestAdvisoryValuesUseGivenLogger(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	table := dopBytes(500, func(d []byte) {
		binary.LittleEndian.PutUint16(d[offDxaTab:], 708)
	})
	if _, err := Decode(bin.NewReader(table), testFib(0, 500), zap.New(core)); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if logs.FilterField(zap.Uint16("dxa_tab", 708)).Len() != 1 {
		t.Errorf("warnings = %v", logs.All())
	}
}

func TestDop2000FlagWords(t *testing.T) {
	const offFlags2000, offWebOpt = 504, 506
	table := dopBytes(544, func(d []byte) {
		binary.LittleEndian.PutUint16(d[offFlags2000:], 1<<8|0xA<<12)
		binary.LittleEndian.PutUint16(d[offWebOpt:], 1|96<<2|1<<13)
	})
	d, err := Decode(bin.NewReader(table), testFib(0x00D9, 544), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	x := d.Dop2000()
	if !x.FFCCAllDone || x.Empty1 != 0 || x.ScreenSizeWebOpt != 0xA {
		t.Errorf("fFCCAllDone %v empty1 %#x screenSizeWebOpt %#x", x.FFCCAllDone, x.Empty1, x.ScreenSizeWebOpt)
	}
	if x.FLADAllDone || x.FMaybeFitText || x.FRelyOnCSSWebOpt || x.FAllowPNGWebOpt {
		t.Error("unexpected flags in the first word")
	}
	if !x.FOrganizeInFolder || x.FUseLongFileNames || x.IPixelsPerInchWebOpt != 96 {
		t.Errorf("fOrganizeInFolder %v fUseLongFileNames %v iPixelsPerInch %d",
			x.FOrganizeInFolder, x.FUseLongFileNames, x.IPixelsPerInchWebOpt)
	}
	if x.FWebOptionsInit || !x.FMaybeFEL || x.FCharLineUnits || x.UnusedWebOpt {
		t.Error("web option flags")
	}
}

func ones(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 0xFF
	}
	return b
}

// Each packed word read from all-ones input must be fully consumed by its
// fields. The bitfield reader panics on both over-read and leftovers.
func TestPackedWordsConsumeEveryBit(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		decode func(r *bin.Reader) error
	}{
		{"base flags", 8, func(r *bin.Reader) error { return (&DopBase{}).decodeFlags(r) }},
		{"copts60", 2, func(r *bin.Reader) error { _, err := decodeCopts60(r); return err }},
		{"dttm", 4, func(r *bin.Reader) error { _, err := decodeDTTM(r, "dttm"); return err }},
		{"typography", 2, func(r *bin.Reader) error { _, err := decodeDopTypography(r); return err }},
		{"dogrid", 10, func(r *bin.Reader) error { _, err := decodeDogrid(r); return err }},
		{"asumyi", 2, func(r *bin.Reader) error { _, err := decodeAsumyi(r); return err }},
		{"dopMth", 4, func(r *bin.Reader) error { _, err := decodeDopMth(r); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if p := recover(); p != nil {
					t.Fatalf("panic: %v", p)
				}
			}()
			// range checks may reject all-ones values once the word is read
			_ = tt.decode(bin.NewReader(ones(tt.size)))
		})
	}
}

func TestDopPackedWordsAllOnes(t *testing.T) {
	words := []struct{ off, n int }{
		{0, 10}, // flags and copts60
		{52, 4}, // edn and epc
		{offView, 2},
		{offTypography, 2},
		{404, 4}, // dogrid flags and Dop97 flags
		{410, 2}, // asumyi
		{434, 4}, // virus
		{504, 4}, // Dop2000 flags and web options
		{542, 2},
	}
	table := dopBytes(544, func(d []byte) {
		for _, w := range words {
			copy(d[w.off:], ones(w.n))
		}
	})
	d, err := Decode(bin.NewReader(table), testFib(0x00D9, 544), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	base := d.Base()
	if base.NFtn != 1<<14-1 || base.NEdn != 1<<14-1 || base.Unused5 != 0x7F || base.Epc != EpcEndOfDocument {
		t.Errorf("nFtn %#x nEdn %#x unused5 %#x epc %d", base.NFtn, base.NEdn, base.Unused5, base.Epc)
	}
	if base.PctWwdSaved != 1<<9-1 || !base.IGutterPos || !base.FEmbedFonts || !base.Copts60.FDntBlnSbDbWid {
		t.Error("base high bits")
	}
	x97 := d.Dop97()
	if x97.DopTypography.Reserved != 0x1F || !x97.Dogrid.FFollowMargins || !x97.Unused4 {
		t.Error("Dop97 high bits")
	}
	if x97.Asumyi.Reserved != 1<<11-1 || x97.KeyVirusSession30 != 1<<30-1 {
		t.Errorf("asumyi reserved %#x keyVirusSession30 %#x", x97.Asumyi.Reserved, x97.KeyVirusSession30)
	}
	x := d.Dop2000()
	if x.Empty1 != 0xF || x.ScreenSizeWebOpt != 0xF || x.IPixelsPerInchWebOpt != 1<<10-1 || !x.UnusedWebOpt {
		t.Errorf("empty1 %#x screenSizeWebOpt %#x iPixelsPerInch %#x", x.Empty1, x.ScreenSizeWebOpt, x.IPixelsPerInchWebOpt)
	}
	if !x.FAlwaysMergeEmptyNamespace {
		t.Error("Dop2000 last flag")
	}
}
