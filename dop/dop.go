package dop

import (
	"go.uber.org/zap"

	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/fib"
)

// Version identifies a DOP variant.
type Version int

const (
	Version97 Version = iota
	Version2000
	Version2002
	Version2003
	Version2007
	Version2010
	Version2013
)

var versionInfo = [...]struct {
	name string
	size uint32
}{
	Version97:   {"Dop97", 500},
	Version2000: {"Dop2000", 544},
	Version2002: {"Dop2002", 594},
	Version2003: {"Dop2003", 616},
	Version2007: {"Dop2007", 674},
	Version2010: {"Dop2010", 690},
	Version2013: {"Dop2013", 694},
}

func (v Version) String() string {
	if v >= 0 && int(v) < len(versionInfo) {
		return versionInfo[v].name
	}
	return "unknown"
}

// Size returns the byte size of the variant.
func (v Version) Size() uint32 {
	return versionInfo[v].size
}

// Dop is a decoded DOP of any version. The accessor of every version up to
// and including Version returns a view of the same decoded value; later
// versions return nil.
type Dop struct {
	Version Version

	d97   *Dop97
	d2000 *Dop2000
	d2002 *Dop2002
	d2003 *Dop2003
	d2007 *Dop2007
	d2010 *Dop2010
	d2013 *Dop2013
}

func (d *Dop) Dop97() *Dop97     { return d.d97 }
func (d *Dop) Dop2000() *Dop2000 { return d.d2000 }
func (d *Dop) Dop2002() *Dop2002 { return d.d2002 }
func (d *Dop) Dop2003() *Dop2003 { return d.d2003 }
func (d *Dop) Dop2007() *Dop2007 { return d.d2007 }
func (d *Dop) Dop2010() *Dop2010 { return d.d2010 }
func (d *Dop) Dop2013() *Dop2013 { return d.d2013 }

// Base returns the part shared by every version.
func (d *Dop) Base() *DopBase {
	return &d.d97.DopBase
}

// Select picks the variant the FIB announces: no FibRgCswNew means Dop97,
// nFibNew 0x00D9/0x0101/0x010C mean Dop2000/2002/2003, and nFibNew 0x0112
// is refined by lcbDop into Dop2007/2010/2013.
func Select(f *fib.Fib, lcbDop uint32) (Version, error) {
	if f.RgCswNew == nil {
		return Version97, nil
	}
	switch nFibNew := f.RgCswNew.NFibNew; nFibNew {
	case 0x00D9:
		return Version2000, nil
	case 0x0101:
		return Version2002, nil
	case 0x010C:
		return Version2003, nil
	case 0x0112:
		for _, v := range []Version{Version2007, Version2010, Version2013} {
			if lcbDop == v.Size() {
				return v, nil
			}
		}
		return 0, errors.New(errors.PhaseDecode, errors.KindInconsistent).
			Path("Fib", "lcbDop").
			Value(lcbDop).
			Detail("nFibNew 0x112 requires lcbDop 674, 690 or 694, got %d", lcbDop).
			Build()
	default:
		return 0, errors.InvalidEnum(errors.PhaseDecode, []string{"FibRgCswNew", "nFibNew"}, nFibNew, "nFibNew")
	}
}

// Decode reads the DOP that f locates in the table stream. Advisory
// findings and the debug summary go to log; nil uses the package Logger.
func Decode(table *binary.Reader, f *fib.Fib, log *zap.Logger) (*Dop, error) {
	if log == nil {
		log = Logger()
	}
	pair, ok := f.Pair(fib.IdxDop)
	if !ok || pair.Empty() {
		return nil, errors.New(errors.PhaseDecode, errors.KindInconsistent).
			Path("Fib", "lcbDop").
			Detail("document has no DOP").
			Build()
	}
	v, err := Select(f, pair.Lcb)
	if err != nil {
		return nil, err
	}
	r, err := table.Window(int(pair.Fc), int(pair.Lcb))
	if err != nil {
		return nil, errors.WithPath(err, v.String())
	}
	m := r.Mark()

	d := &Dop{Version: v}
	switch v {
	case Version97:
		var x Dop97
		x, err = decodeDop97(r)
		d.fill97(&x)
	case Version2000:
		var x Dop2000
		x, err = decodeDop2000(r)
		d.fill2000(&x)
	case Version2002:
		var x Dop2002
		x, err = decodeDop2002(r)
		d.fill2002(&x)
	case Version2003:
		var x Dop2003
		x, err = decodeDop2003(r)
		d.fill2003(&x)
	case Version2007:
		var x Dop2007
		x, err = decodeDop2007(r)
		d.fill2007(&x)
	case Version2010:
		var x Dop2010
		x, err = decodeDop2010(r)
		d.fill2010(&x)
	case Version2013:
		var x Dop2013
		x, err = decodeDop2013(r)
		d.fill2013(&x)
	}
	if err != nil {
		return nil, errors.WithPath(err, v.String())
	}
	if err := r.ExpectConsumed(m, int(pair.Lcb), v.String()); err != nil {
		return nil, err
	}

	d.Base().advise(log)
	log.Debug("dop decoded",
		zap.Stringer("version", v),
		zap.Uint32("lcb", pair.Lcb),
		zap.Int16("revision", d.Base().NRevision))
	return d, nil
}

func (d *Dop) fill97(x *Dop97) { d.d97 = x }

func (d *Dop) fill2000(x *Dop2000) {
	d.d2000 = x
	d.fill97(&x.Dop97)
}

func (d *Dop) fill2002(x *Dop2002) {
	d.d2002 = x
	d.fill2000(&x.Dop2000)
}

func (d *Dop) fill2003(x *Dop2003) {
	d.d2003 = x
	d.fill2002(&x.Dop2002)
}

func (d *Dop) fill2007(x *Dop2007) {
	d.d2007 = x
	d.fill2003(&x.Dop2003)
}

func (d *Dop) fill2010(x *Dop2010) {
	d.d2010 = x
	d.fill2007(&x.Dop2007)
}

func (d *Dop) fill2013(x *Dop2013) {
	d.d2013 = x
	d.fill2010(&x.Dop2010)
}
