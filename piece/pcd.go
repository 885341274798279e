package piece

import (
	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
)

// SizePcd is the on-disk size of a Pcd.
const SizePcd = 8

// FcCompressed locates the text of a piece in the WordDocument stream.
type FcCompressed struct {
	Fc          uint32
	FCompressed bool
	R1          bool
}

// Offset returns the byte offset of the first character of the piece.
// Compressed pieces store twice their real offset.
func (f FcCompressed) Offset() uint32 {
	if f.FCompressed {
		return f.Fc / 2
	}
	return f.Fc
}

// Encoding returns the character encoding of the piece.
func (f FcCompressed) Encoding() Encoding {
	if f.FCompressed {
		return Compressed
	}
	return UTF16
}

func decodeFcCompressed(r *binary.Reader) (FcCompressed, error) {
	bits, err := bitfield.Read32(r)
	if err != nil {
		return FcCompressed{}, err
	}
	f := FcCompressed{
		Fc:          bits.ReadBits(30),
		FCompressed: bits.ReadBit(),
		R1:          bits.ReadBit(),
	}
	bits.Done()
	if f.R1 {
		return FcCompressed{}, errors.MagicMismatch(errors.PhaseDecode, []string{"FcCompressed", "r1"}, 1, 0)
	}
	return f, nil
}

// Prm0 is a single inline property modifier.
type Prm0 struct {
	Isprm uint8
	Val   uint8
}

// Prm1 indexes a Prc in the Clx.
type Prm1 struct {
	Igrpprl uint16
}

// Prm is the property modifier of a piece: Prm0 when Complex is false,
// Prm1 otherwise. Raw keeps the undecoded value.
type Prm struct {
	Raw     uint16
	Complex bool
	Prm0    Prm0
	Prm1    Prm1
}

func decodePrm(r *binary.Reader) (Prm, error) {
	var isComplex bool
	err := r.Peek(func(pr *binary.Reader) error {
		v, err := pr.ReadU16()
		isComplex = v&1 != 0
		return err
	})
	if err != nil {
		return Prm{}, err
	}
	if isComplex {
		return decodePrm1(r)
	}
	return decodePrm0(r)
}

func decodePrm0(r *binary.Reader) (Prm, error) {
	bits, err := bitfield.Read16(r)
	if err != nil {
		return Prm{}, err
	}
	bits.ReadBit()
	p := Prm{Raw: bits.Value()}
	p.Prm0.Isprm = uint8(bits.ReadBits(7))
	p.Prm0.Val = uint8(bits.ReadBits(8))
	bits.Done()
	return p, nil
}

func decodePrm1(r *binary.Reader) (Prm, error) {
	bits, err := bitfield.Read16(r)
	if err != nil {
		return Prm{}, err
	}
	bits.ReadBit()
	p := Prm{
		Raw:     bits.Value(),
		Complex: true,
		Prm1:    Prm1{Igrpprl: bits.ReadBits(15)},
	}
	bits.Done()
	return p, nil
}

// Pcd is the record of the PlcPcd.
type Pcd struct {
	FNoParaLast bool
	FR1         bool
	FDirty      bool
	FR2         uint16
	Fc          FcCompressed
	Prm         Prm
}

func decodePcd(r *binary.Reader) (Pcd, error) {
	bits, err := bitfield.Read16(r)
	if err != nil {
		return Pcd{}, err
	}
	p := Pcd{
		FNoParaLast: bits.ReadBit(),
		FR1:         bits.ReadBit(),
		FDirty:      bits.ReadBit(),
		FR2:         bits.ReadBits(13),
	}
	bits.Done()
	if p.FDirty {
		return Pcd{}, errors.MagicMismatch(errors.PhaseDecode, []string{"Pcd", "fDirty"}, 1, 0)
	}
	if p.Fc, err = decodeFcCompressed(r); err != nil {
		return Pcd{}, errors.WithPath(err, "Pcd")
	}
	if p.Prm, err = decodePrm(r); err != nil {
		return Pcd{}, errors.WithPath(err, "Pcd", "prm")
	}
	return p, nil
}
