package dop

import (
	"fmt"
	"time"

	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/bitfield"
	"github.com/wippyai/msdoc/errors"
)

// DTTM is a packed date and time with minute precision. The zero value is
// the null date.
type DTTM struct {
	Mint uint8
	Hr   uint8
	Dom  uint8
	Mon  uint8
	Yr   uint16
	Wdy  uint8
}

// IsNull reports whether every field is zero.
func (d DTTM) IsNull() bool {
	return d == DTTM{}
}

// Time converts d to a time.Time in UTC. Yr counts from 1900.
func (d DTTM) Time() (time.Time, bool) {
	if d.IsNull() {
		return time.Time{}, false
	}
	return time.Date(1900+int(d.Yr), time.Month(d.Mon), int(d.Dom), int(d.Hr), int(d.Mint), 0, 0, time.UTC), true
}

func (d DTTM) String() string {
	if d.IsNull() {
		return "null"
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", 1900+int(d.Yr), d.Mon, d.Dom, d.Hr, d.Mint)
}

func decodeDTTM(r *binary.Reader, name string) (DTTM, error) {
	bits, err := bitfield.Read32(r)
	if err != nil {
		return DTTM{}, err
	}
	d := DTTM{
		Mint: uint8(bits.ReadBits(6)),
		Hr:   uint8(bits.ReadBits(5)),
		Dom:  uint8(bits.ReadBits(5)),
		Mon:  uint8(bits.ReadBits(4)),
		Yr:   uint16(bits.ReadBits(9)),
		Wdy:  uint8(bits.ReadBits(3)),
	}
	bits.Done()
	if d.IsNull() {
		return d, nil
	}
	checks := []struct {
		field  string
		value  int
		lo, hi int
	}{
		{"mint", int(d.Mint), 0, 59},
		{"hr", int(d.Hr), 0, 23},
		{"dom", int(d.Dom), 1, 31},
		{"mon", int(d.Mon), 1, 12},
		{"wdy", int(d.Wdy), 0, 6},
	}
	for _, c := range checks {
		if c.value < c.lo || c.value > c.hi {
			return DTTM{}, errors.OutOfRange(errors.PhaseDecode, []string{name, c.field}, c.value, c.lo, c.hi)
		}
	}
	return d, nil
}
