package ejtag

import (
	"fmt"
	"strings"

	bitmap "github.com/boljen/go-bitmap"
)

// IMPCODE bit positions.
const (
	ImpMIPS64  = 0
	ImpNoDMA   = 14
	ImpMIPS16  = 16
	ImpASID6   = 21
	ImpASID8   = 22
	ImpDINTsup = 24
	ImpR3k     = 28
)

// Features is the decoded EJTAG implementation register.
type Features struct {
	Raw  uint32
	bits bitmap.Bitmap
}

// DecodeFeatures splits an IMPCODE value into its flags.
func DecodeFeatures(impcode uint32) Features {
	bits := bitmap.New(32)
	for i := 0; i < 32; i++ {
		bits.Set(i, impcode>>uint(i)&1 == 1)
	}
	return Features{Raw: impcode, bits: bits}
}

// Has reports whether IMPCODE bit i is set.
func (f Features) Has(i int) bool {
	if f.bits == nil || i < 0 || i >= 32 {
		return false
	}
	return f.bits.Get(i)
}

// Version is the 3-bit EJTAG version field.
func (f Features) Version() int {
	return int((f.Raw >> 29) & 7)
}

// VersionString names the EJTAG revision.
func (f Features) VersionString() string {
	switch v := f.Version(); v {
	case 0:
		return "1 or 2.0"
	case 1:
		return "2.5"
	case 2:
		return "2.6"
	case 3:
		return "3.1"
	default:
		return fmt.Sprintf("Unknown (%d is a reserved value)", v)
	}
}

// DMASupported reports whether the probe may use EJTAG DMA.
func (f Features) DMASupported() bool {
	return !f.Has(ImpNoDMA)
}

// Flags lists the implementation flags in IMPCODE order.
func (f Features) Flags() []string {
	var out []string
	if f.Has(ImpR3k) {
		out = append(out, "R3k")
	} else {
		out = append(out, "R4k")
	}
	for _, fl := range []struct {
		bit  int
		name string
	}{
		{ImpDINTsup, "DINTsup"},
		{ImpASID8, "ASID_8"},
		{ImpASID6, "ASID_6"},
		{ImpMIPS16, "MIPS16"},
		{ImpNoDMA, "NoDMA"},
	} {
		if f.Has(fl.bit) {
			out = append(out, fl.name)
		}
	}
	if f.Has(ImpMIPS64) {
		out = append(out, "MIPS64")
	} else {
		out = append(out, "MIPS32")
	}
	return out
}

func (f Features) String() string {
	return fmt.Sprintf("EJTAG %s, flags %s", f.VersionString(), strings.Join(f.Flags(), " "))
}
