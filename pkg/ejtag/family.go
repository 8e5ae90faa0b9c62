package ejtag

import "github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"

// Family groups processors that need the same special handling.
type Family int

const (
	FamilyOther Family = iota
	FamilyBroadcom
	FamilyBroadcomBCM5354
	FamilyBCM6358
	FamilyAtheros
	FamilyTIAR7
	FamilyIXP4xx
	FamilyARM940T
)

// IDAtheros is the IDCODE reported by Atheros AR531x/231x parts.
const IDAtheros = 0x00000001

// FamilyOf classifies an IDCODE.
func FamilyOf(idcode uint32) Family {
	switch {
	case idcode == IDAtheros:
		return FamilyAtheros
	case ErratumBCM5354SkipDSTRTPoll(idcode):
		return FamilyBroadcomBCM5354
	case idcode == chipdb.IDBCM6358:
		return FamilyBCM6358
	case idcode == chipdb.IDTIAR7:
		return FamilyTIAR7
	case idcode == chipdb.IDIXP425_266, idcode == chipdb.IDIXP425_400, idcode == chipdb.IDIXP425_533:
		return FamilyIXP4xx
	case idcode == chipdb.IDARM940T:
		return FamilyARM940T
	case idcode&0xFFF == 0x17F:
		return FamilyBroadcom
	}
	return FamilyOther
}

// Broadcom reports whether the part uses the Broadcom (0x17F) JEDEC code,
// which also selects the Broadcom serial flash controller layout.
func (f Family) Broadcom() bool {
	switch f {
	case FamilyBroadcom, FamilyBroadcomBCM5354, FamilyBCM6358:
		return true
	}
	return false
}

func (f Family) String() string {
	switch f {
	case FamilyBroadcom:
		return "Broadcom"
	case FamilyBroadcomBCM5354:
		return "Broadcom BCM5354"
	case FamilyBCM6358:
		return "Broadcom BCM6358"
	case FamilyAtheros:
		return "Atheros"
	case FamilyTIAR7:
		return "TI AR7"
	case FamilyIXP4xx:
		return "Intel IXP4xx"
	case FamilyARM940T:
		return "ARM940T"
	}
	return "Other"
}
