package chipdb

// Processor IDCODEs that map flash somewhere other than the MIPS boot window.
const (
	IDIXP425_266 = 0x19277013
	IDIXP425_400 = 0x19275013
	IDIXP425_533 = 0x19274013
	IDARM940T    = 0x10940027
	IDBCM6358    = 0x0635817F
	IDTIAR7      = 0x0000100F
)

// Flash window bases.
const (
	WindowLowMapped = 0x00400000
	WindowBCM6358   = 0x1F000000
	WindowTIAR7     = 0x90000000
	WindowLarge     = 0x1C000000
	WindowBoot      = 0x1FC00000
)

// WindowBase returns where the flash chip is mapped for a processor. Chips of
// 8MB or more no longer fit below the boot vector and start at 0x1C000000.
func WindowBase(idcode uint32, flashSize uint32) uint32 {
	switch idcode {
	case IDIXP425_266, IDIXP425_400, IDARM940T:
		return WindowLowMapped
	case IDBCM6358:
		return WindowBCM6358
	case IDTIAR7:
		return WindowTIAR7
	}
	if flashSize >= Size8MB {
		return WindowLarge
	}
	return WindowBoot
}
