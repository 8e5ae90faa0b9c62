package idcode

import "fmt"

// manufacturers covers the vendors found on router SoCs and their flash parts.
// Codes are the 11-bit IDCODE form: continuation bank in [10:7], ID in [6:0].
var manufacturers = map[uint16]Manufacturer{
	0x001: {0x001, "AMD / Spansion", "AMD"},
	0x004: {0x004, "Fujitsu", "Fujitsu"},
	0x007: {0x007, "Hitachi", "Hitachi"},
	0x009: {0x009, "Intel", "Intel"},
	0x013: {0x013, "Conexant (Rockwell)", "Conexant"},
	0x017: {0x017, "Texas Instruments", "TI"},
	0x018: {0x018, "Toshiba", "Toshiba"},
	0x01F: {0x01F, "Atmel", "Atmel"},
	0x020: {0x020, "STMicroelectronics", "ST"},
	0x033: {0x033, "Mitsubishi Electric", "Mitsubishi"},
	0x06A: {0x06A, "Macronix", "MXIC"},
	0x0BF: {0x0BF, "Broadcom", "BRCM"},
	0x0C2: {0x0C2, "Macronix", "MXIC"},
	0x0EC: {0x0EC, "Samsung", "Samsung"},
	0x170: {0x170, "BRECIS Communications", "BRECIS"},
	0x006: {0x006, "Lexra", "Lexra"},
	0x049: {0x049, "Marvell", "Marvell"},
}

// LookupManufacturer returns the entry for a JEP106 code. Unknown codes get a
// placeholder and false.
func LookupManufacturer(code uint16) (Manufacturer, bool) {
	m, ok := manufacturers[code]
	if !ok {
		return Manufacturer{
			Code:         code,
			Name:         fmt.Sprintf("Unknown (0x%03X)", code),
			Abbreviation: "Unknown",
		}, false
	}
	return m, true
}

// flashVendors maps the low byte of a parallel or SPI flash manufacturer ID.
var flashVendors = map[uint8]string{
	0x01: "AMD/Spansion",
	0x04: "Fujitsu",
	0x1F: "Atmel",
	0x20: "ST/Numonyx",
	0x7F: "EON",
	0x89: "Intel",
	0x98: "Toshiba",
	0xAD: "Hynix",
	0xB0: "Sharp",
	0xBF: "SST",
	0xC2: "Macronix",
	0xDA: "Winbond",
	0xEC: "Samsung",
	0xEF: "Winbond",
}

// FlashVendor names the maker behind a flash manufacturer ID. IDs rewritten
// for extended device codes carry the maker in the high byte and 0x7E below.
func FlashVendor(vendor uint16) string {
	code := uint8(vendor)
	if code == 0x7E {
		code = uint8(vendor >> 8)
	}
	if name, ok := flashVendors[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02X)", code)
}
