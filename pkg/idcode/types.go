package idcode

import "fmt"

// IDCode is a parsed IEEE 1149.1 IDCODE.
type IDCode struct {
	Raw              uint32
	Version          uint8  // [31:28]
	PartNumber       uint16 // [27:12]
	ManufacturerCode uint16 // [11:1] JEP106 bank and code
	HasIDCode        bool   // bit 0
}

func (id IDCode) String() string {
	m, _ := LookupManufacturer(id.ManufacturerCode)
	return fmt.Sprintf("%08X (%s part %04X rev %d)", id.Raw, m.Abbreviation, id.PartNumber, id.Version)
}

// Manufacturer is a JEP106 entry.
type Manufacturer struct {
	Code         uint16
	Name         string
	Abbreviation string
}
