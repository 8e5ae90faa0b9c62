// Package chipdb holds the read-only identity tables: processors by IDCODE,
// flash parts by JEDEC vendor/device, and named flash areas by chip size.
package chipdb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownProcessor = errors.New("chipdb: unknown processor")
	ErrUnknownFlash     = errors.New("chipdb: unknown flash chip")
	ErrUnknownArea      = errors.New("chipdb: unknown flash area")
)

// Chip capacities.
const (
	Size1MB   = 0x100000
	Size2MB   = 0x200000
	Size4MB   = 0x400000
	Size8MB   = 0x800000
	Size16MB  = 0x1000000
	Size32MB  = 0x2000000
	Size64MB  = 0x4000000
	Size128MB = 0x8000000
)

// Erase block sizes. BlockA4K is the 528-byte-page DataFlash sector.
const (
	Block4K   = 0x1000
	BlockA4K  = 0x1080
	Block8K   = 0x2000
	Block16K  = 0x4000
	Block32K  = 0x8000
	Block64K  = 0x10000
	Block128K = 0x20000
	Block256K = 0x40000
)

// CommandSet is the protocol family a flash part speaks.
type CommandSet uint8

const (
	BSC CommandSet = iota + 1 // Intel basic command set
	SCS                       // Intel/Sharp scalable command set
	AMD
	SST
	SPI
)

func (c CommandSet) String() string {
	switch c {
	case BSC:
		return "BSC"
	case SCS:
		return "SCS"
	case AMD:
		return "AMD"
	case SST:
		return "SST"
	case SPI:
		return "SPI"
	}
	return fmt.Sprintf("CommandSet(%d)", uint8(c))
}

// Processor describes a CPU reachable over EJTAG.
type Processor struct {
	ID       uint32
	IRLength int
	Name     string
}

// Region is a run of equally sized erase blocks.
type Region struct {
	Count int
	Size  uint32
}

// FlashChip describes one flash part.
type FlashChip struct {
	Vendor     uint16
	Device     uint16
	Size       uint32
	CommandSet CommandSet
	Name       string
	Regions    []Region
}

// Area is a named slice of the flash window for one chip size.
type Area struct {
	Size   uint32
	Name   string
	Start  uint32
	Length uint32
}

// CustomArea is the user-defined area name; its bounds come from switches.
const CustomArea = "CUSTOM"

// LookupProcessor finds the processor with exactly this IDCODE.
func LookupProcessor(id uint32) (Processor, error) {
	for _, p := range Processors {
		if p.ID == id {
			return p, nil
		}
	}
	return Processor{}, fmt.Errorf("%w: %08X", ErrUnknownProcessor, id)
}

// LookupFlash returns the first chip matching vendor and device.
func LookupFlash(vendor, device uint16) (FlashChip, error) {
	for _, c := range FlashChips {
		if c.Vendor == vendor && c.Device == device {
			return c, nil
		}
	}
	return FlashChip{}, fmt.Errorf("%w: vendor %04X device %04X", ErrUnknownFlash, vendor, device)
}

// FlashByNumber returns the n-th chip of the table, counting from 1.
func FlashByNumber(n int) (FlashChip, error) {
	if n < 1 || n > len(FlashChips) {
		return FlashChip{}, fmt.Errorf("%w: no chip number %d (1..%d)", ErrUnknownFlash, n, len(FlashChips))
	}
	return FlashChips[n-1], nil
}

// LookupArea finds a named area for a chip size. Names compare
// case-insensitively.
func LookupArea(size uint32, name string) (Area, error) {
	for _, a := range Areas {
		if a.Size == size && strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return Area{}, fmt.Errorf("%w: %s for a %dMB chip", ErrUnknownArea, strings.ToUpper(name), size>>20)
}

// AreaNames lists the distinct area names in table order, plus CUSTOM.
func AreaNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, a := range Areas {
		if !seen[a.Name] {
			seen[a.Name] = true
			names = append(names, a.Name)
		}
	}
	return append(names, CustomArea)
}

// IsArea reports whether name is a known area (any chip size) or CUSTOM.
func IsArea(name string) bool {
	for _, n := range AreaNames() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// atherosAreas are renamed to their AR- variants on Atheros parts with 8MB or
// more of flash, which map the chip at 0xA8000000.
var atherosAreas = map[string]bool{
	"CFE": true, "NVRAM": true, "KERNEL": true, "WHOLEFLASH": true, "BSP": true, "RED": true,
}

// AtherosAreaName maps a generic area name onto the Atheros layout.
func AtherosAreaName(name string, size uint32) string {
	up := strings.ToUpper(name)
	if size >= Size8MB && atherosAreas[up] {
		return "AR-" + up
	}
	return name
}
