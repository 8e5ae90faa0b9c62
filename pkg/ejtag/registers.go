// Package ejtag implements the MIPS EJTAG debug port on top of a JTAG TAP:
// register access, DMA and processor-access (PrAcc) memory transfers, the
// debug module executor, processor detection and target bring-up.
package ejtag

// EJTAG TAP instructions.
const (
	InstrExtest     uint32 = 0x00
	InstrIDCode     uint32 = 0x01
	InstrSample     uint32 = 0x02
	InstrImpCode    uint32 = 0x03
	InstrAddress    uint32 = 0x08
	InstrData       uint32 = 0x09
	InstrControl    uint32 = 0x0A
	InstrAll        uint32 = 0x0B
	InstrEJTAGBoot  uint32 = 0x0C
	InstrNormalBoot uint32 = 0x0D
	InstrFastData   uint32 = 0x0E
	InstrEJWatch    uint32 = 0x1C
	InstrBypass     uint32 = 0xFF
)

// CONTROL register bits.
const (
	TOF      uint32 = 1 << 1
	TIF      uint32 = 1 << 2
	BRKST    uint32 = 1 << 3
	DLOCK    uint32 = 1 << 5
	DRWN     uint32 = 1 << 9
	DERR     uint32 = 1 << 10
	DSTRT    uint32 = 1 << 11
	JTAGBRK  uint32 = 1 << 12
	SETDEV   uint32 = 1 << 14
	PROBTRAP uint32 = 1 << 14
	PROBEN   uint32 = 1 << 15
	PRRST    uint32 = 1 << 16
	DMAACC   uint32 = 1 << 17
	PRACC    uint32 = 1 << 18
	PRNW     uint32 = 1 << 19
	PERRST   uint32 = 1 << 20
	HALT     uint32 = 1 << 21
	DOZE     uint32 = 1 << 22
	SYNC     uint32 = 1 << 23
	DNM      uint32 = 1 << 28
	ROCC     uint32 = 1 << 31
)

// DMA transfer size field of CONTROL.
const (
	DMAByte     uint32 = 0x000
	DMAHalfword uint32 = 0x080
	DMAWord     uint32 = 0x100
	DMATriple   uint32 = 0x180

	dmaSizeMask uint32 = 0x180
)

// Debug segment addresses.
const (
	// DebugVector is where a processor in debug mode fetches its first
	// instruction.
	DebugVector uint32 = 0xFF200200
	// VirtualAddressRegister and VirtualDataRegister are the two words below
	// the vector a code module loads and stores to exchange values with the
	// host.
	VirtualAddressRegister uint32 = 0xFF200000
	VirtualDataRegister    uint32 = 0xFF200004
	// DebugControlRegister (DCR) carries the memory protection bit on EJTAG
	// 1.x/2.0 parts.
	DebugControlRegister uint32 = 0xFF300000

	dcrMemoryProtection uint32 = 1 << 2
)

// UncachedSegment is ORed into PrAcc target addresses (KSEG1).
const UncachedSegment uint32 = 0xA0000000
