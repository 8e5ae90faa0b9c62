package ejtag

import (
	"errors"
	"fmt"
)

// ErrNoSDRAMInit is returned for processors without a memory controller
// init sequence.
var ErrNoSDRAMInit = errors.New("ejtag: no SDRAM init sequence for this processor")

type regWrite struct {
	addr, data uint32
}

// sdramInit holds SB memory controller bring-up writes by processor part
// number.
var sdramInit = map[uint16][]regWrite{
	0x4712: {
		{0x18006F98, 0x00030001}, // SBTMSTATELOW
		{0x18006F98, 0x00030000},
		{0x18006F98, 0x00010000},
		{0x18006004, 0x00048000}, // config
		{0x1800601C, 0x000754DA}, // DRAM timing 3
		{0x18006034, 0x23232323},
		{0x18006038, 0x14500200}, // write DLL correction
		{0x1800603C, 0x22021416}, // misc delay
		{0x18006000, 0x00000002}, // control
		{0x18006000, 0x00000008},
		{0x18006000, 0x00000004},
		{0x18006000, 0x00000004},
		{0x18006000, 0x00000004},
		{0x18006000, 0x00000004},
		{0x18006000, 0x00000004},
		{0x18006000, 0x00000004},
		{0x18006000, 0x00000004},
		{0x18006000, 0x00000004},
		{0x18006008, 0x0000840F}, // refresh
		{0x18006010, 0x00000032},
		{0x18006000, 0x00000010},
		{0x18006000, 0x00000001},
	},
	0x5352: {
		{0x18004F98, 0x00030001},
		{0x18004F98, 0x00030000},
		{0x18004F98, 0x00010000},
		{0x18004004, 0x0004810B},
		{0x1800401C, 0x000754D9},
		{0x18004034, 0x23232323},
		{0x18004038, 0x14500200},
		{0x1800403C, 0x21021400},
		{0x18004000, 0x00000002},
		{0x18004000, 0x00000008},
		{0x18004000, 0x00000004},
		{0x18004000, 0x00000004},
		{0x18004000, 0x00000004},
		{0x18004000, 0x00000004},
		{0x18004000, 0x00000004},
		{0x18004000, 0x00000004},
		{0x18004000, 0x00000004},
		{0x18004000, 0x00000004},
		{0x18004008, 0x0000840F},
		{0x18004010, 0x00000062},
		{0x18004000, 0x00000010},
		{0x18004000, 0x00000001},
	},
}

// SetupSDRAM initialises the memory controller of a BCM4712 or BCM5352 so
// images can be loaded into RAM. The writes always go through DMA.
func (s *Session) SetupSDRAM() error {
	part := uint16(s.IDCode >> 12)
	seq, ok := sdramInit[part]
	if !ok {
		return fmt.Errorf("%w: %08X", ErrNoSDRAMInit, s.IDCode)
	}
	fmt.Fprint(s.out, "Configuring SDRAM... ")
	for _, w := range seq {
		if err := s.tolerate(s.dma.Write32(w.addr, w.data)); err != nil {
			return err
		}
	}
	fmt.Fprint(s.out, "Done\n\n")
	return nil
}
