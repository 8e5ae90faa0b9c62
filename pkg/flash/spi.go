package flash

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
)

// Opcode names an entry of the serial flash command table.
type Opcode int

const (
	OpWriteEnable Opcode = iota
	OpWriteDisable
	OpReadStatus
	OpWriteStatus
	OpRead
	OpFastRead
	OpPageProgram
	OpSectorErase
	OpBulkErase
	OpDeepPowerDown
	OpReadSignature
	OpReadID

	// Broadcom controllers take the opcode with an action code in bits 8..10.
	OpBCMWriteEnable
	OpBCMReadStatus
	OpBCMPageProgram
	OpBCMSectorErase
	OpBCMReadID
)

type spiOpcode struct {
	code   uint32
	tx, rx uint32
}

var opcodes = [...]spiOpcode{
	OpWriteEnable:   {0x06, 1, 0},
	OpWriteDisable:  {0x04, 1, 0},
	OpReadStatus:    {0x05, 1, 1},
	OpWriteStatus:   {0x01, 1, 0},
	OpRead:          {0x03, 4, 4},
	OpFastRead:      {0x0b, 1, 0},
	OpPageProgram:   {0x02, 8, 0},
	OpSectorErase:   {0xd8, 4, 0},
	OpBulkErase:     {0xc7, 1, 0},
	OpDeepPowerDown: {0xb9, 1, 0},
	OpReadSignature: {0xab, 4, 1},
	OpReadID:        {0x9f, 1, 3},

	OpBCMWriteEnable: {0x0006, 1, 0},
	OpBCMReadStatus:  {0x0105, 1, 1},
	OpBCMPageProgram: {0x0402, 8, 0},
	OpBCMSectorErase: {0x02d8, 4, 0},
	OpBCMReadID:      {0x049f, 1, 3},
}

// Code returns the value written to the controller for op.
func (op Opcode) Code() uint32 { return opcodes[op].code }

// SPI controller constants shared by both layouts.
const (
	spiCountMask = 0xff
	spiStatusWIP = 0x01

	// BroadcomFlashAddress is the chipcommon flash address register.
	BroadcomFlashAddress = 0x18000044
	// SPIChipEraseOffset is where SPIChipErase starts the bulk erase.
	SPIChipEraseOffset = 0x1FC00000
)

// Layout is the register map of a SoC's serial flash controller. Only the
// Atheros and Broadcom layouts exist.
type Layout struct {
	Name     string
	Broadcom bool
	// Read is where the part is mapped for plain reads.
	Read uint32
	MMR  uint32
	// Ctl, Opcode and Data are absolute register addresses.
	Ctl, Opcode, Data uint32
	Start, Busy       uint32
}

var (
	AtherosLayout = Layout{
		Name:   "Atheros",
		Read:   0x1FC00000,
		MMR:    0x11300000,
		Ctl:    0x11300000,
		Opcode: 0x11300004,
		Data:   0x11300008,
		Start:  0x00000100,
		Busy:   0x00010000,
	}
	BroadcomLayout = Layout{
		Name:     "Broadcom",
		Broadcom: true,
		Read:     0x1FC00000,
		Ctl:      0x18000040,
		Opcode:   0x18000044,
		Data:     0x18000048,
		Start:    0x80000000,
		Busy:     0x80000000,
	}
)

// LayoutFor picks the controller layout for a processor family.
func LayoutFor(f ejtag.Family) Layout {
	if f.Broadcom() {
		return BroadcomLayout
	}
	return AtherosLayout
}

// spiIdle waits for the controller to finish and returns the control word.
func (e *Engine) spiIdle() (uint32, error) {
	var reg uint32
	err := e.until("SPI controller busy", e.SPI.Ctl, func() (bool, error) {
		var err error
		reg, err = e.read32(e.SPI.Ctl)
		return reg&e.SPI.Busy == 0, err
	})
	return reg, err
}

// SendCommand runs one table opcode and returns the bytes it read back.
func (e *Engine) SendCommand(op Opcode) (uint32, error) {
	c := opcodes[op]
	l := e.SPI

	if l.Broadcom {
		if err := e.write32(l.Ctl, 0); err != nil {
			return 0, err
		}
	}
	reg, err := e.spiIdle()
	if err != nil {
		return 0, err
	}
	if err := e.write32(l.Opcode, c.code); err != nil {
		return 0, err
	}
	e.log.Debugf("SPI opcode register %08x <- %08x", l.Opcode, c.code)

	if l.Broadcom {
		reg = reg&^spiCountMask | c.code | l.Start
	} else {
		reg = reg&^spiCountMask | c.tx | c.rx<<4 | l.Start
	}
	if err := e.write32(l.Ctl, reg); err != nil {
		return 0, err
	}
	e.log.Debugf("SPI control register %08x <- %08x", l.Ctl, reg)

	if _, err := e.spiIdle(); err != nil {
		return 0, err
	}
	if c.rx == 0 {
		return 0, nil
	}
	data, err := e.read32(l.Data)
	if err != nil {
		return 0, err
	}
	if c.rx < 4 {
		data &= 1<<(8*c.rx) - 1
	}
	return data, nil
}

// spiWaitWritten polls the status register until write-in-progress clears.
func (e *Engine) spiWaitWritten(addr uint32) error {
	op := OpReadStatus
	if e.SPI.Broadcom {
		op = OpBCMReadStatus
	}
	return e.until("SPI write in progress", addr, func() (bool, error) {
		st, err := e.SendCommand(op)
		return st&spiStatusWIP == 0, err
	})
}

// spiEraseSector erases the sector holding addr.
func (e *Engine) spiEraseSector(addr uint32) error {
	l := e.SPI
	op := OpSectorErase
	if l.Broadcom {
		op = OpBCMSectorErase
		if err := e.write32(l.Ctl, 0); err != nil {
			return err
		}
	}
	c := opcodes[op]

	if _, err := e.SendCommand(OpWriteEnable); err != nil {
		return err
	}
	reg, err := e.spiIdle()
	if err != nil {
		return err
	}

	cmd := addr<<8 | c.code
	if l.Broadcom {
		cmd = addr | c.code
	}
	if err := e.write32(l.Opcode, cmd); err != nil {
		return err
	}
	if l.Broadcom {
		reg = reg&^spiCountMask | c.code | l.Start
	} else {
		reg = reg&^spiCountMask | c.tx | l.Start
	}
	if err := e.write32(l.Ctl, reg); err != nil {
		return err
	}
	if l.Broadcom {
		if err := e.write32(l.Ctl, 0); err != nil {
			return err
		}
	}
	if _, err := e.spiIdle(); err != nil {
		return err
	}
	return e.spiWaitWritten(addr)
}

// spiWriteWord programs one 32-bit word.
func (e *Engine) spiWriteWord(addr, data uint32) error {
	l := e.SPI
	if l.Broadcom {
		if err := e.write32(l.Ctl, 0); err != nil {
			return err
		}
		if _, err := e.SendCommand(OpBCMWriteEnable); err != nil {
			return err
		}
	} else if _, err := e.SendCommand(OpWriteEnable); err != nil {
		return err
	}

	reg, err := e.spiIdle()
	if err != nil {
		return err
	}
	if err := e.write32(l.Data, data); err != nil {
		return err
	}

	cmd := opcodes[OpPageProgram].code | addr<<8
	if l.Broadcom {
		cmd = addr
	}
	if err := e.write32(l.Opcode, cmd); err != nil {
		return err
	}
	if l.Broadcom {
		reg = reg&^spiCountMask | opcodes[OpBCMPageProgram].code | l.Start
	} else {
		reg = reg&^spiCountMask | opcodes[OpPageProgram].tx | l.Start
	}
	if err := e.write32(l.Ctl, reg); err != nil {
		return err
	}
	e.log.Debugf("SPI control register %08x <- %08x", l.Ctl, reg)

	if _, err := e.spiIdle(); err != nil {
		return err
	}
	return e.spiWaitWritten(addr)
}

// SPIChipErase starts a bulk erase on a Broadcom serial flash controller. It
// does not wait for the erase to finish.
func (e *Engine) SPIChipErase(offset uint32) error {
	fmt.Fprintf(e.out, "SPI Chip Erase at %08x\n", offset)
	if err := e.write32(BroadcomLayout.Ctl, 0); err != nil {
		return err
	}
	if _, err := e.SendCommand(OpWriteEnable); err != nil {
		return err
	}
	if err := e.write32(BroadcomFlashAddress, offset); err != nil {
		return err
	}
	return e.write32(BroadcomLayout.Ctl, BroadcomLayout.Start|opcodes[OpBulkErase].code)
}
