package flash

import (
	"fmt"
	"time"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
)

// statusReady is DQ7 on AMD/SST parts and the ready bit of the Intel status
// register.
const statusReady = 0x80

// ChipEraseAddress receives the final cycle of the AMD chip erase sequence.
const ChipEraseAddress = 0x1FC00000

// Reset returns the part to read-array mode.
func (e *Engine) Reset() error {
	switch e.CommandSet {
	case AMD, SST:
		return e.write16(e.Window, 0x00F000F0)
	case BSC, SCS:
		return e.sequence(
			command{e.Window, 0x00500050},
			command{e.Window, 0x00FF00FF},
		)
	case SPI:
		return nil
	}
	return nil
}

// poll waits for an erase or program cycle to finish. AMD and SST parts
// are done when DQ7 at addr matches bit 7 of the data written; Intel parts
// report ready in the status register at the window base.
func (e *Engine) poll(addr, data uint32) error {
	at, want := addr, data&statusReady
	switch e.CommandSet {
	case BSC, SCS:
		at, want = e.Window, statusReady
	}
	return e.until("flash not ready", at, func() (bool, error) {
		v, err := e.read16(at)
		return v&statusReady == want, err
	})
}

// EraseArea erases every block starting in [start, start+length).
func (e *Engine) EraseArea(start, length uint32) error {
	blocks := e.Select(start, length)
	fmt.Fprintf(e.out, "Total Blocks to Erase: %d\n\n", len(blocks))
	for _, b := range blocks {
		fmt.Fprintf(e.out, "Erasing block: %d (addr = %08x)...", b.Number, b.Addr)
		if err := e.EraseBlock(b.Addr); err != nil {
			fmt.Fprintln(e.out)
			return err
		}
		fmt.Fprintln(e.out, "Done")
	}
	return nil
}

// EraseBlock erases the block at addr and returns the part to read mode.
func (e *Engine) EraseBlock(addr uint32) error {
	w := e.Window
	var err error
	switch e.CommandSet {
	case SPI:
		err = e.spiEraseSector(addr)

	case AMD, SST:
		u1, u2 := unlockAddrs(w, e.CommandSet)
		erase := uint32(0x00300030)
		if e.CommandSet == SST {
			erase = 0x00500050
		}
		err = e.sequence(
			command{u1, 0x00AA00AA},
			command{u2, 0x00550055},
			command{u1, 0x00800080},
			command{u1, 0x00AA00AA},
			command{u2, 0x00550055},
			command{addr, erase},
		)
		if err == nil {
			err = e.poll(addr, 0xFFFF)
		}

	case BSC, SCS:
		// Unlock the block, then erase it.
		for _, op := range []uint32{0x00600060, 0x00200020} {
			err = e.sequence(
				command{addr, 0x00500050},
				command{addr, op},
				command{addr, 0x00D000D0},
				command{addr, 0x00700070},
			)
			if err == nil {
				err = e.poll(addr, statusReady)
			}
			if err != nil {
				break
			}
		}

	default:
		return ErrNoCommandSet
	}
	if err != nil {
		return fmt.Errorf("flash: erase block %08x: %w", addr, err)
	}
	return e.Reset()
}

// ChipErase issues the AMD full chip erase. It does not wait for the part.
func (e *Engine) ChipErase() error {
	fmt.Fprintln(e.out, "Chip Erase")
	u1, u2 := unlockAddrs(e.Window, AMD)
	return e.sequence(
		command{u1, 0x00AA00AA},
		command{u2, 0x00550055},
		command{u1, 0x00800080},
		command{u1, 0x00AA00AA},
		command{u2, 0x00550055},
		command{ChipEraseAddress, 0x00100010},
	)
}

// UnlockBypass enters AMD unlock bypass mode, after which each halfword
// program needs a single command cycle.
func (e *Engine) UnlockBypass() error {
	u1, u2 := unlockAddrs(e.Window, AMD)
	err := e.sequence(
		command{u1, 0x00900090},
		command{u1, 0x00AA00AA},
		command{u2, 0x00550055},
		command{u1, 0x00200020},
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, "\nEntered Unlock Bypass mode->")
	return nil
}

// ExitBypass leaves unlock bypass mode.
func (e *Engine) ExitBypass() error {
	u1, _ := unlockAddrs(e.Window, AMD)
	return e.sequence(
		command{u1, 0x00900090},
		command{e.Window, 0x00000000},
	)
}

// atheros reports whether the swapped Atheros program order applies.
func (e *Engine) atheros() bool {
	return e.target.Family == ejtag.FamilyAtheros
}

// halves returns what is written for the low and high halfword. DMA writes
// go through byte lanes, so the whole word is sent and the address picks
// the half; PrAcc stores the low 16 bits of the value.
func (e *Engine) halves(data uint32) (lo, hi uint32) {
	if e.target.DMA {
		return data, data
	}
	return data & 0xFFFF, data >> 16
}

// landed is the halfword that a write of v to addr leaves in the part.
func (e *Engine) landed(addr, v uint32) uint32 {
	if e.target.DMA && addr&2 != 0 {
		return v >> 16
	}
	return v & 0xFFFF
}

// WriteWord programs one 32-bit word at addr, a halfword at a time.
func (e *Engine) WriteWord(addr, data uint32) error {
	var err error
	switch e.CommandSet {
	case SPI:
		err = e.spiWriteWord(addr, data)
	case AMD:
		err = e.writeAMD(addr, data)
	case SST:
		lo, hi := e.halves(data)
		if err = e.programHalf(SST, addr, lo); err == nil {
			err = e.programHalf(SST, addr+2, hi)
		}
	case BSC, SCS:
		lo, hi := e.halves(data)
		for _, h := range []command{{addr, lo}, {addr + 2, hi}} {
			err = e.sequence(
				command{h.addr, 0x00500050},
				command{h.addr, 0x00400040},
				command{h.addr, h.data},
			)
			if err == nil {
				err = e.poll(addr, statusReady)
			}
			if err != nil {
				break
			}
		}
	default:
		return ErrNoCommandSet
	}
	if err != nil {
		return fmt.Errorf("flash: write %08x: %w", addr, err)
	}
	return nil
}

func (e *Engine) writeAMD(addr, data uint32) error {
	lo, hi := e.halves(data)
	u1, _ := unlockAddrs(e.Window, AMD)

	// Atheros and Speedtouch boards wire the halves the other way round.
	swapped := e.atheros() || e.opts.Speedtouch
	order := []command{{addr, lo}, {addr + 2, hi}}
	if swapped {
		order = []command{{addr + 2, lo}, {addr, hi}}
	}

	if e.opts.Bypass {
		if !e.atheros() {
			order = []command{{addr, lo}, {addr + 2, hi}}
		}
		for _, h := range order {
			if err := e.sequence(command{u1, 0x00A000A0}, h); err != nil {
				return err
			}
			if e.atheros() {
				time.Sleep(100 * time.Nanosecond)
			}
		}
		return nil
	}

	// The plain sequence uses the SST-width unlock addresses, which AMD
	// parts decode modulo their address width.
	set := SST
	if swapped {
		set = AMD
	}
	for _, h := range order {
		if err := e.programHalf(set, h.addr, h.data); err != nil {
			return err
		}
	}
	return nil
}

// programHalf runs a full unlock and program cycle for one halfword and
// waits for it to land.
func (e *Engine) programHalf(unlock CommandSet, addr, v uint32) error {
	u1, u2 := unlockAddrs(e.Window, unlock)
	err := e.sequence(
		command{u1, 0x00AA00AA},
		command{u2, 0x00550055},
		command{u1, 0x00A000A0},
		command{addr, v},
	)
	if err != nil {
		return err
	}
	return e.poll(addr, e.landed(addr, v))
}
