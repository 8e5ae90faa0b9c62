package flash

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
)

// Sub-ID registers read to tell apart parts sharing a vendor/device pair.
const (
	subIDHigh = 0x1C
	subIDLow  = 0x1E
)

// probeOrder is the order command sets are tried in.
var probeOrder = []CommandSet{AMD, SST, BSC, SPI}

// Probe reads the part's IDs with each command set in turn and identifies
// the first one found in the table. It returns ErrUnknownChip when nothing
// matched; the session can carry on without flash.
func (e *Engine) Probe() error {
	e.Window = e.windowFor(0)
	fmt.Fprintf(e.out, "\nProbing Flash at (Flash Window: 0x%08x) ... \n", e.Window)

	for _, cs := range probeOrder {
		vendor, device, err := e.readID(cs)
		if errors.Is(err, ErrTimeout) {
			// No serial controller answering is the same as no part.
			e.log.WithError(err).Debugf("%v probe gave up", cs)
			continue
		}
		if err != nil {
			return err
		}
		e.log.WithField("set", cs).Debugf("vendor %08x device %08x", vendor, device)

		found, err := e.identify(vendor, device, true)
		if err != nil {
			return err
		}
		if found {
			return nil
		}
	}

	e.CommandSet = 0
	fmt.Fprint(e.out, "Done\n\n*** Unknown or NO Flash Chip Detected ***")
	return ErrUnknownChip
}

// SelectChip identifies the part as entry n of the flash table, counting
// from 1, without talking to it.
func (e *Engine) SelectChip(n int) error {
	fmt.Fprint(e.out, "\nManual Flash Selection ... ")
	chip, err := chipdb.FlashByNumber(n)
	if err != nil {
		fmt.Fprintln(e.out, "*** Unknown or NO Flash Chip Selected ***")
		return fmt.Errorf("%w: %v", ErrUnknownChip, err)
	}
	e.Manual = true
	e.Window = e.windowFor(0)
	if _, err := e.identify(uint32(chip.Vendor), uint32(chip.Device), false); err != nil {
		return err
	}
	return nil
}

// readID puts the part in identification mode for cs and reads its IDs.
func (e *Engine) readID(cs CommandSet) (vendor, device uint32, err error) {
	e.CommandSet = cs
	if err := e.Reset(); err != nil {
		return 0, 0, err
	}
	w := e.Window

	switch cs {
	case AMD, SST:
		u1, u2 := unlockAddrs(w, cs)
		err = e.sequence(
			command{u1, 0x00AA00AA},
			command{u2, 0x00550055},
			command{u1, 0x00900090},
		)
		if err != nil {
			return 0, 0, err
		}
		if vendor, err = e.read16(w); err != nil {
			return 0, 0, err
		}
		device, err = e.read16(w + 2)
		return vendor, device, err

	case BSC, SCS:
		if err := e.write16(w, 0x00900090); err != nil {
			return 0, 0, err
		}
		if vendor, err = e.read32(w); err != nil {
			return 0, 0, err
		}
		device, err = e.read32(w + 2)
		return vendor, device, err

	case SPI:
		op := OpReadID
		if e.SPI.Broadcom {
			op = OpBCMReadID
		}
		id, err := e.SendCommand(op)
		if err != nil {
			return 0, 0, err
		}
		id = bits.ReverseBytes32(id << 8)
		return id >> 16, id & 0xFFFF, nil
	}
	return 0, 0, fmt.Errorf("flash: cannot probe command set %v", cs)
}

// unlockAddrs returns the two unlock cycle addresses of an AMD or SST part.
func unlockAddrs(window uint32, cs CommandSet) (uint32, uint32) {
	if cs == SST {
		return window + 0x5555<<1, window + 0x2AAA<<1
	}
	return window + 0x555<<1, window + 0x2AA<<1
}

// disambiguate resolves vendor/device pairs that several parts report. The
// part must still be in identification mode.
func (e *Engine) disambiguate(vendor, device uint32) (uint32, uint32, error) {
	spansion := vendor&0xFF == 0x01 && device == 0x227E
	winbond := vendor&0xFF == 0xDA && device&0xFF == 0x7E
	if !spansion && !winbond {
		return vendor, device, nil
	}

	vendor = 0x017E
	if winbond {
		vendor = 0xDA7E
	}
	m, err := e.read16(e.Window + subIDHigh)
	if err != nil {
		return 0, 0, err
	}
	l, err := e.read16(e.Window + subIDLow)
	if err != nil {
		return 0, 0, err
	}
	return vendor, 0x100*(m&0xFF) + l&0xFF, nil
}

// identify looks the IDs up and, on a match, sets up the window, area and
// block table, returns the part to read mode and prints a summary.
func (e *Engine) identify(vendor, device uint32, probed bool) (bool, error) {
	e.Chip = chipdb.FlashChip{}
	e.Blocks = nil
	e.Area = chipdb.Area{}

	if probed {
		var err error
		if vendor, device, err = e.disambiguate(vendor, device); err != nil {
			return false, err
		}
	}
	e.Vendor, e.Device = vendor, device

	if vendor > 0xFFFF || device > 0xFFFF {
		return false, nil
	}
	chip, err := chipdb.LookupFlash(uint16(vendor), uint16(device))
	if err != nil {
		return false, nil
	}

	e.Chip = chip
	e.CommandSet = chip.CommandSet
	e.Window = e.windowFor(chip.Size)
	e.selectArea()
	e.Blocks = buildBlocks(e.Window, chip.Regions)

	if err := e.Reset(); err != nil {
		return true, err
	}

	fmt.Fprint(e.out, "Done\n\n")
	fmt.Fprintf(e.out, "Flash Vendor ID: %s\n", ejtag.FormatBits(vendor))
	fmt.Fprintf(e.out, "Flash Device ID: %s\n", ejtag.FormatBits(device))
	if e.Manual {
		fmt.Fprintf(e.out, "*** Manually Selected a %s Flash Chip ***\n\n", chip.Name)
	} else {
		fmt.Fprintf(e.out, "*** Found a %s Flash Chip ***\n\n", chip.Name)
	}
	fmt.Fprintf(e.out, "    - Flash Chip Window Start .... : %08x\n", e.Window)
	fmt.Fprintf(e.out, "    - Flash Chip Window Length ... : %08x\n", chip.Size)
	fmt.Fprintf(e.out, "    - Selected Area Start ........ : %08x\n", e.Area.Start)
	fmt.Fprintf(e.out, "    - Selected Area Length ....... : %08x\n\n", e.Area.Length)

	e.log.WithField("chip", chip.Name).Debugf("flash window %08x size %08x set %v", e.Window, chip.Size, chip.CommandSet)
	return true, nil
}

// selectArea resolves the requested area for the identified part. An area
// the table does not have for this size is left with zero length.
func (e *Engine) selectArea() {
	size := e.Chip.Size
	if e.custom() {
		e.Area = chipdb.Area{Size: size, Name: e.opts.Area, Start: e.opts.CustomStart, Length: e.opts.CustomLength}
		return
	}
	name := e.opts.Area
	if e.target.Family == ejtag.FamilyAtheros {
		name = chipdb.AtherosAreaName(name, size)
	}
	e.Area = chipdb.Area{Size: size, Name: name}
	if a, err := chipdb.LookupArea(size, name); err == nil {
		e.Area.Start, e.Area.Length = a.Start, a.Length
	} else {
		e.log.WithError(err).Debug("area not available")
	}
}
