package ejtag

import (
	"errors"
	"fmt"
)

// Atheros AR531x/231x registers.
const (
	atherosWatchdogBase  = 0xBC003000
	atherosWatchdogCtl   = 0xBC003008
	atherosResetReg      = 0xBC004000
	atherosFlashCtl      = 0xB8400000
	atherosFlashCtl16Bit = 0x100E3CE1
	atherosRevision      = 0xB1000014
)

// genericWatchdog is the Broadcom SB chipcommon watchdog counter.
const genericWatchdog = 0xB8000080

// RebootVector is the address the CPU restarts from after Reboot.
const RebootVector = 0xBFC00000

// BringUp selects the preparation steps run before flash access.
type BringUp struct {
	Reset              bool
	EnableMemoryWrites bool
	Break              bool
	ClearWatchdog      bool
}

// DefaultBringUp runs every step.
var DefaultBringUp = BringUp{Reset: true, EnableMemoryWrites: true, Break: true, ClearWatchdog: true}

// Prepare resets the TAP, then resets, unlocks, halts and quiets the target
// as selected. On Atheros parts it also enables 16-bit flash access and
// reports the SoC revision.
func (s *Session) Prepare(b BringUp) error {
	if err := s.tap.TestReset(); err != nil {
		return err
	}

	fmt.Fprint(s.out, "Issuing Processor / Peripheral Reset ... ")
	if b.Reset {
		if err := s.ResetProcessor(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Done")
	} else {
		fmt.Fprintln(s.out, "Skipped")
	}

	// The DCR protection bit only exists on EJTAG 1.x/2.0.
	fmt.Fprint(s.out, "Enabling Memory Writes ... ")
	if b.EnableMemoryWrites && s.Features.Version() == 0 {
		if err := s.EnableMemoryWrites(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Done")
	} else {
		fmt.Fprintln(s.out, "Skipped")
	}

	fmt.Fprint(s.out, "Halting Processor ... ")
	if b.Break {
		halted, err := s.Halt()
		if err != nil {
			return err
		}
		if halted {
			fmt.Fprint(s.out, "<Processor Entered Debug Mode!> ... ")
		} else {
			fmt.Fprint(s.out, "<Processor did NOT enter Debug Mode!> ... ")
		}
		fmt.Fprintln(s.out, "Done")
	} else {
		fmt.Fprintln(s.out, "Skipped")
	}

	fmt.Fprint(s.out, "Clearing Watchdog ... ")
	if b.ClearWatchdog {
		if err := s.ClearWatchdog(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Done")
	} else {
		fmt.Fprintln(s.out, "Skipped")
	}

	if s.Family == FamilyAtheros {
		fmt.Fprint(s.out, "\nEnabling Atheros Flash Read/Write ... ")
		if err := s.EnableAtherosFlash(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Done")

		fmt.Fprint(s.out, "\n.RE-Probing Atheros processor....")
		name, err := s.AtherosRevision()
		if err != nil {
			return err
		}
		if name != "" {
			fmt.Fprintf(s.out, "\n..Found a Atheros %s\n", name)
		}
	}
	return nil
}

// tolerate turns an exhausted DMA retry budget into a logged warning; the
// caller carries on with whatever value came back.
func (s *Session) tolerate(err error) error {
	if errors.Is(err, ErrDMAFailed) {
		s.log.WithError(err).Debug("continuing after DMA failure")
		return nil
	}
	return err
}

// ResetProcessor pulses the processor and peripheral reset bits. The BCM5354
// needs the bits written and then explicitly cleared.
func (s *Session) ResetProcessor() error {
	if s.Family == FamilyBroadcomBCM5354 {
		if err := writeRegister(s.tap, InstrControl, PRRST|PERRST); err != nil {
			return err
		}
		return writeRegister(s.tap, InstrControl, 0)
	}
	_, err := exchangeRegister(s.tap, InstrControl, PRRST|PERRST)
	return err
}

// EnableMemoryWrites clears the memory protection bit in the DCR so DMA may
// write target memory.
func (s *Session) EnableMemoryWrites() error {
	dcr, err := s.dma.Read32(DebugControlRegister)
	if err := s.tolerate(err); err != nil {
		return err
	}
	return s.tolerate(s.dma.Write32(DebugControlRegister, dcr&^dcrMemoryProtection))
}

// Halt requests a debug exception and reports whether BRKST came up.
func (s *Session) Halt() (bool, error) {
	if _, err := exchangeRegister(s.tap, InstrControl, PRACC|PROBEN|SETDEV|JTAGBRK); err != nil {
		return false, err
	}
	ctrl, err := s.tap.ReadWriteData(PRACC | PROBEN | SETDEV)
	if err != nil {
		return false, err
	}
	return ctrl&BRKST != 0, nil
}

// ClearWatchdog stops the SoC watchdog so it cannot reset the target during
// a long flash operation.
func (s *Session) ClearWatchdog() error {
	mem := s.Memory()
	if s.Family == FamilyAtheros {
		for _, w := range [][2]uint32{
			{atherosWatchdogBase, 0xFFFFFFFF},
			{atherosWatchdogCtl, 0},
			{atherosResetReg, 0x05551212},
		} {
			if err := s.tolerate(mem.Write32(w[0], w[1])); err != nil {
				return err
			}
		}
		return nil
	}
	return s.tolerate(mem.Write32(genericWatchdog, 0))
}

// EnableAtherosFlash puts the Atheros flash controller in 16-bit mode.
func (s *Session) EnableAtherosFlash() error {
	return s.tolerate(s.Memory().Write32(atherosFlashCtl, atherosFlashCtl16Bit))
}

// AtherosRevision names the SoC from its major revision field, or returns
// "" when it is not one the tool tells apart.
func (s *Session) AtherosRevision() (string, error) {
	rev, err := s.Memory().Read32(atherosRevision)
	if err := s.tolerate(err); err != nil {
		return "", err
	}
	switch (rev & 0xF0) >> 4 {
	case 0x9:
		return "AR2317", nil
	case 0x8:
		return "AR2316", nil
	}
	return "", nil
}

// Reboot points DEPC at the boot vector so the CPU restarts from flash when
// it leaves debug mode.
func (s *Session) Reboot() error {
	fmt.Fprintln(s.out, "Reset Processor ...")
	if err := s.Execute(ModuleReadDEPC); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "DEPC: 0x%08x\n", s.exec.DataRegister)

	s.exec.AddressRegister = UncachedSegment
	s.exec.DataRegister = RebootVector
	if err := s.Execute(ModuleWriteDEPC); err != nil {
		return err
	}

	if err := s.Execute(ModuleReadDEPC); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "DEPC: 0x%08x\n", s.exec.DataRegister)
	return nil
}

// Resume returns from debug mode and resets the processor into a normal
// boot.
func (s *Session) Resume() error {
	fmt.Fprintln(s.out, "Resuming Processor ...")
	if err := s.Execute(ModuleReturnFromDebug); err != nil {
		return err
	}
	if err := s.tap.SetInstruction(InstrNormalBoot); err != nil {
		return err
	}
	if err := s.tap.TestReset(); err != nil {
		return err
	}
	ecr, err := exchangeRegister(s.tap, InstrControl, PRRST|PERRST)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, " ECR: 0x%08x\n", ecr)
	return nil
}

// Shutdown leaves the TAP in Run-Test/Idle. The caller closes the cable.
func (s *Session) Shutdown() error {
	return s.tap.TestReset()
}
