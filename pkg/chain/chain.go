// Package chain enumerates the TAPs on a scan chain after Test-Logic-Reset.
// Devices with an IDCODE register shift it out; devices without one reset
// into BYPASS and shift a single zero.
package chain

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/idcode"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/tap"
)

// DefaultMaxDevices bounds a scan unless the Scanner says otherwise.
const DefaultMaxDevices = 8

var (
	// ErrNoDevices means TDO never went high: nothing answered, or the
	// cable is unplugged.
	ErrNoDevices = errors.New("chain: no devices (TDO stuck low)")
	// ErrTooLong means the chain did not end within the scan budget.
	ErrTooLong = errors.New("chain: chain longer than the scan budget")
)

// Device is one TAP, numbered from 0 at the TDO end.
type Device struct {
	Position int
	// IDCode is zero for a device that reset into BYPASS.
	IDCode uint32
	// Processor is the table entry for IDCode, when there is one.
	Processor *chipdb.Processor
}

// Bypass reports whether the device has no IDCODE register.
func (d Device) Bypass() bool { return d.IDCode == 0 }

func (d Device) String() string {
	switch {
	case d.Bypass():
		return fmt.Sprintf("#%d  BYPASS (no IDCODE)", d.Position)
	case d.Processor != nil:
		return fmt.Sprintf("#%d  %s  %s", d.Position, idcode.ParseIDCode(d.IDCode), d.Processor.Name)
	}
	return fmt.Sprintf("#%d  %s", d.Position, idcode.ParseIDCode(d.IDCode))
}

// Chain is the result of a scan.
type Chain struct {
	Devices []Device
	// IRLength is the instruction register length summed over all devices.
	IRLength int
}

// Scanner clocks a cable directly, without an instruction or data length.
type Scanner struct {
	cable jtag.Cable
	sm    *tap.StateMachine
	// MaxDevices is how many 32-bit IDCODEs a scan makes room for.
	MaxDevices int
}

// NewScanner returns a scanner on cable.
func NewScanner(cable jtag.Cable) *Scanner {
	return &Scanner{cable: cable, sm: tap.NewStateMachine(), MaxDevices: DefaultMaxDevices}
}

// Scan resets the chain, reads every device's reset value and measures the
// total IR length. The chain is left in Test-Logic-Reset, so every device
// holds its reset instruction again.
func (s *Scanner) Scan() (*Chain, error) {
	budget := s.MaxDevices * 32
	if budget <= 0 {
		return nil, fmt.Errorf("chain: MaxDevices must be positive")
	}

	if err := s.reset(); err != nil {
		return nil, err
	}
	bits, err := s.shift(tap.StateShiftDR, ones(budget))
	if err != nil {
		return nil, err
	}
	devices, err := decodeIDs(bits)
	if err != nil {
		return nil, err
	}
	for i := range devices {
		if p, err := chipdb.LookupProcessor(devices[i].IDCode); err == nil {
			devices[i].Processor = &p
		}
	}

	// Flush every IR with ones, then time a single zero through.
	in := append(ones(budget), false)
	in = append(in, ones(budget)...)
	bits, err = s.shift(tap.StateShiftIR, in)
	if err != nil {
		return nil, err
	}
	irLen := -1
	for i := budget; i < len(bits); i++ {
		if !bits[i] {
			irLen = i - budget
			break
		}
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	if irLen < 0 {
		return nil, ErrTooLong
	}
	return &Chain{Devices: devices, IRLength: irLen}, nil
}

// decodeIDs splits the bits read out of the data registers after reset,
// first bit first. Ones fill the chain behind the last device, so a run of
// 32 ones ends it.
func decodeIDs(bits []bool) ([]Device, error) {
	var devices []Device
	for i := 0; i < len(bits); {
		if !bits[i] {
			devices = append(devices, Device{Position: len(devices)})
			i++
			continue
		}
		if i+32 > len(bits) {
			break
		}
		id := bitsToUint32(bits[i : i+32])
		if id == 0xFFFFFFFF {
			if len(devices) == 0 {
				return nil, ErrNoDevices
			}
			return devices, nil
		}
		devices = append(devices, Device{Position: len(devices), IDCode: id})
		i += 32
	}
	if len(devices) == len(bits) {
		return nil, ErrNoDevices
	}
	return nil, ErrTooLong
}

func (s *Scanner) reset() error {
	seq := s.sm.Reset()
	_, err := jtag.ClockSequence(s.cable, seq.TMS, make([]bool, len(seq.TMS)))
	return err
}

// shift walks to a shift state, clocks tdi through it and returns the bits
// seen on TDO, then parks in Run-Test/Idle.
func (s *Scanner) shift(state tap.State, tdi []bool) ([]bool, error) {
	enter, err := s.sm.GoTo(state)
	if err != nil {
		return nil, err
	}
	tms := append([]bool(nil), enter.TMS...)
	start := len(tms)
	in := make([]bool, start, start+len(tdi)+4)
	for i, b := range tdi {
		last := i == len(tdi)-1
		tms = append(tms, last)
		in = append(in, b)
		s.sm.Clock(last)
	}
	leave, err := s.sm.GoTo(tap.StateRunTestIdle)
	if err != nil {
		return nil, err
	}
	tms = append(tms, leave.TMS...)
	in = append(in, make([]bool, len(leave.TMS))...)

	tdo, err := jtag.ClockSequence(s.cable, tms, in)
	if err != nil {
		return nil, err
	}
	return tdo[start : start+len(tdi)], nil
}

func ones(n int) []bool {
	b := make([]bool, n)
	for i := range b {
		b[i] = true
	}
	return b
}

func bitsToUint32(bits []bool) uint32 {
	var val uint32
	for i, bit := range bits {
		if bit {
			val |= 1 << uint(i)
		}
	}
	return val
}
