package jtag

import (
	"errors"
	"fmt"
)

// CableInfo describes the cable a session is clocking through.
type CableInfo struct {
	Name   string
	Kind   InterfaceKind
	Path   string
	Wiring string
	Delay  int
	Notes  string
}

// Cable is a bit-level JTAG transport. Every ClockIn drives TMS/TDI, pulses
// TCK low then high, and samples TDO.
type Cable interface {
	Info() CableInfo
	ClockIn(tms, tdi bool) (tdo bool, err error)
	Close() error
}

// Sequencer is implemented by cables that can move many clocks in a single
// host transfer.
type Sequencer interface {
	ClockSequence(tms, tdi []bool) ([]bool, error)
}

// ErrNotImplemented lets backends signal that a requested capability is not
// available on this host or build.
var ErrNotImplemented = errors.New("jtag: not implemented")

// ClockSequence clocks len(tms) cycles through c, using the cable's batched
// path when it has one.
func ClockSequence(c Cable, tms, tdi []bool) ([]bool, error) {
	if len(tms) != len(tdi) {
		return nil, fmt.Errorf("jtag: tms/tdi length mismatch (%d != %d)", len(tms), len(tdi))
	}
	if len(tms) == 0 {
		return nil, nil
	}
	if s, ok := c.(Sequencer); ok {
		return s.ClockSequence(tms, tdi)
	}
	tdo := make([]bool, len(tms))
	for i := range tms {
		bit, err := c.ClockIn(tms[i], tdi[i])
		if err != nil {
			return nil, err
		}
		tdo[i] = bit
	}
	return tdo, nil
}

var spinSink uint64

// spin burns n loop iterations. Slow cables need it between edges.
func spin(n int) {
	for i := 0; i < n; i++ {
		spinSink++
	}
}
