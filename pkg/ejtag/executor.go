package ejtag

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a bounded poll runs out of attempts.
	ErrTimeout = errors.New("ejtag: timed out waiting for target")
	// ErrModuleRange is returned when the target fetches past the end of the
	// code module being executed.
	ErrModuleRange = errors.New("ejtag: fetch outside code module")
)

// DefaultPollLimit bounds every busy-wait on the target.
const DefaultPollLimit = 1000000

// Executor serves processor accesses from a CPU halted in debug mode. The
// CPU fetches the code module from the debug vector and exchanges operands
// through the virtual register pair held here.
type Executor struct {
	port Port

	// PollLimit bounds the CONTROL reads spent waiting for each processor
	// access. Zero waits forever.
	PollLimit int

	// AddressRegister and DataRegister back the words at
	// VirtualAddressRegister and VirtualDataRegister.
	AddressRegister uint32
	DataRegister    uint32
}

// NewExecutor returns an executor on port with the default poll limit.
func NewExecutor(port Port) *Executor {
	return &Executor{port: port, PollLimit: DefaultPollLimit}
}

// Execute runs module on the target. It returns once the CPU comes back to
// the debug vector a second time; that fetch is left pending so the next
// module starts from it.
func (e *Executor) Execute(module []uint32) error {
	finished := false
	for {
		ctrl, err := e.waitAccess()
		if err != nil {
			return err
		}
		addr, err := readRegister(e.port, InstrAddress)
		if err != nil {
			return err
		}

		if ctrl&PRNW != 0 {
			data, err := readRegister(e.port, InstrData)
			if err != nil {
				return err
			}
			if err := writeRegister(e.port, InstrControl, PROBEN|SETDEV); err != nil {
				return err
			}
			switch addr {
			case VirtualAddressRegister:
				e.AddressRegister = data
			case VirtualDataRegister:
				e.DataRegister = data
			}
			continue
		}

		if addr == DebugVector {
			if finished {
				return nil
			}
			finished = true
		}

		var data uint32
		switch {
		case addr >= DebugVector:
			i := (addr - DebugVector) / 4
			if int(i) >= len(module) {
				return fmt.Errorf("%w: %08x (module has %d words)", ErrModuleRange, addr, len(module))
			}
			data = module[i]
		case addr == VirtualAddressRegister:
			data = e.AddressRegister
		case addr == VirtualDataRegister:
			data = e.DataRegister
		}

		if err := writeRegister(e.port, InstrData, data); err != nil {
			return err
		}
		if err := writeRegister(e.port, InstrControl, PROBEN|SETDEV); err != nil {
			return err
		}
	}
}

// waitAccess polls CONTROL until the CPU has a processor access pending and
// returns the CONTROL value that showed it.
func (e *Executor) waitAccess() (uint32, error) {
	for n := 0; e.PollLimit == 0 || n < e.PollLimit; n++ {
		ctrl, err := exchangeRegister(e.port, InstrControl, PRACC|PROBEN|SETDEV)
		if err != nil {
			return 0, err
		}
		if ctrl&PRACC != 0 {
			return ctrl, nil
		}
	}
	return 0, fmt.Errorf("%w: no processor access after %d polls", ErrTimeout, e.PollLimit)
}
