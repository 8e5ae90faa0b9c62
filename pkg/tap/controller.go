package tap

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
)

// MaxIRLength bounds instruction register lengths accepted by the controller.
const MaxIRLength = 32

// Controller drives a single TAP through a cable. It owns the TAP state and
// caches the loaded instruction so repeated selects cost nothing.
type Controller struct {
	cable jtag.Cable
	sm    *StateMachine

	irLen  int
	instr  uint32
	loaded bool

	// Trace, when set, sees every data register exchange.
	Trace func(instr, out, in uint32)
}

// NewController wraps cable. The TAP is assumed to be in Test-Logic-Reset
// until TestReset is called.
func NewController(cable jtag.Cable) *Controller {
	return &Controller{cable: cable, sm: NewStateMachine(), irLen: 5}
}

// Cable returns the underlying transport.
func (c *Controller) Cable() jtag.Cable { return c.cable }

// State reports the tracked TAP state.
func (c *Controller) State() State { return c.sm.State() }

// SetIRLength sets the number of instruction bits shifted by SetInstruction.
func (c *Controller) SetIRLength(n int) error {
	if n <= 0 || n > MaxIRLength {
		return fmt.Errorf("tap: instruction length %d out of range 1..%d", n, MaxIRLength)
	}
	if n != c.irLen {
		c.irLen = n
		c.loaded = false
	}
	return nil
}

// IRLength reports the configured instruction register length.
func (c *Controller) IRLength() int { return c.irLen }

// Instruction returns the cached instruction and whether one is loaded.
func (c *Controller) Instruction() (uint32, bool) { return c.instr, c.loaded }

// Invalidate forgets the cached instruction so the next select reshifts it.
func (c *Controller) Invalidate() { c.loaded = false }

// TestReset clocks five TMS=1 cycles into Test-Logic-Reset and parks in
// Run-Test/Idle. The device reloads its default instruction, so the cache is
// dropped.
func (c *Controller) TestReset() error {
	seq := c.sm.Reset()
	tms := append(seq.TMS, false)
	c.sm.Clock(false)
	if _, err := jtag.ClockSequence(c.cable, tms, make([]bool, len(tms))); err != nil {
		return err
	}
	c.loaded = false
	return nil
}

// SetInstruction loads instr into the instruction register, LSB first. It is a
// no-op when instr is already loaded.
func (c *Controller) SetInstruction(instr uint32) error {
	if c.loaded && c.instr == instr {
		return nil
	}
	tms, tdi, _, err := c.scan(StateShiftIR, uint64(instr), c.irLen)
	if err != nil {
		return err
	}
	if _, err := jtag.ClockSequence(c.cable, tms, tdi); err != nil {
		c.loaded = false
		return err
	}
	c.instr = instr
	c.loaded = true
	return nil
}

// ReadWriteData shifts out through the 32-bit data register selected by the
// current instruction and returns what was captured.
func (c *Controller) ReadWriteData(out uint32) (uint32, error) {
	tms, tdi, start, err := c.scan(StateShiftDR, uint64(out), 32)
	if err != nil {
		return 0, err
	}
	tdo, err := jtag.ClockSequence(c.cable, tms, tdi)
	if err != nil {
		return 0, err
	}
	var in uint32
	for i := 0; i < 32; i++ {
		if tdo[start+i] {
			in |= 1 << i
		}
	}
	if c.Trace != nil {
		c.Trace(c.instr, out, in)
	}
	return in, nil
}

// ReadData captures the data register while shifting in zeros.
func (c *Controller) ReadData() (uint32, error) {
	return c.ReadWriteData(0)
}

// WriteData loads the data register and discards the captured value.
func (c *Controller) WriteData(v uint32) error {
	_, err := c.ReadWriteData(v)
	return err
}

// scan builds the TMS/TDI stream for one register scan: walk to the shift
// state, clock n bits (TMS high on the last), then walk through Update back to
// Run-Test/Idle. start is the index of the first shifted bit.
func (c *Controller) scan(shift State, value uint64, n int) (tms, tdi []bool, start int, err error) {
	if c.sm.State() != StateRunTestIdle {
		park, err := c.sm.GoTo(StateRunTestIdle)
		if err != nil {
			return nil, nil, 0, err
		}
		tms = append(tms, park.TMS...)
	}
	enter, err := c.sm.GoTo(shift)
	if err != nil {
		return nil, nil, 0, err
	}
	tms = append(tms, enter.TMS...)
	start = len(tms)
	tdi = make([]bool, start, start+n+2)
	for i := 0; i < n; i++ {
		last := i == n-1
		tms = append(tms, last)
		tdi = append(tdi, value>>i&1 == 1)
		c.sm.Clock(last)
	}
	leave, err := c.sm.GoTo(StateRunTestIdle)
	if err != nil {
		return nil, nil, 0, err
	}
	tms = append(tms, leave.TMS...)
	tdi = append(tdi, make([]bool, len(leave.TMS))...)
	return tms, tdi, start, nil
}
