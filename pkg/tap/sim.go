package tap

// SimTarget is a bit-level model of one TAP with a 32-bit data register behind
// every instruction except all-ones (BYPASS). Plug its Clock method into a
// jtag.SimCable.
type SimTarget struct {
	// IRLength is the instruction register width.
	IRLength int
	// ResetInstr is loaded on Test-Logic-Reset (IDCODE on most parts).
	ResetInstr uint32
	// OnCaptureDR supplies the value parallel-loaded in Capture-DR.
	OnCaptureDR func(instr uint32) uint32
	// OnUpdateDR receives the shifted-in value at Update-DR.
	OnUpdateDR func(instr, value uint32)

	sm    *StateMachine
	ir    uint32
	dr    uint64
	drLen int
	instr uint32
	irLog []uint32
}

// NewSimTarget returns a target sitting in Test-Logic-Reset.
func NewSimTarget(irLength int, resetInstr uint32) *SimTarget {
	return &SimTarget{
		IRLength:   irLength,
		ResetInstr: resetInstr,
		sm:         NewStateMachine(),
		instr:      resetInstr,
	}
}

// State reports the target-side TAP state.
func (t *SimTarget) State() State { return t.sm.State() }

// Instruction reports the instruction currently latched.
func (t *SimTarget) Instruction() uint32 { return t.instr }

// IRLoads lists every instruction latched through Update-IR.
func (t *SimTarget) IRLoads() []uint32 { return append([]uint32(nil), t.irLog...) }

func (t *SimTarget) bypass() bool {
	return t.instr == uint32(1)<<t.IRLength-1
}

// Clock applies one rising TCK edge and returns the TDO level seen after it.
func (t *SimTarget) Clock(tms, tdi bool) bool {
	var tdo bool
	switch t.sm.State() {
	case StateShiftDR:
		tdo = t.dr&1 == 1
		t.dr >>= 1
		if tdi {
			t.dr |= 1 << (t.drLen - 1)
		}
	case StateShiftIR:
		tdo = t.ir&1 == 1
		t.ir >>= 1
		if tdi {
			t.ir |= 1 << (t.IRLength - 1)
		}
	}

	switch t.sm.Clock(tms) {
	case StateTestLogicReset:
		t.instr = t.ResetInstr
	case StateCaptureDR:
		t.drLen = 32
		if t.bypass() {
			t.drLen = 1
			t.dr = 0
		} else if t.OnCaptureDR != nil {
			t.dr = uint64(t.OnCaptureDR(t.instr))
		} else {
			t.dr = 0
		}
	case StateCaptureIR:
		t.ir = 0x1
	case StateUpdateIR:
		t.instr = t.ir
		t.irLog = append(t.irLog, t.instr)
	case StateUpdateDR:
		if !t.bypass() && t.OnUpdateDR != nil {
			t.OnUpdateDR(t.instr, uint32(t.dr))
		}
	}
	return tdo
}
