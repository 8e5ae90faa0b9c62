package tap

import (
	"fmt"
)

// State represents one of the 16 defined IEEE 1149.1 TAP controller states.
type State uint8

const (
	StateTestLogicReset State = iota
	StateRunTestIdle
	StateSelectDRScan
	StateCaptureDR
	StateShiftDR
	StateExit1DR
	StatePauseDR
	StateExit2DR
	StateUpdateDR
	StateSelectIRScan
	StateCaptureIR
	StateShiftIR
	StateExit1IR
	StatePauseIR
	StateExit2IR
	StateUpdateIR
)

var stateNames = [...]string{
	"Test-Logic-Reset", "Run-Test/Idle",
	"Select-DR-Scan", "Capture-DR", "Shift-DR", "Exit1-DR", "Pause-DR", "Exit2-DR", "Update-DR",
	"Select-IR-Scan", "Capture-IR", "Shift-IR", "Exit1-IR", "Pause-IR", "Exit2-IR", "Update-IR",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

func (s State) valid() bool { return int(s) < len(stateNames) }

// Sequence captures the TMS drive pattern and the sequence of states that result
// from applying that pattern to the TAP controller.
type Sequence struct {
	TMS    []bool
	States []State
}

// next[s][tms] is the state reached from s on a rising TCK edge.
var next = [...][2]State{
	StateTestLogicReset: {StateRunTestIdle, StateTestLogicReset},
	StateRunTestIdle:    {StateRunTestIdle, StateSelectDRScan},
	StateSelectDRScan:   {StateCaptureDR, StateSelectIRScan},
	StateCaptureDR:      {StateShiftDR, StateExit1DR},
	StateShiftDR:        {StateShiftDR, StateExit1DR},
	StateExit1DR:        {StatePauseDR, StateUpdateDR},
	StatePauseDR:        {StatePauseDR, StateExit2DR},
	StateExit2DR:        {StateShiftDR, StateUpdateDR},
	StateUpdateDR:       {StateRunTestIdle, StateSelectDRScan},
	StateSelectIRScan:   {StateCaptureIR, StateTestLogicReset},
	StateCaptureIR:      {StateShiftIR, StateExit1IR},
	StateShiftIR:        {StateShiftIR, StateExit1IR},
	StateExit1IR:        {StatePauseIR, StateUpdateIR},
	StatePauseIR:        {StatePauseIR, StateExit2IR},
	StateExit2IR:        {StateShiftIR, StateUpdateIR},
	StateUpdateIR:       {StateRunTestIdle, StateSelectDRScan},
}

// NextState returns the state after one TCK cycle with the given TMS level.
// It panics on a state outside the diagram.
func NextState(current State, tms bool) State {
	if !current.valid() {
		panic(fmt.Sprintf("tap: unhandled state %d", current))
	}
	if tms {
		return next[current][1]
	}
	return next[current][0]
}

// StateMachine tracks TAP state without doing I/O. Controller and SimTarget
// both run one.
type StateMachine struct {
	state State
}

// NewStateMachine creates a TAP state machine initialized to Test-Logic-Reset.
func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateTestLogicReset}
}

// State reports the current TAP state tracked by the machine.
func (m *StateMachine) State() State {
	return m.state
}

// Clock advances the machine one TCK cycle with the provided TMS bit and
// returns the new state.
func (m *StateMachine) Clock(tms bool) State {
	next := NextState(m.state, tms)
	m.state = next
	return next
}

// Reset clocks five TMS=1 cycles, which reaches Test-Logic-Reset from any
// state.
func (m *StateMachine) Reset() Sequence {
	seq := Sequence{
		TMS:    make([]bool, 5),
		States: make([]State, 6),
	}
	seq.States[0] = m.state
	for i := 0; i < 5; i++ {
		seq.TMS[i] = true
		seq.States[i+1] = m.Clock(true)
	}
	return seq
}

// GoTo clocks the shortest TMS pattern from the current state to target
// through the machine and returns it.
func (m *StateMachine) GoTo(target State) (Sequence, error) {
	if !target.valid() {
		return Sequence{}, fmt.Errorf("tap: invalid target state %d", target)
	}
	tms := paths[m.state][target]
	seq := Sequence{
		TMS:    append([]bool(nil), tms...),
		States: make([]State, 1, len(tms)+1),
	}
	seq.States[0] = m.state
	for _, bit := range tms {
		seq.States = append(seq.States, m.Clock(bit))
	}
	return seq, nil
}

const numStates = len(stateNames)

// paths[from][to] is the shortest TMS pattern between two states. TMS low is
// preferred where two paths tie.
var paths [numStates][numStates][]bool

func init() {
	type edge struct {
		from State
		tms  bool
		seen bool
	}
	for from := State(0); int(from) < numStates; from++ {
		var prev [numStates]edge
		prev[from].seen = true
		queue := []State{from}
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]
			for _, tms := range [...]bool{false, true} {
				n := NextState(s, tms)
				if prev[n].seen {
					continue
				}
				prev[n] = edge{from: s, tms: tms, seen: true}
				queue = append(queue, n)
			}
		}
		for to := State(0); int(to) < numStates; to++ {
			var rev []bool
			for s := to; s != from; s = prev[s].from {
				rev = append(rev, prev[s].tms)
			}
			tms := make([]bool, len(rev))
			for i, b := range rev {
				tms[len(rev)-1-i] = b
			}
			paths[from][to] = tms
		}
	}
}
