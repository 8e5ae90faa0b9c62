package jtag

// ClockFunc models a target: it sees every rising TCK edge and returns the
// TDO level sampled after it.
type ClockFunc func(tms, tdi bool) bool

// Clock is one recorded TCK cycle.
type Clock struct {
	TMS, TDI, TDO bool
}

// SimCable is an in-memory cable for tests and dry runs. Without an OnClock
// hook TDO stays low.
type SimCable struct {
	OnClock ClockFunc
	// Record keeps every clock in History when set.
	Record bool

	clocks  int
	closed  bool
	history []Clock
}

// NewSimCable returns a cable driving target.
func NewSimCable(target ClockFunc) *SimCable {
	return &SimCable{OnClock: target}
}

func (s *SimCable) Info() CableInfo {
	return CableInfo{Name: "Simulator (no hardware)", Kind: InterfaceKindSim}
}

func (s *SimCable) ClockIn(tms, tdi bool) (bool, error) {
	var tdo bool
	if s.OnClock != nil {
		tdo = s.OnClock(tms, tdi)
	}
	s.clocks++
	if s.Record {
		s.history = append(s.history, Clock{TMS: tms, TDI: tdi, TDO: tdo})
	}
	return tdo, nil
}

func (s *SimCable) Close() error {
	s.closed = true
	return nil
}

// Clocks reports how many TCK cycles have been driven.
func (s *SimCable) Clocks() int { return s.clocks }

// Closed reports whether Close has been called.
func (s *SimCable) Closed() bool { return s.closed }

// History returns a copy of the recorded clocks.
func (s *SimCable) History() []Clock {
	return append([]Clock(nil), s.history...)
}

// ResetHistory clears the clock record and counter.
func (s *SimCable) ResetHistory() {
	s.history = nil
	s.clocks = 0
}
