package jtag

import "testing"

func TestClockSequenceFallsBackToClockIn(t *testing.T) {
	// Target that returns the previous TDI, like a 1-bit shift register.
	var last bool
	sim := NewSimCable(func(tms, tdi bool) bool {
		out := last
		last = tdi
		return out
	})
	sim.Record = true

	tdo, err := ClockSequence(sim, bitsOf("0001"), bitsOf("1101"))
	if err != nil {
		t.Fatalf("ClockSequence: %v", err)
	}
	want := bitsOf("0110")
	for i := range want {
		if tdo[i] != want[i] {
			t.Fatalf("tdo[%d] = %v, want %v", i, tdo[i], want[i])
		}
	}
	if sim.Clocks() != 4 {
		t.Fatalf("clocks = %d", sim.Clocks())
	}
	hist := sim.History()
	if len(hist) != 4 || !hist[3].TMS || hist[2].TDI {
		t.Fatalf("history = %+v", hist)
	}
	sim.ResetHistory()
	if sim.Clocks() != 0 || len(sim.History()) != 0 {
		t.Fatalf("history not cleared")
	}
}

func TestClockSequenceLengthMismatch(t *testing.T) {
	if _, err := ClockSequence(NewSimCable(nil), make([]bool, 2), make([]bool, 3)); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestOpenSimCable(t *testing.T) {
	c, err := Open(Options{Kind: InterfaceKindSim})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Info().Kind != InterfaceKindSim {
		t.Fatalf("kind = %q", c.Info().Kind)
	}
	if _, err := Open(Options{Kind: "jlink"}); err == nil {
		t.Fatalf("expected unknown cable error")
	}
}

func TestInterfaceLabel(t *testing.T) {
	tests := []struct {
		info InterfaceInfo
		want string
	}{
		{InterfaceInfo{Kind: InterfaceKindFTDI, Description: "FTDI FT232H", VendorID: 0x0403, ProductID: 0x6014}, "FTDI FT232H (0403:6014)"},
		{InterfaceInfo{Kind: InterfaceKindParallel, Path: "/dev/parport0"}, "parport (/dev/parport0)"},
		{InterfaceInfo{Kind: InterfaceKindSim, Description: "Simulator"}, "Simulator"},
	}
	for _, tt := range tests {
		if got := tt.info.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
