package jtag

import (
	"errors"
	"testing"
)

type fakePort struct {
	writes []byte
	status byte
	err    error
	closed bool
}

func (p *fakePort) WriteData(b byte) error {
	p.writes = append(p.writes, b)
	return p.err
}

func (p *fakePort) ReadStatus() (byte, error) { return p.status, nil }

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestWiringFrame(t *testing.T) {
	tests := []struct {
		name          string
		wiring        Wiring
		tms, tdi, tck bool
		want          byte
	}{
		{"xilinx idle", XilinxWiring, false, false, false, 0x10},
		{"xilinx all", XilinxWiring, true, true, true, 0x17},
		{"xilinx tck only", XilinxWiring, false, false, true, 0x12},
		{"wiggler idle", WigglerWiring, false, false, false, 0x90},
		{"wiggler all", WigglerWiring, true, true, true, 0x9E},
		{"wiggler tdi", WigglerWiring, false, true, false, 0x98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wiring.Frame(tt.tms, tt.tdi, tt.tck); got != tt.want {
				t.Fatalf("Frame = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestWiringSample(t *testing.T) {
	tests := []struct {
		name   string
		wiring Wiring
		status byte
		want   bool
	}{
		{"xilinx high", XilinxWiring, 0x10, true},
		{"xilinx low", XilinxWiring, 0xEF, false},
		{"wiggler busy inverted low", WigglerWiring, 0x80, false},
		{"wiggler busy inverted high", WigglerWiring, 0x00, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wiring.Sample(tt.status); got != tt.want {
				t.Fatalf("Sample(0x%02X) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestParallelCableClockIn(t *testing.T) {
	port := &fakePort{status: 0x10}
	c := newParallelCable(port, XilinxWiring, 0, "/dev/parport0")

	tdo, err := c.ClockIn(true, false)
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if !tdo {
		t.Fatalf("expected TDO high")
	}
	want := []byte{0x14, 0x16}
	if len(port.writes) != 2 || port.writes[0] != want[0] || port.writes[1] != want[1] {
		t.Fatalf("writes = % X, want % X", port.writes, want)
	}

	if err := c.Close(); err != nil || !port.closed {
		t.Fatalf("Close: %v", err)
	}
}

func TestParallelCableWriteError(t *testing.T) {
	boom := errors.New("boom")
	c := newParallelCable(&fakePort{err: boom}, WigglerWiring, 3, "")
	if _, err := c.ClockIn(false, false); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestWiringByName(t *testing.T) {
	if w, err := WiringByName(""); err != nil || w.Name != "xilinx" {
		t.Fatalf("default wiring = %v, %v", w.Name, err)
	}
	if w, err := WiringByName("wiggler"); err != nil || w.TDO != 7 {
		t.Fatalf("wiggler = %+v, %v", w, err)
	}
	if _, err := WiringByName("byteblaster"); err == nil {
		t.Fatalf("expected error for unknown wiring")
	}
}
