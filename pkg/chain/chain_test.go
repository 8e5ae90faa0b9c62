package chain

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/tap"
)

type simDevice struct {
	irLen int
	id    uint32 // zero resets into BYPASS
}

// simChain wires targets TDI to TDO; devs[0] is nearest TDI.
func simChain(devs ...simDevice) *jtag.SimCable {
	var targets []*tap.SimTarget
	for _, d := range devs {
		d := d
		reset := uint32(1)<<d.irLen - 1
		if d.id != 0 {
			reset = 1
		}
		t := tap.NewSimTarget(d.irLen, reset)
		t.OnCaptureDR = func(uint32) uint32 { return d.id }
		targets = append(targets, t)
	}
	return jtag.NewSimCable(func(tms, tdi bool) bool {
		bit := tdi
		for _, t := range targets {
			bit = t.Clock(tms, bit)
		}
		return bit
	})
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		devs  []simDevice
		ids   []uint32
		irLen int
	}{
		{"single BCM5352", []simDevice{{8, 0x0535217F}}, []uint32{0x0535217F}, 8},
		{"atheros", []simDevice{{5, 0x00000001}}, []uint32{0x00000001}, 5},
		{"two devices", []simDevice{{5, 0x10940027}, {8, 0x0535217F}}, []uint32{0x0535217F, 0x10940027}, 13},
		{"bypass in the middle", []simDevice{{4, 0x0635817F}, {3, 0}, {5, 0x00000001}}, []uint32{0x00000001, 0, 0x0635817F}, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewScanner(simChain(tc.devs...)).Scan()
			if err != nil {
				t.Fatal(err)
			}
			if len(c.Devices) != len(tc.ids) {
				t.Fatalf("found %d devices: %v", len(c.Devices), c.Devices)
			}
			for i, d := range c.Devices {
				if d.Position != i || d.IDCode != tc.ids[i] {
					t.Fatalf("device %d = %+v, want id %08X", i, d, tc.ids[i])
				}
			}
			if c.IRLength != tc.irLen {
				t.Fatalf("IR length %d, want %d", c.IRLength, tc.irLen)
			}
		})
	}
}

func TestScanNamesProcessors(t *testing.T) {
	c, err := NewScanner(simChain(simDevice{8, 0x0535217F}, simDevice{4, 0x0BADC0DF})).Scan()
	if err != nil {
		t.Fatal(err)
	}
	if c.Devices[1].Processor == nil || c.Devices[1].Processor.Name != "Broadcom BCM5352 Rev 1 CPU" {
		t.Fatalf("processor not named: %+v", c.Devices[1])
	}
	if c.Devices[0].Processor != nil {
		t.Fatalf("unknown IDCODE named %q", c.Devices[0].Processor.Name)
	}
}

func TestScanErrors(t *testing.T) {
	if _, err := NewScanner(jtag.NewSimCable(nil)).Scan(); !errors.Is(err, ErrNoDevices) {
		t.Fatalf("stuck-low TDO: err = %v", err)
	}

	s := NewScanner(simChain(simDevice{5, 0x00000001}, simDevice{5, 0x00000001}))
	s.MaxDevices = 1
	if _, err := s.Scan(); !errors.Is(err, ErrTooLong) {
		t.Fatalf("over budget: err = %v", err)
	}
}

func TestScanLeavesChainReset(t *testing.T) {
	cable := simChain(simDevice{8, 0x0535217F})
	if _, err := NewScanner(cable).Scan(); err != nil {
		t.Fatal(err)
	}
	ctl := tap.NewController(cable)
	if err := ctl.SetIRLength(8); err != nil {
		t.Fatal(err)
	}
	if err := ctl.TestReset(); err != nil {
		t.Fatal(err)
	}
	id, err := ctl.ReadData()
	if err != nil || id != 0x0535217F {
		t.Fatalf("IDCODE after scan = %08X, %v", id, err)
	}
}
