package jtag

import "fmt"

// Wiring maps JTAG signals onto the data and status bits of a PC parallel
// port. TDO is read from the status register; everything else is driven on
// the data register.
type Wiring struct {
	Name string
	TDI  uint8
	TCK  uint8
	TMS  uint8
	TDO  uint8
	// Idle bits are driven high on every data write.
	Idle byte
}

var (
	// XilinxWiring is the buffered "Xilinx DLC5" style cable.
	XilinxWiring = Wiring{Name: "xilinx", TDI: 0, TCK: 1, TMS: 2, TDO: 4, Idle: 1 << 4}

	// WigglerWiring is the Macraigor Wiggler pinout. nTRST sits on D4 and is
	// held high.
	WigglerWiring = Wiring{Name: "wiggler", TDI: 3, TCK: 2, TMS: 1, TDO: 7, Idle: 1<<7 | 1<<4}
)

// Frame builds the data byte for one half of a clock cycle.
func (w Wiring) Frame(tms, tdi, tck bool) byte {
	data := w.Idle
	if tms {
		data |= 1 << w.TMS
	}
	if tdi {
		data |= 1 << w.TDI
	}
	if tck {
		data |= 1 << w.TCK
	}
	return data
}

// Sample extracts TDO from a status register read. The BUSY line (bit 7) is
// inverted by the port hardware.
func (w Wiring) Sample(status byte) bool {
	return (status^0x80)>>w.TDO&1 == 1
}

// WiringByName resolves a wiring from its name.
func WiringByName(name string) (Wiring, error) {
	switch name {
	case "", XilinxWiring.Name:
		return XilinxWiring, nil
	case WigglerWiring.Name:
		return WigglerWiring, nil
	}
	return Wiring{}, fmt.Errorf("jtag: unknown cable wiring %q", name)
}
