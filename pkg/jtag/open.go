package jtag

import "fmt"

// Options select and tune a cable.
type Options struct {
	Kind InterfaceKind
	// Path is the parport node for parallel cables.
	Path string
	// Wiring is "xilinx" or "wiggler" for parallel cables.
	Wiring string
	// Delay is the busy-wait count between edges on bit-banged cables.
	Delay int
	// ClockHz is the TCK rate for CMSIS-DAP probes.
	ClockHz uint32
	// Sim is driven when Kind is InterfaceKindSim.
	Sim ClockFunc
}

// Open returns the cable described by opts.
func Open(opts Options) (Cable, error) {
	switch opts.Kind {
	case InterfaceKindParallel, "":
		w, err := WiringByName(opts.Wiring)
		if err != nil {
			return nil, err
		}
		return OpenParallel(opts.Path, w, opts.Delay)
	case InterfaceKindGPIO:
		return OpenRPi(opts.Delay)
	case InterfaceKindFTDI:
		return OpenFT232H()
	case InterfaceKindCMSISDAP:
		return OpenCMSISDAP(VendorIDRaspberryPi, ProductIDCMSISDAP, opts.ClockHz)
	case InterfaceKindSim:
		return NewSimCable(opts.Sim), nil
	}
	return nil, fmt.Errorf("jtag: unknown cable %q", opts.Kind)
}
