package cmd

import (
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/flash"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
)

// Simulated board behind /cable:sim: a BCM5352 with a 4MB bottom boot AMD
// part in the boot window.
var (
	simIDCode            = uint32(0x0535217F)
	simIRLength          = 8
	simVendor, simDevice = uint16(0x0001), uint16(0x2200)
)

type simTarget struct {
	bus   *ejtag.SimBus
	cpu   *ejtag.SimProcessor
	nor   *flash.SimNOR
	cable *jtag.SimCable
}

// lastSim is the most recent simulated board, kept for inspection.
var lastSim *simTarget

func newSimTarget() *simTarget {
	t := &simTarget{bus: ejtag.NewSimBus()}
	if chip, err := chipdb.LookupFlash(simVendor, simDevice); err == nil {
		t.nor = flash.NewSimNOR(chip)
		t.bus.Map(chipdb.WindowBase(simIDCode, chip.Size), chip.Size, t.nor)
	}
	t.cpu = ejtag.NewSimProcessor(simIDCode, simIRLength, t.bus)
	t.cable = ejtag.SimulatedCable(t.cpu)
	lastSim = t
	return t
}
