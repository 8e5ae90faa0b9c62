package jtag

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

const (
	VendorIDFTDI     = 0x0403
	ProductIDFT232H  = 0x6014
	ProductIDFT2232H = 0x6010
)

// FT232HCable bit-bangs JTAG on the ADBUS pins of an FT232H, in the standard
// MPSSE JTAG order: D0=TCK D1=TDI D2=TDO D3=TMS.
type FT232HCable struct {
	dev                *ftdi.FT232H
	tck, tdi, tdo, tms gpio.PinIO
	serial             string
}

// OpenFT232H opens the first FT232H (or FT2232H channel A) found on the bus.
func OpenFT232H() (*FT232HCable, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("jtag: periph init: %w", err)
	}
	for _, d := range ftdi.All() {
		var info ftdi.Info
		d.Info(&info)
		if info.VenID != VendorIDFTDI || (info.DevID != ProductIDFT232H && info.DevID != ProductIDFT2232H) {
			continue
		}
		ft, ok := d.(*ftdi.FT232H)
		if !ok {
			continue
		}
		return newFT232HCable(ft, info.Serial)
	}
	return nil, fmt.Errorf("jtag: no FT232H/FT2232H found")
}

func newFT232HCable(ft *ftdi.FT232H, serial string) (*FT232HCable, error) {
	c := &FT232HCable{dev: ft, tck: ft.D0, tdi: ft.D1, tdo: ft.D2, tms: ft.D3, serial: serial}
	for _, p := range []gpio.PinIO{c.tck, c.tdi, c.tms} {
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("jtag: ft232h %s: %w", p.Name(), err)
		}
	}
	if err := c.tdo.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("jtag: ft232h %s: %w", c.tdo.Name(), err)
	}
	return c, nil
}

func (c *FT232HCable) Info() CableInfo {
	return CableInfo{
		Name:  "FTDI FT232H",
		Kind:  InterfaceKindFTDI,
		Path:  "ftdi:" + c.serial,
		Notes: "D0=TCK D1=TDI D2=TDO D3=TMS",
	}
}

func (c *FT232HCable) ClockIn(tms, tdi bool) (bool, error) {
	if err := c.tck.Out(gpio.Low); err != nil {
		return false, err
	}
	if err := c.tms.Out(gpio.Level(tms)); err != nil {
		return false, err
	}
	if err := c.tdi.Out(gpio.Level(tdi)); err != nil {
		return false, err
	}
	if err := c.tck.Out(gpio.High); err != nil {
		return false, err
	}
	return c.tdo.Read() == gpio.High, nil
}

func (c *FT232HCable) Close() error {
	return c.dev.Halt()
}
