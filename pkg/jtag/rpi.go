package jtag

import (
	"fmt"

	rpio "github.com/stianeikeland/go-rpio"
)

// BCM GPIO numbers of the Raspberry Pi header cable.
const (
	RPiTDI = 24
	RPiTCK = 22
	RPiTMS = 23
	RPiTDO = 17
)

// RPiCable bit-bangs JTAG on the Raspberry Pi GPIO header.
type RPiCable struct {
	tdi, tck, tms, tdo rpio.Pin
	delay              int
}

// OpenRPi maps /dev/gpiomem and configures the header pins.
func OpenRPi(delay int) (*RPiCable, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("jtag: gpio: %w", err)
	}
	c := &RPiCable{
		tdi:   rpio.Pin(RPiTDI),
		tck:   rpio.Pin(RPiTCK),
		tms:   rpio.Pin(RPiTMS),
		tdo:   rpio.Pin(RPiTDO),
		delay: delay,
	}
	for _, p := range []rpio.Pin{c.tdi, c.tck, c.tms} {
		p.Output()
		p.Low()
	}
	c.tdo.Input()
	c.tdo.PullUp()
	return c, nil
}

func (c *RPiCable) Info() CableInfo {
	return CableInfo{
		Name:  "Raspberry Pi GPIO",
		Kind:  InterfaceKindGPIO,
		Path:  "/dev/gpiomem",
		Delay: c.delay,
		Notes: fmt.Sprintf("TDI=%d TCK=%d TMS=%d TDO=%d", RPiTDI, RPiTCK, RPiTMS, RPiTDO),
	}
}

func (c *RPiCable) ClockIn(tms, tdi bool) (bool, error) {
	c.tck.Low()
	c.tms.Low()
	c.tdi.Low()
	if tms {
		c.tms.High()
	}
	if tdi {
		c.tdi.High()
	}
	spin(c.delay)
	c.tck.High()
	spin(c.delay)
	return c.tdo.Read() == rpio.High, nil
}

func (c *RPiCable) Close() error {
	c.tdo.PullOff()
	return rpio.Close()
}
