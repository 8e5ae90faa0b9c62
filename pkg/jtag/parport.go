package jtag

import "fmt"

// DefaultParallelPort is the first ppdev node on Linux hosts.
const DefaultParallelPort = "/dev/parport0"

// parallelPort is the minimal register access a bit-banged cable needs.
type parallelPort interface {
	WriteData(b byte) error
	ReadStatus() (byte, error)
	Close() error
}

// ParallelCable bit-bangs JTAG over a PC parallel port.
type ParallelCable struct {
	port   parallelPort
	wiring Wiring
	delay  int
	path   string
}

// OpenParallel claims the parallel port at path exclusively.
func OpenParallel(path string, wiring Wiring, delay int) (*ParallelCable, error) {
	if path == "" {
		path = DefaultParallelPort
	}
	port, err := openPPDev(path)
	if err != nil {
		return nil, err
	}
	return newParallelCable(port, wiring, delay, path), nil
}

func newParallelCable(port parallelPort, wiring Wiring, delay int, path string) *ParallelCable {
	return &ParallelCable{port: port, wiring: wiring, delay: delay, path: path}
}

func (c *ParallelCable) Info() CableInfo {
	return CableInfo{
		Name:   "Parallel port cable",
		Kind:   InterfaceKindParallel,
		Path:   c.path,
		Wiring: c.wiring.Name,
		Delay:  c.delay,
	}
}

func (c *ParallelCable) ClockIn(tms, tdi bool) (bool, error) {
	spin(c.delay)
	if err := c.port.WriteData(c.wiring.Frame(tms, tdi, false)); err != nil {
		return false, fmt.Errorf("jtag: parport write: %w", err)
	}
	spin(c.delay)
	if err := c.port.WriteData(c.wiring.Frame(tms, tdi, true)); err != nil {
		return false, fmt.Errorf("jtag: parport write: %w", err)
	}
	status, err := c.port.ReadStatus()
	if err != nil {
		return false, fmt.Errorf("jtag: parport status: %w", err)
	}
	return c.wiring.Sample(status), nil
}

func (c *ParallelCable) Close() error {
	return c.port.Close()
}
