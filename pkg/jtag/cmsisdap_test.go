package jtag

import (
	"fmt"
	"testing"
)

// loopbackProbe answers CMSIS-DAP commands and echoes TDI back as TDO.
type loopbackProbe struct {
	packetSize int
	commands   [][]byte
	closed     bool
}

func (p *loopbackProbe) PacketSize() int { return p.packetSize }

func (p *loopbackProbe) Close() error {
	p.closed = true
	return nil
}

func (p *loopbackProbe) WriteRead(cmd []byte) ([]byte, error) {
	if len(cmd) > p.packetSize {
		return nil, fmt.Errorf("command of %d bytes exceeds packet", len(cmd))
	}
	p.commands = append(p.commands, append([]byte(nil), cmd...))
	switch cmd[0] {
	case dapCmdInfo:
		name := "Loopback"
		return append([]byte{dapCmdInfo, byte(len(name))}, name...), nil
	case dapCmdConnect:
		return []byte{dapCmdConnect, cmd[1]}, nil
	case dapCmdSWJClock, dapCmdDisconnect, dapCmdResetTarget:
		return []byte{cmd[0], dapStatusOK}, nil
	case dapCmdJTAGSequence:
		resp := []byte{dapCmdJTAGSequence, dapStatusOK}
		off := 2
		for i := 0; i < int(cmd[1]); i++ {
			n := int(cmd[off] & dapSeqCountMask)
			if n == 0 {
				n = 64
			}
			nb := (n + 7) / 8
			resp = append(resp, cmd[off+1:off+1+nb]...)
			off += 1 + nb
		}
		return resp, nil
	}
	return nil, fmt.Errorf("unexpected command 0x%02X", cmd[0])
}

func TestCMSISDAPCableOpen(t *testing.T) {
	probe := &loopbackProbe{packetSize: 64}
	c, err := newCMSISDAPCable(probe, 0)
	if err != nil {
		t.Fatalf("newCMSISDAPCable: %v", err)
	}
	if c.Info().Name != "Loopback" {
		t.Fatalf("name = %q", c.Info().Name)
	}
	var sawClock bool
	for _, cmd := range probe.commands {
		if cmd[0] == dapCmdSWJClock {
			sawClock = true
			if hz := uint32(cmd[1]) | uint32(cmd[2])<<8 | uint32(cmd[3])<<16 | uint32(cmd[4])<<24; hz != DefaultDAPClockHz {
				t.Fatalf("clock = %d", hz)
			}
		}
	}
	if !sawClock {
		t.Fatalf("clock was never configured")
	}
	if err := c.Close(); err != nil || !probe.closed {
		t.Fatalf("close: %v closed=%v", err, probe.closed)
	}
}

func TestCMSISDAPCableClockSequence(t *testing.T) {
	probe := &loopbackProbe{packetSize: 64}
	c, err := newCMSISDAPCable(probe, 0)
	if err != nil {
		t.Fatalf("newCMSISDAPCable: %v", err)
	}

	n := 700
	tms := make([]bool, n)
	tdi := make([]bool, n)
	for i := range tms {
		tms[i] = i%37 == 0
		tdi[i] = i%3 == 1
	}
	tdo, err := c.ClockSequence(tms, tdi)
	if err != nil {
		t.Fatalf("ClockSequence: %v", err)
	}
	if len(tdo) != n {
		t.Fatalf("got %d bits, want %d", len(tdo), n)
	}
	for i := range tdi {
		if tdo[i] != tdi[i] {
			t.Fatalf("bit %d = %v, want %v", i, tdo[i], tdi[i])
		}
	}

	bit, err := c.ClockIn(false, true)
	if err != nil || !bit {
		t.Fatalf("ClockIn = %v, %v", bit, err)
	}
}
