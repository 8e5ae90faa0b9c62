package jtag

import (
	"fmt"

	"github.com/google/gousb"
)

const (
	VendorIDRaspberryPi = 0x2E8A
	ProductIDCMSISDAP   = 0x000C

	defaultDAPPacketSize = 64
)

// dapLink carries one CMSIS-DAP command and its response.
type dapLink interface {
	WriteRead(cmd []byte) ([]byte, error)
	PacketSize() int
	Close() error
}

// usbLink talks to a CMSIS-DAP v2 probe over its vendor bulk interface.
type usbLink struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface

	out *gousb.OutEndpoint
	in  *gousb.InEndpoint

	packetSize int
}

func openUSBLink(vid, pid uint16) (*usbLink, error) {
	ctx := gousb.NewContext()
	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("cmsis-dap: usb: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("cmsis-dap: probe %04X:%04X not found", vid, pid)
	}
	// Not every platform supports detaching; carry on regardless.
	_ = dev.SetAutoDetach(true)

	l := &usbLink{ctx: ctx, dev: dev, packetSize: defaultDAPPacketSize}
	if err := l.claim(); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

func (l *usbLink) claim() error {
	cfg, err := l.dev.Config(1)
	if err != nil {
		return fmt.Errorf("cmsis-dap: config: %w", err)
	}
	l.cfg = cfg

	num := 0
	for _, d := range cfg.Desc.Interfaces {
		if len(d.AltSettings) > 0 && d.AltSettings[0].Class == gousb.ClassVendorSpec {
			num = d.Number
			break
		}
	}
	intf, err := cfg.Interface(num, 0)
	if err != nil {
		return fmt.Errorf("cmsis-dap: claim interface %d: %w", num, err)
	}
	l.intf = intf

	var outNum, inNum int
	for _, ep := range intf.Setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch {
		case ep.Direction == gousb.EndpointDirectionOut && outNum == 0:
			outNum = ep.Number
		case ep.Direction == gousb.EndpointDirectionIn && inNum == 0:
			inNum = ep.Number
			l.packetSize = ep.MaxPacketSize
		}
	}
	if outNum == 0 || inNum == 0 {
		return fmt.Errorf("cmsis-dap: bulk endpoints not found on interface %d", num)
	}
	if l.out, err = intf.OutEndpoint(outNum); err != nil {
		return fmt.Errorf("cmsis-dap: OUT endpoint: %w", err)
	}
	if l.in, err = intf.InEndpoint(inNum); err != nil {
		return fmt.Errorf("cmsis-dap: IN endpoint: %w", err)
	}
	return nil
}

func (l *usbLink) WriteRead(cmd []byte) ([]byte, error) {
	packet := make([]byte, l.packetSize)
	copy(packet, cmd)
	if _, err := l.out.Write(packet); err != nil {
		return nil, fmt.Errorf("cmsis-dap: usb write: %w", err)
	}
	resp := make([]byte, l.packetSize)
	n, err := l.in.Read(resp)
	if err != nil {
		return nil, fmt.Errorf("cmsis-dap: usb read: %w", err)
	}
	return resp[:n], nil
}

func (l *usbLink) PacketSize() int { return l.packetSize }

func (l *usbLink) Close() error {
	if l.intf != nil {
		l.intf.Close()
		l.intf = nil
	}
	if l.cfg != nil {
		l.cfg.Close()
		l.cfg = nil
	}
	if l.dev != nil {
		l.dev.Close()
		l.dev = nil
	}
	if l.ctx != nil {
		l.ctx.Close()
		l.ctx = nil
	}
	return nil
}
