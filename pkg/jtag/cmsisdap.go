package jtag

import (
	"fmt"
	"sync"
)

// DefaultDAPClockHz is the TCK rate requested when a probe is opened.
const DefaultDAPClockHz = 1_000_000

// CMSISDAPCable drives JTAG through a CMSIS-DAP probe using raw
// DAP_JTAG_Sequence transfers.
type CMSISDAPCable struct {
	link dapLink
	info CableInfo

	mu sync.Mutex
}

// OpenCMSISDAP opens the first probe with the given VID/PID and connects its
// JTAG port.
func OpenCMSISDAP(vid, pid uint16, clockHz uint32) (*CMSISDAPCable, error) {
	link, err := openUSBLink(vid, pid)
	if err != nil {
		return nil, err
	}
	c, err := newCMSISDAPCable(link, clockHz)
	if err != nil {
		link.Close()
		return nil, err
	}
	c.info.Path = fmt.Sprintf("usb:%04X:%04X", vid, pid)
	return c, nil
}

func newCMSISDAPCable(link dapLink, clockHz uint32) (*CMSISDAPCable, error) {
	c := &CMSISDAPCable{
		link: link,
		info: CableInfo{Name: "CMSIS-DAP probe", Kind: InterfaceKindCMSISDAP},
	}
	if product, err := c.queryInfo(dapInfoProduct); err == nil && product != "" {
		c.info.Name = product
	}
	if fw, err := c.queryInfo(dapInfoFW); err == nil && fw != "" {
		c.info.Notes = "firmware " + fw
	}

	resp, err := link.WriteRead([]byte{dapCmdConnect, dapPortJTAG})
	if err != nil {
		return nil, err
	}
	if len(resp) < 2 || resp[0] != dapCmdConnect || resp[1] != dapPortJTAG {
		return nil, fmt.Errorf("cmsis-dap: probe refused JTAG connect")
	}

	if clockHz == 0 {
		clockHz = DefaultDAPClockHz
	}
	resp, err = link.WriteRead(encodeSWJClock(clockHz))
	if err != nil {
		return nil, err
	}
	if err := checkDAPStatus(resp, dapCmdSWJClock); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CMSISDAPCable) queryInfo(id byte) (string, error) {
	resp, err := c.link.WriteRead([]byte{dapCmdInfo, id})
	if err != nil {
		return "", err
	}
	return decodeInfoString(resp)
}

func (c *CMSISDAPCable) Info() CableInfo { return c.info }

func (c *CMSISDAPCable) ClockIn(tms, tdi bool) (bool, error) {
	tdo, err := c.ClockSequence([]bool{tms}, []bool{tdi})
	if err != nil {
		return false, err
	}
	return tdo[0], nil
}

// ClockSequence sends the whole stream in as few USB round trips as the
// probe's packet size allows.
func (c *CMSISDAPCable) ClockSequence(tms, tdi []bool) ([]bool, error) {
	if len(tms) != len(tdi) {
		return nil, fmt.Errorf("jtag: tms/tdi length mismatch (%d != %d)", len(tms), len(tdi))
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	tdo := make([]bool, 0, len(tms))
	for _, batch := range batchSequences(splitSequences(tms, tdi), c.link.PacketSize()) {
		resp, err := c.link.WriteRead(encodeSequences(batch))
		if err != nil {
			return nil, fmt.Errorf("cmsis-dap: sequence: %w", err)
		}
		bits, err := decodeSequences(resp, batch)
		if err != nil {
			return nil, err
		}
		tdo = append(tdo, bits...)
	}
	return tdo, nil
}

// ResetTarget pulses the probe's nRESET line.
func (c *CMSISDAPCable) ResetTarget() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp, err := c.link.WriteRead([]byte{dapCmdResetTarget})
	if err != nil {
		return err
	}
	return checkDAPStatus(resp, dapCmdResetTarget)
}

func (c *CMSISDAPCable) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.link.WriteRead([]byte{dapCmdDisconnect})
	return c.link.Close()
}
