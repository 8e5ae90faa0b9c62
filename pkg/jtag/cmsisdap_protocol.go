package jtag

import (
	"encoding/binary"
	"fmt"
)

// CMSIS-DAP command IDs used by the cable.
const (
	dapCmdInfo         = 0x00
	dapCmdConnect      = 0x02
	dapCmdDisconnect   = 0x03
	dapCmdResetTarget  = 0x0A
	dapCmdSWJClock     = 0x11
	dapCmdJTAGSequence = 0x14
)

const (
	dapInfoVendor  = 0x01
	dapInfoProduct = 0x02
	dapInfoSerial  = 0x03
	dapInfoFW      = 0x04
)

const (
	dapPortJTAG = 2
	dapStatusOK = 0x00
)

// DAP_JTAG_Sequence info byte.
const (
	dapSeqCountMask = 0x3F // 0 means 64 clocks
	dapSeqTMS       = 0x40
	dapSeqTDO       = 0x80

	dapSeqMaxClocks = 64
)

// dapSequence is one run of clocks with a constant TMS level.
type dapSequence struct {
	tms bool
	tdi []bool
}

func (s dapSequence) info() byte {
	info := byte(len(s.tdi)&dapSeqCountMask) | dapSeqTDO
	if s.tms {
		info |= dapSeqTMS
	}
	return info
}

func (s dapSequence) dataBytes() int {
	return (len(s.tdi) + 7) / 8
}

// splitSequences breaks a bit stream into runs of equal TMS, none longer than
// 64 clocks.
func splitSequences(tms, tdi []bool) []dapSequence {
	var seqs []dapSequence
	for start := 0; start < len(tms); {
		end := start + 1
		for end < len(tms) && tms[end] == tms[start] && end-start < dapSeqMaxClocks {
			end++
		}
		seqs = append(seqs, dapSequence{tms: tms[start], tdi: tdi[start:end]})
		start = end
	}
	return seqs
}

// batchSequences groups sequences so that both the command and its response
// fit within one packet.
func batchSequences(seqs []dapSequence, packetSize int) [][]dapSequence {
	var (
		batches [][]dapSequence
		cur     []dapSequence
		cmdLen  = 2
		respLen = 2
	)
	for _, s := range seqs {
		n := s.dataBytes()
		if len(cur) > 0 && (cmdLen+1+n > packetSize || respLen+n > packetSize || len(cur) == 255) {
			batches = append(batches, cur)
			cur, cmdLen, respLen = nil, 2, 2
		}
		cur = append(cur, s)
		cmdLen += 1 + n
		respLen += n
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}

func encodeSequences(seqs []dapSequence) []byte {
	cmd := []byte{dapCmdJTAGSequence, byte(len(seqs))}
	for _, s := range seqs {
		cmd = append(cmd, s.info())
		data := make([]byte, s.dataBytes())
		for i, bit := range s.tdi {
			if bit {
				data[i/8] |= 1 << (i % 8)
			}
		}
		cmd = append(cmd, data...)
	}
	return cmd
}

// decodeSequences unpacks the captured TDO bits, in clock order.
func decodeSequences(resp []byte, seqs []dapSequence) ([]bool, error) {
	if err := checkDAPStatus(resp, dapCmdJTAGSequence); err != nil {
		return nil, err
	}
	var tdo []bool
	offset := 2
	for _, s := range seqs {
		n := s.dataBytes()
		if offset+n > len(resp) {
			return nil, fmt.Errorf("cmsis-dap: short sequence response (%d bytes)", len(resp))
		}
		for i := range s.tdi {
			tdo = append(tdo, resp[offset+i/8]>>(i%8)&1 == 1)
		}
		offset += n
	}
	return tdo, nil
}

func checkDAPStatus(resp []byte, cmd byte) error {
	if len(resp) < 2 {
		return fmt.Errorf("cmsis-dap: response too short")
	}
	if resp[0] != cmd {
		return fmt.Errorf("cmsis-dap: response for command 0x%02X, want 0x%02X", resp[0], cmd)
	}
	if resp[1] != dapStatusOK {
		return fmt.Errorf("cmsis-dap: command 0x%02X failed (status 0x%02X)", cmd, resp[1])
	}
	return nil
}

func encodeSWJClock(hz uint32) []byte {
	cmd := make([]byte, 5)
	cmd[0] = dapCmdSWJClock
	binary.LittleEndian.PutUint32(cmd[1:], hz)
	return cmd
}

func decodeInfoString(resp []byte) (string, error) {
	if len(resp) < 2 || resp[0] != dapCmdInfo {
		return "", fmt.Errorf("cmsis-dap: invalid info response")
	}
	n := int(resp[1])
	if len(resp) < 2+n {
		return "", fmt.Errorf("cmsis-dap: truncated info string")
	}
	s := resp[2 : 2+n]
	for len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	return string(s), nil
}
