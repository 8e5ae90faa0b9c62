package ejtag

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrDMAFailed is returned with the last value seen when every DMA attempt
// reported DERR.
var ErrDMAFailed = errors.New("ejtag: DMA transfer failed")

// Memory reads and writes target memory. Halfword values travel in the low
// 16 bits; writes may carry the value replicated in both halves so either
// byte lane sees it.
type Memory interface {
	Read32(addr uint32) (uint32, error)
	Read16(addr uint32) (uint32, error)
	Write32(addr, data uint32) error
	Write16(addr, data uint32) error
}

// DMAAttempts is how many times a DMA transfer is tried before giving up.
const DMAAttempts = 16

// ErratumBCM5354SkipDSTRTPoll reports whether idcode is a BCM5354, whose
// word reads hang if DSTRT is polled after the transfer is started.
func ErratumBCM5354SkipDSTRTPoll(idcode uint32) bool {
	return idcode&0x0FFFFFFF == 0x0535417F
}

// DMA moves data with EJTAG DMA transactions, without involving the CPU.
type DMA struct {
	port Port
	log  logrus.FieldLogger

	// Attempts per transfer; DERR on all of them yields ErrDMAFailed.
	Attempts int
	// SkipReadPoll leaves out the DSTRT poll on word reads.
	SkipReadPoll bool
	// PollLimit bounds each DSTRT poll. Zero waits forever.
	PollLimit int
}

// NewDMA returns a DMA engine for the processor identified by idcode.
func NewDMA(port Port, idcode uint32, log logrus.FieldLogger) *DMA {
	return &DMA{
		port:         port,
		log:          log,
		Attempts:     DMAAttempts,
		SkipReadPoll: ErratumBCM5354SkipDSTRTPoll(idcode),
		PollLimit:    DefaultPollLimit,
	}
}

func (d *DMA) Read32(addr uint32) (uint32, error) {
	return d.read(addr, DMAWord, d.SkipReadPoll)
}

func (d *DMA) Read16(addr uint32) (uint32, error) {
	data, err := d.read(addr, DMAHalfword, false)
	if addr&2 != 0 {
		data >>= 16
	}
	return data & 0xFFFF, err
}

func (d *DMA) Write32(addr, data uint32) error {
	return d.write(addr, data, DMAWord)
}

func (d *DMA) Write16(addr, data uint32) error {
	return d.write(addr, data, DMAHalfword)
}

func (d *DMA) read(addr, size uint32, skipPoll bool) (uint32, error) {
	var data uint32
	for attempt := 1; attempt <= d.attempts(); attempt++ {
		if err := writeRegister(d.port, InstrAddress, addr); err != nil {
			return 0, err
		}
		if _, err := exchangeRegister(d.port, InstrControl, DMAACC|DRWN|size|DSTRT|PROBEN|PRACC); err != nil {
			return 0, err
		}
		if !skipPoll {
			if err := d.waitDone(); err != nil {
				return 0, err
			}
		}
		var err error
		if data, err = readRegister(d.port, InstrData); err != nil {
			return 0, err
		}
		failed, err := d.clear()
		if err != nil {
			return 0, err
		}
		if !failed {
			return data, nil
		}
		d.logAttempt(addr, attempt)
	}
	if d.log != nil {
		d.log.Warnf("DMA Read Addr = %08x  Data = (%08x)ERROR ON READ", addr, data)
	}
	return data, fmt.Errorf("%w: read %08x", ErrDMAFailed, addr)
}

func (d *DMA) write(addr, data, size uint32) error {
	for attempt := 1; attempt <= d.attempts(); attempt++ {
		if err := writeRegister(d.port, InstrAddress, addr); err != nil {
			return err
		}
		if err := writeRegister(d.port, InstrData, data); err != nil {
			return err
		}
		if _, err := exchangeRegister(d.port, InstrControl, DMAACC|size|DSTRT|PROBEN|PRACC); err != nil {
			return err
		}
		if err := d.waitDone(); err != nil {
			return err
		}
		failed, err := d.clear()
		if err != nil {
			return err
		}
		if !failed {
			return nil
		}
		d.logAttempt(addr, attempt)
	}
	if d.log != nil {
		d.log.Warnf("DMA Write Addr = %08x  Data = ERROR ON WRITE", addr)
	}
	return fmt.Errorf("%w: write %08x", ErrDMAFailed, addr)
}

func (d *DMA) attempts() int {
	if d.Attempts <= 0 {
		return 1
	}
	return d.Attempts
}

// waitDone polls CONTROL until the target drops DSTRT.
func (d *DMA) waitDone() error {
	for n := 0; d.PollLimit == 0 || n < d.PollLimit; n++ {
		ctrl, err := d.port.ReadWriteData(DMAACC | PROBEN | PRACC)
		if err != nil {
			return err
		}
		if ctrl&DSTRT == 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: DSTRT still set after %d polls", ErrTimeout, d.PollLimit)
}

// clear ends the DMA access and reports whether it raised DERR.
func (d *DMA) clear() (bool, error) {
	ctrl, err := exchangeRegister(d.port, InstrControl, PROBEN|PRACC)
	if err != nil {
		return false, err
	}
	return ctrl&DERR != 0, nil
}

func (d *DMA) logAttempt(addr uint32, attempt int) {
	if d.log != nil {
		d.log.WithFields(logrus.Fields{"addr": fmt.Sprintf("%08x", addr), "attempt": attempt}).Debug("DERR set, retrying")
	}
}

// PrAcc has the CPU perform each access by running a code module.
type PrAcc struct {
	exec *Executor
}

// NewPrAcc returns a processor-access engine driving exec.
func NewPrAcc(exec *Executor) *PrAcc {
	return &PrAcc{exec: exec}
}

func (p *PrAcc) run(module string, addr, data uint32) (uint32, error) {
	p.exec.AddressRegister = addr | UncachedSegment
	p.exec.DataRegister = data
	if err := p.exec.Execute(codeModules[module]); err != nil {
		return 0, fmt.Errorf("ejtag: %s at %08x: %w", module, addr, err)
	}
	return p.exec.DataRegister, nil
}

func (p *PrAcc) Read32(addr uint32) (uint32, error) {
	return p.run(ModuleReadWord, addr, 0)
}

func (p *PrAcc) Read16(addr uint32) (uint32, error) {
	return p.run(ModuleReadHalf, addr, 0)
}

func (p *PrAcc) Write32(addr, data uint32) error {
	_, err := p.run(ModuleWriteWord, addr, data)
	return err
}

func (p *PrAcc) Write16(addr, data uint32) error {
	_, err := p.run(ModuleWriteHalf, addr, data)
	return err
}
