// Package flash drives parallel NOR and serial flash parts behind a MIPS SoC
// through an ejtag.Memory. An Engine is built once per session, identifies
// the part, and then erases and programs it with the command set the part
// speaks.
package flash

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
)

// CommandSet is the protocol a flash part speaks.
type CommandSet = chipdb.CommandSet

const (
	BSC = chipdb.BSC
	SCS = chipdb.SCS
	AMD = chipdb.AMD
	SST = chipdb.SST
	SPI = chipdb.SPI
)

var (
	// ErrTimeout is returned when a readiness poll runs out of budget.
	ErrTimeout = ejtag.ErrTimeout
	// ErrUnknownChip means neither probing nor manual selection found a
	// part in the table.
	ErrUnknownChip = errors.New("flash: unknown or no flash chip")
	// ErrNoCommandSet is returned by operations run before identification.
	ErrNoCommandSet = errors.New("flash: no command set selected")
)

// Target is what the engine needs to know about the processor.
type Target struct {
	IDCode uint32
	Family ejtag.Family
	// DMA is set when Memory uses EJTAG DMA, which writes halfwords through
	// byte lanes instead of splitting the word.
	DMA bool
}

// Options select the area and the programming variants.
type Options struct {
	// Area is the requested area name; CUSTOM takes the bounds below.
	Area         string
	CustomWindow uint32
	CustomStart  uint32
	CustomLength uint32

	// Bypass programs AMD parts in unlock bypass mode.
	Bypass bool
	// Speedtouch swaps the halfword order for Thomson Speedtouch boards.
	Speedtouch bool
	// PollLimit bounds every readiness poll. Zero waits forever.
	PollLimit int

	Console io.Writer
	Logger  logrus.FieldLogger
}

// Block is one erase block, numbered from 1 in window order.
type Block struct {
	Number int
	Addr   uint32
}

// Engine is the flash state of one session.
type Engine struct {
	mem    ejtag.Memory
	target Target
	opts   Options
	out    io.Writer
	log    logrus.FieldLogger

	// Window is where the part is mapped in the physical address space.
	Window     uint32
	CommandSet CommandSet
	// Chip is the identified part; its Size is zero until identification.
	Chip chipdb.FlashChip
	// Area is the selected region. A zero Length means nothing to operate on.
	Area   chipdb.Area
	Blocks []uint32
	// Vendor and Device are the last IDs read or selected.
	Vendor, Device uint32
	// Manual is set when the part came from SelectChip.
	Manual bool
	// SPI is the serial flash controller layout for this processor.
	SPI Layout
}

// New returns an engine on mem. Nothing is touched until Probe or SelectChip.
func New(mem ejtag.Memory, t Target, opts Options) *Engine {
	out := opts.Console
	if out == nil {
		out = io.Discard
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{
		mem:    mem,
		target: t,
		opts:   opts,
		out:    out,
		log:    log.WithField("prefix", "flash"),
		SPI:    LayoutFor(t.Family),
	}
}

// ForSession builds an engine on the session's selected memory strategy.
func ForSession(s *ejtag.Session, opts Options) *Engine {
	if opts.Console == nil {
		opts.Console = s.Console()
	}
	if opts.Logger == nil {
		opts.Logger = s.Logger()
	}
	return New(s.Memory(), Target{IDCode: s.IDCode, Family: s.Family, DMA: s.UseDMA}, opts)
}

// Identified reports whether a part was found or selected.
func (e *Engine) Identified() bool {
	return e.Chip.Size > 0
}

// Ready reports whether there is a part and a non-empty area to work on.
func (e *Engine) Ready() bool {
	return e.Chip.Size > 0 && e.Area.Length > 0
}

// ImageName is the file an area is flashed from: the area name plus ".BIN".
func (e *Engine) ImageName() string {
	return e.Area.Name + ".BIN"
}

func (e *Engine) custom() bool {
	return strings.EqualFold(e.opts.Area, chipdb.CustomArea)
}

// windowFor places the part for a given chip size.
func (e *Engine) windowFor(size uint32) uint32 {
	if e.custom() {
		return e.opts.CustomWindow
	}
	return chipdb.WindowBase(e.target.IDCode, size)
}

// Select returns the blocks whose start lies in [start, start+length).
func (e *Engine) Select(start, length uint32) []Block {
	end := uint64(start) + uint64(length)
	var sel []Block
	for i, a := range e.Blocks {
		if a >= start && uint64(a) < end {
			sel = append(sel, Block{Number: i + 1, Addr: a})
		}
	}
	return sel
}

// buildBlocks lays the part's regions end to end from base.
func buildBlocks(base uint32, regions []chipdb.Region) []uint32 {
	var blocks []uint32
	addr := base
	for _, r := range regions {
		for i := 0; i < r.Count; i++ {
			blocks = append(blocks, addr)
			addr += r.Size
		}
	}
	return blocks
}

// tolerate lets an exhausted DMA budget through as a debug line; the flash
// algorithms carry on with whatever came back.
func (e *Engine) tolerate(err error) error {
	if errors.Is(err, ejtag.ErrDMAFailed) {
		e.log.WithError(err).Debug("continuing after DMA failure")
		return nil
	}
	return err
}

func (e *Engine) read16(addr uint32) (uint32, error) {
	v, err := e.mem.Read16(addr)
	return v, e.tolerate(err)
}

func (e *Engine) read32(addr uint32) (uint32, error) {
	v, err := e.mem.Read32(addr)
	return v, e.tolerate(err)
}

func (e *Engine) write16(addr, v uint32) error {
	return e.tolerate(e.mem.Write16(addr, v))
}

func (e *Engine) write32(addr, v uint32) error {
	return e.tolerate(e.mem.Write32(addr, v))
}

// command is one bus cycle of a command sequence.
type command struct {
	addr, data uint32
}

func (e *Engine) sequence(cmds ...command) error {
	for _, c := range cmds {
		if err := e.write16(c.addr, c.data); err != nil {
			return err
		}
	}
	return nil
}

// until polls done within the engine's poll limit.
func (e *Engine) until(what string, addr uint32, done func() (bool, error)) error {
	for n := 0; e.opts.PollLimit == 0 || n < e.opts.PollLimit; n++ {
		ok, err := done()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("flash: %s at %08x: %w", what, addr, ErrTimeout)
}
