package ejtag

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/tap"
)

// Device is a peripheral mapped on a SimBus. Offsets are relative to the
// mapping base; values are right-aligned to size bytes.
type Device interface {
	Load(offset uint32, size int) uint32
	Store(offset uint32, size int, v uint32)
}

type mapping struct {
	base, size uint32
	dev        Device
}

// SimBus is the physical address space of a simulated target. Addresses not
// claimed by a device read and write a sparse little-endian RAM.
type SimBus struct {
	maps []mapping
	ram  map[uint32]byte
}

// NewSimBus returns an empty bus.
func NewSimBus() *SimBus {
	return &SimBus{ram: make(map[uint32]byte)}
}

// Map places d at [base, base+size).
func (b *SimBus) Map(base, size uint32, d Device) {
	b.maps = append(b.maps, mapping{base: base, size: size, dev: d})
	sort.Slice(b.maps, func(i, j int) bool { return b.maps[i].base < b.maps[j].base })
}

func (b *SimBus) find(addr uint32) (Device, uint32) {
	for _, m := range b.maps {
		if addr >= m.base && addr-m.base < m.size {
			return m.dev, addr - m.base
		}
	}
	return nil, 0
}

// Load reads size bytes at a physical address.
func (b *SimBus) Load(addr uint32, size int) uint32 {
	if d, off := b.find(addr); d != nil {
		return d.Load(off, size)
	}
	var v uint32
	for i := 0; i < size; i++ {
		v |= uint32(b.ram[addr+uint32(i)]) << (8 * i)
	}
	return v
}

// Store writes size bytes at a physical address.
func (b *SimBus) Store(addr uint32, size int, v uint32) {
	if d, off := b.find(addr); d != nil {
		d.Store(off, size, v)
		return
	}
	for i := 0; i < size; i++ {
		b.ram[addr+uint32(i)] = byte(v >> (8 * i))
	}
}

// physical folds KSEG0 and KSEG1 onto the low 512MB.
func physical(addr uint32) uint32 {
	if addr >= 0x80000000 && addr < 0xC0000000 {
		return addr & 0x1FFFFFFF
	}
	return addr
}

func inDebugSegment(addr uint32) bool {
	return addr >= 0xFF200000 && addr < 0xFF400000
}

type accessKind int

const (
	accessFetch accessKind = iota
	accessLoad
	accessStore
)

// access is a processor access waiting for the probe.
type access struct {
	kind   accessKind
	addr   uint32
	data   uint32
	size   int
	signed bool
	reg    uint32
}

// SimProcessor models an EJTAG 2.0 MIPS32 core at register level. It runs
// debug code modules through a small interpreter that covers the loads,
// stores, branches and CP0 moves they use, and performs DMA directly on Bus.
type SimProcessor struct {
	IDCode   uint32
	IRLength int
	ImpCode  uint32
	Bus      *SimBus

	// FailDMA makes the next n DMA transfers report DERR.
	FailDMA int
	// DMABusyPolls keeps DSTRT set for this many CONTROL reads after each
	// DMA start.
	DMABusyPolls int

	addr, data uint32
	ctrl       uint32
	dcr        uint32
	derr       bool // held until the next DMA starts
	busy       int

	debug   bool
	pending *access
	pc, npc uint32
	nnpc    uint32
	regs    [32]uint32
	cp0     [32]uint32

	dmaCount int
}

// CP0 registers touched by the code modules.
const (
	cp0Status = 12
	cp0DEPC   = 24
)

// NewSimProcessor returns a running (not halted) EJTAG 2.0 processor with DMA
// support and the memory protection bit set in DCR.
func NewSimProcessor(idcode uint32, irLen int, bus *SimBus) *SimProcessor {
	if bus == nil {
		bus = NewSimBus()
	}
	p := &SimProcessor{
		IDCode:   idcode,
		IRLength: irLen,
		Bus:      bus,
		dcr:      dcrMemoryProtection,
	}
	p.cp0[cp0DEPC] = 0x80001000
	return p
}

// Halted reports whether the CPU is in debug mode.
func (p *SimProcessor) Halted() bool { return p.debug }

// DEPC returns the debug exception PC.
func (p *SimProcessor) DEPC() uint32 { return p.cp0[cp0DEPC] }

// Status returns the CP0 Status register.
func (p *SimProcessor) Status() uint32 { return p.cp0[cp0Status] }

// DCR returns the debug control register.
func (p *SimProcessor) DCR() uint32 { return p.dcr }

// DMACount reports how many DMA transfers were started.
func (p *SimProcessor) DMACount() int { return p.dmaCount }

// Capture returns the value loaded into the data register selected by instr.
func (p *SimProcessor) Capture(instr uint32) uint32 {
	switch instr {
	case InstrIDCode:
		return p.IDCode
	case InstrImpCode:
		return p.ImpCode
	case InstrAddress:
		if p.pending != nil {
			return p.pending.addr
		}
		return p.addr
	case InstrData:
		if p.pending != nil && p.pending.kind == accessStore {
			return p.pending.data
		}
		return p.data
	case InstrControl:
		return p.control()
	}
	return 0
}

func (p *SimProcessor) control() uint32 {
	v := p.ctrl & (PROBEN | SETDEV | DMAACC | DRWN | dmaSizeMask)
	if p.debug {
		v |= BRKST
	}
	if p.pending != nil {
		v |= PRACC
		if p.pending.kind == accessStore {
			v |= PRNW
		}
	}
	if p.busy > 0 {
		p.busy--
		v |= DSTRT
	}
	if p.derr {
		v |= DERR
	}
	return v
}

// Update applies a value shifted into the data register selected by instr.
func (p *SimProcessor) Update(instr, v uint32) {
	switch instr {
	case InstrAddress:
		p.addr = v
	case InstrData:
		p.data = v
	case InstrControl:
		p.writeControl(v)
	}
}

func (p *SimProcessor) writeControl(v uint32) {
	p.ctrl = v
	if v&(PRRST|PERRST) != 0 {
		p.debug = false
		p.pending = nil
		return
	}
	if v&JTAGBRK != 0 && !p.debug {
		p.enterDebug()
	}
	if v&DMAACC != 0 && v&DSTRT != 0 {
		p.dma(v)
		return
	}
	if p.pending != nil && v&PRACC == 0 {
		p.complete()
	}
}

func (p *SimProcessor) dma(ctrl uint32) {
	p.dmaCount++
	p.busy = p.DMABusyPolls
	size := ctrl & dmaSizeMask
	read := ctrl&DRWN != 0

	// A failed read still latches whatever the bus returned.
	p.derr = p.FailDMA > 0
	if p.derr {
		p.FailDMA--
		if !read {
			return
		}
	}

	if p.addr == DebugControlRegister && size == DMAWord {
		if read {
			p.data = p.dcr
		} else {
			p.dcr = p.data
		}
		return
	}

	a := physical(p.addr)
	switch size {
	case DMAHalfword:
		if read {
			h := p.Bus.Load(a&^1, 2)
			p.data = h | h<<16
		} else if a&2 != 0 {
			p.Bus.Store(a&^1, 2, p.data>>16)
		} else {
			p.Bus.Store(a&^1, 2, p.data&0xFFFF)
		}
	case DMAByte:
		if read {
			b := p.Bus.Load(a, 1)
			p.data = b * 0x01010101
		} else {
			p.Bus.Store(a, 1, p.data>>(8*(a&3))&0xFF)
		}
	default:
		if read {
			p.data = p.Bus.Load(a&^3, 4)
		} else {
			p.Bus.Store(a&^3, 4, p.data)
		}
	}
}

func (p *SimProcessor) enterDebug() {
	p.debug = true
	p.pc = DebugVector
	p.npc = DebugVector + 4
	p.fetch()
}

func (p *SimProcessor) fetch() {
	p.pending = &access{kind: accessFetch, addr: p.pc}
}

// complete hands the probe's reply to the CPU and runs until the next access
// the probe has to serve.
func (p *SimProcessor) complete() {
	acc := p.pending
	p.pending = nil
	switch acc.kind {
	case accessFetch:
		if !p.debug {
			return
		}
		p.execute(p.data)
	case accessLoad:
		p.setReg(acc.reg, extend(p.data, acc.size, acc.signed))
		p.retire()
	case accessStore:
		p.retire()
	}
}

// retire moves to the next instruction and requests its fetch.
func (p *SimProcessor) retire() {
	p.pc, p.npc = p.npc, p.nnpc
	p.runLocal()
}

// runLocal fetches from the debug segment through the probe; anything else
// would be a real memory fetch, which code modules never do.
func (p *SimProcessor) runLocal() {
	if !p.debug {
		return
	}
	p.fetch()
}

func (p *SimProcessor) setReg(r, v uint32) {
	if r != 0 {
		p.regs[r] = v
	}
}

func extend(v uint32, size int, signed bool) uint32 {
	switch size {
	case 1:
		v &= 0xFF
		if signed {
			return uint32(int32(int8(v)))
		}
	case 2:
		v &= 0xFFFF
		if signed {
			return uint32(int32(int16(v)))
		}
	}
	return v
}

// execute runs one instruction fetched at p.pc.
func (p *SimProcessor) execute(inst uint32) {
	op := inst >> 26
	rs := inst >> 21 & 31
	rt := inst >> 16 & 31
	rd := inst >> 11 & 31
	imm := inst & 0xFFFF
	simm := uint32(int32(int16(imm)))
	p.nnpc = p.npc + 4

	switch op {
	case 0x00:
		switch inst & 0x3F {
		case 0x00: // sll
			p.setReg(rd, p.regs[rt]<<(inst>>6&31))
		case 0x21: // addu
			p.setReg(rd, p.regs[rs]+p.regs[rt])
		case 0x25: // or
			p.setReg(rd, p.regs[rs]|p.regs[rt])
		}
	case 0x04, 0x05: // beq, bne
		if (p.regs[rs] == p.regs[rt]) == (op == 0x04) {
			p.nnpc = p.npc + simm<<2
		}
	case 0x09: // addiu
		p.setReg(rt, p.regs[rs]+simm)
	case 0x0D: // ori
		p.setReg(rt, p.regs[rs]|imm)
	case 0x0F: // lui
		p.setReg(rt, imm<<16)
	case 0x10:
		switch {
		case inst == 0x4200001F: // deret
			p.leaveDebug()
			return
		case rs == 0x00: // mfc0
			p.setReg(rt, p.cp0[rd])
		case rs == 0x04: // mtc0
			p.cp0[rd] = p.regs[rt]
		}
	case 0x20, 0x21, 0x23, 0x24, 0x25: // lb, lh, lw, lbu, lhu
		p.load(p.regs[rs]+simm, accessSize(op), op == 0x20 || op == 0x21, rt)
		return
	case 0x28, 0x29, 0x2B: // sb, sh, sw
		p.store(p.regs[rs]+simm, accessSize(op), p.regs[rt])
		return
	}
	p.retire()
}

// accessSize decodes the width from a load/store opcode's low two bits.
func accessSize(op uint32) int {
	switch op & 3 {
	case 0:
		return 1
	case 1:
		return 2
	}
	return 4
}

func (p *SimProcessor) load(ea uint32, size int, signed bool, rt uint32) {
	if inDebugSegment(ea) {
		p.pending = &access{kind: accessLoad, addr: ea, size: size, signed: signed, reg: rt}
		return
	}
	p.setReg(rt, extend(p.Bus.Load(physical(ea), size), size, signed))
	p.retire()
}

func (p *SimProcessor) store(ea uint32, size int, v uint32) {
	if inDebugSegment(ea) {
		p.pending = &access{kind: accessStore, addr: ea, size: size, data: v}
		return
	}
	p.Bus.Store(physical(ea), size, extend(v, size, false))
	p.retire()
}

// leaveDebug models DERET. The fetch at the vector that the pipeline makes
// while draining is what tells the probe the module finished.
func (p *SimProcessor) leaveDebug() {
	p.debug = false
	p.pc = p.cp0[cp0DEPC]
	p.pending = &access{kind: accessFetch, addr: DebugVector}
}

// simPort drives a SimProcessor at register level, for callers that do not
// need bit-level TAP traffic.
type simPort struct {
	p     *SimProcessor
	irLen int
	instr uint32
}

// NewSimPort returns a TAP that talks to p without clocking bits. Like real
// hardware, IDCODE only reads back when the IR length matches.
func NewSimPort(p *SimProcessor) TAP {
	return &simPort{p: p, irLen: p.IRLength, instr: InstrIDCode}
}

func (s *simPort) SetInstruction(instr uint32) error {
	s.instr = instr
	return nil
}

func (s *simPort) ReadWriteData(out uint32) (uint32, error) {
	if s.irLen != s.p.IRLength {
		return 0, nil
	}
	in := s.p.Capture(s.instr)
	s.p.Update(s.instr, out)
	return in, nil
}

func (s *simPort) TestReset() error {
	s.instr = InstrIDCode
	return nil
}

func (s *simPort) SetIRLength(n int) error {
	s.irLen = n
	return nil
}

// SimulatedCable returns a cable whose TDO comes from a bit-level TAP in
// front of p. It is what the simulator cable option drives.
func SimulatedCable(p *SimProcessor) *jtag.SimCable {
	t := tap.NewSimTarget(p.IRLength, InstrIDCode)
	t.OnCaptureDR = p.Capture
	t.OnUpdateDR = p.Update
	return jtag.NewSimCable(t.Clock)
}
