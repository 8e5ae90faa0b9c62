package flash

import (
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
)

// SimWrite is one bus write seen by a simulated part.
type SimWrite struct {
	Offset uint32
	Value  uint16
}

type norMode int

const (
	norRead norMode = iota
	norID
	norStatus
	norProgram   // next write is program data
	norBypass    // AMD unlock bypass
	norBypassPgm // bypass, next write is data
	norBypassRst // bypass, saw the 0x90 reset cycle
	norLockSetup
	norEraseSetup
)

// SimNOR models a 16-bit parallel NOR part speaking the AMD, SST or Intel
// command set. It implements ejtag.Device and decodes addresses modulo its
// size, so it can be mapped over a window larger than itself.
type SimNOR struct {
	Chip chipdb.FlashChip
	// Vendor and Device are what identification mode reports. They start
	// as the chip's table IDs.
	Vendor, Device uint16
	// SubID is returned at word offsets 0x0E and 0x0F in identification
	// mode.
	SubID [2]uint16
	// BusyReads keeps the part busy for this many status reads after each
	// program or erase.
	BusyReads int
	// Writes logs every halfword written to the part.
	Writes []SimWrite

	mem   []byte
	mode  norMode
	cycle int
	busy  int
}

// NewSimNOR returns an erased part described by chip.
func NewSimNOR(chip chipdb.FlashChip) *SimNOR {
	n := &SimNOR{Chip: chip, Vendor: chip.Vendor, Device: chip.Device, mem: make([]byte, chip.Size)}
	fill(n.mem, 0xFF)
	return n
}

// Bytes exposes the array contents.
func (n *SimNOR) Bytes() []byte { return n.mem }

func (n *SimNOR) intel() bool {
	return n.Chip.CommandSet == BSC || n.Chip.CommandSet == SCS
}

func (n *SimNOR) half(off uint32) uint16 {
	off %= uint32(len(n.mem))
	return uint16(n.mem[off&^1]) | uint16(n.mem[off&^1+1])<<8
}

func (n *SimNOR) ident(off uint32) uint16 {
	switch (off >> 1) & 0xFF {
	case 0:
		return n.Vendor
	case 1:
		return n.Device
	case 0x0E:
		return n.SubID[0]
	case 0x0F:
		return n.SubID[1]
	}
	return 0
}

// Load implements ejtag.Device. Identification and status reads answer on
// the addressed halfword only, whatever the access size.
func (n *SimNOR) Load(off uint32, size int) uint32 {
	switch n.mode {
	case norID:
		return uint32(n.ident(off))
	case norStatus:
		if n.busy > 0 {
			n.busy--
			return 0
		}
		return statusReady
	}
	v := uint32(n.half(off))
	if n.busy > 0 && !n.intel() {
		n.busy--
		return v ^ statusReady
	}
	switch size {
	case 1:
		return uint32(n.mem[off%uint32(len(n.mem))])
	case 4:
		return v | uint32(n.half(off+2))<<16
	}
	return v
}

// Store implements ejtag.Device.
func (n *SimNOR) Store(off uint32, size int, v uint32) {
	switch size {
	case 2:
		n.write(off, uint16(v))
	case 4:
		n.write(off, uint16(v))
		n.write(off+2, uint16(v>>16))
	}
}

func (n *SimNOR) write(off uint32, v uint16) {
	n.Writes = append(n.Writes, SimWrite{Offset: off, Value: v})
	if n.intel() {
		n.intelWrite(off, v)
	} else {
		n.amdWrite(off, v)
	}
}

func (n *SimNOR) unlockAddrs() (uint32, uint32, uint32) {
	if n.Chip.CommandSet == SST {
		return 0x7FFF, 0x5555, 0x2AAA
	}
	return 0x7FF, 0x555, 0x2AA
}

func (n *SimNOR) amdWrite(off uint32, v uint16) {
	mask, u1, u2 := n.unlockAddrs()
	wa := (off >> 1) & mask
	cmd := v & 0xFF

	switch n.mode {
	case norProgram, norBypassPgm:
		n.program(off, v)
		if n.mode == norProgram {
			n.mode = norRead
		} else {
			n.mode = norBypass
		}
		return
	case norBypass:
		switch cmd {
		case 0xA0:
			n.mode = norBypassPgm
		case 0x90:
			n.mode = norBypassRst
		}
		return
	case norBypassRst:
		if cmd == 0x00 {
			n.mode = norRead
		} else {
			n.mode = norBypass
		}
		return
	}

	if cmd == 0xF0 {
		n.mode, n.cycle = norRead, 0
		return
	}

	switch {
	case n.cycle == 0 || n.cycle == 3:
		if wa == u1 && cmd == 0xAA {
			n.cycle++
			return
		}
	case n.cycle == 1 || n.cycle == 4:
		if wa == u2 && cmd == 0x55 {
			n.cycle++
			return
		}
	case n.cycle == 2 && wa == u1:
		n.cycle = 0
		switch cmd {
		case 0x90:
			n.mode = norID
		case 0xA0:
			n.mode = norProgram
		case 0x20:
			n.mode = norBypass
		case 0x80:
			n.cycle = 3
		}
		return
	case n.cycle == 5:
		n.cycle = 0
		switch cmd {
		case 0x10:
			n.eraseAll()
		case 0x30, 0x50:
			n.eraseBlock(off)
		}
		return
	}
	n.cycle = 0
}

func (n *SimNOR) intelWrite(off uint32, v uint16) {
	cmd := v & 0xFF
	switch n.mode {
	case norProgram:
		n.program(off, v)
		n.mode = norStatus
		return
	case norLockSetup:
		n.mode = norStatus
		return
	case norEraseSetup:
		if cmd == 0xD0 {
			n.eraseBlock(off)
		}
		n.mode = norStatus
		return
	}
	switch cmd {
	case 0xFF:
		n.mode = norRead
	case 0x90:
		n.mode = norID
	case 0x70, 0x50:
		n.mode = norStatus
	case 0x40, 0x10:
		n.mode = norProgram
	case 0x60:
		n.mode = norLockSetup
	case 0x20:
		n.mode = norEraseSetup
	}
}

func (n *SimNOR) program(off uint32, v uint16) {
	off %= uint32(len(n.mem))
	n.mem[off&^1] &= byte(v)
	n.mem[off&^1+1] &= byte(v >> 8)
	n.busy = n.BusyReads
}

func (n *SimNOR) eraseBlock(off uint32) {
	off %= uint32(len(n.mem))
	start, size := blockAt(n.Chip.Regions, off)
	fill(n.mem[start:start+size], 0xFF)
	n.busy = n.BusyReads
}

func (n *SimNOR) eraseAll() {
	fill(n.mem, 0xFF)
	n.busy = n.BusyReads
}

// blockAt returns the erase block holding off.
func blockAt(regions []chipdb.Region, off uint32) (uint32, uint32) {
	var start uint32
	for _, r := range regions {
		for i := 0; i < r.Count; i++ {
			if off < start+r.Size {
				return start, r.Size
			}
			start += r.Size
		}
	}
	return 0, 0
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

// SimSPI models a SoC serial flash controller with one part attached. The
// controller registers sit at Layout.Ctl, +4 and +8; Array gives the
// memory-mapped read view of the part.
type SimSPI struct {
	Layout Layout
	Chip   chipdb.FlashChip
	// ID is the RDID answer in the order the bytes come off the wire.
	ID [3]byte
	// WIPReads keeps write-in-progress set for this many status reads
	// after each program or erase.
	WIPReads int
	// Stuck leaves the controller busy forever.
	Stuck bool
	// Ops logs every opcode the controller ran.
	Ops []uint8

	mem               []byte
	ctl, opcode, data uint32
	wel               bool
	wip               int
}

// NewSimSPI returns an erased serial part behind a controller with layout l.
func NewSimSPI(l Layout, chip chipdb.FlashChip) *SimSPI {
	s := &SimSPI{
		Layout: l,
		Chip:   chip,
		ID:     [3]byte{byte(chip.Vendor), byte(chip.Device >> 8), byte(chip.Device)},
		mem:    make([]byte, chip.Size),
	}
	fill(s.mem, 0xFF)
	return s
}

// Bytes exposes the array contents.
func (s *SimSPI) Bytes() []byte { return s.mem }

// Attach maps the controller registers and the read window onto bus.
func (s *SimSPI) Attach(bus *ejtag.SimBus, window, windowSize uint32) {
	bus.Map(s.Layout.Ctl, 12, s)
	bus.Map(window, windowSize, spiArray{s})
}

// Load implements ejtag.Device for the register block.
func (s *SimSPI) Load(off uint32, size int) uint32 {
	switch off &^ 3 {
	case 0:
		if s.Stuck {
			return s.ctl | s.Layout.Busy
		}
		return s.ctl
	case 4:
		return s.opcode
	case 8:
		return s.data
	}
	return 0
}

// Store implements ejtag.Device for the register block.
func (s *SimSPI) Store(off uint32, size int, v uint32) {
	switch off &^ 3 {
	case 0:
		s.ctl = v
		if v&s.Layout.Start != 0 && !s.Stuck {
			s.run()
			s.ctl &^= s.Layout.Start | s.Layout.Busy
		}
	case 4:
		s.opcode = v
	case 8:
		s.data = v
	}
}

func (s *SimSPI) run() {
	var op uint8
	var addr uint32
	if s.Layout.Broadcom {
		op = uint8(s.ctl)
		addr = s.opcode & 0xFFFFFF
	} else {
		op = uint8(s.opcode)
		addr = s.opcode >> 8
	}
	addr %= uint32(len(s.mem))
	s.Ops = append(s.Ops, op)

	switch op {
	case 0x06:
		s.wel = true
	case 0x04:
		s.wel = false
	case 0x05:
		s.data = 0
		if s.wip > 0 {
			s.wip--
			s.data = spiStatusWIP
		}
		if s.wel {
			s.data |= 0x02
		}
	case 0x9F:
		s.data = uint32(s.ID[0]) | uint32(s.ID[1])<<8 | uint32(s.ID[2])<<16
	case 0x02:
		if s.wel {
			for i := uint32(0); i < 4; i++ {
				s.mem[(addr+i)%uint32(len(s.mem))] &= byte(s.data >> (8 * i))
			}
			s.done()
		}
	case 0xD8:
		if s.wel {
			start, size := blockAt(s.Chip.Regions, addr)
			fill(s.mem[start:start+size], 0xFF)
			s.done()
		}
	case 0xC7:
		if s.wel {
			fill(s.mem, 0xFF)
			s.done()
		}
	}
}

func (s *SimSPI) done() {
	s.wel = false
	s.wip = s.WIPReads
}

// spiArray is the memory-mapped read view of a SimSPI part.
type spiArray struct{ s *SimSPI }

func (a spiArray) Load(off uint32, size int) uint32 {
	var v uint32
	for i := 0; i < size; i++ {
		v |= uint32(a.s.mem[(off+uint32(i))%uint32(len(a.s.mem))]) << (8 * i)
	}
	return v
}

func (a spiArray) Store(uint32, int, uint32) {}
