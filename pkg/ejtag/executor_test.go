package ejtag

import (
	"errors"
	"testing"
)

type scriptStep struct {
	addr  uint32
	write bool
	data  uint32
}

// scriptPort plays back a fixed list of processor accesses.
type scriptPort struct {
	instr  uint32
	steps  []scriptStep
	pos    int
	data   uint32
	served []uint32
	polls  int
}

func (s *scriptPort) SetInstruction(instr uint32) error {
	s.instr = instr
	return nil
}

func (s *scriptPort) ReadWriteData(out uint32) (uint32, error) {
	pending := s.pos < len(s.steps)
	switch s.instr {
	case InstrControl:
		var v uint32
		if pending {
			v |= PRACC
			if s.steps[s.pos].write {
				v |= PRNW
			}
		}
		if out&PRACC != 0 {
			s.polls++
		} else if pending {
			if !s.steps[s.pos].write {
				s.served = append(s.served, s.data)
			}
			s.pos++
		}
		return v, nil
	case InstrAddress:
		if pending {
			return s.steps[s.pos].addr, nil
		}
	case InstrData:
		if pending && s.steps[s.pos].write {
			return s.steps[s.pos].data, nil
		}
		s.data = out
	}
	return 0, nil
}

func TestExecuteStopsAtSecondVectorFetch(t *testing.T) {
	port := &scriptPort{steps: []scriptStep{
		{addr: DebugVector},
		{addr: DebugVector + 4},
		{addr: DebugVector},
		{addr: DebugVector + 4},
	}}
	e := NewExecutor(port)

	if err := e.Execute([]uint32{0x11111111, 0x22222222}); err != nil {
		t.Fatal(err)
	}
	if port.pos != 2 {
		t.Fatalf("consumed %d accesses, want 2", port.pos)
	}
	if len(port.served) != 2 || port.served[0] != 0x11111111 || port.served[1] != 0x22222222 {
		t.Fatalf("served %08x", port.served)
	}
}

func TestExecuteVirtualRegisters(t *testing.T) {
	port := &scriptPort{steps: []scriptStep{
		{addr: DebugVector},
		{addr: VirtualDataRegister, write: true, data: 0xCAFEF00D},
		{addr: VirtualAddressRegister, write: true, data: 0xA0001234},
		{addr: VirtualDataRegister},
		{addr: VirtualAddressRegister},
		{addr: DebugVector},
	}}
	e := NewExecutor(port)

	if err := e.Execute([]uint32{0}); err != nil {
		t.Fatal(err)
	}
	if e.DataRegister != 0xCAFEF00D || e.AddressRegister != 0xA0001234 {
		t.Fatalf("registers = %08x / %08x", e.AddressRegister, e.DataRegister)
	}
	want := []uint32{0, 0xCAFEF00D, 0xA0001234}
	if len(port.served) != len(want) {
		t.Fatalf("served %08x", port.served)
	}
	for i := range want {
		if port.served[i] != want[i] {
			t.Fatalf("served[%d] = %08x, want %08x", i, port.served[i], want[i])
		}
	}
}

func TestExecuteTimeout(t *testing.T) {
	port := &scriptPort{}
	e := NewExecutor(port)
	e.PollLimit = 25

	err := e.Execute([]uint32{0})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if port.polls != 25 {
		t.Fatalf("polled %d times", port.polls)
	}
}

func TestExecuteModuleRange(t *testing.T) {
	port := &scriptPort{steps: []scriptStep{
		{addr: DebugVector},
		{addr: DebugVector + 4},
		{addr: DebugVector + 8},
	}}
	err := NewExecutor(port).Execute([]uint32{0, 0})
	if !errors.Is(err, ErrModuleRange) {
		t.Fatalf("err = %v, want ErrModuleRange", err)
	}
}

func TestCodeModulesAreCopies(t *testing.T) {
	m, err := CodeModule(ModuleReadWord)
	if err != nil {
		t.Fatal(err)
	}
	m[0] = 0
	again, _ := CodeModule(ModuleReadWord)
	if again[0] != 0x3C01FF20 {
		t.Fatalf("module table was modified")
	}
	if _, err := CodeModule("jump-to-flash"); err == nil {
		t.Fatalf("unknown module accepted")
	}
	if len(ModuleNames()) != 10 {
		t.Fatalf("modules = %v", ModuleNames())
	}
}

func TestModulesBranchBackToVector(t *testing.T) {
	for _, name := range ModuleNames() {
		m, _ := CodeModule(name)
		found := false
		for i, w := range m {
			if w == 0x1000FFF9 {
				// b -7 from word i lands on the vector.
				if target := i + 1 - 7; target != 0 {
					t.Fatalf("%s branches to word %d", name, target)
				}
				found = true
			}
		}
		if !found {
			t.Fatalf("%s never returns to the vector", name)
		}
	}
}
