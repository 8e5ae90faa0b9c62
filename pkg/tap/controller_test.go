package tap

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
)

func newRecordedController(target jtag.ClockFunc) (*Controller, *jtag.SimCable) {
	cable := jtag.NewSimCable(target)
	cable.Record = true
	return NewController(cable), cable
}

func tmsOf(h []jtag.Clock) []bool {
	out := make([]bool, len(h))
	for i, c := range h {
		out[i] = c.TMS
	}
	return out
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestControllerTestReset(t *testing.T) {
	c, cable := newRecordedController(nil)
	if err := c.TestReset(); err != nil {
		t.Fatalf("TestReset: %v", err)
	}
	want := []bool{true, true, true, true, true, false}
	if got := tmsOf(cable.History()); !equalBits(got, want) {
		t.Fatalf("tms = %v, want %v", got, want)
	}
	if c.State() != StateRunTestIdle {
		t.Fatalf("state = %s", c.State())
	}
}

func TestControllerSetInstructionSequence(t *testing.T) {
	for _, irLen := range []int{4, 5, 7, 8} {
		c, cable := newRecordedController(nil)
		if err := c.TestReset(); err != nil {
			t.Fatal(err)
		}
		if err := c.SetIRLength(irLen); err != nil {
			t.Fatal(err)
		}
		cable.ResetHistory()

		instr := uint32(0x0A)
		if err := c.SetInstruction(instr); err != nil {
			t.Fatalf("L=%d SetInstruction: %v", irLen, err)
		}
		h := cable.History()
		if len(h) != 4+irLen+2 {
			t.Fatalf("L=%d: %d clocks, want %d", irLen, len(h), 4+irLen+2)
		}
		wantTMS := []bool{true, true, false, false}
		for i := 0; i < irLen; i++ {
			wantTMS = append(wantTMS, i == irLen-1)
		}
		wantTMS = append(wantTMS, true, false)
		if got := tmsOf(h); !equalBits(got, wantTMS) {
			t.Fatalf("L=%d tms = %v, want %v", irLen, got, wantTMS)
		}
		for i := 0; i < irLen; i++ {
			if want := instr>>i&1 == 1; h[4+i].TDI != want {
				t.Fatalf("L=%d tdi bit %d = %v", irLen, i, h[4+i].TDI)
			}
		}
	}
}

func TestControllerInstructionCache(t *testing.T) {
	c, cable := newRecordedController(nil)
	if err := c.TestReset(); err != nil {
		t.Fatal(err)
	}
	if err := c.SetInstruction(0x09); err != nil {
		t.Fatal(err)
	}
	n := cable.Clocks()
	if err := c.SetInstruction(0x09); err != nil {
		t.Fatal(err)
	}
	if cable.Clocks() != n {
		t.Fatalf("cached instruction was reshifted")
	}
	if err := c.SetInstruction(0x08); err != nil {
		t.Fatal(err)
	}
	if cable.Clocks() == n {
		t.Fatalf("new instruction was not shifted")
	}
	if err := c.TestReset(); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Instruction(); ok {
		t.Fatalf("reset kept a cached instruction")
	}
}

func TestControllerDataScanSequence(t *testing.T) {
	c, cable := newRecordedController(nil)
	if err := c.TestReset(); err != nil {
		t.Fatal(err)
	}
	cable.ResetHistory()
	if _, err := c.ReadWriteData(0x80000001); err != nil {
		t.Fatal(err)
	}
	h := cable.History()
	if len(h) != 3+32+2 {
		t.Fatalf("%d clocks", len(h))
	}
	want := []bool{true, false, false}
	for i := 0; i < 32; i++ {
		want = append(want, i == 31)
	}
	want = append(want, true, false)
	if !equalBits(tmsOf(h), want) {
		t.Fatalf("tms = %v", tmsOf(h))
	}
	if !h[3].TDI || !h[34].TDI || h[4].TDI {
		t.Fatalf("data bits not shifted LSB first")
	}
}

func TestControllerAgainstSimTarget(t *testing.T) {
	const idcode = 0x0535217F
	target := NewSimTarget(8, 0x01)
	var stored uint32
	target.OnCaptureDR = func(instr uint32) uint32 {
		switch instr {
		case 0x01:
			return idcode
		case 0x09:
			return stored
		}
		return 0
	}
	target.OnUpdateDR = func(instr, v uint32) {
		if instr == 0x09 {
			stored = v
		}
	}

	c, _ := newRecordedController(target.Clock)
	if err := c.SetIRLength(8); err != nil {
		t.Fatal(err)
	}
	if err := c.TestReset(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		instr uint32
		out   uint32
		want  uint32
	}{
		{"idcode", 0x01, 0, idcode},
		{"first write", 0x09, 0x12345678, 0},
		{"read back", 0x09, 0xCAFEF00D, 0x12345678},
		{"read again", 0x09, 0, 0xCAFEF00D},
		{"bypass shifts by one", 0xFF, 0x00000003, 0x00000006},
	}

	for _, tc := range tests {
		if err := c.SetInstruction(tc.instr); err != nil {
			t.Fatalf("%s: SetInstruction: %v", tc.name, err)
		}
		if target.Instruction() != tc.instr {
			t.Fatalf("%s: target latched 0x%X", tc.name, target.Instruction())
		}
		got, err := c.ReadWriteData(tc.out)
		if err != nil {
			t.Fatalf("%s: ReadWriteData: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got 0x%08X, want 0x%08X", tc.name, got, tc.want)
		}
	}
	if c.State() != target.State() {
		t.Fatalf("controller %s, target %s", c.State(), target.State())
	}
}

func TestControllerIRLengthRange(t *testing.T) {
	c, _ := newRecordedController(nil)
	for _, n := range []int{0, -1, 33} {
		if err := c.SetIRLength(n); err == nil {
			t.Fatalf("SetIRLength(%d) accepted", n)
		}
	}
}
