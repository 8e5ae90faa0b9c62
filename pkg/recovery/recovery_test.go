package recovery

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/marcinbor85/gohex"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/flash"
)

const (
	bcm5352  = 0x0535217F
	bootBase = 0x1FC00000
)

var fixedNow = time.Date(2026, 10, 18, 12, 30, 45, 0, time.UTC)

// busMemory reaches a SimBus the way PrAcc does.
type busMemory struct{ bus *ejtag.SimBus }

func (m busMemory) Read32(a uint32) (uint32, error) { return m.bus.Load(a, 4), nil }
func (m busMemory) Read16(a uint32) (uint32, error) { return m.bus.Load(a, 2), nil }
func (m busMemory) Write32(a, v uint32) error      { m.bus.Store(a, 4, v); return nil }
func (m busMemory) Write16(a, v uint32) error      { m.bus.Store(a, 2, v&0xFFFF); return nil }

// flakyMemory fails every read the way an exhausted DMA budget does.
type flakyMemory struct{ busMemory }

func (m flakyMemory) Read32(a uint32) (uint32, error) {
	v, _ := m.busMemory.Read32(a)
	return v, ejtag.ErrDMAFailed
}

func chipNumber(t *testing.T, vendor, device uint16) (int, chipdb.FlashChip) {
	t.Helper()
	for i, c := range chipdb.FlashChips {
		if c.Vendor == vendor && c.Device == device {
			return i + 1, c
		}
	}
	t.Fatalf("no chip %04x/%04x", vendor, device)
	return 0, chipdb.FlashChip{}
}

// customArea selects the first length bytes of the boot window.
func customArea(length uint32) flash.Options {
	return flash.Options{
		Area:         chipdb.CustomArea,
		CustomWindow: bootBase,
		CustomStart:  bootBase,
		CustomLength: length,
	}
}

type rig struct {
	bus *ejtag.SimBus
	nor *flash.SimNOR
	eng *flash.Engine
	out *bytes.Buffer
}

func newRig(t *testing.T, fopts flash.Options) *rig {
	t.Helper()
	num, chip := chipNumber(t, 0x0001, 0x2200)
	r := &rig{bus: ejtag.NewSimBus(), nor: flash.NewSimNOR(chip), out: &bytes.Buffer{}}
	r.bus.Map(bootBase, chip.Size, r.nor)
	fopts.Console = r.out
	fopts.PollLimit = 1000
	r.eng = flash.New(busMemory{r.bus}, flash.Target{IDCode: bcm5352, Family: ejtag.FamilyOf(bcm5352)}, fopts)
	if err := r.eng.SelectChip(num); err != nil {
		t.Fatal(err)
	}
	return r
}

func (r *rig) runner(opts Options) *Runner {
	opts.Now = func() time.Time { return fixedNow }
	return New(r.eng, busMemory{r.bus}, opts, r.out, nil)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatRaw, true},
		{"raw", FormatRaw, true},
		{"BIN", FormatRaw, true},
		{"ihex", FormatIntelHex, true},
		{"hex", FormatIntelHex, true},
		{"srec", 0, false},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if (err == nil) != tc.ok || (tc.ok && got != tc.want) {
			t.Fatalf("ParseFormat(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestImageWord(t *testing.T) {
	im := image{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	tests := []struct {
		off  uint32
		want uint32
	}{
		{0, 0x04030201},
		{4, 0xFFFF0605},
		{8, 0xFFFFFFFF},
	}
	for _, tc := range tests {
		if got := im.word(tc.off); got != tc.want {
			t.Fatalf("word(%d) = %08x, want %08x", tc.off, got, tc.want)
		}
	}
}

func TestBackup(t *testing.T) {
	for _, swap := range []bool{false, true} {
		r := newRig(t, customArea(0x40))
		mem := r.nor.Bytes()
		for i := 0; i < 0x40; i++ {
			mem[i] = byte(i)
		}
		dir := t.TempDir()
		path, err := r.runner(Options{Dir: dir, Timestamp: true, SwapEndian: swap}).Backup()
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(dir, "CUSTOM.BIN.SAVED_20261018_123045"); path != want {
			t.Fatalf("path %s, want %s", path, want)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		want := append([]byte(nil), mem[:0x40]...)
		if swap {
			for i := 0; i < len(want); i += 4 {
				want[i], want[i+1], want[i+2], want[i+3] = want[i+3], want[i+2], want[i+1], want[i]
			}
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("swap=%v: backup\n% x\nwant\n% x", swap, got, want)
		}
		for _, line := range []string{
			"*** You Selected to Backup the CUSTOM.BIN ***",
			"[  6% Backed Up]   1fc00000: ",
			"[ 81% Backed Up]   1fc00030: ",
			"bytes written: 64\n",
			"Backup Routine Complete",
			"elapsed time: 0 seconds",
		} {
			if !strings.Contains(r.out.String(), line) {
				t.Fatalf("missing %q in:\n%s", line, r.out.String())
			}
		}
	}
}

func TestBackupSilent(t *testing.T) {
	r := newRig(t, customArea(0x10))
	if _, err := r.runner(Options{Dir: t.TempDir(), Silent: true}).Backup(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(r.out.String(), "Backed Up]") || !strings.Contains(r.out.String(), " 100%   bytes = 16\r") {
		t.Fatalf("output:\n%q", r.out.String())
	}
}

func TestBackupIntelHex(t *testing.T) {
	r := newRig(t, customArea(0x20))
	mem := r.nor.Bytes()
	mem[0], mem[0x1F] = 0xAB, 0xCD

	path, err := r.runner(Options{Dir: t.TempDir(), Format: FormatIntelHex}).Backup()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "CUSTOM.BIN.SAVED.hex" {
		t.Fatalf("path %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	hex := gohex.NewMemory()
	if err := hex.ParseIntelHex(f); err != nil {
		t.Fatal(err)
	}
	segs := hex.GetDataSegments()
	if len(segs) != 1 || segs[0].Address != bootBase || !bytes.Equal(segs[0].Data, mem[:0x20]) {
		t.Fatalf("segments %+v", segs)
	}
}

func TestBackupDMAFailure(t *testing.T) {
	r := newRig(t, customArea(0x10))
	r.nor.Bytes()[4] = 0x42
	run := New(r.eng, flakyMemory{busMemory{r.bus}}, Options{Dir: t.TempDir()}, r.out, nil)
	path, err := run.Backup()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if len(got) != 0x10 || got[4] != 0x42 {
		t.Fatalf("backup % x", got)
	}
}

func TestNotReady(t *testing.T) {
	e := flash.New(busMemory{ejtag.NewSimBus()}, flash.Target{IDCode: bcm5352}, flash.Options{})
	run := New(e, busMemory{ejtag.NewSimBus()}, Options{}, nil, nil)
	if _, err := run.Backup(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("backup err = %v", err)
	}
	if err := run.Erase(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("erase err = %v", err)
	}
	if err := run.Flash(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("flash err = %v", err)
	}
}

func TestErase(t *testing.T) {
	r := newRig(t, customArea(0x2000))
	mem := r.nor.Bytes()
	mem[0x10], mem[0x1FFF], mem[0x2000] = 0, 0, 0

	if err := r.runner(Options{}).Erase(); err != nil {
		t.Fatal(err)
	}
	if mem[0x10] != 0xFF || mem[0x1FFF] != 0xFF {
		t.Fatalf("area not erased")
	}
	if mem[0x2000] != 0 {
		t.Fatalf("erase ran past the area")
	}
	for _, line := range []string{"Total Blocks to Erase: 1", "Erasing block: 1 (addr = 1fc00000)...Done", "Erasing Routine Complete"} {
		if !strings.Contains(r.out.String(), line) {
			t.Fatalf("missing %q in:\n%s", line, r.out.String())
		}
	}
}

func TestFlash(t *testing.T) {
	img := make([]byte, 0x30)
	for i := range img {
		img[i] = byte(0xA0 + i)
	}
	binary.LittleEndian.PutUint32(img[0x20:], 0xFFFFFFFF)

	tests := []struct {
		name string
		opts Options
	}{
		{"erase", Options{Erase: true}},
		{"no erase", Options{}},
		{"bypass", Options{Erase: true, Bypass: true}},
	}
	for _, tc := range tests {
		r := newRig(t, customArea(0x40))
		mem := r.nor.Bytes()
		if tc.opts.Erase {
			mem[0x38] = 0
		}
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "CUSTOM.BIN"), img, 0o644); err != nil {
			t.Fatal(err)
		}
		tc.opts.Dir = dir
		if err := r.runner(tc.opts).Flash(); err != nil {
			t.Fatalf("%s: %v\n%s", tc.name, err, r.out.String())
		}
		if !bytes.Equal(mem[:0x30], img) {
			t.Fatalf("%s: flash holds\n% x", tc.name, mem[:0x30])
		}
		for i := 0x30; i < 0x40; i++ {
			if mem[i] != 0xFF {
				t.Fatalf("%s: padding byte %x = %02x", tc.name, i, mem[i])
			}
		}
		if !strings.Contains(r.out.String(), "Done  (CUSTOM.BIN loaded into Flash Memory OK)") {
			t.Fatalf("%s: output:\n%s", tc.name, r.out.String())
		}
	}
}

func TestFlashSkipsErasedWords(t *testing.T) {
	r := newRig(t, customArea(0x10))
	dir := t.TempDir()
	img := []byte{1, 2, 3, 4, 0xFF, 0xFF, 0xFF, 0xFF}
	if err := os.WriteFile(filepath.Join(dir, "CUSTOM.BIN"), img, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.runner(Options{Dir: dir, Erase: true}).Flash(); err != nil {
		t.Fatal(err)
	}
	for _, w := range r.nor.Writes {
		if w.Offset >= 4 && w.Offset < 0x10 {
			t.Fatalf("erased word programmed: %+v", w)
		}
	}
}

func TestFlashIntelHex(t *testing.T) {
	r := newRig(t, customArea(0x40))
	dir := t.TempDir()
	data := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}

	hex := gohex.NewMemory()
	if err := hex.AddBinary(bootBase+0x10, data); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(dir, "CUSTOM.HEX"))
	if err != nil {
		t.Fatal(err)
	}
	if err := hex.DumpIntelHex(f, 16); err != nil {
		t.Fatal(err)
	}
	f.Close()

	run := r.runner(Options{Dir: dir, Erase: true, Format: FormatIntelHex})
	if err := run.Flash(); err != nil {
		t.Fatal(err)
	}
	mem := r.nor.Bytes()
	if !bytes.Equal(mem[0x10:0x18], data) {
		t.Fatalf("flash holds % x", mem[0x10:0x18])
	}
	if mem[0] != 0xFF || mem[0x18] != 0xFF {
		t.Fatalf("gap bytes programmed")
	}
}

func TestFlashMissingImage(t *testing.T) {
	r := newRig(t, customArea(0x40))
	err := r.runner(Options{Dir: t.TempDir()}).Flash()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "could not open") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoad(t *testing.T) {
	for _, dma := range []bool{true, false} {
		bus := ejtag.NewSimBus()
		p := ejtag.NewSimProcessor(bcm5352, 8, bus)
		var out bytes.Buffer
		s := ejtag.NewSession(ejtag.NewSimPort(p), ejtag.Config{PollLimit: 1000, ForceNoDMA: !dma, Console: &out})
		if err := s.Detect(); err != nil {
			t.Fatal(err)
		}
		if err := s.CheckFeatures(); err != nil {
			t.Fatal(err)
		}
		if err := s.Prepare(ejtag.DefaultBringUp); err != nil {
			t.Fatal(err)
		}
		e := flash.ForSession(s, flash.Options{})

		dir := t.TempDir()
		path := filepath.Join(dir, "vmlinux.bin")
		img := []byte{0xEF, 0xBE, 0xAD, 0xDE, 0x01, 0x02}
		if err := os.WriteFile(path, img, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := ForSession(s, e, Options{}).Load(path, LoadAddress); err != nil {
			t.Fatal(err)
		}
		if got := bus.Load(0x00040000, 4); got != 0xDEADBEEF {
			t.Fatalf("dma=%v: first word %08x", dma, got)
		}
		if got := bus.Load(0x00040004, 4); got != 0xFFFF0201 {
			t.Fatalf("dma=%v: padded word %08x", dma, got)
		}
		for _, line := range []string{
			"*** You Selected to program the vmlinux.bin ***",
			"Programming RAM Routine Started",
			"[ 66%]   80040000: deadbeef ",
			"Programming RAM Routine Complete",
		} {
			if !strings.Contains(out.String(), line) {
				t.Fatalf("dma=%v: missing %q in:\n%s", dma, line, out.String())
			}
		}
	}
}
