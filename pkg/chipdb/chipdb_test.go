package chipdb

import (
	"errors"
	"testing"
)

func TestLookupProcessor(t *testing.T) {
	tests := []struct {
		id    uint32
		irLen int
		name  string
	}{
		{0x0535217F, 8, "Broadcom BCM5352 Rev 1 CPU"},
		{0x0471017F, 5, "Broadcom BCM4702 Rev 1 CPU"},
		{0x00000001, 5, "Atheros AR531X/231X CPU"},
		{0x19277013, 7, "XScale IXP42X 266mhz"},
		{0x10940027, 4, "ARM 940T"},
	}

	for _, tc := range tests {
		p, err := LookupProcessor(tc.id)
		if err != nil {
			t.Fatalf("LookupProcessor(%08X): %v", tc.id, err)
		}
		if p.IRLength != tc.irLen || p.Name != tc.name {
			t.Fatalf("LookupProcessor(%08X) = %+v", tc.id, p)
		}
	}

	if _, err := LookupProcessor(0xDEADBEEF); !errors.Is(err, ErrUnknownProcessor) {
		t.Fatalf("unknown id error = %v", err)
	}
}

func TestProcessorIRLengths(t *testing.T) {
	for _, p := range Processors {
		switch p.IRLength {
		case 4, 5, 7, 8:
		default:
			t.Fatalf("%s has IR length %d", p.Name, p.IRLength)
		}
	}
}

func TestLookupFlashFirstMatchWins(t *testing.T) {
	c, err := LookupFlash(0x00C2, 0x22DA)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "MX29LV800BTC 512kx16 TopB  (1MB)" || c.CommandSet != AMD || c.Size != Size1MB {
		t.Fatalf("got %+v", c)
	}

	// The AT45DB161B appears twice; the first entry is the 0x001F one.
	c, err = LookupFlash(0x001F, 0x2600)
	if err != nil || c.CommandSet != SPI || c.Regions[0] != (Region{512, BlockA4K}) {
		t.Fatalf("AT45DB161B = %+v, %v", c, err)
	}

	if _, err := LookupFlash(0x1234, 0x5678); !errors.Is(err, ErrUnknownFlash) {
		t.Fatalf("unknown chip error = %v", err)
	}
}

func TestFlashByNumber(t *testing.T) {
	c, err := FlashByNumber(1)
	if err != nil || c.Device != 0x22DA {
		t.Fatalf("chip 1 = %+v, %v", c, err)
	}
	last, err := FlashByNumber(len(FlashChips))
	if err != nil || last.Vendor != 0x001F || last.Device != 0x00C9 {
		t.Fatalf("last chip = %+v, %v", last, err)
	}
	for _, n := range []int{0, len(FlashChips) + 1} {
		if _, err := FlashByNumber(n); err == nil {
			t.Fatalf("FlashByNumber(%d) accepted", n)
		}
	}
}

func TestFlashRegionsWellFormed(t *testing.T) {
	for i, c := range FlashChips {
		if len(c.Regions) == 0 || len(c.Regions) > 4 {
			t.Fatalf("chip %d %q has %d regions", i+1, c.Name, len(c.Regions))
		}
		for _, r := range c.Regions {
			if r.Count <= 0 || r.Size == 0 {
				t.Fatalf("chip %d %q has empty region %+v", i+1, c.Name, r)
			}
		}
	}
}

func TestLookupArea(t *testing.T) {
	tests := []struct {
		size   uint32
		name   string
		start  uint32
		length uint32
	}{
		{Size4MB, "cfe", 0x1FC00000, 0x40000},
		{Size8MB, "CFE", 0x1C000000, 0x40000},
		{Size16MB, "WholeFlash", 0x1F000000, 0x1000000},
		{Size2MB, "NVRAM", 0x1FDF0000, 0x10000},
		{Size8MB, "AR-RED", 0xA8000000, 0x30000},
		{Size4MB, "MTD4", 0x90020000, 0x3E0000},
	}

	for _, tc := range tests {
		a, err := LookupArea(tc.size, tc.name)
		if err != nil {
			t.Fatalf("LookupArea(%X, %s): %v", tc.size, tc.name, err)
		}
		if a.Start != tc.start || a.Length != tc.length {
			t.Fatalf("LookupArea(%X, %s) = %+v", tc.size, tc.name, a)
		}
	}

	if _, err := LookupArea(Size1MB, "WGRV9NVRAM"); !errors.Is(err, ErrUnknownArea) {
		t.Fatalf("missing area error = %v", err)
	}
}

func TestAreaNames(t *testing.T) {
	names := AreaNames()
	if names[0] != "CFE" || names[len(names)-1] != CustomArea {
		t.Fatalf("names = %v", names)
	}
	if !IsArea("kernel") || !IsArea("custom") || IsArea("bootloader") {
		t.Fatalf("IsArea misclassified")
	}
}

func TestAtherosAreaName(t *testing.T) {
	tests := []struct {
		name string
		size uint32
		want string
	}{
		{"cfe", Size8MB, "AR-CFE"},
		{"NVRAM", Size16MB, "AR-NVRAM"},
		{"CFE", Size4MB, "CFE"},
		{"CFE128", Size8MB, "CFE128"},
	}
	for _, tc := range tests {
		if got := AtherosAreaName(tc.name, tc.size); got != tc.want {
			t.Errorf("AtherosAreaName(%s, %X) = %s, want %s", tc.name, tc.size, got, tc.want)
		}
	}
}

func TestWindowBase(t *testing.T) {
	tests := []struct {
		id   uint32
		size uint32
		want uint32
	}{
		{0x0535217F, Size4MB, 0x1FC00000},
		{0x0535217F, 0, 0x1FC00000},
		{0x0535217F, Size8MB, 0x1C000000},
		{IDIXP425_266, Size16MB, 0x00400000},
		{IDARM940T, Size2MB, 0x00400000},
		{IDBCM6358, Size4MB, 0x1F000000},
		{IDTIAR7, Size4MB, 0x90000000},
	}
	for _, tc := range tests {
		if got := WindowBase(tc.id, tc.size); got != tc.want {
			t.Errorf("WindowBase(%08X, %X) = %08X, want %08X", tc.id, tc.size, got, tc.want)
		}
	}
}

func TestCommandSetString(t *testing.T) {
	if AMD.String() != "AMD" || SPI.String() != "SPI" || CommandSet(0).String() != "CommandSet(0)" {
		t.Fatalf("unexpected CommandSet names")
	}
}
