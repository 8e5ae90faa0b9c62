package cmdline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/config"
)

func TestParseArgument(t *testing.T) {
	tests := []struct {
		in       string
		selector bool
		name     string
		value    string
		hasValue bool
	}{
		{"-backup:cfe", true, "backup", "cfe", true},
		{"-probeonly", true, "probeonly", "", false},
		{"-load:images/vmlinux-2.6.bin", true, "load", "images/vmlinux-2.6.bin", true},
		{"/window:1fc00000", false, "window", "1fc00000", true},
		{"/port:/dev/parport1", false, "port", "/dev/parport1", true},
		{"/NoReset", false, "NoReset", "", false},
		{"/fc:07", false, "fc", "07", true},
	}
	for _, tc := range tests {
		a, err := ParseArgument(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		it := a.Switch
		if tc.selector {
			it = a.Selector
		}
		if it == nil {
			t.Fatalf("%s: parsed as %+v", tc.in, a)
		}
		if it.Name != tc.name || it.String() != tc.value || it.HasValue() != tc.hasValue {
			t.Fatalf("%s: got %q %q %v", tc.in, it.Name, it.String(), it.HasValue())
		}
	}

	for _, bad := range []string{"backup", "", "-", "/:x", "-backup:"} {
		if _, err := ParseArgument(bad); err == nil {
			t.Fatalf("%q parsed", bad)
		}
	}
}

func TestParseSelectors(t *testing.T) {
	tests := []struct {
		args  []string
		op    Op
		area  string
		image string
	}{
		{[]string{"-backup:cfe"}, OpBackup, "CFE", ""},
		{[]string{"-ERASE:Nvram"}, OpErase, "NVRAM", ""},
		{[]string{"-flash:wholeflash"}, OpFlash, "WHOLEFLASH", ""},
		{[]string{"-flash:mtd2"}, OpFlash, "MTD2", ""},
		{[]string{"-backup:wgrv9bdata"}, OpBackup, "WGRV9BDATA", ""},
		{[]string{"-probeonly"}, OpProbeOnly, "", ""},
		{[]string{"-probeonly:custom", "/window:1fc00000"}, OpProbeOnly, "CUSTOM", ""},
		{[]string{"-load:kernel.bin"}, OpLoad, "", "kernel.bin"},
		{[]string{"-spi_chiperase"}, OpSPIChipErase, "", ""},
		{[]string{"-backup:custom", "/window:1fc00000", "/start:1fc00000", "/length:40000"}, OpBackup, "CUSTOM", ""},
	}
	for _, tc := range tests {
		req, err := Parse(tc.args, config.Defaults())
		if err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if req.Op != tc.op || req.Area != tc.area || req.Image != tc.image {
			t.Fatalf("%v: got %v %q %q", tc.args, req.Op, req.Area, req.Image)
		}
	}
}

func TestParseSwitches(t *testing.T) {
	args := []string{
		"-flash:cfe", "/noreset", "/NOEMW", "/nocwd", "/nobreak", "/noerase", "/notimestamp",
		"/dma", "/nodma", "/fc:12", "/bypass", "/reboot", "/silent", "/skipdetect",
		"/instrlen:5", "/wiggler", "/st5", "/flash_debug", "/delay:100", "/xbit",
		"/swap_endian", "/sdram", "/ihex", "/cable:RPI", "/port:/dev/parport1", "/polllimit:0",
	}
	req, err := Parse(args, config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	o := req.Options
	if o.Reset || o.EnableMemoryWrites || o.ClearWatchdog || o.Break || o.Erase || o.Timestamp {
		t.Fatalf("bring-up switches not cleared: %+v", o)
	}
	if !o.ForceDMA || !o.ForceNoDMA || !o.Bypass || !o.Reboot || !o.Silent || !o.SkipDetect ||
		!o.Wiggler || !o.Speedtouch || !o.FlashDebug || !o.XBit || !o.SwapEndian || !o.SDRAM {
		t.Fatalf("flags not set: %+v", o)
	}
	if o.FlashChip != 12 || o.InstrLen != 5 || o.Delay != 100 || o.PollLimit != 0 {
		t.Fatalf("numbers: %+v", o)
	}
	if o.Format != "ihex" || o.Cable != "rpi" || o.Port != "/dev/parport1" {
		t.Fatalf("text: %+v", o)
	}
	if !o.Debug() {
		t.Fatalf("flash_debug does not enable diagnostics")
	}
}

func TestParseCustomWindow(t *testing.T) {
	req, err := Parse([]string{"-erase:custom", "/window:0x1C000000", "/start:1c010000", "/length:20000"}, config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	o := req.Options
	if o.Window != 0x1C000000 || o.Start != 0x1C010000 || o.Length != 0x20000 || o.CustomOptions != 4 {
		t.Fatalf("custom %+v", o)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "no operation"},
		{[]string{"-backup:nothing"}, "Invalid [option]"},
		{[]string{"-backup"}, "Invalid [option]"},
		{[]string{"-frobnicate"}, "Invalid [option]"},
		{[]string{"/noreset"}, "Invalid [option]"},
		{[]string{"-probeonly:cfe"}, "Invalid [option]"},
		{[]string{"-spi_chiperase:now"}, "Invalid [option]"},
		{[]string{"-backup:cfe", "/bogus"}, "Invalid <option>"},
		{[]string{"-backup:cfe", "-erase:cfe"}, "Invalid <option>"},
		{[]string{"-backup:cfe", "/fc"}, "Invalid <option>"},
		{[]string{"-backup:cfe", "/silent:yes"}, "Invalid <option>"},
		{[]string{"-backup:cfe", "/fc:x"}, "not a decimal number"},
		{[]string{"-backup:cfe", "/window:zz"}, "not a hex number"},
		{[]string{"-backup:custom", "/window:1fc00000"}, "'CUSTOM' also requires"},
		{[]string{"-flash:custom"}, "'CUSTOM' also requires"},
		{[]string{"-probeonly:custom"}, "'PROBEONLY:CUSTOM' requires"},
	}
	for _, tc := range tests {
		_, err := Parse(tc.args, config.Defaults())
		if !errors.Is(err, ErrUsage) {
			t.Fatalf("%v: err = %v", tc.args, err)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%v: err = %v, want %q", tc.args, err, tc.want)
		}
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "ejtag")
	out := buf.String()
	for _, want := range []string{
		"USAGE: ejtag [parameter]",
		"-backup:cfe",
		"-flash:custom",
		"-probeonly:custom",
		"-spi_chiperase",
		"/swap_endian",
		"/fc:01 ............. ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("usage lacks %q", want)
		}
	}
	if strings.Contains(out, "-backup:ar-") {
		t.Fatalf("usage lists Atheros-only area names")
	}
}
