package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/config"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/cmdline"
)

// execute runs the root command with settings read from dir.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	configDir = dir
	saved = config.Settings{}
	savedLocal = ""
	verbose = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// inTempDir runs the test from an empty working directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q\nGot:\n%s", w, out)
		}
	}
}

func TestProbeOnlySimulator(t *testing.T) {
	out, err := execute(t, t.TempDir(), "-probeonly", "/cable:sim")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	assertContains(t, out,
		"EJTAG Debrick Utility",
		"*** Found a Broadcom BCM5352 Rev 1 CPU chip ***",
		"Probing Flash at (Flash Window: 0x1fc00000)",
		"*** Found a AMD 29lv320MB 2Mx16 BotB   (4MB) Flash Chip ***",
		"*** REQUESTED OPERATION IS COMPLETE ***",
	)
	if !lastSim.cable.Closed() {
		t.Fatalf("cable left open")
	}
}

func TestBackupSimulator(t *testing.T) {
	dir := inTempDir(t)
	out, err := execute(t, t.TempDir(),
		"-backup:custom", "/window:1fc00000", "/start:1fc00000", "/length:40",
		"/cable:sim", "/notimestamp", "/silent")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "CUSTOM.BIN.SAVED"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0x40 {
		t.Fatalf("backup is %d bytes", len(data))
	}
	for i, b := range data {
		if b != 0xFF {
			t.Fatalf("byte %d = %02x on an erased part", i, b)
		}
	}
}

func TestFlashSimulator(t *testing.T) {
	dir := inTempDir(t)
	img := []byte{
		0x00, 0x00, 0x00, 0x10, 0x44, 0x33, 0x22, 0x11,
		0xFF, 0xFF, 0xFF, 0xFF, 0xEF, 0xBE, 0xAD, 0xDE,
	}
	if err := os.WriteFile(filepath.Join(dir, "CUSTOM.BIN"), img, 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, t.TempDir(),
		"-flash:custom", "/window:1fc00000", "/start:1fc00000", "/length:10",
		"/cable:sim", "/silent")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if got := lastSim.nor.Bytes()[:len(img)]; !bytes.Equal(got, img) {
		t.Fatalf("flash holds % x", got)
	}
	assertContains(t, out, "*** REQUESTED OPERATION IS COMPLETE ***")
}

func TestUnknownProcessor(t *testing.T) {
	old := simIDCode
	simIDCode = 0x12345678
	defer func() { simIDCode = old }()

	out, err := execute(t, t.TempDir(), "-probeonly", "/cable:sim")
	if err != nil {
		t.Fatalf("unknown processor should not fail the run: %v", err)
	}
	assertContains(t, out, "*** Unknown or NO CPU Chip ID Detected ***")
	if strings.Contains(out, "REQUESTED OPERATION IS COMPLETE") {
		t.Fatalf("operation ran without a processor")
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"unknown operation", []string{"-bogus"}},
		{"unknown switch", []string{"-probeonly", "/bogus"}},
		{"incomplete custom area", []string{"-backup:custom", "/window:1fc00000"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, t.TempDir(), tc.args...)
			if !errors.Is(err, cmdline.ErrUsage) {
				t.Fatalf("err = %v", err)
			}
			assertContains(t, out, "USAGE: ejtag", "/fc:01")
		})
	}
}

func TestChipsAndAreas(t *testing.T) {
	out, err := execute(t, t.TempDir(), "chips")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "Processors:", "0535217F", "Flash chips:", "/fc:01")

	out, err = execute(t, t.TempDir(), "areas", "nvram")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "NVRAM", "1fff0000")
	if strings.Contains(out, "KERNEL") {
		t.Fatalf("areas not filtered:\n%s", out)
	}

	if _, err := execute(t, t.TempDir(), "areas", "bogus"); err == nil {
		t.Fatalf("unknown area accepted")
	}
}

func TestConfigSaveAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "config", "save", "--dir", dir, "--cable", "sim", "--delay", "3")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, filepath.Join(dir, "settings.json"))

	out, err = execute(t, dir, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "cable:      sim", "delay:      3")

	// No /cable switch: the saved simulator cable is used.
	out, err = execute(t, dir, "-probeonly")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	assertContains(t, out, "*** REQUESTED OPERATION IS COMPLETE ***")
}

func TestScanSimulator(t *testing.T) {
	scanCable, scanPort, scanWiggler, scanDelay = "", "", false, 0
	out, err := execute(t, t.TempDir(), "scan", "--cable", "sim")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out,
		"1 device(s)",
		"0535217F",
		"Broadcom BCM5352 Rev 1 CPU",
		"Total IR length: 8",
	)
}
