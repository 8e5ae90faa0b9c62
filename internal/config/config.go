// Package config holds the run options of the ejtag tool and the user
// defaults persisted between runs.
package config

import (
	"errors"
	"strings"
)

// DefaultPollLimit bounds target and flash polls unless overridden.
const DefaultPollLimit = 1000000

var (
	// ErrCustomArea means a CUSTOM operation is missing /window, /start or
	// /length.
	ErrCustomArea = errors.New("'CUSTOM' also requires '/window' '/start' and '/length' options")
	// ErrProbeWindow means -probeonly:custom was given without /window.
	ErrProbeWindow = errors.New("'PROBEONLY:CUSTOM' requires '/window' option")
)

// Options is everything a run can be told on the command line.
type Options struct {
	// Bring-up and operation steps, all on by default.
	Reset              bool
	EnableMemoryWrites bool
	ClearWatchdog      bool
	Break              bool
	Erase              bool
	Timestamp          bool

	ForceDMA   bool
	ForceNoDMA bool
	Bypass     bool
	Speedtouch bool
	SwapEndian bool
	Silent     bool
	SkipDetect bool
	// InstrLen overrides the IR length; zero keeps the table's.
	InstrLen int
	// FlashChip selects a flash table entry, counting from 1. Zero probes.
	FlashChip int

	Window uint32
	Start  uint32
	Length uint32
	// CustomOptions counts /window, /start and /length, plus one for a
	// CUSTOM selector; ProbeOptions counts /window alone.
	CustomOptions int
	ProbeOptions  int

	Cable   string
	Port    string
	Wiggler bool
	Delay   int

	FlashDebug bool
	Verbose    bool
	Reboot     bool
	SDRAM      bool
	XBit       bool
	PollLimit  int
	Format     string
}

// Defaults returns the options of a run with no switches.
func Defaults() Options {
	return Options{
		Reset:              true,
		EnableMemoryWrites: true,
		ClearWatchdog:      true,
		Break:              true,
		Erase:              true,
		Timestamp:          true,
		Cable:              "parport",
		Port:               "/dev/parport0",
		PollLimit:          DefaultPollLimit,
		Format:             "raw",
	}
}

// Validate checks the CUSTOM area requirements. probeOnly relaxes them to
// /window alone.
func (o Options) Validate(area string, probeOnly bool) error {
	if !strings.EqualFold(area, "CUSTOM") {
		return nil
	}
	if !probeOnly && o.CustomOptions != 0 && o.CustomOptions != 4 {
		return ErrCustomArea
	}
	if probeOnly && o.ProbeOptions != 1 {
		return ErrProbeWindow
	}
	return nil
}

// Debug reports whether diagnostics should be logged.
func (o Options) Debug() bool {
	return o.Verbose || o.FlashDebug
}
