// Package recovery runs the operations a debrick session exists for: saving
// a flash area to disk, erasing it, programming it from an image and loading
// an image into RAM. Progress goes to the session console in the same shape
// the command line tool has always printed it.
package recovery

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/flash"
)

// LoadAddress is where Load places an image in RAM.
const LoadAddress = 0x80040000

// ErrNotReady is returned by the area operations when no part was
// identified or the selected area is empty.
var ErrNotReady = errors.New("recovery: no flash chip or empty area")

// Format is the on-disk image format.
type Format int

const (
	// FormatRaw is a flat dump of little-endian words starting at the area
	// start.
	FormatRaw Format = iota
	// FormatIntelHex carries absolute addresses in Intel HEX records.
	FormatIntelHex
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatIntelHex:
		return "ihex"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat accepts "raw", "bin", "ihex" or "hex".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "raw", "bin":
		return FormatRaw, nil
	case "ihex", "hex":
		return FormatIntelHex, nil
	}
	return 0, fmt.Errorf("recovery: unknown image format %q", s)
}

// Options tune the operations.
type Options struct {
	// Erase erases the area before flashing and skips erased words.
	Erase bool
	// Bypass enters AMD unlock bypass before flashing.
	Bypass bool
	// SwapEndian byte-swaps every word read during a backup.
	SwapEndian bool
	// Silent replaces the hex dump with a one-line percentage.
	Silent bool
	// Timestamp appends _YYYYMMDD_HHMMSS to backup names.
	Timestamp bool
	Format    Format
	// Dir is where images are read from and backups written. Empty means
	// the working directory.
	Dir string
	// Now replaces time.Now for backup names and elapsed time.
	Now func() time.Time
}

// Runner executes operations against an identified flash part.
type Runner struct {
	flash *flash.Engine
	mem   ejtag.Memory
	opts  Options
	out   io.Writer
	log   logrus.FieldLogger
	now   func() time.Time
}

// New returns a runner. mem is used for backups and RAM loads; e for
// everything that programs the part.
func New(e *flash.Engine, mem ejtag.Memory, opts Options, out io.Writer, log logrus.FieldLogger) *Runner {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		flash: e,
		mem:   mem,
		opts:  opts,
		out:   out,
		log:   log.WithField("prefix", "recovery"),
		now:   now,
	}
}

// ForSession builds a runner on a session and its flash engine.
func ForSession(s *ejtag.Session, e *flash.Engine, opts Options) *Runner {
	return New(e, s.Memory(), opts, s.Console(), s.Logger())
}

func (r *Runner) ready() error {
	if !r.flash.Ready() {
		return ErrNotReady
	}
	return nil
}

// read fetches a word, carrying on with the returned value when DMA gave
// up on it.
func (r *Runner) read(addr uint32) (uint32, error) {
	v, err := r.mem.Read32(addr)
	if errors.Is(err, ejtag.ErrDMAFailed) {
		r.log.WithField("addr", fmt.Sprintf("%08x", addr)).Warn(err)
		return v, nil
	}
	return v, err
}

func (r *Runner) write(addr, v uint32) error {
	err := r.mem.Write32(addr, v)
	if errors.Is(err, ejtag.ErrDMAFailed) {
		r.log.WithField("addr", fmt.Sprintf("%08x", addr)).Warn(err)
		return nil
	}
	return err
}

func (r *Runner) banner(width int, text string) {
	line := strings.Repeat("=", width)
	fmt.Fprintf(r.out, "%s\n%s\n%s\n", line, text, line)
}

func (r *Runner) elapsed(start time.Time) {
	fmt.Fprintf(r.out, "elapsed time: %d seconds\n", int(r.now().Sub(start)/time.Second))
}

// progress prints the per-word line of a transfer. label is the bracketed
// text at the head of each 16-byte row; silent lines are built by line.
type progress struct {
	out    io.Writer
	silent bool
	label  string
	length uint32
	count  uint32
}

func (p *progress) percent() uint32 {
	if p.length == 0 {
		return 100
	}
	return uint32(uint64(p.count) * 100 / uint64(p.length))
}

// start is called before the word at addr is transferred.
func (p *progress) start(addr uint32) {
	p.count += 4
	if !p.silent && addr&0xF == 0 {
		fmt.Fprintf(p.out, "[%3d%%%s]   %08x: ", p.percent(), p.label, addr)
	}
}

// done is called once the word is transferred.
func (p *progress) done(addr, data uint32, detailed bool) {
	switch {
	case p.silent && detailed:
		fmt.Fprintf(p.out, "%4d%%   bytes = %d (%08x)@(%08x)=%08x\r", p.percent(), p.count, p.count, addr, data)
	case p.silent:
		fmt.Fprintf(p.out, "%4d%%   bytes = %d\r", p.percent(), p.count)
	default:
		sep := byte(' ')
		if addr&0xF == 0xC {
			sep = '\n'
		}
		fmt.Fprintf(p.out, "%08x%c", data, sep)
	}
}
