// Package cmdline parses the legacy debrick command line: one required
// -operation[:area] selector followed by /switch[:value] options. Names are
// case-insensitive.
package cmdline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/config"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
)

// ErrUsage marks every command line error. The caller prints the usage
// text and exits with status 1.
var ErrUsage = errors.New("usage")

// Op is the requested operation.
type Op int

const (
	OpBackup Op = iota + 1
	OpErase
	OpFlash
	OpProbeOnly
	OpLoad
	OpSPIChipErase
)

var opNames = map[string]Op{
	"backup":        OpBackup,
	"erase":         OpErase,
	"flash":         OpFlash,
	"probeonly":     OpProbeOnly,
	"load":          OpLoad,
	"spi_chiperase": OpSPIChipErase,
}

func (o Op) String() string {
	for name, op := range opNames {
		if op == o {
			return name
		}
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// UsesArea reports whether the operation works on a flash area.
func (o Op) UsesArea() bool {
	return o == OpBackup || o == OpErase || o == OpFlash
}

// Request is a parsed command line.
type Request struct {
	Op Op
	// Area is the upper-cased area name, CUSTOM included.
	Area string
	// Image is the file given to -load.
	Image   string
	Options config.Options
}

func usageError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// Parse reads args (without the program name) on top of base.
func Parse(args []string, base config.Options) (Request, error) {
	req := Request{Options: base}
	if len(args) == 0 {
		return req, usageError("no operation given")
	}

	if err := req.selector(args[0]); err != nil {
		return req, err
	}
	for _, arg := range args[1:] {
		a, err := ParseArgument(arg)
		if err != nil || a.Switch == nil {
			return req, usageError("*** ERROR - Invalid <option> specified *** (%s)", arg)
		}
		if err := applySwitch(&req.Options, a.Switch); err != nil {
			return req, err
		}
	}

	if err := req.Options.Validate(req.Area, req.Op == OpProbeOnly); err != nil {
		return req, fmt.Errorf("%w: *** ERROR - %v ***", ErrUsage, err)
	}
	return req, nil
}

func (r *Request) selector(arg string) error {
	invalid := usageError("*** ERROR - Invalid [option] specified *** (%s)", arg)
	a, err := ParseArgument(arg)
	if err != nil || a.Selector == nil {
		return invalid
	}
	sel := a.Selector
	op, ok := opNames[sel.Key()]
	if !ok {
		return invalid
	}
	r.Op = op

	switch op {
	case OpBackup, OpErase, OpFlash:
		if !sel.HasValue() || !chipdb.IsArea(sel.String()) {
			return invalid
		}
		r.Area = strings.ToUpper(sel.String())
		if r.Area == chipdb.CustomArea {
			r.Options.CustomOptions++
		}
	case OpProbeOnly:
		if sel.HasValue() {
			if !strings.EqualFold(sel.String(), chipdb.CustomArea) {
				return invalid
			}
			r.Area = chipdb.CustomArea
		}
	case OpLoad:
		if !sel.HasValue() {
			return invalid
		}
		r.Image = sel.String()
	case OpSPIChipErase:
		if sel.HasValue() {
			return invalid
		}
	}
	return nil
}

type switchFunc func(o *config.Options, v string) error

func flag(set func(o *config.Options)) switchFunc {
	return func(o *config.Options, _ string) error {
		set(o)
		return nil
	}
}

// switches maps each switch to its handler. Entries in valued take a
// value; the others refuse one.
var switches = map[string]switchFunc{
	"noreset":     flag(func(o *config.Options) { o.Reset = false }),
	"noemw":       flag(func(o *config.Options) { o.EnableMemoryWrites = false }),
	"nocwd":       flag(func(o *config.Options) { o.ClearWatchdog = false }),
	"nobreak":     flag(func(o *config.Options) { o.Break = false }),
	"noerase":     flag(func(o *config.Options) { o.Erase = false }),
	"notimestamp": flag(func(o *config.Options) { o.Timestamp = false }),
	"dma":         flag(func(o *config.Options) { o.ForceDMA = true }),
	"nodma":       flag(func(o *config.Options) { o.ForceNoDMA = true }),
	"bypass":      flag(func(o *config.Options) { o.Bypass = true }),
	"reboot":      flag(func(o *config.Options) { o.Reboot = true }),
	"silent":      flag(func(o *config.Options) { o.Silent = true }),
	"skipdetect":  flag(func(o *config.Options) { o.SkipDetect = true }),
	"wiggler":     flag(func(o *config.Options) { o.Wiggler = true }),
	"st5":         flag(func(o *config.Options) { o.Speedtouch = true }),
	"flash_debug": flag(func(o *config.Options) { o.FlashDebug = true }),
	"verbose":     flag(func(o *config.Options) { o.Verbose = true }),
	"xbit":        flag(func(o *config.Options) { o.XBit = true }),
	"swap_endian": flag(func(o *config.Options) { o.SwapEndian = true }),
	"sdram":       flag(func(o *config.Options) { o.SDRAM = true }),
	"ihex":        flag(func(o *config.Options) { o.Format = "ihex" }),

	"fc":        decimal(func(o *config.Options, n int) { o.FlashChip = n }),
	"instrlen":  decimal(func(o *config.Options, n int) { o.InstrLen = n }),
	"delay":     decimal(func(o *config.Options, n int) { o.Delay = n }),
	"polllimit": decimal(func(o *config.Options, n int) { o.PollLimit = n }),
	"window": hex(func(o *config.Options, v uint32) {
		o.Window = v
		o.CustomOptions++
		o.ProbeOptions++
	}),
	"start": hex(func(o *config.Options, v uint32) {
		o.Start = v
		o.CustomOptions++
	}),
	"length": hex(func(o *config.Options, v uint32) {
		o.Length = v
		o.CustomOptions++
	}),
	"cable": text(func(o *config.Options, s string) { o.Cable = strings.ToLower(s) }),
	"port":  text(func(o *config.Options, s string) { o.Port = s }),
}

var valued = map[string]bool{
	"fc": true, "instrlen": true, "delay": true, "polllimit": true,
	"window": true, "start": true, "length": true, "cable": true, "port": true,
}

func decimal(set func(o *config.Options, n int)) switchFunc {
	return func(o *config.Options, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("not a decimal number: %q", v)
		}
		set(o, n)
		return nil
	}
}

func hex(set func(o *config.Options, v uint32)) switchFunc {
	return func(o *config.Options, v string) error {
		s := strings.TrimPrefix(strings.ToLower(v), "0x")
		n, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return fmt.Errorf("not a hex number: %q", v)
		}
		set(o, uint32(n))
		return nil
	}
}

func text(set func(o *config.Options, s string)) switchFunc {
	return func(o *config.Options, v string) error {
		set(o, v)
		return nil
	}
}

func applySwitch(o *config.Options, sw *Item) error {
	key := sw.Key()
	fn, ok := switches[key]
	if !ok || valued[key] != sw.HasValue() {
		return usageError("*** ERROR - Invalid <option> specified *** (/%s)", sw.Name)
	}
	if err := fn(o, sw.String()); err != nil {
		return fmt.Errorf("%w: /%s: %v", ErrUsage, sw.Name, err)
	}
	return nil
}
