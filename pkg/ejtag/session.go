package ejtag

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
)

// Config tunes detection and memory access.
type Config struct {
	// InstrLen overrides the table IR length when non-zero.
	InstrLen int
	// SkipDetect reads IDCODE once with InstrLen instead of walking the
	// processor table.
	SkipDetect bool
	ForceDMA   bool
	ForceNoDMA bool
	// PollLimit bounds every wait on the target. Zero waits forever.
	PollLimit int

	Console io.Writer
	Logger  logrus.FieldLogger
}

// Session is one connection to an EJTAG target, from detection to shutdown.
type Session struct {
	tap TAP
	cfg Config
	out io.Writer
	log logrus.FieldLogger

	IDCode    uint32
	Processor chipdb.Processor
	Family    Family
	Features  Features
	UseDMA    bool

	exec  *Executor
	dma   *DMA
	pracc *PrAcc
}

// NewSession prepares a session on t. Nothing is clocked until Detect.
func NewSession(t TAP, cfg Config) *Session {
	out := cfg.Console
	if out == nil {
		out = io.Discard
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Session{
		tap: t,
		cfg: cfg,
		out: out,
		log: log.WithField("prefix", "ejtag"),
	}
	s.exec = NewExecutor(t)
	s.exec.PollLimit = cfg.PollLimit
	s.pracc = NewPrAcc(s.exec)
	s.attach(0)
	return s
}

// attach rebuilds the DMA engine once the IDCODE is known.
func (s *Session) attach(idcode uint32) {
	s.IDCode = idcode
	s.Family = FamilyOf(idcode)
	s.dma = NewDMA(s.tap, idcode, s.log)
	s.dma.PollLimit = s.cfg.PollLimit
}

// Console is where progress lines go.
func (s *Session) Console() io.Writer { return s.out }

// Logger returns the session's logger.
func (s *Session) Logger() logrus.FieldLogger { return s.log }

// Port exposes the TAP the session drives.
func (s *Session) Port() TAP { return s.tap }

// Executor returns the debug module executor.
func (s *Session) Executor() *Executor { return s.exec }

// DMA returns the DMA engine regardless of the selected strategy.
func (s *Session) DMA() *DMA { return s.dma }

// Memory returns the access strategy chosen by CheckFeatures.
func (s *Session) Memory() Memory {
	if s.UseDMA {
		return s.dma
	}
	return s.pracc
}

// Execute runs a built-in code module.
func (s *Session) Execute(name string) error {
	m, ok := codeModules[name]
	if !ok {
		return fmt.Errorf("ejtag: no code module %q", name)
	}
	return s.exec.Execute(m)
}

// TestReset returns the TAP to Run-Test/Idle through Test-Logic-Reset.
func (s *Session) TestReset() error {
	return s.tap.TestReset()
}

// FormatBits renders a register the way the console shows IDs: 32 binary
// digits, MSB first, followed by the hex value.
func FormatBits(v uint32) string {
	return fmt.Sprintf("%032b (%08X)", v, v)
}

// Detect identifies the processor. Each table entry is tried with its own
// IR length unless Config.InstrLen overrides it. An unmatched IDCODE returns
// chipdb.ErrUnknownProcessor; the session still records the ID read.
func (s *Session) Detect() error {
	fmt.Fprint(s.out, "Probing bus ... ")

	if s.cfg.SkipDetect {
		if err := s.tap.TestReset(); err != nil {
			return err
		}
		id, err := s.readIDCode(s.cfg.InstrLen)
		if err != nil {
			return err
		}
		s.attach(id)
		s.Processor = chipdb.Processor{ID: id, IRLength: s.cfg.InstrLen, Name: "manually selected"}
		fmt.Fprintf(s.out, "Done\n\nInstruction Length set to %d\n\n", s.cfg.InstrLen)
		fmt.Fprintf(s.out, "CPU Chip ID: %s\n", FormatBits(id))
		fmt.Fprint(s.out, "*** CHIP DETECTION OVERRIDDEN ***\n\n")
		return nil
	}

	var id uint32
	irLen := s.cfg.InstrLen
	for _, p := range chipdb.Processors {
		if err := s.tap.TestReset(); err != nil {
			return err
		}
		irLen = p.IRLength
		if s.cfg.InstrLen != 0 {
			irLen = s.cfg.InstrLen
		}
		var err error
		if id, err = s.readIDCode(irLen); err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{"idcode": fmt.Sprintf("%08X", id), "irlen": irLen}).Debugf("tried %s", p.Name)
		if id == p.ID {
			s.attach(id)
			s.Processor = p
			fmt.Fprintf(s.out, "Done\n\nInstruction Length set to %d\n\n", irLen)
			fmt.Fprintf(s.out, "CPU Chip ID: %s\n", FormatBits(id))
			fmt.Fprintf(s.out, "*** Found a %s chip ***\n\n", p.Name)
			return nil
		}
	}

	s.attach(id)
	fmt.Fprintf(s.out, "Done\n\nInstruction Length set to %d\n\n", irLen)
	fmt.Fprintf(s.out, "CPU Chip ID: %s\n", FormatBits(id))
	fmt.Fprint(s.out, "*** Unknown or NO CPU Chip ID Detected ***\n\n")
	fmt.Fprint(s.out, "*** Possible Causes:\n")
	fmt.Fprint(s.out, "    1) Device is not Connected.\n")
	fmt.Fprint(s.out, "    2) Device is not Powered On.\n")
	fmt.Fprint(s.out, "    3) Improper JTAG Cable.\n")
	fmt.Fprint(s.out, "    4) Unrecognized CPU Chip ID.\n")
	return fmt.Errorf("%w: %08X", chipdb.ErrUnknownProcessor, id)
}

func (s *Session) readIDCode(irLen int) (uint32, error) {
	if err := s.tap.SetIRLength(irLen); err != nil {
		return 0, err
	}
	return readRegister(s.tap, InstrIDCode)
}

// CheckFeatures reads IMPCODE, prints the decoded fields and picks DMA or
// PrAcc. /dma and /nodma override what IMPCODE says, /nodma last.
func (s *Session) CheckFeatures() error {
	imp, err := readRegister(s.tap, InstrImpCode)
	if err != nil {
		return err
	}
	s.Features = DecodeFeatures(imp)
	s.UseDMA = s.Features.DMASupported()

	fmt.Fprintf(s.out, "    - EJTAG IMPCODE ....... : %s\n", FormatBits(imp))
	fmt.Fprintf(s.out, "    - EJTAG Version ....... : %s\n", s.Features.VersionString())
	fmt.Fprintf(s.out, "    - EJTAG DMA Support ... : %s\n", yesNo(s.UseDMA))
	fmt.Fprintf(s.out, "    - EJTAG Implementation flags: %s\n", strings.Join(s.Features.Flags(), " "))

	if s.cfg.ForceDMA {
		s.UseDMA = true
		fmt.Fprint(s.out, "    *** DMA Mode Forced On ***\n")
	}
	if s.cfg.ForceNoDMA {
		s.UseDMA = false
		fmt.Fprint(s.out, "    *** DMA Mode Forced Off ***\n")
	}
	fmt.Fprintln(s.out)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
