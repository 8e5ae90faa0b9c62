package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/config"
	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/logging"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/cmdline"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/ejtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/flash"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/idcode"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/recovery"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/tap"
)

// openCable returns the cable selected by /cable, /port, /wiggler and /delay.
func openCable(o config.Options) (jtag.Cable, error) {
	kind := jtag.InterfaceKind(o.Cable)
	if kind == jtag.InterfaceKindSim {
		return newSimTarget().cable, nil
	}
	wiring := jtag.XilinxWiring.Name
	if o.Wiggler {
		wiring = jtag.WigglerWiring.Name
	}
	return jtag.Open(jtag.Options{Kind: kind, Path: o.Port, Wiring: wiring, Delay: o.Delay})
}

// runRequest performs one parsed command line against the target.
func runRequest(out, errOut io.Writer, req cmdline.Request) error {
	o := req.Options
	log := logging.New(errOut, o.Debug())

	format, err := recovery.ParseFormat(o.Format)
	if err != nil {
		return err
	}

	cable, err := openCable(o)
	if err != nil {
		return fmt.Errorf("open cable: %w", err)
	}
	defer cable.Close()
	info := cable.Info()
	log.WithFields(logrus.Fields{"prefix": "cable", "kind": info.Kind, "path": info.Path}).Debug(info.Name)

	ctl := tap.NewController(cable)
	if o.Verbose {
		ctl.Trace = func(instr, tx, rx uint32) {
			log.WithField("prefix", "tap").Debugf("ir %02x dr %08x -> %08x", instr, tx, rx)
		}
	}

	s := ejtag.NewSession(ctl, ejtag.Config{
		InstrLen:   o.InstrLen,
		SkipDetect: o.SkipDetect,
		ForceDMA:   o.ForceDMA,
		ForceNoDMA: o.ForceNoDMA,
		PollLimit:  o.PollLimit,
		Console:    out,
		Logger:     log,
	})

	if err := s.Detect(); err != nil {
		if errors.Is(err, chipdb.ErrUnknownProcessor) {
			log.WithField("prefix", "ejtag").Debugf("IDCODE %s", idcode.ParseIDCode(s.IDCode))
			return s.Shutdown()
		}
		return err
	}
	log.WithField("prefix", "ejtag").Debugf("IDCODE %s", idcode.ParseIDCode(s.IDCode))

	if err := s.CheckFeatures(); err != nil {
		return err
	}
	err = s.Prepare(ejtag.BringUp{
		Reset:              o.Reset,
		EnableMemoryWrites: o.EnableMemoryWrites,
		Break:              o.Break,
		ClearWatchdog:      o.ClearWatchdog,
	})
	if err != nil {
		return err
	}

	e := flash.ForSession(s, flash.Options{
		Area:         req.Area,
		CustomWindow: o.Window,
		CustomStart:  o.Start,
		CustomLength: o.Length,
		Bypass:       o.Bypass,
		Speedtouch:   o.Speedtouch,
		PollLimit:    o.PollLimit,
	})
	if o.FlashChip != 0 {
		err = e.SelectChip(o.FlashChip)
	} else {
		err = e.Probe()
	}
	if err != nil && !errors.Is(err, flash.ErrUnknownChip) {
		return err
	}
	if e.Identified() {
		log.WithField("prefix", "flash").Debugf("maker %s", idcode.FlashVendor(uint16(e.Vendor)))
	}

	r := recovery.ForSession(s, e, recovery.Options{
		Erase:      o.Erase,
		Bypass:     o.Bypass,
		SwapEndian: o.SwapEndian,
		Silent:     o.Silent,
		Timestamp:  o.Timestamp,
		Format:     format,
	})
	if err := perform(s, e, r, req); err != nil {
		return err
	}

	fmt.Fprint(out, "\n\n *** REQUESTED OPERATION IS COMPLETE ***\n\n")

	if o.Reboot {
		if err := s.Reboot(); err != nil {
			return err
		}
	}
	if s.IDCode == ejtag.IDAtheros {
		if err := s.Resume(); err != nil {
			return err
		}
	}
	return s.Shutdown()
}

// perform runs the selected operation. Area operations need an identified
// part and a non-empty area; load and SPI chip erase do not.
func perform(s *ejtag.Session, e *flash.Engine, r *recovery.Runner, req cmdline.Request) error {
	switch req.Op {
	case cmdline.OpBackup, cmdline.OpErase, cmdline.OpFlash:
		if !e.Ready() {
			return nil
		}
		switch req.Op {
		case cmdline.OpBackup:
			_, err := r.Backup()
			return err
		case cmdline.OpErase:
			return r.Erase()
		default:
			return r.Flash()
		}
	case cmdline.OpLoad:
		if req.Options.SDRAM {
			err := s.SetupSDRAM()
			if errors.Is(err, ejtag.ErrNoSDRAMInit) {
				s.Logger().WithError(err).Warn("loading without SDRAM setup")
			} else if err != nil {
				return err
			}
		}
		return r.Load(req.Image, recovery.LoadAddress)
	case cmdline.OpSPIChipErase:
		return r.SPIChipErase()
	}
	return nil
}
