package recovery

import (
	"fmt"
	"math/bits"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/flash"
)

// ImagePath is the file Flash reads the selected area from.
func (r *Runner) ImagePath() string {
	name := r.flash.ImageName()
	if r.opts.Format == FormatIntelHex {
		name = strings.TrimSuffix(name, ".BIN") + ".HEX"
	}
	return filepath.Join(r.opts.Dir, name)
}

// BackupPath is the file Backup would write now.
func (r *Runner) BackupPath() string {
	name := r.flash.ImageName() + ".SAVED"
	if r.opts.Timestamp {
		name += "_" + r.now().Format("20060102_150405")
	}
	if r.opts.Format == FormatIntelHex {
		name += ".hex"
	}
	return filepath.Join(r.opts.Dir, name)
}

// Backup saves the selected area to disk and returns the file written.
func (r *Runner) Backup() (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	begin := r.now()
	area := r.flash.Area
	path := r.BackupPath()

	fmt.Fprintf(r.out, "*** You Selected to Backup the %s ***\n\n", r.flash.ImageName())
	d, err := createDump(path, r.opts.Format, area.Start)
	if err != nil {
		return "", err
	}
	r.banner(25, "Backup Routine Started")
	fmt.Fprintf(r.out, "\nSaving %s to Disk...\n", filepath.Base(path))

	p := &progress{out: r.out, silent: r.opts.Silent, label: " Backed Up", length: area.Length}
	for off := uint32(0); off < area.Length; off += 4 {
		addr := area.Start + off
		p.start(addr)
		data, err := r.read(addr)
		if err != nil {
			d.Close()
			return path, fmt.Errorf("recovery: backup read %08x: %w", addr, err)
		}
		if r.opts.SwapEndian {
			data = bits.ReverseBytes32(data)
		}
		if err := d.word(data); err != nil {
			d.Close()
			return path, err
		}
		p.done(addr, data, false)
	}
	if err := d.Close(); err != nil {
		return path, err
	}

	fmt.Fprintf(r.out, "Done  (%s saved to Disk OK)\n\n", filepath.Base(path))
	fmt.Fprintf(r.out, "bytes written: %d\n", p.count)
	r.banner(25, "Backup Routine Complete")
	r.elapsed(begin)
	return path, nil
}

// Erase erases the selected area.
func (r *Runner) Erase() error {
	if err := r.ready(); err != nil {
		return err
	}
	begin := r.now()
	area := r.flash.Area

	fmt.Fprintf(r.out, "*** You Selected to Erase the %s ***\n\n", r.flash.ImageName())
	r.banner(25, "Erasing Routine Started")
	if err := r.flash.EraseArea(area.Start, area.Length); err != nil {
		return err
	}
	if err := r.flash.Reset(); err != nil {
		return err
	}
	r.banner(25, "Erasing Routine Complete")
	r.elapsed(begin)
	return nil
}

// Flash programs the selected area from ImagePath. Words past the end of
// the image are written as 0xFFFFFFFF; with Erase set, erased words are
// skipped.
func (r *Runner) Flash() error {
	if err := r.ready(); err != nil {
		return err
	}
	begin := r.now()
	area := r.flash.Area
	path := r.ImagePath()

	fmt.Fprintf(r.out, "*** You Selected to Flash the %s ***\n\n", filepath.Base(path))
	im, err := readImage(path, r.opts.Format, area.Start)
	if err != nil {
		return err
	}
	r.banner(25, "Flashing Routine Started")

	if r.opts.Erase {
		if err := r.flash.EraseArea(area.Start, area.Length); err != nil {
			return err
		}
	}
	if r.opts.Bypass {
		if err := r.flash.UnlockBypass(); err != nil {
			return err
		}
	}

	fmt.Fprintf(r.out, "\nLoading %s to Flash Memory...\n", filepath.Base(path))
	p := &progress{out: r.out, silent: r.opts.Silent, label: " Flashed", length: area.Length}
	for off := uint32(0); off < area.Length; off += 4 {
		addr := area.Start + off
		p.start(addr)
		data := im.word(off)
		if !r.opts.Erase || data != 0xFFFFFFFF {
			if err := r.flash.WriteWord(addr, data); err != nil {
				fmt.Fprintln(r.out)
				return err
			}
		}
		p.done(addr, data, true)
	}
	fmt.Fprintf(r.out, "Done  (%s loaded into Flash Memory OK)\n\n", filepath.Base(path))

	if r.opts.Bypass {
		if err := r.flash.ExitBypass(); err != nil {
			return err
		}
	}
	if err := r.flash.Reset(); err != nil {
		return err
	}
	r.banner(25, "Flashing Routine Complete")
	r.elapsed(begin)
	return nil
}

// Load writes the image at path into RAM from start. Its length is the
// file's.
func (r *Runner) Load(path string, start uint32) error {
	begin := r.now()
	fmt.Fprintf(r.out, "*** You Selected to program the %s ***\n\n", filepath.Base(path))
	im, err := readImage(path, r.opts.Format, start)
	if err != nil {
		return err
	}
	length := uint32(len(im))
	r.banner(31, "Programming RAM Routine Started")

	fmt.Fprintf(r.out, "\nLoading %s to RAM...\n", filepath.Base(path))
	p := &progress{out: r.out, silent: r.opts.Silent, length: length}
	for off := uint32(0); off < length; off += 4 {
		addr := start + off
		p.start(addr)
		data := im.word(off)
		if err := r.write(addr, data); err != nil {
			return fmt.Errorf("recovery: load %08x: %w", addr, err)
		}
		p.done(addr, data, true)
	}
	fmt.Fprintf(r.out, "Done  (%s loaded into Memory OK)\n\n", filepath.Base(path))

	if err := r.flash.Reset(); err != nil {
		return err
	}
	r.banner(32, "Programming RAM Routine Complete")
	r.elapsed(begin)
	return nil
}

// SPIChipErase starts a bulk erase of a Broadcom serial part.
func (r *Runner) SPIChipErase() error {
	return r.flash.SPIChipErase(flash.SPIChipEraseOffset)
}
