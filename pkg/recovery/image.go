package recovery

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/marcinbor85/gohex"
	"github.com/pkg/errors"
)

// image is a file's contents laid out from the address the operation
// starts at. Words past the end read as erased flash.
type image []byte

func (im image) word(off uint32) uint32 {
	var b [4]byte
	for i := range b {
		b[i] = 0xFF
		if n := uint64(off) + uint64(i); n < uint64(len(im)) {
			b[i] = im[n]
		}
	}
	return binary.LittleEndian.Uint32(b[:])
}

// readImage loads path. Intel HEX records at or above base are placed
// relative to it; lower addresses are taken as offsets from base. Gaps
// between records read as 0xFF.
func readImage(path string, f Format, base uint32) (image, error) {
	if f == FormatRaw {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %s for reading", path)
		}
		return data, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s for reading", path)
	}
	defer file.Close()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(file); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	var im image
	for _, seg := range mem.GetDataSegments() {
		off := seg.Address
		if off >= base {
			off -= base
		}
		end := int(off) + len(seg.Data)
		for len(im) < end {
			im = append(im, 0xFF)
		}
		copy(im[off:], seg.Data)
	}
	return im, nil
}

// dump receives the words of a backup in address order.
type dump interface {
	word(v uint32) error
	Close() error
}

func createDump(path string, f Format, base uint32) (dump, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s for writing", path)
	}
	if f == FormatIntelHex {
		return &hexDump{file: file, base: base}, nil
	}
	return &rawDump{file: file, w: bufio.NewWriter(file)}, nil
}

type rawDump struct {
	file *os.File
	w    *bufio.Writer
}

func (d *rawDump) word(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := d.w.Write(b[:])
	return errors.Wrap(err, "write backup")
}

func (d *rawDump) Close() error {
	if err := d.w.Flush(); err != nil {
		d.file.Close()
		return errors.Wrap(err, "write backup")
	}
	return errors.Wrap(d.file.Close(), "close backup")
}

// hexDump collects the area and writes it as Intel HEX on Close.
type hexDump struct {
	file *os.File
	base uint32
	buf  []byte
}

func (d *hexDump) word(v uint32) error {
	d.buf = binary.LittleEndian.AppendUint32(d.buf, v)
	return nil
}

func (d *hexDump) Close() error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(d.base, d.buf); err != nil {
		d.file.Close()
		return errors.Wrap(err, "build hex image")
	}
	if err := mem.DumpIntelHex(d.file, 16); err != nil {
		d.file.Close()
		return errors.Wrap(err, "write backup")
	}
	return errors.Wrap(d.file.Close(), "close backup")
}
