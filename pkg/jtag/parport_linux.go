//go:build linux

package jtag

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ppdev ioctl requests from <linux/ppdev.h>.
const (
	ppRStatus = 0x80017081 // _IOR('p', 0x81, unsigned char)
	ppWData   = 0x40017086 // _IOW('p', 0x86, unsigned char)
	ppClaim   = 0x708b     // _IO('p', 0x8b)
	ppRelease = 0x708c     // _IO('p', 0x8c)
	ppExcl    = 0x708f     // _IO('p', 0x8f)
)

type ppdev struct {
	fd   int
	path string
}

func openPPDev(path string) (parallelPort, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	if err := ppIoctl(fd, ppExcl, nil); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "failed to lock %s", path)
	}
	if err := ppIoctl(fd, ppClaim, nil); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "failed to claim %s", path)
	}
	return &ppdev{fd: fd, path: path}, nil
}

func (p *ppdev) WriteData(b byte) error {
	return ppIoctl(p.fd, ppWData, &b)
}

func (p *ppdev) ReadStatus() (byte, error) {
	var b byte
	err := ppIoctl(p.fd, ppRStatus, &b)
	return b, err
}

func (p *ppdev) Close() error {
	relErr := ppIoctl(p.fd, ppRelease, nil)
	closeErr := unix.Close(p.fd)
	if relErr != nil {
		return errors.Wrapf(relErr, "failed to release %s", p.path)
	}
	return closeErr
}

func ppIoctl(fd int, req uintptr, arg *byte) error {
	var ptr uintptr
	if arg != nil {
		ptr = uintptr(unsafe.Pointer(arg))
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, ptr)
	if errno != 0 {
		return errno
	}
	return nil
}
