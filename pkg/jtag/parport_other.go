//go:build !linux

package jtag

import "fmt"

func openPPDev(path string) (parallelPort, error) {
	return nil, fmt.Errorf("jtag: parallel port %s: %w", path, ErrNotImplemented)
}
