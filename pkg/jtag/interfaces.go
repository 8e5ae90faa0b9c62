package jtag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/gousb"
)

// InterfaceKind categorizes cable families.
type InterfaceKind string

const (
	InterfaceKindParallel InterfaceKind = "parport"
	InterfaceKindGPIO     InterfaceKind = "rpi"
	InterfaceKindFTDI     InterfaceKind = "ft232h"
	InterfaceKindCMSISDAP InterfaceKind = "cmsis-dap"
	InterfaceKindSim      InterfaceKind = "sim"
	InterfaceKindUnknown  InterfaceKind = "unknown"
)

// InterfaceInfo describes a detected cable.
type InterfaceInfo struct {
	Kind        InterfaceKind
	Description string
	VendorID    uint16
	ProductID   uint16
	Path        string
}

// Label returns a user-friendly description for the interface.
func (i InterfaceInfo) Label() string {
	label := i.Description
	if label == "" {
		label = string(i.Kind)
	}
	switch {
	case i.VendorID != 0:
		return fmt.Sprintf("%s (%04X:%04X)", label, i.VendorID, i.ProductID)
	case i.Path != "":
		return fmt.Sprintf("%s (%s)", label, i.Path)
	}
	return label
}

// gpioMemPath is where the Raspberry Pi kernel exposes the GPIO block.
var gpioMemPath = "/dev/gpiomem"

// parportGlob matches ppdev nodes.
var parportGlob = "/dev/parport*"

// DiscoverInterfaces lists cables that look usable on this host. The
// simulator is always listed last.
func DiscoverInterfaces(ctx context.Context) ([]InterfaceInfo, error) {
	var results []InterfaceInfo

	ports, _ := filepath.Glob(parportGlob)
	sort.Strings(ports)
	for _, p := range ports {
		results = append(results, InterfaceInfo{
			Kind:        InterfaceKindParallel,
			Description: "Parallel port (xilinx/wiggler)",
			Path:        p,
		})
	}

	if _, err := os.Stat(gpioMemPath); err == nil {
		results = append(results, InterfaceInfo{
			Kind:        InterfaceKindGPIO,
			Description: "Raspberry Pi GPIO header",
			Path:        gpioMemPath,
		})
	}

	usb, err := discoverUSB(ctx)
	results = append(results, usb...)

	results = append(results, InterfaceInfo{
		Kind:        InterfaceKindSim,
		Description: "Simulator (no hardware)",
	})
	return results, err
}

func discoverUSB(ctx context.Context) ([]InterfaceInfo, error) {
	var results []InterfaceInfo
	usb := gousb.NewContext()
	defer usb.Close()

	_, err := usb.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if info, ok := classifyUSBDevice(desc); ok {
			results = append(results, info)
		}
		return false
	})
	if err != nil && err != gousb.ErrorAccess {
		return results, err
	}
	return results, nil
}

func classifyUSBDevice(desc *gousb.DeviceDesc) (InterfaceInfo, bool) {
	for _, known := range knownUSBCables {
		if uint16(desc.Vendor) == known.VendorID && uint16(desc.Product) == known.ProductID {
			return InterfaceInfo{
				Kind:        known.Kind,
				Description: known.Description,
				VendorID:    known.VendorID,
				ProductID:   known.ProductID,
			}, true
		}
	}
	return InterfaceInfo{}, false
}

type knownUSBDevice struct {
	Kind        InterfaceKind
	VendorID    uint16
	ProductID   uint16
	Description string
}

var knownUSBCables = []knownUSBDevice{
	{InterfaceKindCMSISDAP, VendorIDRaspberryPi, ProductIDCMSISDAP, "Raspberry Pi Debug Probe (CMSIS-DAP)"},
	{InterfaceKindCMSISDAP, 0x0d28, 0x0204, "DAPLink CMSIS-DAP"},
	{InterfaceKindCMSISDAP, 0x1366, 0x0101, "SEGGER J-Link CMSIS-DAP"},
	{InterfaceKindFTDI, VendorIDFTDI, ProductIDFT232H, "FTDI FT232H"},
	{InterfaceKindFTDI, VendorIDFTDI, ProductIDFT2232H, "FTDI FT2232H"},
}
