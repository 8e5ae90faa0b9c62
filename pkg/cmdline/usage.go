package cmdline

import (
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
)

var switchHelp = []struct{ name, help string }{
	{"/noreset", "prevent Issuing EJTAG CPU reset"},
	{"/noemw", "prevent Enabling Memory Writes"},
	{"/nocwd", "prevent Clearing CPU Watchdog Timer"},
	{"/nobreak", "prevent Issuing Debug Mode JTAGBRK"},
	{"/noerase", "prevent Forced Erase before Flashing"},
	{"/notimestamp", "prevent Timestamping of Backups"},
	{"/dma", "force use of DMA routines"},
	{"/nodma", "force use of PRACC routines (No DMA)"},
	{"/window:XXXXXXXX", "custom flash window base (in HEX)"},
	{"/start:XXXXXXXX", "custom start location (in HEX)"},
	{"/length:XXXXXXXX", "custom length (in HEX)"},
	{"/silent", "prevent scrolling display of data"},
	{"/skipdetect", "skip auto detection of CPU Chip ID"},
	{"/instrlen:XX", "set instruction length manually"},
	{"/cable:KIND", "parport, rpi, ft232h, cmsis-dap or sim"},
	{"/port:PATH", "parallel port device"},
	{"/wiggler", "use wiggler cable"},
	{"/bypass", "Unlock Bypass command & disable polling"},
	{"/delay:XXXXXX", "add delay to communication"},
	{"/polllimit:N", "give up a wait on the target after N polls (0 waits forever)"},
	{"/st5", "Use Speedtouch ST5xx flash routines instead of WRT routines"},
	{"/reboot", "sets the process and reboots"},
	{"/swap_endian", "swap endianess during backup - most Atheros based routers"},
	{"/flash_debug", "flash chip debug messages, show flash MFG and Device ID"},
	{"/verbose", "log diagnostics"},
	{"/sdram", "configure SDRAM before -load (BCM4712, BCM5352)"},
	{"/ihex", "read and write Intel HEX images instead of raw binaries"},
	{"/xbit", "accepted for compatibility, no effect"},
}

// Usage prints the command line help, including the /fc chip numbers.
func Usage(w io.Writer, prog string) {
	fmt.Fprintf(w, " USAGE: %s [parameter] </noreset> </noemw> </nocwd> </nobreak> </noerase>\n", prog)
	fmt.Fprint(w, "                      </notimestamp> </dma> </nodma> <window:XXXXXXXX>\n")
	fmt.Fprint(w, "                      <start:XXXXXXXX> </length:XXXXXXXX>\n")
	fmt.Fprint(w, "                      </silent> </skipdetect> </instrlen:XX> </fc:XX> /bypass /st5\n\n")

	fmt.Fprint(w, "            Required Parameter\n")
	fmt.Fprint(w, "            ------------------\n")
	for _, op := range []string{"backup", "erase", "flash"} {
		for _, area := range chipdb.AreaNames() {
			if strings.HasPrefix(area, "AR-") {
				continue
			}
			fmt.Fprintf(w, "            -%s:%s\n", op, strings.ToLower(area))
		}
	}
	fmt.Fprint(w, "            -probeonly\n")
	fmt.Fprint(w, "            -probeonly:custom\n")
	fmt.Fprint(w, "            -load:FILE\n")
	fmt.Fprint(w, "            -spi_chiperase\n\n")

	fmt.Fprint(w, "            Optional Switches\n")
	fmt.Fprint(w, "            -----------------\n")
	for _, s := range switchHelp {
		fmt.Fprintf(w, "            %s %s %s\n", s.name, strings.Repeat(".", max(3, 20-len(s.name))), s.help)
	}

	fmt.Fprint(w, "\n            /fc:XX = Optional (Manual) Flash Chip Selection\n")
	fmt.Fprint(w, "            -----------------------------------------------\n")
	for i, c := range chipdb.FlashChips {
		fmt.Fprintf(w, "            /fc:%02d ............. %-40.40s\n", i+1, c.Name)
	}

	fmt.Fprint(w, "\n\n NOTES: 1) If 'flashing' - the source filename must exist as follows:\n")
	fmt.Fprint(w, "           CFE.BIN, NVRAM.BIN, KERNEL.BIN, WHOLEFLASH.BIN or CUSTOM.BIN\n")
	fmt.Fprint(w, "           BSP.BIN (or .HEX with /ihex)\n\n")
	fmt.Fprint(w, "        2) If you have difficulty auto-detecting a particular flash part\n")
	fmt.Fprint(w, "           you can manually specify your exact part using the /fc:XX option.\n\n")
	fmt.Fprint(w, "        3) Older bcm47xx chips, or boards with no working CFE, may need\n")
	fmt.Fprint(w, "           /noreset and /nobreak together.\n\n")
	fmt.Fprint(w, "        4) Type the command line out, plug in the router, then hit <ENTER>\n")
	fmt.Fprint(w, "           quickly so the CPU watchdog does not interfere.\n\n")
}
