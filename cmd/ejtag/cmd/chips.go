package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chipdb"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/idcode"
)

var chipsCmd = &cobra.Command{
	Use:   "chips",
	Short: "List supported processors and flash chips",
	Long: `Print the processor table used for detection and the numbered flash chip
table. The numbers are what /fc:XX selects.`,
	Args: cobra.NoArgs,
	RunE: runChips,
}

var areasCmd = &cobra.Command{
	Use:   "areas [name]",
	Short: "List flash areas per chip size",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAreas,
}

func init() {
	rootCmd.AddCommand(chipsCmd)
	rootCmd.AddCommand(areasCmd)
}

func runChips(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Processors:")
	for _, p := range chipdb.Processors {
		line := fmt.Sprintf("  %08X  IR %2d  %s", p.ID, p.IRLength, p.Name)
		if verbose {
			line += "  [" + idcode.ParseIDCode(p.ID).String() + "]"
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, "\nFlash chips:")
	for i, c := range chipdb.FlashChips {
		fmt.Fprintf(out, "  /fc:%02d  %04X:%04X  %-4v %6dKB  %s", i+1, c.Vendor, c.Device, c.CommandSet, c.Size>>10, c.Name)
		if verbose {
			fmt.Fprintf(out, "  (%s)", idcode.FlashVendor(c.Vendor))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runAreas(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 1 && !chipdb.IsArea(args[0]) {
		return fmt.Errorf("unknown area %q", args[0])
	}
	for _, a := range chipdb.Areas {
		if len(args) == 1 && !strings.EqualFold(a.Name, args[0]) {
			continue
		}
		fmt.Fprintf(out, "  %-12s %3dMB  start %08x  length %08x\n", a.Name, a.Size>>20, a.Start, a.Length)
	}
	if len(args) == 0 || strings.EqualFold(args[0], chipdb.CustomArea) {
		fmt.Fprintf(out, "  %-12s        /window /start /length\n", chipdb.CustomArea)
	}
	return nil
}
