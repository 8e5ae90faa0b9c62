package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/jtag"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List available JTAG cables",
	Long: `Scan the host for cables the tool can drive: parallel ports, the Raspberry Pi
GPIO header and USB probes (FT232H, CMSIS-DAP). Pass the kind to /cable:KIND and, for
parallel ports, the path to /port:PATH.`,
	Args: cobra.NoArgs,
	RunE: runInterfaces,
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}

func runInterfaces(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	out := cmd.OutOrStdout()
	infos, err := jtag.DiscoverInterfaces(ctx)
	if err != nil && len(infos) == 0 {
		return fmt.Errorf("discover interfaces: %w", err)
	}
	if err != nil && verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	fmt.Fprintln(out, "Detected JTAG cables:")
	for _, iface := range infos {
		fmt.Fprintf(out, "  - %s [/cable:%s]\n", iface.Label(), iface.Kind)
	}
	return nil
}
