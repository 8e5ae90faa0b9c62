package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/config"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/chain"
)

var (
	scanCable   string
	scanPort    string
	scanWiggler bool
	scanDelay   int
	scanMax     int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the TAPs on the scan chain",
	Long: `Reset the scan chain, read every device's IDCODE and measure the total
instruction register length. Use it to check the cable before a recovery run,
or to find the value for /instrlen:XX.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringVar(&scanCable, "cable", "", "cable kind (default from settings)")
	f.StringVar(&scanPort, "port", "", "parallel port device")
	f.BoolVar(&scanWiggler, "wiggler", false, "use wiggler wiring")
	f.IntVar(&scanDelay, "delay", 0, "bit-bang delay")
	f.IntVar(&scanMax, "max", chain.DefaultMaxDevices, "most devices to look for")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	o := config.Defaults()
	st, err := config.NewStore(configDir).Load()
	if err != nil {
		return err
	}
	st.Apply(&o)
	if scanCable != "" {
		o.Cable = scanCable
	}
	if scanPort != "" {
		o.Port = scanPort
	}
	if scanWiggler {
		o.Wiggler = true
	}
	if scanDelay != 0 {
		o.Delay = scanDelay
	}

	cable, err := openCable(o)
	if err != nil {
		return fmt.Errorf("open cable: %w", err)
	}
	defer cable.Close()

	s := chain.NewScanner(cable)
	s.MaxDevices = scanMax
	c, err := s.Scan()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scan chain on %s: %d device(s)\n", cable.Info().Name, len(c.Devices))
	for _, d := range c.Devices {
		fmt.Fprintf(out, "  %s\n", d)
	}
	fmt.Fprintf(out, "Total IR length: %d\n", c.IRLength)
	return nil
}
