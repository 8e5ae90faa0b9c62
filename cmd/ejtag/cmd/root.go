package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/config"
	"github.com/OpenTraceLab/OpenTraceEJTAG/pkg/cmdline"
)

const version = "3.0.1"

var (
	// Global flags
	verbose bool

	// configDir replaces the per-user settings folder when set.
	configDir = os.Getenv("EJTAG_CONFIG_DIR")
)

var rootCmd = &cobra.Command{
	Use:   "ejtag -operation[:area] [/switch[:value] ...]",
	Short: "EJTAG debrick utility for MIPS routers",
	Long: `Back up, erase and reprogram the boot flash of MIPS based routers through
their EJTAG port, or load an image straight into RAM.

Examples:
  ejtag -backup:cfe                                  # Save CFE to CFE.BIN.SAVED_<time>
  ejtag -flash:kernel /bypass                        # Program KERNEL.BIN
  ejtag -probeonly /cable:sim                        # Dry run against the simulator
  ejtag chips                                        # List the /fc:XX chip numbers`,
	Version: version,

	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func banner(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "\n==============================================\n")
	fmt.Fprintf(out, " EJTAG Debrick Utility v%s\n", version)
	fmt.Fprint(out, "==============================================\n\n")
}

func runRoot(cmd *cobra.Command, args []string) error {
	banner(cmd)

	base := config.Defaults()
	st, err := config.NewStore(configDir).Load()
	if err != nil {
		return err
	}
	st.Apply(&base)

	req, err := cmdline.Parse(args, base)
	if errors.Is(err, cmdline.ErrUsage) {
		cmdline.Usage(cmd.OutOrStdout(), "ejtag")
	}
	if err != nil {
		return err
	}
	return runRequest(cmd.OutOrStdout(), cmd.ErrOrStderr(), req)
}
